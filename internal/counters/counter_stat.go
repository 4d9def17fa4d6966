package counters

import (
	"sort"

	"usage-counter/internal/models"
)

type contentSet map[models.ContentType]struct{}

func newContentSet(contents []models.ContentType) contentSet {
	set := make(contentSet, len(contents))
	for _, content := range contents {
		set[content] = struct{}{}
	}
	return set
}

type compiledRule struct {
	itemType       models.ItemType
	requests       contentSet
	investigations contentSet
}

type itemMeta struct {
	issn string
	yop  string
}

// CounterStat computes the four COUNTER values per group, identifier and day.
// Values computed for the same key by successive calls accumulate.
type CounterStat struct {
	rules   map[models.GroupCategory]compiledRule
	metrics map[models.GroupCategory]map[string]map[string]*models.Counters
	meta    map[string]itemMeta
}

func NewCounterStat(rules RuleTable) *CounterStat {
	compiled := make(map[models.GroupCategory]compiledRule, len(rules))
	for group, rule := range rules {
		compiled[group] = compiledRule{
			itemType:       rule.ItemType,
			requests:       newContentSet(rule.Requests),
			investigations: newContentSet(rule.Investigations),
		}
	}

	metrics := make(map[models.GroupCategory]map[string]map[string]*models.Counters, len(rules))
	for group := range rules {
		metrics[group] = make(map[string]map[string]*models.Counters)
	}

	return &CounterStat{
		rules:   compiled,
		metrics: metrics,
		meta:    make(map[string]itemMeta),
	}
}

// CalculateMetrics counts every identifier group for every group category.
func (c *CounterStat) CalculateMetrics(pidToHits map[string][]*models.Hit) {
	for pid, pidHits := range pidToHits {
		if len(pidHits) == 0 {
			continue
		}
		c.rememberMeta(pid, pidHits)

		byDay := BucketByDay(pidHits)
		for group, rule := range c.rules {
			c.calculate(group, rule, pid, byDay)
		}
	}
}

func (c *CounterStat) calculate(group models.GroupCategory, rule compiledRule, pid string, byDay map[string][]*models.Hit) {
	for day, dayHits := range byDay {
		computed := models.Counters{
			TotalItemRequests:        total(dayHits, rule.itemType, rule.requests),
			TotalItemInvestigations:  total(dayHits, rule.itemType, rule.investigations),
			UniqueItemRequests:       unique(dayHits, rule.itemType, rule.requests),
			UniqueItemInvestigations: unique(dayHits, rule.itemType, rule.investigations),
		}

		days, ok := c.metrics[group][pid]
		if !ok {
			days = make(map[string]*models.Counters)
			c.metrics[group][pid] = days
		}
		current, ok := days[day]
		if !ok {
			current = &models.Counters{}
			days[day] = current
		}
		current.Accumulate(computed)

		if current.IsZero() {
			delete(days, day)
		}
		if len(days) == 0 {
			delete(c.metrics[group], pid)
		}
	}
}

func (c *CounterStat) rememberMeta(pid string, pidHits []*models.Hit) {
	meta := c.meta[pid]
	for _, hit := range pidHits {
		if meta.issn == "" {
			meta.issn = hit.ISSN
		}
		if meta.yop == "" {
			meta.yop = hit.YOP
		}
	}
	c.meta[pid] = meta
}

// Counters returns the values of one group, identifier and day.
func (c *CounterStat) Counters(group models.GroupCategory, pid, day string) (models.Counters, bool) {
	counters, ok := c.metrics[group][pid][day]
	if !ok {
		return models.Counters{}, false
	}
	return *counters, true
}

// Records flattens the computed values in group, identifier and day order.
func (c *CounterStat) Records(collection string) []*models.MetricRecord {
	var records []*models.MetricRecord
	for _, group := range models.GroupCategories {
		byPID := c.metrics[group]
		pids := make([]string, 0, len(byPID))
		for pid := range byPID {
			pids = append(pids, pid)
		}
		sort.Strings(pids)

		for _, pid := range pids {
			days := make([]string, 0, len(byPID[pid]))
			for day := range byPID[pid] {
				days = append(days, day)
			}
			sort.Strings(days)

			for _, day := range days {
				records = append(records, &models.MetricRecord{
					Group:      group,
					Collection: collection,
					PID:        pid,
					ISSN:       c.meta[pid].issn,
					YOP:        c.meta[pid].yop,
					Day:        day,
					Counters:   *byPID[pid][day],
				})
			}
		}
	}
	return records
}

// BucketByDay groups hits by calendar day of server time.
func BucketByDay(hits []*models.Hit) map[string][]*models.Hit {
	byDay := make(map[string][]*models.Hit)
	for _, hit := range hits {
		day := hit.Day()
		byDay[day] = append(byDay[day], hit)
	}
	return byDay
}

func qualifies(hit *models.Hit, itemType models.ItemType, contents contentSet) bool {
	if hit.ItemType != itemType {
		return false
	}
	_, ok := contents[hit.ContentType]
	return ok
}

// total counts qualifying hits.
func total(hits []*models.Hit, itemType models.ItemType, contents contentSet) int64 {
	var n int64
	for _, hit := range hits {
		if qualifies(hit, itemType, contents) {
			n++
		}
	}
	return n
}

// unique counts distinct (session, content type) pairs among qualifying hits.
func unique(hits []*models.Hit, itemType models.ItemType, contents contentSet) int64 {
	type sessionContent struct {
		session string
		content models.ContentType
	}
	seen := make(map[sessionContent]struct{})
	for _, hit := range hits {
		if qualifies(hit, itemType, contents) {
			seen[sessionContent{session: hit.SessionID, content: hit.ContentType}] = struct{}{}
		}
	}
	return int64(len(seen))
}
