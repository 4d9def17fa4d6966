package hits

import (
	"time"

	"usage-counter/internal/models"
)

// HitManager buffers the hits of one batch by session, removes double clicks and regroups
// the survivors by identifier. It is not safe for concurrent use; hits must be added in
// source order because double-click removal is a linear scan.
//
//go:generate mockgen -source=hit_manager.go -destination=./mocks/hit_manager_mock.go -package=mocks
type HitManager interface {
	Add(hit *models.Hit)
	RemoveDoubleClicks() int
	GroupByIdentifier() map[string][]*models.Hit
	Reset()
	Len() int
}

type hitManager struct {
	window time.Duration

	sessionOrder []string
	sessions     map[string][]*models.Hit
}

func NewHitManager(doubleClickWindow time.Duration) HitManager {
	return &hitManager{
		window:   doubleClickWindow,
		sessions: make(map[string][]*models.Hit),
	}
}

func (m *hitManager) Add(hit *models.Hit) {
	if hit == nil {
		return
	}
	if _, ok := m.sessions[hit.SessionID]; !ok {
		m.sessionOrder = append(m.sessionOrder, hit.SessionID)
	}
	m.sessions[hit.SessionID] = append(m.sessions[hit.SessionID], hit)
}

// RemoveDoubleClicks collapses, within each session, repeats of an action that fall inside
// the window of the last surviving hit of that action. The later hit of a pair survives and
// takes the place of the earlier one. Returns the number of hits removed.
func (m *hitManager) RemoveDoubleClicks() int {
	removed := 0
	for _, sessionID := range m.sessionOrder {
		before := len(m.sessions[sessionID])
		m.sessions[sessionID] = removeDoubleClicks(m.sessions[sessionID], m.window)
		removed += before - len(m.sessions[sessionID])
	}
	if removed > 0 {
		metricDoubleClickRemovedTotal.WithLabelValues().Add(float64(removed))
	}
	return removed
}

func removeDoubleClicks(sessionHits []*models.Hit, window time.Duration) []*models.Hit {
	survivors := make([]*models.Hit, 0, len(sessionHits))
	lastByAction := make(map[string]int, len(sessionHits))

	for _, hit := range sessionHits {
		idx, seen := lastByAction[hit.ActionName]
		if !seen {
			lastByAction[hit.ActionName] = len(survivors)
			survivors = append(survivors, hit)
			continue
		}

		previous := survivors[idx]
		if absDuration(hit.ServerTime.Sub(previous.ServerTime)) > window {
			lastByAction[hit.ActionName] = len(survivors)
			survivors = append(survivors, hit)
			continue
		}

		if !hit.ServerTime.Before(previous.ServerTime) {
			survivors[idx] = hit
		}
	}

	return survivors
}

// GroupByIdentifier regroups the surviving hits of every session by identifier. Hits with
// no identifier share the empty key.
func (m *hitManager) GroupByIdentifier() map[string][]*models.Hit {
	byPID := make(map[string][]*models.Hit)
	for _, sessionID := range m.sessionOrder {
		for _, hit := range m.sessions[sessionID] {
			byPID[hit.PID] = append(byPID[hit.PID], hit)
		}
	}
	return byPID
}

func (m *hitManager) Reset() {
	m.sessionOrder = nil
	m.sessions = make(map[string][]*models.Hit)
}

// Len returns the number of buffered hits.
func (m *hitManager) Len() int {
	total := 0
	for _, sessionHits := range m.sessions {
		total += len(sessionHits)
	}
	return total
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
