package classifiers

import (
	"regexp"
	"strings"

	"usage-counter/internal/models"
)

var (
	legacySerialISSNPattern = regexp.MustCompile(`script_sci_serial/pid_(\d{4}-\d{3}[\dx])`)
	legacyIssuesISSNPattern = regexp.MustCompile(`script_sci_issues/pid_(\d{4}-\d{3}[\dx])`)

	// Acronym evidence for pages that carry neither pid nor issn.
	legacyAcronymPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/img/revistas/([^/?#]+)/`),
		regexp.MustCompile(`/img/fbpe/([^/?#]+)/`),
		regexp.MustCompile(`/revistas/([^/?#]+)/[a-z]edboard\.htm`),
		regexp.MustCompile(`/revistas/([^/?#]+)/[a-z]aboutj\.htm`),
		regexp.MustCompile(`/revistas/([^/?#]+)/[a-z]instruc\.htm`),
		regexp.MustCompile(`/revistas/([^/?#]+)/[a-z]subscrp\.htm`),
		regexp.MustCompile(`/revistas/([^/?#]+)/`),
		regexp.MustCompile(`/pdf/([^/?#]+)/`),
	}
)

// legacyDomain holds the compiled patterns of one collection host.
type legacyDomain struct {
	scieloPHP     *regexp.Regexp
	articlePlus   *regexp.Regexp
	pdf           *regexp.Regexp
	readcube      *regexp.Regexp
	scieloOrgPHP  *regexp.Regexp
	rss           *regexp.Regexp
	revistas      *regexp.Regexp
	googleMetrics *regexp.Regexp
	img           *regexp.Regexp
	statJournal   *regexp.Regexp
	evaluation    *regexp.Regexp
	team          *regexp.Regexp
	search        *regexp.Regexp
	home          *regexp.Regexp
}

func compileLegacyDomain(host string) legacyDomain {
	quoted := regexp.QuoteMeta(host)
	compile := func(suffix string) *regexp.Regexp {
		return regexp.MustCompile(quoted + suffix)
	}
	return legacyDomain{
		scieloPHP:     compile(`/scielo\.php`),
		articlePlus:   compile(`/article_plus\.php`),
		pdf:           compile(`/pdf/[^?#]*\.pdf`),
		readcube:      compile(`/pdf/readcube/epdf\.php`),
		scieloOrgPHP:  compile(`/scieloorg/php/`),
		rss:           compile(`/rss\.php`),
		revistas:      compile(`/revistas/`),
		googleMetrics: compile(`/google_metrics/get_h5_m5\.php`),
		img:           compile(`/img/(?:fbpe|revistas)/`),
		statJournal:   compile(`/statjournal\.php`),
		evaluation:    compile(`/avaliacao`),
		team:          compile(`/equipe`),
		search:        compile(`/cgi-bin/wxis\.exe/iah`),
		home:          regexp.MustCompile(quoted),
	}
}

// legacyRecognizer handles the scielo.php?script=... family and the static pages of the
// collection hosts. An action that only mentions a collection host is a weak platform home match.
type legacyRecognizer struct {
	scripts map[string]models.ContentType
	domains map[string][]legacyDomain
}

func newLegacyRecognizer(rules Rules) legacyRecognizer {
	domains := make(map[string][]legacyDomain, len(rules.CollectionDomains))
	for collection, hosts := range rules.CollectionDomains {
		for _, host := range hosts {
			domains[collection] = append(domains[collection], compileLegacyDomain(host))
		}
	}
	return legacyRecognizer{scripts: rules.ScriptToContent, domains: domains}
}

func (legacyRecognizer) Scheme() Scheme { return SchemeLegacy }

func (r legacyRecognizer) tryMatch(in input) (match, bool) {
	domains := r.domains[in.collection]
	if len(domains) == 0 {
		return match{}, false
	}

	params := ParseActionParams(in.action)
	m := match{
		scheme:   SchemeLegacy,
		params:   params,
		pid:      normalizePID(params["pid"]),
		issnHint: strings.ToUpper(params["issn"]),
		lang:     params["tlng"],
		acronym:  acronymFromAction(in.action),
	}

	for _, domain := range domains {
		content, ok := r.contentFor(domain, in.action, params, m.pid)
		if ok {
			m.content = content
			m.issnHint = r.issnHintFor(content, in.action, m.issnHint)
			return m, true
		}
		if domain.home.MatchString(in.action) {
			m.content = models.ContentPlatformHome
			m.weak = true
			return m, true
		}
	}

	return match{}, false
}

func (r legacyRecognizer) contentFor(domain legacyDomain, action string, params map[string]string, pid string) (models.ContentType, bool) {
	if domain.scieloPHP.MatchString(action) {
		if script := params["script"]; script != "" {
			if content, ok := r.scripts[script]; ok {
				return content, true
			}
			return models.ContentOther, true
		}
		switch {
		case strings.Contains(action, "?download"):
			return models.ContentArticleDownloadCitation, true
		case strings.Contains(action, "script_sci_issues"):
			return models.ContentJournalIssues, true
		case strings.Contains(action, "script_sci_serial"):
			return models.ContentJournalSerial, true
		}
		return models.ContentPlatformMainPage, true
	}

	if domain.articlePlus.MatchString(action) {
		return models.ContentArticleFullTextPlus, true
	}
	if domain.pdf.MatchString(action) {
		return models.ContentArticlePDF, true
	}
	if domain.readcube.MatchString(action) {
		return models.ContentArticleExternalPDF, true
	}

	if domain.scieloOrgPHP.MatchString(action) {
		switch {
		case strings.Contains(action, "articlexml"):
			return models.ContentArticleXML, true
		case strings.Contains(action, "citedscielo"):
			return models.ContentArticleCitedSciELO, true
		case strings.Contains(action, "reference"):
			return models.ContentArticleReferenceList, true
		case strings.Contains(action, "related"):
			return models.ContentArticleRelated, true
		case strings.Contains(action, "translate"):
			return models.ContentArticleTranslate, true
		}
	}

	if domain.rss.MatchString(action) {
		switch {
		case IsIssuePID(pid):
			return models.ContentIssueRSS, true
		case IsJournalPID(pid):
			return models.ContentJournalRSS, true
		}
	}

	if domain.revistas.MatchString(action) {
		switch {
		case strings.Contains(action, "aboutj.htm"):
			return models.ContentJournalAbout, true
		case strings.Contains(action, "edboard.htm"):
			return models.ContentJournalEditorial, true
		case strings.Contains(action, "instruc.htm"):
			return models.ContentJournalInstructions, true
		case strings.Contains(action, "subscrp.htm"):
			return models.ContentJournalSubscription, true
		}
		return models.ContentJournalRevistas, true
	}

	if domain.googleMetrics.MatchString(action) {
		return models.ContentJournalGoogleMetrics, true
	}

	if domain.img.MatchString(action) {
		if strings.Contains(action, "fbpe") {
			return models.ContentJournalImgFBPE, true
		}
		return models.ContentJournalImgRevistas, true
	}

	if domain.statJournal.MatchString(action) {
		return models.ContentJournalStat, true
	}
	if domain.evaluation.MatchString(action) {
		return models.ContentPlatformEvaluation, true
	}
	if domain.team.MatchString(action) {
		return models.ContentPlatformTeam, true
	}
	if domain.search.MatchString(action) {
		return models.ContentPlatformSearch, true
	}

	return 0, false
}

// issnHintFor reads the container identifier out of pid_<issn> path segments of journal pages.
func (r legacyRecognizer) issnHintFor(content models.ContentType, action, current string) string {
	var pattern *regexp.Regexp
	switch content {
	case models.ContentJournalSerial:
		pattern = legacySerialISSNPattern
	case models.ContentJournalIssues:
		pattern = legacyIssuesISSNPattern
	default:
		return current
	}
	if groups := pattern.FindStringSubmatch(action); groups != nil {
		return strings.ToUpper(groups[1])
	}
	return current
}

func acronymFromAction(action string) string {
	for _, pattern := range legacyAcronymPatterns {
		if groups := pattern.FindStringSubmatch(action); groups != nil {
			return groups[1]
		}
	}
	return ""
}
