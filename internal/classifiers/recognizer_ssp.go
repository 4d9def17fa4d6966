package classifiers

import (
	"regexp"
	"strings"

	"usage-counter/internal/models"
)

const sspHost = "scielosp.org"

var (
	sspArticleHTMLPattern  = regexp.MustCompile(`/article/([^/?#]+)/(\d{4}\.[^/?#]+)/([^/?#]+)/([a-z]{2})/?`)
	sspArticlePDFPattern   = regexp.MustCompile(`/pdf/([^/?#]+)/(\d{4}\.[^/?#]+)/([^/?#]+)/([a-z]{2})/?`)
	sspMediaAssetPattern   = regexp.MustCompile(`/media/assets/([^/?#]+)/(\d{4}\.[^/?#]+)/([^?#&]+)`)
	sspIssuePattern        = regexp.MustCompile(`/j/([^/?#]+)/i/(\d{4}\.[^/?#]+)/?`)
	sspIssueFeedPattern    = regexp.MustCompile(`/feed/([^/?#]+)/(\d{4}\.[^/?#]+)/?`)
	sspJournalFeedPattern  = regexp.MustCompile(`/feed/([^/?#]+)/?(?:[?#]|$)`)
	sspJournalGridPattern  = regexp.MustCompile(`/j/([^/?#]+)/grid/?`)
	sspJournalAboutPattern = regexp.MustCompile(`/journal/([^/?#]+)/about/?`)
	sspJournalPattern      = regexp.MustCompile(`/j/([^/?#]+)/?(?:[?#]|$)`)
	sspJournalsAlphaPat    = regexp.MustCompile(`/journals/alpha/?(?:[?#]|$)`)
	sspJournalsThemePat    = regexp.MustCompile(`/journals/thematic/?(?:[?#]|$)`)
	sspPlatformAboutPat    = regexp.MustCompile(`/about/?(?:[?#]|$)`)
)

// sspRecognizer handles the public health journal host, whose paths encode acronym,
// year.volume.issue, page range or asset file, and language. Items get a synthetic
// identifier acronym:year.volume.issue:pages.
type sspRecognizer struct{}

func (sspRecognizer) Scheme() Scheme { return SchemeSSP }

func (r sspRecognizer) tryMatch(in input) (match, bool) {
	if !strings.Contains(in.action, sspHost) {
		return match{}, false
	}

	m := match{scheme: SchemeSSP, params: ParseActionParams(in.action)}

	if groups := sspArticleHTMLPattern.FindStringSubmatch(in.action); groups != nil {
		r.fillArticle(&m, groups, models.FormatHTML, models.ContentSSPArticleHTML)
		return m, true
	}
	if groups := sspArticlePDFPattern.FindStringSubmatch(in.action); groups != nil {
		r.fillArticle(&m, groups, models.FormatPDF, models.ContentSSPArticlePDF)
		return m, true
	}

	assetSource := in.action
	if ssmPath, ok := m.params["resource_ssm_path"]; ok {
		assetSource = ssmPath
	}
	if groups := sspMediaAssetPattern.FindStringSubmatch(assetSource); groups != nil && strings.HasSuffix(groups[3], ".pdf") {
		m.acronym = groups[1]
		m.pid = sspPID(groups[1], groups[2], groups[3])
		m.format = models.FormatPDF
		m.content = models.ContentSSPArticlePDF
		m.yop = yearFromSSPPID(m.pid)
		return m, true
	}

	if groups := sspIssuePattern.FindStringSubmatch(in.action); groups != nil {
		r.fillIssue(&m, groups, models.ContentSSPIssue)
		return m, true
	}
	if groups := sspIssueFeedPattern.FindStringSubmatch(in.action); groups != nil {
		r.fillIssue(&m, groups, models.ContentSSPIssueRSS)
		return m, true
	}

	for _, candidate := range []struct {
		pattern *regexp.Regexp
		content models.ContentType
	}{
		{sspJournalFeedPattern, models.ContentSSPJournalRSS},
		{sspJournalGridPattern, models.ContentSSPJournalIssues},
		{sspJournalAboutPattern, models.ContentSSPJournalAbout},
		{sspJournalPattern, models.ContentSSPJournalMainPage},
	} {
		if groups := candidate.pattern.FindStringSubmatch(in.action); groups != nil {
			m.acronym = groups[1]
			m.format = models.FormatHTML
			m.content = candidate.content
			return m, true
		}
	}

	for _, candidate := range []struct {
		pattern *regexp.Regexp
		content models.ContentType
	}{
		{sspJournalsAlphaPat, models.ContentSSPPlatformAlphabetic},
		{sspJournalsThemePat, models.ContentSSPPlatformThematic},
		{sspPlatformAboutPat, models.ContentSSPPlatformAbout},
	} {
		if candidate.pattern.MatchString(in.action) {
			m.format = models.FormatHTML
			m.content = candidate.content
			return m, true
		}
	}

	return match{}, false
}

func (sspRecognizer) fillArticle(m *match, groups []string, format models.Format, content models.ContentType) {
	m.acronym = groups[1]
	m.pid = sspPID(groups[1], groups[2], groups[3])
	m.lang = groups[4]
	m.format = format
	m.content = content
	m.yop = yearFromSSPPID(m.pid)
}

func (sspRecognizer) fillIssue(m *match, groups []string, content models.ContentType) {
	m.acronym = groups[1]
	m.pid = sspPID(groups[1], groups[2], "")
	m.format = models.FormatHTML
	m.content = content
	m.yop = yearFromSSPPID(m.pid)
}

// sspPID joins the path parts of an item into its lower-cased synthetic identifier.
func sspPID(acronym, yearVolumeIssue, pagesOrFile string) string {
	parts := []string{acronym, yearVolumeIssue}
	if pagesOrFile != "" {
		parts = append(parts, pagesOrFile)
	}
	return strings.ToLower(strings.Join(parts, ":"))
}
