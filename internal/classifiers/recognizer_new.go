package classifiers

import (
	"regexp"
	"strings"

	"usage-counter/internal/models"
)

var (
	newArticleAbstractPattern = regexp.MustCompile(`/j/([^/?#]+)/a/([^/?#]+)/abstract/?`)
	newArticlePattern         = regexp.MustCompile(`/j/([^/?#]+)/a/([^/?#]+)/?`)
	newMediaAssetPattern      = regexp.MustCompile(`/media/assets/([^/?#]+)/([^/?#]+)/([^?#]+)`)
	newJournalFeedPattern     = regexp.MustCompile(`/j/([^/?#]+)/feed/?`)
	newJournalGridPattern     = regexp.MustCompile(`/j/([^/?#]+)/grid/?`)
	newJournalTOCPattern      = regexp.MustCompile(`/j/([^/?#]+)/i/[^/?#]+/?`)
	newJournalPattern         = regexp.MustCompile(`/j/([^/?#]+)/?(?:[?#]|$)`)
	newJournalsAlphaPattern   = regexp.MustCompile(`/journals/alpha/?(?:[?#]|$)`)
	newJournalsThemePattern   = regexp.MustCompile(`/journals/thematic/?(?:[?#]|$)`)
)

// newFragments refine an article page opened on one of its modal panels.
var newFragments = map[string]models.ContentType{
	"modaltutors":               models.ContentNewArticleAuthors,
	"modaltablesfigures":        models.ContentNewArticleTablesAndFigures,
	"modaldownloads":            models.ContentNewArticleRequestPDF,
	"modalarticles":             models.ContentNewArticleHowToCite,
	"modalversionstranslations": models.ContentNewArticleTranslate,
}

// newRecognizer handles the /j/<acronym>/a/<pid>/ family. Hosts of the SSP scheme share
// the /j/ prefix and are left to sspRecognizer.
type newRecognizer struct{}

func (newRecognizer) Scheme() Scheme { return SchemeNew }

func (r newRecognizer) tryMatch(in input) (match, bool) {
	if strings.Contains(in.action, sspHost) {
		return match{}, false
	}

	params := ParseActionParams(in.action)
	m := match{
		scheme: SchemeNew,
		params: params,
		format: models.Format(params["format"]),
		lang:   params["lang"],
	}
	if m.format == "" {
		m.format = models.FormatHTML
	}
	fragment := fragmentOf(in.action)
	if fragment != "" {
		params["fragment"] = fragment
	}

	if groups := newArticleAbstractPattern.FindStringSubmatch(in.action); groups != nil {
		m.acronym, m.pid = groups[1], groups[2]
		m.itemType = models.ItemTypeArticle
		m.content = models.ContentNewArticleAbstract
		return m, true
	}

	if groups := newArticlePattern.FindStringSubmatch(in.action); groups != nil {
		m.acronym, m.pid = groups[1], groups[2]
		m.itemType = models.ItemTypeArticle
		switch m.format {
		case models.FormatHTML:
			if content, ok := newFragments[fragment]; ok {
				m.content = content
			} else {
				m.content = models.ContentNewArticleHTML
			}
		case models.FormatXML:
			m.content = models.ContentNewArticleXML
		case models.FormatPDF:
			m.content = models.ContentNewArticlePDF
		default:
			m.format = models.FormatUndefined
			m.content = models.ContentOther
			m.itemType = ""
		}
		return m, true
	}

	if groups := newMediaAssetPattern.FindStringSubmatch(in.action); groups != nil && strings.HasSuffix(groups[3], ".pdf") {
		if IsJournalPID(strings.ToUpper(groups[1])) {
			m.issnHint = strings.ToUpper(groups[1])
		} else {
			m.acronym = groups[1]
		}
		m.pid = groups[2]
		m.itemType = models.ItemTypeArticle
		m.format = models.FormatPDF
		m.content = models.ContentNewArticlePDF
		return m, true
	}

	for _, candidate := range []struct {
		pattern *regexp.Regexp
		content models.ContentType
	}{
		{newJournalFeedPattern, models.ContentNewJournalFeed},
		{newJournalGridPattern, models.ContentNewJournalGrid},
		{newJournalTOCPattern, models.ContentNewJournalTOC},
		{newJournalPattern, models.ContentNewJournal},
	} {
		if groups := candidate.pattern.FindStringSubmatch(in.action); groups != nil {
			m.acronym = groups[1]
			m.itemType = models.ItemTypeJournal
			m.content = candidate.content
			return m, true
		}
	}

	if newJournalsAlphaPattern.MatchString(in.action) {
		m.itemType = models.ItemTypePlatform
		m.content = models.ContentNewJournalsAlphabetic
		return m, true
	}
	if newJournalsThemePattern.MatchString(in.action) {
		m.itemType = models.ItemTypePlatform
		m.content = models.ContentNewJournalsThematic
		return m, true
	}

	return match{}, false
}
