package classifiers

import (
	"net/url"
	"regexp"

	"usage-counter/internal/models"
)

var (
	preprintAbstractPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/preprint/view/(\d+)/?(?:[?#]|$)`),
		regexp.MustCompile(`/preprint/document/(\d+)/?(?:[?#]|$)`),
		regexp.MustCompile(`/preprint/view/(\d+)/version/\d+/?(?:[?#]|$)`),
	}
	preprintPDFPatterns = []*regexp.Regexp{
		regexp.MustCompile(`/preprint/view/(\d+)/\d+`),
		regexp.MustCompile(`/preprint/download/(\d+)/\d+`),
		regexp.MustCompile(`/preprint/document/(\d+)/download`),
		regexp.MustCompile(`/preprint/download/(\d+)/version/\d+`),
	}
)

// preprintRecognizer handles the preprint server. Its actions are matched unescaped and the
// identifier is the numeric submission id.
type preprintRecognizer struct{}

func (preprintRecognizer) Scheme() Scheme { return SchemePreprint }

func (preprintRecognizer) tryMatch(in input) (match, bool) {
	action := in.action
	if unescaped, err := url.PathUnescape(action); err == nil {
		action = unescaped
	}

	for _, pattern := range preprintAbstractPatterns {
		if groups := pattern.FindStringSubmatch(action); groups != nil {
			return match{
				scheme:  SchemePreprint,
				params:  ParseActionParams(in.action),
				pid:     groups[1],
				format:  models.FormatHTML,
				content: models.ContentPreprintAbstract,
			}, true
		}
	}

	for _, pattern := range preprintPDFPatterns {
		if groups := pattern.FindStringSubmatch(action); groups != nil {
			return match{
				scheme:  SchemePreprint,
				params:  ParseActionParams(in.action),
				pid:     groups[1],
				format:  models.FormatPDF,
				content: models.ContentPreprintPDF,
			}, true
		}
	}

	return match{}, false
}
