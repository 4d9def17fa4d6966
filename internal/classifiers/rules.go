package classifiers

import (
	"strings"

	"usage-counter/internal/models"
)

// Rules are the declarative tables driving classification. They are built once and shared
// read-only by every classification.
type Rules struct {
	// ScriptToContent resolves the legacy script parameter.
	ScriptToContent map[string]models.ContentType
	// CollectionDomains lists the host names of each collection, without a www. prefix.
	CollectionDomains map[string][]string
}

// DefaultScriptToContent is the legacy script parameter table.
func DefaultScriptToContent() map[string]models.ContentType {
	return map[string]models.ContentType{
		"sci_arttext":      models.ContentArticleFullText,
		"sci_arttext_plus": models.ContentArticleFullTextPlus,
		"sci_abstract":     models.ContentArticleAbstract,
		"sci_isoref":       models.ContentArticleHowToCite,
		"sci_pdf":          models.ContentArticlePDF,
		"sci_issuetoc":     models.ContentIssueTOC,
		"sci_serial":       models.ContentJournalSerial,
		"sci_issues":       models.ContentJournalIssues,
		"sci_alphabetic":   models.ContentPlatformAlphabetic,
		"sci_subject":      models.ContentPlatformSubject,
		"sci_home":         models.ContentPlatformMainPage,
	}
}

// DefaultCollectionDomains is the collection to domain table of the network.
func DefaultCollectionDomains() map[string][]string {
	return map[string][]string{
		"scl": {"scielo.br"},
		"chi": {"scielo.cl"},
		"spa": {"scielosp.org"},
		"prt": {"scielo.mec.pt"},
		"esp": {"scielo.isciii.es"},
		"sza": {"scielo.org.za"},
		"psi": {"pepsic.bvsalud.org"},
		"per": {"scielo.org.pe"},
		"arg": {"scielo.org.ar"},
		"ury": {"scielo.edu.uy"},
		"mex": {"scielo.org.mx"},
		"col": {"scielo.org.co"},
		"ven": {"scielo.org.ve"},
		"cri": {"scielo.sa.cr"},
		"cub": {"scielo.sld.cu"},
	}
}

// DefaultRules returns the built-in tables.
func DefaultRules() Rules {
	return Rules{
		ScriptToContent:   DefaultScriptToContent(),
		CollectionDomains: DefaultCollectionDomains(),
	}
}

// WithDomains returns a copy of r where the given collections use the given domains.
// Domains are lower-cased and lose a leading www.
func (r Rules) WithDomains(overrides map[string][]string) Rules {
	domains := make(map[string][]string, len(r.CollectionDomains)+len(overrides))
	for collection, hosts := range r.CollectionDomains {
		domains[collection] = hosts
	}
	for collection, hosts := range overrides {
		normalized := make([]string, 0, len(hosts))
		seen := make(map[string]struct{}, len(hosts))
		for _, host := range hosts {
			host = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(host)), "www.")
			if host == "" {
				continue
			}
			if _, dup := seen[host]; dup {
				continue
			}
			seen[host] = struct{}{}
			normalized = append(normalized, host)
		}
		domains[collection] = normalized
	}
	return Rules{ScriptToContent: r.ScriptToContent, CollectionDomains: domains}
}
