package classifiers

import (
	"context"
	"testing"

	"usage-counter/internal/lookups"
	"usage-counter/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTables() *lookups.Tables {
	tables := &lookups.Tables{
		PIDToISSN: map[string][]string{
			"KFJRGVKRJLTGKMTHXWN6LJP": {"0001-3765"},
		},
		PDFToPID: map[string]map[string][]string{
			"scl": {"/pdf/aabc/v92n1/a01.pdf": {"S0001-37652020000100001", "S0001-37652020000100002"}},
		},
		ISSNToAcronym: map[string]map[string]string{
			"scl": {"0001-3765": "aabc"},
		},
		PIDToFormatLang: map[string]map[string]lookups.FormatLangs{
			"scl": {
				"S0001-37652020000100001": {
					Default: "pt",
					Formats: map[string][]string{"html": {"pt", "en"}, "pdf": {"pt"}},
				},
			},
		},
		PIDToYOP: map[string]map[string]string{
			"scl": {"S0001-37652020000100001": "2019"},
		},
	}
	tables.Index()
	return tables
}

func TestClassifier_Classify(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier(DefaultRules(), testTables())

	tests := []struct {
		name       string
		collection string
		action     string
		expected   Descriptor
	}{
		{
			name:       "legacy full text",
			collection: "scl",
			action:     "www.scielo.br/scielo.php?script=sci_arttext&pid=S0001-37652020000100001&tlng=en",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				PID:         "S0001-37652020000100001",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatHTML,
				Lang:        "en",
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentArticleFullText,
				YOP:         "2019",
			},
		},
		{
			name:       "legacy abstract with unavailable language falls back to default",
			collection: "scl",
			action:     "www.scielo.br/scielo.php?script=sci_abstract&pid=S0001-37652020000100001&tlng=fr",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				PID:         "S0001-37652020000100001",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatHTML,
				Lang:        "pt",
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentArticleAbstract,
				YOP:         "2019",
			},
		},
		{
			name:       "legacy pdf resolved through pdf path table",
			collection: "scl",
			action:     "http://www.scielo.br/pdf/aabc/v92n1/a01.pdf",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				PID:         "S0001-37652020000100001",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatPDF,
				Lang:        "pt",
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentArticlePDF,
				YOP:         "2019",
			},
		},
		{
			name:       "legacy external pdf",
			collection: "scl",
			action:     "www.scielo.br/pdf/readcube/epdf.php?doi=10.1590/x&pid=S0001-37652020000100003",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				PID:         "S0001-37652020000100003",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatPDF,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentArticleExternalPDF,
				YOP:         "2020",
			},
		},
		{
			name:       "legacy article xml",
			collection: "scl",
			action:     "www.scielo.br/scieloorg/php/articlexml.php?pid=S0001-37652020000100003&lang=en",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				PID:         "S0001-37652020000100003",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatXML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentArticleXML,
				YOP:         "2020",
			},
		},
		{
			name:       "issue rss is an issue by identifier shape",
			collection: "scl",
			action:     "www.scielo.br/rss.php?pid=0001-376520200001&lang=en",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				PID:         "0001-376520200001",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeIssue,
				ContentType: models.ContentIssueRSS,
			},
		},
		{
			name:       "journal rss is a journal by identifier shape",
			collection: "scl",
			action:     "www.scielo.br/rss.php?pid=0001-3765&lang=en",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				PID:         "0001-3765",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeJournal,
				ContentType: models.ContentJournalRSS,
			},
		},
		{
			name:       "legacy issue table of contents",
			collection: "scl",
			action:     "www.scielo.br/scielo.php?script=sci_issuetoc&pid=0001-376520200001&lng=en",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				PID:         "0001-376520200001",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeIssue,
				ContentType: models.ContentIssueTOC,
			},
		},
		{
			name:       "legacy serial page without script parameter",
			collection: "scl",
			action:     "www.scielo.br/scielo.php/script_sci_serial/pid_0001-3765/lng_en",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeJournal,
				ContentType: models.ContentJournalSerial,
			},
		},
		{
			name:       "legacy about page resolves container through acronym",
			collection: "scl",
			action:     "www.scielo.br/revistas/aabc/iaboutj.htm",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeJournal,
				ContentType: models.ContentJournalAbout,
			},
		},
		{
			name:       "legacy evaluation page",
			collection: "scl",
			action:     "www.scielo.br/avaliacao/avaliacao_en.htm",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypePlatform,
				ContentType: models.ContentPlatformEvaluation,
			},
		},
		{
			name:       "bare collection host is the platform home",
			collection: "scl",
			action:     "www.scielo.br/",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypePlatform,
				ContentType: models.ContentPlatformHome,
			},
		},
		{
			name:       "new article html",
			collection: "scl",
			action:     "www.scielo.br/j/aabc/a/KfjRgVkRjLtGkmTHxwN6LJP/?lang=en",
			expected: Descriptor{
				Scheme:      SchemeNew,
				PID:         "kfjrgvkrjltgkmthxwn6ljp",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentNewArticleHTML,
			},
		},
		{
			name:       "new article pdf",
			collection: "scl",
			action:     "www.scielo.br/j/aabc/a/KfjRgVkRjLtGkmTHxwN6LJP/?format=pdf&lang=pt",
			expected: Descriptor{
				Scheme:      SchemeNew,
				PID:         "kfjrgvkrjltgkmthxwn6ljp",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatPDF,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentNewArticlePDF,
			},
		},
		{
			name:       "new article authors panel",
			collection: "scl",
			action:     "www.scielo.br/j/aabc/a/KfjRgVkRjLtGkmTHxwN6LJP/?lang=en#ModalTutors",
			expected: Descriptor{
				Scheme:      SchemeNew,
				PID:         "kfjrgvkrjltgkmthxwn6ljp",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentNewArticleAuthors,
			},
		},
		{
			name:       "new article abstract",
			collection: "scl",
			action:     "www.scielo.br/j/aabc/a/KfjRgVkRjLtGkmTHxwN6LJP/abstract/?lang=en",
			expected: Descriptor{
				Scheme:      SchemeNew,
				PID:         "kfjrgvkrjltgkmthxwn6ljp",
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentNewArticleAbstract,
			},
		},
		{
			name:       "new journal grid",
			collection: "scl",
			action:     "www.scielo.br/j/aabc/grid",
			expected: Descriptor{
				Scheme:      SchemeNew,
				ISSN:        "0001-3765",
				Acronym:     "aabc",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeJournal,
				ContentType: models.ContentNewJournalGrid,
			},
		},
		{
			name:       "new alphabetic listing",
			collection: "scl",
			action:     "www.scielo.br/journals/alpha?lang=en",
			expected: Descriptor{
				Scheme:      SchemeNew,
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypePlatform,
				ContentType: models.ContentNewJournalsAlphabetic,
			},
		},
		{
			name:       "ssp article html",
			collection: "spa",
			action:     "www.scielosp.org/article/rsp/2020.v54/12/pt/",
			expected: Descriptor{
				Scheme:      SchemeSSP,
				PID:         "rsp:2020.v54:12",
				Acronym:     "rsp",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentSSPArticleHTML,
				YOP:         "2020",
			},
		},
		{
			name:       "ssp article pdf",
			collection: "spa",
			action:     "www.scielosp.org/pdf/rsp/2020.v54/12/en/",
			expected: Descriptor{
				Scheme:      SchemeSSP,
				PID:         "rsp:2020.v54:12",
				Acronym:     "rsp",
				Format:      models.FormatPDF,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentSSPArticlePDF,
				YOP:         "2020",
			},
		},
		{
			name:       "ssp issue",
			collection: "spa",
			action:     "www.scielosp.org/j/rsp/i/2020.v54/",
			expected: Descriptor{
				Scheme:      SchemeSSP,
				PID:         "rsp:2020.v54",
				Acronym:     "rsp",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeIssue,
				ContentType: models.ContentSSPIssue,
				YOP:         "2020",
			},
		},
		{
			name:       "ssp journal main page",
			collection: "spa",
			action:     "www.scielosp.org/j/rsp/",
			expected: Descriptor{
				Scheme:      SchemeSSP,
				Acronym:     "rsp",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeJournal,
				ContentType: models.ContentSSPJournalMainPage,
			},
		},
		{
			name:       "ssp host without a recognized path is the platform home",
			collection: "spa",
			action:     "www.scielosp.org/",
			expected: Descriptor{
				Scheme:      SchemeLegacy,
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypePlatform,
				ContentType: models.ContentPlatformHome,
			},
		},
		{
			name:       "preprint abstract",
			collection: "pre",
			action:     "preprints.scielo.org/index.php/scielo/preprint/view/1234",
			expected: Descriptor{
				Scheme:      SchemePreprint,
				PID:         "1234",
				Format:      models.FormatHTML,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentPreprintAbstract,
			},
		},
		{
			name:       "escaped preprint pdf download",
			collection: "pre",
			action:     "preprints.scielo.org/index.php/scielo%2Fpreprint%2Fdownload%2F1234%2F2345",
			expected: Descriptor{
				Scheme:      SchemePreprint,
				PID:         "1234",
				Format:      models.FormatPDF,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeArticle,
				ContentType: models.ContentPreprintPDF,
			},
		},
		{
			name:       "unknown host",
			collection: "scl",
			action:     "example.com/whatever",
			expected: Descriptor{
				Scheme:      SchemeNone,
				Format:      models.FormatUndefined,
				Lang:        models.LanguageUndefined,
				ItemType:    models.ItemTypeOther,
				ContentType: models.ContentOther,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifier.Classify(context.Background(), tt.collection, tt.action)
			require.NotNil(t, got)
			assert.NotNil(t, got.Params)

			got.Params = nil
			assert.Equal(t, tt.expected, *got)
		})
	}
}

func TestClassifier_ScenarioA(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier(DefaultRules(), nil)
	got := classifier.Classify(context.Background(), "scl", "http://www.scielo.br/scielo.php?script=sci_arttext&pid=S0001-37652020000100001")

	assert.Equal(t, models.ItemTypeArticle, got.ItemType)
	assert.Equal(t, models.ContentArticleFullText, got.ContentType)
	assert.Equal(t, "S0001-37652020000100001", got.PID)
	assert.Equal(t, "0001-3765", got.ISSN)
	assert.Equal(t, "sci_arttext", got.Params["script"])
}

func TestClassifier_UnknownIdentifierDegradesGracefully(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier(DefaultRules(), lookups.Empty())
	got := classifier.Classify(context.Background(), "scl", "www.scielo.br/j/zzzz/a/NotInAnyTable/?lang=en")

	assert.Equal(t, "notinanytable", got.PID)
	assert.Equal(t, "", got.ISSN)
	assert.Equal(t, models.LanguageUndefined, got.Lang)
	assert.Equal(t, "", got.YOP)
	assert.Equal(t, models.ItemTypeArticle, got.ItemType)
}

func TestClassifier_ItemTypeWithoutIdentifier(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier(DefaultRules(), testTables())

	tests := []struct {
		name     string
		action   string
		pid      string
		issn     string
		itemType models.ItemType
		content  models.ContentType
	}{
		{
			name:     "issn parameter on a platform listing",
			action:   "www.scielo.br/scielo.php?script=sci_alphabetic&lng=en&issn=0001-3765",
			issn:     "0001-3765",
			itemType: models.ItemTypePlatform,
			content:  models.ContentPlatformAlphabetic,
		},
		{
			name:     "issn parameter on an abstract without pid",
			action:   "www.scielo.br/scielo.php?script=sci_abstract&issn=0001-3765",
			issn:     "0001-3765",
			itemType: models.ItemTypeArticle,
			content:  models.ContentArticleAbstract,
		},
		{
			name:     "raw pdf asset is credited to its article",
			action:   "www.scielo.br/media/assets/0001-3765/gpz7jfmp/a01.pdf",
			pid:      "gpz7jfmp",
			issn:     "0001-3765",
			itemType: models.ItemTypeArticle,
			content:  models.ContentNewArticlePDF,
		},
		{
			name:     "unsupported new article format is counted as other",
			action:   "www.scielo.br/j/aabc/a/gpz7jfmp/?format=epub",
			pid:      "gpz7jfmp",
			issn:     "0001-3765",
			itemType: models.ItemTypeOther,
			content:  models.ContentOther,
		},
		{
			name:     "raw pdf asset under an acronym",
			action:   "www.scielo.br/media/assets/aabc/GPZ7JFMP/a01.pdf",
			pid:      "gpz7jfmp",
			issn:     "0001-3765",
			itemType: models.ItemTypeArticle,
			content:  models.ContentNewArticlePDF,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifier.Classify(context.Background(), "scl", tt.action)
			assert.Equal(t, tt.pid, got.PID)
			assert.Equal(t, tt.itemType, got.ItemType)
			assert.Equal(t, tt.content, got.ContentType)
			if tt.issn != "" {
				assert.Equal(t, tt.issn, got.ISSN)
				assert.Equal(t, "aabc", got.Acronym)
			}
		})
	}
}

func TestClassifier_Totality(t *testing.T) {
	t.Parallel()

	classifier := NewClassifier(DefaultRules(), testTables())
	actions := []string{
		"",
		"?",
		"#",
		"%%%",
		"?pid=",
		"?pid=%zz",
		"www.scielo.br/scielo.php?script=",
		"www.scielo.br/scielo.php?script=sci_unknown&pid=S0001",
		"www.scielo.br/scieloorg/php/unknown.php",
		"www.scielo.br/rss.php?pid=garbage",
		"www.scielo.br/pdf/",
		"www.scielosp.org/media/assets/rsp/2020.v54/figure.png",
		"www.scielo.br/j/aabc/a/xyz/?format=epub",
		"preprints.scielo.org/preprint/view/",
		"www.scielo.br/scielo.php?pid%3D",
		"javascript:void(0)",
	}

	for _, action := range actions {
		for _, collection := range []string{"scl", "spa", "unknown", ""} {
			got := classifier.Classify(context.Background(), collection, action)
			require.NotNil(t, got, action)
			assert.Contains(t, []models.ItemType{
				models.ItemTypeArticle,
				models.ItemTypeIssue,
				models.ItemTypeJournal,
				models.ItemTypePlatform,
				models.ItemTypeOther,
			}, got.ItemType, action)
			assert.NotEmpty(t, got.ContentType.String(), action)
			assert.NotEmpty(t, got.Format, action)
			assert.NotEmpty(t, got.Lang, action)
		}
	}
}

func TestRules_WithDomains(t *testing.T) {
	t.Parallel()

	rules := DefaultRules().WithDomains(map[string][]string{
		"tst": {"www.Example.org", "example.org", " "},
	})
	assert.Equal(t, []string{"example.org"}, rules.CollectionDomains["tst"])
	assert.Equal(t, []string{"scielo.br"}, rules.CollectionDomains["scl"])

	classifier := NewClassifier(rules, nil)
	got := classifier.Classify(context.Background(), "tst", "www.example.org/scielo.php?script=sci_serial&pid=0001-3765")
	assert.Equal(t, models.ContentJournalSerial, got.ContentType)
	assert.Equal(t, models.ItemTypeJournal, got.ItemType)
}
