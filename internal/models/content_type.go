package models

import "strconv"

// ContentType is the fine-grained category of what an action retrieved.
//
// Values are banded by item type, and the band is the fallback item type when the
// identifier carries no shape evidence:
//
//	  0 -  49 article
//	 50 -  99 issue
//	100 - 149 journal
//	150 - 199 platform
//	200 -     other
type ContentType int

// Article band.
const (
	ContentArticleFullText ContentType = iota
	ContentArticleFullTextPlus
	ContentArticleAbstract
	ContentArticleHowToCite
	ContentArticleXML
	ContentArticlePDF
	ContentArticleTranslate
	ContentArticleExternalPDF
	ContentArticleDownloadCitation
	ContentArticleCitedSciELO
	ContentArticleReferenceList
	ContentArticleRelated
)

const (
	ContentNewArticleAbstract ContentType = iota + 20
	ContentNewArticleHTML
	ContentNewArticleXML
	ContentNewArticlePDF
	ContentNewArticleAuthors
	ContentNewArticleTablesAndFigures
	ContentNewArticleRequestPDF
	ContentNewArticleHowToCite
	ContentNewArticleTranslate
)

const (
	ContentSSPArticleHTML ContentType = iota + 30
	ContentSSPArticlePDF
)

const (
	ContentPreprintAbstract ContentType = iota + 40
	ContentPreprintPDF
)

// Issue band.
const (
	ContentIssueTOC ContentType = iota + 50
	ContentIssueRSS
)

const (
	ContentSSPIssue ContentType = iota + 60
	ContentSSPIssueRSS
)

// Journal band.
const (
	ContentJournalSerial ContentType = iota + 100
	ContentJournalIssues
	ContentJournalAbout
	ContentJournalEditorial
	ContentJournalInstructions
	ContentJournalSubscription
	ContentJournalRevistas
	ContentJournalGoogleMetrics
	ContentJournalImgFBPE
	ContentJournalImgRevistas
	ContentJournalStat
	ContentJournalRSS
)

const (
	ContentNewJournalFeed ContentType = iota + 120
	ContentNewJournalGrid
	ContentNewJournalTOC
	ContentNewJournal
)

const (
	ContentSSPJournalRSS ContentType = iota + 130
	ContentSSPJournalIssues
	ContentSSPJournalAbout
	ContentSSPJournalMainPage
)

// Platform band.
const (
	ContentPlatformHome ContentType = iota + 150
	ContentPlatformMainPage
	ContentPlatformEvaluation
	ContentPlatformTeam
	ContentPlatformAlphabetic
	ContentPlatformSubject
	ContentPlatformSearch
)

const (
	ContentNewJournalsAlphabetic ContentType = iota + 160
	ContentNewJournalsThematic
)

const (
	ContentSSPPlatformAlphabetic ContentType = iota + 170
	ContentSSPPlatformThematic
	ContentSSPPlatformAbout
)

// ContentOther is assigned when no recognizer claims an action.
const ContentOther ContentType = 200

var contentTypeNames = map[ContentType]string{
	ContentArticleFullText:            "article_full_text",
	ContentArticleFullTextPlus:        "article_full_text_plus",
	ContentArticleAbstract:            "article_abstract",
	ContentArticleHowToCite:           "article_how_to_cite",
	ContentArticleXML:                 "article_xml",
	ContentArticlePDF:                 "article_pdf",
	ContentArticleTranslate:           "article_translate",
	ContentArticleExternalPDF:         "article_external_pdf",
	ContentArticleDownloadCitation:    "article_download_citation",
	ContentArticleCitedSciELO:         "article_cited_scielo",
	ContentArticleReferenceList:       "article_reference_list",
	ContentArticleRelated:             "article_related",
	ContentNewArticleAbstract:         "new_article_abstract",
	ContentNewArticleHTML:             "new_article_html",
	ContentNewArticleXML:              "new_article_xml",
	ContentNewArticlePDF:              "new_article_pdf",
	ContentNewArticleAuthors:          "new_article_authors",
	ContentNewArticleTablesAndFigures: "new_article_tables_and_figures",
	ContentNewArticleRequestPDF:       "new_article_request_pdf",
	ContentNewArticleHowToCite:        "new_article_how_to_cite",
	ContentNewArticleTranslate:        "new_article_translate",
	ContentSSPArticleHTML:             "ssp_article_html",
	ContentSSPArticlePDF:              "ssp_article_pdf",
	ContentPreprintAbstract:           "preprint_abstract",
	ContentPreprintPDF:                "preprint_pdf",
	ContentIssueTOC:                   "issue_toc",
	ContentIssueRSS:                   "issue_rss",
	ContentSSPIssue:                   "ssp_issue",
	ContentSSPIssueRSS:                "ssp_issue_rss",
	ContentJournalSerial:              "journal_serial",
	ContentJournalIssues:              "journal_issues",
	ContentJournalAbout:               "journal_about",
	ContentJournalEditorial:           "journal_editorial",
	ContentJournalInstructions:        "journal_instructions",
	ContentJournalSubscription:        "journal_subscription",
	ContentJournalRevistas:            "journal_revistas",
	ContentJournalGoogleMetrics:       "journal_google_metrics",
	ContentJournalImgFBPE:             "journal_img_fbpe",
	ContentJournalImgRevistas:         "journal_img_revistas",
	ContentJournalStat:                "journal_stat",
	ContentJournalRSS:                 "journal_rss",
	ContentNewJournalFeed:             "new_journal_feed",
	ContentNewJournalGrid:             "new_journal_grid",
	ContentNewJournalTOC:              "new_journal_toc",
	ContentNewJournal:                 "new_journal",
	ContentSSPJournalRSS:              "ssp_journal_rss",
	ContentSSPJournalIssues:           "ssp_journal_issues",
	ContentSSPJournalAbout:            "ssp_journal_about",
	ContentSSPJournalMainPage:         "ssp_journal_main_page",
	ContentPlatformHome:               "platform_home",
	ContentPlatformMainPage:           "platform_main_page",
	ContentPlatformEvaluation:         "platform_evaluation",
	ContentPlatformTeam:               "platform_team",
	ContentPlatformAlphabetic:         "platform_alphabetic",
	ContentPlatformSubject:            "platform_subject",
	ContentPlatformSearch:             "platform_search",
	ContentNewJournalsAlphabetic:      "new_journals_alphabetic",
	ContentNewJournalsThematic:        "new_journals_thematic",
	ContentSSPPlatformAlphabetic:      "ssp_platform_alphabetic",
	ContentSSPPlatformThematic:        "ssp_platform_thematic",
	ContentSSPPlatformAbout:           "ssp_platform_about",
	ContentOther:                      "other",
}

func (c ContentType) String() string {
	if name, ok := contentTypeNames[c]; ok {
		return name
	}
	return "content_" + strconv.Itoa(int(c))
}

// ItemType maps the content type band to an item type.
func (c ContentType) ItemType() ItemType {
	switch {
	case c < 50:
		return ItemTypeArticle
	case c < 100:
		return ItemTypeIssue
	case c < 150:
		return ItemTypeJournal
	case c < 200:
		return ItemTypePlatform
	}
	return ItemTypeOther
}
