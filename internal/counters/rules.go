package counters

import "usage-counter/internal/models"

// GroupRule declares which hits a group counts: hits of ItemType whose content type is in
// Requests count as requests, those in Investigations as investigations.
type GroupRule struct {
	ItemType       models.ItemType
	Requests       []models.ContentType
	Investigations []models.ContentType
}

// RuleTable holds one rule per group category.
type RuleTable map[models.GroupCategory]GroupRule

var (
	articleRequests = []models.ContentType{
		models.ContentArticleFullText,
		models.ContentArticleFullTextPlus,
		models.ContentArticleXML,
		models.ContentArticlePDF,
		models.ContentArticleExternalPDF,
		models.ContentNewArticleHTML,
		models.ContentNewArticleXML,
		models.ContentNewArticlePDF,
		models.ContentSSPArticleHTML,
		models.ContentSSPArticlePDF,
		models.ContentPreprintPDF,
	}
	articleInvestigationsOnly = []models.ContentType{
		models.ContentArticleAbstract,
		models.ContentArticleHowToCite,
		models.ContentArticleTranslate,
		models.ContentArticleDownloadCitation,
		models.ContentArticleCitedSciELO,
		models.ContentArticleReferenceList,
		models.ContentArticleRelated,
		models.ContentNewArticleAbstract,
		models.ContentNewArticleAuthors,
		models.ContentNewArticleTablesAndFigures,
		models.ContentNewArticleRequestPDF,
		models.ContentNewArticleHowToCite,
		models.ContentNewArticleTranslate,
		models.ContentPreprintAbstract,
	}

	issueRequests = []models.ContentType{
		models.ContentIssueTOC,
		models.ContentSSPIssue,
	}
	issueInvestigationsOnly = []models.ContentType{
		models.ContentIssueRSS,
		models.ContentSSPIssueRSS,
	}

	journalRequests = []models.ContentType{
		models.ContentJournalSerial,
		models.ContentJournalIssues,
		models.ContentNewJournal,
		models.ContentNewJournalGrid,
		models.ContentNewJournalTOC,
		models.ContentSSPJournalMainPage,
		models.ContentSSPJournalIssues,
	}
	journalInvestigationsOnly = []models.ContentType{
		models.ContentJournalAbout,
		models.ContentJournalEditorial,
		models.ContentJournalInstructions,
		models.ContentJournalSubscription,
		models.ContentJournalRevistas,
		models.ContentJournalGoogleMetrics,
		models.ContentJournalImgFBPE,
		models.ContentJournalImgRevistas,
		models.ContentJournalStat,
		models.ContentJournalRSS,
		models.ContentNewJournalFeed,
		models.ContentSSPJournalRSS,
		models.ContentSSPJournalAbout,
	}

	platformRequests = []models.ContentType{
		models.ContentPlatformHome,
		models.ContentPlatformMainPage,
		models.ContentPlatformAlphabetic,
		models.ContentPlatformSubject,
		models.ContentNewJournalsAlphabetic,
		models.ContentNewJournalsThematic,
		models.ContentSSPPlatformAlphabetic,
		models.ContentSSPPlatformThematic,
	}
	platformInvestigationsOnly = []models.ContentType{
		models.ContentPlatformEvaluation,
		models.ContentPlatformTeam,
		models.ContentPlatformSearch,
		models.ContentSSPPlatformAbout,
	}
)

// DefaultRuleTable returns the built-in rules. Every request category is also an investigation.
func DefaultRuleTable() RuleTable {
	return RuleTable{
		models.GroupArticle: {
			ItemType:       models.ItemTypeArticle,
			Requests:       articleRequests,
			Investigations: concat(articleRequests, articleInvestigationsOnly),
		},
		models.GroupIssue: {
			ItemType:       models.ItemTypeIssue,
			Requests:       issueRequests,
			Investigations: concat(issueRequests, issueInvestigationsOnly),
		},
		models.GroupJournal: {
			ItemType:       models.ItemTypeJournal,
			Requests:       journalRequests,
			Investigations: concat(journalRequests, journalInvestigationsOnly),
		},
		models.GroupPlatform: {
			ItemType:       models.ItemTypePlatform,
			Requests:       platformRequests,
			Investigations: concat(platformRequests, platformInvestigationsOnly),
		},
		models.GroupOther: {
			ItemType:       models.ItemTypeOther,
			Requests:       []models.ContentType{models.ContentOther},
			Investigations: []models.ContentType{models.ContentOther},
		},
	}
}

func concat(parts ...[]models.ContentType) []models.ContentType {
	var out []models.ContentType
	for _, part := range parts {
		out = append(out, part...)
	}
	return out
}
