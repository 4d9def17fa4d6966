package models

// ItemType is the coarse kind of resource an access targeted.
type ItemType string

const (
	ItemTypeArticle  ItemType = "article"
	ItemTypeIssue    ItemType = "issue"
	ItemTypeJournal  ItemType = "journal"
	ItemTypePlatform ItemType = "platform"
	ItemTypeOther    ItemType = "other"
)

// GroupCategory partitions computed counters. Each group counts hits of one item type.
type GroupCategory string

const (
	GroupArticle  GroupCategory = "article"
	GroupIssue    GroupCategory = "issue"
	GroupJournal  GroupCategory = "journal"
	GroupPlatform GroupCategory = "platform"
	GroupOther    GroupCategory = "other"
)

// GroupCategories lists every group in output order.
var GroupCategories = []GroupCategory{GroupArticle, GroupIssue, GroupJournal, GroupPlatform, GroupOther}

// Format is the representation in which a resource was delivered.
type Format string

const (
	FormatHTML      Format = "html"
	FormatPDF       Format = "pdf"
	FormatXML       Format = "xml"
	FormatUndefined Format = "undefined"
)

// LanguageUndefined is assigned when the language of an access cannot be resolved.
const LanguageUndefined = "undefined"
