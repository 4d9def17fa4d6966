package classifiers

import "usage-counter/internal/models"

// Scheme names the URL scheme family that recognized an action.
type Scheme string

const (
	SchemeNew      Scheme = "new"
	SchemeLegacy   Scheme = "legacy"
	SchemeSSP      Scheme = "ssp"
	SchemePreprint Scheme = "preprint"
	SchemeNone     Scheme = "none"
)

// input is one action to classify. action is already lower-cased.
type input struct {
	collection string
	action     string
}

// match holds what a recognizer extracted before lookups are consulted.
type match struct {
	scheme Scheme
	// weak marks a match the classifier only keeps when no later recognizer claims the action.
	weak bool

	params   map[string]string
	pid      string
	issnHint string
	acronym  string
	// format is empty when the scheme does not encode it.
	format  models.Format
	lang    string
	yop     string
	content models.ContentType
	// itemType is set when the URL grammar alone decides the item type.
	itemType models.ItemType
}

// Recognizer is one URL scheme family. The set is closed: only this package implements it.
type Recognizer interface {
	Scheme() Scheme
	tryMatch(in input) (match, bool)
}
