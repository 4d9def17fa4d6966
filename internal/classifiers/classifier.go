package classifiers

import (
	"context"
	"strings"

	"usage-counter/internal/lookups"
	"usage-counter/internal/models"
	"usage-counter/internal/shared/loggers"
)

// Descriptor is the normalized reading of one action.
type Descriptor struct {
	Scheme      Scheme
	Params      map[string]string
	PID         string
	ISSN        string
	Acronym     string
	Format      models.Format
	Lang        string
	ItemType    models.ItemType
	ContentType models.ContentType
	YOP         string
}

// Classifier maps actions to descriptors. Classify is total: every action yields an item
// type and a content type, ContentOther when nothing recognizes it.
//
//go:generate mockgen -source=classifier.go -destination=./mocks/classifier_mock.go -package=mocks
type Classifier interface {
	Classify(ctx context.Context, collection, action string) *Descriptor
}

type classifier struct {
	recognizers []Recognizer
	tables      *lookups.Tables
}

// NewClassifier builds a classifier trying the new, legacy, SSP and preprint schemes in order.
func NewClassifier(rules Rules, tables *lookups.Tables) Classifier {
	if tables == nil {
		tables = lookups.Empty()
	}
	return &classifier{
		recognizers: []Recognizer{
			newRecognizer{},
			newLegacyRecognizer(rules),
			sspRecognizer{},
			preprintRecognizer{},
		},
		tables: tables,
	}
}

func (c *classifier) Classify(ctx context.Context, collection, action string) *Descriptor {
	in := input{collection: collection, action: strings.ToLower(action)}

	m, ok := c.firstMatch(in)
	if !ok {
		params := ParseActionParams(in.action)
		m = match{
			scheme:  SchemeNone,
			params:  params,
			pid:     normalizePID(params["pid"]),
			content: models.ContentOther,
		}
		loggers.Ctx(ctx).Debug().
			Str(loggers.FieldCollection, collection).
			Str(loggers.FieldAction, in.action).
			Msg("action not recognized")
	}

	descriptor := c.resolve(ctx, collection, in.action, m)
	metricClassifiedTotal.WithLabelValues(string(descriptor.Scheme), string(descriptor.ItemType)).Inc()
	return descriptor
}

// firstMatch returns the first strong match. A weak match is kept only when no later
// recognizer claims the action.
func (c *classifier) firstMatch(in input) (match, bool) {
	var fallback match
	var hasFallback bool

	for _, recognizer := range c.recognizers {
		m, ok := recognizer.tryMatch(in)
		if !ok {
			continue
		}
		if !m.weak {
			return m, true
		}
		if !hasFallback {
			fallback, hasFallback = m, true
		}
	}

	return fallback, hasFallback
}

func (c *classifier) resolve(ctx context.Context, collection, action string, m match) *Descriptor {
	if m.params == nil {
		m.params = map[string]string{}
	}

	descriptor := &Descriptor{
		Scheme:      m.scheme,
		Params:      m.params,
		PID:         m.pid,
		ContentType: m.content,
	}

	if descriptor.PID == "" && m.content == models.ContentArticlePDF {
		descriptor.PID = c.resolvePDFPID(ctx, collection, action)
	}

	descriptor.ISSN = c.resolveISSN(descriptor.PID, m.issnHint)

	if descriptor.ISSN != "" {
		descriptor.Acronym, _ = c.tables.Acronym(collection, descriptor.ISSN)
	}
	if descriptor.Acronym == "" {
		descriptor.Acronym = m.acronym
	}
	if descriptor.ISSN == "" && descriptor.Acronym != "" {
		descriptor.ISSN, _ = c.tables.ISSNForAcronym(collection, descriptor.Acronym)
	}

	descriptor.ItemType = resolveItemType(m.itemType, descriptor.PID, m.issnHint, descriptor.ContentType)
	descriptor.Format = resolveFormat(m.format, descriptor.ContentType, action)
	descriptor.Lang = c.resolveLanguage(ctx, collection, descriptor.PID, descriptor.Format, m.lang)
	descriptor.YOP = c.resolveYOP(collection, descriptor.PID, m.yop)

	return descriptor
}
