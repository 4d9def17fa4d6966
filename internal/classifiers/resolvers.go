package classifiers

import (
	"context"
	"regexp"
	"strings"

	"usage-counter/internal/models"
	"usage-counter/internal/shared/loggers"
)

var (
	pdfSuffixPattern = regexp.MustCompile(`\.pdf(?:$|[?#/])`)
	pdfPathPattern   = regexp.MustCompile(`/pdf/[^?#]*`)
)

// resolveItemType keeps a type decided by the URL grammar, then prefers the shape of the
// identifier. Container evidence only counts when the action carries an identifier; otherwise
// the content type band decides.
func resolveItemType(explicit models.ItemType, pid, issnHint string, content models.ContentType) models.ItemType {
	if explicit != "" {
		return explicit
	}
	if pid != "" {
		switch {
		case IsArticlePID(pid):
			return models.ItemTypeArticle
		case IsIssuePID(pid):
			return models.ItemTypeIssue
		case IsJournalPID(pid), IsJournalPID(issnHint):
			return models.ItemTypeJournal
		}
	}
	return content.ItemType()
}

// resolveISSN derives the container identifier from the identifier shape, then the pid lookup,
// then container evidence found in the action. Acronym evidence is handled by the caller.
func (c *classifier) resolveISSN(pid, issnHint string) string {
	switch {
	case IsJournalPID(pid):
		return pid
	case IsIssuePID(pid):
		if issn, ok := issuePIDToISSN(pid); ok {
			return issn
		}
	case IsArticlePID(pid):
		if issn, ok := articlePIDToISSN(pid); ok {
			return issn
		}
	}

	if pid != "" {
		if issn, ok := c.tables.ISSNForPID(pid); ok {
			return issn
		}
		metricLookupMissTotal.WithLabelValues(tablePIDToISSN).Inc()
	}

	if IsJournalPID(issnHint) {
		return issnHint
	}
	return ""
}

// resolveFormat keeps a format encoded by the scheme, else infers it from the content type.
func resolveFormat(explicit models.Format, content models.ContentType, action string) models.Format {
	if explicit != "" {
		return explicit
	}
	switch content {
	case models.ContentArticlePDF, models.ContentArticleExternalPDF:
		return models.FormatPDF
	case models.ContentArticleXML:
		return models.FormatXML
	case models.ContentOther:
		return models.FormatUndefined
	}
	if pdfSuffixPattern.MatchString(action) {
		return models.FormatPDF
	}
	return models.FormatHTML
}

// resolveLanguage keeps the requested language when the identifier offers it in format,
// otherwise falls back to the identifier's default language or LanguageUndefined.
func (c *classifier) resolveLanguage(ctx context.Context, collection, pid string, format models.Format, requested string) string {
	entry, ok := c.tables.FormatLangs(collection, pid)
	if !ok {
		metricLookupMissTotal.WithLabelValues(tablePIDToFormatLang).Inc()
		loggers.Ctx(ctx).Debug().
			Str(loggers.FieldPID, pid).
			Str("format", string(format)).
			Msg("pid not found in format-language table")
		return models.LanguageUndefined
	}

	if requested != "" && entry.Allows(string(format), requested) {
		return requested
	}

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldPID, pid).
		Str("format", string(format)).
		Str("lang", requested).
		Msg("language not available for pid and format")
	if entry.Default == "" {
		return models.LanguageUndefined
	}
	return entry.Default
}

// resolveYOP prefers the publication year table, then the year embedded in the identifier.
func (c *classifier) resolveYOP(collection, pid, hint string) string {
	if yop, ok := c.tables.YOP(collection, pid); ok {
		return yop
	}
	if pid != "" {
		metricLookupMissTotal.WithLabelValues(tablePIDToYOP).Inc()
	}
	if yop := yearFromArticlePID(pid); yop != "" {
		return yop
	}
	return hint
}

// resolvePDFPID maps the /pdf/... path of an action to an identifier.
func (c *classifier) resolvePDFPID(ctx context.Context, collection, action string) string {
	path, ok := normalizedPDFPath(action)
	if !ok {
		return ""
	}
	if pid, ok := c.tables.PIDForPDFPath(collection, path); ok {
		return pid
	}
	metricLookupMissTotal.WithLabelValues(tablePDFToPID).Inc()
	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldAction, action).
		Str("pdf_path", path).
		Msg("pdf path not associated with a pid")
	return ""
}

// normalizedPDFPath drops any host prefix and trailing slash and enforces a .pdf suffix.
func normalizedPDFPath(action string) (string, bool) {
	path := pdfPathPattern.FindString(action)
	if path == "" {
		return "", false
	}
	path = strings.TrimSuffix(path, "/")
	if !strings.HasSuffix(path, ".pdf") {
		path += ".pdf"
	}
	return path, true
}
