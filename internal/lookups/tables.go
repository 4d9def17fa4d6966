package lookups

import (
	"sort"
	"strings"
)

// FormatLangs lists, for one identifier, the languages available per format and the default language.
type FormatLangs struct {
	Default string              `json:"default" yaml:"default"`
	Formats map[string][]string `json:"formats" yaml:"formats"`
}

// Allows reports whether lang is available for format.
func (f FormatLangs) Allows(format, lang string) bool {
	for _, candidate := range f.Formats[format] {
		if candidate == lang {
			return true
		}
	}
	return false
}

// Tables holds the auxiliary lookup tables. Every table is optional and a missing key is an
// expected outcome. Tables are read-only once built by Index.
type Tables struct {
	// PIDToISSN maps an article identifier to candidate container identifiers.
	PIDToISSN map[string][]string `json:"pid_to_issn" yaml:"pid_to_issn"`
	// PDFToPID maps collection to a normalized PDF path to candidate identifiers.
	PDFToPID map[string]map[string][]string `json:"pdf_to_pid" yaml:"pdf_to_pid"`
	// ISSNToAcronym maps collection to container identifier to acronym.
	ISSNToAcronym map[string]map[string]string `json:"issn_to_acronym" yaml:"issn_to_acronym"`
	// PIDToFormatLang maps collection to identifier to its format and language entry.
	PIDToFormatLang map[string]map[string]FormatLangs `json:"pid_to_format_lang" yaml:"pid_to_format_lang"`
	// PIDToYOP maps collection to identifier to publication year.
	PIDToYOP map[string]map[string]string `json:"pid_to_yop" yaml:"pid_to_yop"`

	acronymToISSN map[string]map[string]string
}

// Empty returns tables with no entries.
func Empty() *Tables {
	t := &Tables{}
	t.Index()
	return t
}

// Index normalizes keys and builds the acronym to container index. Identifiers and container
// identifiers are keyed upper case, acronyms and PDF paths lower case, and every accessor
// folds its argument the same way.
func (t *Tables) Index() {
	if t.PIDToISSN != nil {
		normalized := make(map[string][]string, len(t.PIDToISSN))
		for pid, issns := range t.PIDToISSN {
			upper := make([]string, 0, len(issns))
			for _, issn := range issns {
				upper = append(upper, strings.ToUpper(issn))
			}
			normalized[strings.ToUpper(pid)] = upper
		}
		t.PIDToISSN = normalized
	}

	for collection, paths := range t.PDFToPID {
		normalized := make(map[string][]string, len(paths))
		for path, pids := range paths {
			upper := make([]string, 0, len(pids))
			for _, pid := range pids {
				upper = append(upper, strings.ToUpper(pid))
			}
			normalized[strings.ToLower(path)] = upper
		}
		t.PDFToPID[collection] = normalized
	}

	t.acronymToISSN = make(map[string]map[string]string, len(t.ISSNToAcronym))
	for collection, acronyms := range t.ISSNToAcronym {
		normalized := make(map[string]string, len(acronyms))
		inverted := make(map[string]string, len(acronyms))
		for issn, acronym := range acronyms {
			issn = strings.ToUpper(issn)
			acronym = strings.ToLower(acronym)
			normalized[issn] = acronym
			// Several containers may share an acronym; keep the lexicographic minimum.
			if current, ok := inverted[acronym]; !ok || issn < current {
				inverted[acronym] = issn
			}
		}
		t.ISSNToAcronym[collection] = normalized
		t.acronymToISSN[collection] = inverted
	}

	for collection, pids := range t.PIDToFormatLang {
		normalized := make(map[string]FormatLangs, len(pids))
		for pid, entry := range pids {
			normalized[strings.ToUpper(pid)] = entry
		}
		t.PIDToFormatLang[collection] = normalized
	}

	for collection, pids := range t.PIDToYOP {
		normalized := make(map[string]string, len(pids))
		for pid, yop := range pids {
			normalized[strings.ToUpper(pid)] = yop
		}
		t.PIDToYOP[collection] = normalized
	}
}

// ISSNForPID returns the lexicographically smallest container identifier of pid.
func (t *Tables) ISSNForPID(pid string) (string, bool) {
	return smallest(t.PIDToISSN[strings.ToUpper(pid)])
}

// PIDForPDFPath returns the lexicographically smallest identifier for a normalized PDF path.
func (t *Tables) PIDForPDFPath(collection, path string) (string, bool) {
	return smallest(t.PDFToPID[collection][strings.ToLower(path)])
}

func (t *Tables) Acronym(collection, issn string) (string, bool) {
	acronym, ok := t.ISSNToAcronym[collection][strings.ToUpper(issn)]
	return acronym, ok
}

func (t *Tables) ISSNForAcronym(collection, acronym string) (string, bool) {
	issn, ok := t.acronymToISSN[collection][strings.ToLower(acronym)]
	return issn, ok
}

func (t *Tables) FormatLangs(collection, pid string) (FormatLangs, bool) {
	entry, ok := t.PIDToFormatLang[collection][strings.ToUpper(pid)]
	return entry, ok
}

func (t *Tables) YOP(collection, pid string) (string, bool) {
	yop, ok := t.PIDToYOP[collection][strings.ToUpper(pid)]
	return yop, ok && yop != ""
}

func smallest(values []string) (string, bool) {
	if len(values) == 0 {
		return "", false
	}
	sorted := append([]string(nil), values...)
	sort.Strings(sorted)
	return sorted[0], true
}
