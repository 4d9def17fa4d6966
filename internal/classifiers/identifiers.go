package classifiers

import (
	"regexp"
	"strings"
)

var (
	articlePIDPattern = regexp.MustCompile(`^S\d{4}-\d{3}[\dX]\d{13}$`)
	issuePIDPattern   = regexp.MustCompile(`^\d{4}-\d{3}[\dX]\d{8}$`)
	journalPIDPattern = regexp.MustCompile(`^\d{4}-\d{3}[\dX]$`)

	// The four characters after the container identifier of an article pid are its year.
	articlePIDYearPattern = regexp.MustCompile(`^S\d{4}-\d{3}[\dX](\d{4})`)
	sspPIDYearPattern     = regexp.MustCompile(`^[^:]+:(\d{4})\.`)
)

// IsArticlePID reports whether pid has the shape S + container identifier + 13 digits.
func IsArticlePID(pid string) bool { return articlePIDPattern.MatchString(pid) }

// IsIssuePID reports whether pid has the shape container identifier + 8 digits.
func IsIssuePID(pid string) bool { return issuePIDPattern.MatchString(pid) }

// IsJournalPID reports whether pid has the shape of a container identifier.
func IsJournalPID(pid string) bool { return journalPIDPattern.MatchString(pid) }

// normalizePID upper-cases identifiers of the legacy shapes so a lower-cased action still
// yields S0001-3765... rather than s0001-3765....
func normalizePID(pid string) string {
	return strings.ToUpper(pid)
}

// articlePIDToISSN takes the container identifier embedded in a full article pid.
func articlePIDToISSN(pid string) (string, bool) {
	if strings.HasPrefix(pid, "S") && len(pid) == 23 && strings.Contains(pid, "-") {
		return pid[1:10], true
	}
	return "", false
}

// issuePIDToISSN takes the container identifier leading an issue pid.
func issuePIDToISSN(pid string) (string, bool) {
	if !strings.HasPrefix(pid, "S") && len(pid) == 17 {
		return pid[:9], true
	}
	return "", false
}

// yearFromArticlePID extracts the year embedded in an article pid, accepting four digits only.
func yearFromArticlePID(pid string) string {
	match := articlePIDYearPattern.FindStringSubmatch(pid)
	if len(match) != 2 {
		return ""
	}
	return match[1]
}

// yearFromSSPPID extracts the year of a synthetic acronym:year.volume... identifier.
func yearFromSSPPID(pid string) string {
	match := sspPIDYearPattern.FindStringSubmatch(pid)
	if len(match) != 2 {
		return ""
	}
	return match[1]
}
