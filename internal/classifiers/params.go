package classifiers

import (
	"net/url"
	"strings"
)

// queryPair is one decoded key/value pair of a query string.
type queryPair struct {
	key   string
	value string
}

// parseQueryPairs decodes a raw query string in order. Pairs without a separator or with an
// empty value are dropped, and '+' decodes to a space. Undecodable escapes are kept verbatim.
func parseQueryPairs(rawQuery string) []queryPair {
	var pairs []queryPair
	for _, field := range strings.FieldsFunc(rawQuery, func(r rune) bool { return r == '&' || r == ';' }) {
		key, value, found := strings.Cut(field, "=")
		if !found || value == "" {
			continue
		}
		pairs = append(pairs, queryPair{key: unescape(key), value: unescape(value)})
	}
	return pairs
}

func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}

// rawQueryOf returns the query string of an action, which may lack a scheme and host.
func rawQueryOf(action string) string {
	_, query, found := strings.Cut(action, "?")
	if !found {
		return ""
	}
	query, _, _ = strings.Cut(query, "#")
	return query
}

// fragmentOf returns the fragment of an action without the leading '#'.
func fragmentOf(action string) string {
	_, fragment, _ := strings.Cut(action, "#")
	return fragment
}

// sanitizedKeys are the parameters whose values are cut at the first space and lose a trailing '.'.
var sanitizedKeys = map[string]struct{}{
	"issn":   {},
	"script": {},
	"pid":    {},
	"tlng":   {},
}

// ParseActionParams extracts the query parameters of an action.
//
// A query whose identifier was encoded with its separators escaped decodes to a single pair
// holding the whole parameter list, or to no pair at all; such queries are rebuilt with the
// separators restored and parsed again.
// The issn, script, pid and tlng values are sanitized, and pid keeps only digits and S, s, -, x, X.
func ParseActionParams(action string) map[string]string {
	rawQuery := rawQueryOf(action)
	pairs := parseQueryPairs(rawQuery)

	switch {
	case len(pairs) == 1 && (strings.Contains(pairs[0].key, "pid") || strings.Contains(pairs[0].value, "pid")):
		if reparsed := parseQueryPairs(pairs[0].key + "=" + pairs[0].value); len(reparsed) > 0 {
			pairs = reparsed
		}
	case len(pairs) == 0 && strings.Contains(rawQuery, "pid"):
		pairs = parseQueryPairs(unescape(rawQuery))
	}

	params := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		params[strings.TrimSpace(pair.key)] = strings.TrimSpace(pair.value)
	}

	for key, value := range params {
		if _, ok := sanitizedKeys[key]; !ok {
			continue
		}
		value, _, _ = strings.Cut(value, " ")
		value = strings.TrimSuffix(value, ".")
		if key == "pid" {
			value = sanitizePID(value)
		}
		params[key] = value
	}

	return params
}

func sanitizePID(value string) string {
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9', r == 'S', r == 's', r == '-', r == 'x', r == 'X':
			b.WriteRune(r)
		}
	}
	return b.String()
}
