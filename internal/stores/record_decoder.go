package stores

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"usage-counter/internal/models"
)

var ErrMissingColumn = errors.New("missing required column")

// recordColumns maps a normalized header name (lower case, no underscores) to its field setter.
var recordColumns = map[string]func(record *models.LogRecord, value string){
	"ip":             func(r *models.LogRecord, v string) { r.IP = v },
	"servertime":     func(r *models.LogRecord, v string) { r.ServerTime = v },
	"browsername":    func(r *models.LogRecord, v string) { r.BrowserName = v },
	"browserversion": func(r *models.LogRecord, v string) { r.BrowserVersion = v },
	"visitid":        func(r *models.LogRecord, v string) { r.VisitID = v },
	"visitorid":      func(r *models.LogRecord, v string) { r.VisitorID = v },
	"actionid":       func(r *models.LogRecord, v string) { r.ActionID = v },
	"actionname":     func(r *models.LogRecord, v string) { r.ActionName = v },
	"useragent":      func(r *models.LogRecord, v string) { r.UserAgent = v },
}

var requiredColumns = []string{"ip", "servertime", "visitid", "visitorid", "actionid", "actionname"}

// DecodeRecords reads tab-separated log records. The first line is a header naming the
// columns (serverTime and server_time are equivalent); unknown columns are ignored. Rows
// shorter than the header leave the trailing fields empty.
//
// Example:
//
//	ip	serverTime	browserName	browserVersion	visitId	visitorId	actionId	actionName
//	10.0.0.1	2021-03-14 10:42:07	firefox	86.0	42	abcdef0123456789	7	www.scielo.br/scielo.php?script=sci_arttext&pid=S0001-37652020000100001
func DecodeRecords(r io.Reader) ([]*models.LogRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	setters := make([]func(*models.LogRecord, string), len(header))
	seen := make(map[string]bool, len(header))
	for i, name := range header {
		normalized := normalizeColumn(name)
		setters[i] = recordColumns[normalized]
		seen[normalized] = true
	}
	for _, required := range requiredColumns {
		if !seen[required] {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, required)
		}
	}

	var records []*models.LogRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}
		if len(row) == 1 && strings.TrimSpace(row[0]) == "" {
			continue
		}

		record := &models.LogRecord{}
		for i, value := range row {
			if i < len(setters) && setters[i] != nil {
				setters[i](record, strings.TrimSpace(value))
			}
		}
		records = append(records, record)
	}
	return records, nil
}

func normalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), "_", ""))
}
