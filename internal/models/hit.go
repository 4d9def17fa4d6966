package models

import "time"

// Hit is one normalized access event. It is built once by the hit factory and never mutated.
type Hit struct {
	IP             string
	ServerTime     time.Time
	BrowserName    string
	BrowserVersion string
	VisitID        string
	VisitorID      string
	ActionID       string
	ActionName     string

	ActionParams map[string]string
	PID          string
	ISSN         string
	Acronym      string
	Format       Format
	Lang         string
	ItemType     ItemType
	ContentType  ContentType
	YOP          string
	SessionID    string
}

// Day returns the calendar day of the hit as YYYY-MM-DD.
func (h *Hit) Day() string {
	return h.ServerTime.UTC().Format(DayLayout)
}

// DayLayout is the layout of calendar day keys.
const DayLayout = "2006-01-02"
