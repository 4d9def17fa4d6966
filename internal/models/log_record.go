package models

// LogRecord is one raw access record as read from a log file or the log store.
// ServerTime is kept as text (YYYY-MM-DD HH:MM:SS) until the hit factory parses it.
type LogRecord struct {
	IP             string `json:"ip" db:"ip" validate:"required"`
	ServerTime     string `json:"serverTime" db:"server_time" validate:"required,servertime"`
	BrowserName    string `json:"browserName" db:"browser_name"`
	BrowserVersion string `json:"browserVersion" db:"browser_version"`
	VisitID        string `json:"visitId" db:"visit_id" validate:"required"`
	VisitorID      string `json:"visitorId" db:"visitor_id" validate:"required"`
	ActionID       string `json:"actionId" db:"action_id" validate:"required"`
	ActionName     string `json:"actionName" db:"action_name" validate:"required"`

	// UserAgent is optional. When present and the browser fields are empty they are derived from it.
	UserAgent string `json:"userAgent,omitempty" db:"-"`
}

// RecordBatch is an ordered group of records processed as one session scope (one file or one day).
type RecordBatch struct {
	BatchID    string       `json:"batchId"`
	Collection string       `json:"collection"`
	Source     string       `json:"source"`
	Records    []*LogRecord `json:"records"`
}
