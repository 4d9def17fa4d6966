package models

import (
	"fmt"
	"time"
)

// SessionGranularity is the resolution to which server time is truncated when building a session key.
type SessionGranularity string

const (
	SessionMinute SessionGranularity = "minute"
	SessionHour   SessionGranularity = "hour"
	SessionDay    SessionGranularity = "day"
)

func (g SessionGranularity) Duration() time.Duration {
	switch g {
	case SessionMinute:
		return time.Minute
	case SessionHour:
		return time.Hour
	case SessionDay:
		return 24 * time.Hour
	default:
		panic(fmt.Sprintf("invalid SessionGranularity: %q", g))
	}
}

// FormatBucket renders t truncated to the granularity. Server times carry no zone and are read as UTC.
func (g SessionGranularity) FormatBucket(t time.Time) string {
	utc := t.UTC()

	switch g.Duration() {
	case time.Minute:
		return utc.Format("2006-01-02 15:04")
	case time.Hour:
		return utc.Format("2006-01-02 15")
	case 24 * time.Hour:
		return utc.Format("2006-01-02")
	}

	return ""
}
