package hits

import (
	"strings"
	"time"

	"usage-counter/internal/models"
)

const (
	DefaultGranularity       = models.SessionHour
	DefaultDoubleClickWindow = 30 * time.Second
)

// SessionKey groups hits believed to come from one user session: same address, same browser
// and same server time truncated to granularity.
func SessionKey(ip, browserName, browserVersion string, serverTime time.Time, granularity models.SessionGranularity) string {
	return strings.Join([]string{ip, browserName, browserVersion, granularity.FormatBucket(serverTime)}, "|")
}
