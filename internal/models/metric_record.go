package models

// Counters holds the four COUNTER values of one item on one day.
type Counters struct {
	TotalItemRequests        int64 `json:"totalItemRequests" db:"total_item_requests"`
	TotalItemInvestigations  int64 `json:"totalItemInvestigations" db:"total_item_investigations"`
	UniqueItemRequests       int64 `json:"uniqueItemRequests" db:"unique_item_requests"`
	UniqueItemInvestigations int64 `json:"uniqueItemInvestigations" db:"unique_item_investigations"`
}

// Accumulate adds other into c.
func (c *Counters) Accumulate(other Counters) {
	c.TotalItemRequests += other.TotalItemRequests
	c.TotalItemInvestigations += other.TotalItemInvestigations
	c.UniqueItemRequests += other.UniqueItemRequests
	c.UniqueItemInvestigations += other.UniqueItemInvestigations
}

func (c Counters) Sum() int64 {
	return c.TotalItemRequests + c.TotalItemInvestigations + c.UniqueItemRequests + c.UniqueItemInvestigations
}

func (c Counters) IsZero() bool {
	return c.Sum() == 0
}

// MetricRecord is the unit delivered to the metric sink and additively merged there.
//
// Example JSON:
//
//	{
//	  "group": "article",
//	  "collection": "scl",
//	  "pid": "S0001-37652020000100001",
//	  "issn": "0001-3765",
//	  "yop": "2020",
//	  "day": "2021-03-14",
//	  "counters": {
//	    "totalItemRequests": 3,
//	    "totalItemInvestigations": 4,
//	    "uniqueItemRequests": 2,
//	    "uniqueItemInvestigations": 3
//	  }
//	}
type MetricRecord struct {
	Group      GroupCategory `json:"group"`
	Collection string        `json:"collection"`
	PID        string        `json:"pid"`
	ISSN       string        `json:"issn"`
	YOP        string        `json:"yop"`
	Day        string        `json:"day"`
	Counters   Counters      `json:"counters"`
}
