package domain

import "time"

// StatisticsEvent is one append-only page-view record.
type StatisticsEvent struct {
	ID        string
	Path      string
	UserAgent string
	IP        string
	Referrer  string
	Screen    string
	Timestamp time.Time
}

// PathCount counts views of one path.
type PathCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// DayCount counts events of one calendar day (YYYY-MM-DD).
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// ReferrerCount counts views arriving from one referrer.
type ReferrerCount struct {
	Referrer string `json:"referrer"`
	Count    int    `json:"count"`
}

// Dashboard is the operator rollup, recomputed from raw records on every call.
type Dashboard struct {
	TotalPageViews  int             `json:"totalPageViews"`
	UniqueVisitors  int             `json:"uniqueVisitors"`
	PageViewsByPath []PathCount     `json:"pageViewsByPath"`
	PageViewsPerDay []DayCount      `json:"pageViewsPerDay"`
	TopReferrers    []ReferrerCount `json:"topReferrers"`
	BookingsTotal   int             `json:"bookingsTotal"`
	BookingsPerDay  []DayCount      `json:"bookingsPerDay"`
}
