package common

const (
	// DashboardID is the fixed primary key of the singleton dashboard row.
	// The row is addressed by this well-known id instead of "the first row"
	// so the singleton stays unambiguous.
	DashboardID = int64(1)
)
