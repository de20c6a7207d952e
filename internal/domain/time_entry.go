package domain

import "time"

// TimeEntry represents a Noko time entry in the domain.
type TimeEntry struct {
	ID          int64
	Date        time.Time // Day the time was logged against
	Description string
	Minutes     int
	Billable    bool
	UserID      *int64
	ProjectID   *int64
	Tags        []string
	InvoicedAt  *time.Time
	ApprovedAt  *time.Time
	UpdatedAt   time.Time
}
