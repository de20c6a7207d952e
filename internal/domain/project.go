package domain

import "time"

// Project represents a Noko project in the domain layer.
type Project struct {
	ID               int64
	Name             string
	Enabled          bool
	Billable         bool
	Color            string
	BillingIncrement int
	GroupID          *int64
	Minutes          int
	UpdatedAt        time.Time // Last update timestamp from Noko
}
