package ports

import (
	"context"
	"time"

	"noko-client/internal/domain"
)

// NokoSource defines methods to fetch time entries from Noko.
type NokoSource interface {
	ListTimeEntries(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// Sink receives entries and persists them to a target system.
// The primary target is MySQL-backed reporting storage, but the
// interface is intentionally generic to support other sinks.
type Sink interface {
	SyncEntries(ctx context.Context, entries []domain.TimeEntry) error
	SyncProjects(ctx context.Context, projects []domain.Project) error
}
