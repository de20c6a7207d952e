package noko

import (
	"context"
	"log/slog"
	"time"

	"noko-client/internal/domain"
	api "noko-client/pkg/noko"
)

// Source implements ports.NokoSource using the Noko API v2.
type Source struct {
	client *api.Client
	log    *slog.Logger
}

func NewSource(baseURL, accessToken string, log *slog.Logger) *Source {
	return &Source{
		client: api.NewClient(baseURL, accessToken, log),
		log:    log,
	}
}

// ListTimeEntries fetches entries logged in [from, to], walking every
// result page.
func (s *Source) ListTimeEntries(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error) {
	entries, err := s.client.ListEntries(ctx, api.GetEntriesParameters{
		From: from,
		To:   to,
	})
	if err != nil {
		return nil, err
	}

	// Map to domain
	out := make([]domain.TimeEntry, 0, len(entries))
	for _, e := range entries {
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			s.log.Warn("skipping entry with unparseable date",
				slog.Int64("id", e.ID), slog.String("date", e.Date))
			continue
		}
		var userID, projectID *int64
		if e.User != nil {
			id := e.User.ID
			userID = &id
		}
		if e.Project != nil {
			id := e.Project.ID
			projectID = &id
		}
		tags := make([]string, 0, len(e.Tags))
		for _, t := range e.Tags {
			tags = append(tags, t.Name)
		}
		out = append(out, domain.TimeEntry{
			ID:          e.ID,
			Date:        date,
			Description: e.Description,
			Minutes:     e.Minutes,
			Billable:    e.Billable,
			UserID:      userID,
			ProjectID:   projectID,
			Tags:        tags,
			InvoicedAt:  e.InvoicedAt,
			ApprovedAt:  e.ApprovedAt,
			UpdatedAt:   e.UpdatedAt,
		})
	}
	return out, nil
}

// ListProjects fetches every project visible to the configured token.
func (s *Source) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.client.ListProjects(ctx, api.GetProjectsParameters{})
	if err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		var groupID *int64
		if p.Group != nil {
			id := p.Group.ID
			groupID = &id
		}
		out = append(out, domain.Project{
			ID:               p.ID,
			Name:             p.Name,
			Enabled:          p.Enabled,
			Billable:         p.Billable,
			Color:            p.Color,
			BillingIncrement: p.BillingIncrement,
			GroupID:          groupID,
			Minutes:          p.Minutes,
			UpdatedAt:        p.UpdatedAt,
		})
	}
	return out, nil
}
