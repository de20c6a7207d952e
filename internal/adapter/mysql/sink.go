package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"noko-client/internal/domain"
)

// Client implements ports.Sink by writing to MySQL tables.
type Client struct {
	db  *sql.DB
	log *slog.Logger
}

// NewClient opens a MySQL connection using the provided DSN.
// Example DSN: user:pass@tcp(host:3306)/dbname?parseTime=true&multiStatements=true
func NewClient(ctx context.Context, dsn string, log *slog.Logger) (*Client, error) {
	if dsn == "" {
		return nil, errors.New("mysql: DSN is required")
	}
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	// Conservative pool defaults; can be adjusted via env later.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	c, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(c); err != nil {
		db.Close()
		return nil, err
	}
	return &Client{db: db, log: log}, nil
}

// SyncEntries upserts entries into the noko_time_entries table.
func (c *Client) SyncEntries(ctx context.Context, entries []domain.TimeEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	// Use ON DUPLICATE KEY UPDATE to perform upserts.
	const q = `
INSERT INTO noko_time_entries
  (id, date, description, minutes, billable, user_id, project_id, tags, invoiced_at, approved_at, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  date=VALUES(date),
  description=VALUES(description),
  minutes=VALUES(minutes),
  billable=VALUES(billable),
  user_id=VALUES(user_id),
  project_id=VALUES(project_id),
  tags=VALUES(tags),
  invoiced_at=VALUES(invoiced_at),
  approved_at=VALUES(approved_at),
  updated_at=VALUES(updated_at);
`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, e := range entries {
		// Marshal tags as JSON for readability; stored as TEXT.
		tagsJSON, _ := json.Marshal(e.Tags)
		var user, project, invoiced, approved interface{}
		if e.UserID != nil {
			user = *e.UserID
		}
		if e.ProjectID != nil {
			project = *e.ProjectID
		}
		if e.InvoicedAt != nil {
			invoiced = e.InvoicedAt.UTC()
		}
		if e.ApprovedAt != nil {
			approved = e.ApprovedAt.UTC()
		}
		if _, err := stmt.ExecContext(
			ctx,
			e.ID,
			e.Date.Format("2006-01-02"),
			e.Description,
			e.Minutes,
			e.Billable,
			user,
			project,
			string(tagsJSON),
			invoiced,
			approved,
			e.UpdatedAt.UTC(),
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	c.log.Info("mysql sink upserted entries", slog.Int("count", len(entries)))
	return nil
}

// SyncProjects upserts projects into the noko_projects table.
func (c *Client) SyncProjects(ctx context.Context, projects []domain.Project) error {
	if len(projects) == 0 {
		return nil
	}
	tx, err := c.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	const q = `
INSERT INTO noko_projects
  (id, name, enabled, billable, color, billing_increment, group_id, minutes, updated_at)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name=VALUES(name),
  enabled=VALUES(enabled),
  billable=VALUES(billable),
  color=VALUES(color),
  billing_increment=VALUES(billing_increment),
  group_id=VALUES(group_id),
  minutes=VALUES(minutes),
  updated_at=VALUES(updated_at);
`
	stmt, err := tx.PrepareContext(ctx, q)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, p := range projects {
		var group interface{}
		if p.GroupID != nil {
			group = *p.GroupID
		}
		if _, err := stmt.ExecContext(
			ctx,
			p.ID,
			p.Name,
			p.Enabled,
			p.Billable,
			p.Color,
			p.BillingIncrement,
			group,
			p.Minutes,
			p.UpdatedAt.UTC(),
		); err != nil {
			tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	c.log.Info("mysql sink upserted projects", slog.Int("count", len(projects)))
	return nil
}

// Close closes the underlying DB. Not wired via interface to keep ports minimal.
func (c *Client) Close() error { return c.db.Close() }
