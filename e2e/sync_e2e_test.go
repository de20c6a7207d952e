//go:build e2e

package e2e

import (
    "context"
    "database/sql"
    "fmt"
    "log/slog"
    "os"
    "testing"
    "time"

    "github.com/testcontainers/testcontainers-go"
    "github.com/testcontainers/testcontainers-go/wait"

    msql "noko-client/internal/adapter/mysql"
    "noko-client/internal/domain"
    "noko-client/internal/migrate"
    "noko-client/internal/ports"
    "noko-client/internal/usecase"
)

type fakeNoko struct {
    entries  []domain.TimeEntry
    projects []domain.Project
}

func (f fakeNoko) ListTimeEntries(ctx context.Context, from, to time.Time) ([]domain.TimeEntry, error) {
    return f.entries, nil
}

func (f fakeNoko) ListProjects(ctx context.Context) ([]domain.Project, error) {
    return f.projects, nil
}

func TestSyncToMySQL_UpsertsEntries(t *testing.T) {
    if testing.Short() {
        t.Skip("skipping in short mode")
    }
    ctx := context.Background()

    // Start MySQL container
    req := testcontainers.ContainerRequest{
        Image:        "mysql:8.0",
        ExposedPorts: []string{"3306/tcp"},
        Env: map[string]string{
            "MYSQL_DATABASE":      "testdb",
            "MYSQL_ROOT_PASSWORD": "secret",
            "MYSQL_USER":          "test",
            "MYSQL_PASSWORD":      "pass",
        },
        WaitingFor: wait.ForListeningPort("3306/tcp").WithStartupTimeout(90 * time.Second),
    }
    mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
        ContainerRequest: req,
        Started:          true,
    })
    if err != nil {
        t.Fatalf("failed to start mysql container: %v", err)
    }
    t.Cleanup(func() { _ = mysqlC.Terminate(context.Background()) })

    host, err := mysqlC.Host(ctx)
    if err != nil {
        t.Fatalf("host: %v", err)
    }
    port, err := mysqlC.MappedPort(ctx, "3306/tcp")
    if err != nil {
        t.Fatalf("mapped port: %v", err)
    }
    dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&multiStatements=true", "test", "pass", host, port.Port(), "testdb")

    logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
    if err := migrate.Run(ctx, dsn, logger); err != nil {
        t.Fatalf("migrate: %v", err)
    }
    sink, err := msql.NewClient(ctx, dsn, logger)
    if err != nil {
        t.Fatalf("mysql client: %v", err)
    }
    t.Cleanup(func() { _ = sink.Close() })

    // Prepare fake entries and projects
    day := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
    invoiced := time.Date(2025, 8, 15, 10, 0, 0, 0, time.UTC)
    projectID := int64(123)
    groupID := int64(9)
    userID := int64(5538)
    fake := fakeNoko{
        entries: []domain.TimeEntry{
            {ID: 1, Date: day, Description: "Dev work #feature", Minutes: 90, Billable: true, UserID: &userID, ProjectID: &projectID, Tags: []string{"#feature"}, InvoicedAt: &invoiced, UpdatedAt: day.Add(time.Hour)},
            {ID: 2, Date: day, Description: "Meeting", Minutes: 60, Billable: false, UserID: &userID, ProjectID: nil, Tags: []string{"#meeting"}, UpdatedAt: day.Add(2 * time.Hour)},
        },
        projects: []domain.Project{
            {ID: projectID, Name: "Gear GmbH", Enabled: true, Billable: true, Color: "#ff9898", BillingIncrement: 10, GroupID: &groupID, Minutes: 150, UpdatedAt: day},
        },
    }

    uc := &usecase.SyncUseCase{Log: logger, Noko: ports.NokoSource(fake), Sink: sink}
    if err := uc.Run(ctx, day.Add(-time.Hour), day.Add(24*time.Hour)); err != nil {
        t.Fatalf("sync run: %v", err)
    }

    // Verify rows
    db, err := sql.Open("mysql", dsn)
    if err != nil {
        t.Fatalf("sql open: %v", err)
    }
    defer db.Close()

    var count int
    if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM noko_time_entries").Scan(&count); err != nil {
        t.Fatalf("count entries: %v", err)
    }
    if count != 2 {
        t.Fatalf("expected 2 entry rows, got %d", count)
    }
    if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM noko_projects").Scan(&count); err != nil {
        t.Fatalf("count projects: %v", err)
    }
    if count != 1 {
        t.Fatalf("expected 1 project row, got %d", count)
    }

    // Run again to assert idempotency (upsert)
    if err := uc.Run(ctx, day.Add(-time.Hour), day.Add(24*time.Hour)); err != nil {
        t.Fatalf("sync run 2: %v", err)
    }
    if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM noko_time_entries").Scan(&count); err != nil {
        t.Fatalf("count 2: %v", err)
    }
    if count != 2 {
        t.Fatalf("expected 2 entry rows after upsert, got %d", count)
    }

    // Spot-check an upserted column
    var minutes int
    if err := db.QueryRowContext(ctx, "SELECT minutes FROM noko_time_entries WHERE id = 1").Scan(&minutes); err != nil {
        t.Fatalf("select minutes: %v", err)
    }
    if minutes != 90 {
        t.Fatalf("expected 90 minutes, got %d", minutes)
    }
}
