package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"agropalm/domain/core"
	"agropalm/domain/report"
	"agropalm/internal/errors"
	"agropalm/ports"
)

// ReportRepositoryImpl implements ReportRepository for PostgreSQL, storing
// each report as a JSONB document.
type ReportRepositoryImpl struct {
	db *sqlx.DB
}

var _ ports.ReportRepository = (*ReportRepositoryImpl)(nil)

// Connect opens a PostgreSQL connection pool.
func Connect(url string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}
	return db, nil
}

// NewReportRepository creates a PostgreSQL report repository.
func NewReportRepository(db *sqlx.DB) *ReportRepositoryImpl {
	return &ReportRepositoryImpl{db: db}
}

// Migrate creates the reports table if it does not exist.
func (r *ReportRepositoryImpl) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS analysis_reports (
			run_id     TEXT PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			report     JSONB NOT NULL
		)
	`)
	return errors.Wrap(err, "failed to migrate analysis_reports")
}

// Save stores one report.
func (r *ReportRepositoryImpl) Save(ctx context.Context, rep *report.AnalysisReport) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return errors.Wrap(err, "failed to marshal report")
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO analysis_reports (run_id, created_at, report)
		VALUES ($1, $2, $3)
		ON CONFLICT (run_id) DO UPDATE SET report = EXCLUDED.report
	`, rep.RunID.String(), rep.CreatedAt, payload)
	return errors.Wrap(err, "failed to save report")
}

// Get retrieves one report by run ID.
func (r *ReportRepositoryImpl) Get(ctx context.Context, runID core.RunID) (*report.AnalysisReport, error) {
	var payload []byte
	err := r.db.GetContext(ctx, &payload, `
		SELECT report FROM analysis_reports WHERE run_id = $1
	`, runID.String())
	if err == sql.ErrNoRows {
		return nil, errors.NotFound(fmt.Sprintf("report %s not found", runID))
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load report %s", runID)
	}

	var rep report.AnalysisReport
	if err := json.Unmarshal(payload, &rep); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal report")
	}
	return &rep, nil
}

// ListRecent returns the most recent reports, newest first.
func (r *ReportRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]*report.AnalysisReport, error) {
	if limit <= 0 {
		limit = 10
	}
	rows := []struct {
		CreatedAt time.Time `db:"created_at"`
		Report    []byte    `db:"report"`
	}{}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT created_at, report FROM analysis_reports
		ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}

	reports := make([]*report.AnalysisReport, 0, len(rows))
	for _, row := range rows {
		var rep report.AnalysisReport
		if err := json.Unmarshal(row.Report, &rep); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal report")
		}
		reports = append(reports, &rep)
	}
	return reports, nil
}
