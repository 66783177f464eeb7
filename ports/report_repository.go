package ports

import (
	"context"

	"agropalm/domain/core"
	"agropalm/domain/report"
)

// ReportRepository persists finished analysis reports. The core has no
// format requirement beyond plain nested maps/lists/numbers; the postgres
// adapter stores the report as JSONB.
type ReportRepository interface {
	Save(ctx context.Context, rep *report.AnalysisReport) error
	Get(ctx context.Context, runID core.RunID) (*report.AnalysisReport, error)
	ListRecent(ctx context.Context, limit int) ([]*report.AnalysisReport, error)
}
