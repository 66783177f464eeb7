package ports

import (
	"context"

	"agropalm/domain/report"
)

// NarrativeGenerator turns a finished analysis report into prose for the
// grower. Implementations read the report; they never mutate it.
type NarrativeGenerator interface {
	Summarize(ctx context.Context, rep *report.AnalysisReport) (string, error)
}
