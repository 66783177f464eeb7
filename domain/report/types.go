package report

import (
	"time"

	"agropalm/domain/agronomy"
	"agropalm/domain/core"
	"agropalm/domain/economics"
)

// BranchResult is the per-source (soil or leaf) half of an analysis run.
type BranchResult struct {
	Source           agronomy.Source                         `json:"source"`
	SampleCount      int                                     `json:"sample_count"`
	SkippedRecords   int                                     `json:"skipped_records"`
	Statistics       map[string]agronomy.ParameterStatistics `json:"statistics"`
	RawAverages      map[string]float64                      `json:"raw_averages"`
	VarianceWarnings []agronomy.VarianceWarning              `json:"variance_warnings,omitempty"`
	Correlations     []agronomy.ParameterCorrelation         `json:"correlations,omitempty"`
	DataQualityNotes []string                                `json:"data_quality_notes,omitempty"`
}

// HasData reports whether the branch received any usable samples.
func (b BranchResult) HasData() bool {
	return b.SampleCount > 0
}

// AnalysisReport is the complete immutable output of one analysis run. The
// narrative and persistence layers consume it read-only.
type AnalysisReport struct {
	RunID           core.RunID                  `json:"run_id"`
	CreatedAt       time.Time                   `json:"created_at"`
	Soil            BranchResult                `json:"soil"`
	Leaf            BranchResult                `json:"leaf"`
	Issues          []agronomy.Issue            `json:"issues"`
	Recommendations []agronomy.Recommendation   `json:"recommendations"`
	Forecast        economics.EconomicForecast  `json:"forecast"`
	PartialData     bool                        `json:"partial_data"`
	DataQualityFlag string                      `json:"data_quality_flag,omitempty"`
}
