package heuristic

import (
	"context"
	"strings"
	"testing"

	"agropalm/domain/agronomy"
	"agropalm/domain/economics"
	"agropalm/domain/report"
)

func sampleReport() *report.AnalysisReport {
	return &report.AnalysisReport{
		RunID: "run-1",
		Soil:  report.BranchResult{Source: agronomy.SourceSoil, SampleCount: 3},
		Leaf:  report.BranchResult{Source: agronomy.SourceLeaf, SampleCount: 2, SkippedRecords: 1},
		Issues: []agronomy.Issue{{
			Parameter:     "pH",
			Source:        agronomy.SourceSoil,
			Status:        agronomy.StatusDeficient,
			Severity:      agronomy.SeverityMedium,
			CurrentValue:  4.0,
			OptimalRange:  "4.5-6",
			PriorityScore: 65,
		}},
		Forecast: economics.EconomicForecast{
			LandSizeHa:         2.0,
			CurrentYieldTonnes: 14.0,
			DeficiencyScore:    50,
			Scenarios: map[economics.Tier]economics.EconomicScenario{
				economics.TierHigh: {
					Tier:           economics.TierHigh,
					CostPerHectare: economics.Range{Low: 1000, High: 1500},
					FiveYearROI:    economics.Range{Low: 120, High: 200},
					ROINote:        "(Capped for realism)",
					PaybackYears:   1.4,
				},
				economics.TierLow: {
					Tier:             economics.TierLow,
					CostPerHectare:   economics.Range{Low: 400, High: 600},
					FiveYearROI:      economics.Range{Low: 40, High: 90},
					PaybackYears:     5.0,
					PaybackOpenEnded: true,
				},
			},
		},
	}
}

func TestSummarize(t *testing.T) {
	text, err := NewGenerator().Summarize(context.Background(), sampleReport())
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	for _, want := range []string{
		"run-1",
		"Soil samples: 3",
		"1 nutrient issue(s) detected",
		"pH (Soil Analysis)",
		"priority 65",
		"deficiency score 50",
		"High investment: RM 1000-1500/ha",
		"(Capped for realism)",
		"payback 1.4 years",
		"payback 5.0+ years",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected summary to contain %q\n---\n%s", want, text)
		}
	}
}

func TestSummarize_PartialData(t *testing.T) {
	rep := sampleReport()
	rep.PartialData = true
	rep.DataQualityFlag = "no usable leaf samples; leaf analysis omitted"

	text, err := NewGenerator().Summarize(context.Background(), rep)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if !strings.Contains(text, "no usable leaf samples") {
		t.Error("Expected partial-data note in summary")
	}
}

func TestSummarize_NoIssues(t *testing.T) {
	rep := sampleReport()
	rep.Issues = nil

	text, err := NewGenerator().Summarize(context.Background(), rep)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if !strings.Contains(text, "maintenance program is recommended") {
		t.Error("Expected maintenance wording for a clean report")
	}
}
