// Package heuristic provides an offline, deterministic narrative generator.
// It fills the NarrativeGenerator port without any external service, the
// same way a rule-based generator backs up an LLM-driven one.
package heuristic

import (
	"context"
	"fmt"
	"strings"

	"agropalm/domain/economics"
	"agropalm/domain/report"
)

// Generator builds a plain-text summary from an analysis report.
type Generator struct{}

// NewGenerator creates a heuristic narrative generator.
func NewGenerator() *Generator {
	return &Generator{}
}

// Summarize implements ports.NarrativeGenerator.
func (g *Generator) Summarize(_ context.Context, rep *report.AnalysisReport) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "Analysis %s\n", rep.RunID)
	fmt.Fprintf(&b, "Soil samples: %d (skipped %d). Leaf samples: %d (skipped %d).\n",
		rep.Soil.SampleCount, rep.Soil.SkippedRecords, rep.Leaf.SampleCount, rep.Leaf.SkippedRecords)
	if rep.PartialData {
		fmt.Fprintf(&b, "Note: %s\n", rep.DataQualityFlag)
	}

	if len(rep.Issues) == 0 {
		b.WriteString("\nAll analyzed parameters fall within optimal ranges. A maintenance program is recommended.\n")
	} else {
		fmt.Fprintf(&b, "\n%d nutrient issue(s) detected, by priority:\n", len(rep.Issues))
		for i, issue := range rep.Issues {
			if i >= 5 {
				fmt.Fprintf(&b, "  ... and %d more\n", len(rep.Issues)-i)
				break
			}
			fmt.Fprintf(&b, "  %d. %s (%s): %s, severity %s, current %.2f vs optimal %s (priority %d)\n",
				i+1, issue.Parameter, issue.Source, issue.Status, issue.Severity,
				issue.CurrentValue, issue.OptimalRange, issue.PriorityScore)
		}
	}

	for _, warn := range append(rep.Soil.VarianceWarnings, rep.Leaf.VarianceWarnings...) {
		fmt.Fprintf(&b, "Variance: %s\n", warn.Text)
	}

	g.writeForecast(&b, rep.Forecast)
	return b.String(), nil
}

func (g *Generator) writeForecast(b *strings.Builder, fc economics.EconomicForecast) {
	fmt.Fprintf(b, "\nEconomic outlook (%.2f ha at %.1f t/ha, deficiency score %d):\n",
		fc.LandSizeHa, fc.CurrentYieldTonnes, fc.DeficiencyScore)
	if fc.DefaultAssumptions {
		b.WriteString("Baseline incomplete; default land/yield assumptions were used.\n")
	}

	for _, tier := range economics.Tiers() {
		sc, ok := fc.Scenarios[tier]
		if !ok {
			continue
		}
		note := sc.ROINote
		if note != "" {
			note = " " + note
		}
		fmt.Fprintf(b, "  %s investment: RM %.0f-%.0f/ha, 5-year ROI %.0f%%-%.0f%%%s, payback %s\n",
			titleCase(string(tier)), sc.CostPerHectare.Low, sc.CostPerHectare.High,
			sc.FiveYearROI.Low, sc.FiveYearROI.High, note, sc.PaybackDisplay())
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
