package forecast

import (
	"testing"

	"agropalm/domain/agronomy"
	"agropalm/domain/economics"
)

func deficientIssue(param string, current, optimalMin float64) agronomy.Issue {
	return agronomy.Issue{
		Parameter:    param,
		CurrentValue: current,
		OptimalMin:   optimalMin,
		Status:       agronomy.StatusDeficient,
	}
}

func TestDeficiencyScore_Buckets(t *testing.T) {
	issues := []agronomy.Issue{
		deficientIssue("Nitrogen_%", 0.04, 0.10),          // 60% deficit -> 30
		deficientIssue("Exchangeable_K_meq%", 0.10, 0.15), // 33% deficit -> 15
		deficientIssue("pH", 4.0, 4.5),                    // 11% deficit -> 5
		deficientIssue("CEC_meq%", 7.6, 8.0),              // 5% deficit -> 0
	}
	if got := DeficiencyScore(issues); got != 50 {
		t.Errorf("Expected score 50, got %d", got)
	}
}

func TestDeficiencyScore_IgnoresExcessAndVariable(t *testing.T) {
	issues := []agronomy.Issue{
		{Parameter: "pH", CurrentValue: 7.0, OptimalMin: 4.5, Status: agronomy.StatusExcessive},
		{Parameter: "Nitrogen_%", CurrentValue: 0.12, OptimalMin: 0.10, Status: agronomy.StatusVariable},
	}
	if got := DeficiencyScore(issues); got != 0 {
		t.Errorf("Expected score 0, got %d", got)
	}
}

func TestDeficiencyScore_CappedAt300(t *testing.T) {
	var issues []agronomy.Issue
	for i := 0; i < 15; i++ {
		issues = append(issues, deficientIssue("P", 1.0, 100.0))
	}
	if got := DeficiencyScore(issues); got != 300 {
		t.Errorf("Expected cap at 300, got %d", got)
	}
}

func TestBaseImprovementBand(t *testing.T) {
	cases := []struct {
		score int
		want  economics.Range
	}{
		{250, economics.Range{Low: 25, High: 40}},
		{200, economics.Range{Low: 25, High: 40}},
		{150, economics.Range{Low: 20, High: 35}},
		{100, economics.Range{Low: 15, High: 25}},
		{50, economics.Range{Low: 10, High: 18}},
		{0, economics.Range{Low: 5, High: 12}},
	}
	for _, tc := range cases {
		if got := baseImprovementBand(tc.score); got != tc.want {
			t.Errorf("score %d: expected %+v, got %+v", tc.score, tc.want, got)
		}
	}
}

func TestTierAchievement(t *testing.T) {
	if got := tierAchievement(economics.TierHigh); got != (economics.Range{Low: 0.80, High: 1.00}) {
		t.Errorf("Expected high tier 0.80-1.00, got %+v", got)
	}
	if got := tierAchievement(economics.TierMedium); got != (economics.Range{Low: 0.60, High: 0.80}) {
		t.Errorf("Expected medium tier 0.60-0.80, got %+v", got)
	}
	if got := tierAchievement(economics.TierLow); got != (economics.Range{Low: 0.40, High: 0.60}) {
		t.Errorf("Expected low tier 0.40-0.60, got %+v", got)
	}
}
