package forecast

import (
	"agropalm/domain/agronomy"
	"agropalm/domain/economics"
)

// Deficiency scoring: each parameter whose mean sits below its optimal
// minimum contributes by percent deficit. The total is capped at 300.
const (
	deficitCriticalPct = 50.0
	deficitModeratePct = 25.0
	deficitMinorPct    = 10.0

	scoreCritical = 30
	scoreModerate = 15
	scoreMinor    = 5

	maxDeficiencyScore = 300
)

// DeficiencyScore summarizes how far the flagged parameters fall below their
// optimal minimums.
func DeficiencyScore(issues []agronomy.Issue) int {
	score := 0
	for _, issue := range issues {
		if issue.Status != agronomy.StatusDeficient || issue.OptimalMin <= 0 {
			continue
		}
		deficitPct := (issue.OptimalMin - issue.CurrentValue) / issue.OptimalMin * 100
		switch {
		case deficitPct > deficitCriticalPct:
			score += scoreCritical
		case deficitPct > deficitModeratePct:
			score += scoreModerate
		case deficitPct > deficitMinorPct:
			score += scoreMinor
		}
	}
	if score > maxDeficiencyScore {
		score = maxDeficiencyScore
	}
	return score
}

// baseImprovementBand maps the deficiency score to the realistic
// yield-improvement range (percent) before tier achievement scaling.
func baseImprovementBand(score int) economics.Range {
	switch {
	case score >= 200:
		return economics.Range{Low: 25, High: 40}
	case score >= 150:
		return economics.Range{Low: 20, High: 35}
	case score >= 100:
		return economics.Range{Low: 15, High: 25}
	case score >= 50:
		return economics.Range{Low: 10, High: 18}
	}
	return economics.Range{Low: 5, High: 12}
}

// tierAchievement is the fraction of the base improvement each tier
// realistically captures.
func tierAchievement(tier economics.Tier) economics.Range {
	switch tier {
	case economics.TierHigh:
		return economics.Range{Low: 0.80, High: 1.00}
	case economics.TierMedium:
		return economics.Range{Low: 0.60, High: 0.80}
	}
	return economics.Range{Low: 0.40, High: 0.60}
}
