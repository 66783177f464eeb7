package compare

import (
	"strconv"

	"agropalm/domain/agronomy"
)

// priorityScore ranks an issue 1-100: a severity base, a flat bonus for
// agronomically critical parameters, a deviation-magnitude bonus and a
// bonus for how many individual samples sit out of range.
func priorityScore(severity agronomy.Severity, critical bool, deviationPct, outOfRangeFraction float64) int {
	score := severityBase(severity)

	if critical {
		score += 20
	}

	switch {
	case deviationPct > 100:
		score += 20
	case deviationPct > 50:
		score += 15
	case deviationPct > 25:
		score += 10
	default:
		score += 5
	}

	switch {
	case outOfRangeFraction > 0.75:
		score += 20
	case outOfRangeFraction > 0.50:
		score += 15
	case outOfRangeFraction > 0.25:
		score += 10
	default:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	if score < 1 {
		score = 1
	}
	return score
}

func severityBase(severity agronomy.Severity) int {
	switch severity {
	case agronomy.SeverityCritical:
		return 40
	case agronomy.SeverityHigh:
		return 30
	case agronomy.SeverityMedium:
		return 20
	}
	return 10
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}
