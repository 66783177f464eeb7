package compare

import "agropalm/domain/agronomy"

// Severity multipliers against the violated optimal boundary.
const (
	criticalLowFactor  = 0.5 // mean below half the minimum
	criticalHighFactor = 2.0 // mean above double the maximum
	highLowFactor      = 0.8
	highHighFactor     = 1.5
)

// severityFor classifies how far outside the standard the mean sits. The
// critical flag on the standard raises the ladder by one rung: critical
// parameters bottom out at Medium, non-critical ones at Low.
func severityFor(status agronomy.Status, mean float64, opt agronomy.ValueRange, critical bool) agronomy.Severity {
	if status == agronomy.StatusVariable {
		if critical {
			return agronomy.SeverityMedium
		}
		return agronomy.SeverityLow
	}

	if critical {
		switch {
		case mean < opt.Min*criticalLowFactor || mean > opt.Max*criticalHighFactor:
			return agronomy.SeverityCritical
		case mean < opt.Min*highLowFactor || mean > opt.Max*highHighFactor:
			return agronomy.SeverityHigh
		}
		return agronomy.SeverityMedium
	}

	if mean < opt.Min*highLowFactor || mean > opt.Max*highHighFactor {
		return agronomy.SeverityMedium
	}
	return agronomy.SeverityLow
}
