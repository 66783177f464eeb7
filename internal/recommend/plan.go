package recommend

import "agropalm/domain/agronomy"

// timelineFor buckets the implementation urgency by severity and the
// critical flag.
func timelineFor(severity agronomy.Severity, critical bool) string {
	switch {
	case severity == agronomy.SeverityCritical:
		return "Immediate (start within 2 weeks)"
	case severity == agronomy.SeverityHigh, severity == agronomy.SeverityMedium && critical:
		return "Short-term (start within 1-3 months)"
	case severity == agronomy.SeverityMedium:
		return "Medium-term (start within 3-6 months)"
	}
	return "Long-term (start within 6-12 months)"
}

// monitoringFor scales re-test frequency by source and criticality: soil
// every 6 months if critical else annually, leaf every 3 months if critical
// else every 6 months.
func monitoringFor(source agronomy.Source, critical bool) agronomy.MonitoringPlan {
	var interval string
	if source == agronomy.SourceLeaf {
		interval = "every 6 months"
		if critical {
			interval = "every 3 months"
		}
		return agronomy.MonitoringPlan{
			RetestInterval: interval,
			Focus:          []string{"Frond 17 nutrient levels", "Visual deficiency symptoms", "Frond production rate"},
		}
	}

	interval = "annually"
	if critical {
		interval = "every 6 months"
	}
	return agronomy.MonitoringPlan{
		RetestInterval: interval,
		Focus:          []string{"Topsoil (0-15 cm) nutrient levels", "pH trend", "Organic matter status"},
	}
}

// successIndicators is the fixed indicator list plus two source-specific
// additions.
func successIndicators(source agronomy.Source) []string {
	indicators := []string{
		"Parameter returns to optimal range on re-test",
		"FFB yield trend improves over two harvest rounds",
		"No new deficiency symptoms appear",
	}
	if source == agronomy.SourceLeaf {
		return append(indicators,
			"Frond color normalizes across the canopy",
			"Frond 17 nutrient ratios rebalance (N:K, K:Mg)")
	}
	return append(indicators,
		"Soil pH stabilizes inside the optimal band",
		"Root proliferation visible in the weeded circle")
}
