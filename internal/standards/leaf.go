package standards

import "agropalm/domain/agronomy"

// Canonical leaf (frond 17) parameter names, in reporting order.
const (
	LeafN  = "N_%"
	LeafP  = "P_%"
	LeafK  = "K_%"
	LeafMg = "Mg_%"
	LeafCa = "Ca_%"
	LeafB  = "B_mg_kg"
	LeafCu = "Cu_mg_kg"
	LeafZn = "Zn_mg_kg"
)

// LeafParameters returns the ordered canonical leaf parameter list.
func LeafParameters() []string {
	return []string{LeafN, LeafP, LeafK, LeafMg, LeafCa, LeafB, LeafCu, LeafZn}
}

// LeafStandards builds the MPOB frond-17 leaf reference table.
func LeafStandards() map[string]agronomy.StandardRange {
	return map[string]agronomy.StandardRange{
		LeafN: {
			Parameter:    LeafN,
			Optimal:      agronomy.ValueRange{Min: 2.40, Max: 2.80},
			Acceptable:   agronomy.ValueRange{Min: 2.20, Max: 3.00},
			CriticalLow:  2.00,
			CriticalHigh: 3.20,
			Unit:         "%",
			Category:     "Primary Macronutrient",
			Critical:     true,
			LowCauses:    "Insufficient soil N supply, root damage, waterlogging",
			LowImpacts:   "Uniform yellowing of fronds, reduced frond production",
			HighCauses:   "Excess N fertilization",
			HighImpacts:  "Soft growth, pest susceptibility, K dilution",
		},
		LeafP: {
			Parameter:    LeafP,
			Optimal:      agronomy.ValueRange{Min: 0.15, Max: 0.18},
			Acceptable:   agronomy.ValueRange{Min: 0.13, Max: 0.20},
			CriticalLow:  0.10,
			CriticalHigh: 0.25,
			Unit:         "%",
			Category:     "Primary Macronutrient",
			Critical:     true,
			LowCauses:    "Soil P fixation, inadequate phosphate application",
			LowImpacts:   "Stunted palms, narrow trunk, poor bunch set",
			HighCauses:   "Luxury P uptake after heavy applications",
			HighImpacts:  "Rarely harmful; possible Zn antagonism",
		},
		LeafK: {
			Parameter:    LeafK,
			Optimal:      agronomy.ValueRange{Min: 0.90, Max: 1.20},
			Acceptable:   agronomy.ValueRange{Min: 0.75, Max: 1.40},
			CriticalLow:  0.60,
			CriticalHigh: 1.80,
			Unit:         "%",
			Category:     "Primary Macronutrient",
			Critical:     true,
			LowCauses:    "Low soil K reserves, Mg/Ca antagonism, high bunch removal",
			LowImpacts:   "Confluent orange spotting, mid-crown yellowing, lower oil extraction",
			HighCauses:   "Heavy MOP applications",
			HighImpacts:  "Mg deficiency induction",
		},
		LeafMg: {
			Parameter:    LeafMg,
			Optimal:      agronomy.ValueRange{Min: 0.25, Max: 0.40},
			Acceptable:   agronomy.ValueRange{Min: 0.20, Max: 0.50},
			CriticalLow:  0.15,
			CriticalHigh: 0.70,
			Unit:         "%",
			Category:     "Secondary Macronutrient",
			Critical:     false,
			LowCauses:    "Sandy soils, K antagonism, leaching",
			LowImpacts:   "Orange frond discoloration on sun-exposed leaflets",
			HighCauses:   "Heavy kieserite or dolomite use",
			HighImpacts:  "K uptake suppression",
		},
		LeafCa: {
			Parameter:    LeafCa,
			Optimal:      agronomy.ValueRange{Min: 0.50, Max: 0.70},
			Acceptable:   agronomy.ValueRange{Min: 0.40, Max: 0.90},
			CriticalLow:  0.30,
			CriticalHigh: 1.20,
			Unit:         "%",
			Category:     "Secondary Macronutrient",
			Critical:     false,
			LowCauses:    "Acid soils with low exchangeable Ca",
			LowImpacts:   "Weak tissue, frond fracture",
			HighCauses:   "Over-liming",
			HighImpacts:  "B and Zn antagonism",
		},
		LeafB: {
			Parameter:    LeafB,
			Optimal:      agronomy.ValueRange{Min: 12, Max: 25},
			Acceptable:   agronomy.ValueRange{Min: 8, Max: 30},
			CriticalLow:  5,
			CriticalHigh: 40,
			Unit:         "mg/kg",
			Category:     "Micronutrient",
			Critical:     true,
			LowCauses:    "Leaching on sandy soils, high Ca levels",
			LowImpacts:   "Hook leaf, crinkled fronds, bunch failure",
			HighCauses:   "Borate over-application",
			HighImpacts:  "Leaflet tip necrosis",
		},
		LeafCu: {
			Parameter:    LeafCu,
			Optimal:      agronomy.ValueRange{Min: 5, Max: 10},
			Acceptable:   agronomy.ValueRange{Min: 3, Max: 15},
			CriticalLow:  2,
			CriticalHigh: 25,
			Unit:         "mg/kg",
			Category:     "Micronutrient",
			Critical:     false,
			LowCauses:    "Peat soils, high N and P levels",
			LowImpacts:   "Mid-crown chlorosis, peat yellows",
			HighCauses:   "Copper fungicide residues",
			HighImpacts:  "Root damage at extreme levels",
		},
		LeafZn: {
			Parameter:    LeafZn,
			Optimal:      agronomy.ValueRange{Min: 12, Max: 18},
			Acceptable:   agronomy.ValueRange{Min: 9, Max: 25},
			CriticalLow:  6,
			CriticalHigh: 40,
			Unit:         "mg/kg",
			Category:     "Micronutrient",
			Critical:     false,
			LowCauses:    "High P levels, calcareous soils",
			LowImpacts:   "Small leaflets, shortened internodes",
			HighCauses:   "Industrial contamination, zinc sprays",
			HighImpacts:  "Fe antagonism",
		},
	}
}
