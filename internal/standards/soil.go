package standards

import "agropalm/domain/agronomy"

// Canonical soil parameter names, in reporting order.
const (
	SoilPH       = "pH"
	SoilN        = "Nitrogen_%"
	SoilOC       = "Organic_Carbon_%"
	SoilTotalP   = "Total_P_mg_kg"
	SoilAvailP   = "Available_P_mg_kg"
	SoilExchK    = "Exchangeable_K_meq%"
	SoilExchCa   = "Exchangeable_Ca_meq%"
	SoilExchMg   = "Exchangeable_Mg_meq%"
	SoilCEC      = "CEC_meq%"
)

// SoilParameters returns the ordered canonical soil parameter list.
func SoilParameters() []string {
	return []string{
		SoilPH, SoilN, SoilOC, SoilTotalP, SoilAvailP,
		SoilExchK, SoilExchCa, SoilExchMg, SoilCEC,
	}
}

// SoilStandards builds the MPOB soil reference table. The table is built
// fresh per call so callers can hold it as their own immutable copy.
func SoilStandards() map[string]agronomy.StandardRange {
	return map[string]agronomy.StandardRange{
		SoilPH: {
			Parameter:    SoilPH,
			Optimal:      agronomy.ValueRange{Min: 4.5, Max: 6.0},
			Acceptable:   agronomy.ValueRange{Min: 4.0, Max: 6.5},
			CriticalLow:  3.5,
			CriticalHigh: 7.0,
			Unit:         "",
			Category:     "Soil Reaction",
			Critical:     true,
			LowCauses:    "High rainfall leaching, aluminium toxicity on acid sulphate soils, prolonged ammonium fertilizer use",
			LowImpacts:   "Phosphorus fixation, reduced microbial activity, Al/Mn toxicity limiting root growth",
			HighCauses:   "Over-liming, calcareous parent material",
			HighImpacts:  "Micronutrient lock-up (B, Cu, Zn), reduced P availability",
		},
		SoilN: {
			Parameter:    SoilN,
			Optimal:      agronomy.ValueRange{Min: 0.10, Max: 0.15},
			Acceptable:   agronomy.ValueRange{Min: 0.08, Max: 0.20},
			CriticalLow:  0.05,
			CriticalHigh: 0.30,
			Unit:         "%",
			Category:     "Primary Macronutrient",
			Critical:     true,
			LowCauses:    "Low organic matter, leaching, insufficient N fertilization",
			LowImpacts:   "Pale fronds, reduced vegetative growth, smaller bunches",
			HighCauses:   "Excess N fertilization",
			HighImpacts:  "Luxury uptake, K/Mg imbalance, delayed fruiting",
		},
		SoilOC: {
			Parameter:    SoilOC,
			Optimal:      agronomy.ValueRange{Min: 1.2, Max: 3.0},
			Acceptable:   agronomy.ValueRange{Min: 0.8, Max: 4.0},
			CriticalLow:  0.5,
			CriticalHigh: 6.0,
			Unit:         "%",
			Category:     "Soil Organic Matter",
			Critical:     false,
			LowCauses:    "Continuous clean-weeding, erosion, low residue return",
			LowImpacts:   "Poor structure, low water holding capacity, weak nutrient buffering",
			HighCauses:   "Peat soils, heavy mulching",
			HighImpacts:  "Possible N immobilization on raw residues",
		},
		SoilTotalP: {
			Parameter:    SoilTotalP,
			Optimal:      agronomy.ValueRange{Min: 200, Max: 400},
			Acceptable:   agronomy.ValueRange{Min: 120, Max: 500},
			CriticalLow:  80,
			CriticalHigh: 700,
			Unit:         "mg/kg",
			Category:     "Primary Macronutrient",
			Critical:     false,
			LowCauses:    "Highly weathered soils, no phosphate rock history",
			LowImpacts:   "Slow canopy development, poor root proliferation",
			HighCauses:   "Repeated heavy phosphate applications",
			HighImpacts:  "Zn antagonism, runoff risk",
		},
		SoilAvailP: {
			Parameter:    SoilAvailP,
			Optimal:      agronomy.ValueRange{Min: 15, Max: 40},
			Acceptable:   agronomy.ValueRange{Min: 10, Max: 60},
			CriticalLow:  8,
			CriticalHigh: 100,
			Unit:         "mg/kg",
			Category:     "Primary Macronutrient",
			Critical:     true,
			LowCauses:    "P fixation by Fe/Al oxides at low pH, insufficient phosphate input",
			LowImpacts:   "Reduced bunch number, delayed maturity",
			HighCauses:   "Over-application of soluble P",
			HighImpacts:  "Micronutrient antagonism",
		},
		SoilExchK: {
			Parameter:    SoilExchK,
			Optimal:      agronomy.ValueRange{Min: 0.15, Max: 0.30},
			Acceptable:   agronomy.ValueRange{Min: 0.10, Max: 0.40},
			CriticalLow:  0.08,
			CriticalHigh: 0.60,
			Unit:         "meq%",
			Category:     "Primary Macronutrient",
			Critical:     true,
			LowCauses:    "Leaching on sandy soils, high crop K removal in bunches",
			LowImpacts:   "Confluent orange spotting, lower bunch weight, drought sensitivity",
			HighCauses:   "Heavy MOP application",
			HighImpacts:  "Mg/Ca uptake suppression",
		},
		SoilExchCa: {
			Parameter:    SoilExchCa,
			Optimal:      agronomy.ValueRange{Min: 2.0, Max: 5.0},
			Acceptable:   agronomy.ValueRange{Min: 1.0, Max: 8.0},
			CriticalLow:  0.5,
			CriticalHigh: 12.0,
			Unit:         "meq%",
			Category:     "Secondary Macronutrient",
			Critical:     false,
			LowCauses:    "Acid soils, leaching",
			LowImpacts:   "Weak cell walls, poor root development",
			HighCauses:   "Over-liming",
			HighImpacts:  "K and Mg antagonism, micronutrient lock-up",
		},
		SoilExchMg: {
			Parameter:    SoilExchMg,
			Optimal:      agronomy.ValueRange{Min: 0.30, Max: 0.60},
			Acceptable:   agronomy.ValueRange{Min: 0.20, Max: 0.80},
			CriticalLow:  0.15,
			CriticalHigh: 1.50,
			Unit:         "meq%",
			Category:     "Secondary Macronutrient",
			Critical:     false,
			LowCauses:    "Leaching, K-induced antagonism",
			LowImpacts:   "Interveinal chlorosis on older fronds, reduced photosynthesis",
			HighCauses:   "Dolomitic over-liming",
			HighImpacts:  "K uptake suppression",
		},
		SoilCEC: {
			Parameter:    SoilCEC,
			Optimal:      agronomy.ValueRange{Min: 8, Max: 15},
			Acceptable:   agronomy.ValueRange{Min: 5, Max: 25},
			CriticalLow:  3,
			CriticalHigh: 40,
			Unit:         "meq%",
			Category:     "Soil Fertility Index",
			Critical:     false,
			LowCauses:    "Sandy texture, low organic matter, kaolinitic clays",
			LowImpacts:   "Poor nutrient retention, fertilizer leaching losses",
			HighCauses:   "High clay or organic matter content",
			HighImpacts:  "Usually none; drainage considerations on heavy clays",
		},
	}
}
