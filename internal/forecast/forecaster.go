package forecast

import (
	"agropalm/domain/agronomy"
	"agropalm/domain/economics"
	"agropalm/internal"
	"agropalm/internal/units"
)

// Defaults used when the grower supplies no usable land/yield baseline.
const (
	defaultLandHa   = 1.0
	defaultYieldTHa = 10.0
)

// Forecaster produces the three-tier, 5-year economic projection. Price
// tables are injected at construction so tests can swap them.
type Forecaster struct {
	costs  costModel
	ffb    economics.Range
	logger *internal.Logger
}

// NewForecaster creates a forecaster over a fertilizer price table and FFB
// price bracket.
func NewForecaster(fertilizerPrices map[string]float64, ffbPrice economics.Range, logger *internal.Logger) *Forecaster {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Forecaster{
		costs:  newCostModel(fertilizerPrices, ffbPrice),
		ffb:    ffbPrice,
		logger: logger,
	}
}

// Forecast builds the full economic forecast from the grower baseline and
// the detected issues. Zero or unusable land/yield inputs switch to the
// documented default baseline instead of dividing by zero; whatever part of
// the input was usable is kept.
func (f *Forecaster) Forecast(input economics.LandYieldInput, issues []agronomy.Issue, recs []agronomy.Recommendation) economics.EconomicForecast {
	landHa, errLand := units.LandToHectares(input.LandSize, input.LandUnit)
	yieldTHa, errYield := units.YieldToTonnesPerHectare(input.CurrentYield, input.YieldUnit)

	defaulted := false
	if errLand != nil || landHa <= 0 {
		landHa = defaultLandHa
		defaulted = true
	}
	if errYield != nil || yieldTHa <= 0 {
		yieldTHa = defaultYieldTHa
		defaulted = true
	}
	if defaulted {
		f.logger.Warn("unusable land/yield baseline; forecasting with defaults (%.1f ha, %.1f t/ha)", landHa, yieldTHa)
	}

	density := input.PalmDensity
	if density <= 0 {
		density = economics.DefaultPalmDensity
	}

	score := DeficiencyScore(issues)
	base := baseImprovementBand(score)

	forecast := economics.EconomicForecast{
		LandSizeHa:         landHa,
		CurrentYieldTonnes: yieldTHa,
		PalmDensity:        density,
		DeficiencyScore:    score,
		BaseImprovementPct: base,
		Scenarios:          make(map[economics.Tier]economics.EconomicScenario, 3),
		DefaultAssumptions: defaulted,
	}

	for _, tier := range economics.Tiers() {
		investment := f.costs.initialInvestment(tier, issues, recs)
		forecast.Scenarios[tier] = buildScenario(tier, base, investment, yieldTHa, f.ffb)
	}

	f.logger.Debug("forecast built: score=%d band=%.0f-%.0f%% land=%.2fha yield=%.1ft/ha",
		score, base.Low, base.High, landHa, yieldTHa)
	return forecast
}
