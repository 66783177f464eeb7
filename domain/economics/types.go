package economics

import "strconv"

// Tier is one of the three investment levels a forecast brackets.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

// Tiers lists the investment levels in descending spend order.
func Tiers() []Tier {
	return []Tier{TierHigh, TierMedium, TierLow}
}

// LandUnit enumerates the accepted land-size units.
type LandUnit string

const (
	LandHectares     LandUnit = "hectares"
	LandAcres        LandUnit = "acres"
	LandSquareMeters LandUnit = "square_meters"
)

// YieldUnit enumerates the accepted yield units.
type YieldUnit string

const (
	YieldTonnesPerHectare YieldUnit = "tonnes/hectare"
	YieldKgPerHectare     YieldUnit = "kg/hectare"
	YieldTonnesPerAcre    YieldUnit = "tonnes/acre"
	YieldKgPerAcre        YieldUnit = "kg/acre"
)

// DefaultPalmDensity is the assumed stand density (palms per hectare) when
// the grower does not supply one.
const DefaultPalmDensity = 148

// LandYieldInput is the grower-supplied baseline for economic forecasting.
type LandYieldInput struct {
	LandSize     float64   `json:"land_size"`
	LandUnit     LandUnit  `json:"land_unit"`
	CurrentYield float64   `json:"current_yield"`
	YieldUnit    YieldUnit `json:"yield_unit"`
	PalmDensity  int       `json:"palm_density"`
}

// Range is a low/high bracket. Forecast ranges pair conservative ends with
// conservative ends (low yield with low price), not statistical bounds.
type Range struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

// Mid returns the midpoint of the bracket.
func (r Range) Mid() float64 {
	return (r.Low + r.High) / 2
}

// Scale multiplies both ends by f.
func (r Range) Scale(f float64) Range {
	return Range{Low: r.Low * f, High: r.High * f}
}

// YearRecord is one projected year inside a scenario. Cumulative fields are
// running sums over years 1..i within the same scenario.
type YearRecord struct {
	Year              int   `json:"year"`
	Yield             Range `json:"yield"`
	AdditionalYield   Range `json:"additional_yield"`
	AdditionalRevenue Range `json:"additional_revenue"`
	Cost              Range `json:"cost"`
	NetProfit         Range `json:"net_profit"`
	CumulativeProfit  Range `json:"cumulative_profit"`
	ROI               Range `json:"roi"`
}

// EconomicScenario is the 5-year projection for one investment tier. All
// monetary figures are RM per hectare.
type EconomicScenario struct {
	Tier             Tier         `json:"tier"`
	CostPerHectare   Range        `json:"cost_per_hectare"`
	ImprovementPct   Range        `json:"improvement_pct"`
	NewYield         Range        `json:"new_yield"`
	YearlyData       []YearRecord `json:"yearly_data"`
	CumulativeProfit Range        `json:"cumulative_profit"`
	FiveYearROI      Range        `json:"five_year_roi"`
	ROINote          string       `json:"roi_note,omitempty"`
	PaybackYears     float64      `json:"payback_years"`
	PaybackOpenEnded bool         `json:"payback_open_ended"`
}

// PaybackDisplay renders the payback period, using the open-ended "5.0+"
// form when the investment is not recovered inside the horizon.
func (s EconomicScenario) PaybackDisplay() string {
	if s.PaybackOpenEnded {
		return "5.0+ years"
	}
	return strconv.FormatFloat(s.PaybackYears, 'f', 1, 64) + " years"
}

// EconomicForecast is the full forecaster output: the three scenarios plus
// the baseline they were derived from.
type EconomicForecast struct {
	LandSizeHa         float64                   `json:"land_size_ha"`
	CurrentYieldTonnes float64                   `json:"current_yield_t_ha"`
	PalmDensity        int                       `json:"palm_density"`
	DeficiencyScore    int                       `json:"deficiency_score"`
	BaseImprovementPct Range                     `json:"base_improvement_pct"`
	Scenarios          map[Tier]EconomicScenario `json:"scenarios"`
	DefaultAssumptions bool                      `json:"default_assumptions"`
}
