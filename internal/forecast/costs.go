package forecast

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/montanaflynn/stats"

	"agropalm/domain/agronomy"
	"agropalm/domain/economics"
	"agropalm/internal/standards"
)

// Cost model constants (RM per hectare unless noted).
const (
	surchargeLow  = 0.20 // application/labor surcharge, conservative end
	surchargeHigh = 0.30
)

// tierCostMultiplier scales the fertilizer cost estimate per tier.
func tierCostMultiplier(tier economics.Tier) float64 {
	switch tier {
	case economics.TierHigh:
		return 1.2
	case economics.TierMedium:
		return 1.0
	}
	return 0.8
}

// tierApplicationRate is the assumed product rate in tonnes per hectare.
func tierApplicationRate(tier economics.Tier) economics.Range {
	switch tier {
	case economics.TierHigh:
		return economics.Range{Low: 1.5, High: 2.0}
	case economics.TierMedium:
		return economics.Range{Low: 0.8, High: 1.2}
	}
	return economics.Range{Low: 0.5, High: 1.0}
}

// tierCostFloor prevents degenerate zero-cost scenarios.
func tierCostFloor(tier economics.Tier) float64 {
	switch tier {
	case economics.TierHigh:
		return 800
	case economics.TierMedium:
		return 600
	}
	return 400
}

// tierMaintenanceBase is the fixed years-2..5 maintenance cost base.
func tierMaintenanceBase(tier economics.Tier) float64 {
	switch tier {
	case economics.TierHigh:
		return 600
	case economics.TierMedium:
		return 400
	}
	return 250
}

// maintenanceMultipliers are the small year-dependent factors for years 2-5.
var maintenanceMultipliers = [4]float64{1.0, 1.1, 1.1, 1.05}

// costModel derives the initial per-hectare investment bracket for one tier,
// preferring parsed cost estimates from recommendation text, then falling
// back to the fertilizer price table with tier-scaled application rates.
type costModel struct {
	prices map[string]float64
	ffb    economics.Range
}

func newCostModel(prices map[string]float64, ffb economics.Range) costModel {
	return costModel{prices: prices, ffb: ffb}
}

// initialInvestment returns the tier's year-1 cost bracket.
func (m costModel) initialInvestment(tier economics.Tier, issues []agronomy.Issue, recs []agronomy.Recommendation) economics.Range {
	base, ok := parseCostEstimates(recs, tier)
	if !ok {
		base = m.fertilizerCost(tier, issues)
	}

	base = base.Scale(tierCostMultiplier(tier))
	cost := economics.Range{
		Low:  base.Low * (1 + surchargeLow),
		High: base.High * (1 + surchargeHigh),
	}

	floor := tierCostFloor(tier)
	if cost.Low < floor {
		cost.Low = floor
	}
	if cost.High < cost.Low {
		cost.High = cost.Low
	}
	return cost
}

// fertilizerCost estimates product cost from the price table: the mean price
// of the products the flagged deficiencies call for, at the tier's
// application rate.
func (m costModel) fertilizerCost(tier economics.Tier, issues []agronomy.Issue) economics.Range {
	var prices []float64
	seen := make(map[string]bool)
	for _, issue := range issues {
		if issue.Status == agronomy.StatusExcessive {
			continue
		}
		product, ok := standards.FertilizerForParameter(issue.Parameter)
		if !ok || seen[product] {
			continue
		}
		seen[product] = true
		if p, exists := m.prices[product]; exists {
			prices = append(prices, p)
		}
	}
	if len(prices) == 0 {
		// default basket: lime plus nitrogen source
		prices = []float64{m.prices[standards.FertGML], m.prices[standards.FertAS]}
	}

	meanPrice, _ := stats.Mean(prices)
	rate := tierApplicationRate(tier)
	return economics.Range{Low: meanPrice * rate.Low, High: meanPrice * rate.High}
}

// costPattern matches "RM 400 - 600" / "RM400-600" style brackets.
var costPattern = regexp.MustCompile(`(?i)rm\s*([\d,]+(?:\.\d+)?)\s*-\s*(?:rm\s*)?([\d,]+(?:\.\d+)?)`)

// parseCostEstimates averages the cost brackets found in the tier's option
// text across recommendations. ok is false when nothing parses.
func parseCostEstimates(recs []agronomy.Recommendation, tier economics.Tier) (economics.Range, bool) {
	var lows, highs []float64
	for _, rec := range recs {
		var opt agronomy.InvestmentOption
		switch tier {
		case economics.TierHigh:
			opt = rec.HighInvestment
		case economics.TierMedium:
			opt = rec.MediumInvestment
		default:
			opt = rec.LowInvestment
		}
		low, high, ok := parseCostRange(opt.CostRange)
		if !ok {
			continue
		}
		lows = append(lows, low)
		highs = append(highs, high)
	}
	if len(lows) == 0 {
		return economics.Range{}, false
	}
	meanLow, _ := stats.Mean(lows)
	meanHigh, _ := stats.Mean(highs)
	return economics.Range{Low: meanLow, High: meanHigh}, true
}

func parseCostRange(text string) (float64, float64, bool) {
	m := costPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, false
	}
	low, err1 := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	high, err2 := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
	if err1 != nil || err2 != nil || low <= 0 || high < low {
		return 0, 0, false
	}
	return low, high, true
}
