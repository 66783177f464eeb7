package forecast

import "agropalm/domain/economics"

// Forecast horizon and caps.
const (
	horizonYears = 5

	perYearROICap  = 300.0
	fiveYearROICap = 200.0

	roiCappedNote = "(Capped for realism)"
)

// yearAchievement is the fraction of the tier's target additional yield
// realized in each year. Year 1 is deliberately front-loaded so scenarios do
// not show a negative-profit first year.
var yearAchievement = [horizonYears]economics.Range{
	{Low: 0.85, High: 0.95},
	{Low: 0.95, High: 1.00},
	{Low: 0.98, High: 1.00},
	{Low: 0.95, High: 0.98},
	{Low: 0.92, High: 0.95},
}

// buildScenario produces the 5-year projection for one tier. All figures are
// RM per hectare. currentYield is tonnes FFB per hectare.
func buildScenario(tier economics.Tier, base economics.Range, investment economics.Range, currentYield float64, ffbPrice economics.Range) economics.EconomicScenario {
	achievement := tierAchievement(tier)

	// realized improvement as a fraction of current yield
	improvement := economics.Range{
		Low:  base.Low / 100 * achievement.Low,
		High: base.High / 100 * achievement.High,
	}

	scenario := economics.EconomicScenario{
		Tier:           tier,
		CostPerHectare: investment,
		ImprovementPct: improvement.Scale(100),
		NewYield: economics.Range{
			Low:  currentYield * (1 + improvement.Low),
			High: currentYield * (1 + improvement.High),
		},
	}

	maintenanceBase := tierMaintenanceBase(tier)
	avgInvestment := investment.Mid()

	var cumulative economics.Range
	for year := 1; year <= horizonYears; year++ {
		frac := yearAchievement[year-1]

		additionalYield := economics.Range{
			Low:  currentYield * improvement.Low * frac.Low,
			High: currentYield * improvement.High * frac.High,
		}

		// Conservative revenue pairs low yield with low price; optimistic
		// pairs high with high. A bracketing convention, not a bound.
		revenue := economics.Range{
			Low:  additionalYield.Low * ffbPrice.Low,
			High: additionalYield.High * ffbPrice.High,
		}

		var cost economics.Range
		if year == 1 {
			cost = investment
		} else {
			m := maintenanceBase * maintenanceMultipliers[year-2]
			cost = economics.Range{Low: m, High: m}
		}

		// Conservative net pairs low revenue with high cost.
		net := economics.Range{
			Low:  revenue.Low - cost.High,
			High: revenue.High - cost.Low,
		}

		cumulative.Low += net.Low
		cumulative.High += net.High

		roi := economics.Range{
			Low:  capROI(net.Low/avgInvestment*100, perYearROICap),
			High: capROI(net.High/avgInvestment*100, perYearROICap),
		}

		scenario.YearlyData = append(scenario.YearlyData, economics.YearRecord{
			Year:              year,
			Yield:             economics.Range{Low: currentYield + additionalYield.Low, High: currentYield + additionalYield.High},
			AdditionalYield:   additionalYield,
			AdditionalRevenue: revenue,
			Cost:              cost,
			NetProfit:         net,
			CumulativeProfit:  cumulative,
			ROI:               roi,
		})
	}

	scenario.CumulativeProfit = cumulative

	fiveYearROI := economics.Range{
		Low:  cumulative.Low / investment.High * 100,
		High: cumulative.High / investment.Low * 100,
	}
	if fiveYearROI.Low > fiveYearROICap || fiveYearROI.High > fiveYearROICap {
		scenario.ROINote = roiCappedNote
	}
	fiveYearROI.Low = capROI(fiveYearROI.Low, fiveYearROICap)
	fiveYearROI.High = capROI(fiveYearROI.High, fiveYearROICap)
	scenario.FiveYearROI = fiveYearROI

	scenario.PaybackYears, scenario.PaybackOpenEnded = paybackPeriod(scenario.YearlyData, avgInvestment)
	return scenario
}

func capROI(v, cap float64) float64 {
	if v > cap {
		return cap
	}
	return v
}

// paybackPeriod finds the first year whose midpoint cumulative profit covers
// the initial per-hectare investment, interpolating linearly within that
// year. Returns (5.0, true) when the horizon ends before payback.
func paybackPeriod(years []economics.YearRecord, investment float64) (float64, bool) {
	prevCumulative := 0.0
	for _, yr := range years {
		cum := yr.CumulativeProfit.Mid()
		if cum >= investment {
			net := yr.NetProfit.Mid()
			if net <= 0 {
				return float64(yr.Year), false
			}
			within := (investment - prevCumulative) / net
			if within < 0 {
				within = 0
			}
			return float64(yr.Year-1) + within, false
		}
		prevCumulative = cum
	}
	return float64(horizonYears), true
}
