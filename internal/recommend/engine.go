package recommend

import (
	"fmt"
	"strings"

	"agropalm/domain/agronomy"
	"agropalm/internal"
)

// handler builds the three investment options for one class of issue.
// Handlers are tried in order; the first whose key matches the issue wins.
type handler struct {
	key       string           // substring matched against the canonical name
	direction agronomy.Status  // Deficient or Excessive; Variable reuses Deficient content
	build     func(issue agronomy.Issue) tieredOptions
}

type tieredOptions struct {
	high, medium, low agronomy.InvestmentOption
	rationale         string
}

// Engine maps prioritized issues to tiered recommendations. Pure over its
// inputs; the handler table is fixed at construction.
type Engine struct {
	handlers []handler
	logger   *internal.Logger
}

// NewEngine creates a recommendation engine.
func NewEngine(logger *internal.Logger) *Engine {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Engine{handlers: parameterHandlers(), logger: logger}
}

// Recommend produces one recommendation per issue, in the issues' (priority)
// order. An empty issue list yields the fixed general-maintenance pair, so
// the caller always receives actionable output.
func (e *Engine) Recommend(issues []agronomy.Issue) []agronomy.Recommendation {
	if len(issues) == 0 {
		return maintenanceProgram()
	}

	recs := make([]agronomy.Recommendation, 0, len(issues))
	for _, issue := range issues {
		recs = append(recs, e.recommendFor(issue))
	}
	return recs
}

func (e *Engine) recommendFor(issue agronomy.Issue) agronomy.Recommendation {
	opts, matched := e.selectOptions(issue)
	if !matched {
		e.logger.Debug("no specific handler for %s (%s); using generic template", issue.Parameter, issue.Status)
		opts = genericOptions(issue)
	}

	return agronomy.Recommendation{
		Parameter:              issue.Parameter,
		Source:                 issue.Source,
		Rationale:              opts.rationale,
		HighInvestment:         opts.high,
		MediumInvestment:       opts.medium,
		LowInvestment:          opts.low,
		ImplementationTimeline: timelineFor(issue.Severity, issue.Critical),
		Monitoring:             monitoringFor(issue.Source, issue.Critical),
		SuccessIndicators:      successIndicators(issue.Source),
	}
}

func (e *Engine) selectOptions(issue agronomy.Issue) (tieredOptions, bool) {
	direction := issue.Status
	if direction == agronomy.StatusVariable {
		// mixed fields get the corrective content for the dominant direction,
		// which for variable status is treated as deficiency management
		direction = agronomy.StatusDeficient
	}

	collapsed := strings.ToLower(issue.Parameter)
	for _, h := range e.handlers {
		if h.direction != direction {
			continue
		}
		if !strings.Contains(collapsed, strings.ToLower(h.key)) {
			continue
		}
		return h.build(issue), true
	}
	return tieredOptions{}, false
}

// genericOptions is the templated fallback for parameters without a
// dedicated handler.
func genericOptions(issue agronomy.Issue) tieredOptions {
	verb := "raise"
	if issue.Status == agronomy.StatusExcessive {
		verb = "reduce"
	}
	name := issue.Parameter

	return tieredOptions{
		rationale: fmt.Sprintf("%s is %s (current %.2f against optimal %s); corrective management is required to %s it into the optimal band.",
			name, strings.ToLower(string(issue.Status)), issue.CurrentValue, issue.OptimalRange, verb),
		high: agronomy.InvestmentOption{
			Approach:          "Intensive correction",
			Action:            fmt.Sprintf("Full corrective program to %s %s with split applications and follow-up testing", verb, name),
			Materials:         fmt.Sprintf("Premium-grade amendment targeting %s", name),
			Dosage:            "Per soil/leaf test recommendation, upper label rate",
			ApplicationMethod: "Mechanized broadcast within the weeded circle, split into 3 rounds",
			Timeline:          "Apply within 1 month, repeat quarterly",
			CostRange:         "RM 800 - 1,200 per hectare",
			ExpectedResult:    fmt.Sprintf("%s restored to optimal range within 12 months", name),
			ROIPeriod:         "12-18 months",
			YieldImpact:       "High - full correction of the limiting factor",
		},
		medium: agronomy.InvestmentOption{
			Approach:          "Standard correction",
			Action:            fmt.Sprintf("Standard program to %s %s over two seasons", verb, name),
			Materials:         fmt.Sprintf("Standard-grade amendment targeting %s", name),
			Dosage:            "Per soil/leaf test recommendation, label rate",
			ApplicationMethod: "Manual broadcast within the weeded circle, split into 2 rounds",
			Timeline:          "Apply within 2 months, repeat biannually",
			CostRange:         "RM 500 - 800 per hectare",
			ExpectedResult:    fmt.Sprintf("%s near optimal range within 18 months", name),
			ROIPeriod:         "18-24 months",
			YieldImpact:       "Moderate - substantial correction",
		},
		low: agronomy.InvestmentOption{
			Approach:          "Gradual correction",
			Action:            fmt.Sprintf("Low-cost program to gradually %s %s", verb, name),
			Materials:         "Locally available amendment plus organic matter recycling",
			Dosage:            "Half label rate, annually",
			ApplicationMethod: "Manual application to palm circle",
			Timeline:          "Apply within 3 months, annually thereafter",
			CostRange:         "RM 250 - 500 per hectare",
			ExpectedResult:    fmt.Sprintf("Gradual improvement of %s over 2-3 years", name),
			ROIPeriod:         "24-36 months",
			YieldImpact:       "Modest - partial correction",
		},
	}
}

// maintenanceProgram is returned when no issues were detected.
func maintenanceProgram() []agronomy.Recommendation {
	npk := agronomy.Recommendation{
		Parameter: "General NPK maintenance",
		Source:    agronomy.SourceSoil,
		Rationale: "All analyzed parameters fall within optimal ranges; a standard maintenance program protects the current nutrient status.",
		HighInvestment: agronomy.InvestmentOption{
			Approach:          "Full maintenance program",
			Action:            "Balanced NPK maintenance applications with annual leaf monitoring",
			Materials:         "NPK 12:12:17:2 compound fertilizer",
			Dosage:            "4-6 kg per palm per year, split into 3 rounds",
			ApplicationMethod: "Broadcast within the weeded circle",
			Timeline:          "Begin next application round",
			CostRange:         "RM 600 - 900 per hectare per year",
			ExpectedResult:    "Yield maintained at current level",
			ROIPeriod:         "Ongoing",
			YieldImpact:       "Maintains current yield",
		},
		MediumInvestment: agronomy.InvestmentOption{
			Approach:          "Standard maintenance",
			Action:            "Balanced NPK maintenance applications",
			Materials:         "NPK 12:12:17:2 compound fertilizer",
			Dosage:            "3-4 kg per palm per year, split into 2 rounds",
			ApplicationMethod: "Broadcast within the weeded circle",
			Timeline:          "Begin next application round",
			CostRange:         "RM 450 - 650 per hectare per year",
			ExpectedResult:    "Yield maintained at current level",
			ROIPeriod:         "Ongoing",
			YieldImpact:       "Maintains current yield",
		},
		LowInvestment: agronomy.InvestmentOption{
			Approach:          "Minimal maintenance",
			Action:            "Reduced NPK maintenance with EFB mulching",
			Materials:         "Straight fertilizers (AS, MOP) plus empty fruit bunches",
			Dosage:            "2-3 kg per palm per year",
			ApplicationMethod: "Manual application to palm circle",
			Timeline:          "Begin next application round",
			CostRange:         "RM 300 - 450 per hectare per year",
			ExpectedResult:    "Yield largely maintained; monitor for decline",
			ROIPeriod:         "Ongoing",
			YieldImpact:       "Maintains most of current yield",
		},
		ImplementationTimeline: "Long-term program (ongoing maintenance)",
		Monitoring:             monitoringFor(agronomy.SourceSoil, false),
		SuccessIndicators:      successIndicators(agronomy.SourceSoil),
	}

	organic := agronomy.Recommendation{
		Parameter: "Organic matter program",
		Source:    agronomy.SourceSoil,
		Rationale: "Sustained organic matter input preserves soil structure, CEC and moisture retention between nutrient corrections.",
		HighInvestment: agronomy.InvestmentOption{
			Approach:          "Intensive organic program",
			Action:            "EFB mulching plus composted POME application across the field",
			Materials:         "Empty fruit bunches, composted palm oil mill effluent",
			Dosage:            "40 t EFB per hectare every 2 years",
			ApplicationMethod: "Mechanical spreading in interrows",
			Timeline:          "Start with next mill delivery cycle",
			CostRange:         "RM 500 - 800 per hectare",
			ExpectedResult:    "Organic carbon and CEC improved within 2 years",
			ROIPeriod:         "24 months",
			YieldImpact:       "Moderate - improved moisture and nutrient buffering",
		},
		MediumInvestment: agronomy.InvestmentOption{
			Approach:          "Standard organic program",
			Action:            "EFB mulching of alternate interrows",
			Materials:         "Empty fruit bunches",
			Dosage:            "20 t EFB per hectare every 2 years",
			ApplicationMethod: "Manual placement in alternate interrows",
			Timeline:          "Start with next mill delivery cycle",
			CostRange:         "RM 300 - 500 per hectare",
			ExpectedResult:    "Gradual organic carbon improvement",
			ROIPeriod:         "30 months",
			YieldImpact:       "Modest - improved soil condition",
		},
		LowInvestment: agronomy.InvestmentOption{
			Approach:          "Minimal organic program",
			Action:            "Frond stacking and pruned-frond retention",
			Materials:         "Pruned fronds (on-site)",
			Dosage:            "All pruned fronds retained and stacked",
			ApplicationMethod: "Frond stacking along interrows",
			Timeline:          "Adopt at next pruning round",
			CostRange:         "RM 50 - 150 per hectare",
			ExpectedResult:    "Slow organic matter accumulation",
			ROIPeriod:         "36+ months",
			YieldImpact:       "Small but sustained",
		},
		ImplementationTimeline: "Long-term program (ongoing maintenance)",
		Monitoring:             monitoringFor(agronomy.SourceSoil, false),
		SuccessIndicators:      successIndicators(agronomy.SourceSoil),
	}

	return []agronomy.Recommendation{npk, organic}
}
