package agronomy

import "fmt"

// Source labels which sample set an issue or statistic came from.
type Source string

const (
	SourceSoil Source = "Soil Analysis"
	SourceLeaf Source = "Leaf Analysis"
)

// Observation is one non-missing sample value retained alongside the
// aggregate statistics for display and per-sample range checks.
type Observation struct {
	SampleID string  `json:"sample_id"`
	LabID    string  `json:"lab_id,omitempty"`
	Value    float64 `json:"value"`
}

// ParameterStatistics holds the aggregate for one parameter over one sample
// set. Invariant: Count + MissingCount equals the total number of samples in
// the set. Computed once per run and immutable afterwards.
type ParameterStatistics struct {
	Parameter    string        `json:"parameter"`
	Average      float64       `json:"average"`
	Min          float64       `json:"min"`
	Max          float64       `json:"max"`
	StdDev       float64       `json:"std_dev"`
	Count        int           `json:"count"`
	MissingCount int           `json:"missing_count"`
	Observations []Observation `json:"observations"`
}

// ValueRange is a closed numeric interval.
type ValueRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v falls inside the interval.
func (r ValueRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// String renders the interval the way reports display optimal ranges.
func (r ValueRange) String() string {
	return fmt.Sprintf("%g-%g", r.Min, r.Max)
}

// StandardRange is the published reference data for one parameter. Two
// independent tables exist, one for soil and one for leaf parameters.
// Loaded once at startup and never mutated.
type StandardRange struct {
	Parameter    string     `json:"parameter"`
	Optimal      ValueRange `json:"optimal"`
	Acceptable   ValueRange `json:"acceptable"`
	CriticalLow  float64    `json:"critical_low"`
	CriticalHigh float64    `json:"critical_high"`
	Unit         string     `json:"unit"`
	Category     string     `json:"category"`
	Critical     bool       `json:"critical"`
	LowCauses    string     `json:"low_causes,omitempty"`
	LowImpacts   string     `json:"low_impacts,omitempty"`
	HighCauses   string     `json:"high_causes,omitempty"`
	HighImpacts  string     `json:"high_impacts,omitempty"`
}

// Status classifies the direction of a detected deviation.
type Status string

const (
	StatusDeficient Status = "Deficient"
	StatusExcessive Status = "Excessive"
	StatusVariable  Status = "Variable"
)

// Severity ranks how far outside the standard a parameter sits.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// Rank returns the ordinal position of a severity (Low < Medium < High <
// Critical), for monotonicity checks and sorting.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 0
	case SeverityMedium:
		return 1
	case SeverityHigh:
		return 2
	case SeverityCritical:
		return 3
	}
	return -1
}

// OutOfRangeSample records one individual observation that fell outside the
// optimal range, with the range it was checked against.
type OutOfRangeSample struct {
	SampleID string  `json:"sample_id"`
	Value    float64 `json:"value"`
	RangeMin float64 `json:"range_min"`
	RangeMax float64 `json:"range_max"`
}

// Issue is one detected deviation for one parameter. Write-once: downstream
// stages consume issues, they never update them.
type Issue struct {
	Parameter            string             `json:"parameter"`
	CurrentValue         float64            `json:"current_value"`
	OptimalMin           float64            `json:"optimal_min"`
	OptimalMax           float64            `json:"optimal_max"`
	OptimalRange         string             `json:"optimal_range"`
	Status               Status             `json:"status"`
	Severity             Severity           `json:"severity"`
	Critical             bool               `json:"critical"`
	DeviationPercent     float64            `json:"deviation_percent"`
	CoefficientVariation float64            `json:"coefficient_variation"`
	OutOfRangeSamples    []OutOfRangeSample `json:"out_of_range_samples"`
	PriorityScore        int                `json:"priority_score"`
	Source               Source             `json:"source"`
	Unit                 string             `json:"unit"`
	Category             string             `json:"category"`
	Causes               string             `json:"causes,omitempty"`
	Impacts              string             `json:"impacts,omitempty"`
}

// VarianceWarning reports high sample-to-sample variability for a parameter.
// Warnings are informational and never change issue severity.
type VarianceWarning struct {
	Parameter string  `json:"parameter"`
	CV        float64 `json:"cv"`
	Text      string  `json:"text"`
}

// ParameterCorrelation is one strong pairwise correlation between two
// parameters of the same sample set, reported as context for agronomists.
type ParameterCorrelation struct {
	ParameterX string  `json:"parameter_x"`
	ParameterY string  `json:"parameter_y"`
	R          float64 `json:"r"`
	N          int     `json:"n"`
}

// InvestmentOption is one tier of an intervention package.
type InvestmentOption struct {
	Approach          string `json:"approach"`
	Action            string `json:"action"`
	Materials         string `json:"materials"`
	Dosage            string `json:"dosage"`
	ApplicationMethod string `json:"application_method"`
	Timeline          string `json:"timeline"`
	CostRange         string `json:"cost_range"`
	ExpectedResult    string `json:"expected_result"`
	ROIPeriod         string `json:"roi_period"`
	YieldImpact       string `json:"yield_impact"`
}

// MonitoringPlan describes follow-up testing after an intervention.
type MonitoringPlan struct {
	RetestInterval string   `json:"retest_interval"`
	Focus          []string `json:"focus"`
}

// Recommendation pairs one issue with three investment options plus an
// implementation timeline and monitoring plan. One per issue; created only
// after all issues are known so priority ordering holds.
type Recommendation struct {
	Parameter              string           `json:"parameter"`
	Source                 Source           `json:"source"`
	Rationale              string           `json:"rationale"`
	HighInvestment         InvestmentOption `json:"high_investment"`
	MediumInvestment       InvestmentOption `json:"medium_investment"`
	LowInvestment          InvestmentOption `json:"low_investment"`
	ImplementationTimeline string           `json:"implementation_timeline"`
	Monitoring             MonitoringPlan   `json:"monitoring"`
	SuccessIndicators      []string         `json:"success_indicators"`
}
