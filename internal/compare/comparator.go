package compare

import (
	"math"
	"sort"

	"agropalm/domain/agronomy"
	"agropalm/internal"
)

// CV thresholds above which a parameter is flagged as highly variable.
const (
	cvThresholdSoil = 30.0
	cvThresholdLeaf = 25.0
)

// Comparator decides deficiency/excess/variability against a standards
// table. It is a pure function over (statistics, standards): no state
// survives between calls.
type Comparator struct {
	standards map[string]agronomy.StandardRange
	source    agronomy.Source
	logger    *internal.Logger
}

// Result is the comparator output for one sample set.
type Result struct {
	Issues           []agronomy.Issue
	VarianceWarnings []agronomy.VarianceWarning
}

// NewComparator builds a comparator for one source (soil or leaf) with its
// standards table injected, so tests can swap alternate tables.
func NewComparator(standards map[string]agronomy.StandardRange, source agronomy.Source, logger *internal.Logger) *Comparator {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Comparator{standards: standards, source: source, logger: logger}
}

// Compare produces one issue per parameter whose mean sits outside the
// optimal range, or whose individual samples straddle it. Issues come back
// sorted by priority score, highest first.
func (c *Comparator) Compare(statistics map[string]agronomy.ParameterStatistics) Result {
	var res Result

	params := make([]string, 0, len(statistics))
	for p := range statistics {
		params = append(params, p)
	}
	sort.Strings(params)

	for _, param := range params {
		st := statistics[param]
		std, ok := c.standards[param]
		if !ok {
			// No matching standard: a no-op for this parameter, not an error.
			continue
		}

		if warn, ok := c.varianceWarning(st); ok {
			res.VarianceWarnings = append(res.VarianceWarnings, warn)
		}

		issue, flagged := c.evaluate(st, std)
		if !flagged {
			continue
		}
		if c.source == agronomy.SourceSoil && isCorrupt(issue, st) {
			c.logger.Warn("discarding corrupt soil issue for %s (upstream label mismap signature)", param)
			continue
		}
		res.Issues = append(res.Issues, issue)
	}

	sort.SliceStable(res.Issues, func(i, j int) bool {
		return res.Issues[i].PriorityScore > res.Issues[j].PriorityScore
	})
	return res
}

// evaluate builds the issue for one parameter, if any.
func (c *Comparator) evaluate(st agronomy.ParameterStatistics, std agronomy.StandardRange) (agronomy.Issue, bool) {
	mean := st.Average
	opt := std.Optimal
	outSamples := c.outOfRange(st, opt)

	var status agronomy.Status
	switch {
	case mean < opt.Min:
		status = agronomy.StatusDeficient
	case mean > opt.Max:
		status = agronomy.StatusExcessive
	case len(outSamples) > 0:
		status = agronomy.StatusVariable
	default:
		return agronomy.Issue{}, false
	}

	deviation := deviationPercent(mean, opt)
	severity := severityFor(status, mean, opt, std.Critical)

	coverage := 0.0
	if st.Count > 0 {
		coverage = float64(len(outSamples)) / float64(st.Count)
	}

	issue := agronomy.Issue{
		Parameter:            std.Parameter,
		CurrentValue:         mean,
		OptimalMin:           opt.Min,
		OptimalMax:           opt.Max,
		OptimalRange:         opt.String(),
		Status:               status,
		Severity:             severity,
		Critical:             std.Critical,
		DeviationPercent:     deviation,
		CoefficientVariation: coefficientOfVariation(st),
		OutOfRangeSamples:    outSamples,
		PriorityScore:        priorityScore(severity, std.Critical, deviation, coverage),
		Source:               c.source,
		Unit:                 std.Unit,
		Category:             std.Category,
	}

	switch status {
	case agronomy.StatusDeficient:
		issue.Causes, issue.Impacts = std.LowCauses, std.LowImpacts
	case agronomy.StatusExcessive:
		issue.Causes, issue.Impacts = std.HighCauses, std.HighImpacts
	}

	return issue, true
}

func (c *Comparator) outOfRange(st agronomy.ParameterStatistics, opt agronomy.ValueRange) []agronomy.OutOfRangeSample {
	var out []agronomy.OutOfRangeSample
	for _, obs := range st.Observations {
		if opt.Contains(obs.Value) {
			continue
		}
		out = append(out, agronomy.OutOfRangeSample{
			SampleID: obs.SampleID,
			Value:    obs.Value,
			RangeMin: opt.Min,
			RangeMax: opt.Max,
		})
	}
	return out
}

func (c *Comparator) varianceWarning(st agronomy.ParameterStatistics) (agronomy.VarianceWarning, bool) {
	cv := coefficientOfVariation(st)
	threshold := cvThresholdSoil
	if c.source == agronomy.SourceLeaf {
		threshold = cvThresholdLeaf
	}
	if cv <= threshold {
		return agronomy.VarianceWarning{}, false
	}
	return agronomy.VarianceWarning{
		Parameter: st.Parameter,
		CV:        cv,
		Text: st.Parameter + " varies strongly between samples (CV " +
			formatPercent(cv) + "); field-level variability may mask localized problems",
	}, true
}

func coefficientOfVariation(st agronomy.ParameterStatistics) float64 {
	if st.Average == 0 {
		return 0
	}
	return st.StdDev / math.Abs(st.Average) * 100
}

// deviationPercent measures |mean - violated boundary| relative to that
// boundary. In-range means (Variable status) have zero deviation.
func deviationPercent(mean float64, opt agronomy.ValueRange) float64 {
	switch {
	case mean < opt.Min && opt.Min != 0:
		return math.Abs(mean-opt.Min) / opt.Min * 100
	case mean > opt.Max && opt.Max != 0:
		return math.Abs(mean-opt.Max) / opt.Max * 100
	}
	return 0
}
