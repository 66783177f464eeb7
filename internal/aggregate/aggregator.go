package aggregate

import (
	"github.com/montanaflynn/stats"

	"agropalm/domain/agronomy"
	"agropalm/domain/sample"
)

// Aggregator computes per-parameter statistics over a normalized sample set.
// It is a pure function over its inputs: aggregating the same samples twice
// yields identical statistics.
type Aggregator struct{}

// NewAggregator creates an aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{}
}

// Aggregate produces one ParameterStatistics per parameter that is present
// with a non-missing value in at least one sample. Statistics are computed
// only over non-missing observations; MissingCount covers the rest of the
// set, so Count+MissingCount always equals len(samples).
func (a *Aggregator) Aggregate(samples []sample.Sample, parameters []string) map[string]agronomy.ParameterStatistics {
	result := make(map[string]agronomy.ParameterStatistics)
	total := len(samples)

	for _, param := range parameters {
		var values []float64
		var observations []agronomy.Observation

		for _, s := range samples {
			v, ok := s.NumericValue(param)
			if !ok {
				continue
			}
			values = append(values, v)
			observations = append(observations, agronomy.Observation{
				SampleID: s.SampleID,
				LabID:    s.LabID,
				Value:    v,
			})
		}

		if len(values) == 0 {
			continue
		}

		mean, _ := stats.Mean(values)
		minV, _ := stats.Min(values)
		maxV, _ := stats.Max(values)

		// Sample standard deviation (n-1); zero when n <= 1.
		stdDev := 0.0
		if len(values) > 1 {
			stdDev, _ = stats.StandardDeviationSample(values)
		}

		result[param] = agronomy.ParameterStatistics{
			Parameter:    param,
			Average:      mean,
			Min:          minV,
			Max:          maxV,
			StdDev:       stdDev,
			Count:        len(values),
			MissingCount: total - len(values),
			Observations: observations,
		}
	}

	return result
}
