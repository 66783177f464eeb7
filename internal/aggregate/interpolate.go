package aggregate

import (
	"github.com/montanaflynn/stats"

	"agropalm/domain/sample"
)

// FillMissing returns a copy of the sample set with missing values filled by
// linear interpolation in sample order: nearest valid neighbor before and
// after, the single neighbor when only one side exists, the parameter mean
// when neither does, and 0.0 when the parameter has no valid values at all.
// On an already-complete set this is the identity.
func FillMissing(samples []sample.Sample, parameters []string) []sample.Sample {
	filled := make([]sample.Sample, len(samples))
	for i, s := range samples {
		values := make(map[string]sample.Value, len(s.Values))
		for k, v := range s.Values {
			values[k] = v
		}
		filled[i] = sample.Sample{SampleID: s.SampleID, LabID: s.LabID, Values: values}
	}

	for _, param := range parameters {
		var valid []float64
		for _, s := range samples {
			if v, ok := s.NumericValue(param); ok {
				valid = append(valid, v)
			}
		}
		var mean float64
		if len(valid) > 0 {
			mean, _ = stats.Mean(valid)
		}

		for i := range filled {
			if v, present := filled[i].Values[param]; present && !v.Missing {
				continue
			}
			filled[i].Values[param] = sample.Numeric(interpolateAt(samples, param, i, mean, len(valid) > 0))
		}
	}

	return filled
}

func interpolateAt(samples []sample.Sample, param string, idx int, mean float64, hasValid bool) float64 {
	prevIdx, prev, prevOK := nearestBefore(samples, param, idx)
	nextIdx, next, nextOK := nearestAfter(samples, param, idx)

	switch {
	case prevOK && nextOK:
		frac := float64(idx-prevIdx) / float64(nextIdx-prevIdx)
		return prev + (next-prev)*frac
	case prevOK:
		return prev
	case nextOK:
		return next
	case hasValid:
		return mean
	}
	return 0.0
}

func nearestBefore(samples []sample.Sample, param string, idx int) (int, float64, bool) {
	for i := idx - 1; i >= 0; i-- {
		if v, ok := samples[i].NumericValue(param); ok {
			return i, v, true
		}
	}
	return 0, 0, false
}

func nearestAfter(samples []sample.Sample, param string, idx int) (int, float64, bool) {
	for i := idx + 1; i < len(samples); i++ {
		if v, ok := samples[i].NumericValue(param); ok {
			return i, v, true
		}
	}
	return 0, 0, false
}
