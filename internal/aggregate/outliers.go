package aggregate

import (
	"github.com/montanaflynn/stats"

	"agropalm/domain/sample"
)

const iqrFactor = 1.5

// RemoveOutliers drops values outside [Q1 - 1.5*IQR, Q3 + 1.5*IQR]. Applied
// only when explicitly requested as a preprocessing stage; never during
// raw-average computation.
func RemoveOutliers(values []float64) []float64 {
	if len(values) < 4 {
		return values
	}

	q1, err1 := stats.Percentile(values, 25)
	q3, err2 := stats.Percentile(values, 75)
	if err1 != nil || err2 != nil {
		return values
	}

	iqr := q3 - q1
	lower := q1 - iqrFactor*iqr
	upper := q3 + iqrFactor*iqr

	kept := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= lower && v <= upper {
			kept = append(kept, v)
		}
	}
	return kept
}

// RemoveOutlierSamples marks per-parameter outlier observations as missing
// in a copied sample set, so a subsequent Aggregate pass excludes them.
func RemoveOutlierSamples(samples []sample.Sample, parameters []string) []sample.Sample {
	cleaned := make([]sample.Sample, len(samples))
	for i, s := range samples {
		values := make(map[string]sample.Value, len(s.Values))
		for k, v := range s.Values {
			values[k] = v
		}
		cleaned[i] = sample.Sample{SampleID: s.SampleID, LabID: s.LabID, Values: values}
	}

	for _, param := range parameters {
		var values []float64
		for _, s := range samples {
			if v, ok := s.NumericValue(param); ok {
				values = append(values, v)
			}
		}
		if len(values) < 4 {
			continue
		}

		q1, err1 := stats.Percentile(values, 25)
		q3, err2 := stats.Percentile(values, 75)
		if err1 != nil || err2 != nil {
			continue
		}
		iqr := q3 - q1
		lower := q1 - iqrFactor*iqr
		upper := q3 + iqrFactor*iqr

		for i := range cleaned {
			if v, ok := cleaned[i].NumericValue(param); ok && (v < lower || v > upper) {
				cleaned[i].Values[param] = sample.MissingValue()
			}
		}
	}

	return cleaned
}
