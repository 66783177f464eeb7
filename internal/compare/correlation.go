package compare

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"agropalm/domain/agronomy"
	"agropalm/domain/sample"
)

// Correlation reporting thresholds.
const (
	minCorrelationSamples = 3
	strongCorrelationAbsR = 0.7
)

// Correlations computes pairwise Pearson correlations between parameters of
// one sample set and reports the strong ones (|r| >= 0.7 over at least 3
// paired observations). Informational only; correlations never change issue
// severity.
func Correlations(samples []sample.Sample, parameters []string) []agronomy.ParameterCorrelation {
	var results []agronomy.ParameterCorrelation

	for i := 0; i < len(parameters); i++ {
		for j := i + 1; j < len(parameters); j++ {
			x, y := pairedValues(samples, parameters[i], parameters[j])
			if len(x) < minCorrelationSamples {
				continue
			}
			r := stat.Correlation(x, y, nil)
			if math.IsNaN(r) || math.Abs(r) < strongCorrelationAbsR {
				continue
			}
			results = append(results, agronomy.ParameterCorrelation{
				ParameterX: parameters[i],
				ParameterY: parameters[j],
				R:          r,
				N:          len(x),
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return math.Abs(results[i].R) > math.Abs(results[j].R)
	})
	return results
}

func pairedValues(samples []sample.Sample, paramX, paramY string) ([]float64, []float64) {
	var x, y []float64
	for _, s := range samples {
		vx, okX := s.NumericValue(paramX)
		vy, okY := s.NumericValue(paramY)
		if !okX || !okY {
			continue
		}
		x = append(x, vx)
		y = append(y, vy)
	}
	return x, y
}
