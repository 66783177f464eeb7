package aggregate

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"agropalm/domain/sample"
)

// Defaults applied when a parameter has no valid raw values at all. pH gets
// a conservative acidic assumption for oil-palm soils; everything else zero.
const (
	defaultPH    = 4.5
	defaultOther = 0.0
)

// RawAverages computes per-parameter means over the original, uninterpolated
// sample values. A positivity filter drops values <= 0 as likely data-entry
// artifacts, except for pH where the full 0-14 scale is meaningful.
// Parameters with zero surviving values get the documented defaults, and a
// data-quality note records that the default was used.
func RawAverages(samples []sample.Sample, parameters []string) (map[string]float64, []string) {
	averages := make(map[string]float64, len(parameters))
	var notes []string

	for _, param := range parameters {
		var values []float64
		for _, s := range samples {
			v, ok := s.NumericValue(param)
			if !ok {
				continue
			}
			if isPH(param) {
				if v < 0 || v > 14 {
					continue
				}
			} else if v <= 0 {
				continue
			}
			values = append(values, v)
		}

		if len(values) == 0 {
			if isPH(param) {
				averages[param] = defaultPH
			} else {
				averages[param] = defaultOther
			}
			notes = append(notes, fmt.Sprintf("no valid raw values for %s; default applied", param))
			continue
		}

		mean, _ := stats.Mean(values)
		averages[param] = mean
	}

	return averages, notes
}

func isPH(param string) bool {
	return param == "pH" || param == "ph"
}
