package compare

import (
	"strings"

	"agropalm/domain/agronomy"
)

// Known cross-contamination signature: a non-pH parameter carrying the pH
// optimal range, or out-of-range entries all tagged with the acceptable pH
// band. These patterns came from an upstream extractor occasionally
// mismapping parameter labels; the normalizer here cannot produce them, but
// externally normalized samples can still arrive, so the check stays.
const (
	phRangeMin = 4.5
	phRangeMax = 6.0

	phSampleRangeMin = 4.0
	phSampleRangeMax = 5.5
)

// isCorrupt reports whether a soil issue matches one of the corruption
// signatures and should be discarded.
func isCorrupt(issue agronomy.Issue, st agronomy.ParameterStatistics) bool {
	isPHParam := strings.EqualFold(issue.Parameter, "ph")

	// (a) non-pH parameter wearing the pH optimal range
	if !isPHParam && issue.OptimalMin == phRangeMin && issue.OptimalMax == phRangeMax {
		return true
	}

	// (b) every individual value exactly zero
	if len(st.Observations) > 0 {
		allZero := true
		for _, obs := range st.Observations {
			if obs.Value != 0.0 {
				allZero = false
				break
			}
		}
		if allZero {
			return true
		}
	}

	// (c) non-pH parameter whose out-of-range entries all carry the
	// acceptable-pH band (4.0, 5.5)
	if !isPHParam && len(issue.OutOfRangeSamples) > 0 {
		allPHBand := true
		for _, s := range issue.OutOfRangeSamples {
			if s.RangeMin != phSampleRangeMin || s.RangeMax != phSampleRangeMax {
				allPHBand = false
				break
			}
		}
		if allPHBand {
			return true
		}
	}

	// (d) pH issue whose flagged samples reference other parameter names
	if isPHParam {
		for _, s := range issue.OutOfRangeSamples {
			if referencesOtherParameter(s.SampleID) {
				return true
			}
		}
	}

	return false
}

// referencesOtherParameter detects sample identifiers that are really
// parameter labels leaked by a bad extraction.
func referencesOtherParameter(sampleID string) bool {
	id := strings.ToLower(sampleID)
	for _, name := range []string{"nitrogen", "carbon", "phosphorus", "potassium", "calcium", "magnesium", "cec", "organic"} {
		if strings.Contains(id, name) {
			return true
		}
	}
	return false
}
