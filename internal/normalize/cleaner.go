package normalize

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"agropalm/domain/sample"
)

// detectionLimitValue is substituted for "<x"-style below-detection readings.
const detectionLimitValue = 0.5

// missingMarkers are lab notations that mean "no usable reading". They map
// to an explicit missing value, never to zero.
var missingMarkers = map[string]bool{
	"":     true,
	"nd":   true,
	"n.d.": true,
	"n.d":  true,
	"bdl":  true,
	"na":   true,
	"n/a":  true,
	"-":    true,
	"--":   true,
}

// CleanValue converts a raw cell into a Value. The second return reports
// whether the cell is usable at all: missing markers are usable (as explicit
// missing), garbage that is neither numeric nor a known marker is not.
func CleanValue(raw interface{}) (sample.Value, bool) {
	switch v := raw.(type) {
	case nil:
		return sample.MissingValue(), true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return sample.MissingValue(), true
		}
		return sample.Numeric(v), true
	case float32:
		return sample.Numeric(float64(v)), true
	case int:
		return sample.Numeric(float64(v)), true
	case int64:
		return sample.Numeric(float64(v)), true
	case string:
		return cleanString(v)
	}
	// anything else goes through its string form
	return cleanString(fmt.Sprintf("%v", raw))
}

func cleanString(s string) (sample.Value, bool) {
	trimmed := strings.TrimSpace(strings.ToLower(s))

	if missingMarkers[trimmed] {
		return sample.MissingValue(), true
	}

	// Below-detection-limit readings like "<1" or "< 0.05" become half the
	// smallest reportable step, fixed at 0.5 per lab convention.
	if strings.HasPrefix(trimmed, "<") {
		return sample.Numeric(detectionLimitValue), true
	}

	// Strip everything except digits, decimal point and sign.
	var b strings.Builder
	for _, r := range trimmed {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" || cleaned == "-" || cleaned == "." {
		return sample.MissingValue(), true
	}

	val, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
		return sample.Value{}, false
	}
	return sample.Numeric(val), true
}
