package normalize

import (
	"math"
	"testing"
)

func TestCleanValue_BelowDetectionLimit(t *testing.T) {
	// Scenario: lab reports "<1" for a trace element
	for _, raw := range []string{"<1", "< 0.05", "<0.1 ppm"} {
		v, usable := CleanValue(raw)
		if !usable {
			t.Fatalf("Expected %q to be usable", raw)
		}
		if v.Missing {
			t.Errorf("Expected %q to be numeric, got missing", raw)
		}
		if v.Num != 0.5 {
			t.Errorf("Expected %q -> 0.5, got %v", raw, v.Num)
		}
	}
}

func TestCleanValue_MissingMarkers(t *testing.T) {
	for _, raw := range []string{"ND", "N.D.", "n.d.", "BDL", "na", "N/A", "-", "--", ""} {
		v, usable := CleanValue(raw)
		if !usable {
			t.Fatalf("Expected marker %q to be usable", raw)
		}
		if !v.Missing {
			t.Errorf("Expected marker %q to map to missing, got %v", raw, v.Num)
		}
	}
}

func TestCleanValue_NumericStrings(t *testing.T) {
	cases := map[string]float64{
		"5.2":       5.2,
		" 4.85 ":    4.85,
		"4,200":     4200,
		"1200 ppm":  1200,
		"0.15%":     0.15,
		"-3.5":      -3.5,
		"pH 4.8":    4.8,
		"12 mg/kg":  12,
		"0.404686 ": 0.404686,
	}
	for raw, want := range cases {
		v, usable := CleanValue(raw)
		if !usable {
			t.Fatalf("Expected %q to be usable", raw)
		}
		if v.Missing {
			t.Fatalf("Expected %q to be numeric", raw)
		}
		if math.Abs(v.Num-want) > 1e-9 {
			t.Errorf("Expected %q -> %v, got %v", raw, want, v.Num)
		}
	}
}

func TestCleanValue_NativeNumbers(t *testing.T) {
	v, usable := CleanValue(4.75)
	if !usable || v.Missing || v.Num != 4.75 {
		t.Errorf("Expected float64 passthrough, got %+v usable=%v", v, usable)
	}

	v, usable = CleanValue(42)
	if !usable || v.Missing || v.Num != 42 {
		t.Errorf("Expected int conversion, got %+v usable=%v", v, usable)
	}

	v, usable = CleanValue(math.NaN())
	if !usable || !v.Missing {
		t.Errorf("Expected NaN to map to missing, got %+v usable=%v", v, usable)
	}

	v, usable = CleanValue(nil)
	if !usable || !v.Missing {
		t.Errorf("Expected nil to map to missing, got %+v usable=%v", v, usable)
	}
}

func TestCleanValue_Garbage(t *testing.T) {
	for _, raw := range []string{"pending", "see note", "error", "..."} {
		v, usable := CleanValue(raw)
		if usable && !v.Missing {
			t.Errorf("Expected %q to be unusable or missing, got %v", raw, v.Num)
		}
	}
}
