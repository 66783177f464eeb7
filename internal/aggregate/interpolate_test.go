package aggregate

import (
	"math"
	"testing"

	"agropalm/domain/sample"
)

func TestFillMissing_LinearInterpolation(t *testing.T) {
	// Gap of two between 4.0 and 7.0: expect 5.0 and 6.0
	samples := []sample.Sample{
		soilSample("S1", map[string]sample.Value{"pH": sample.Numeric(4.0)}),
		soilSample("S2", map[string]sample.Value{"pH": sample.MissingValue()}),
		soilSample("S3", map[string]sample.Value{"pH": sample.MissingValue()}),
		soilSample("S4", map[string]sample.Value{"pH": sample.Numeric(7.0)}),
	}

	filled := FillMissing(samples, []string{"pH"})
	want := []float64{4.0, 5.0, 6.0, 7.0}
	for i, w := range want {
		got, ok := filled[i].NumericValue("pH")
		if !ok {
			t.Fatalf("Expected sample %d to be filled", i)
		}
		if math.Abs(got-w) > 1e-9 {
			t.Errorf("Sample %d: expected %v, got %v", i, w, got)
		}
	}
}

func TestFillMissing_EdgesUseNearestNeighbor(t *testing.T) {
	samples := []sample.Sample{
		soilSample("S1", map[string]sample.Value{"pH": sample.MissingValue()}),
		soilSample("S2", map[string]sample.Value{"pH": sample.Numeric(5.2)}),
		soilSample("S3", map[string]sample.Value{"pH": sample.MissingValue()}),
	}

	filled := FillMissing(samples, []string{"pH"})
	if v, _ := filled[0].NumericValue("pH"); v != 5.2 {
		t.Errorf("Expected leading gap filled with 5.2, got %v", v)
	}
	if v, _ := filled[2].NumericValue("pH"); v != 5.2 {
		t.Errorf("Expected trailing gap filled with 5.2, got %v", v)
	}
}

func TestFillMissing_NoValidValuesFillsZero(t *testing.T) {
	samples := []sample.Sample{
		soilSample("S1", map[string]sample.Value{"pH": sample.MissingValue()}),
		soilSample("S2", map[string]sample.Value{}),
	}
	filled := FillMissing(samples, []string{"pH"})
	for i := range filled {
		if v, ok := filled[i].NumericValue("pH"); !ok || v != 0.0 {
			t.Errorf("Sample %d: expected 0.0 fill, got %v ok=%v", i, v, ok)
		}
	}
}

func TestFillMissing_IdentityOnCompleteSet(t *testing.T) {
	samples := []sample.Sample{
		soilSample("S1", map[string]sample.Value{"pH": sample.Numeric(4.4)}),
		soilSample("S2", map[string]sample.Value{"pH": sample.Numeric(5.6)}),
	}
	filled := FillMissing(samples, []string{"pH"})
	for i := range samples {
		want, _ := samples[i].NumericValue("pH")
		got, _ := filled[i].NumericValue("pH")
		if got != want {
			t.Errorf("Sample %d: expected %v unchanged, got %v", i, want, got)
		}
	}
}

func TestFillMissing_DoesNotMutateInput(t *testing.T) {
	samples := []sample.Sample{
		soilSample("S1", map[string]sample.Value{"pH": sample.MissingValue()}),
		soilSample("S2", map[string]sample.Value{"pH": sample.Numeric(5.0)}),
	}
	_ = FillMissing(samples, []string{"pH"})
	if v := samples[0].Values["pH"]; !v.Missing {
		t.Error("Expected original sample to keep its missing value")
	}
}
