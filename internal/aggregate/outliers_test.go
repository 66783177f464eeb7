package aggregate

import (
	"testing"

	"agropalm/domain/sample"
)

func TestRemoveOutliers_DropsExtremes(t *testing.T) {
	values := []float64{4.0, 4.2, 4.4, 4.6, 4.8, 5.0, 40.0}
	kept := RemoveOutliers(values)
	if len(kept) != 6 {
		t.Fatalf("Expected 6 values after outlier removal, got %d", len(kept))
	}
	for _, v := range kept {
		if v == 40.0 {
			t.Error("Expected 40.0 to be removed")
		}
	}
}

func TestRemoveOutliers_SmallSetsUntouched(t *testing.T) {
	values := []float64{1, 2, 100}
	kept := RemoveOutliers(values)
	if len(kept) != 3 {
		t.Errorf("Expected n<4 set to pass through, got %d values", len(kept))
	}
}

func TestRemoveOutlierSamples_MarksMissing(t *testing.T) {
	samples := []sample.Sample{
		soilSample("S1", map[string]sample.Value{"pH": sample.Numeric(4.0)}),
		soilSample("S2", map[string]sample.Value{"pH": sample.Numeric(4.2)}),
		soilSample("S3", map[string]sample.Value{"pH": sample.Numeric(4.4)}),
		soilSample("S4", map[string]sample.Value{"pH": sample.Numeric(4.6)}),
		soilSample("S5", map[string]sample.Value{"pH": sample.Numeric(40.0)}),
	}

	cleaned := RemoveOutlierSamples(samples, []string{"pH"})
	if v, ok := cleaned[4].NumericValue("pH"); ok {
		t.Errorf("Expected outlier marked missing, still numeric %v", v)
	}
	if !cleaned[4].Values["pH"].Missing {
		t.Error("Expected outlier stored as explicit missing value")
	}

	// originals untouched
	if v, ok := samples[4].NumericValue("pH"); !ok || v != 40.0 {
		t.Error("Expected input samples unchanged")
	}

	// inliers survive
	for i := 0; i < 4; i++ {
		if _, ok := cleaned[i].NumericValue("pH"); !ok {
			t.Errorf("Expected sample %d to keep its value", i)
		}
	}
}
