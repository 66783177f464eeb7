package compare

import (
	"testing"

	"agropalm/domain/agronomy"
	"agropalm/internal/standards"
)

func TestIsCorrupt_NonPHParameterWithPHRange(t *testing.T) {
	issue := agronomy.Issue{
		Parameter:  standards.SoilN,
		OptimalMin: 4.5,
		OptimalMax: 6.0,
	}
	if !isCorrupt(issue, agronomy.ParameterStatistics{}) {
		t.Error("Expected nitrogen wearing the pH range to be flagged corrupt")
	}
}

func TestIsCorrupt_AllZeroObservations(t *testing.T) {
	st := agronomy.ParameterStatistics{
		Observations: []agronomy.Observation{
			{SampleID: "S1", Value: 0.0},
			{SampleID: "S2", Value: 0.0},
		},
	}
	issue := agronomy.Issue{Parameter: standards.SoilOC, OptimalMin: 1.2, OptimalMax: 3.0}
	if !isCorrupt(issue, st) {
		t.Error("Expected all-zero observations to be flagged corrupt")
	}
}

func TestIsCorrupt_OutOfRangeSamplesCarryPHBand(t *testing.T) {
	issue := agronomy.Issue{
		Parameter:  standards.SoilExchK,
		OptimalMin: 0.15,
		OptimalMax: 0.30,
		OutOfRangeSamples: []agronomy.OutOfRangeSample{
			{SampleID: "S1", Value: 4.8, RangeMin: 4.0, RangeMax: 5.5},
			{SampleID: "S2", Value: 5.1, RangeMin: 4.0, RangeMax: 5.5},
		},
	}
	if !isCorrupt(issue, agronomy.ParameterStatistics{}) {
		t.Error("Expected potassium samples carrying the pH band to be flagged corrupt")
	}
}

func TestIsCorrupt_PHSampleIDsReferencingParameters(t *testing.T) {
	issue := agronomy.Issue{
		Parameter:  standards.SoilPH,
		OptimalMin: 4.5,
		OptimalMax: 6.0,
		OutOfRangeSamples: []agronomy.OutOfRangeSample{
			{SampleID: "Organic_Carbon_%", Value: 1.8, RangeMin: 4.5, RangeMax: 6.0},
		},
	}
	if !isCorrupt(issue, agronomy.ParameterStatistics{}) {
		t.Error("Expected pH issue with parameter-name sample IDs to be flagged corrupt")
	}
}

func TestIsCorrupt_CleanIssuePasses(t *testing.T) {
	st := statsFor(standards.SoilPH, 3.8, 4.0, 4.2)
	issue := agronomy.Issue{
		Parameter:  standards.SoilPH,
		OptimalMin: 4.5,
		OptimalMax: 6.0,
		OutOfRangeSamples: []agronomy.OutOfRangeSample{
			{SampleID: "S1", Value: 3.8, RangeMin: 4.5, RangeMax: 6.0},
		},
	}
	if isCorrupt(issue, st) {
		t.Error("Expected legitimate acidic-soil issue to pass the filter")
	}
}

func TestCompare_DiscardsCorruptSoilIssue(t *testing.T) {
	// Every reading exactly zero is the second corruption signature
	c := NewComparator(standards.SoilStandards(), agronomy.SourceSoil, nil)
	res := c.Compare(map[string]agronomy.ParameterStatistics{
		standards.SoilOC: statsFor(standards.SoilOC, 0.0, 0.0, 0.0),
	})
	if len(res.Issues) != 0 {
		t.Errorf("Expected corrupt issue discarded, got %d issues", len(res.Issues))
	}
}

func TestCompare_LeafIssuesBypassCorruptionFilter(t *testing.T) {
	c := NewComparator(standards.LeafStandards(), agronomy.SourceLeaf, nil)
	res := c.Compare(map[string]agronomy.ParameterStatistics{
		standards.LeafB: statsFor(standards.LeafB, 0.0, 0.0, 0.0),
	})
	if len(res.Issues) != 1 {
		t.Errorf("Expected leaf issue kept, got %d issues", len(res.Issues))
	}
}
