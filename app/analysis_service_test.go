package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agropalm/domain/core"
	"agropalm/domain/economics"
	"agropalm/domain/report"
	"agropalm/domain/sample"
	"agropalm/internal/errors"
)

// MockReportRepository records saved reports in memory.
type MockReportRepository struct {
	saved   []*report.AnalysisReport
	saveErr error
}

func (m *MockReportRepository) Save(ctx context.Context, rep *report.AnalysisReport) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, rep)
	return nil
}

func (m *MockReportRepository) Get(ctx context.Context, id core.RunID) (*report.AnalysisReport, error) {
	for _, rep := range m.saved {
		if rep.RunID == id {
			return rep, nil
		}
	}
	return nil, errors.New(errors.CodeNotFound, "report not found")
}

func (m *MockReportRepository) ListRecent(ctx context.Context, limit int) ([]*report.AnalysisReport, error) {
	if limit > len(m.saved) {
		limit = len(m.saved)
	}
	return m.saved[:limit], nil
}

func soilRows() []sample.RawRecord {
	header := []string{"Sample ID", "pH", "Nitrogen", "Organic Carbon", "Available P (mg/kg)", "Exch. K (meq%)"}
	rows := [][]string{
		{"S-01", "3.9", "0.05", "0.8", "8", "0.08"},
		{"S-02", "4.1", "0.06", "0.9", "<1", "0.10"},
		{"S-03", "4.0", "N.D.", "1.0", "9", "0.09"},
	}
	var records []sample.RawRecord
	for _, cells := range rows {
		records = append(records, sample.TabularRow{Header: header, Cells: cells})
	}
	return records
}

func leafRows() []sample.RawRecord {
	header := []string{"Sample ID", "N %", "P %", "K %", "Mg %", "B (ppm)"}
	rows := [][]string{
		{"L-01", "2.10", "0.12", "0.65", "0.28", "9"},
		{"L-02", "2.15", "0.13", "0.70", "0.30", "10"},
		{"L-03", "2.05", "0.11", "0.60", "0.27", "8"},
	}
	var records []sample.RawRecord
	for _, cells := range rows {
		records = append(records, sample.TabularRow{Header: header, Cells: cells})
	}
	return records
}

func TestRun_FullPipeline(t *testing.T) {
	repo := &MockReportRepository{}
	service := NewAnalysisService(repo, nil)

	rep, err := service.Run(context.Background(), AnalysisRequest{
		SoilRecords:  soilRows(),
		SoilFilename: "soil_analysis.csv",
		LeafRecords:  leafRows(),
		LeafFilename: "leaf_analysis.csv",
		LandYield: economics.LandYieldInput{
			LandSize:     2.5,
			LandUnit:     economics.LandHectares,
			CurrentYield: 14,
			YieldUnit:    economics.YieldTonnesPerHectare,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, rep)

	assert.NotEmpty(t, string(rep.RunID))
	assert.False(t, rep.PartialData)
	assert.Equal(t, 3, rep.Soil.SampleCount)
	assert.Equal(t, 3, rep.Leaf.SampleCount)

	// Acidic, nutrient-poor soil and deficient leaf levels must surface issues
	require.NotEmpty(t, rep.Issues)
	for i := 1; i < len(rep.Issues); i++ {
		assert.GreaterOrEqual(t, rep.Issues[i-1].PriorityScore, rep.Issues[i].PriorityScore,
			"issues must be ordered by priority")
	}

	assert.Len(t, rep.Recommendations, len(rep.Issues), "one recommendation per issue")
	assert.Len(t, rep.Forecast.Scenarios, 3)
	assert.False(t, rep.Forecast.DefaultAssumptions)

	// repository received the report
	require.Len(t, repo.saved, 1)
	assert.Equal(t, rep.RunID, repo.saved[0].RunID)
}

func TestRun_BothBranchesEmptyFails(t *testing.T) {
	service := NewAnalysisService(nil, nil)
	_, err := service.Run(context.Background(), AnalysisRequest{})
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientData(err))
}

func TestRun_PartialDataFlagged(t *testing.T) {
	service := NewAnalysisService(nil, nil)
	rep, err := service.Run(context.Background(), AnalysisRequest{
		SoilRecords:  soilRows(),
		SoilFilename: "soil_analysis.csv",
	})
	require.NoError(t, err)

	assert.True(t, rep.PartialData)
	assert.Contains(t, rep.DataQualityFlag, "leaf")
	assert.NotEmpty(t, rep.Issues)
	assert.NotEmpty(t, rep.Recommendations)
}

func TestRun_UnusableRecordsOnlyFails(t *testing.T) {
	service := NewAnalysisService(nil, nil)
	records := []sample.RawRecord{
		sample.TabularRow{Header: []string{"pH"}, Cells: []string{"pending"}},
	}
	_, err := service.Run(context.Background(), AnalysisRequest{SoilRecords: records})
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientData(err))
}

func TestRun_SaveFailureDoesNotFailAnalysis(t *testing.T) {
	repo := &MockReportRepository{saveErr: errors.New(errors.CodeDatabaseError, "connection lost")}
	service := NewAnalysisService(repo, nil)

	rep, err := service.Run(context.Background(), AnalysisRequest{
		SoilRecords:  soilRows(),
		SoilFilename: "soil_analysis.csv",
	})
	require.NoError(t, err)
	assert.NotNil(t, rep)
}

func TestRun_Deterministic(t *testing.T) {
	service := NewAnalysisService(nil, nil)
	req := AnalysisRequest{
		SoilRecords:  soilRows(),
		SoilFilename: "soil_analysis.csv",
		LeafRecords:  leafRows(),
		LeafFilename: "leaf_analysis.csv",
	}

	first, err := service.Run(context.Background(), req)
	require.NoError(t, err)
	second, err := service.Run(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, second.Issues, len(first.Issues))
	for i := range first.Issues {
		assert.Equal(t, first.Issues[i].Parameter, second.Issues[i].Parameter)
		assert.Equal(t, first.Issues[i].PriorityScore, second.Issues[i].PriorityScore)
		assert.Equal(t, first.Issues[i].CurrentValue, second.Issues[i].CurrentValue)
	}
	assert.Equal(t, first.Forecast.DeficiencyScore, second.Forecast.DeficiencyScore)
}

func TestRun_OutlierRemovalChangesStatistics(t *testing.T) {
	header := []string{"Sample ID", "pH"}
	var records []sample.RawRecord
	for _, v := range []string{"4.0", "4.1", "4.2", "4.3", "9.9"} {
		records = append(records, sample.TabularRow{Header: header, Cells: []string{"S", v}})
	}

	service := NewAnalysisService(nil, nil)

	plain, err := service.Run(context.Background(), AnalysisRequest{
		SoilRecords: records, SoilFilename: "soil.csv",
	})
	require.NoError(t, err)

	cleaned, err := service.Run(context.Background(), AnalysisRequest{
		SoilRecords: records, SoilFilename: "soil.csv", RemoveOutliers: true,
	})
	require.NoError(t, err)

	plainPH := plain.Soil.Statistics["pH"]
	cleanedPH := cleaned.Soil.Statistics["pH"]
	assert.Equal(t, 5, plainPH.Count)
	assert.Equal(t, 4, cleanedPH.Count, "outlier reading excluded from statistics")
	assert.Less(t, cleanedPH.Average, plainPH.Average)

	// raw averages stay pre-outlier on both runs
	assert.InDelta(t, plain.Soil.RawAverages["pH"], cleaned.Soil.RawAverages["pH"], 1e-9)
}
