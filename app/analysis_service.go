package app

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"agropalm/domain/agronomy"
	"agropalm/domain/core"
	"agropalm/domain/economics"
	"agropalm/domain/report"
	"agropalm/domain/sample"
	"agropalm/internal"
	"agropalm/internal/aggregate"
	"agropalm/internal/compare"
	"agropalm/internal/errors"
	"agropalm/internal/forecast"
	"agropalm/internal/normalize"
	"agropalm/internal/recommend"
	"agropalm/internal/standards"
	"agropalm/ports"
)

// AnalysisRequest carries everything one analysis run needs.
type AnalysisRequest struct {
	SoilRecords    []sample.RawRecord
	SoilFilename   string
	LeafRecords    []sample.RawRecord
	LeafFilename   string
	LandYield      economics.LandYieldInput
	RemoveOutliers bool // optional IQR preprocessing stage
}

// AnalysisService wires the full deterministic pipeline: normalize ->
// aggregate -> compare -> recommend -> forecast. Stateless across runs;
// concurrent runs need no coordination.
type AnalysisService struct {
	soilNormalizer *normalize.Normalizer
	leafNormalizer *normalize.Normalizer
	aggregator     *aggregate.Aggregator
	soilComparator *compare.Comparator
	leafComparator *compare.Comparator
	recommender    *recommend.Engine
	forecaster     *forecast.Forecaster
	repository     ports.ReportRepository // optional
	logger         *internal.Logger
}

// NewAnalysisService builds the service with the default MPOB standards and
// price tables.
func NewAnalysisService(repository ports.ReportRepository, logger *internal.Logger) *AnalysisService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	classifier := normalize.NewClassifier(standards.SoilIndicators(), standards.LeafIndicators())
	return &AnalysisService{
		soilNormalizer: normalize.NewNormalizer(standards.SoilParameters(), standards.SoilAliases(), classifier, logger),
		leafNormalizer: normalize.NewNormalizer(standards.LeafParameters(), standards.LeafAliases(), classifier, logger),
		aggregator:     aggregate.NewAggregator(),
		soilComparator: compare.NewComparator(standards.SoilStandards(), agronomy.SourceSoil, logger),
		leafComparator: compare.NewComparator(standards.LeafStandards(), agronomy.SourceLeaf, logger),
		recommender:    recommend.NewEngine(logger),
		forecaster:     forecast.NewForecaster(standards.FertilizerPrices(), standards.FFBPrice(), logger),
		repository:     repository,
		logger:         logger,
	}
}

// Run executes one full analysis. Soil and leaf branches are independent
// and run in parallel; each stage is a pure function, so no locking is
// needed. A run with zero usable samples on both branches fails with an
// insufficient-data error; one empty branch yields a partial report with a
// data-quality flag.
func (s *AnalysisService) Run(ctx context.Context, req AnalysisRequest) (*report.AnalysisReport, error) {
	var soil, leaf report.BranchResult
	var soilIssues, leafIssues []agronomy.Issue

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		soil, soilIssues = s.runBranch(gctx, branchInput{
			records:        req.SoilRecords,
			filename:       req.SoilFilename,
			declared:       sample.DataTypeSoil,
			normalizer:     s.soilNormalizer,
			comparator:     s.soilComparator,
			source:         agronomy.SourceSoil,
			removeOutliers: req.RemoveOutliers,
		})
		return nil
	})
	g.Go(func() error {
		leaf, leafIssues = s.runBranch(gctx, branchInput{
			records:        req.LeafRecords,
			filename:       req.LeafFilename,
			declared:       sample.DataTypeLeaf,
			normalizer:     s.leafNormalizer,
			comparator:     s.leafComparator,
			source:         agronomy.SourceLeaf,
			removeOutliers: req.RemoveOutliers,
		})
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if !soil.HasData() && !leaf.HasData() {
		return nil, errors.InsufficientData("no usable soil or leaf samples in input")
	}

	issues := append(append([]agronomy.Issue{}, soilIssues...), leafIssues...)
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].PriorityScore > issues[j].PriorityScore
	})

	recommendations := s.recommender.Recommend(issues)
	fc := s.forecaster.Forecast(req.LandYield, issues, recommendations)

	rep := &report.AnalysisReport{
		RunID:           core.RunID(core.NewID()),
		CreatedAt:       time.Now().UTC(),
		Soil:            soil,
		Leaf:            leaf,
		Issues:          issues,
		Recommendations: recommendations,
		Forecast:        fc,
	}
	if !soil.HasData() || !leaf.HasData() {
		rep.PartialData = true
		if !soil.HasData() {
			rep.DataQualityFlag = "no usable soil samples; soil analysis omitted"
		} else {
			rep.DataQualityFlag = "no usable leaf samples; leaf analysis omitted"
		}
	}

	if s.repository != nil {
		if err := s.repository.Save(ctx, rep); err != nil {
			// persistence is best-effort; the analysis result stands
			s.logger.Error("failed to persist report %s: %v", rep.RunID, err)
		}
	}

	s.logger.Info("analysis run %s complete: %d issues, %d recommendations",
		rep.RunID, len(issues), len(recommendations))
	return rep, nil
}

type branchInput struct {
	records        []sample.RawRecord
	filename       string
	declared       sample.DataType
	normalizer     *normalize.Normalizer
	comparator     *compare.Comparator
	source         agronomy.Source
	removeOutliers bool
}

func (s *AnalysisService) runBranch(_ context.Context, in branchInput) (report.BranchResult, []agronomy.Issue) {
	res := report.BranchResult{
		Source:     in.source,
		Statistics: map[string]agronomy.ParameterStatistics{},
	}
	if len(in.records) == 0 {
		return res, nil
	}

	norm := in.normalizer.NormalizeAll(in.records, in.declared, in.filename)
	res.SampleCount = len(norm.Samples)
	res.SkippedRecords = norm.Skipped
	if len(norm.Samples) == 0 {
		return res, nil
	}

	params := in.normalizer.Parameters()

	// Raw averages come from the original values, before any outlier
	// removal or interpolation.
	rawAvg, notes := aggregate.RawAverages(norm.Samples, params)
	res.RawAverages = rawAvg
	res.DataQualityNotes = notes

	samples := norm.Samples
	if in.removeOutliers {
		samples = aggregate.RemoveOutlierSamples(samples, params)
	}

	res.Statistics = s.aggregator.Aggregate(samples, params)

	cmp := in.comparator.Compare(res.Statistics)
	res.VarianceWarnings = cmp.VarianceWarnings

	filled := aggregate.FillMissing(samples, params)
	res.Correlations = compare.Correlations(filled, params)

	return res, cmp.Issues
}
