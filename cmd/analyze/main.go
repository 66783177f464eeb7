package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"agropalm/adapters/excel"
	"agropalm/adapters/narrative/heuristic"
	"agropalm/adapters/postgres"
	"agropalm/app"
	"agropalm/domain/economics"
	"agropalm/domain/sample"
	"agropalm/internal"
	"agropalm/internal/config"
	apperrors "agropalm/internal/errors"
	"agropalm/ports"
)

func main() {
	// .env is optional; real deployments set environment variables directly
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx := context.Background()

	var repository ports.ReportRepository
	if cfg.Database.URL != "" {
		db, err := postgres.Connect(cfg.Database.URL)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		repo := postgres.NewReportRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			log.Fatalf("migrate: %v", err)
		}
		repository = repo
	}

	req := app.AnalysisRequest{
		LandYield: economics.LandYieldInput{
			LandSize:     cfg.Forecast.LandSize,
			LandUnit:     economics.LandUnit(cfg.Forecast.LandUnit),
			CurrentYield: cfg.Forecast.CurrentYield,
			YieldUnit:    economics.YieldUnit(cfg.Forecast.YieldUnit),
			PalmDensity:  cfg.Forecast.PalmDensity,
		},
	}

	if cfg.Data.SoilFile != "" {
		records, filename, err := readFile(ctx, cfg.Data.SoilFile, sample.DataTypeSoil, logger)
		if err != nil {
			log.Fatalf("soil input: %v", err)
		}
		req.SoilRecords, req.SoilFilename = records, filename
	}
	if cfg.Data.LeafFile != "" {
		records, filename, err := readFile(ctx, cfg.Data.LeafFile, sample.DataTypeLeaf, logger)
		if err != nil {
			log.Fatalf("leaf input: %v", err)
		}
		req.LeafRecords, req.LeafFilename = records, filename
	}

	service := app.NewAnalysisService(repository, logger)
	rep, err := service.Run(ctx, req)
	if err != nil {
		if apperrors.IsInsufficientData(err) {
			logger.Error("insufficient data: %v", err)
			os.Exit(2)
		}
		log.Fatalf("analysis: %v", err)
	}

	summary, err := heuristic.NewGenerator().Summarize(ctx, rep)
	if err != nil {
		log.Fatalf("narrative: %v", err)
	}
	fmt.Println(summary)
}

func readFile(ctx context.Context, path string, declared sample.DataType, logger *internal.Logger) ([]sample.RawRecord, string, error) {
	batches, err := excel.NewFileSource(path, declared, logger).ReadRecords(ctx)
	if err != nil {
		return nil, "", err
	}
	var records []sample.RawRecord
	filename := ""
	for _, b := range batches {
		records = append(records, b.Records...)
		filename = b.Filename
	}
	return records, filename, nil
}
