package config

import "testing"

func TestLoad_RequiresAnInputFile(t *testing.T) {
	t.Setenv("SOIL_FILE", "")
	t.Setenv("LEAF_FILE", "")
	if _, err := Load(); err == nil {
		t.Error("Expected error with no input files configured")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SOIL_FILE", "soil.xlsx")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Data.SoilFile != "soil.xlsx" {
		t.Errorf("Expected soil file from env, got %q", cfg.Data.SoilFile)
	}
	if cfg.Forecast.LandUnit != "hectares" {
		t.Errorf("Expected default land unit hectares, got %q", cfg.Forecast.LandUnit)
	}
	if cfg.Forecast.YieldUnit != "tonnes/hectare" {
		t.Errorf("Expected default yield unit, got %q", cfg.Forecast.YieldUnit)
	}
	if cfg.Forecast.PalmDensity != 148 {
		t.Errorf("Expected default palm density 148, got %d", cfg.Forecast.PalmDensity)
	}
	if cfg.Database.URL != "" {
		t.Errorf("Expected no database by default, got %q", cfg.Database.URL)
	}
}

func TestLoad_ForecastOverrides(t *testing.T) {
	t.Setenv("LEAF_FILE", "leaf.csv")
	t.Setenv("LAND_SIZE", "12.5")
	t.Setenv("LAND_UNIT", "acres")
	t.Setenv("CURRENT_YIELD", "16")
	t.Setenv("PALM_DENSITY", "136")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Forecast.LandSize != 12.5 || cfg.Forecast.LandUnit != "acres" {
		t.Errorf("Unexpected land config: %v %q", cfg.Forecast.LandSize, cfg.Forecast.LandUnit)
	}
	if cfg.Forecast.CurrentYield != 16 || cfg.Forecast.PalmDensity != 136 {
		t.Errorf("Unexpected yield config: %v %d", cfg.Forecast.CurrentYield, cfg.Forecast.PalmDensity)
	}
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	t.Setenv("SOIL_FILE", "soil.xlsx")
	t.Setenv("LAND_SIZE", "plenty")
	t.Setenv("PALM_DENSITY", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Forecast.LandSize != 0 {
		t.Errorf("Expected unparseable land size to fall back to 0, got %v", cfg.Forecast.LandSize)
	}
	if cfg.Forecast.PalmDensity != 148 {
		t.Errorf("Expected unparseable density to fall back to 148, got %d", cfg.Forecast.PalmDensity)
	}
}
