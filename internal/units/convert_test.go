package units

import (
	"math"
	"testing"

	"agropalm/domain/economics"
)

func TestLandToHectares_Acres(t *testing.T) {
	// Scenario: grower reports 10 acres of planted area
	got, err := LandToHectares(10, economics.LandAcres)
	if err != nil {
		t.Fatalf("LandToHectares failed: %v", err)
	}
	if math.Abs(got-4.04686) > 1e-9 {
		t.Errorf("Expected 4.04686 ha, got %v", got)
	}
}

func TestLandToHectares_SquareMeters(t *testing.T) {
	got, err := LandToHectares(25000, economics.LandSquareMeters)
	if err != nil {
		t.Fatalf("LandToHectares failed: %v", err)
	}
	if math.Abs(got-2.5) > 1e-9 {
		t.Errorf("Expected 2.5 ha, got %v", got)
	}
}

func TestLandToHectares_HectaresPassThrough(t *testing.T) {
	got, err := LandToHectares(3.7, economics.LandHectares)
	if err != nil {
		t.Fatalf("LandToHectares failed: %v", err)
	}
	if got != 3.7 {
		t.Errorf("Expected 3.7 ha unchanged, got %v", got)
	}
}

func TestLandToHectares_EmptyUnitDefaultsToHectares(t *testing.T) {
	got, err := LandToHectares(2.0, economics.LandUnit(""))
	if err != nil {
		t.Fatalf("LandToHectares failed: %v", err)
	}
	if got != 2.0 {
		t.Errorf("Expected 2.0 ha, got %v", got)
	}
}

func TestLandToHectares_UnknownUnit(t *testing.T) {
	if _, err := LandToHectares(1, economics.LandUnit("furlongs")); err == nil {
		t.Error("Expected error for unknown land unit")
	}
}

func TestYieldToTonnesPerHectare_TonnesPerAcre(t *testing.T) {
	got, err := YieldToTonnesPerHectare(4, economics.YieldTonnesPerAcre)
	if err != nil {
		t.Fatalf("YieldToTonnesPerHectare failed: %v", err)
	}
	if math.Abs(got-4*2.47105) > 1e-9 {
		t.Errorf("Expected %v t/ha, got %v", 4*2.47105, got)
	}
}

func TestYieldToTonnesPerHectare_KgPerHectare(t *testing.T) {
	got, err := YieldToTonnesPerHectare(15000, economics.YieldKgPerHectare)
	if err != nil {
		t.Fatalf("YieldToTonnesPerHectare failed: %v", err)
	}
	if math.Abs(got-15.0) > 1e-9 {
		t.Errorf("Expected 15.0 t/ha, got %v", got)
	}
}

func TestYieldToTonnesPerHectare_UnknownUnit(t *testing.T) {
	if _, err := YieldToTonnesPerHectare(1, economics.YieldUnit("bushels")); err == nil {
		t.Error("Expected error for unknown yield unit")
	}
}
