// Package units centralizes every land/yield unit conversion the pipeline
// performs, so no call site carries inline conversion arithmetic.
package units

import (
	"fmt"

	"agropalm/domain/economics"
)

// Conversion factors.
const (
	HectaresPerAcre        = 0.404686
	AcresPerHectare        = 2.47105
	SquareMetersPerHectare = 10000.0
	KgPerTonne             = 1000.0
)

// LandToHectares converts a land size to hectares.
func LandToHectares(size float64, unit economics.LandUnit) (float64, error) {
	switch unit {
	case economics.LandHectares, "":
		return size, nil
	case economics.LandAcres:
		return size * HectaresPerAcre, nil
	case economics.LandSquareMeters:
		return size / SquareMetersPerHectare, nil
	}
	return 0, fmt.Errorf("unsupported land unit %q", unit)
}

// YieldToTonnesPerHectare converts a yield figure to tonnes FFB per hectare.
func YieldToTonnesPerHectare(yield float64, unit economics.YieldUnit) (float64, error) {
	switch unit {
	case economics.YieldTonnesPerHectare, "":
		return yield, nil
	case economics.YieldKgPerHectare:
		return yield / KgPerTonne, nil
	case economics.YieldTonnesPerAcre:
		return yield * AcresPerHectare, nil
	case economics.YieldKgPerAcre:
		return yield / KgPerTonne * AcresPerHectare, nil
	}
	return 0, fmt.Errorf("unsupported yield unit %q", unit)
}
