package standards

import "agropalm/domain/economics"

// Fertilizer product keys used by the cost model.
const (
	FertGML       = "GML"
	FertAS        = "AS"
	FertCIRP      = "CIRP"
	FertMOP       = "MOP"
	FertKieserite = "Kieserite"
	FertBorate    = "Borate"
	FertCuSO4     = "CuSO4"
	FertZnSO4     = "ZnSO4"
)

// FertilizerPrices returns indicative Malaysian market prices in RM per
// tonne of product.
func FertilizerPrices() map[string]float64 {
	return map[string]float64{
		FertGML:       180,
		FertAS:        1400,
		FertCIRP:      900,
		FertMOP:       2200,
		FertKieserite: 1500,
		FertBorate:    4500,
		FertCuSO4:     11000,
		FertZnSO4:     9000,
	}
}

// FertilizerForParameter maps a canonical parameter to the corrective
// product assumed by the cost model. Unknown parameters get no product and
// fall back to the default basket.
func FertilizerForParameter(param string) (string, bool) {
	m := map[string]string{
		SoilPH:     FertGML,
		SoilN:      FertAS,
		LeafN:      FertAS,
		SoilTotalP: FertCIRP,
		SoilAvailP: FertCIRP,
		LeafP:      FertCIRP,
		SoilExchK:  FertMOP,
		LeafK:      FertMOP,
		SoilExchMg: FertKieserite,
		LeafMg:     FertKieserite,
		SoilExchCa: FertGML,
		LeafCa:     FertGML,
		LeafB:      FertBorate,
		LeafCu:     FertCuSO4,
		LeafZn:     FertZnSO4,
	}
	f, ok := m[param]
	return f, ok
}

// FFBPrice is the Fresh Fruit Bunch price bracket in RM per tonne used for
// revenue projections.
func FFBPrice() economics.Range {
	return economics.Range{Low: 650, High: 750}
}
