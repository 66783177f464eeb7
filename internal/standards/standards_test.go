package standards

import "testing"

func TestSoilStandards_CoverAllParameters(t *testing.T) {
	table := SoilStandards()
	for _, param := range SoilParameters() {
		std, ok := table[param]
		if !ok {
			t.Errorf("Missing soil standard for %s", param)
			continue
		}
		if std.Parameter != param {
			t.Errorf("Standard for %s names itself %s", param, std.Parameter)
		}
		if std.Optimal.Min >= std.Optimal.Max {
			t.Errorf("%s: optimal range %v-%v is not ordered", param, std.Optimal.Min, std.Optimal.Max)
		}
	}
}

func TestLeafStandards_CoverAllParameters(t *testing.T) {
	table := LeafStandards()
	for _, param := range LeafParameters() {
		std, ok := table[param]
		if !ok {
			t.Errorf("Missing leaf standard for %s", param)
			continue
		}
		if std.Optimal.Min >= std.Optimal.Max {
			t.Errorf("%s: optimal range %v-%v is not ordered", param, std.Optimal.Min, std.Optimal.Max)
		}
	}
}

func TestCriticalParameters(t *testing.T) {
	soil := SoilStandards()
	for _, param := range []string{SoilPH, SoilN, SoilAvailP, SoilExchK} {
		if !soil[param].Critical {
			t.Errorf("Expected %s to be critical", param)
		}
	}
	leaf := LeafStandards()
	for _, param := range []string{LeafN, LeafP, LeafK, LeafB} {
		if !leaf[param].Critical {
			t.Errorf("Expected %s to be critical", param)
		}
	}
}

func TestFertilizerPrices_Positive(t *testing.T) {
	for product, price := range FertilizerPrices() {
		if price <= 0 {
			t.Errorf("Expected positive price for %s, got %v", product, price)
		}
	}
}

func TestFertilizerForParameter(t *testing.T) {
	if product, ok := FertilizerForParameter(SoilPH); !ok || product != FertGML {
		t.Errorf("Expected GML for soil pH, got %q ok=%v", product, ok)
	}
	if product, ok := FertilizerForParameter(LeafB); !ok || product != FertBorate {
		t.Errorf("Expected borate for leaf boron, got %q ok=%v", product, ok)
	}
	if _, ok := FertilizerForParameter("Moisture"); ok {
		t.Error("Expected no product for unknown parameter")
	}
}

func TestFFBPrice_Bracket(t *testing.T) {
	p := FFBPrice()
	if p.Low != 650 || p.High != 750 {
		t.Errorf("Expected 650-750 bracket, got %v-%v", p.Low, p.High)
	}
}

func TestAliases_StoredCollapsed(t *testing.T) {
	for _, table := range []map[string][]string{SoilAliases(), LeafAliases()} {
		for param, aliases := range table {
			for _, alias := range aliases {
				for _, r := range alias {
					switch r {
					case ' ', '\t', '_', '-', '(', ')', '%', '.', '/':
						t.Errorf("%s alias %q is not in collapsed form", param, alias)
					}
					if r >= 'A' && r <= 'Z' {
						t.Errorf("%s alias %q is not lowercase", param, alias)
					}
				}
			}
		}
	}
}
