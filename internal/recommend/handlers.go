package recommend

import (
	"fmt"

	"agropalm/domain/agronomy"
)

// parameterHandlers is the ordered handler table. Keys are substrings of
// canonical parameter names; more specific keys come before shorter ones so
// "Exchangeable_K" wins over a bare "K". Leaf-parameter issues get
// soil-applied corrective actions, since palms take nutrients up through
// the roots.
func parameterHandlers() []handler {
	return []handler{
		{key: "pH", direction: agronomy.StatusDeficient, build: phDeficient},
		{key: "pH", direction: agronomy.StatusExcessive, build: phExcessive},
		{key: "Nitrogen", direction: agronomy.StatusDeficient, build: nitrogenDeficient},
		{key: "N_%", direction: agronomy.StatusDeficient, build: nitrogenDeficient},
		{key: "Nitrogen", direction: agronomy.StatusExcessive, build: nitrogenExcessive},
		{key: "N_%", direction: agronomy.StatusExcessive, build: nitrogenExcessive},
		{key: "Organic_Carbon", direction: agronomy.StatusDeficient, build: organicCarbonDeficient},
		{key: "P_mg_kg", direction: agronomy.StatusDeficient, build: phosphorusDeficient},
		{key: "P_%", direction: agronomy.StatusDeficient, build: phosphorusDeficient},
		{key: "K_meq", direction: agronomy.StatusDeficient, build: potassiumDeficient},
		{key: "K_%", direction: agronomy.StatusDeficient, build: potassiumDeficient},
		{key: "Mg_meq", direction: agronomy.StatusDeficient, build: magnesiumDeficient},
		{key: "Mg_%", direction: agronomy.StatusDeficient, build: magnesiumDeficient},
		{key: "Ca_meq", direction: agronomy.StatusDeficient, build: calciumDeficient},
		{key: "Ca_%", direction: agronomy.StatusDeficient, build: calciumDeficient},
		{key: "B_mg_kg", direction: agronomy.StatusDeficient, build: boronDeficient},
		{key: "Cu_mg_kg", direction: agronomy.StatusDeficient, build: copperDeficient},
		{key: "Zn_mg_kg", direction: agronomy.StatusDeficient, build: zincDeficient},
	}
}

func phDeficient(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Soil pH of %.2f is below the optimal %s band; acidity fixes phosphorus and exposes roots to aluminium toxicity.", issue.CurrentValue, issue.OptimalRange),
		high: option("Aggressive liming program",
			"Apply GML across the full planting circle with incorporation, split over two rounds",
			"Ground magnesium limestone (GML)", "2.0-3.0 t/ha, split applications",
			"Mechanized spreading with shallow incorporation", "First round within 1 month",
			"RM 700 - 1,000 per hectare", "pH lifted 0.5-1.0 unit within 12 months", "12-18 months",
			"High - unlocks fixed phosphorus and restores root health"),
		medium: option("Standard liming program",
			"Apply GML to the weeded circle annually",
			"Ground magnesium limestone (GML)", "1.0-1.5 t/ha annually",
			"Manual broadcast to the weeded circle", "Within 2 months",
			"RM 400 - 600 per hectare", "pH lifted 0.3-0.6 unit within 18 months", "18-24 months",
			"Moderate - progressive acidity correction"),
		low: option("Gradual liming",
			"Apply GML at reduced rate with EFB mulch to buffer acidity",
			"GML plus empty fruit bunches", "0.5-1.0 t/ha GML annually",
			"Manual application to palm circle", "Within 3 months",
			"RM 250 - 400 per hectare", "Gradual pH improvement over 2-3 years", "24-36 months",
			"Modest - slows further acidification"),
	}
}

func phExcessive(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Soil pH of %.2f is above the optimal %s band; alkalinity locks up boron, copper and zinc.", issue.CurrentValue, issue.OptimalRange),
		high: option("Acidifying program",
			"Apply elemental sulphur with acidifying N sources and organic matter",
			"Elemental sulphur, ammonium sulphate (AS)", "300-500 kg/ha sulphur plus AS as N source",
			"Broadcast and incorporate in the weeded circle", "Within 1 month",
			"RM 800 - 1,100 per hectare", "pH lowered toward optimal within 12-18 months", "18-24 months",
			"High - restores micronutrient availability"),
		medium: option("Acidifying fertilization",
			"Switch N source to ammonium sulphate and mulch with EFB",
			"Ammonium sulphate (AS), empty fruit bunches", "AS per standard N program",
			"Broadcast within the weeded circle", "Next fertilizer round",
			"RM 500 - 700 per hectare", "Gradual pH decline over 18-24 months", "24 months",
			"Moderate"),
		low: option("Organic acidification",
			"Heavy EFB mulching and frond stacking to acidify slowly",
			"Empty fruit bunches, pruned fronds", "20-40 t EFB per hectare",
			"Interrow spreading", "Next mill delivery cycle",
			"RM 250 - 450 per hectare", "Slow pH decline over 2-3 years", "30+ months",
			"Modest"),
	}
}

func nitrogenDeficient(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Nitrogen at %.2f%s sits below the optimal %s band; N limits frond production and bunch size directly.", issue.CurrentValue, issue.Unit, issue.OptimalRange),
		high: option("Intensive N program",
			"Split AS applications with compound top-up and legume cover establishment",
			"Ammonium sulphate (AS), NPK compound, Mucuna bracteata seed", "1.5-2.0 kg AS per palm per round, 3 rounds/year",
			"Broadcast within the weeded circle, avoid wet spells", "First round within 1 month",
			"RM 800 - 1,200 per hectare", "Frond color and vigor restored within 6-9 months", "12 months",
			"High - N response is the fastest of all nutrients"),
		medium: option("Standard N program",
			"Two AS rounds per year at standard rate",
			"Ammonium sulphate (AS)", "1.0-1.5 kg per palm per round, 2 rounds/year",
			"Broadcast within the weeded circle", "Within 2 months",
			"RM 500 - 750 per hectare", "Visible greening within 9-12 months", "18 months",
			"Moderate"),
		low: option("Budget N program",
			"Single annual AS round plus legume cover crop for biological N",
			"Ammonium sulphate (AS), legume cover seed", "0.75-1.0 kg per palm, 1 round/year",
			"Manual application to palm circle", "Within 3 months",
			"RM 300 - 450 per hectare", "Slow improvement over 18-24 months", "24-30 months",
			"Modest"),
	}
}

func nitrogenExcessive(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Nitrogen at %.2f%s exceeds the optimal %s band; excess N delays fruiting and dilutes K and Mg.", issue.CurrentValue, issue.Unit, issue.OptimalRange),
		high: option("Rebalancing program",
			"Suspend N applications one season and rebalance with K and Mg",
			"MOP, kieserite", "Per K/Mg program; no N for 6-12 months",
			"Broadcast within the weeded circle", "Immediately",
			"RM 600 - 900 per hectare", "Nutrient balance restored within 12 months", "12-18 months",
			"High - removes the K/Mg suppression"),
		medium: option("Reduced N program",
			"Halve N rate and monitor leaf levels",
			"Reduced AS rate", "50% of current N rate",
			"Broadcast within the weeded circle", "Next round",
			"RM 350 - 550 per hectare", "Gradual rebalance over 18 months", "18-24 months",
			"Moderate"),
		low: option("Monitor and hold",
			"Stop N top-ups, rely on mineralization, re-test in 6 months",
			"None", "No N input",
			"Not applicable", "Immediately",
			"RM 100 - 200 per hectare (testing only)", "Natural decline over 12-24 months", "24+ months",
			"Low cost avoidance of further imbalance"),
	}
}

func organicCarbonDeficient(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Organic carbon at %.2f%% falls below the optimal %s band; low organic matter weakens structure, CEC and moisture retention.", issue.CurrentValue, issue.OptimalRange),
		high: option("Intensive organic matter program",
			"Full EFB mulching plus composted POME across the field",
			"Empty fruit bunches, composted POME", "40 t EFB per hectare every 2 years",
			"Mechanical spreading in interrows", "Next mill delivery cycle",
			"RM 600 - 900 per hectare", "Organic carbon measurably improved within 2 years", "24 months",
			"Moderate-high through improved moisture and CEC"),
		medium: option("Standard organic program",
			"EFB mulching of alternate interrows with frond stacking",
			"Empty fruit bunches, pruned fronds", "20 t EFB per hectare every 2 years",
			"Manual placement in alternate interrows", "Next mill delivery cycle",
			"RM 350 - 550 per hectare", "Gradual improvement over 2-3 years", "30 months",
			"Moderate"),
		low: option("Residue retention",
			"Retain and stack all pruned fronds; establish soft ground cover",
			"Pruned fronds, native legume cover", "All available residues",
			"Frond stacking along interrows", "Next pruning round",
			"RM 50 - 150 per hectare", "Slow accumulation over 3+ years", "36+ months",
			"Small but sustained"),
	}
}

func phosphorusDeficient(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Phosphorus at %.2f%s is below the optimal %s band; P limits root proliferation and bunch set.", issue.CurrentValue, issue.Unit, issue.OptimalRange),
		high: option("Full P correction",
			"CIRP basal application plus water-soluble P starter, with liming if pH is also low",
			"Christmas Island rock phosphate (CIRP), TSP starter", "1.5-2.0 kg CIRP per palm per year",
			"Banded in the weeded circle and lightly incorporated", "Within 1 month",
			"RM 700 - 1,000 per hectare", "Root vigor and bunch set improved within 12-18 months", "18 months",
			"High where P was the limiting factor"),
		medium: option("Standard P program",
			"Annual CIRP application",
			"Christmas Island rock phosphate (CIRP)", "1.0-1.5 kg per palm per year",
			"Broadcast within the weeded circle", "Within 2 months",
			"RM 450 - 650 per hectare", "Gradual P build-up over 18-24 months", "24 months",
			"Moderate - CIRP releases slowly on acid soils"),
		low: option("Budget P program",
			"Reduced CIRP rate targeted at the weakest blocks",
			"Christmas Island rock phosphate (CIRP)", "0.5-1.0 kg per palm per year",
			"Manual application to palm circle", "Within 3 months",
			"RM 250 - 400 per hectare", "Slow improvement over 2-3 years", "30+ months",
			"Modest"),
	}
}

func potassiumDeficient(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Potassium at %.2f%s is below the optimal %s band; K is the yield nutrient for oil palm and drives bunch weight.", issue.CurrentValue, issue.Unit, issue.OptimalRange),
		high: option("Intensive K program",
			"Split MOP applications with EFB mulch for K recycling",
			"Muriate of potash (MOP), empty fruit bunches", "2.0-2.5 kg MOP per palm per year, 3 rounds",
			"Broadcast within the weeded circle", "First round within 1 month",
			"RM 900 - 1,300 per hectare", "Bunch weight response within 12 months", "12-18 months",
			"High - strongest yield response of all corrections"),
		medium: option("Standard K program",
			"Two MOP rounds per year",
			"Muriate of potash (MOP)", "1.5-2.0 kg per palm per year, 2 rounds",
			"Broadcast within the weeded circle", "Within 2 months",
			"RM 600 - 850 per hectare", "Yield response within 18 months", "18-24 months",
			"Moderate-high"),
		low: option("Budget K program",
			"Single MOP round plus EFB mulch",
			"Muriate of potash (MOP), empty fruit bunches", "1.0-1.5 kg per palm per year",
			"Manual application to palm circle", "Within 3 months",
			"RM 350 - 550 per hectare", "Partial response over 2 years", "24-30 months",
			"Modest"),
	}
}

func magnesiumDeficient(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Magnesium at %.2f%s is below the optimal %s band; Mg deficiency shows as orange discoloration on older fronds and cuts photosynthesis.", issue.CurrentValue, issue.Unit, issue.OptimalRange),
		high: option("Full Mg correction",
			"Kieserite program with GML support where pH is also low",
			"Kieserite, GML", "1.0-1.5 kg kieserite per palm per year, split",
			"Broadcast within the weeded circle", "Within 1 month",
			"RM 650 - 950 per hectare", "Frond color recovery within 9-12 months", "15-18 months",
			"Moderate-high"),
		medium: option("Standard Mg program",
			"Annual kieserite application",
			"Kieserite", "0.75-1.0 kg per palm per year",
			"Broadcast within the weeded circle", "Within 2 months",
			"RM 400 - 600 per hectare", "Recovery within 12-18 months", "18-24 months",
			"Moderate"),
		low: option("Dolomitic liming",
			"GML as combined pH/Mg source",
			"Ground magnesium limestone (GML)", "1.0 t/ha annually",
			"Manual broadcast", "Within 3 months",
			"RM 200 - 350 per hectare", "Slow combined improvement", "24-36 months",
			"Modest"),
	}
}

func calciumDeficient(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Calcium at %.2f%s is below the optimal %s band; low Ca weakens tissue and accompanies general soil acidity.", issue.CurrentValue, issue.Unit, issue.OptimalRange),
		high: option("Liming with Ca focus",
			"GML program at corrective rate",
			"Ground magnesium limestone (GML)", "2.0-3.0 t/ha split",
			"Mechanized spreading", "Within 1 month",
			"RM 600 - 900 per hectare", "Ca and pH corrected together within 12-18 months", "18 months",
			"Moderate-high"),
		medium: option("Standard liming",
			"Annual GML round",
			"Ground magnesium limestone (GML)", "1.0-1.5 t/ha annually",
			"Manual broadcast", "Within 2 months",
			"RM 350 - 550 per hectare", "Progressive improvement", "24 months",
			"Moderate"),
		low: option("Reduced liming",
			"Reduced GML rate on the weakest blocks",
			"Ground magnesium limestone (GML)", "0.5-1.0 t/ha annually",
			"Manual application", "Within 3 months",
			"RM 200 - 350 per hectare", "Slow improvement", "30+ months",
			"Modest"),
	}
}

func boronDeficient(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Boron at %.2f%s is below the optimal %s band; B deficiency causes hook leaf and bunch failure.", issue.CurrentValue, issue.Unit, issue.OptimalRange),
		high: option("Full B correction",
			"Borate soil application with foliar support on symptomatic palms",
			"Fertilizer borate, foliar boron", "100-150 g borate per palm per year",
			"Soil application at the weeded circle edge; foliar on symptomatic palms", "Within 1 month",
			"RM 500 - 750 per hectare", "Hook-leaf symptoms resolve within 6-9 months", "12 months",
			"High where B limited bunch formation"),
		medium: option("Standard B program",
			"Annual borate soil application",
			"Fertilizer borate", "75-100 g per palm per year",
			"Soil application at the weeded circle edge", "Within 2 months",
			"RM 300 - 450 per hectare", "Recovery within 12 months", "18 months",
			"Moderate"),
		low: option("Targeted B program",
			"Borate only on palms showing symptoms",
			"Fertilizer borate", "50-75 g per symptomatic palm",
			"Spot application", "Within 3 months",
			"RM 150 - 250 per hectare", "Symptomatic palms recover; field-level lag", "24 months",
			"Modest"),
	}
}

func copperDeficient(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Copper at %.2f%s is below the optimal %s band; Cu deficiency (peat yellows) flattens growth on organic soils.", issue.CurrentValue, issue.Unit, issue.OptimalRange),
		high: option("Full Cu correction",
			"Copper sulphate soil application plus foliar rescue",
			"Copper sulphate (CuSO4)", "50-100 g per palm per year plus 0.1% foliar spray",
			"Soil application with foliar follow-up", "Within 1 month",
			"RM 450 - 700 per hectare", "Chlorosis recovery within 6 months", "12 months",
			"High on peat and sandy soils"),
		medium: option("Standard Cu program",
			"Annual copper sulphate soil application",
			"Copper sulphate (CuSO4)", "50 g per palm per year",
			"Soil application at the weeded circle", "Within 2 months",
			"RM 250 - 400 per hectare", "Recovery within 9-12 months", "18 months",
			"Moderate"),
		low: option("Targeted Cu program",
			"Spot treatment of symptomatic palms",
			"Copper sulphate (CuSO4)", "25-50 g per symptomatic palm",
			"Spot application", "Within 3 months",
			"RM 100 - 200 per hectare", "Symptomatic palms recover", "24 months",
			"Modest"),
	}
}

func zincDeficient(issue agronomy.Issue) tieredOptions {
	return tieredOptions{
		rationale: fmt.Sprintf("Zinc at %.2f%s is below the optimal %s band; Zn deficiency shortens internodes and reduces leaflet size.", issue.CurrentValue, issue.Unit, issue.OptimalRange),
		high: option("Full Zn correction",
			"Zinc sulphate soil application plus foliar support",
			"Zinc sulphate (ZnSO4)", "50-100 g per palm per year plus 0.1% foliar spray",
			"Soil application with foliar follow-up", "Within 1 month",
			"RM 450 - 700 per hectare", "Leaf size recovery within 9 months", "12-18 months",
			"Moderate-high"),
		medium: option("Standard Zn program",
			"Annual zinc sulphate application",
			"Zinc sulphate (ZnSO4)", "50 g per palm per year",
			"Soil application at the weeded circle", "Within 2 months",
			"RM 250 - 400 per hectare", "Recovery within 12 months", "18-24 months",
			"Moderate"),
		low: option("Targeted Zn program",
			"Spot treatment of symptomatic palms",
			"Zinc sulphate (ZnSO4)", "25-50 g per symptomatic palm",
			"Spot application", "Within 3 months",
			"RM 100 - 200 per hectare", "Symptomatic palms recover", "24+ months",
			"Modest"),
	}
}

func option(approach, action, materials, dosage, method, timeline, cost, expected, roi, impact string) agronomy.InvestmentOption {
	return agronomy.InvestmentOption{
		Approach:          approach,
		Action:            action,
		Materials:         materials,
		Dosage:            dosage,
		ApplicationMethod: method,
		Timeline:          timeline,
		CostRange:         cost,
		ExpectedResult:    expected,
		ROIPeriod:         roi,
		YieldImpact:       impact,
	}
}
