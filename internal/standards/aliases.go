package standards

// Alias tables for parameter-name matching. Keys are canonical names; values
// are the lab-report spellings seen in the field. Matching is
// case/whitespace/underscore-insensitive, so aliases are stored in their
// collapsed lowercase form.

// SoilAliases maps canonical soil parameters to known report spellings.
func SoilAliases() map[string][]string {
	return map[string][]string{
		SoilPH:     {"ph", "phwater", "phh2o", "soilph", "reaction"},
		SoilN:      {"n", "totaln", "totalnitrogen", "nitrogen", "npercent"},
		SoilOC:     {"oc", "orgc", "organiccarbon", "organicmatter", "om", "carbon"},
		SoilTotalP: {"totalp", "totalphosphorus", "ptotal", "pppm"},
		SoilAvailP: {"availp", "availpmgkg", "availablep", "availablephosphorus", "p", "brayp", "olsenp", "extractablep"},
		SoilExchK:  {"exchk", "exchkmeq", "exchangeablek", "k", "potassium", "kmeq"},
		SoilExchCa: {"exchca", "exchcameq", "exchangeableca", "ca", "calcium", "cameq"},
		SoilExchMg: {"exchmg", "exchmgmeq", "exchangeablemg", "mg", "magnesium", "mgmeq"},
		SoilCEC:    {"cec", "cationexchangecapacity", "cecmeq"},
	}
}

// LeafAliases maps canonical leaf parameters to known report spellings.
func LeafAliases() map[string][]string {
	return map[string][]string{
		LeafN:  {"n", "nitrogen", "leafn", "npercent"},
		LeafP:  {"p", "phosphorus", "leafp", "ppercent"},
		LeafK:  {"k", "potassium", "leafk", "kpercent"},
		LeafMg: {"mg", "magnesium", "leafmg", "mgpercent"},
		LeafCa: {"ca", "calcium", "leafca", "capercent"},
		LeafB:  {"b", "boron", "bppm", "bmgkg", "boronppm", "boronmgkg"},
		LeafCu: {"cu", "copper", "cuppm", "cumgkg", "copperppm", "coppermgkg"},
		LeafZn: {"zn", "zinc", "znppm", "znmgkg", "zincppm", "zincmgkg"},
	}
}

// SoilIndicators lists collapsed name fragments that suggest a record is a
// soil sample. Used by the data-type classifier.
func SoilIndicators() []string {
	return []string{"ph", "cec", "exch", "organiccarbon", "organicmatter", "availablep", "totalp", "meq"}
}

// LeafIndicators lists collapsed name fragments that suggest a leaf sample.
func LeafIndicators() []string {
	return []string{"leaf", "frond", "foliar", "npercent", "ppercent", "kpercent", "boron", "copper", "zinc"}
}
