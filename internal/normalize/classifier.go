package normalize

import (
	"strings"

	"agropalm/domain/sample"
)

// Classifier infers the data type of a record set. Heuristics are applied
// in order: source/filename hints, indicator-set overlap against the two
// parameter vocabularies, then numeric-range heuristics as last resort.
type Classifier struct {
	soilIndicators []string
	leafIndicators []string
}

// NewClassifier builds a classifier from the collapsed indicator fragments
// of the soil and leaf vocabularies.
func NewClassifier(soilIndicators, leafIndicators []string) *Classifier {
	return &Classifier{soilIndicators: soilIndicators, leafIndicators: leafIndicators}
}

// Classify decides soil vs leaf vs land_yield vs unknown for a record set.
// keys are raw column names, values a flat list of the numeric cell values.
func (c *Classifier) Classify(filename string, keys []string, values []float64) sample.DataType {
	if dt, ok := c.classifyByFilename(filename); ok {
		return dt
	}
	if dt, ok := c.classifyByIndicators(keys); ok {
		return dt
	}
	return c.classifyByValueRanges(values)
}

func (c *Classifier) classifyByFilename(filename string) (sample.DataType, bool) {
	name := strings.ToLower(filename)
	switch {
	case name == "":
		return sample.DataTypeUnknown, false
	case strings.Contains(name, "soil") || strings.Contains(name, "tanah"):
		return sample.DataTypeSoil, true
	case strings.Contains(name, "leaf") || strings.Contains(name, "frond") || strings.Contains(name, "foliar") || strings.Contains(name, "daun"):
		return sample.DataTypeLeaf, true
	case strings.Contains(name, "yield") || strings.Contains(name, "land") || strings.Contains(name, "hasil"):
		return sample.DataTypeLandYield, true
	}
	return sample.DataTypeUnknown, false
}

func (c *Classifier) classifyByIndicators(keys []string) (sample.DataType, bool) {
	soilHits, leafHits := 0, 0
	for _, key := range keys {
		collapsed := CollapseKey(key)
		for _, ind := range c.soilIndicators {
			if strings.Contains(collapsed, ind) {
				soilHits++
				break
			}
		}
		for _, ind := range c.leafIndicators {
			if strings.Contains(collapsed, ind) {
				leafHits++
				break
			}
		}
	}
	switch {
	case soilHits > leafHits:
		return sample.DataTypeSoil, true
	case leafHits > soilHits:
		return sample.DataTypeLeaf, true
	}
	// ties (including 0-0) fall through to value heuristics
	return sample.DataTypeUnknown, false
}

// classifyByValueRanges is the weakest signal: pH-like readings between 3
// and 9 suggest soil, while sub-percent concentrations above 0.5 suggest
// leaf nutrient percentages.
func (c *Classifier) classifyByValueRanges(values []float64) sample.DataType {
	if len(values) == 0 {
		return sample.DataTypeUnknown
	}
	phLike, pctLike := 0, 0
	for _, v := range values {
		if v >= 3 && v <= 9 {
			phLike++
		}
		if v > 0.5 && v < 3.5 {
			pctLike++
		}
	}
	switch {
	case phLike > pctLike:
		return sample.DataTypeSoil
	case pctLike > phLike:
		return sample.DataTypeLeaf
	}
	return sample.DataTypeUnknown
}
