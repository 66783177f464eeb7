package sample

// DataType classifies which analysis branch a record belongs to.
type DataType string

const (
	DataTypeSoil      DataType = "soil"
	DataTypeLeaf      DataType = "leaf"
	DataTypeLandYield DataType = "land_yield"
	DataTypeUnknown   DataType = "unknown"
)

// Value is one observed parameter value: either a number or an explicit
// missing marker. Missing is distinct from zero; detection-limit markers
// and unreadable cells become Missing, never 0.
type Value struct {
	Num     float64 `json:"num"`
	Missing bool    `json:"missing"`
}

// Numeric wraps a usable numeric observation.
func Numeric(v float64) Value {
	return Value{Num: v}
}

// MissingValue marks an observation as explicitly absent.
func MissingValue() Value {
	return Value{Missing: true}
}

// Sample is one normalized lab test result. Values maps canonical parameter
// names to observations. Samples are write-once: nothing mutates a Sample
// after aggregation begins.
type Sample struct {
	SampleID string           `json:"sample_id"`
	LabID    string           `json:"lab_id,omitempty"`
	Values   map[string]Value `json:"values"`
}

// NumericValue returns the value for a parameter and whether it is present
// and non-missing.
func (s Sample) NumericValue(param string) (float64, bool) {
	v, ok := s.Values[param]
	if !ok || v.Missing {
		return 0, false
	}
	return v.Num, true
}

// RawRecord is the tagged input variant the normalizer accepts. Exactly three
// shapes exist: a spreadsheet row with its header, a decoded JSON object, and
// a free-form text line.
type RawRecord interface {
	recordShape() string
}

// TabularRow is one spreadsheet/CSV row paired with its header row.
type TabularRow struct {
	Header []string
	Cells  []string
}

// JSONObject is a decoded key/value record, e.g. from an OCR adapter.
type JSONObject struct {
	Fields map[string]interface{}
}

// TextLine is a free-form "key: value, key: value" line.
type TextLine struct {
	Text string
}

func (TabularRow) recordShape() string { return "tabular_row" }
func (JSONObject) recordShape() string { return "json_object" }
func (TextLine) recordShape() string   { return "text_line" }
