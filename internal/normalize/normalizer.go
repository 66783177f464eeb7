package normalize

import (
	"fmt"
	"strings"

	"agropalm/domain/sample"
	"agropalm/internal"
)

// Normalizer converts heterogeneous raw records into canonical Samples for
// one data type. It is pure per record: a malformed record is skipped, never
// fatal.
type Normalizer struct {
	parameters []string
	matchers   MatcherChain
	classifier *Classifier
	logger     *internal.Logger
}

// Result is the outcome of normalizing a batch of records.
type Result struct {
	Samples  []sample.Sample
	Skipped  int
	DataType sample.DataType
}

// NewNormalizer builds a normalizer over an ordered canonical parameter list
// and its alias table.
func NewNormalizer(parameters []string, aliases map[string][]string, classifier *Classifier, logger *internal.Logger) *Normalizer {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Normalizer{
		parameters: parameters,
		matchers:   DefaultMatcherChain(aliases),
		classifier: classifier,
		logger:     logger,
	}
}

// Parameters returns the canonical parameter list this normalizer targets.
func (n *Normalizer) Parameters() []string {
	return n.parameters
}

// NormalizeAll converts a batch of records. declared may be unknown, in
// which case the classifier decides from the filename and record content.
// Records that yield no usable numeric parameter are counted as skipped.
func (n *Normalizer) NormalizeAll(records []sample.RawRecord, declared sample.DataType, filename string) Result {
	res := Result{DataType: declared}
	if declared == sample.DataTypeUnknown || declared == "" {
		res.DataType = n.classifyBatch(records, filename)
	}

	for i, rec := range records {
		s, ok := n.Normalize(rec, i)
		if !ok {
			res.Skipped++
			continue
		}
		res.Samples = append(res.Samples, s)
	}

	n.logger.Debug("normalized %d/%d records as %s (%d skipped)",
		len(res.Samples), len(records), res.DataType, res.Skipped)
	return res
}

// Normalize converts one record into a Sample. ok is false when the record
// has no usable numeric parameter after cleaning.
func (n *Normalizer) Normalize(rec sample.RawRecord, index int) (sample.Sample, bool) {
	fields := n.recordFields(rec)
	if len(fields) == 0 {
		return sample.Sample{}, false
	}

	s := sample.Sample{
		SampleID: fmt.Sprintf("S%03d", index+1),
		Values:   make(map[string]sample.Value),
	}
	numericCount := 0

	for key, raw := range fields {
		if id, ok := identityField(key); ok {
			switch id {
			case "sample":
				s.SampleID = strings.TrimSpace(fmt.Sprintf("%v", raw))
			case "lab":
				s.LabID = strings.TrimSpace(fmt.Sprintf("%v", raw))
			}
			continue
		}

		param, matched := n.matchers.Match(key, n.parameters)
		if !matched {
			// Unmappable names stay under their raw key: excluded from
			// standards comparison downstream, but not dropped.
			param = key
		}

		val, usable := CleanValue(raw)
		if !usable {
			continue
		}
		s.Values[param] = val
		if !val.Missing {
			numericCount++
		}
	}

	if numericCount < 1 {
		return sample.Sample{}, false
	}
	return s, true
}

// recordFields flattens the three record shapes into a key/value map.
func (n *Normalizer) recordFields(rec sample.RawRecord) map[string]interface{} {
	switch r := rec.(type) {
	case sample.TabularRow:
		fields := make(map[string]interface{}, len(r.Cells))
		for i, cell := range r.Cells {
			if i >= len(r.Header) {
				break
			}
			key := strings.TrimSpace(r.Header[i])
			if key == "" {
				continue
			}
			fields[key] = cell
		}
		return fields
	case sample.JSONObject:
		return r.Fields
	case sample.TextLine:
		return parseTextLine(r.Text)
	}
	return nil
}

// parseTextLine splits "key: value" pairs separated by commas or semicolons.
func parseTextLine(text string) map[string]interface{} {
	fields := make(map[string]interface{})
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';'
	})
	for _, part := range parts {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			kv = strings.SplitN(part, "=", 2)
		}
		if len(kv) != 2 {
			continue
		}
		key := strings.TrimSpace(kv[0])
		if key == "" {
			continue
		}
		fields[key] = strings.TrimSpace(kv[1])
	}
	return fields
}

// identityField recognizes sample/lab identifier columns.
func identityField(key string) (string, bool) {
	switch CollapseKey(key) {
	case "sampleid", "sampleno", "sample", "id", "sampleidentifier":
		return "sample", true
	case "labid", "labno", "lab", "labnumber", "labcode":
		return "lab", true
	}
	return "", false
}

func (n *Normalizer) classifyBatch(records []sample.RawRecord, filename string) sample.DataType {
	if n.classifier == nil {
		return sample.DataTypeUnknown
	}
	var keys []string
	var values []float64
	seen := make(map[string]bool)
	for _, rec := range records {
		for key, raw := range n.recordFields(rec) {
			if !seen[key] {
				seen[key] = true
				keys = append(keys, key)
			}
			if v, usable := CleanValue(raw); usable && !v.Missing {
				values = append(values, v.Num)
			}
		}
	}
	return n.classifier.Classify(filename, keys, values)
}
