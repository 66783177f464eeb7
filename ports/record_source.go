package ports

import (
	"context"

	"agropalm/domain/sample"
)

// RecordBatch is one file's worth of raw records plus classification hints.
type RecordBatch struct {
	Records  []sample.RawRecord
	Declared sample.DataType // soil/leaf/unknown hint from the caller
	Filename string          // used only for classification heuristics
}

// RecordSource is the input boundary: file readers, OCR adapters and form
// handlers all deliver raw sample records through it. The core performs no
// file I/O itself.
type RecordSource interface {
	ReadRecords(ctx context.Context) ([]RecordBatch, error)
}
