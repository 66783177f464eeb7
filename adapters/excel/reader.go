package excel

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"agropalm/domain/sample"
	"agropalm/internal"
	"agropalm/ports"
)

// FileSource reads lab-report spreadsheets (xlsx or csv) into raw record
// batches for the normalizer. One FileSource covers one file; the filename
// travels with the batch as a classification hint.
type FileSource struct {
	filePath string
	declared sample.DataType
	logger   *internal.Logger
}

// NewFileSource creates a reader for one file. declared may be unknown.
func NewFileSource(filePath string, declared sample.DataType, logger *internal.Logger) *FileSource {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &FileSource{filePath: filePath, declared: declared, logger: logger}
}

// ReadRecords implements ports.RecordSource.
func (r *FileSource) ReadRecords(_ context.Context) ([]ports.RecordBatch, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("input file not found: %s", r.filePath)
	}

	var rows [][]string
	var err error
	switch strings.ToLower(filepath.Ext(r.filePath)) {
	case ".csv":
		rows, err = r.readCSV()
	default:
		rows, err = r.readExcel()
	}
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s must have at least a header row and one data row", r.filePath)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	records := make([]sample.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		records = append(records, sample.TabularRow{Header: header, Cells: row})
	}

	r.logger.Debug("read %d records from %s", len(records), r.filePath)
	return []ports.RecordBatch{{
		Records:  records,
		Declared: r.declared,
		Filename: filepath.Base(r.filePath),
	}}, nil
}

func (r *FileSource) readExcel() ([][]string, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", r.filePath)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return rows, nil
}

func (r *FileSource) readCSV() ([][]string, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // ragged rows are the normalizer's problem
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
