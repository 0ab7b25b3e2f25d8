package excel

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"doegen/domain/scenario"
	apperrors "doegen/internal/errors"

	"github.com/xuri/excelize/v2"
)

// SheetReader loads a DoE worksheet from an Excel workbook or a CSV file.
type SheetReader struct {
	filePath string
	sheet    string
	fileType string // "xlsx" or "csv"
}

// NewSheetReader creates a reader for the given path. The sheet name is used
// for .xlsx files; CSV files have a single implicit table.
func NewSheetReader(filePath, sheet string) *SheetReader {
	ext := strings.ToLower(filepath.Ext(filePath))
	fileType := "xlsx"
	if ext == ".csv" {
		fileType = "csv"
	}
	return &SheetReader{filePath: filePath, sheet: sheet, fileType: fileType}
}

// ReadSheet loads the worksheet into structured row records and applies
// column-wise forward-fill, preserving worksheet row order.
func (r *SheetReader) ReadSheet() (*SheetData, error) {
	if _, err := os.Stat(r.filePath); os.IsNotExist(err) {
		return nil, apperrors.SourceError(fmt.Sprintf("%s file not found: %s", strings.ToUpper(r.fileType), r.filePath), err)
	}

	var (
		data *SheetData
		err  error
	)
	switch r.fileType {
	case "csv":
		data, err = r.readCSV()
	case "xlsx":
		data, err = r.readXLSX()
	default:
		return nil, apperrors.SourceError(fmt.Sprintf("unsupported file type: %s", r.fileType), nil)
	}
	if err != nil {
		return nil, err
	}

	ForwardFill(data)
	log.Printf("[SheetReader] %s loaded (%d columns, %d rows)", r.filePath, len(data.Headers), len(data.Rows))
	return data, nil
}

func (r *SheetReader) readXLSX() (*SheetData, error) {
	f, err := excelize.OpenFile(r.filePath)
	if err != nil {
		return nil, apperrors.SourceError(fmt.Sprintf("failed to open workbook %s", r.filePath), err)
	}
	defer f.Close()

	rows, err := f.GetRows(r.sheet)
	if err != nil {
		return nil, apperrors.SourceError(fmt.Sprintf("failed to read sheet %q in %s", r.sheet, r.filePath), err)
	}
	if len(rows) < 1 {
		return nil, apperrors.SourceError(fmt.Sprintf("sheet %q in %s has no header row", r.sheet, r.filePath), nil)
	}

	return processRows(rows), nil
}

func (r *SheetReader) readCSV() (*SheetData, error) {
	file, err := os.Open(r.filePath)
	if err != nil {
		return nil, apperrors.SourceError(fmt.Sprintf("failed to open CSV file %s", r.filePath), err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.SourceError(fmt.Sprintf("failed to read CSV file %s", r.filePath), err)
	}
	if len(rows) < 1 {
		return nil, apperrors.SourceError(fmt.Sprintf("CSV file %s has no header row", r.filePath), nil)
	}

	return processRows(rows), nil
}

// processRows converts raw string rows into SheetData, keying cells by
// trimmed header name.
func processRows(rows [][]string) *SheetData {
	headerRow := rows[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	var dataRows []scenario.Record
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		rowData := make(scenario.Record)

		for j, cell := range row {
			if j < len(headers) {
				rowData[headers[j]] = strings.TrimSpace(cell)
			}
		}

		dataRows = append(dataRows, rowData)
	}

	return &SheetData{
		Headers: headers,
		Rows:    dataRows,
	}
}

// ForwardFill replaces each blank cell with the nearest preceding non-blank
// value in the same column, top to bottom. Columns with no preceding value
// keep their leading blanks. Sheets write a value once at the top of a block
// of rows; this carries the block value down.
func ForwardFill(data *SheetData) {
	for _, header := range data.Headers {
		last := ""
		for _, row := range data.Rows {
			if cell := row[header]; cell != "" {
				last = cell
			} else if last != "" {
				row[header] = last
			}
		}
	}
}
