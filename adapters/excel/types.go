package excel

import "doegen/domain/scenario"

// SheetData represents one loaded worksheet
type SheetData struct {
	Headers []string          // Column headers, trimmed
	Rows    []scenario.Record // Data rows in worksheet order
}
