package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"

	"github.com/xuri/excelize/v2"
)

// WorkbookConfig configures the DoE workbook generator
type WorkbookConfig struct {
	Sheet     string
	Scenarios int
	Seed      int64

	// BlockLen is how many consecutive scenarios share tactic values. Within
	// a block only the first row carries the value; later rows leave the cell
	// blank, the way analysts author real sheets (forward-fill restores it).
	BlockLen int

	// AltEvery emits a change condition + threshold on every Nth scenario,
	// so generated sheets exercise the alternative-tactic path. 0 disables.
	AltEvery int
}

// DefaultWorkbookConfig returns sensible defaults for fixture generation
func DefaultWorkbookConfig() WorkbookConfig {
	return WorkbookConfig{
		Sheet:     "Pyrenees DoE",
		Scenarios: 8,
		Seed:      42,
		BlockLen:  2,
		AltEvery:  3,
	}
}

// Table is an in-memory worksheet: a header row plus data rows.
type Table struct {
	Headers []string
	Rows    [][]string
}

// DoEHeaders is the column layout every generated sheet uses.
var DoEHeaders = []string{
	"scenario",
	"first group", "second group",
	"g1_select_poi", "g1_track_poi", "g1_suppress", "g1_change_condition", "g1_threshold",
	"g1a_select_poi", "g1a_track_poi", "g1a_suppress", "g1a_change_condition", "g1a_threshold",
	"g2_select_poi", "g2_track_poi", "g2_suppress", "g2_change_condition", "g2_threshold",
	"g2a_select_poi", "g2a_track_poi", "g2a_suppress", "g2a_change_condition", "g2a_threshold",
}

var (
	selectVocab   = []string{"vegetation", "water"}
	trackVocab    = []string{"follow_firefront", "orbit_poi"}
	suppressVocab = []string{"direct", "indirect"}
	condVocab     = []string{"wind_shift", "fuel_low", "poi_exhausted"}
)

// GenerateDoETable builds a deterministic scenario table. The same config
// always yields the same table.
func GenerateDoETable(cfg WorkbookConfig) *Table {
	rng := rand.New(rand.NewSource(cfg.Seed))
	col := make(map[string]int, len(DoEHeaders))
	for i, h := range DoEHeaders {
		col[h] = i
	}

	rows := make([][]string, 0, cfg.Scenarios)
	for i := 0; i < cfg.Scenarios; i++ {
		row := make([]string, len(DoEHeaders))
		row[col["scenario"]] = fmt.Sprintf("S%02d", i+1)
		row[col["first group"]] = fmt.Sprintf("%d", 1+rng.Intn(6))
		row[col["second group"]] = fmt.Sprintf("%d", rng.Intn(5)) // may be 0

		blockStart := cfg.BlockLen <= 1 || i%cfg.BlockLen == 0
		if blockStart {
			row[col["g1_select_poi"]] = selectVocab[rng.Intn(len(selectVocab))]
			row[col["g1_track_poi"]] = trackVocab[rng.Intn(len(trackVocab))]
			row[col["g1_suppress"]] = suppressVocab[rng.Intn(len(suppressVocab))]
			row[col["g2_select_poi"]] = selectVocab[rng.Intn(len(selectVocab))]
			row[col["g2_track_poi"]] = trackVocab[rng.Intn(len(trackVocab))]
			row[col["g2_suppress"]] = suppressVocab[rng.Intn(len(suppressVocab))]
		}

		if cfg.AltEvery > 0 && (i+1)%cfg.AltEvery == 0 {
			row[col["g1_change_condition"]] = condVocab[rng.Intn(len(condVocab))]
			if rng.Intn(2) == 0 {
				row[col["g1_threshold"]] = fmt.Sprintf("%d", 1+rng.Intn(5))
			} else {
				row[col["g1_threshold"]] = fmt.Sprintf("%.1f", 0.5+float64(rng.Intn(5)))
			}
			if rng.Intn(2) == 0 {
				row[col["g1a_select_poi"]] = selectVocab[rng.Intn(len(selectVocab))]
			}
		}

		rows = append(rows, row)
	}

	return &Table{Headers: append([]string(nil), DoEHeaders...), Rows: rows}
}

// WriteXLSX writes the table to an Excel workbook under the given sheet name.
func WriteXLSX(path, sheet string, t *Table) error {
	f := excelize.NewFile()

	idx, err := f.NewSheet(sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	if sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return err
		}
	}

	for i, h := range t.Headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r := 0; r < len(t.Rows); r++ {
		rowIdx := r + 2
		for c, v := range t.Rows[r] {
			if v == "" {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// WriteCSV writes the table as a CSV file.
func WriteCSV(path string, t *Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(t.Headers); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}
