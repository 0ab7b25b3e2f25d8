package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"doegen/internal/testkit"
)

func main() {
	out := flag.String("out", "doe_sample.xlsx", "output file path")
	sheet := flag.String("sheet", "Pyrenees DoE", "worksheet name")
	scenarios := flag.Int("scenarios", 8, "number of scenario rows")
	seed := flag.Int64("seed", 42, "RNG seed (deterministic)")
	format := flag.String("format", "", "output format: xlsx or csv (default inferred from -out)")
	flag.Parse()

	if *scenarios <= 0 {
		fmt.Fprintln(os.Stderr, "scenarios must be > 0")
		os.Exit(2)
	}

	fmtName := strings.ToLower(strings.TrimSpace(*format))
	if fmtName == "" {
		ext := strings.ToLower(filepath.Ext(*out))
		switch ext {
		case ".csv":
			fmtName = "csv"
		default:
			fmtName = "xlsx"
		}
	}

	cfg := testkit.DefaultWorkbookConfig()
	cfg.Sheet = *sheet
	cfg.Scenarios = *scenarios
	cfg.Seed = *seed

	table := testkit.GenerateDoETable(cfg)

	switch fmtName {
	case "csv":
		if err := testkit.WriteCSV(*out, table); err != nil {
			fmt.Fprintln(os.Stderr, "error writing csv:", err)
			os.Exit(1)
		}
	case "xlsx":
		if err := testkit.WriteXLSX(*out, cfg.Sheet, table); err != nil {
			fmt.Fprintln(os.Stderr, "error writing xlsx:", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "unsupported format:", fmtName)
		os.Exit(2)
	}

	fmt.Printf("Sample DoE workbook created: %s\n", *out)
	fmt.Printf("Sheet: %s | Columns: %d | Rows: %d\n", cfg.Sheet, len(table.Headers), len(table.Rows))
}
