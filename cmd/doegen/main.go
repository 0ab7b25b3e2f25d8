package main

import (
	"fmt"
	"os"

	"doegen/app"
	"doegen/internal/config"
	"doegen/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Optional .env for local overrides; absence is fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "doegen",
		Short: "Convert DoE scenario worksheets into simulator JSON",
	}

	rootCmd.AddCommand(newConvertCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newConvertCmd() *cobra.Command {
	var (
		excelPath    string
		sheet        string
		bases        int
		aircraftFile string
		outPath      string
		summary      bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Read a DoE worksheet and write the simulator scenario document",
		Long: `Read a Design-of-Experiments worksheet and write the nested JSON
scenario document the wildfire simulator consumes.

Flags override environment variables (DOE_SHEET_NAME, DOE_NUM_BASES,
DOE_AIRCRAFT_FILE, DOE_EXCEL_PATH, DOE_OUTPUT_JSON).

Example: doegen convert --excel "MoE Analysis.xlsx" --sheet "Pyrenees DoE" --bases 2`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, excelPath, sheet, bases, aircraftFile, outPath)
			if err != nil {
				return err
			}

			log := logging.NewDefaultLogger()
			service := app.NewConvertService(cfg, log)
			result, err := service.Run()
			if err != nil {
				return err
			}

			fmt.Printf("Wrote %s with %d scenario entries.\n", result.OutputPath, result.Scenarios)

			if summary {
				fleet, err := app.SummarizeFleet(result.Document)
				if err != nil {
					return err
				}
				fmt.Print(fleet.Format())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&excelPath, "excel", "", "input workbook path (.xlsx or .csv)")
	cmd.Flags().StringVar(&sheet, "sheet", "", "worksheet name within the workbook")
	cmd.Flags().IntVar(&bases, "bases", 0, "number of bases to distribute aircraft across")
	cmd.Flags().StringVar(&aircraftFile, "aircraft-file", "", "aircraft agent definition file name")
	cmd.Flags().StringVar(&outPath, "out", "", "output JSON path (default derived from sheet name)")
	cmd.Flags().BoolVar(&summary, "summary", false, "print fleet statistics after conversion")

	return cmd
}

// loadConfig resolves env config first, then applies changed flags on top.
// The output path is re-derived when input or sheet were overridden without
// an explicit --out.
func loadConfig(cmd *cobra.Command, excelPath, sheet string, bases int, aircraftFile, outPath string) (*config.Config, error) {
	cfg := config.FromEnv()

	flags := cmd.Flags()
	if flags.Changed("excel") {
		cfg.Paths.ExcelFile = excelPath
	}
	if flags.Changed("sheet") {
		cfg.Sheet.Name = sheet
	}
	if flags.Changed("bases") {
		cfg.Sheet.NumBases = bases
	}
	if flags.Changed("aircraft-file") {
		cfg.Sheet.AircraftFile = aircraftFile
	}
	if flags.Changed("out") {
		cfg.Paths.OutputJSON = outPath
	} else if flags.Changed("excel") || flags.Changed("sheet") {
		cfg.Paths.OutputJSON = config.DerivedOutputPath(cfg.Paths.ExcelFile, cfg.Sheet.Name)
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
