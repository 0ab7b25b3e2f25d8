package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"doegen/internal/errors"
)

// Config represents the complete run configuration
type Config struct {
	Sheet SheetConfig `validate:"required"`
	Paths PathConfig  `validate:"required"`
}

// SheetConfig holds worksheet and fleet layout settings
type SheetConfig struct {
	Name         string `validate:"required"`
	NumBases     int    `validate:"required"`
	AircraftFile string `validate:"required"`
}

// PathConfig holds file system paths
type PathConfig struct {
	ExcelFile  string
	OutputJSON string
}

// Defaults mirror the reference DoE workbook layout.
const (
	DefaultSheetName    = "Pyrenees DoE"
	DefaultNumBases     = 2
	DefaultAircraftFile = "SUT_series_hybrid.json"
	DefaultExcelFile    = "MoE Analysis.xlsx"
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := FromEnv()
	if err := Validate(config); err != nil {
		return nil, err
	}
	return config, nil
}

// FromEnv reads configuration from environment variables without validating,
// so callers layering flag overrides on top can validate the merged result.
func FromEnv() *Config {
	config := &Config{
		Sheet: SheetConfig{
			Name:         getEnv("DOE_SHEET_NAME", DefaultSheetName),
			NumBases:     getEnvInt("DOE_NUM_BASES", DefaultNumBases),
			AircraftFile: getEnv("DOE_AIRCRAFT_FILE", DefaultAircraftFile),
		},
		Paths: PathConfig{
			ExcelFile:  getEnv("DOE_EXCEL_PATH", DefaultExcelFile),
			OutputJSON: getEnv("DOE_OUTPUT_JSON", ""),
		},
	}

	if config.Paths.OutputJSON == "" {
		config.Paths.OutputJSON = DerivedOutputPath(config.Paths.ExcelFile, config.Sheet.Name)
	}

	return config
}

// DerivedOutputPath names the output after the sheet's leading token, next to
// the input workbook: "Pyrenees DoE" -> "doe_gen_pyrenees.json".
func DerivedOutputPath(excelPath, sheetName string) string {
	token := FirstToken(sheetName)
	name := fmt.Sprintf("doe_gen_%s.json", strings.ToLower(token))
	return filepath.Join(filepath.Dir(excelPath), name)
}

// FirstToken returns the first whitespace-delimited token of s, or s itself
// when there is no whitespace.
func FirstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	return fields[0]
}

// Validate runs the eager checks that must fail before any row is read
func Validate(config *Config) error {
	if config.Sheet.NumBases < 1 {
		return errors.ConfigInvalid(fmt.Sprintf("number of bases must be >= 1, got %d", config.Sheet.NumBases))
	}
	if strings.TrimSpace(config.Sheet.Name) == "" {
		return errors.ConfigInvalid("sheet name is required")
	}
	if strings.TrimSpace(config.Sheet.AircraftFile) == "" {
		return errors.ConfigInvalid("aircraft agent file name is required")
	}
	if strings.TrimSpace(config.Paths.ExcelFile) == "" {
		return errors.ConfigInvalid("input workbook path is required")
	}
	if strings.TrimSpace(config.Paths.OutputJSON) == "" {
		return errors.ConfigInvalid("output path is required")
	}
	return nil
}

// getEnv returns the environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns the environment variable as int or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
