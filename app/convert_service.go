package app

import (
	"encoding/json"
	"fmt"
	"os"

	"doegen/adapters/excel"
	"doegen/domain/scenario"
	"doegen/internal/config"
	apperrors "doegen/internal/errors"
	"doegen/internal/logging"
)

// RowSource supplies the ordered, forward-filled worksheet rows.
type RowSource interface {
	ReadSheet() (*excel.SheetData, error)
}

// ConvertService orchestrates the worksheet -> simulator document pipeline
type ConvertService struct {
	cfg    *config.Config
	source RowSource
	log    *logging.Logger
}

// ConvertResult summarizes a completed run
type ConvertResult struct {
	Scenarios  int
	Groups     int
	OutputPath string
	Document   *scenario.Document
}

// NewConvertService creates a convert service reading the configured workbook
func NewConvertService(cfg *config.Config, log *logging.Logger) *ConvertService {
	return &ConvertService{
		cfg:    cfg,
		source: excel.NewSheetReader(cfg.Paths.ExcelFile, cfg.Sheet.Name),
		log:    log,
	}
}

// NewConvertServiceWithSource creates a convert service over a custom source
func NewConvertServiceWithSource(cfg *config.Config, source RowSource, log *logging.Logger) *ConvertService {
	return &ConvertService{cfg: cfg, source: source, log: log}
}

// Run executes the full pipeline: load rows, build the document, write it.
// Structural failures abort with no output file; row-level irregularities
// are absorbed by the builder rules.
func (s *ConvertService) Run() (*ConvertResult, error) {
	data, err := s.source.ReadSheet()
	if err != nil {
		return nil, err
	}
	s.log.Debug("loaded %d rows from sheet %q", len(data.Rows), s.cfg.Sheet.Name)

	doc := s.BuildDocument(data)
	if err := writeDocument(s.cfg.Paths.OutputJSON, doc); err != nil {
		return nil, err
	}

	groups := 0
	for _, entries := range doc.Agents {
		groups += len(entries)
	}
	s.log.Info("wrote %d scenarios (%d group entries) to %s", len(doc.Agents), groups, s.cfg.Paths.OutputJSON)

	return &ConvertResult{
		Scenarios:  len(doc.Agents),
		Groups:     groups,
		OutputPath: s.cfg.Paths.OutputJSON,
		Document:   doc,
	}, nil
}

// BuildDocument converts forward-filled rows into the simulator document.
// Rows without a scenario id are skipped; groups with a zero count produce
// no entry; rows producing no entries contribute no scenario.
func (s *ConvertService) BuildDocument(data *excel.SheetData) *scenario.Document {
	agents := make([][]scenario.GroupEntry, 0)

	for _, rec := range data.Rows {
		if _, ok := rec.Field("scenario"); !ok {
			continue // spacer or formatting row
		}

		var entries []scenario.GroupEntry
		for _, group := range scenario.Groups() {
			count := group.Count(rec)
			if count <= 0 {
				continue
			}
			entries = append(entries, scenario.GroupEntry{
				FileName:          s.cfg.Sheet.AircraftFile,
				AgentsPerBase:     scenario.Distribute(count, s.cfg.Sheet.NumBases),
				SuppressionTactic: scenario.BuildTactic(group, rec),
			})
		}

		if len(entries) > 0 {
			agents = append(agents, entries)
		}
	}

	return &scenario.Document{
		DefaultParamsFile: config.FirstToken(s.cfg.Sheet.Name) + ".json",
		Agents:            agents,
	}
}

// writeDocument serializes the document with stable key order and 2-space
// indentation and persists it in one shot.
func writeDocument(path string, doc *scenario.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return apperrors.WriteError("failed to serialize output document", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apperrors.WriteError(fmt.Sprintf("failed to write output to %s", path), err)
	}
	return nil
}
