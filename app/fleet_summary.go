package app

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"doegen/domain/scenario"
)

// FleetSummary holds descriptive statistics over the generated scenarios,
// reported to the analyst after a run.
type FleetSummary struct {
	Scenarios     int
	GroupEntries  int
	TotalAircraft int

	// Per-scenario aircraft totals
	MeanAircraft   float64
	MedianAircraft float64
	MinAircraft    float64
	MaxAircraft    float64
}

// SummarizeFleet computes per-scenario fleet statistics for a document.
// An empty document yields a zero summary.
func SummarizeFleet(doc *scenario.Document) (*FleetSummary, error) {
	summary := &FleetSummary{Scenarios: len(doc.Agents)}
	if len(doc.Agents) == 0 {
		return summary, nil
	}

	totals := make([]float64, 0, len(doc.Agents))
	for _, entries := range doc.Agents {
		summary.GroupEntries += len(entries)
		scenarioTotal := 0
		for _, entry := range entries {
			for _, n := range entry.AgentsPerBase {
				scenarioTotal += n
			}
		}
		summary.TotalAircraft += scenarioTotal
		totals = append(totals, float64(scenarioTotal))
	}

	var err error
	if summary.MeanAircraft, err = stats.Mean(totals); err != nil {
		return nil, err
	}
	if summary.MedianAircraft, err = stats.Median(totals); err != nil {
		return nil, err
	}
	if summary.MinAircraft, err = stats.Min(totals); err != nil {
		return nil, err
	}
	if summary.MaxAircraft, err = stats.Max(totals); err != nil {
		return nil, err
	}

	return summary, nil
}

// Format renders the summary as operator-readable lines.
func (s *FleetSummary) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Scenarios: %d | Group entries: %d | Total aircraft: %d\n", s.Scenarios, s.GroupEntries, s.TotalAircraft)
	if s.Scenarios > 0 {
		fmt.Fprintf(&b, "Aircraft per scenario: mean %.1f, median %.1f, min %.0f, max %.0f\n",
			s.MeanAircraft, s.MedianAircraft, s.MinAircraft, s.MaxAircraft)
	}
	return b.String()
}
