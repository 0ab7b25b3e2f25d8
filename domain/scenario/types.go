// Package scenario holds the pure domain logic for turning DoE worksheet
// rows into the nested agent document the wildfire simulator consumes.
package scenario

import (
	"encoding/json"
	"math"
	"strconv"
)

// Record is one worksheet row keyed by trimmed header name. Cell values are
// the raw strings produced by the row source, before normalization.
type Record map[string]string

// Field reads a cell through the normalizer. The second return value is
// false when the cell is blank or missing.
func (r Record) Field(column string) (string, bool) {
	return Normalize(r[column])
}

// Tactic is one suppression tactic: which points of interest to select and
// track, and how to suppress. Blank source fields stay absent.
type Tactic struct {
	SelectPOI string `json:"select_poi,omitempty"`
	TrackPOI  string `json:"track_poi,omitempty"`
	Suppress  string `json:"suppress,omitempty"`
}

// Alternative is the optional fallback tactic, switched to when the change
// condition (or threshold) is met during a run.
type Alternative struct {
	ChangeCondition string     `json:"change_condition,omitempty"`
	Threshold       *Threshold `json:"threshold,omitempty"`
	Tactic          Tactic     `json:"alternative_tactic"`
}

// TacticBlock always carries a main tactic; the alternative is present only
// when the source row provides a change condition or threshold.
type TacticBlock struct {
	Main        Tactic       `json:"main"`
	Alternative *Alternative `json:"alternative,omitempty"`
}

// GroupEntry is one aircraft group of a scenario.
type GroupEntry struct {
	FileName          string      `json:"file_name"`
	AgentsPerBase     []int       `json:"agents_per_base"`
	SuppressionTactic TacticBlock `json:"suppression_tactic"`
}

// Document is the top-level output consumed by the simulator. Agents holds
// one slice of group entries per scenario, in worksheet order.
type Document struct {
	DefaultParamsFile string         `json:"default_params_file"`
	Agents            [][]GroupEntry `json:"agents"`
}

// Threshold is a change-condition threshold. Worksheet cells usually hold a
// number; exact-integral values collapse to integers on output (3.0 -> 3).
// Non-numeric cells keep their trimmed text form, matching the source sheet.
type Threshold struct {
	num   float64
	isNum bool
	raw   string
}

// NumberThreshold builds a numeric threshold value.
func NumberThreshold(v float64) Threshold {
	return Threshold{num: v, isNum: true}
}

// TextThreshold builds a non-numeric threshold value.
func TextThreshold(s string) Threshold {
	return Threshold{raw: s}
}

// IsNumber reports whether the threshold carries a numeric value.
func (t Threshold) IsNumber() bool { return t.isNum }

// Number returns the numeric value; only meaningful when IsNumber is true.
func (t Threshold) Number() float64 { return t.num }

// Text returns the raw text value; only meaningful when IsNumber is false.
func (t Threshold) Text() string { return t.raw }

func (t Threshold) String() string {
	if t.isNum {
		if isIntegral(t.num) {
			return strconv.FormatInt(int64(t.num), 10)
		}
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	}
	return t.raw
}

// MarshalJSON emits a JSON number (integer form when exactly integral) or a
// JSON string for non-numeric thresholds.
func (t Threshold) MarshalJSON() ([]byte, error) {
	if t.isNum {
		return []byte(t.String()), nil
	}
	return json.Marshal(t.raw)
}

func (t *Threshold) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TextThreshold(s)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*t = NumberThreshold(v)
	return nil
}

func isIntegral(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Trunc(v)
}
