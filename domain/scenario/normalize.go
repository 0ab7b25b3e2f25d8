package scenario

import (
	"math"
	"strconv"
	"strings"
)

// Normalize converts a raw cell value into a clean string. The second return
// value is false for missing, blank, or NaN-marker cells. Numeric-looking
// content stays textual; downstream consumers decide typing.
func Normalize(value string) (string, bool) {
	s := strings.TrimSpace(value)
	if s == "" || isNaNMarker(s) {
		return "", false
	}
	return s, true
}

// isNaNMarker catches the textual forms a missing numeric cell takes after
// spreadsheet round-trips: float NaN renderings and the Excel #N/A error.
func isNaNMarker(s string) bool {
	switch s {
	case "nan", "NaN", "NAN", "#N/A":
		return true
	}
	return false
}

// ParseThreshold reads a threshold-typed cell. Absent cells return false.
// Numeric cells become numbers (integral values collapse on output);
// anything else keeps its trimmed text form.
func ParseThreshold(value string) (Threshold, bool) {
	s, ok := Normalize(value)
	if !ok {
		return Threshold{}, false
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
		return NumberThreshold(v), true
	}
	return TextThreshold(s), true
}

// ParseCount reads a group aircraft count. Blank, NaN, or unparsable cells
// count as zero; fractional values truncate toward zero.
func ParseCount(value string) int {
	s, ok := Normalize(value)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(v)
}
