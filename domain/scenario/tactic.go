package scenario

import "strings"

// GroupSpec names the worksheet columns for one aircraft group: the count
// column plus the main and alternative tactic column prefixes. Formalizing
// the prefix convention here keeps the string concatenation in one place.
type GroupSpec struct {
	Name        string
	CountColumn string
	MainPrefix  string
	AltPrefix   string
}

// The two fixed groups every DoE sheet may define.
var (
	FirstGroup  = GroupSpec{Name: "first", CountColumn: "first group", MainPrefix: "g1_", AltPrefix: "g1a_"}
	SecondGroup = GroupSpec{Name: "second", CountColumn: "second group", MainPrefix: "g2_", AltPrefix: "g2a_"}
)

// Groups returns the group specs in emission order.
func Groups() []GroupSpec {
	return []GroupSpec{FirstGroup, SecondGroup}
}

// Count reads the group's aircraft count from a record.
func (g GroupSpec) Count(rec Record) int {
	return ParseCount(rec[g.CountColumn])
}

// Fallback defaults for alternative tactic fields left blank in the sheet.
const (
	defaultAltTrackPOI = "follow_firefront"
	defaultAltSuppress = "direct"
)

// BuildTactic constructs the suppression tactic block for one group from one
// record. The main tactic carries only the fields the sheet provides. An
// alternative is emitted only when the row supplies a change condition or
// threshold (on either prefix) or any alternative tactic field.
func BuildTactic(g GroupSpec, rec Record) TacticBlock {
	var main Tactic
	if v, ok := rec.Field(g.MainPrefix + "select_poi"); ok {
		main.SelectPOI = v
	}
	if v, ok := rec.Field(g.MainPrefix + "track_poi"); ok {
		main.TrackPOI = v
	}
	if v, ok := rec.Field(g.MainPrefix + "suppress"); ok {
		main.Suppress = v
	}

	block := TacticBlock{Main: main}
	if !alternativePresent(g, rec) {
		return block
	}

	alt := Tactic{
		TrackPOI: defaultAltTrackPOI,
		Suppress: defaultAltSuppress,
	}
	if v, ok := rec.Field(g.AltPrefix + "select_poi"); ok {
		alt.SelectPOI = v
	} else {
		alt.SelectPOI = flipSelectPOI(main.SelectPOI)
	}
	if v, ok := rec.Field(g.AltPrefix + "track_poi"); ok {
		alt.TrackPOI = v
	}
	if v, ok := rec.Field(g.AltPrefix + "suppress"); ok {
		alt.Suppress = v
	}

	alternative := &Alternative{Tactic: alt}
	if v, ok := rec.Field(g.AltPrefix + "change_condition"); ok {
		alternative.ChangeCondition = v
	} else if v, ok := rec.Field(g.MainPrefix + "change_condition"); ok {
		alternative.ChangeCondition = v
	}
	if t, ok := ParseThreshold(rec[g.AltPrefix+"threshold"]); ok {
		alternative.Threshold = &t
	} else if t, ok := ParseThreshold(rec[g.MainPrefix+"threshold"]); ok {
		alternative.Threshold = &t
	}

	block.Alternative = alternative
	return block
}

// alternativePresent is the gate for emitting an alternative block: any
// alternative-prefixed field, or a change condition or threshold on the
// main prefix.
func alternativePresent(g GroupSpec, rec Record) bool {
	for _, field := range []string{"select_poi", "track_poi", "suppress", "change_condition", "threshold"} {
		if _, ok := rec.Field(g.AltPrefix + field); ok {
			return true
		}
	}
	if _, ok := rec.Field(g.MainPrefix + "change_condition"); ok {
		return true
	}
	if _, ok := rec.Field(g.MainPrefix + "threshold"); ok {
		return true
	}
	return false
}

// flipSelectPOI derives the alternative target selection from the main one.
// The sheet convention flips vegetation and water; anything else, including
// an absent main selection, falls back to vegetation.
func flipSelectPOI(mainSelect string) string {
	switch strings.ToLower(mainSelect) {
	case "vegetation":
		return "water"
	case "water":
		return "vegetation"
	default:
		return "vegetation"
	}
}
