package scenario

import (
	"encoding/json"
	"testing"
)

func TestBuildTactic_MainOnly(t *testing.T) {
	rec := Record{"g1_select_poi": "vegetation"}

	block := BuildTactic(FirstGroup, rec)

	if block.Main.SelectPOI != "vegetation" {
		t.Errorf("main select_poi = %q, want vegetation", block.Main.SelectPOI)
	}
	if block.Main.TrackPOI != "" || block.Main.Suppress != "" {
		t.Errorf("partial main should leave blank fields absent, got %+v", block.Main)
	}
	if block.Alternative != nil {
		t.Errorf("no change condition or threshold anywhere: alternative must be absent, got %+v", block.Alternative)
	}
}

func TestBuildTactic_EmptyMainStillEmitted(t *testing.T) {
	block := BuildTactic(FirstGroup, Record{})

	data, err := json.Marshal(block)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"main":{}}` {
		t.Errorf("empty record JSON = %s, want {\"main\":{}}", data)
	}
}

func TestBuildTactic_MainChangeConditionTriggersAlternative(t *testing.T) {
	rec := Record{
		"g1_select_poi":       "vegetation",
		"g1_change_condition": "wind_shift",
	}

	block := BuildTactic(FirstGroup, rec)

	if block.Alternative == nil {
		t.Fatal("main change_condition must trigger an alternative block")
	}
	alt := block.Alternative
	if alt.ChangeCondition != "wind_shift" {
		t.Errorf("change_condition = %q, want wind_shift (fallback from main prefix)", alt.ChangeCondition)
	}
	if alt.Threshold != nil {
		t.Errorf("no threshold provided, got %v", alt.Threshold)
	}
	if alt.Tactic.SelectPOI != "water" {
		t.Errorf("alternative select_poi = %q, want water (flipped from vegetation)", alt.Tactic.SelectPOI)
	}
	if alt.Tactic.TrackPOI != "follow_firefront" {
		t.Errorf("alternative track_poi = %q, want follow_firefront default", alt.Tactic.TrackPOI)
	}
	if alt.Tactic.Suppress != "direct" {
		t.Errorf("alternative suppress = %q, want direct default", alt.Tactic.Suppress)
	}
}

func TestBuildTactic_SelectPOIFlip(t *testing.T) {
	tests := []struct {
		name       string
		mainSelect string
		expected   string
	}{
		{name: "vegetation flips to water", mainSelect: "vegetation", expected: "water"},
		{name: "water flips to vegetation", mainSelect: "water", expected: "vegetation"},
		{name: "case insensitive", mainSelect: "Water", expected: "vegetation"},
		{name: "unknown defaults to vegetation", mainSelect: "structures", expected: "vegetation"},
		{name: "absent defaults to vegetation", mainSelect: "", expected: "vegetation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Record{"g1_change_condition": "wind_shift"}
			if tt.mainSelect != "" {
				rec["g1_select_poi"] = tt.mainSelect
			}

			block := BuildTactic(FirstGroup, rec)
			if block.Alternative == nil {
				t.Fatal("expected alternative block")
			}
			if got := block.Alternative.Tactic.SelectPOI; got != tt.expected {
				t.Errorf("alternative select_poi = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBuildTactic_AltValuesWinOverDefaults(t *testing.T) {
	rec := Record{
		"g2_select_poi":        "water",
		"g2a_select_poi":       "vegetation",
		"g2a_track_poi":        "orbit_poi",
		"g2a_suppress":         "indirect",
		"g2a_change_condition": "fuel_low",
		"g2a_threshold":        "2.5",
		"g2_change_condition":  "wind_shift",
		"g2_threshold":         "9.0",
	}

	block := BuildTactic(SecondGroup, rec)

	if block.Alternative == nil {
		t.Fatal("expected alternative block")
	}
	alt := block.Alternative
	if alt.ChangeCondition != "fuel_low" {
		t.Errorf("alt-prefixed change_condition must win, got %q", alt.ChangeCondition)
	}
	if alt.Threshold == nil || !alt.Threshold.IsNumber() || alt.Threshold.Number() != 2.5 {
		t.Errorf("alt-prefixed threshold must win, got %v", alt.Threshold)
	}
	if alt.Tactic.SelectPOI != "vegetation" || alt.Tactic.TrackPOI != "orbit_poi" || alt.Tactic.Suppress != "indirect" {
		t.Errorf("alt-prefixed tactic fields must win, got %+v", alt.Tactic)
	}
}

func TestBuildTactic_ThresholdFallbackToMain(t *testing.T) {
	rec := Record{
		"g1_threshold": "3.0",
	}

	block := BuildTactic(FirstGroup, rec)

	if block.Alternative == nil {
		t.Fatal("main threshold alone must trigger an alternative block")
	}
	alt := block.Alternative
	if alt.ChangeCondition != "" {
		t.Errorf("no change condition anywhere, got %q", alt.ChangeCondition)
	}
	if alt.Threshold == nil {
		t.Fatal("threshold must fall back to main prefix")
	}
	data, _ := alt.Threshold.MarshalJSON()
	if string(data) != "3" {
		t.Errorf("threshold 3.0 must collapse to 3, got %s", data)
	}
}

func TestBuildTactic_AltTacticFieldAloneTriggersAlternative(t *testing.T) {
	rec := Record{"g1a_track_poi": "orbit_poi"}

	block := BuildTactic(FirstGroup, rec)

	if block.Alternative == nil {
		t.Fatal("any alternative-prefixed field must trigger the alternative block")
	}
	if block.Alternative.ChangeCondition != "" || block.Alternative.Threshold != nil {
		t.Errorf("no condition or threshold provided, got %+v", block.Alternative)
	}
	if block.Alternative.Tactic.TrackPOI != "orbit_poi" {
		t.Errorf("track_poi = %q, want orbit_poi", block.Alternative.Tactic.TrackPOI)
	}
}

func TestBuildTactic_ZeroThresholdCountsAsPresent(t *testing.T) {
	rec := Record{"g1_threshold": "0"}

	block := BuildTactic(FirstGroup, rec)

	if block.Alternative == nil {
		t.Fatal("a zero threshold is still a provided threshold")
	}
	if block.Alternative.Threshold == nil || block.Alternative.Threshold.Number() != 0 {
		t.Errorf("threshold = %v, want 0", block.Alternative.Threshold)
	}
}

func TestGroupSpec_Count(t *testing.T) {
	rec := Record{"first group": "5", "second group": ""}

	if got := FirstGroup.Count(rec); got != 5 {
		t.Errorf("first group count = %d, want 5", got)
	}
	if got := SecondGroup.Count(rec); got != 0 {
		t.Errorf("blank second group count = %d, want 0", got)
	}
}
