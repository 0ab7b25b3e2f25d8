package scenario

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDocument_JSONShape(t *testing.T) {
	threshold := NumberThreshold(3)
	doc := &Document{
		DefaultParamsFile: "Pyrenees.json",
		Agents: [][]GroupEntry{
			{
				{
					FileName:      "SUT_series_hybrid.json",
					AgentsPerBase: []int{3, 2},
					SuppressionTactic: TacticBlock{
						Main: Tactic{SelectPOI: "vegetation"},
						Alternative: &Alternative{
							ChangeCondition: "wind_shift",
							Threshold:       &threshold,
							Tactic: Tactic{
								SelectPOI: "water",
								TrackPOI:  "follow_firefront",
								Suppress:  "direct",
							},
						},
					},
				},
			},
		},
	}

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	expected := `{"default_params_file":"Pyrenees.json","agents":[[{"file_name":"SUT_series_hybrid.json","agents_per_base":[3,2],"suppression_tactic":{"main":{"select_poi":"vegetation"},"alternative":{"change_condition":"wind_shift","threshold":3,"alternative_tactic":{"select_poi":"water","track_poi":"follow_firefront","suppress":"direct"}}}}]]}`
	if string(data) != expected {
		t.Errorf("document JSON mismatch\ngot:  %s\nwant: %s", data, expected)
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	fractional := NumberThreshold(2.5)
	textual := TextThreshold("high")
	doc := &Document{
		DefaultParamsFile: "Alps.json",
		Agents: [][]GroupEntry{
			{
				{
					FileName:      "SUT_series_hybrid.json",
					AgentsPerBase: []int{1, 0, 0},
					SuppressionTactic: TacticBlock{
						Main: Tactic{SelectPOI: "water", Suppress: "direct"},
						Alternative: &Alternative{
							Threshold: &fractional,
							Tactic:    Tactic{SelectPOI: "vegetation", TrackPOI: "follow_firefront", Suppress: "direct"},
						},
					},
				},
				{
					FileName:      "SUT_series_hybrid.json",
					AgentsPerBase: []int{2, 2},
					SuppressionTactic: TacticBlock{
						Main: Tactic{},
						Alternative: &Alternative{
							ChangeCondition: "fuel_low",
							Threshold:       &textual,
							Tactic:          Tactic{},
						},
					},
				},
			},
			{
				{
					FileName:          "SUT_series_hybrid.json",
					AgentsPerBase:     []int{4},
					SuppressionTactic: TacticBlock{Main: Tactic{TrackPOI: "orbit_poi"}},
				},
			},
		},
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded Document
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !reflect.DeepEqual(doc, &decoded) {
		t.Errorf("round trip mismatch\ngot:  %+v\nwant: %+v", &decoded, doc)
	}

	// A second marshal must be byte-identical.
	again, err := json.MarshalIndent(&decoded, "", "  ")
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if string(again) != string(data) {
		t.Errorf("re-marshal not byte-identical\nfirst:  %s\nsecond: %s", data, again)
	}
}

func TestThreshold_MarshalForms(t *testing.T) {
	tests := []struct {
		name      string
		threshold Threshold
		expected  string
	}{
		{name: "integral collapses", threshold: NumberThreshold(3.0), expected: "3"},
		{name: "fractional preserved", threshold: NumberThreshold(2.5), expected: "2.5"},
		{name: "zero", threshold: NumberThreshold(0), expected: "0"},
		{name: "negative integral", threshold: NumberThreshold(-7.0), expected: "-7"},
		{name: "text form quoted", threshold: TextThreshold("until_night"), expected: `"until_night"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.threshold)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(data) != tt.expected {
				t.Errorf("marshal = %s, want %s", data, tt.expected)
			}
		})
	}
}

func TestRecord_Field(t *testing.T) {
	rec := Record{"scenario": "  S1 ", "first group": ""}

	if v, ok := rec.Field("scenario"); !ok || v != "S1" {
		t.Errorf("Field(scenario) = %q, %v; want S1, true", v, ok)
	}
	if _, ok := rec.Field("first group"); ok {
		t.Error("blank cell must read as absent")
	}
	if _, ok := rec.Field("missing column"); ok {
		t.Error("missing column must read as absent")
	}
}
