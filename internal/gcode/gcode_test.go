package gcode

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		word    string
		fields  map[byte]float64
		wantErr bool
	}{
		{
			name:   "extrusion move",
			raw:    "G1 X12.5 Y-3.25 E0.0421",
			word:   "G1",
			fields: map[byte]float64{'X': 12.5, 'Y': -3.25, 'E': 0.0421},
		},
		{
			name:   "fields in arbitrary order",
			raw:    "G1 F1500 E0.1 Y2 X1",
			word:   "G1",
			fields: map[byte]float64{'F': 1500, 'E': 0.1, 'X': 1, 'Y': 2},
		},
		{
			name:   "travel move",
			raw:    "G0 X1 Y2",
			word:   "G0",
			fields: map[byte]float64{'X': 1, 'Y': 2},
		},
		{
			name:   "comment only",
			raw:    ";TYPE:FILL",
			word:   "",
			fields: nil,
		},
		{
			name:   "blank line",
			raw:    "",
			word:   "",
			fields: nil,
		},
		{
			name:   "trailing comment ignored",
			raw:    "G1 X1 Y2 E0.5 ;fill",
			word:   "G1",
			fields: map[byte]float64{'X': 1, 'Y': 2, 'E': 0.5},
		},
		{
			name:   "free text after non-motion word tolerated",
			raw:    "M117 Printing part one",
			word:   "M117",
			fields: nil,
		},
		{
			name:    "malformed field on motion command",
			raw:     "G1 Xabc Y2 E0.5",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := Parse(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Parse() error = nil, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if line.Word != tt.word {
				t.Errorf("Word = %q, want %q", line.Word, tt.word)
			}
			for letter, want := range tt.fields {
				got, ok := line.Value(letter)
				if !ok {
					t.Errorf("missing field %c", letter)
					continue
				}
				if got != want {
					t.Errorf("field %c = %v, want %v", letter, got, want)
				}
			}
			if len(line.Fields) != len(tt.fields) {
				t.Errorf("got %d fields, want %d", len(line.Fields), len(tt.fields))
			}
		})
	}
}

func TestLinePredicates(t *testing.T) {
	tests := []struct {
		raw         string
		isMove      bool
		isExtrusion bool
	}{
		{"G1 X1 Y2 E0.5", true, true},
		{"G0 X1 Y2", true, false},
		{"G1 X1 Y2", true, false},
		{"G1 F1500", false, false},
		{"G1 X1 E0.5", false, false},
		{"G0 X1 Y2 E0.5", true, false}, // travel moves never extrude
		{"M204 S500", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			line, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := line.IsMove(); got != tt.isMove {
				t.Errorf("IsMove() = %v, want %v", got, tt.isMove)
			}
			if got := line.IsExtrusionMove(); got != tt.isExtrusion {
				t.Errorf("IsExtrusionMove() = %v, want %v", got, tt.isExtrusion)
			}
		})
	}
}

func TestMarkers(t *testing.T) {
	if !IsLayerStart(";LAYER:12") {
		t.Error("IsLayerStart failed on layer marker")
	}
	if !IsInnerWallStart(";TYPE:WALL-INNER") {
		t.Error("IsInnerWallStart failed on inner wall marker")
	}
	if !IsOuterWallStart(";TYPE:WALL-OUTER") {
		t.Error("IsOuterWallStart failed on outer wall marker")
	}
	if !IsInfillStart(";TYPE:FILL") {
		t.Error("IsInfillStart failed on infill marker")
	}
	if IsLayerStart("G1 X0 Y0") {
		t.Error("IsLayerStart matched a move")
	}
	if !HasComment("G1 X0 Y0 ;wipe") {
		t.Error("HasComment missed inline comment")
	}
	if HasComment("G1 X0 Y0") {
		t.Error("HasComment matched a bare move")
	}
}

func TestExtrusionCommand(t *testing.T) {
	got := ExtrusionCommand(1.23456, -2, 0.123456, 0)
	want := "G1 X1.235 Y-2.000 E0.12346"
	if got != want {
		t.Errorf("ExtrusionCommand() = %q, want %q", got, want)
	}

	got = ExtrusionCommand(0, 1, 0.5, 1714.28)
	want = "G1 X0.000 Y1.000 E0.50000 F1714"
	if got != want {
		t.Errorf("ExtrusionCommand() with feed = %q, want %q", got, want)
	}
}

func TestFeedCommand(t *testing.T) {
	if got := FeedCommand(1500); got != "G1 F1500" {
		t.Errorf("FeedCommand() = %q, want %q", got, "G1 F1500")
	}
}

func TestRewriteMove(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		e    float64
		feed float64
		want string
	}{
		{
			name: "extrusion replaced in place",
			raw:  "G1 F1500 X10 Y20 E0.5",
			e:    0.25,
			want: "G1 F1500 X10 Y20 E0.25000",
		},
		{
			name: "feed replaced when present",
			raw:  "G1 F1500 X10 Y20 E0.5",
			e:    0.25,
			feed: 900,
			want: "G1 F900 X10 Y20 E0.25000",
		},
		{
			name: "feed appended when absent",
			raw:  "G1 X10 Y20 E0.5",
			e:    0.25,
			feed: 900,
			want: "G1 X10 Y20 E0.25000 F900",
		},
		{
			name: "comment words untouched",
			raw:  "G1 X10 Y20 E0.5 ; Edge of mesh",
			e:    0.25,
			want: "G1 X10 Y20 E0.25000 ; Edge of mesh",
		},
		{
			name: "comment glued to the extrusion field",
			raw:  "G1 X10 Y20 E0.5;mesh edge",
			e:    0.25,
			want: "G1 X10 Y20 E0.25000 ;mesh edge",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := Parse(tt.raw)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got := line.RewriteMove(tt.e, tt.feed); got != tt.want {
				t.Errorf("RewriteMove() = %q, want %q", got, tt.want)
			}
		})
	}
}
