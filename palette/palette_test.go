package palette

import (
	"errors"
	"testing"
)

var allSchemes = []ColorScheme{Heatmap, NcbiBlast, Greyscale, Sequential, Divergent, Qualitative}

func TestTablesHaveFiveKeys(t *testing.T) {
	for _, scheme := range allSchemes {
		table := ResolveTable(scheme)
		if table.Len() != 5 || len(table.Colors) != 5 {
			t.Errorf("%s: %d keys, %d colours", scheme, table.Len(), len(table.Colors))
		}
		for i := 1; i < table.Len(); i++ {
			if table.Keys[i] <= table.Keys[i-1] {
				t.Errorf("%s: keys not increasing at %d: %v", scheme, i, table.Keys)
			}
		}
	}
}

func TestParseColorScheme(t *testing.T) {
	tests := []struct {
		name string
		want ColorScheme
	}{
		{"heatmap", Heatmap},
		{"ncbiblast", NcbiBlast},
		{"Greyscale", Greyscale},
		{" sequential ", Sequential},
		{"divergent", Divergent},
		{"qualitative", Qualitative},
		{"rainbow", Heatmap},
		{"", Heatmap},
	}

	for _, tt := range tests {
		if got := ParseColorScheme(tt.name); got != tt.want {
			t.Errorf("ParseColorScheme(%q) = %s, want %s", tt.name, got, tt.want)
		}
	}
}

func TestResolveUnknownScheme(t *testing.T) {
	got := ResolveTable(ColorScheme(99))
	want := ResolveTable(Heatmap)
	if RGBString(got.Colors[0]) != RGBString(want.Colors[0]) {
		t.Errorf("unknown scheme should resolve to heatmap")
	}
	if ColorScheme(99).String() != "heatmap" {
		t.Errorf("unknown scheme name = %q", ColorScheme(99).String())
	}
}

func TestGradientStrip(t *testing.T) {
	t.Run("bucket", func(t *testing.T) {
		stops := GradientStrip(NcbiBlast)
		want := []float64{0, 0.199999, 0.2, 0.399999, 0.4, 0.599999, 0.6, 0.799999, 0.8, 1}
		if len(stops) != len(want) {
			t.Fatalf("got %d stops, want %d", len(stops), len(want))
		}
		table := ResolveTable(NcbiBlast)
		for i, s := range stops {
			if s.Offset != want[i] {
				t.Errorf("stop %d offset = %v, want %v", i, s.Offset, want[i])
			}
			if RGBString(s.Color) != RGBString(table.Colors[i/2]) {
				t.Errorf("stop %d colour = %s", i, RGBString(s.Color))
			}
		}
	})

	t.Run("continuous", func(t *testing.T) {
		stops := GradientStrip(Sequential)
		if len(stops) != 5 {
			t.Fatalf("got %d stops, want 5", len(stops))
		}
		if stops[0].Offset != 0 || stops[4].Offset != 1 {
			t.Errorf("unexpected offsets: %v, %v", stops[0].Offset, stops[4].Offset)
		}
	})
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		name    string
		h, s, v float64
		want    [3]uint8
	}{
		{"red", 0, 1, 1, [3]uint8{255, 0, 0}},
		{"green", 1.0 / 3, 1, 1, [3]uint8{0, 255, 0}},
		{"blue", 2.0 / 3, 1, 1, [3]uint8{0, 0, 255}},
		{"black", 0, 0, 0, [3]uint8{0, 0, 0}},
		{"white", 0, 0, 1, [3]uint8{255, 255, 255}},
		{"hue wraps to red", 1, 1, 1, [3]uint8{255, 0, 0}},
		{"clamped inputs", -1, 2, 5, [3]uint8{255, 0, 0}},
		{"heatmap yellow", 1.0 / 6, 0.75, 1, [3]uint8{255, 255, 64}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HSVToRGB(tt.h, tt.s, tt.v); got != tt.want {
				t.Errorf("HSVToRGB(%v, %v, %v) = %v, want %v", tt.h, tt.s, tt.v, got, tt.want)
			}
		})
	}
}

var unitSteps = []float64{0, 0.25, 0.5, 0.75, 1.0}

func TestSampleFixed(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "rgb(255,64,64)"},
		{0.1, "rgb(255,64,64)"},
		{0.25, "rgb(255,255,64)"},
		{0.6, "rgb(64,255,64)"},
		{0.75, "rgb(64,255,255)"},
		{1.0, "rgb(64,64,255)"},
		{12, "rgb(64,64,255)"},
	}

	for _, tt := range tests {
		got, err := SampleFixed(tt.score, unitSteps, Heatmap)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("SampleFixed(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestSampleFixedNcbiBlast(t *testing.T) {
	steps := []float64{0, 40, 50, 80, 200}
	tests := []struct {
		score float64
		want  string
	}{
		{39.9, "rgb(0,0,0)"},
		{40, "rgb(0,0,255)"},
		{79, "rgb(0,255,0)"},
		{199, "rgb(255,0,255)"},
		{1200, "rgb(255,0,0)"},
	}

	for _, tt := range tests {
		got, err := SampleFixed(tt.score, steps, NcbiBlast)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != tt.want {
			t.Errorf("SampleFixed(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestSampleLog(t *testing.T) {
	steps := []float64{0, 1e-304, 1e-152, 1e-76, 1e-38}
	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{"step 1", 1e-304, "rgb(255,255,64)"},
		{"step 2", 1e-152, "rgb(64,255,64)"},
		{"step 3", 1e-76, "rgb(64,255,255)"},
		{"saturated", 1e-38, "rgb(64,64,255)"},
		{"above last", 0.5, "rgb(64,64,255)"},
		// Between a zero first step and 1e-304 the zero is read as the
		// smallest denormal, about 10^-323.3.
		{"inside first interval", 1e-310, "rgb(255,196,64)"},
		{"near second step", 1e-306, "rgb(255,235,64)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SampleLog(tt.score, steps, Heatmap)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SampleLog(%v) = %s, want %s", tt.score, got, tt.want)
			}
		})
	}
}

func TestSampleLogBelowFirstStep(t *testing.T) {
	steps := []float64{1e-5, 1e-4, 1e-3, 1e-2, 1e-1}
	got, err := SampleLog(1e-7, steps, Heatmap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "rgb(255,64,64)"; got != want {
		t.Errorf("SampleLog(1e-7) = %s, want %s", got, want)
	}
}

func TestSampleLogMidpoint(t *testing.T) {
	// Halfway between 1e-4 and 1e-2 in log space is 1e-3, a hue of 0.5/6.
	steps := []float64{1e-4, 1e-2, 1, 10, 100}
	got, err := SampleLog(1e-3, steps, Heatmap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := HSVToRGB(0.5/6, 0.75, 1)
	if got != RGBString(rgb(want[0], want[1], want[2])) {
		t.Errorf("SampleLog(1e-3) = %s, want %v", got, want)
	}
}

func TestSampleLinear(t *testing.T) {
	tests := []struct {
		name   string
		score  float64
		scheme ColorScheme
		want   string
	}{
		{"first key", 0.0001, Heatmap, "rgb(255,64,64)"},
		{"second key", 0.25, Heatmap, "rgb(255,255,64)"},
		{"quarter way", 0.3125, Heatmap, "rgb(207,255,64)"},
		{"last key", 1, Heatmap, "rgb(64,64,255)"},
		{"beyond last", 3, Greyscale, "rgb(64,64,64)"},
		{"greyscale middle", 0.5, Greyscale, "rgb(160,160,160)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SampleLinear(tt.score, unitSteps, tt.scheme)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("SampleLinear(%v) = %s, want %s", tt.score, got, tt.want)
			}
		})
	}
}

func TestSampleLinearUnevenSteps(t *testing.T) {
	// 50 is halfway through the second step so lands at key 0.375.
	steps := []float64{0, 40, 60, 80, 100}
	got, err := LinearColor(50, steps, Heatmap)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	table := ResolveTable(Heatmap)
	want := table.Colors[1].BlendRgb(table.Colors[2], 0.5)
	if RGBString(got) != RGBString(want) {
		t.Errorf("LinearColor(50) = %s, want %s", RGBString(got), RGBString(want))
	}
}

func TestZeroScoreShortCircuit(t *testing.T) {
	steps := []float64{0, 1e-10, 1e-5, 1e-2, 1}
	for _, scheme := range allSchemes {
		want := RGBString(ResolveTable(scheme).Colors[0])
		for name, sample := range map[string]func(float64, []float64, ColorScheme) (string, error){
			"fixed":  SampleFixed,
			"log":    SampleLog,
			"linear": SampleLinear,
		} {
			got, err := sample(0, steps, scheme)
			if err != nil {
				t.Fatalf("%s/%s: unexpected error: %v", scheme, name, err)
			}
			if got != want {
				t.Errorf("%s/%s: zero score = %s, want %s", scheme, name, got, want)
			}
		}
	}
}

func TestLengthMismatch(t *testing.T) {
	steps := []float64{0, 1, 2}
	for name, sample := range map[string]func(float64, []float64, ColorScheme) (string, error){
		"fixed":  SampleFixed,
		"log":    SampleLog,
		"linear": SampleLinear,
	} {
		if _, err := sample(1, steps, Heatmap); !errors.Is(err, ErrLengthMismatch) {
			t.Errorf("%s: expected ErrLengthMismatch, got %v", name, err)
		}
	}
}
