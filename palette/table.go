// Package palette holds the named colour ramps used to fill alignments and
// domains, and the samplers that turn a score into a fill colour.
package palette

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorScheme identifies one of the named colour tables.
type ColorScheme int

const (
	Heatmap ColorScheme = iota
	NcbiBlast
	Greyscale
	Sequential
	Divergent
	Qualitative
)

var schemeNames = map[ColorScheme]string{
	Heatmap:     "heatmap",
	NcbiBlast:   "ncbiblast",
	Greyscale:   "greyscale",
	Sequential:  "sequential",
	Divergent:   "divergent",
	Qualitative: "qualitative",
}

func (c ColorScheme) String() string {
	if name, ok := schemeNames[c]; ok {
		return name
	}
	return schemeNames[Heatmap]
}

// IsBucket reports whether the scheme is drawn as discrete buckets rather
// than a continuous ramp.
func (c ColorScheme) IsBucket() bool {
	switch c {
	case Qualitative, NcbiBlast:
		return true
	default:
		return false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c ColorScheme) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names resolve to
// Heatmap.
func (c *ColorScheme) UnmarshalText(text []byte) error {
	*c = ParseColorScheme(string(text))
	return nil
}

// ParseColorScheme resolves a scheme name, falling back to Heatmap.
func ParseColorScheme(name string) ColorScheme {
	name = strings.ToLower(strings.TrimSpace(name))
	for scheme, n := range schemeNames {
		if n == name {
			return scheme
		}
	}
	return Heatmap
}

// ColorStepTable maps each of its keys to a colour.
type ColorStepTable struct {
	Keys   []float64
	Colors []colorful.Color
}

// Len is the number of keys in the table.
func (t ColorStepTable) Len() int {
	return len(t.Keys)
}

// MustParseHex parses a hex colour and panics if it is malformed. It is meant
// for colour table literals.
func MustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("MustParseHex: " + err.Error())
	}
	return c
}

func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255.0, G: float64(g) / 255.0, B: float64(b) / 255.0}
}

var unitKeys = []float64{0, 0.25, 0.5, 0.75, 1}

var tables = map[ColorScheme]ColorStepTable{
	Heatmap: {
		Keys: unitKeys,
		Colors: []colorful.Color{
			rgb(255, 64, 64),  // Red
			rgb(255, 255, 64), // Yellow
			rgb(64, 255, 64),  // Green
			rgb(64, 255, 255), // Cyan
			rgb(64, 64, 255),  // Blue
		},
	},
	Greyscale: {
		Keys: unitKeys,
		Colors: []colorful.Color{
			rgb(255, 255, 255),
			rgb(208, 208, 208),
			rgb(160, 160, 160),
			rgb(112, 112, 112),
			rgb(64, 64, 64),
		},
	},
	Sequential: {
		Keys: unitKeys,
		Colors: []colorful.Color{
			MustParseHex("#eff3ff"),
			MustParseHex("#bdd7e7"),
			MustParseHex("#6baed6"),
			MustParseHex("#3182bd"),
			MustParseHex("#08519c"),
		},
	},
	Divergent: {
		Keys: unitKeys,
		Colors: []colorful.Color{
			MustParseHex("#d7191c"),
			MustParseHex("#fdae61"),
			MustParseHex("#ffffbf"),
			MustParseHex("#a6d96a"),
			MustParseHex("#1a9641"),
		},
	},
	Qualitative: {
		Keys: unitKeys,
		Colors: []colorful.Color{
			MustParseHex("#e41a1c"),
			MustParseHex("#377eb8"),
			MustParseHex("#4daf4a"),
			MustParseHex("#984ea3"),
			MustParseHex("#ff7f00"),
		},
	},
	// Bit score buckets as coloured by NCBI BLAST+.
	NcbiBlast: {
		Keys: []float64{0, 40, 50, 80, 200},
		Colors: []colorful.Color{
			rgb(0, 0, 0),     // < 40
			rgb(0, 0, 255),   // 40-50
			rgb(0, 255, 0),   // 50-80
			rgb(255, 0, 255), // 80-200
			rgb(255, 0, 0),   // >= 200
		},
	},
}

// ResolveTable gets the table for a scheme. Unknown schemes get the heatmap.
func ResolveTable(scheme ColorScheme) ColorStepTable {
	if t, ok := tables[scheme]; ok {
		return t
	}
	return tables[Heatmap]
}

// ColorStop is a single stop of a legend gradient strip.
type ColorStop struct {
	Offset float64
	Color  colorful.Color
}

// bandOffsets give five flat bands, each ending just short of the next.
var bandOffsets = []float64{0, 0.199999, 0.2, 0.399999, 0.4, 0.599999, 0.6, 0.799999, 0.8, 1}

// GradientStrip gets the stops used to paint the legend bar. Bucket schemes
// get five flat bands of equal width; continuous schemes get one stop per key.
func GradientStrip(scheme ColorScheme) []ColorStop {
	t := ResolveTable(scheme)
	if !scheme.IsBucket() {
		stops := make([]ColorStop, t.Len())
		for i, key := range t.Keys {
			stops[i] = ColorStop{Offset: key, Color: t.Colors[i]}
		}
		return stops
	}

	stops := make([]ColorStop, len(bandOffsets))
	for i, offset := range bandOffsets {
		stops[i] = ColorStop{Offset: offset, Color: t.Colors[i/2]}
	}
	return stops
}
