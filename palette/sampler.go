package palette

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrLengthMismatch is returned when the gradient steps and the colour table
// do not have the same number of entries.
var ErrLengthMismatch = errors.New("colour table and gradient steps differ in length")

// Log sampler colours sit on an HSV rainbow with these fixed components.
const (
	logSaturation = 0.75
	logValue      = 1.0
)

// Stands in for log10(0) at a zero lower bound.
var minLog10 = math.Log10(math.SmallestNonzeroFloat64)

// RGBString formats a colour as a canvas fill string, e.g. "rgb(255,64,64)".
func RGBString(c colorful.Color) string {
	r, g, b := c.Clamped().RGB255()
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

func tableFor(steps []float64, scheme ColorScheme) (ColorStepTable, error) {
	t := ResolveTable(scheme)
	if t.Len() != len(steps) {
		return t, fmt.Errorf("%w: scheme %s has %d keys, got %d steps",
			ErrLengthMismatch, scheme, t.Len(), len(steps))
	}
	return t, nil
}

// position gets the continuous index of score within steps, in
// [0, len(steps)-1], interpolating with scaled inside the containing step.
func position(score float64, steps []float64, scaled func(float64) float64) float64 {
	last := len(steps) - 1
	if score >= steps[last] {
		return float64(last)
	}

	for i := 0; i < last; i++ {
		lo, hi := steps[i], steps[i+1]
		if lo <= score && score < hi {
			return float64(i) + (scaled(score)-scaled(lo))/(scaled(hi)-scaled(lo))
		}
	}

	// Below the first step.
	return 0
}

func log10OrMin(v float64) float64 {
	if v == 0 {
		return minLog10
	}
	return math.Log10(v)
}

func linear(v float64) float64 {
	return v
}

// FixedColor gets the colour of the bucket that score falls into. Buckets
// start at steps[1..]; anything below steps[1] is the first bucket.
func FixedColor(score float64, steps []float64, scheme ColorScheme) (colorful.Color, error) {
	t, err := tableFor(steps, scheme)
	if err != nil {
		return colorful.Color{}, err
	}
	if score == 0 {
		return t.Colors[0], nil
	}

	bucket := 0
	for i := 1; i < len(steps); i++ {
		if score < steps[i] {
			break
		}
		bucket = i
	}
	return t.Colors[bucket], nil
}

// LogColor gets a colour from a rainbow ramp, interpolating score in log10
// space between the steps.
func LogColor(score float64, steps []float64, scheme ColorScheme) (colorful.Color, error) {
	t, err := tableFor(steps, scheme)
	if err != nil {
		return colorful.Color{}, err
	}
	if score == 0 {
		return t.Colors[0], nil
	}

	h := position(score, steps, log10OrMin)
	return hsv(h/6, logSaturation, logValue), nil
}

// LinearColor interpolates score linearly between the steps and blends the
// two nearest colours of the table.
func LinearColor(score float64, steps []float64, scheme ColorScheme) (colorful.Color, error) {
	t, err := tableFor(steps, scheme)
	if err != nil {
		return colorful.Color{}, err
	}
	if score == 0 {
		return t.Colors[0], nil
	}

	last := len(steps) - 1
	h := position(score, steps, linear)
	k := t.Keys[0] + h/float64(last)*(t.Keys[last]-t.Keys[0])

	for i := 0; i < last; i++ {
		k1, k2 := t.Keys[i], t.Keys[i+1]
		if k1 <= k && k <= k2 {
			return t.Colors[i].BlendRgb(t.Colors[i+1], (k-k1)/(k2-k1)), nil
		}
	}

	if k < t.Keys[0] {
		return t.Colors[0], nil
	}
	return t.Colors[last], nil
}

func sampleString(sample func(float64, []float64, ColorScheme) (colorful.Color, error),
	score float64, steps []float64, scheme ColorScheme) (string, error) {

	c, err := sample(score, steps, scheme)
	if err != nil {
		return "", err
	}
	return RGBString(c), nil
}

// SampleFixed is FixedColor formatted as an rgb() string.
func SampleFixed(score float64, steps []float64, scheme ColorScheme) (string, error) {
	return sampleString(FixedColor, score, steps, scheme)
}

// SampleLog is LogColor formatted as an rgb() string.
func SampleLog(score float64, steps []float64, scheme ColorScheme) (string, error) {
	return sampleString(LogColor, score, steps, scheme)
}

// SampleLinear is LinearColor formatted as an rgb() string.
func SampleLinear(score float64, steps []float64, scheme ColorScheme) (string, error) {
	return sampleString(LinearColor, score, steps, scheme)
}
