package scale

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/sssviz/palette"
)

// UsesLog reports whether scores of this type are sampled on the logarithmic
// rainbow rather than the scheme's own colours.
func UsesLog(scheme palette.ColorScheme, scoreType ScoreType) bool {
	return scheme == palette.Heatmap && scoreType == EValue
}

// Color picks the sampler for the scheme and score type: buckets for bucket
// schemes, the log rainbow for heatmap e-values and a linear blend otherwise.
func Color(score float64, steps []float64, scheme palette.ColorScheme, scoreType ScoreType) (colorful.Color, error) {
	switch {
	case scheme.IsBucket():
		return palette.FixedColor(score, steps, scheme)
	case UsesLog(scheme, scoreType):
		return palette.LogColor(score, steps, scheme)
	default:
		return palette.LinearColor(score, steps, scheme)
	}
}

// Sample is Color formatted as an rgb() fill string.
func Sample(score float64, steps []float64, scheme palette.ColorScheme, scoreType ScoreType) (string, error) {
	c, err := Color(score, steps, scheme, scoreType)
	if err != nil {
		return "", err
	}
	return palette.RGBString(c), nil
}

// FormatStep formats a gradient step as a legend tick label. Small e-values
// are written in compact exponent form, e.g. "1e-5".
func FormatStep(v float64, scoreType ScoreType) string {
	if v == 0 {
		return "0"
	}
	if scoreType == EValue && math.Abs(v) < 1e-3 {
		return compactExp(v)
	}
	if math.Abs(v) < 1 {
		return strconv.FormatFloat(v, 'g', 3, 64)
	}
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}

func compactExp(v float64) string {
	s := strconv.FormatFloat(v, 'e', 1, 64)
	i := strings.IndexByte(s, 'e')
	mantissa := strings.TrimSuffix(s[:i], ".0")
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return s
	}
	return mantissa + "e" + strconv.Itoa(exp)
}
