package palette

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

func clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// hsv builds a colour from hue, saturation and value in [0, 1]. A hue of 1
// wraps round to red.
func hsv(h, s, v float64) colorful.Color {
	h, s, v = clamp01(h), clamp01(s), clamp01(v)
	return colorful.Hsv(math.Mod(h*360, 360), s, v).Clamped()
}

// HSVToRGB converts hue, saturation and value, each clamped to [0, 1], into
// 8 bit RGB components.
func HSVToRGB(h, s, v float64) [3]uint8 {
	r, g, b := hsv(h, s, v).RGB255()
	return [3]uint8{r, g, b}
}
