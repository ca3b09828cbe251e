package scale

import (
	"math"

	"github.com/matt-g-everett/sssviz/palette"
)

// Below this the logarithms used to space e-value steps lose precision.
const evalueUnderflow = 1e-304

var (
	bitScoreSteps         = []float64{0, 40, 50, 80, 200}
	bucketPercentSteps    = []float64{0, 20, 40, 60, 80}
	continuousPercentStep = []float64{0, 25, 50, 75, 100}
	bucketEValueSteps     = []float64{0, 0.001, 0.01, 0.1, 1}

	// 10^(-304/2^k) for k = 0..3.
	underflowSteps = []float64{0, 1e-304, 1e-152, 1e-76, 1e-38}

	// Fixed e-value ramps over [0, 10], keyed by decades per step.
	fixedEValueSteps = map[int][]float64{
		1: {0, 1e-2, 1e-1, 1, 10},
		2: {0, 1e-5, 1e-3, 1e-1, 10},
		4: {0, 1e-11, 1e-7, 1e-3, 10},
	}
)

// Steps gets the five gradient steps for the observed score extremes.
//
// Bucket schemes (qualitative, ncbiblast) treat each step as the lower bound
// of a bucket; continuous schemes treat the steps as the key frames of a ramp.
func Steps(ext Extremes, mode Mode, scoreType ScoreType, scheme palette.ColorScheme) []float64 {
	bucket := scheme.IsBucket()

	switch mode {
	case Fixed:
		if steps := fixedSteps(ext, scoreType, bucket); steps != nil {
			return steps
		}
	case Dynamic:
		if scoreType == EValue {
			return dynamicEValueSteps(ext, bucket)
		}
	}

	// Every other combination gets an even split of the observed range.
	return evenSplit(ext.Min, ext.Max, bucket)
}

func clone(steps []float64) []float64 {
	out := make([]float64, len(steps))
	copy(out, steps)
	return out
}

func fixedSteps(ext Extremes, scoreType ScoreType, bucket bool) []float64 {
	switch scoreType {
	case BitScore:
		return clone(bitScoreSteps)
	case Identity, Similarity:
		if bucket {
			return clone(bucketPercentSteps)
		}
		return clone(continuousPercentStep)
	case EValue:
		if bucket {
			return clone(bucketEValueSteps)
		}
		diff := math.Log10(ext.MinNonZero) - math.Log10(ext.Max)
		return clone(fixedEValueSteps[decadesPerStep(diff)])
	default:
		return nil
	}
}

// decadesPerStep widens the spacing of log steps as the observed e-values
// span more orders of magnitude.
func decadesPerStep(diff float64) int {
	switch d := math.Abs(diff); {
	case d <= 2:
		return 1
	case d <= 4:
		return 2
	default:
		return 4
	}
}

func dynamicEValueSteps(ext Extremes, bucket bool) []float64 {
	switch {
	case ext.Max < evalueUnderflow:
		return clone(underflowSteps)
	case ext.Min < 1 && ext.Max <= 1:
		return subUnitSteps(ext, bucket)
	case ext.Min < 1:
		return spanningSteps(ext, bucket)
	default:
		return evenSplit(ext.Min, ext.Max, bucket)
	}
}

// subUnitSteps spaces steps evenly in log space when every e-value is at
// most 1. A zero minimum is placed one decade below the smallest non-zero
// e-value.
func subUnitSteps(ext Extremes, bucket bool) []float64 {
	maxLog := math.Log10(ext.Max)

	var second float64
	if ext.Min == 0 {
		second = math.Log10(ext.MinNonZero) - 1
	} else {
		minLog := math.Log10(ext.Min)
		second = minLog + (maxLog-minLog)/4
	}

	if bucket {
		g := (maxLog - second) / 3
		return []float64{ext.Min, pow10(second), pow10(second + g), pow10(second + 2*g), ext.Max}
	}
	g := (maxLog - second) / 2
	return []float64{ext.Min, pow10(second), pow10(second + g), ext.Max, 1}
}

// spanningSteps handles e-values either side of 1, where the ramp mixes log
// steps below 1 with linear steps above it.
func spanningSteps(ext Extremes, bucket bool) []float64 {
	diff := math.Log10(ext.MinNonZero) - math.Log10(ext.Max)
	maxLog := math.Log10(ext.Max)
	above := ext.Max - 1

	switch d := math.Abs(diff); {
	case d <= 2:
		return evenSplit(ext.Min, ext.Max, bucket)
	case d <= 4:
		if bucket {
			return []float64{ext.Min, 1, 1 + above/4, 1 + above/2, 1 + 3*above/4}
		}
		return []float64{ext.Min, 1, 1 + above/3, 1 + 2*above/3, ext.Max}
	default:
		low := math.Min(math.Log10(ext.MinNonZero), 0)
		if bucket {
			return []float64{ext.Min, pow10(low / 2), 1, pow10(maxLog / 3), pow10(2 * maxLog / 3)}
		}
		return []float64{ext.Min, pow10(low / 2), 1, pow10(maxLog / 2), ext.Max}
	}
}

// evenSplit divides [min, max] into five buckets, or into four intervals
// whose ends are min and max for a continuous ramp.
func evenSplit(min, max float64, bucket bool) []float64 {
	parts := 4.0
	if bucket {
		parts = 5.0
	}

	step := (max - min) / parts
	steps := make([]float64, 5)
	for i := range steps {
		steps[i] = min + float64(i)*step
	}
	if !bucket {
		steps[4] = max
	}
	return steps
}

func pow10(x float64) float64 {
	return math.Pow(10, x)
}
