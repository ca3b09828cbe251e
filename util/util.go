package util

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"

	"github.com/fogleman/ease"
)

// Memoizer caches generated look-up tables by length.
type Memoizer map[int][]float64

// GenerateRamp creates an eased look-up table rising from 0 to 1 over length
// entries.
func GenerateRamp(length int) []float64 {
	if length < 2 {
		return []float64{1}
	}

	lut := make([]float64, length)
	for i := range lut {
		lut[i] = ease.InOutQuad(float64(i) / float64(length-1))
	}
	return lut
}

// GenerateRampMemoized is GenerateRamp backed by a Memoizer.
func GenerateRampMemoized(length int, memoizer Memoizer) []float64 {
	if lut, found := memoizer[length]; found {
		return lut
	}
	lut := GenerateRamp(length)
	memoizer[length] = lut
	return lut
}

// ContentKey hashes the printed form of its parts into a cache key.
func ContentKey(parts ...interface{}) string {
	h := sha1.New()
	for _, p := range parts {
		fmt.Fprintf(h, "%+v\x00", p)
	}
	return hex.EncodeToString(h.Sum(nil))
}
