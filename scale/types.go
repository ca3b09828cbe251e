// Package scale derives the gradient steps that map a set of observed scores
// onto the colour tables, and formats them as legend labels.
package scale

import (
	"strings"
)

// Mode is how the gradient steps follow the observed scores.
type Mode int

const (
	Dynamic Mode = iota
	Fixed
)

func (m Mode) String() string {
	if m == Fixed {
		return "fixed"
	}
	return "dynamic"
}

// ParseMode resolves a scale mode name, falling back to Dynamic.
func ParseMode(name string) Mode {
	if strings.EqualFold(strings.TrimSpace(name), "fixed") {
		return Fixed
	}
	return Dynamic
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	*m = ParseMode(string(text))
	return nil
}

// ScoreType is the statistic used to colour an alignment.
type ScoreType int

const (
	EValue ScoreType = iota
	BitScore
	Identity
	Similarity
)

var scoreTypeNames = map[ScoreType]string{
	EValue:     "evalue",
	BitScore:   "bitscore",
	Identity:   "identity",
	Similarity: "similarity",
}

func (s ScoreType) String() string {
	if name, ok := scoreTypeNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseScoreType resolves a score type name, falling back to EValue.
func ParseScoreType(name string) ScoreType {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range scoreTypeNames {
		if n == name {
			return s
		}
	}
	return EValue
}

// MarshalText implements encoding.TextMarshaler.
func (s ScoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *ScoreType) UnmarshalText(text []byte) error {
	*s = ParseScoreType(string(text))
	return nil
}

// Extremes are the observed score bounds over the displayed alignments.
// MinNonZero is the smallest score above zero, needed to take logarithms of
// e-values that underflowed to zero.
type Extremes struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	MinNonZero float64 `json:"minNonZero"`
}
