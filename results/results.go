// Package results decodes sequence similarity search output and flattened
// InterPro matches, and aggregates the scores the colour scale is built from.
package results

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/matt-g-everett/sssviz/scale"
)

// ErrNoQuery is returned when a result set does not declare a query length.
var ErrNoQuery = errors.New("result set has no query length")

// HSP is a single high-scoring segment pair of a hit.
type HSP struct {
	Num       int     `json:"hsp_num"`
	Score     float64 `json:"hsp_score"`
	BitScore  float64 `json:"hsp_bit_score"`
	Expect    float64 `json:"hsp_expect"`
	AlignLen  int     `json:"hsp_align_len"`
	Identity  float64 `json:"hsp_identity"`
	Positive  float64 `json:"hsp_positive"`
	QueryFrom int     `json:"hsp_query_from"`
	QueryTo   int     `json:"hsp_query_to"`
	HitFrom   int     `json:"hsp_hit_from"`
	HitTo     int     `json:"hsp_hit_to"`
}

// Value gets the score of the given type. Identity and similarity are
// percentages.
func (h HSP) Value(scoreType scale.ScoreType) float64 {
	switch scoreType {
	case scale.BitScore:
		return h.BitScore
	case scale.Identity:
		return h.Identity
	case scale.Similarity:
		return h.Positive
	default:
		return h.Expect
	}
}

// Hit is a database sequence with one or more alignments to the query.
type Hit struct {
	Num  int    `json:"hit_num"`
	DB   string `json:"hit_db"`
	ID   string `json:"hit_id"`
	Acc  string `json:"hit_acc"`
	Desc string `json:"hit_desc"`
	URL  string `json:"hit_url"`
	Len  int    `json:"hit_len"`
	Hsps []HSP  `json:"hit_hsps"`
}

// Results is the output of one search job.
type Results struct {
	Program  string `json:"program"`
	Version  string `json:"version"`
	Command  string `json:"command"`
	QueryID  string `json:"query_id"`
	QueryDef string `json:"query_def"`
	QueryLen int    `json:"query_len"`
	Hits     []Hit  `json:"hits"`
}

// Load decodes a search result set.
func Load(r io.Reader) (*Results, error) {
	res := new(Results)
	if err := json.NewDecoder(r).Decode(res); err != nil {
		return nil, fmt.Errorf("decoding results: %w", err)
	}
	if res.QueryLen <= 0 {
		return nil, ErrNoQuery
	}
	return res, nil
}

// Displayed gets the first n hits that can be drawn. Hits without a length
// are skipped since their tracks would have no extent. A non-positive n
// keeps every hit.
func (r *Results) Displayed(n int) []Hit {
	hits := make([]Hit, 0, len(r.Hits))
	for _, h := range r.Hits {
		if n > 0 && len(hits) == n {
			break
		}
		if h.Len > 0 {
			hits = append(hits, h)
		}
	}
	return hits
}

// MaxHitLen gets the longest subject among the hits.
func MaxHitLen(hits []Hit) int {
	longest := 0
	for _, h := range hits {
		if h.Len > longest {
			longest = h.Len
		}
	}
	return longest
}

// Scores collects the scores of every HSP in the hits.
func Scores(hits []Hit, scoreType scale.ScoreType) []float64 {
	var scores []float64
	for _, h := range hits {
		for _, hsp := range h.Hsps {
			scores = append(scores, hsp.Value(scoreType))
		}
	}
	return scores
}

// Aggregate gets the extremes of a set of scores. When no score is above zero
// MinNonZero takes the maximum.
func Aggregate(scores []float64) scale.Extremes {
	if len(scores) == 0 {
		return scale.Extremes{}
	}

	ext := scale.Extremes{Min: math.Inf(1), Max: math.Inf(-1), MinNonZero: math.Inf(1)}
	for _, s := range scores {
		ext.Min = math.Min(ext.Min, s)
		ext.Max = math.Max(ext.Max, s)
		if s > 0 {
			ext.MinNonZero = math.Min(ext.MinNonZero, s)
		}
	}

	if math.IsInf(ext.MinNonZero, 1) {
		ext.MinNonZero = ext.Max
	}
	return ext
}
