package results

import (
	"encoding/json"
	"fmt"
	"io"
)

// Location is one stretch of the query covered by a domain match.
type Location struct {
	Start int     `json:"start"`
	End   int     `json:"end"`
	Score float64 `json:"score"`
}

// Match is an InterPro member database signature found in the query.
type Match struct {
	Accession string     `json:"accession"`
	Name      string     `json:"name"`
	Database  string     `json:"database"`
	Type      string     `json:"type"`
	Entry     string     `json:"entry"`
	Locations []Location `json:"locations"`
}

// Domains is a flattened InterPro prediction for one query.
type Domains struct {
	QueryID  string  `json:"query_id"`
	QueryLen int     `json:"query_len"`
	Matches  []Match `json:"matches"`
}

// LoadDomains decodes a flattened domain prediction.
func LoadDomains(r io.Reader) (*Domains, error) {
	d := new(Domains)
	if err := json.NewDecoder(r).Decode(d); err != nil {
		return nil, fmt.Errorf("decoding domains: %w", err)
	}
	if d.QueryLen <= 0 {
		return nil, ErrNoQuery
	}
	return d, nil
}

// Scores collects the score of every match location.
func (d *Domains) Scores() []float64 {
	var scores []float64
	for _, m := range d.Matches {
		for _, l := range m.Locations {
			scores = append(scores, l.Score)
		}
	}
	return scores
}
