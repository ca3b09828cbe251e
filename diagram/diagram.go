// Package diagram lays out a search result set: a legend, one track per hit
// split into query and subject panels, and an optional domain panel.
package diagram

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/sssviz/geometry"
	"github.com/matt-g-everett/sssviz/palette"
	"github.com/matt-g-everett/sssviz/results"
	"github.com/matt-g-everett/sssviz/scale"
)

// Fill is a shape colour, serialised as an rgb() string.
type Fill struct {
	colorful.Color
}

// MarshalText implements encoding.TextMarshaler.
func (f Fill) MarshalText() ([]byte, error) {
	return []byte(palette.RGBString(f.Color)), nil
}

// Rect is a filled rectangle on a track.
type Rect struct {
	X     float64 `json:"x"`
	Width float64 `json:"width"`
	Score float64 `json:"score"`
	Fill  Fill    `json:"fill"`
}

// Alignment is one HSP drawn on both panels of its track.
type Alignment struct {
	Query   Rect `json:"query"`
	Subject Rect `json:"subject"`
}

// Track is a hit with its query and subject panels.
type Track struct {
	Acc        string               `json:"acc"`
	Desc       string               `json:"desc"`
	Panels     geometry.PanelBounds `json:"panels"`
	Alignments []Alignment          `json:"alignments"`
}

// DomainTrack is one domain signature on the query.
type DomainTrack struct {
	Accession string        `json:"accession"`
	Name      string        `json:"name"`
	Database  string        `json:"database"`
	Span      geometry.Span `json:"span"`
	Locations []Rect        `json:"locations"`
}

// Tick is a labelled mark on the legend bar.
type Tick struct {
	X      float64 `json:"x"`
	LabelX float64 `json:"labelX"`
	Label  string  `json:"label"`
}

// Stop is a colour stop of the legend bar gradient.
type Stop struct {
	Offset float64 `json:"offset"`
	Fill   Fill    `json:"fill"`
}

// Legend is the colour key for the current controls.
type Legend struct {
	Bar      geometry.Span  `json:"bar"`
	Extremes scale.Extremes `json:"extremes"`
	Steps    []float64      `json:"steps"`
	Ticks    []Tick         `json:"ticks"`
	Stops    []Stop         `json:"stops"`
}

// Diagram is the complete layout of one render pass.
type Diagram struct {
	Controls Controls      `json:"controls"`
	Width    float64       `json:"width"`
	Legend   Legend        `json:"legend"`
	Tracks   []Track       `json:"tracks"`
	Domains  []DomainTrack `json:"domains,omitempty"`
}

// Input is the data a diagram is drawn from. Domains may be nil.
type Input struct {
	Results    *results.Results
	Domains    *results.Domains
	NumberHits int
}

// Build lays out the input with the given layout and controls.
func Build(in Input, layout Layout, controls Controls) (*Diagram, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	d := &Diagram{Controls: controls, Width: layout.CanvasWidth}

	var hits []results.Hit
	if in.Results != nil {
		hits = in.Results.Displayed(in.NumberHits)
	}
	ext := results.Aggregate(results.Scores(hits, controls.ScoreType))
	steps := scale.Steps(ext, controls.ScaleType, controls.ScoreType, controls.ColorScheme)
	d.Legend = buildLegend(layout, controls.ColorScheme, controls.ScoreType, ext, steps)
	if len(hits) == 0 && in.Domains != nil {
		// Only domains are drawn, so the legend shows their e-value steps.
		ext, steps := domainSteps(in.Domains, controls)
		d.Legend = buildLegend(layout, controls.ColorScheme, scale.EValue, ext, steps)
	}

	if len(hits) > 0 {
		tracks, err := buildTracks(in.Results.QueryLen, hits, layout, controls, steps)
		if err != nil {
			return nil, err
		}
		d.Tracks = tracks
	}

	if in.Domains != nil {
		domains, err := buildDomains(in.Domains, layout, controls)
		if err != nil {
			return nil, err
		}
		d.Domains = domains
	}

	return d, nil
}

func buildLegend(layout Layout, scheme palette.ColorScheme, scoreType scale.ScoreType, ext scale.Extremes, steps []float64) Legend {
	bar := geometry.SimpleBounds(layout.px(layout.ScaleWidth), layout.px(layout.ScaleLabelWidth), layout.px(layout.MarginWidth))

	ticks := make([]Tick, len(steps))
	for i, s := range steps {
		x := bar.Start + bar.Width()*float64(i)/float64(len(steps)-1)
		label := scale.FormatStep(s, scoreType)
		ticks[i] = Tick{X: x, LabelX: x - geometry.TextLegendPaddingFactor(label), Label: label}
	}

	strip := palette.GradientStrip(scheme)
	stops := make([]Stop, len(strip))
	for i, s := range strip {
		stops[i] = Stop{Offset: s.Offset, Fill: Fill{s.Color}}
	}

	return Legend{Bar: bar, Extremes: ext, Steps: steps, Ticks: ticks, Stops: stops}
}

func residues(from, to int) (float64, float64) {
	lo, hi := from, to
	if lo > hi {
		lo, hi = hi, lo
	}
	// 1-based inclusive residues to 0-based half-open offsets.
	return float64(lo - 1), float64(hi)
}

func buildTracks(queryLen int, hits []results.Hit, layout Layout, controls Controls, steps []float64) ([]Track, error) {
	q := float64(queryLen)
	s := float64(results.MaxHitLen(hits))

	tracks := make([]Track, len(hits))
	for i, hit := range hits {
		hitLen := float64(hit.Len)
		b := geometry.QuerySubjectBounds(q, s, hitLen, layout.px(layout.ContentWidth),
			layout.px(layout.ContentScoringWidth), layout.px(layout.ContentLabelWidth), layout.px(layout.MarginWidth))

		track := Track{Acc: hit.Acc, Desc: hit.Desc, Panels: b}
		for _, hsp := range hit.Hsps {
			score := hsp.Value(controls.ScoreType)
			c, err := scale.Color(score, steps, controls.ColorScheme, controls.ScoreType)
			if err != nil {
				return nil, fmt.Errorf("hit %s: %w", hit.Acc, err)
			}

			var a Alignment
			qFrom, qTo := residues(hsp.QueryFrom, hsp.QueryTo)
			a.Query.X, a.Query.Width = geometry.DomainBounds(b.Query.Start, b.Query.End, q, qFrom, qTo, 0)
			hFrom, hTo := residues(hsp.HitFrom, hsp.HitTo)
			a.Subject.X, a.Subject.Width = geometry.DomainBounds(b.Subject.Start, b.Subject.End, hitLen, hFrom, hTo, 0)
			a.Query.Score, a.Subject.Score = score, score
			a.Query.Fill, a.Subject.Fill = Fill{c}, Fill{c}

			track.Alignments = append(track.Alignments, a)
		}
		tracks[i] = track
	}
	return tracks, nil
}

// Domain locations are always coloured by their e-values.
// domainSteps gets the steps domain locations are coloured with. Domain
// scores are always e-values.
func domainSteps(dom *results.Domains, controls Controls) (scale.Extremes, []float64) {
	ext := results.Aggregate(dom.Scores())
	return ext, scale.Steps(ext, controls.ScaleType, scale.EValue, controls.ColorScheme)
}

func buildDomains(dom *results.Domains, layout Layout, controls Controls) ([]DomainTrack, error) {
	_, steps := domainSteps(dom, controls)
	span := geometry.SimpleBounds(layout.px(layout.ContentWidth), layout.px(layout.ContentLabelWidth), layout.px(layout.MarginWidth))
	q := float64(dom.QueryLen)
	margin := layout.px(layout.MarginWidth)

	tracks := make([]DomainTrack, 0, len(dom.Matches))
	for _, m := range dom.Matches {
		track := DomainTrack{Accession: m.Accession, Name: m.Name, Database: m.Database, Span: span}
		for _, l := range m.Locations {
			c, err := scale.Color(l.Score, steps, controls.ColorScheme, scale.EValue)
			if err != nil {
				return nil, fmt.Errorf("domain %s: %w", m.Accession, err)
			}
			from, to := residues(l.Start, l.End)
			x, w := geometry.DomainBounds(span.Start, span.End, q, from, to, margin)
			track.Locations = append(track.Locations, Rect{X: x, Width: math.Max(w, 0), Score: l.Score, Fill: Fill{c}})
		}
		tracks = append(tracks, track)
	}
	return tracks, nil
}

// Fills gets every fill of the diagram in a stable order, so that two
// diagrams of the same data can be blended shape by shape.
func (d *Diagram) Fills() []*Fill {
	var fills []*Fill
	for i := range d.Legend.Stops {
		fills = append(fills, &d.Legend.Stops[i].Fill)
	}
	for i := range d.Tracks {
		for j := range d.Tracks[i].Alignments {
			a := &d.Tracks[i].Alignments[j]
			fills = append(fills, &a.Query.Fill, &a.Subject.Fill)
		}
	}
	for i := range d.Domains {
		for j := range d.Domains[i].Locations {
			fills = append(fills, &d.Domains[i].Locations[j].Fill)
		}
	}
	return fills
}

// Clone gets a deep copy of the diagram.
func (d *Diagram) Clone() *Diagram {
	out := *d
	out.Legend.Steps = append([]float64(nil), d.Legend.Steps...)
	out.Legend.Ticks = append([]Tick(nil), d.Legend.Ticks...)
	out.Legend.Stops = append([]Stop(nil), d.Legend.Stops...)

	if d.Tracks != nil {
		out.Tracks = make([]Track, len(d.Tracks))
		for i, t := range d.Tracks {
			t.Alignments = append([]Alignment(nil), t.Alignments...)
			out.Tracks[i] = t
		}
	}
	if d.Domains != nil {
		out.Domains = make([]DomainTrack, len(d.Domains))
		for i, t := range d.Domains {
			t.Locations = append([]Rect(nil), t.Locations...)
			out.Domains[i] = t
		}
	}
	return &out
}
