package stream

import (
	"encoding/json"

	"github.com/matt-g-everett/sssviz/diagram"
)

// Frame is a diagram ready to be sent to a drawing client.
type Frame struct {
	Seq     uint32           `json:"seq"`
	Diagram *diagram.Diagram `json:"diagram"`
}

// NewFrame creates a new Frame instance.
func NewFrame(d *diagram.Diagram) *Frame {
	f := new(Frame)
	f.Diagram = d
	return f
}

// InterpolateFrame blends the fills of two frames of the same data. The
// geometry is taken from f2. Legend stops are only blended when both legends
// have the same number of stops, otherwise f2's stops are used.
func (f *Frame) InterpolateFrame(f2 *Frame, transitionPoint float64) *Frame {
	out := NewFrame(f2.Diagram.Clone())
	from := f.Diagram.Fills()
	to := out.Diagram.Fills()

	// Fills lists the legend stops first, then the shapes.
	fromStops, toStops := len(f.Diagram.Legend.Stops), len(out.Diagram.Legend.Stops)
	if fromStops == toStops {
		blendFills(from[:fromStops], to[:toStops], transitionPoint)
	}
	blendFills(from[fromStops:], to[toStops:], transitionPoint)
	return out
}

func blendFills(from, to []*diagram.Fill, transitionPoint float64) {
	if len(from) != len(to) {
		return
	}
	for i := range to {
		to[i].Color = from[i].Color.BlendHcl(to[i].Color, transitionPoint).Clamped()
	}
}

// MarshalBinary converts a Frame into the JSON payload sent to clients.
func (f *Frame) MarshalBinary() (data []byte, err error) {
	return json.Marshal(f)
}
