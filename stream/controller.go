package stream

import (
	"fmt"
	"log"
	"sync"

	"github.com/matt-g-everett/sssviz/diagram"
	"github.com/matt-g-everett/sssviz/palette"
	"github.com/matt-g-everett/sssviz/scale"
	"github.com/matt-g-everett/sssviz/util"
)

// ControlMessage changes the colouring of the diagram. Empty fields are left
// unchanged.
type ControlMessage struct {
	Type        string `json:"type"`
	ColorScheme string `json:"colorScheme,omitempty"`
	ScaleType   string `json:"scaleType,omitempty"`
	ScoreType   string `json:"scoreType,omitempty"`
}

// Controller owns the current diagram and fades between diagrams when the
// controls change.
type Controller struct {
	mu sync.Mutex

	input    diagram.Input
	layout   diagram.Layout
	controls diagram.Controls

	frame     *Frame
	prevFrame *Frame
	nextFrame *Frame
	seq       uint32
	dirty     bool

	transitionFrames int
	transition       int
	memoizer         util.Memoizer
	cache            map[string]*diagram.Diagram
}

// NewController creates an instance of a Controller and renders the first
// frame.
func NewController(config Config, input diagram.Input) (*Controller, error) {
	c := new(Controller)
	c.input = input
	c.input.NumberHits = config.Display.NumberHits
	c.layout = config.Layout
	c.controls = config.Controls()
	c.transitionFrames = config.TransitionFrames()
	c.memoizer = util.Memoizer{}
	c.cache = make(map[string]*diagram.Diagram)

	d, err := c.build(c.controls)
	if err != nil {
		return nil, err
	}
	c.frame = c.stamp(d)
	c.dirty = true
	return c, nil
}

func (c *Controller) stamp(d *diagram.Diagram) *Frame {
	c.seq++
	f := NewFrame(d)
	f.Seq = c.seq
	return f
}

// build gets the diagram for the controls, rendering it only on a cache miss.
func (c *Controller) build(controls diagram.Controls) (*diagram.Diagram, error) {
	key := util.ContentKey(controls.Key(), c.layout, c.input.NumberHits)
	if d, found := c.cache[key]; found {
		return d, nil
	}

	d, err := diagram.Build(c.input, c.layout, controls)
	if err != nil {
		return nil, fmt.Errorf("building %s diagram: %w", controls.Key(), err)
	}
	c.cache[key] = d
	return d, nil
}

// Controls gets the controls currently applied.
func (c *Controller) Controls() diagram.Controls {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.controls
}

// Apply changes the controls and starts a transition to the new diagram.
func (c *Controller) Apply(msg ControlMessage) (diagram.Controls, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	controls := c.controls
	if msg.ColorScheme != "" {
		controls.ColorScheme = palette.ParseColorScheme(msg.ColorScheme)
	}
	if msg.ScaleType != "" {
		controls.ScaleType = scale.ParseMode(msg.ScaleType)
	}
	if msg.ScoreType != "" {
		controls.ScoreType = scale.ParseScoreType(msg.ScoreType)
	}
	if controls == c.controls {
		return controls, nil
	}

	d, err := c.build(controls)
	if err != nil {
		return c.controls, err
	}
	log.Printf("Controls: %s -> %s", c.controls.Key(), controls.Key())

	// A transition already under way restarts from the frame on display.
	c.controls = controls
	c.prevFrame = c.frame
	c.nextFrame = NewFrame(d)
	c.transition = 0
	if c.transitionFrames < 2 {
		c.finishTransition()
	}
	c.dirty = true
	return controls, nil
}

func (c *Controller) finishTransition() {
	c.frame = c.stamp(c.nextFrame.Diagram)
	c.prevFrame = nil
	c.nextFrame = nil
	c.transition = 0
}

// CalculateFrame advances any transition and gets the frame to display. The
// second result is false when the frame has not changed since the last call.
func (c *Controller) CalculateFrame() (*Frame, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.nextFrame != nil {
		lut := util.GenerateRampMemoized(c.transitionFrames, c.memoizer)
		c.transition++
		if c.transition >= len(lut)-1 {
			c.finishTransition()
		} else {
			f := c.prevFrame.InterpolateFrame(c.nextFrame, lut[c.transition])
			c.frame = c.stamp(f.Diagram)
		}
		c.dirty = false
		return c.frame, true
	}

	changed := c.dirty
	c.dirty = false
	return c.frame, changed
}

// Current gets the frame on display without advancing a transition.
func (c *Controller) Current() *Frame {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}
