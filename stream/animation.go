package stream

import (
	"github.com/matt-g-everett/sssviz/diagram"
)

// A FrameSource produces the frames a Streamer publishes and accepts the
// control messages that change them.
type FrameSource interface {
	CalculateFrame() (*Frame, bool)
	Apply(msg ControlMessage) (diagram.Controls, error)
}
