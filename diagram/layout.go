package diagram

import (
	"errors"
	"fmt"

	"github.com/matt-g-everett/sssviz/palette"
	"github.com/matt-g-everett/sssviz/scale"
)

// Layout declares the horizontal layout of the canvas. Every width except
// CanvasWidth is a percentage of CanvasWidth.
type Layout struct {
	CanvasWidth         float64 `yaml:"canvasWidth" json:"canvasWidth"`
	ContentWidth        float64 `yaml:"contentWidth" json:"contentWidth"`
	ContentScoringWidth float64 `yaml:"contentScoringWidth" json:"contentScoringWidth"`
	ContentLabelWidth   float64 `yaml:"contentLabelWidth" json:"contentLabelWidth"`
	MarginWidth         float64 `yaml:"marginWidth" json:"marginWidth"`
	ScaleWidth          float64 `yaml:"scaleWidth" json:"scaleWidth"`
	ScaleLabelWidth     float64 `yaml:"scaleLabelWidth" json:"scaleLabelWidth"`
}

// DefaultLayout gets the layout used when none is configured.
func DefaultLayout() Layout {
	return Layout{
		CanvasWidth:         1000,
		ContentWidth:        72.5,
		ContentScoringWidth: 5,
		ContentLabelWidth:   27,
		MarginWidth:         0.15,
		ScaleWidth:          75,
		ScaleLabelWidth:     12.5,
	}
}

var errLayout = errors.New("invalid layout")

// Validate checks that the panels fit on the canvas.
func (l Layout) Validate() error {
	if l.CanvasWidth <= 0 {
		return fmt.Errorf("%w: canvas width %v", errLayout, l.CanvasWidth)
	}
	for name, pct := range map[string]float64{
		"contentWidth":        l.ContentWidth,
		"contentScoringWidth": l.ContentScoringWidth,
		"contentLabelWidth":   l.ContentLabelWidth,
		"marginWidth":         l.MarginWidth,
		"scaleWidth":          l.ScaleWidth,
		"scaleLabelWidth":     l.ScaleLabelWidth,
	} {
		if pct < 0 || pct > 100 {
			return fmt.Errorf("%w: %s %v%% out of range", errLayout, name, pct)
		}
	}
	if l.ContentLabelWidth+l.ContentWidth > 100 {
		return fmt.Errorf("%w: label and content exceed the canvas", errLayout)
	}
	if l.ContentScoringWidth >= l.ContentWidth {
		return fmt.Errorf("%w: scoring column wider than content", errLayout)
	}
	if l.ScaleLabelWidth+l.ScaleWidth > 100 {
		return fmt.Errorf("%w: scale exceeds the canvas", errLayout)
	}
	return nil
}

func (l Layout) px(pct float64) float64 {
	return l.CanvasWidth * pct / 100
}

// Controls are the user-selectable options that change colouring.
type Controls struct {
	ColorScheme palette.ColorScheme `json:"colorScheme"`
	ScaleType   scale.Mode          `json:"scaleType"`
	ScoreType   scale.ScoreType     `json:"scoreType"`
}

// DefaultControls colour e-values on a dynamic heatmap.
func DefaultControls() Controls {
	return Controls{
		ColorScheme: palette.Heatmap,
		ScaleType:   scale.Dynamic,
		ScoreType:   scale.EValue,
	}
}

// Key identifies the controls in a frame cache key.
func (c Controls) Key() string {
	return c.ColorScheme.String() + "/" + c.ScaleType.String() + "/" + c.ScoreType.String()
}
