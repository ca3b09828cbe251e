package stream

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/matt-g-everett/sssviz/diagram"
	"github.com/matt-g-everett/sssviz/palette"
	"github.com/matt-g-everett/sssviz/scale"
	"gopkg.in/yaml.v2"
)

// Config is the application configuration, read from YAML.
type Config struct {
	Mqtt struct {
		URL      string `yaml:"url"`
		ClientID string `yaml:"clientId"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Topics   struct {
			Diagram string `yaml:"diagram"`
			Control string `yaml:"control"`
		} `yaml:"topics"`
	} `yaml:"mqtt"`
	HTTP struct {
		Listen    string `yaml:"listen"`
		StaticDir string `yaml:"staticDir"`
	} `yaml:"http"`
	Layout  diagram.Layout `yaml:"layout"`
	Display struct {
		ColorScheme    string  `yaml:"colorScheme"`
		ScaleType      string  `yaml:"scaleType"`
		ScoreType      string  `yaml:"scoreType"`
		NumberHits     int     `yaml:"numberHits"`
		FrameRate      float64 `yaml:"frameRate"`
		TransitionSecs float64 `yaml:"transitionSecs"`
	} `yaml:"display"`
}

// DefaultConfig gets a configuration with every option set to its default.
func DefaultConfig() Config {
	var c Config
	c.Mqtt.ClientID = "sssviz"
	c.Mqtt.Topics.Diagram = "sssviz/diagram"
	c.Mqtt.Topics.Control = "sssviz/control"
	c.HTTP.Listen = ":3000"
	c.HTTP.StaticDir = "client/dist"
	c.Layout = diagram.DefaultLayout()
	c.Display.ColorScheme = palette.Heatmap.String()
	c.Display.ScaleType = scale.Dynamic.String()
	c.Display.ScoreType = scale.EValue.String()
	c.Display.NumberHits = 100
	c.Display.FrameRate = 30
	c.Display.TransitionSecs = 0.5
	return c
}

// ReadConfig decodes YAML over the defaults. An empty document keeps the
// defaults.
func ReadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("decoding config: %w", err)
	}
	return c, c.Validate()
}

// Validate checks the configuration for values that cannot be rendered.
func (c Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if c.Display.NumberHits < 0 {
		return fmt.Errorf("numberHits must not be negative, got %d", c.Display.NumberHits)
	}
	if c.Display.FrameRate <= 0 {
		return fmt.Errorf("frameRate must be positive, got %v", c.Display.FrameRate)
	}
	if c.Display.TransitionSecs < 0 {
		return fmt.Errorf("transitionSecs must not be negative, got %v", c.Display.TransitionSecs)
	}
	return nil
}

// Controls gets the initial colouring controls.
func (c Config) Controls() diagram.Controls {
	return diagram.Controls{
		ColorScheme: palette.ParseColorScheme(c.Display.ColorScheme),
		ScaleType:   scale.ParseMode(c.Display.ScaleType),
		ScoreType:   scale.ParseScoreType(c.Display.ScoreType),
	}
}

// TransitionFrames is the number of frames a colour transition lasts.
func (c Config) TransitionFrames() int {
	return int(c.Display.FrameRate*c.Display.TransitionSecs + 0.5)
}

// FrameInterval is the time between frames.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Display.FrameRate)
}
