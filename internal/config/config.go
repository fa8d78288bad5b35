// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads the kfrender configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/keyframes"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the kfrender configuration.
type Config struct {
	Width      int    `yaml:"width" toml:"width"`
	Height     int    `yaml:"height" toml:"height"`
	Output     string `yaml:"output" toml:"output"`
	Frames     int    `yaml:"frames" toml:"frames"`
	Workers    int    `yaml:"workers" toml:"workers"`
	Canvas     string `yaml:"canvas" toml:"canvas"`
	Background string `yaml:"background" toml:"background"`

	GradientPrecision float64 `yaml:"gradient_precision" toml:"gradient_precision"`

	Scale  Scale  `yaml:"scale" toml:"scale"`
	Sample Sample `yaml:"sample" toml:"sample"`
	MQTT   MQTT   `yaml:"mqtt" toml:"mqtt"`
}

// Scale configures the directional viewport scale.
type Scale struct {
	FromCenter float64 `yaml:"from_center" toml:"from_center"`
	FromEnd    float64 `yaml:"from_end" toml:"from_end"`
	Direction  string  `yaml:"direction" toml:"direction"` // "up" or "down"
}

// Sample parameterizes the built-in demo animation.
type Sample struct {
	FrameRate     int    `yaml:"frame_rate" toml:"frame_rate"`
	FrameCount    int    `yaml:"frame_count" toml:"frame_count"`
	Easing        string `yaml:"easing" toml:"easing"`
	Fill          string `yaml:"fill" toml:"fill"`
	Stroke        string `yaml:"stroke" toml:"stroke"`
	GradientStart string `yaml:"gradient_start" toml:"gradient_start"`
	GradientEnd   string `yaml:"gradient_end" toml:"gradient_end"`
}

// MQTT configures frame streaming. Streaming is off when URL is empty.
type MQTT struct {
	URL          string `yaml:"url" toml:"url"`
	ClientID     string `yaml:"client_id" toml:"client_id"`
	Username     string `yaml:"username" toml:"username"`
	Password     string `yaml:"password" toml:"password"`
	Topic        string `yaml:"topic" toml:"topic"`
	QoS          byte   `yaml:"qos" toml:"qos"`
	MaxFrameRate int    `yaml:"max_frame_rate" toml:"max_frame_rate"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Width:             256,
		Height:            256,
		Output:            "frames",
		Workers:           runtime.NumCPU(),
		Canvas:            "raster",
		Background:        "#ffffff",
		GradientPrecision: keyframes.DefaultGradientPrecision,
		Scale: Scale{
			FromCenter: 1,
			FromEnd:    1,
			Direction:  "up",
		},
		Sample: Sample{
			FrameRate:     24,
			FrameCount:    48,
			Easing:        "ease-in-out",
			Fill:          "#ff7043",
			Stroke:        "#263238",
			GradientStart: "#42a5f5",
			GradientEnd:   "#7e57c2",
		},
		MQTT: MQTT{
			ClientID:     "kfrender",
			QoS:          1,
			MaxFrameRate: 30,
		},
	}
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file over the defaults
// and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	c := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	case ".toml":
		err = toml.Unmarshal(data, c)
	default:
		return nil, fmt.Errorf("config: unsupported file type %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks value ranges and that named colors and easings exist.
func (c *Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d", ErrInvalid, c.Width, c.Height)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d", ErrInvalid, c.Frames)
	case c.Sample.FrameRate <= 0 || c.Sample.FrameCount <= 0:
		return fmt.Errorf("%w: sample timing %d frames at %d fps", ErrInvalid, c.Sample.FrameCount, c.Sample.FrameRate)
	case c.Scale.FromCenter <= 0 || c.Scale.FromEnd <= 0:
		return fmt.Errorf("%w: scale %g/%g", ErrInvalid, c.Scale.FromCenter, c.Scale.FromEnd)
	case c.MQTT.QoS > 2:
		return fmt.Errorf("%w: mqtt qos %d", ErrInvalid, c.MQTT.QoS)
	}
	if _, err := c.ScaleDirection(); err != nil {
		return err
	}
	if _, ok := keyframes.Preset(c.Sample.Easing); !ok {
		return fmt.Errorf("%w: unknown easing %q (want one of %s)", ErrInvalid,
			c.Sample.Easing, strings.Join(keyframes.PresetNames(), ", "))
	}
	for _, s := range []string{c.Background, c.Sample.Fill, c.Sample.Stroke, c.Sample.GradientStart, c.Sample.GradientEnd} {
		if _, err := keyframes.Hex(s); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

// ScaleDirection parses Scale.Direction.
func (c *Config) ScaleDirection() (keyframes.ScaleDirection, error) {
	switch strings.ToLower(c.Scale.Direction) {
	case "", "up":
		return keyframes.ScaleUp, nil
	case "down":
		return keyframes.ScaleDown, nil
	}
	return 0, fmt.Errorf("%w: scale direction %q", ErrInvalid, c.Scale.Direction)
}

// FrameTotal returns the number of frames to render: Frames, or one full
// loop of the sample (FrameCount+1 frames, both ends included) when unset.
func (c *Config) FrameTotal() int {
	if c.Frames > 0 {
		return c.Frames
	}
	return c.Sample.FrameCount + 1
}
