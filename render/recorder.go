// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/keyframes"

func init() {
	Register("record", func(width, height int) (Canvas, error) {
		return NewRecorder(width, height), nil
	})
}

// CommandType identifies a recorded canvas call.
type CommandType uint8

const (
	CmdFillPath         CommandType = iota // Solid fill
	CmdFillPathGradient                    // Linear gradient fill
	CmdStrokePath                          // Solid stroke
	CmdDrawSubstitute                      // External drawable
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdFillPath:         "FillPath",
	CmdFillPathGradient: "FillPathGradient",
	CmdStrokePath:       "StrokePath",
	CmdDrawSubstitute:   "DrawSubstitute",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is one recorded canvas call. Only the fields relevant to Type
// are set. Path is a private copy taken at record time.
type Command struct {
	Type       CommandType
	Path       keyframes.Path
	Color      keyframes.RGBA
	Width      float64
	Gradient   keyframes.LinearGradient
	Substitute *keyframes.Substitute
	Transform  keyframes.Matrix
}

// Recorder is a Canvas that keeps every call in memory. Recordings can be
// inspected directly or replayed onto another Canvas.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

var _ Canvas = (*Recorder)(nil)

// NewRecorder creates an empty recorder for a canvas of the given size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
	}
}

// Size returns the canvas size given to NewRecorder.
func (r *Recorder) Size() (width, height int) {
	return r.width, r.height
}

// Commands returns the recorded calls in order.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Reset drops all recorded calls, keeping the allocated storage.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Playback replays the recording onto c.
func (r *Recorder) Playback(c Canvas) {
	for i := range r.commands {
		cmd := &r.commands[i]
		switch cmd.Type {
		case CmdFillPath:
			c.FillPath(&cmd.Path, cmd.Color)
		case CmdFillPathGradient:
			c.FillPathGradient(&cmd.Path, cmd.Gradient)
		case CmdStrokePath:
			c.StrokePath(&cmd.Path, cmd.Color, cmd.Width)
		case CmdDrawSubstitute:
			c.DrawSubstitute(cmd.Substitute, cmd.Transform)
		}
	}
}

func (r *Recorder) FillPath(p *keyframes.Path, c keyframes.RGBA) {
	r.commands = append(r.commands, Command{Type: CmdFillPath, Path: p.Clone(), Color: c})
}

func (r *Recorder) FillPathGradient(p *keyframes.Path, g keyframes.LinearGradient) {
	r.commands = append(r.commands, Command{Type: CmdFillPathGradient, Path: p.Clone(), Gradient: g})
}

func (r *Recorder) StrokePath(p *keyframes.Path, c keyframes.RGBA, width float64) {
	r.commands = append(r.commands, Command{Type: CmdStrokePath, Path: p.Clone(), Color: c, Width: width})
}

func (r *Recorder) DrawSubstitute(s *keyframes.Substitute, m keyframes.Matrix) {
	r.commands = append(r.commands, Command{Type: CmdDrawSubstitute, Substitute: s, Transform: m})
}
