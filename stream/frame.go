// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package stream publishes evaluated animation frames over MQTT.
//
// Each frame is a compact little-endian binary snapshot of the feature
// states, small enough for LED controllers and other thin clients that
// apply transforms and colors themselves instead of rasterizing.
//
// # Wire Format
//
//	float32  frame progress
//	uint16   feature count
//	per feature:
//	  float32 x6  transform (a b c d e f)
//	  float32     stroke width
//	  byte x4     fill color (r g b a)
//	  byte x4     stroke color (r g b a)
//	  byte        flags (1 path, 2 gradient, 4 substitute)
//	  byte x8     gradient start and end colors, only with flag 2
package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/gogpu/keyframes"
)

// Feature flags.
const (
	FlagPath       byte = 1 << 0
	FlagGradient   byte = 1 << 1
	FlagSubstitute byte = 1 << 2
)

// ErrShortFrame is returned when decoding a truncated frame.
var ErrShortFrame = errors.New("stream: short frame")

// Color is an 8-bit straight-alpha color.
type Color struct {
	R, G, B, A uint8
}

// FeatureFrame is the snapshot of one feature.
type FeatureFrame struct {
	Transform     [6]float32
	StrokeWidth   float32
	Fill, Stroke  Color
	Flags         byte
	GradientStart Color
	GradientEnd   Color
}

// Frame is the snapshot of every feature at one frame progress.
type Frame struct {
	Progress float32
	Features []FeatureFrame
}

// Snapshot fills f from the evaluator's current states, reusing f's
// storage.
func (f *Frame) Snapshot(ev *keyframes.Evaluator) {
	states := ev.States()
	f.Progress = float32(ev.Frame())
	if cap(f.Features) < len(states) {
		f.Features = make([]FeatureFrame, len(states))
	}
	f.Features = f.Features[:len(states)]
	for i := range states {
		st := &states[i]
		ff := &f.Features[i]
		m := st.Transform
		ff.Transform = [6]float32{float32(m.A), float32(m.B), float32(m.C), float32(m.D), float32(m.E), float32(m.F)}
		ff.StrokeWidth = float32(st.StrokeWidth)
		ff.Fill = toColor(st.FillColor)
		ff.Stroke = toColor(st.StrokeColor)
		ff.Flags = 0
		ff.GradientStart, ff.GradientEnd = Color{}, Color{}
		if st.HasPath {
			ff.Flags |= FlagPath
		}
		if st.Substitute != nil {
			ff.Flags |= FlagSubstitute
		}
		if st.Shader != nil {
			ff.Flags |= FlagGradient
			ff.GradientStart = toColor(st.Shader.StartColor)
			ff.GradientEnd = toColor(st.Shader.EndColor)
		}
	}
}

// toColor quantizes c, clamping channels into gamut first.
func toColor(c keyframes.RGBA) Color {
	r, g, b := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().RGB255()
	a := math.Round(math.Min(math.Max(c.A, 0), 1) * 255)
	return Color{R: r, G: g, B: b, A: uint8(a)}
}

// AppendBinary appends the encoded frame to data.
func (f *Frame) AppendBinary(data []byte) ([]byte, error) {
	if len(f.Features) > math.MaxUint16 {
		return data, fmt.Errorf("stream: too many features (%d)", len(f.Features))
	}
	data = binary.LittleEndian.AppendUint32(data, math.Float32bits(f.Progress))
	data = binary.LittleEndian.AppendUint16(data, uint16(len(f.Features)))
	for i := range f.Features {
		ff := &f.Features[i]
		for _, v := range ff.Transform {
			data = binary.LittleEndian.AppendUint32(data, math.Float32bits(v))
		}
		data = binary.LittleEndian.AppendUint32(data, math.Float32bits(ff.StrokeWidth))
		data = appendColor(data, ff.Fill)
		data = appendColor(data, ff.Stroke)
		data = append(data, ff.Flags)
		if ff.Flags&FlagGradient != 0 {
			data = appendColor(data, ff.GradientStart)
			data = appendColor(data, ff.GradientEnd)
		}
	}
	return data, nil
}

// MarshalBinary encodes the frame.
func (f *Frame) MarshalBinary() ([]byte, error) {
	return f.AppendBinary(make([]byte, 0, 6+len(f.Features)*45))
}

// UnmarshalBinary decodes a frame produced by MarshalBinary.
func (f *Frame) UnmarshalBinary(data []byte) error {
	r := reader{data: data}
	f.Progress = r.f32()
	n := int(r.u16())
	if r.err != nil {
		return r.err
	}
	f.Features = make([]FeatureFrame, n)
	for i := range f.Features {
		ff := &f.Features[i]
		for j := range ff.Transform {
			ff.Transform[j] = r.f32()
		}
		ff.StrokeWidth = r.f32()
		ff.Fill = r.color()
		ff.Stroke = r.color()
		ff.Flags = r.u8()
		if ff.Flags&FlagGradient != 0 {
			ff.GradientStart = r.color()
			ff.GradientEnd = r.color()
		}
		if r.err != nil {
			return fmt.Errorf("stream: feature %d: %w", i, r.err)
		}
	}
	return nil
}

// EncodeFrame snapshots ev and appends its encoding to dst.
func EncodeFrame(dst []byte, ev *keyframes.Evaluator) ([]byte, error) {
	var f Frame
	f.Snapshot(ev)
	return f.AppendBinary(dst)
}

func appendColor(data []byte, c Color) []byte {
	return append(data, c.R, c.G, c.B, c.A)
}

// reader consumes little-endian values, remembering the first error.
type reader struct {
	data []byte
	err  error
}

func (r *reader) take(n int) []byte {
	if r.err != nil {
		return nil
	}
	if len(r.data) < n {
		r.err = ErrShortFrame
		return nil
	}
	b := r.data[:n]
	r.data = r.data[n:]
	return b
}

func (r *reader) u8() byte {
	if b := r.take(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *reader) u16() uint16 {
	if b := r.take(2); b != nil {
		return binary.LittleEndian.Uint16(b)
	}
	return 0
}

func (r *reader) f32() float32 {
	if b := r.take(4); b != nil {
		return math.Float32frombits(binary.LittleEndian.Uint32(b))
	}
	return 0
}

func (r *reader) color() Color {
	if b := r.take(4); b != nil {
		return Color{R: b[0], G: b[1], B: b[2], A: b[3]}
	}
	return Color{}
}
