// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// PixelFormat describes the channel sizes, in bits, of the drawable a
// surface allocates.
type PixelFormat struct {
	Red     int `json:"red" yaml:"red"`
	Green   int `json:"green" yaml:"green"`
	Blue    int `json:"blue" yaml:"blue"`
	Alpha   int `json:"alpha" yaml:"alpha"`
	Depth   int `json:"depth" yaml:"depth"`
	Stencil int `json:"stencil" yaml:"stencil"`
}

// FallbackPixelFormat is the explicit format applied on emulated hosts.
// Some emulator graphics stacks crash while negotiating a default format.
var FallbackPixelFormat = PixelFormat{Red: 8, Green: 8, Blue: 8, Alpha: 8, Depth: 16, Stencil: 0}

// IsZero reports whether no format was chosen, meaning the toolkit default.
func (f PixelFormat) IsZero() bool {
	return f == PixelFormat{}
}

// Validate reports an error for negative channel sizes.
func (f PixelFormat) Validate() error {
	for _, c := range [...]struct {
		name string
		bits int
	}{
		{"red", f.Red}, {"green", f.Green}, {"blue", f.Blue},
		{"alpha", f.Alpha}, {"depth", f.Depth}, {"stencil", f.Stencil},
	} {
		if c.bits < 0 {
			return &InvalidFormatError{Channel: c.name, Bits: c.bits}
		}
	}
	return nil
}

// ColorFormat maps the color channels onto a GPU texture format.
// Returns TextureFormatUndefined when there is no exact match.
func (f PixelFormat) ColorFormat() gputypes.TextureFormat {
	if f.Red == 8 && f.Green == 8 && f.Blue == 8 && f.Alpha == 8 {
		return gputypes.TextureFormatRGBA8Unorm
	}
	return gputypes.TextureFormatUndefined
}

// DepthFormat maps the depth and stencil channels onto a GPU texture format.
// Returns TextureFormatUndefined when there is no depth buffer or no exact match.
func (f PixelFormat) DepthFormat() gputypes.TextureFormat {
	switch {
	case f.Depth == 16 && f.Stencil == 0:
		return gputypes.TextureFormatDepth16Unorm
	case f.Depth == 24 && f.Stencil == 8:
		return gputypes.TextureFormatDepth24PlusStencil8
	default:
		return gputypes.TextureFormatUndefined
	}
}

// String returns the format as "R8G8B8A8 D16 S0".
func (f PixelFormat) String() string {
	return fmt.Sprintf("R%dG%dB%dA%d D%d S%d", f.Red, f.Green, f.Blue, f.Alpha, f.Depth, f.Stencil)
}

// ContextVersion is the client API major version of a rendering context.
type ContextVersion int

// ContextVersionES2 is the minimum context version the engine renders with.
const ContextVersionES2 ContextVersion = 2

// String returns e.g. "ES 2".
func (v ContextVersion) String() string {
	return fmt.Sprintf("ES %d", int(v))
}

// Config carries the parameters for creating a surface.
type Config struct {
	// Label is an optional debug label.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// Width and Height are the initial drawable size hint in pixels.
	// Zero lets the toolkit size the surface to its window.
	Width  int `json:"width,omitempty" yaml:"width,omitempty"`
	Height int `json:"height,omitempty" yaml:"height,omitempty"`
}

// InvalidFormatError reports a channel with a negative bit size.
type InvalidFormatError struct {
	Channel string
	Bits    int
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("surface: invalid %s size: %d bits", e.Channel, e.Bits)
}
