// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"

	"github.com/Frost-54/ouzel/render"
)

// HeadlessName is the registry name of the built-in headless toolkit.
const HeadlessName = "headless"

// Errors returned by Headless when called out of order.
var (
	// ErrConfigLocked is returned when the surface is configured after its
	// render callback was installed.
	ErrConfigLocked = errors.New("surface: configuration locked after render callback was set")

	// ErrFormatAfterVersion is returned when a pixel format is chosen after
	// the context version.
	ErrFormatAfterVersion = errors.New("surface: pixel format must be configured before context version")

	// ErrClosed is returned when a closed surface is configured.
	ErrClosed = errors.New("surface: closed")
)

// Op identifies an outbound call recorded by Headless.
type Op uint8

// Recorded operations.
const (
	OpConfigurePixelFormat Op = iota
	OpSetContextVersion
	OpSetRenderCallback
	OpPause
	OpResume
	OpClose
)

var opNames = [...]string{
	OpConfigurePixelFormat: "configure-pixel-format",
	OpSetContextVersion:    "set-context-version",
	OpSetRenderCallback:    "set-render-callback",
	OpPause:                "pause",
	OpResume:               "resume",
	OpClose:                "close",
}

// String returns the operation name.
func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

// Call is one recorded outbound call.
type Call struct {
	Op      Op
	Format  PixelFormat    // OpConfigurePixelFormat only
	Version ContextVersion // OpSetContextVersion only
}

// Headless is a surface without a window.
//
// It plays the toolkit's part for hosts that have no display and for
// tests: it records every call in order, enforces the configuration order
// a GL view requires, and lets the caller drive the render callback with
// Create and DrawFrame.
type Headless struct {
	cfg     Config
	format  PixelFormat
	version ContextVersion
	cb      render.Callback
	device  render.DeviceHandle
	calls   []Call
	paused  bool
	created bool
	closed  bool
}

// NewHeadless creates a headless surface.
func NewHeadless(cfg Config) *Headless {
	return &Headless{cfg: cfg, device: render.NullDeviceHandle{}}
}

// SetDevice sets the device handle passed to OnSurfaceCreated.
// A nil handle restores NullDeviceHandle.
func (h *Headless) SetDevice(device render.DeviceHandle) {
	if device == nil {
		device = render.NullDeviceHandle{}
	}
	h.device = device
}

// ConfigurePixelFormat implements Surface.
func (h *Headless) ConfigurePixelFormat(format PixelFormat) error {
	if err := h.checkConfigurable(); err != nil {
		return err
	}
	if h.version != 0 {
		return ErrFormatAfterVersion
	}
	if err := format.Validate(); err != nil {
		return err
	}
	h.format = format
	h.calls = append(h.calls, Call{Op: OpConfigurePixelFormat, Format: format})
	return nil
}

// SetContextVersion implements Surface.
func (h *Headless) SetContextVersion(version ContextVersion) error {
	if err := h.checkConfigurable(); err != nil {
		return err
	}
	if version <= 0 {
		return fmt.Errorf("surface: invalid context version %d", int(version))
	}
	h.version = version
	h.calls = append(h.calls, Call{Op: OpSetContextVersion, Version: version})
	return nil
}

// SetRenderCallback implements Surface.
func (h *Headless) SetRenderCallback(cb render.Callback) {
	if h.closed {
		return
	}
	h.cb = cb
	h.calls = append(h.calls, Call{Op: OpSetRenderCallback})
}

// OnSurfacePause implements Surface.
func (h *Headless) OnSurfacePause() {
	if h.closed {
		return
	}
	h.paused = true
	h.calls = append(h.calls, Call{Op: OpPause})
}

// OnSurfaceResume implements Surface.
func (h *Headless) OnSurfaceResume() {
	if h.closed {
		return
	}
	h.paused = false
	h.calls = append(h.calls, Call{Op: OpResume})
}

// Paused implements PausableSurface.
func (h *Headless) Paused() bool {
	return h.paused
}

// Close implements ClosableSurface.
func (h *Headless) Close() error {
	if h.closed {
		return nil
	}
	h.closed = true
	h.cb = nil
	h.calls = append(h.calls, Call{Op: OpClose})
	return nil
}

// Create simulates the toolkit bringing up its drawable: the render
// callback receives OnSurfaceCreated followed by OnSurfaceChanged with the
// configured size. Does nothing without a callback.
func (h *Headless) Create() {
	if h.cb == nil || h.closed {
		return
	}
	h.created = true
	h.cb.OnSurfaceCreated(h.device)
	h.cb.OnSurfaceChanged(h.cfg.Width, h.cfg.Height)
}

// Resize simulates a drawable size change.
func (h *Headless) Resize(width, height int) {
	h.cfg.Width, h.cfg.Height = width, height
	if h.cb != nil && h.created && !h.closed {
		h.cb.OnSurfaceChanged(width, height)
	}
}

// DrawFrame simulates one frame of the toolkit's rendering sequence.
// It reports whether the callback was invoked; paused or uncreated
// surfaces draw nothing.
func (h *Headless) DrawFrame() bool {
	if h.cb == nil || !h.created || h.paused || h.closed {
		return false
	}
	h.cb.OnDrawFrame()
	return true
}

// Calls returns a copy of the recorded calls in order.
func (h *Headless) Calls() []Call {
	out := make([]Call, len(h.calls))
	copy(out, h.calls)
	return out
}

// Ops returns the recorded operations in order.
func (h *Headless) Ops() []Op {
	ops := make([]Op, len(h.calls))
	for i, c := range h.calls {
		ops[i] = c.Op
	}
	return ops
}

// PixelFormat returns the configured format; the zero value means the
// toolkit default.
func (h *Headless) PixelFormat() PixelFormat { return h.format }

// ContextVersion returns the configured context version, or 0.
func (h *Headless) ContextVersion() ContextVersion { return h.version }

// Config returns the configuration the surface was created with.
func (h *Headless) Config() Config { return h.cfg }

// Closed reports whether Close was called.
func (h *Headless) Closed() bool { return h.closed }

func (h *Headless) checkConfigurable() error {
	if h.closed {
		return ErrClosed
	}
	if h.cb != nil {
		return ErrConfigLocked
	}
	return nil
}

var (
	_ ClosableSurface = (*Headless)(nil)
	_ PausableSurface = (*Headless)(nil)
)
