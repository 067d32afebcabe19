// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"sync"

	"github.com/gogpu/gputypes"
)

// Frame describes one frame handed to a DrawFunc.
type Frame struct {
	// Device is the handle the surface passed at creation. Never nil.
	Device DeviceHandle

	// Width and Height are the last drawable size reported.
	Width, Height int

	// Index counts frames drawn since the renderer was created, from 0.
	Index uint64
}

// DrawFunc draws one frame.
type DrawFunc func(f Frame)

// DeviceRenderer is a Renderer that tracks the device and drawable size
// the surface reports and hands both to a DrawFunc every frame.
//
// The renderer does NOT create its own GPU device. It uses the shared
// device from the surface toolkit.
//
// Example:
//
//	r := render.NewDeviceRenderer(func(f render.Frame) {
//	    if render.HasDevice(f.Device) {
//	        encodePass(f.Device.Device(), f.Device.Queue(), f.Width, f.Height)
//	    }
//	})
//	bridge.Initialize(info, render.FactoryOf(r))
type DeviceRenderer struct {
	draw DrawFunc

	mu       sync.Mutex
	handle   DeviceHandle
	width    int
	height   int
	frames   uint64
	contexts int
}

// NewDeviceRenderer creates a renderer that calls draw every frame.
// A nil draw only counts frames.
func NewDeviceRenderer(draw DrawFunc) *DeviceRenderer {
	return &DeviceRenderer{draw: draw}
}

// OnSurfaceCreated records the device handle. A nil handle is replaced by
// NullDeviceHandle.
func (r *DeviceRenderer) OnSurfaceCreated(device DeviceHandle) {
	if device == nil {
		device = NullDeviceHandle{}
	}
	r.mu.Lock()
	r.handle = device
	r.contexts++
	r.mu.Unlock()
}

// OnSurfaceChanged records the drawable size.
func (r *DeviceRenderer) OnSurfaceChanged(width, height int) {
	r.mu.Lock()
	r.width, r.height = width, height
	r.mu.Unlock()
}

// OnDrawFrame calls the DrawFunc. Frames requested before
// OnSurfaceCreated are skipped.
func (r *DeviceRenderer) OnDrawFrame() {
	r.mu.Lock()
	if r.handle == nil {
		r.mu.Unlock()
		return
	}
	f := Frame{Device: r.handle, Width: r.width, Height: r.height, Index: r.frames}
	r.frames++
	r.mu.Unlock()

	if r.draw != nil {
		r.draw(f)
	}
}

// DeviceHandle returns the handle from the last OnSurfaceCreated, or nil.
func (r *DeviceRenderer) DeviceHandle() DeviceHandle {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.handle
}

// SurfaceFormat returns the surface's preferred texture format, or
// TextureFormatUndefined before the surface exists.
func (r *DeviceRenderer) SurfaceFormat() gputypes.TextureFormat {
	h := r.DeviceHandle()
	if h == nil {
		return gputypes.TextureFormatUndefined
	}
	return h.SurfaceFormat()
}

// Size returns the last drawable size reported.
func (r *DeviceRenderer) Size() (width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.width, r.height
}

// Frames returns the number of frames drawn.
func (r *DeviceRenderer) Frames() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.frames
}

// Contexts returns how many times the surface (re)created its context.
func (r *DeviceRenderer) Contexts() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contexts
}

var _ Renderer = (*DeviceRenderer)(nil)
