// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

// Callback is the render-callback delegate a surface drives.
//
// The surface toolkit owns the rendering sequence and calls these methods
// from it. Implementations must not assume they run on the host's UI
// sequence.
type Callback interface {
	// OnSurfaceCreated is called once the drawable exists, and again after
	// the toolkit recreates its context (for example after a resume that
	// lost the GL context).
	OnSurfaceCreated(device DeviceHandle)

	// OnSurfaceChanged is called when the drawable size changes.
	OnSurfaceChanged(width, height int)

	// OnDrawFrame draws one frame.
	OnDrawFrame()
}

// Renderer is an externally supplied renderer.
//
// A Renderer is consumed only through the Callback capability, which keeps
// the lifecycle bridge agnostic of scene graphs, draw calls and shaders.
// The bridge does not own the renderer's lifetime.
//
// Example:
//
//	type sceneRenderer struct{ scene *Scene }
//
//	func (r *sceneRenderer) OnSurfaceCreated(dev render.DeviceHandle) { r.scene.Upload(dev) }
//	func (r *sceneRenderer) OnSurfaceChanged(w, h int)               { r.scene.Resize(w, h) }
//	func (r *sceneRenderer) OnDrawFrame()                            { r.scene.Draw() }
type Renderer interface {
	Callback
}

// Factory instantiates a renderer once a surface exists.
// A Factory is never called when the host lacks graphics capability.
type Factory func() (Renderer, error)

// FactoryOf returns a Factory that always yields r.
func FactoryOf(r Renderer) Factory {
	return func() (Renderer, error) { return r, nil }
}

// NopRenderer ignores every callback.
// Useful for shells that only exercise lifecycle wiring.
type NopRenderer struct{}

// OnSurfaceCreated does nothing.
func (NopRenderer) OnSurfaceCreated(DeviceHandle) {}

// OnSurfaceChanged does nothing.
func (NopRenderer) OnSurfaceChanged(int, int) {}

// OnDrawFrame does nothing.
func (NopRenderer) OnDrawFrame() {}

var _ Renderer = NopRenderer{}
