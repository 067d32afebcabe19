// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "github.com/Frost-54/ouzel/render"

// Surface is the host-provided drawable a renderer draws into.
//
// Surfaces are supplied by a windowing toolkit; this package only
// describes the calls the lifecycle bridge makes. The toolkit owns the
// rendering sequence and delivers render callbacks from it.
//
// Surfaces are NOT thread-safe. Configuration calls come from the host's
// UI sequence before the render callback is installed.
//
// Example usage:
//
//	s, err := surface.NewSurface(surface.Config{Label: "main"})
//	if err != nil {
//	    return err
//	}
//	_ = s.ConfigurePixelFormat(surface.FallbackPixelFormat)
//	_ = s.SetContextVersion(surface.ContextVersionES2)
//	s.SetRenderCallback(delegate)
type Surface interface {
	// ConfigurePixelFormat selects an explicit color/depth/stencil format
	// instead of letting the toolkit negotiate a default one.
	// Must be called before SetContextVersion.
	ConfigurePixelFormat(format PixelFormat) error

	// SetContextVersion selects the client API version of the rendering
	// context the surface will create.
	SetContextVersion(version ContextVersion) error

	// SetRenderCallback installs the delegate the toolkit drives with
	// surface-created, surface-changed and draw-frame calls. A surface
	// that was closed ignores it.
	SetRenderCallback(cb render.Callback)

	// OnSurfacePause tells the toolkit the host went to the background.
	// The toolkit stops its rendering sequence and may release its context.
	OnSurfacePause()

	// OnSurfaceResume tells the toolkit the host returned to the foreground.
	OnSurfaceResume()
}

// ClosableSurface is an optional interface for surfaces that hold resources
// which must be released when the owner is torn down.
type ClosableSurface interface {
	Surface

	// Close releases all resources associated with the surface.
	// After Close, the surface must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// PausableSurface is an optional interface for surfaces that can report
// whether their rendering sequence is currently paused.
type PausableSurface interface {
	Surface

	// Paused reports whether OnSurfacePause was the last lifecycle call.
	Paused() bool
}
