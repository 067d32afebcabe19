// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface describes the rendering surface the lifecycle bridge
// creates and configures.
//
// The surface itself belongs to a windowing toolkit that lives outside this
// module. This package provides:
//
//   - Surface: the calls the bridge makes on a toolkit surface
//   - PixelFormat and ContextVersion: what those calls configure
//   - Registry: how a host shell makes its toolkit available
//   - Headless: a recording surface for hosts without a display and tests
//
// # Configuration Order
//
// A toolkit surface is configured in a fixed order before it starts its
// rendering sequence:
//
//	s.ConfigurePixelFormat(surface.FallbackPixelFormat) // optional, emulators only
//	s.SetContextVersion(surface.ContextVersionES2)
//	s.SetRenderCallback(delegate)                       // locks configuration
//
// # Registry
//
// Host shells register the toolkit they embed:
//
//	surface.Register("glview", 100, func(cfg surface.Config) (surface.Surface, error) {
//	    return newGLView(cfg)
//	}, nil)
//
// The headless toolkit is always registered at priority 10.
package surface
