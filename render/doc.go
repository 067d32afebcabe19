// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines how the lifecycle bridge talks to a renderer.
//
// # Key Principle
//
// The renderer RECEIVES its GPU device from the surface toolkit, it does
// NOT create one. The bridge never draws; it only decides whether a surface
// exists and hands the surface a Callback that relays to the renderer.
//
// # Core Interfaces
//
//   - Callback: initialize/resize/frame delegate driven by a surface
//   - Renderer: an externally supplied Callback implementation
//   - Factory: instantiates the renderer after the capability check passed
//   - DeviceHandle: gpucontext.DeviceProvider passed on surface creation
//
// DeviceRenderer adapts a plain draw function to Renderer, tracking the
// device and drawable size across callbacks.
package render
