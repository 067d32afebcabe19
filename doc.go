// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ouzel bootstraps the engine's rendering surface on mobile hosts
// and relays the host's lifecycle to it.
//
// # Overview
//
// On creation the host shell hands the Bridge a description of the device.
// The Bridge asks the capability package whether the host can render at
// OpenGL ES 2.0 and only then creates a surface, configures it and binds
// the renderer. Afterwards every pause and resume signal from the host is
// forwarded to the surface, if one exists.
//
// # Quick Start
//
//	b := ouzel.New(ouzel.WithNotifier(ouzel.NotifierFunc(showToast)))
//	res, err := b.Initialize(hostInfo, render.FactoryOf(myRenderer))
//	if errors.Is(err, ouzel.ErrUnsupportedCapability) {
//	    return // the host already showed the message
//	}
//
//	// later, from the host lifecycle:
//	b.OnSuspend()
//	b.OnResume()
//
// # Architecture
//
// The module is organized into:
//   - Bridge: conditional surface creation and guarded lifecycle forwarding
//   - capability: host descriptor and the GL ES/emulator verdict
//   - surface: the toolkit surface contract, registry and headless surface
//   - render: the renderer callback contract and device handle
//   - integration/mobile: a host shell driven by x/mobile lifecycle events
//
// # Emulators
//
// Some emulator images under-report their GL ES version. A host that looks
// like an emulator is treated as capable, and its surface gets an explicit
// RGBA8888/D16/S0 pixel format before the context version is set, which
// avoids start-up crashes on emulator graphics stacks.
//
// # Logging
//
// The package is silent by default; see SetLogger.
package ouzel

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
