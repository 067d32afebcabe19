// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package capability decides whether a host can render at the OpenGL ES
// level the engine requires.
//
// The verdict combines two signals:
//
//   - Declared support: the version the host's device configuration
//     reports is at least [MinRequiredVersion].
//   - Emulator override: the host looks like an emulator image. Some
//     emulator images under-report their GL ES version even though they
//     render at the required level, so a match counts as support.
//
// Host properties are passed in as a plain [HostInfo] value rather than
// queried ambiently, which keeps [Detect] pure:
//
//	report := capability.Detect(capability.HostInfo{
//	    GLESVersion: 0x30000,
//	    Fingerprint: "google/redfin/redfin:13/TQ3A",
//	    Model:       "Pixel 5",
//	    SDKVersion:  33,
//	})
//	if report.Supported() {
//	    // create a surface
//	}
//
// Detection never fails. Missing or zero-valued fields simply leave both
// signals false.
package capability
