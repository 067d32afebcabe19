// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command surfaceprobe runs the ouzel capability check and lifecycle bridge
// against a host descriptor, without a device.
//
// The descriptor comes from flags, a YAML config file or SURFACEPROBE_*
// environment variables:
//
//	surfaceprobe detect --gles-version 0x10000 --fingerprint generic_x86 --model sdk_gphone --sdk-version 9
//	surfaceprobe simulate --config emulator.yaml --events pause,resume --output yaml
//	surfaceprobe signatures
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
