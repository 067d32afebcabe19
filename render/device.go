// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the surface toolkit.
//
// The surface, not the renderer, owns the GPU device. When the toolkit
// reports that its surface exists it passes a DeviceHandle to
// Callback.OnSurfaceCreated and the renderer uses the shared device from
// there on.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider so toolkits built
// on the gpucontext ecosystem can pass their provider unchanged.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Toolkits that render through a GL context with no shared GPU device pass
// it to keep the callback contract non-nil.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns the zero AdapterInfo for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo { return gpucontext.AdapterInfo{} }

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}

// HasDevice reports whether h carries a real GPU device.
// A nil handle and NullDeviceHandle both report false.
func HasDevice(h DeviceHandle) bool {
	if h == nil {
		return false
	}
	return h.Device() != nil
}
