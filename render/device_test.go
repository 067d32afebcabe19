// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

func TestNullDeviceHandle(t *testing.T) {
	var handle DeviceHandle = NullDeviceHandle{}

	if handle.Device() != nil {
		t.Error("NullDeviceHandle.Device() should return nil")
	}
	if handle.Queue() != nil {
		t.Error("NullDeviceHandle.Queue() should return nil")
	}
	if handle.Adapter() != nil {
		t.Error("NullDeviceHandle.Adapter() should return nil")
	}
	if info := handle.AdapterInfo(); !reflect.DeepEqual(info, gpucontext.AdapterInfo{}) {
		t.Errorf("NullDeviceHandle.AdapterInfo() = %+v, want zero value", info)
	}
	if handle.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Error("NullDeviceHandle.SurfaceFormat() should return Undefined")
	}
}

func TestDeviceHandleAlias(t *testing.T) {
	// Compile-time check: a DeviceHandle is a gpucontext.DeviceProvider.
	acceptProvider := func(_ gpucontext.DeviceProvider) {}
	acceptProvider(NullDeviceHandle{})
}

func TestHasDevice(t *testing.T) {
	if HasDevice(nil) {
		t.Error("HasDevice(nil) = true, want false")
	}
	if HasDevice(NullDeviceHandle{}) {
		t.Error("HasDevice(NullDeviceHandle{}) = true, want false")
	}
}

func TestFactoryOf(t *testing.T) {
	want := NopRenderer{}
	got, err := FactoryOf(want)()
	if err != nil {
		t.Fatalf("FactoryOf()() error = %v", err)
	}
	if got != want {
		t.Errorf("FactoryOf()() = %v, want %v", got, want)
	}
}

func TestFactoryError(t *testing.T) {
	errBoom := errors.New("boom")
	var f Factory = func() (Renderer, error) { return nil, errBoom }
	if _, err := f(); !errors.Is(err, errBoom) {
		t.Errorf("factory error = %v, want %v", err, errBoom)
	}
}

func TestNopRenderer(t *testing.T) {
	var r Renderer = NopRenderer{}
	r.OnSurfaceCreated(NullDeviceHandle{})
	r.OnSurfaceChanged(640, 480)
	r.OnDrawFrame()
}
