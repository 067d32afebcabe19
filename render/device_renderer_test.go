// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"sync"
	"testing"

	"github.com/gogpu/gputypes"
)

// formatHandle is a device-less handle with a preferred surface format.
type formatHandle struct {
	NullDeviceHandle
	format gputypes.TextureFormat
}

func (h formatHandle) SurfaceFormat() gputypes.TextureFormat { return h.format }

func TestDeviceRendererSkipsFramesBeforeCreation(t *testing.T) {
	calls := 0
	r := NewDeviceRenderer(func(Frame) { calls++ })

	r.OnDrawFrame()
	r.OnSurfaceChanged(100, 100)
	r.OnDrawFrame()

	if calls != 0 || r.Frames() != 0 {
		t.Errorf("drew %d frames (counter %d) before the surface existed", calls, r.Frames())
	}
	if r.DeviceHandle() != nil {
		t.Error("DeviceHandle() should be nil before OnSurfaceCreated")
	}
	if r.SurfaceFormat() != gputypes.TextureFormatUndefined {
		t.Errorf("SurfaceFormat() = %v, want Undefined", r.SurfaceFormat())
	}
}

func TestDeviceRendererFrames(t *testing.T) {
	var got []Frame
	r := NewDeviceRenderer(func(f Frame) { got = append(got, f) })

	h := formatHandle{format: gputypes.TextureFormatRGBA8Unorm}
	r.OnSurfaceCreated(h)
	r.OnSurfaceChanged(640, 480)
	r.OnDrawFrame()
	r.OnSurfaceChanged(800, 600)
	r.OnDrawFrame()

	if len(got) != 2 {
		t.Fatalf("drew %d frames, want 2", len(got))
	}
	tests := []struct {
		index         uint64
		width, height int
	}{
		{0, 640, 480},
		{1, 800, 600},
	}
	for i, tt := range tests {
		f := got[i]
		if f.Index != tt.index || f.Width != tt.width || f.Height != tt.height {
			t.Errorf("frame %d = {Index:%d %dx%d}, want {Index:%d %dx%d}",
				i, f.Index, f.Width, f.Height, tt.index, tt.width, tt.height)
		}
		if f.Device != DeviceHandle(h) {
			t.Errorf("frame %d device = %v, want %v", i, f.Device, h)
		}
	}
	if r.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", r.Frames())
	}
	if w, hgt := r.Size(); w != 800 || hgt != 600 {
		t.Errorf("Size() = %dx%d, want 800x600", w, hgt)
	}
	if r.SurfaceFormat() != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("SurfaceFormat() = %v, want RGBA8Unorm", r.SurfaceFormat())
	}
}

func TestDeviceRendererNilHandle(t *testing.T) {
	r := NewDeviceRenderer(nil)
	r.OnSurfaceCreated(nil)
	r.OnDrawFrame()

	if _, ok := r.DeviceHandle().(NullDeviceHandle); !ok {
		t.Errorf("DeviceHandle() = %T, want NullDeviceHandle", r.DeviceHandle())
	}
	if r.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", r.Frames())
	}
}

func TestDeviceRendererContextLoss(t *testing.T) {
	r := NewDeviceRenderer(nil)
	r.OnSurfaceCreated(NullDeviceHandle{})
	r.OnDrawFrame()
	r.OnSurfaceCreated(NullDeviceHandle{})
	r.OnDrawFrame()

	if r.Contexts() != 2 {
		t.Errorf("Contexts() = %d, want 2", r.Contexts())
	}
	if r.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2 (counter survives context loss)", r.Frames())
	}
}

func TestDeviceRendererConcurrentReads(t *testing.T) {
	r := NewDeviceRenderer(nil)
	r.OnSurfaceCreated(NullDeviceHandle{})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			r.OnDrawFrame()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = r.Frames()
			_, _ = r.Size()
		}
	}()
	wg.Wait()

	if r.Frames() != 1000 {
		t.Errorf("Frames() = %d, want 1000", r.Frames())
	}
}
