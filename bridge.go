// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package ouzel

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Frost-54/ouzel/capability"
	"github.com/Frost-54/ouzel/render"
	"github.com/Frost-54/ouzel/surface"
)

// State is the lifecycle state of a Bridge.
type State uint8

const (
	// StateUninitialized is the state before Initialize.
	StateUninitialized State = iota

	// StateSurfaceActive means a surface exists and a renderer is bound.
	StateSurfaceActive

	// StateSurfaceAbsent means initialization ended without a surface.
	// It is terminal until Close.
	StateSurfaceAbsent

	// StateClosed means the bridge was torn down.
	StateClosed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateSurfaceActive:
		return "surface-active"
	case StateSurfaceAbsent:
		return "surface-absent"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Status is the outcome of Initialize.
type Status uint8

const (
	// StatusActive means a surface was created and the renderer bound.
	StatusActive Status = iota + 1

	// StatusUnsupported means the host lacks the required graphics
	// capability. No surface or renderer was constructed.
	StatusUnsupported

	// StatusFailed means the capability check passed but the surface or
	// renderer could not be brought up.
	StatusFailed
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusActive:
		return "active"
	case StatusUnsupported:
		return "unsupported"
	case StatusFailed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}

// InitResult is the outcome of Initialize.
type InitResult struct {
	Status Status

	// Report is the capability verdict the decision was based on.
	Report capability.Report

	// Surface is the created surface; nil unless Status is StatusActive.
	Surface surface.Surface
}

// Active reports whether a surface was created.
func (r InitResult) Active() bool {
	return r.Status == StatusActive
}

// Bridge creates a rendering surface when the host can support it and
// relays the host's pause/resume lifecycle to that surface.
//
// A Bridge is driven from the host's UI sequence and is not meant for
// concurrent use from several goroutines, with one exception: the render
// callbacks (OnSurfaceCreated, OnSurfaceChanged, OnDrawFrame) arrive from
// the toolkit's rendering sequence and may run concurrently with lifecycle
// calls. Overlapping Initialize calls are detected and only one of them
// creates a surface.
//
// Every query and lifecycle method is safe on a bridge that was never
// initialized, failed, or was closed.
type Bridge struct {
	opts options

	mu       sync.Mutex
	state    State
	running  bool // Initialize in progress
	result   InitResult
	surf     surface.Surface
	renderer render.Renderer
}

// New creates an uninitialized bridge.
func New(opts ...Option) *Bridge {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Bridge{opts: o}
}

// Initialize detects the host's graphics capability and, if supported,
// creates and configures a surface and binds the renderer from factory.
//
// On an unsupported host it notifies the host shell with
// UnsupportedMessage and returns StatusUnsupported together with
// ErrUnsupportedCapability. The factory is only used after a positive
// verdict. Initialize runs at most once per bridge; later calls return the
// first result and ErrAlreadyInitialized.
func (b *Bridge) Initialize(info capability.HostInfo, factory render.Factory) (InitResult, error) {
	b.mu.Lock()
	switch b.state {
	case StateClosed:
		b.mu.Unlock()
		return InitResult{}, ErrClosed
	case StateSurfaceActive, StateSurfaceAbsent:
		res := b.result
		b.mu.Unlock()
		return res, ErrAlreadyInitialized
	}
	if b.running {
		b.mu.Unlock()
		return InitResult{}, ErrAlreadyInitialized
	}
	b.running = true
	b.mu.Unlock()

	log := b.logger()
	report := capability.Detect(info)
	log.Debug("ouzel: graphics capability detected",
		"reported_version", fmt.Sprintf("%#x", report.ReportedVersion),
		"declared", report.DeclaredSupport,
		"emulated", report.Emulated,
		"signature", report.MatchedSignature)

	if !report.Supported() {
		return b.unsupported(report, log)
	}
	if factory == nil {
		// Not terminal: the host may retry with a factory.
		b.mu.Lock()
		b.running = false
		b.mu.Unlock()
		return InitResult{Report: report}, ErrNilRendererFactory
	}

	s, r, err := b.setup(report, factory, log)
	if err != nil {
		log.Warn("ouzel: surface setup failed", "err", err)
		res := InitResult{Status: StatusFailed, Report: report}
		b.mu.Lock()
		b.running = false
		if b.state != StateClosed {
			b.state = StateSurfaceAbsent
		}
		b.result = res
		b.mu.Unlock()
		return res, err
	}

	res := InitResult{Status: StatusActive, Report: report, Surface: s}
	b.mu.Lock()
	b.running = false
	if b.state == StateClosed {
		// Closed while the surface was being set up.
		res = b.closedDuringSetup(report)
		b.mu.Unlock()
		if cerr := closeSurface(s); cerr != nil {
			log.Warn("ouzel: failed to release surface", "err", cerr)
		}
		return res, ErrClosed
	}
	b.surf = s
	b.renderer = r
	b.state = StateSurfaceActive
	b.result = res
	b.mu.Unlock()

	// Installing the callback starts the toolkit's rendering sequence,
	// which may call back into the bridge immediately. A racing Close
	// releases s, and a closed surface drops or ignores the callback.
	s.SetRenderCallback(b)

	log.Info("ouzel: rendering surface created",
		"emulated", report.Emulated,
		"context_version", surface.ContextVersionES2.String())
	return res, nil
}

// closedDuringSetup records the detection result of an Initialize that
// lost to Close. Must be called with b.mu held.
func (b *Bridge) closedDuringSetup(report capability.Report) InitResult {
	b.result = InitResult{Status: StatusFailed, Report: report}
	return b.result
}

func (b *Bridge) unsupported(report capability.Report, log *slog.Logger) (InitResult, error) {
	res := InitResult{Status: StatusUnsupported, Report: report}
	b.mu.Lock()
	b.running = false
	if b.state != StateClosed {
		b.state = StateSurfaceAbsent
	}
	b.result = res
	b.mu.Unlock()

	log.Warn("ouzel: "+UnsupportedMessage,
		"reported_version", fmt.Sprintf("%#x", report.ReportedVersion),
		"required_version", fmt.Sprintf("%#x", capability.MinRequiredVersion))
	if b.opts.notifier != nil {
		b.opts.notifier.Notify(UnsupportedMessage)
	}
	return res, ErrUnsupportedCapability
}

// setup creates the surface, applies the emulator pixel format before the
// context version, and instantiates the renderer. On failure any created
// surface is released.
func (b *Bridge) setup(report capability.Report, factory render.Factory, log *slog.Logger) (surface.Surface, render.Renderer, error) {
	s, err := b.createSurface()
	if err != nil {
		return nil, nil, &SetupError{Step: "create-surface", Err: err}
	}
	propagateLogger(s, log)

	fail := func(step string, err error) (surface.Surface, render.Renderer, error) {
		if cerr := closeSurface(s); cerr != nil {
			log.Warn("ouzel: failed to release surface", "err", cerr)
		}
		return nil, nil, &SetupError{Step: step, Err: err}
	}

	if report.Emulated {
		log.Debug("ouzel: applying fallback pixel format", "format", surface.FallbackPixelFormat.String())
		if err := s.ConfigurePixelFormat(surface.FallbackPixelFormat); err != nil {
			return fail("configure-pixel-format", err)
		}
	}
	if err := s.SetContextVersion(surface.ContextVersionES2); err != nil {
		return fail("set-context-version", err)
	}

	r, err := factory()
	if err != nil {
		return fail("renderer-factory", err)
	}
	if r == nil {
		return fail("renderer-factory", errors.New("factory returned nil renderer"))
	}
	return s, r, nil
}

func (b *Bridge) createSurface() (surface.Surface, error) {
	if b.opts.surfaceFactory != nil {
		s, err := b.opts.surfaceFactory(b.opts.surfaceConfig)
		if err != nil {
			return nil, err
		}
		if s == nil {
			return nil, errors.New("surface factory returned nil surface")
		}
		return s, nil
	}
	reg := b.opts.registry
	if reg == nil {
		reg = surface.Default()
	}
	return reg.NewSurface(b.opts.surfaceConfig)
}

// OnSuspend forwards a pause signal to the surface, if one exists.
func (b *Bridge) OnSuspend() {
	if s := b.activeSurface(); s != nil {
		b.logger().Debug("ouzel: pausing surface")
		s.OnSurfacePause()
	}
}

// OnResume forwards a resume signal to the surface, if one exists.
func (b *Bridge) OnResume() {
	if s := b.activeSurface(); s != nil {
		b.logger().Debug("ouzel: resuming surface")
		s.OnSurfaceResume()
	}
}

// OnCreate implements LifecycleListener using the factory configured with
// WithRendererFactory.
func (b *Bridge) OnCreate(info capability.HostInfo) error {
	_, err := b.Initialize(info, b.opts.rendererFactory)
	return err
}

// OnPause implements LifecycleListener.
func (b *Bridge) OnPause() {
	b.OnSuspend()
}

// activeSurface returns the surface only while the bridge is active.
// The lock is not held while calling out: toolkits may block in
// OnSurfacePause until their rendering sequence, which calls back into
// the bridge, has stopped.
func (b *Bridge) activeSurface() surface.Surface {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state != StateSurfaceActive {
		return nil
	}
	return b.surf
}

// OnSurfaceCreated implements render.Callback by relaying to the bound
// renderer.
func (b *Bridge) OnSurfaceCreated(device render.DeviceHandle) {
	if r := b.boundRenderer(); r != nil {
		if device == nil {
			device = render.NullDeviceHandle{}
		}
		r.OnSurfaceCreated(device)
	}
}

// OnSurfaceChanged implements render.Callback.
func (b *Bridge) OnSurfaceChanged(width, height int) {
	if r := b.boundRenderer(); r != nil {
		r.OnSurfaceChanged(width, height)
	}
}

// OnDrawFrame implements render.Callback.
func (b *Bridge) OnDrawFrame() {
	if r := b.boundRenderer(); r != nil {
		r.OnDrawFrame()
	}
}

func (b *Bridge) boundRenderer() render.Renderer {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.renderer
}

// State returns the current state.
func (b *Bridge) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state
}

// Surface returns the active surface. ok is false when no surface exists.
func (b *Bridge) Surface() (s surface.Surface, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.surf, b.surf != nil
}

// Report returns the capability verdict. ok is false before Initialize
// ran detection.
func (b *Bridge) Report() (r capability.Report, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.result.Report, b.result.Status != 0
}

// Close tears the bridge down: the surface is released if it supports it
// and the renderer binding is dropped. The renderer itself is not closed.
// Close is idempotent and leaves every other method a no-op.
func (b *Bridge) Close() error {
	b.mu.Lock()
	if b.state == StateClosed {
		b.mu.Unlock()
		return nil
	}
	s := b.surf
	b.surf = nil
	b.renderer = nil
	b.state = StateClosed
	b.mu.Unlock()

	if s == nil {
		return nil
	}
	b.logger().Info("ouzel: releasing rendering surface")
	return closeSurface(s)
}

func (b *Bridge) logger() *slog.Logger {
	if b.opts.logger != nil {
		return b.opts.logger
	}
	return Logger()
}

func closeSurface(s surface.Surface) error {
	if c, ok := s.(surface.ClosableSurface); ok {
		return c.Close()
	}
	return nil
}

var _ render.Callback = (*Bridge)(nil)
