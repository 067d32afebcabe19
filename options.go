// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package ouzel

import (
	"log/slog"

	"github.com/Frost-54/ouzel/render"
	"github.com/Frost-54/ouzel/surface"
)

// Option configures a Bridge during creation.
// Use functional options to customize Bridge behavior.
//
// Example:
//
//	// Default: best available toolkit from the global surface registry
//	b := ouzel.New()
//
//	// Host shell with its own toolkit and notification display
//	b := ouzel.New(
//	    ouzel.WithSurfaceFactory(newGLView),
//	    ouzel.WithNotifier(toast),
//	)
type Option func(*options)

// options holds optional configuration for Bridge creation.
type options struct {
	surfaceFactory  surface.Factory
	registry        *surface.Registry
	surfaceConfig   surface.Config
	notifier        Notifier
	logger          *slog.Logger
	rendererFactory render.Factory
}

// defaultOptions returns the default bridge options.
func defaultOptions() options {
	return options{
		surfaceFactory: nil, // Will use registry if nil
		registry:       nil, // Will be set to surface.Default() if nil
		notifier:       nil, // Unsupported verdicts are only logged if nil
		logger:         nil, // Will follow the package logger if nil
	}
}

// WithSurfaceFactory sets the function that creates the rendering surface.
// It takes precedence over WithRegistry.
func WithSurfaceFactory(f surface.Factory) Option {
	return func(o *options) {
		o.surfaceFactory = f
	}
}

// WithRegistry selects the surface registry the best available toolkit is
// taken from. Defaults to the global registry.
func WithRegistry(r *surface.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithSurfaceConfig sets the configuration passed to the surface factory.
func WithSurfaceConfig(cfg surface.Config) Option {
	return func(o *options) {
		o.surfaceConfig = cfg
	}
}

// WithNotifier sets the host hook that presents the blocking
// "graphics capability not supported" message.
func WithNotifier(n Notifier) Option {
	return func(o *options) {
		o.notifier = n
	}
}

// WithLogger sets a logger for this bridge only.
// Without it the bridge follows SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithRendererFactory sets the factory OnCreate passes to Initialize.
// Hosts that call Initialize directly do not need it.
func WithRendererFactory(f render.Factory) Option {
	return func(o *options) {
		o.rendererFactory = f
	}
}
