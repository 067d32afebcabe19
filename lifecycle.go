// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package ouzel

import "github.com/Frost-54/ouzel/capability"

// LifecycleListener receives the host's activity/window lifecycle.
//
// The host shell owns the platform lifecycle and drives a listener from its
// UI sequence. Calls are serialized: OnCreate at most once, then any
// interleaving of OnPause and OnResume.
type LifecycleListener interface {
	// OnCreate runs when the host window is created.
	OnCreate(info capability.HostInfo) error

	// OnPause runs when the host leaves the foreground.
	OnPause()

	// OnResume runs when the host returns to the foreground.
	OnResume()
}

// Notifier presents a blocking, user-visible message on behalf of the
// bridge. The host shell implements it with whatever its platform offers.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(message string)

// Notify calls f(message).
func (f NotifierFunc) Notify(message string) { f(message) }

var _ LifecycleListener = (*Bridge)(nil)
