// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mobile drives an ouzel lifecycle listener from
// golang.org/x/mobile lifecycle events.
//
// The x/mobile app loop reports stage crossings rather than activity
// callbacks. Shell maps them onto the three entry points the bridge
// exposes:
//
//	crossing on  StageAlive   -> OnCreate (once)
//	crossing on  StageFocused -> OnResume
//	crossing off StageFocused -> OnPause
//	reaching     StageDead    -> Close, if the listener supports it
//
// # Usage
//
//	b := ouzel.New(ouzel.WithRendererFactory(newRenderer))
//	shell := mobile.NewShell(b, hostInfo)
//
//	app.Main(func(a app.App) {
//	    for e := range a.Events() {
//	        if shell.Handle(a.Filter(e)) {
//	            return
//	        }
//	    }
//	})
//
// # Thread Safety
//
// Shell is NOT safe for concurrent use. Feed it from the app's event loop.
package mobile
