// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package ouzel

import (
	"errors"
	"fmt"
)

// UnsupportedMessage is the fixed text shown to the user when the host
// cannot render at the required level.
const UnsupportedMessage = "graphics capability not supported"

var (
	// ErrUnsupportedCapability is returned by Initialize when the host
	// neither declares the required graphics level nor looks like an
	// emulator. It is terminal for the bridge.
	ErrUnsupportedCapability = errors.New("ouzel: " + UnsupportedMessage)

	// ErrAlreadyInitialized is returned when Initialize is called twice.
	// Capability detection and surface creation are one-shot.
	ErrAlreadyInitialized = errors.New("ouzel: bridge already initialized")

	// ErrClosed is returned when Initialize is called on a torn-down bridge.
	ErrClosed = errors.New("ouzel: bridge closed")

	// ErrNilRendererFactory is returned when Initialize gets no factory
	// for a supported host. The bridge stays uninitialized. Unsupported
	// hosts never need a factory.
	ErrNilRendererFactory = errors.New("ouzel: renderer factory must not be nil")
)

// SetupError reports a failure while bringing up a surface after the
// capability check passed. Step names the outbound call that failed.
type SetupError struct {
	Step string
	Err  error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("ouzel: surface setup failed at %s: %v", e.Step, e.Err)
}

// Unwrap returns the underlying error.
func (e *SetupError) Unwrap() error {
	return e.Err
}
