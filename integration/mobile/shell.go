// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package mobile

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/mobile/event/lifecycle"

	"github.com/Frost-54/ouzel"
	"github.com/Frost-54/ouzel/capability"
)

// HostInfoFunc returns the descriptor of the running host. It is called
// once, when the app first becomes alive.
type HostInfoFunc func() capability.HostInfo

// Shell translates x/mobile lifecycle events into listener calls.
type Shell struct {
	listener ouzel.LifecycleListener
	hostInfo HostInfoFunc
	logger   *slog.Logger

	created bool
	dead    bool
	err     error
}

// NewShell creates a shell for listener. A nil hostInfo yields the zero
// descriptor, which detects as unsupported.
func NewShell(listener ouzel.LifecycleListener, hostInfo HostInfoFunc) *Shell {
	return &Shell{listener: listener, hostInfo: hostInfo}
}

// SetLogger sets the logger for this shell.
// Without it the shell follows ouzel.Logger.
func (s *Shell) SetLogger(l *slog.Logger) {
	s.logger = l
}

// Handle processes one event from the app loop. Events other than
// lifecycle.Event are ignored. It reports whether the app reached
// StageDead and the loop should stop.
func (s *Shell) Handle(e any) bool {
	ev, ok := e.(lifecycle.Event)
	if !ok || s.dead {
		return s.dead
	}

	// Pause before dying; create before resuming.
	if ev.Crosses(lifecycle.StageFocused) == lifecycle.CrossOff {
		s.listener.OnPause()
	}
	if ev.Crosses(lifecycle.StageAlive) == lifecycle.CrossOn && !s.created {
		s.create()
	}
	if ev.Crosses(lifecycle.StageFocused) == lifecycle.CrossOn {
		s.listener.OnResume()
	}
	if ev.To == lifecycle.StageDead {
		s.dead = true
		s.destroy()
	}
	return s.dead
}

// Run feeds events from ch into Handle until the app dies or ch closes.
// It returns the error OnCreate reported, if any, joined with a teardown
// error.
func (s *Shell) Run(ch <-chan any) error {
	for e := range ch {
		if s.Handle(e) {
			break
		}
	}
	return s.err
}

// Err returns the error OnCreate reported, if any.
func (s *Shell) Err() error {
	return s.err
}

func (s *Shell) create() {
	s.created = true
	var info capability.HostInfo
	if s.hostInfo != nil {
		info = s.hostInfo()
	}
	if err := s.listener.OnCreate(info); err != nil {
		s.err = err
		level := slog.LevelError
		if errors.Is(err, ouzel.ErrUnsupportedCapability) {
			level = slog.LevelWarn
		}
		s.log().Log(context.Background(), level, "mobile: host window created without a surface", "err", err)
	}
}

func (s *Shell) destroy() {
	c, ok := s.listener.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		s.log().Warn("mobile: teardown failed", "err", err)
		s.err = errors.Join(s.err, err)
	}
}

func (s *Shell) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return ouzel.Logger()
}
