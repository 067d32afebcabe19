// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Frost-54/ouzel"
	"github.com/Frost-54/ouzel/capability"
	"github.com/Frost-54/ouzel/render"
	"github.com/Frost-54/ouzel/surface"
)

// simulateView is the simulate command's result.
type simulateView struct {
	Status        string            `json:"status" yaml:"status"`
	Report        capability.Report `json:"report" yaml:"report"`
	Error         string            `json:"error,omitempty" yaml:"error,omitempty"`
	Notifications []string          `json:"notifications,omitempty" yaml:"notifications,omitempty"`
	SurfaceCalls  []string          `json:"surface_calls" yaml:"surface_calls"`
	Frames        int               `json:"frames" yaml:"frames"`
	FinalState    string            `json:"final_state" yaml:"final_state"`
}

func newSimulateCmd(p *probe) *cobra.Command {
	var (
		events        string
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay host lifecycle signals against a headless surface",
		Long: `Creates a lifecycle bridge backed by a headless surface, initializes it
with the host descriptor and replays a comma separated list of events:

  pause    host left the foreground
  resume   host returned to the foreground
  frame    toolkit draws one frame
  close    host tears the bridge down`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := p.hostInfo()
			if err != nil {
				return err
			}
			evs, err := parseEvents(events)
			if err != nil {
				return err
			}
			view := simulate(info, surface.Config{Label: "surfaceprobe", Width: width, Height: height}, evs, nil)
			return writeSimulate(cmd.OutOrStdout(), p.output, view)
		},
	}
	cmd.Flags().StringVar(&events, "events", "frame,pause,frame,resume,frame", "lifecycle events to replay")
	cmd.Flags().IntVar(&width, "width", 1080, "surface width in pixels")
	cmd.Flags().IntVar(&height, "height", 1920, "surface height in pixels")
	return cmd
}

var validEvents = map[string]bool{"pause": true, "resume": true, "frame": true, "close": true}

func parseEvents(s string) ([]string, error) {
	var out []string
	for _, e := range strings.Split(s, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !validEvents[e] {
			return nil, fmt.Errorf("unknown event %q (want pause, resume, frame or close)", e)
		}
		out = append(out, e)
	}
	return out, nil
}

// simulate runs a bridge over a headless surface and records what the
// surface saw. A non-nil wrap decorates the surface handed to the bridge.
func simulate(info capability.HostInfo, cfg surface.Config, events []string, wrap func(*surface.Headless) surface.Surface) simulateView {
	var (
		view     simulateView
		headless *surface.Headless
	)
	b := ouzel.New(
		ouzel.WithSurfaceConfig(cfg),
		ouzel.WithSurfaceFactory(func(cfg surface.Config) (surface.Surface, error) {
			headless = surface.NewHeadless(cfg)
			if wrap != nil {
				return wrap(headless), nil
			}
			return headless, nil
		}),
		ouzel.WithNotifier(ouzel.NotifierFunc(func(msg string) {
			view.Notifications = append(view.Notifications, msg)
		})),
	)

	renderer := render.NewDeviceRenderer(nil)
	res, err := b.Initialize(info, render.FactoryOf(renderer))
	view.Status = res.Status.String()
	view.Report = res.Report
	if err != nil && !errors.Is(err, ouzel.ErrUnsupportedCapability) {
		view.Error = err.Error()
	}
	if headless != nil && res.Active() {
		headless.Create()
	}

	for _, e := range events {
		switch e {
		case "pause":
			b.OnSuspend()
		case "resume":
			b.OnResume()
		case "frame":
			if headless != nil {
				headless.DrawFrame()
			}
		case "close":
			if err := b.Close(); err != nil {
				view.Error = fmt.Sprintf("close: %v", err)
			}
		}
	}

	view.SurfaceCalls = []string{}
	if headless != nil {
		for _, c := range headless.Calls() {
			view.SurfaceCalls = append(view.SurfaceCalls, describeCall(c))
		}
	}
	view.Frames = int(renderer.Frames())
	view.FinalState = b.State().String()
	return view
}

func describeCall(c surface.Call) string {
	switch c.Op {
	case surface.OpConfigurePixelFormat:
		return c.Op.String() + " " + c.Format.String()
	case surface.OpSetContextVersion:
		return c.Op.String() + " " + c.Version.String()
	default:
		return c.Op.String()
	}
}
