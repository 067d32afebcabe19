// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"github.com/spf13/cobra"

	"github.com/Frost-54/ouzel"
	"github.com/Frost-54/ouzel/capability"
	"github.com/Frost-54/ouzel/surface"
)

// detectView is the detect command's result.
type detectView struct {
	Host           capability.HostInfo `json:"host" yaml:"host"`
	Report         capability.Report   `json:"report" yaml:"report"`
	Supported      bool                `json:"supported" yaml:"supported"`
	PixelFormat    string              `json:"pixel_format,omitempty" yaml:"pixel_format,omitempty"`
	ContextVersion string              `json:"context_version,omitempty" yaml:"context_version,omitempty"`
	Message        string              `json:"message,omitempty" yaml:"message,omitempty"`
	Toolkit        string              `json:"toolkit,omitempty" yaml:"toolkit,omitempty"`
	Toolkits       []toolkitView       `json:"toolkits" yaml:"toolkits"`
}

// toolkitView is one registered surface toolkit.
type toolkitView struct {
	Name      string `json:"name" yaml:"name"`
	Priority  int    `json:"priority" yaml:"priority"`
	Available bool   `json:"available" yaml:"available"`
}

func newDetectCmd(p *probe) *cobra.Command {
	return &cobra.Command{
		Use:   "detect",
		Short: "Evaluate the graphics capability of a host",
		Long: `Runs capability detection on the host descriptor and reports whether a
rendering surface would be created and how it would be configured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info, err := p.hostInfo()
			if err != nil {
				return err
			}
			return writeDetect(cmd.OutOrStdout(), p.output, buildDetectView(info))
		},
	}
}

func buildDetectView(info capability.HostInfo) detectView {
	r := capability.Detect(info)
	v := detectView{Host: info, Report: r, Supported: r.Supported(), Toolkits: toolkits()}
	if avail := surface.Available(); r.Supported() && len(avail) > 0 {
		v.Toolkit = avail[0]
	}
	switch {
	case !r.Supported():
		v.Message = ouzel.UnsupportedMessage
	case r.Emulated:
		v.PixelFormat = surface.FallbackPixelFormat.String()
		v.ContextVersion = surface.ContextVersionES2.String()
	default:
		v.PixelFormat = "default"
		v.ContextVersion = surface.ContextVersionES2.String()
	}
	return v
}

// toolkits lists the registered surface toolkits in selection order.
func toolkits() []toolkitView {
	available := make(map[string]bool)
	for _, name := range surface.Available() {
		available[name] = true
	}
	out := []toolkitView{}
	for _, name := range surface.List() {
		e, ok := surface.Get(name)
		if !ok {
			continue
		}
		out = append(out, toolkitView{Name: name, Priority: e.Priority, Available: available[name]})
	}
	return out
}
