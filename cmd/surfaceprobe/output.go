// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/Frost-54/ouzel/capability"
)

// signatureView is one row of the signatures command.
type signatureView struct {
	Field   string `json:"field" yaml:"field"`
	Match   string `json:"match" yaml:"match"`
	Pattern string `json:"pattern" yaml:"pattern"`
}

// encode writes v as json or yaml. It reports false for any other format.
func encode(w io.Writer, format string, v any) (bool, error) {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	case "text", "":
		return false, nil
	default:
		return true, fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

func writeDetect(w io.Writer, format string, v detectView) error {
	if done, err := encode(w, format, v); done {
		return err
	}
	fmt.Fprintln(w, "Host:")
	fmt.Fprintf(w, "  GL ES version: %s\n", versionString(v.Host.GLESVersion))
	fmt.Fprintf(w, "  Fingerprint:   %s\n", v.Host.Fingerprint)
	fmt.Fprintf(w, "  Model:         %s\n", v.Host.Model)
	fmt.Fprintf(w, "  SDK version:   %d\n", v.Host.SDKVersion)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Capability:")
	fmt.Fprintf(w, "  Declared support: %s\n", yesNo(v.Report.DeclaredSupport))
	fmt.Fprintf(w, "  Emulated:         %s", yesNo(v.Report.Emulated))
	if v.Report.MatchedSignature != "" {
		fmt.Fprintf(w, " (%s)", v.Report.MatchedSignature)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Supported:        %s\n", yesNo(v.Supported))
	fmt.Fprintln(w)
	if !v.Supported {
		fmt.Fprintf(w, "Result: %s\n", v.Message)
		return nil
	}
	fmt.Fprintln(w, "Surface:")
	if v.Toolkit == "" {
		fmt.Fprintln(w, "  Toolkit:         none available")
	} else {
		fmt.Fprintf(w, "  Toolkit:         %s\n", v.Toolkit)
	}
	fmt.Fprintf(w, "  Pixel format:    %s\n", v.PixelFormat)
	fmt.Fprintf(w, "  Context version: %s\n", v.ContextVersion)
	return nil
}

func writeSimulate(w io.Writer, format string, v simulateView) error {
	if done, err := encode(w, format, v); done {
		return err
	}
	fmt.Fprintf(w, "Status: %s\n", v.Status)
	fmt.Fprintf(w, "Report: %s\n", v.Report)
	if v.Error != "" {
		fmt.Fprintf(w, "Error:  %s\n", v.Error)
	}
	for _, n := range v.Notifications {
		fmt.Fprintf(w, "Host notified: %s\n", n)
	}
	fmt.Fprintln(w)
	if len(v.SurfaceCalls) == 0 {
		fmt.Fprintln(w, "Surface calls: none")
	} else {
		fmt.Fprintln(w, "Surface calls:")
		for i, c := range v.SurfaceCalls {
			fmt.Fprintf(w, "  %2d. %s\n", i+1, c)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Frames drawn: %d\n", v.Frames)
	fmt.Fprintf(w, "Final state:  %s\n", v.FinalState)
	return nil
}

func writeSignatures(w io.Writer, format string, sigs []signatureView) error {
	if done, err := encode(w, format, sigs); done {
		return err
	}
	table := tablewriter.NewWriter(w)
	table.Header("Field", "Match", "Pattern")
	for _, s := range sigs {
		table.Append([]string{s.Field, s.Match, s.Pattern})
	}
	return table.Render()
}

func versionString(v uint32) string {
	if v == 0 {
		return "none"
	}
	r := capability.Report{ReportedVersion: v}
	return fmt.Sprintf("%d.%d (0x%x)", r.Major(), r.Minor(), v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
