// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/Frost-54/ouzel/capability"
	"github.com/Frost-54/ouzel/surface"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"", 0, false},
		{"0x20000", 0x20000, false},
		{"131072", 0x20000, false},
		{"65536", 0x10000, false},
		{"2.0", 0x20000, false},
		{"3.1", 0x30001, false},
		{"2", 0x20000, false},
		{" 0x30000 ", 0x30000, false},
		{"0", 0, false},
		{"two", 0, true},
		{"2.x", 0, true},
		{"-1.0", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseVersion(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseVersion(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseVersion(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseEvents(t *testing.T) {
	got, err := parseEvents(" Pause, resume,,frame ,close")
	if err != nil {
		t.Fatalf("parseEvents: %v", err)
	}
	want := []string{"pause", "resume", "frame", "close"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseEvents = %v, want %v", got, want)
	}
	if _, err := parseEvents("pause,explode"); err == nil {
		t.Error("parseEvents accepted an unknown event")
	}
}

func TestDetectFlags(t *testing.T) {
	out, err := run(t, "detect", "-o", "json",
		"--gles-version", "1.0", "--fingerprint", "generic_x86", "--model", "sdk_gphone", "--sdk-version", "9")
	if err != nil {
		t.Fatalf("detect: %v\n%s", err, out)
	}
	var v detectView
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if v.Report.DeclaredSupport || !v.Report.Emulated || !v.Supported {
		t.Errorf("report = %+v, want emulated and supported", v.Report)
	}
	if v.PixelFormat != "R8G8B8A8 D16 S0" {
		t.Errorf("PixelFormat = %q", v.PixelFormat)
	}
	if v.ContextVersion != "ES 2" {
		t.Errorf("ContextVersion = %q", v.ContextVersion)
	}
}

func TestDetectConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.yaml")
	cfg := "gles_version: 0x30000\nfingerprint: acme/phone/user\nmodel: Phone 9\nsdk_version: 33\n"
	if err := os.WriteFile(path, []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "detect", "--config", path, "-o", "yaml")
	if err != nil {
		t.Fatalf("detect: %v\n%s", err, out)
	}
	var v detectView
	if err := yaml.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if v.Host.GLESVersion != 0x30000 || v.Host.Model != "Phone 9" || v.Host.SDKVersion != 33 {
		t.Errorf("host = %+v", v.Host)
	}
	if !v.Report.DeclaredSupport || v.Report.Emulated {
		t.Errorf("report = %+v, want declared support only", v.Report)
	}
	if v.PixelFormat != "default" {
		t.Errorf("PixelFormat = %q, want default", v.PixelFormat)
	}
}

func TestDetectFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host.yaml")
	if err := os.WriteFile(path, []byte("gles_version: \"2.0\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	out, err := run(t, "detect", "--config", path, "--gles-version", "1.1", "-o", "json")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	var v detectView
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatal(err)
	}
	if v.Host.GLESVersion != 0x10001 {
		t.Errorf("GLESVersion = %#x, want flag value 0x10001", v.Host.GLESVersion)
	}
}

func TestDetectEnv(t *testing.T) {
	t.Setenv("SURFACEPROBE_GLES_VERSION", "0x20000")
	t.Setenv("SURFACEPROBE_MODEL", "Tablet")
	out, err := run(t, "detect", "-o", "json")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	var v detectView
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatal(err)
	}
	if v.Host.GLESVersion != 0x20000 || v.Host.Model != "Tablet" {
		t.Errorf("host = %+v", v.Host)
	}
}

func TestDetectUnsupportedText(t *testing.T) {
	out, err := run(t, "detect", "--gles-version", "1.0", "--model", "Phone")
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if !strings.Contains(out, "graphics capability not supported") {
		t.Errorf("output missing notice:\n%s", out)
	}
	if strings.Contains(out, "Pixel format") {
		t.Errorf("unsupported host printed a surface section:\n%s", out)
	}
}

func TestDetectMissingConfig(t *testing.T) {
	_, err := run(t, "detect", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestDetectBadVersion(t *testing.T) {
	if _, err := run(t, "detect", "--gles-version", "es2"); err == nil {
		t.Fatal("expected an error for an invalid version")
	}
}

func TestUnknownOutputFormat(t *testing.T) {
	if _, err := run(t, "signatures", "-o", "xml"); err == nil {
		t.Fatal("expected an error for an unknown output format")
	}
}

func TestSimulateEmulator(t *testing.T) {
	out, err := run(t, "simulate", "-o", "json",
		"--gles-version", "0x10000", "--fingerprint", "generic_x86", "--sdk-version", "9")
	if err != nil {
		t.Fatalf("simulate: %v\n%s", err, out)
	}
	var v simulateView
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	want := []string{
		"configure-pixel-format R8G8B8A8 D16 S0",
		"set-context-version ES 2",
		"set-render-callback",
		"pause",
		"resume",
	}
	if !reflect.DeepEqual(v.SurfaceCalls, want) {
		t.Errorf("SurfaceCalls = %v, want %v", v.SurfaceCalls, want)
	}
	if v.Status != "active" || v.FinalState != "surface-active" {
		t.Errorf("status %q, final state %q", v.Status, v.FinalState)
	}
	// The frame between pause and resume is dropped.
	if v.Frames != 2 {
		t.Errorf("Frames = %d, want 2", v.Frames)
	}
	if len(v.Notifications) != 0 {
		t.Errorf("Notifications = %v, want none", v.Notifications)
	}
}

func TestSimulateNativeSkipsPixelFormat(t *testing.T) {
	out, err := run(t, "simulate", "-o", "json", "--gles-version", "2.0", "--events", "")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	var v simulateView
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatal(err)
	}
	want := []string{"set-context-version ES 2", "set-render-callback"}
	if !reflect.DeepEqual(v.SurfaceCalls, want) {
		t.Errorf("SurfaceCalls = %v, want %v", v.SurfaceCalls, want)
	}
	if v.Frames != 0 {
		t.Errorf("Frames = %d, want 0", v.Frames)
	}
}

func TestSimulateUnsupported(t *testing.T) {
	out, err := run(t, "simulate", "-o", "yaml", "--gles-version", "1.0", "--events", "pause,resume,frame")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	var v simulateView
	if err := yaml.Unmarshal([]byte(out), &v); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if v.Status != "unsupported" || v.FinalState != "surface-absent" {
		t.Errorf("status %q, final state %q", v.Status, v.FinalState)
	}
	if len(v.SurfaceCalls) != 0 {
		t.Errorf("SurfaceCalls = %v, want none", v.SurfaceCalls)
	}
	if !reflect.DeepEqual(v.Notifications, []string{"graphics capability not supported"}) {
		t.Errorf("Notifications = %v", v.Notifications)
	}
	if v.Error != "" {
		t.Errorf("Error = %q, want empty", v.Error)
	}
}

func TestSimulateClose(t *testing.T) {
	out, err := run(t, "simulate", "-o", "json", "--gles-version", "2.0", "--events", "close,pause,frame")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	var v simulateView
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		t.Fatal(err)
	}
	want := []string{"set-context-version ES 2", "set-render-callback", "close"}
	if !reflect.DeepEqual(v.SurfaceCalls, want) {
		t.Errorf("SurfaceCalls = %v, want %v", v.SurfaceCalls, want)
	}
	if v.FinalState != "closed" {
		t.Errorf("FinalState = %q, want closed", v.FinalState)
	}
	if v.Frames != 0 {
		t.Errorf("Frames = %d, want 0", v.Frames)
	}
}

func TestSimulateText(t *testing.T) {
	out, err := run(t, "simulate", "--gles-version", "2.0", "--events", "pause")
	if err != nil {
		t.Fatalf("simulate: %v", err)
	}
	for _, s := range []string{"Status: active", "3. pause", "Final state:  surface-active"} {
		if !strings.Contains(out, s) {
			t.Errorf("output missing %q:\n%s", s, out)
		}
	}
}

func TestSignatures(t *testing.T) {
	out, err := run(t, "signatures", "-o", "json")
	if err != nil {
		t.Fatalf("signatures: %v", err)
	}
	var sigs []signatureView
	if err := json.Unmarshal([]byte(out), &sigs); err != nil {
		t.Fatal(err)
	}
	if len(sigs) != 5 {
		t.Fatalf("got %d signatures, want 5", len(sigs))
	}
	if sigs[0] != (signatureView{Field: "fingerprint", Match: "prefix", Pattern: "generic"}) {
		t.Errorf("sigs[0] = %+v", sigs[0])
	}

	text, err := run(t, "signatures")
	if err != nil {
		t.Fatalf("signatures: %v", err)
	}
	if !strings.Contains(text, "Android SDK built for x86") {
		t.Errorf("text output missing model signature:\n%s", text)
	}
}

// brokenCloseSurface fails to release its resources.
type brokenCloseSurface struct {
	*surface.Headless
}

func (s brokenCloseSurface) Close() error {
	_ = s.Headless.Close()
	return errors.New("context lost")
}

func TestSimulateReportsCloseError(t *testing.T) {
	info := capability.HostInfo{GLESVersion: 0x20000}
	wrap := func(h *surface.Headless) surface.Surface { return brokenCloseSurface{h} }

	v := simulate(info, surface.Config{}, []string{"close"}, wrap)
	if v.Error != "close: context lost" {
		t.Errorf("Error = %q, want %q", v.Error, "close: context lost")
	}
	if v.FinalState != "closed" {
		t.Errorf("FinalState = %q, want closed", v.FinalState)
	}
}

func TestHostKeysBindFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, key := range hostKeys {
		if cmd.PersistentFlags().Lookup(strings.ReplaceAll(key, "_", "-")) == nil {
			t.Errorf("config key %q has no flag", key)
		}
	}
}

func TestDetectToolkit(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		wantToolkit string
	}{
		{"supported", "2.0", surface.HeadlessName},
		{"unsupported", "1.0", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "detect", "-o", "json", "--gles-version", tt.version)
			if err != nil {
				t.Fatalf("detect: %v", err)
			}
			var v detectView
			if err := json.Unmarshal([]byte(out), &v); err != nil {
				t.Fatal(err)
			}
			if v.Toolkit != tt.wantToolkit {
				t.Errorf("Toolkit = %q, want %q", v.Toolkit, tt.wantToolkit)
			}
			found := false
			for _, tk := range v.Toolkits {
				if tk.Name == surface.HeadlessName {
					found = true
					if tk.Priority != 10 || !tk.Available {
						t.Errorf("headless toolkit = %+v, want priority 10 and available", tk)
					}
				}
			}
			if !found {
				t.Errorf("Toolkits = %+v, missing %q", v.Toolkits, surface.HeadlessName)
			}
		})
	}
}
