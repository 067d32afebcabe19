// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Frost-54/ouzel"
	"github.com/Frost-54/ouzel/capability"
)

// probe holds the state shared by all subcommands.
type probe struct {
	v       *viper.Viper
	cfgFile string
	output  string
	verbose bool
}

func newRootCmd() *cobra.Command {
	p := &probe{v: viper.New()}

	root := &cobra.Command{
		Use:   "surfaceprobe",
		Short: "Probe the ouzel rendering-surface bootstrap",
		Long: `surfaceprobe evaluates whether a host described by flags, a config file
or environment variables would get an OpenGL ES 2.0 rendering surface, and
replays host lifecycle signals against a headless surface.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if p.verbose {
				ouzel.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
			return p.initConfig()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&p.cfgFile, "config", "", "host descriptor file (yaml)")
	pf.StringVarP(&p.output, "output", "o", "text", "output format: text, json, yaml")
	pf.BoolVarP(&p.verbose, "verbose", "v", false, "log bridge diagnostics to stderr")

	pf.String("gles-version", "", "GL ES version the host reports (0x20000, 131072 or 2.0)")
	pf.String("fingerprint", "", "host build fingerprint")
	pf.String("model", "", "host device model")
	pf.String("brand", "", "host brand")
	pf.String("device", "", "host device name")
	pf.String("product", "", "host product name")
	pf.String("hardware", "", "host hardware name")
	pf.Int("sdk-version", 0, "host OS version code")

	for _, key := range hostKeys {
		if err := p.v.BindPFlag(key, pf.Lookup(strings.ReplaceAll(key, "_", "-"))); err != nil {
			panic(fmt.Sprintf("surfaceprobe: bind flag %s: %v", key, err))
		}
	}

	root.AddCommand(newDetectCmd(p), newSimulateCmd(p), newSignaturesCmd(p))
	return root
}

// hostKeys are the config keys of a host descriptor.
var hostKeys = []string{
	"gles_version", "fingerprint", "model", "brand",
	"device", "product", "hardware", "sdk_version",
}

// initConfig reads the config file, if any, and environment variables.
func (p *probe) initConfig() error {
	p.v.SetEnvPrefix("SURFACEPROBE")
	p.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	p.v.AutomaticEnv()

	if p.cfgFile == "" {
		return nil
	}
	p.v.SetConfigFile(p.cfgFile)
	if err := p.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", p.cfgFile, err)
	}
	return nil
}

// hostInfo assembles the descriptor from the merged configuration.
func (p *probe) hostInfo() (capability.HostInfo, error) {
	version, err := parseVersion(p.v.GetString("gles_version"))
	if err != nil {
		return capability.HostInfo{}, err
	}
	return capability.HostInfo{
		GLESVersion: version,
		Fingerprint: p.v.GetString("fingerprint"),
		Model:       p.v.GetString("model"),
		Brand:       p.v.GetString("brand"),
		Device:      p.v.GetString("device"),
		Product:     p.v.GetString("product"),
		Hardware:    p.v.GetString("hardware"),
		SDKVersion:  p.v.GetInt("sdk_version"),
	}, nil
}

// parseVersion accepts an encoded version ("0x20000", "131072") or a
// dotted one ("2.0", "3"). An empty string is version 0.
func parseVersion(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if major, minor, ok := strings.Cut(s, "."); ok {
		ma, err1 := strconv.Atoi(major)
		mi, err2 := strconv.Atoi(minor)
		if err1 != nil || err2 != nil || ma < 0 || mi < 0 || mi > 0xffff {
			return 0, fmt.Errorf("invalid GL ES version %q", s)
		}
		return capability.EncodeVersion(ma, mi), nil
	}
	n, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid GL ES version %q: %w", s, err)
	}
	// A bare small number is a major version, not an encoded one.
	if n > 0 && n < 0x100 {
		return capability.EncodeVersion(int(n), 0), nil
	}
	return uint32(n), nil
}

func newSignaturesCmd(p *probe) *cobra.Command {
	return &cobra.Command{
		Use:   "signatures",
		Short: "List the emulator signatures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sigs := make([]signatureView, 0, len(capability.Signatures()))
			for _, s := range capability.Signatures() {
				sigs = append(sigs, signatureView{Field: s.Field.String(), Match: s.Kind.String(), Pattern: s.Pattern})
			}
			return writeSignatures(cmd.OutOrStdout(), p.output, sigs)
		},
	}
}
