// Copyright 2026 The ouzel Authors
// SPDX-License-Identifier: BSD-3-Clause

package capability

import (
	"fmt"
	"strings"
)

// MinRequiredVersion is the lowest GL ES version accepted without the
// emulator override: 2.0 encoded as major<<16 | minor.
const MinRequiredVersion uint32 = 2 << 16

// MinEmulatorSDK is the lowest host OS version code (Gingerbread) at which
// the emulator override is considered.
const MinEmulatorSDK = 9

// HostInfo describes the host as reported by the platform.
// The zero value is a valid descriptor that detects as unsupported.
type HostInfo struct {
	// GLESVersion is the GL ES version requested by the device
	// configuration, encoded as major<<16 | minor.
	GLESVersion uint32 `json:"gles_version" yaml:"gles_version" mapstructure:"gles_version"`

	// Fingerprint is the build fingerprint string.
	Fingerprint string `json:"fingerprint" yaml:"fingerprint" mapstructure:"fingerprint"`

	// Model is the end-user visible device model.
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// Brand, Device, Product and Hardware are carried for diagnostics.
	// They do not take part in emulator matching.
	Brand    string `json:"brand,omitempty" yaml:"brand,omitempty" mapstructure:"brand"`
	Device   string `json:"device,omitempty" yaml:"device,omitempty" mapstructure:"device"`
	Product  string `json:"product,omitempty" yaml:"product,omitempty" mapstructure:"product"`
	Hardware string `json:"hardware,omitempty" yaml:"hardware,omitempty" mapstructure:"hardware"`

	// SDKVersion is the host OS version code.
	SDKVersion int `json:"sdk_version" yaml:"sdk_version" mapstructure:"sdk_version"`
}

// Report is the verdict of Detect. It is an immutable value.
type Report struct {
	// ReportedVersion is the GL ES version the host declared.
	ReportedVersion uint32 `json:"reported_version" yaml:"reported_version"`

	// DeclaredSupport is true when ReportedVersion >= MinRequiredVersion.
	DeclaredSupport bool `json:"declared_support" yaml:"declared_support"`

	// Emulated is the emulator heuristic verdict.
	Emulated bool `json:"emulated" yaml:"emulated"`

	// MatchedSignature names the emulator signature that matched, if any.
	MatchedSignature string `json:"matched_signature,omitempty" yaml:"matched_signature,omitempty"`
}

// Supported reports whether a rendering surface should be created.
func (r Report) Supported() bool {
	return r.DeclaredSupport || r.Emulated
}

// Major returns the major part of ReportedVersion.
func (r Report) Major() int { return int(r.ReportedVersion >> 16) }

// Minor returns the minor part of ReportedVersion.
func (r Report) Minor() int { return int(r.ReportedVersion & 0xffff) }

// String returns a short human-readable summary.
func (r Report) String() string {
	s := fmt.Sprintf("GL ES %d.%d declared=%t emulated=%t", r.Major(), r.Minor(), r.DeclaredSupport, r.Emulated)
	if r.MatchedSignature != "" {
		s += " (" + r.MatchedSignature + ")"
	}
	return s
}

// EncodeVersion packs a GL ES version the way hosts report it.
func EncodeVersion(major, minor int) uint32 {
	return uint32(major)<<16 | uint32(minor)&0xffff
}

// Detect computes the capability verdict for a host.
func Detect(info HostInfo) Report {
	r := Report{
		ReportedVersion: info.GLESVersion,
		DeclaredSupport: info.GLESVersion >= MinRequiredVersion,
	}
	if sig, ok := matchEmulator(info); ok {
		r.Emulated = true
		r.MatchedSignature = sig.String()
	}
	return r
}

// IsProbablyEmulator reports whether info matches a known emulator image.
func IsProbablyEmulator(info HostInfo) bool {
	_, ok := matchEmulator(info)
	return ok
}

func matchEmulator(info HostInfo) (Signature, bool) {
	if info.SDKVersion < MinEmulatorSDK {
		return Signature{}, false
	}
	for _, sig := range signatures {
		if sig.Match(info) {
			return sig, true
		}
	}
	return Signature{}, false
}

// Field selects which HostInfo string a Signature inspects.
type Field uint8

const (
	// FieldFingerprint matches against HostInfo.Fingerprint.
	FieldFingerprint Field = iota

	// FieldModel matches against HostInfo.Model.
	FieldModel
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldFingerprint:
		return "fingerprint"
	case FieldModel:
		return "model"
	default:
		return fmt.Sprintf("Field(%d)", f)
	}
}

// MatchKind selects prefix or substring matching.
type MatchKind uint8

const (
	// MatchPrefix requires the field to start with the pattern.
	MatchPrefix MatchKind = iota

	// MatchContains requires the field to contain the pattern.
	MatchContains
)

// String returns the match kind name.
func (k MatchKind) String() string {
	switch k {
	case MatchPrefix:
		return "prefix"
	case MatchContains:
		return "contains"
	default:
		return fmt.Sprintf("MatchKind(%d)", k)
	}
}

// Signature is one entry of the emulator table.
// Matching is case-sensitive and applies no normalization.
type Signature struct {
	Field   Field
	Kind    MatchKind
	Pattern string
}

// Match reports whether info matches the signature.
func (s Signature) Match(info HostInfo) bool {
	var v string
	switch s.Field {
	case FieldFingerprint:
		v = info.Fingerprint
	case FieldModel:
		v = info.Model
	default:
		return false
	}
	if s.Kind == MatchPrefix {
		return strings.HasPrefix(v, s.Pattern)
	}
	return strings.Contains(v, s.Pattern)
}

// String returns e.g. `fingerprint prefix "generic"`.
func (s Signature) String() string {
	return fmt.Sprintf("%s %s %q", s.Field, s.Kind, s.Pattern)
}

// signatures is the fixed emulator table.
var signatures = [...]Signature{
	{FieldFingerprint, MatchPrefix, "generic"},
	{FieldFingerprint, MatchPrefix, "unknown"},
	{FieldModel, MatchContains, "google_sdk"},
	{FieldModel, MatchContains, "Emulator"},
	{FieldModel, MatchContains, "Android SDK built for x86"},
}

// Signatures returns a copy of the emulator table.
func Signatures() []Signature {
	out := make([]Signature, len(signatures))
	copy(out, signatures[:])
	return out
}
