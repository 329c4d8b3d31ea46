package sysinfo

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
)

const (
	osReleasePath     = "/etc/os-release"
	kernelReleasePath = "/proc/sys/kernel/osrelease"
	kernelArchPath    = "/proc/sys/kernel/arch"
	cpuInfoPath       = "/proc/cpuinfo"

	prettyNameKey = "PRETTY_NAME="
)

// OS families reported by Family.
const (
	FamilyLinux   = "Linux"
	FamilyBSD     = "BSD"
	FamilyUnknown = unknown
)

// bsdMarkers are files only present on BSD systems.
var bsdMarkers = []string{
	"/bin/freebsd-version",
	"/etc/rc.subr",
	"/bsd",
}

// Family classifies the OS by the marker files it ships.
func (p *Prober) Family() string {
	if p.src.Exists(osReleasePath) {
		return FamilyLinux
	}
	for _, m := range bsdMarkers {
		if p.src.Exists(m) {
			return FamilyBSD
		}
	}
	return FamilyUnknown
}

// KernelInfo returns "Family Release (Arch)", e.g. "Linux 6.6.8 (x86_64)".
//
// The release comes from /proc/sys/kernel/osrelease, or from snap on hosts
// without procfs; it is an error only when neither answers. The
// architecture degrades to "unknown" when none of its sources helps.
func (p *Prober) KernelInfo(snap *Snapshot) (string, error) {
	release, err := p.kernelRelease(snap)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s (%s)", p.Family(), release, p.arch(snap)), nil
}

func (p *Prober) kernelRelease(snap *Snapshot) (string, error) {
	raw, err := p.src.ReadFile(kernelReleasePath)
	if err == nil {
		if release := strings.TrimSpace(string(raw)); release != "" {
			return release, nil
		}
	}
	if snap != nil && snap.KernelRelease != "" {
		return snap.KernelRelease, nil
	}
	if err != nil {
		return "", probeErr("kernel", SourceUnavailable, err)
	}
	return "", probeErr("kernel", ParseFailure, fmt.Errorf("%s is empty", kernelReleasePath))
}

func (p *Prober) arch(snap *Snapshot) string {
	if raw, err := p.src.ReadFile(kernelArchPath); err == nil {
		if a := strings.TrimSpace(string(raw)); a != "" {
			return a
		}
	}
	if snap != nil && snap.Arch != "" {
		return snap.Arch
	}

	raw, err := p.src.ReadFile(cpuInfoPath)
	if err != nil {
		return "unknown"
	}
	if hasLongMode(raw) {
		return "x86_64"
	}
	return "unknown"
}

// hasLongMode reports whether any "flags" line of cpuinfo lists "lm", the
// x86 64-bit long mode capability.
func hasLongMode(cpuinfo []byte) bool {
	sc := bufio.NewScanner(bytes.NewReader(cpuinfo))
	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), ":")
		if !ok || strings.TrimSpace(key) != "flags" {
			continue
		}
		for _, f := range strings.Fields(val) {
			if f == "lm" {
				return true
			}
		}
	}
	return false
}

// PrettyName returns PRETTY_NAME from os-release with its quotes removed,
// or "Unknown" if the file or the key is missing.
func (p *Prober) PrettyName() string {
	raw, err := p.src.ReadFile(osReleasePath)
	if err != nil {
		return unknown
	}
	name, err := parsePrettyName(raw)
	if err != nil || name == "" {
		return unknown
	}
	return name
}

var errNoPrettyName = errors.New("no " + strings.TrimSuffix(prettyNameKey, "=") + " entry")

func parsePrettyName(osRelease []byte) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(osRelease))
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, prettyNameKey) {
			continue
		}
		return strings.Trim(strings.TrimPrefix(line, prettyNameKey), `"`), nil
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return "", errNoPrettyName
}
