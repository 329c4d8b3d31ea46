package sysinfo

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestFixture() *Fixture {
	return &Fixture{
		Env: map[string]string{
			"USER":                "ada",
			"SHELL":               "/usr/bin/fish",
			"XDG_CURRENT_DESKTOP": "none+GNOME",
			"XDG_SESSION_TYPE":    "wayland",
		},
		Host: "lovelace",
		Files: map[string]string{
			osReleasePath:     ubuntuOSRelease,
			kernelReleasePath: "6.5.0-14-generic\n",
			kernelArchPath:    "x86_64\n",
			uptimePath:        "90000.00 12.00\n",
			memInfoPath:       memInfo,
		},
		FS: FSStat{BlockSize: 4096, Blocks: 26214400, Available: 6553600},
	}
}

func TestCollectGolden(t *testing.T) {
	facts, err := Collect(context.Background(), newTestFixture(), CollectOptions{Logger: quiet})
	require.NoError(t, err)

	assert.Equal(t, Facts{
		Identity:   "ada@lovelace",
		Shell:      "fish",
		Kernel:     "Linux 6.5.0-14-generic (x86_64)",
		PrettyName: "Ubuntu 22.04.3 LTS",
		Desktop:    "GNOME (wayland)",
		Uptime:     "1 days, 1 hours, 0 minutes",
		Memory:     Usage{UsedGiB: 7.8125, TotalGiB: 15.625, Percent: 50},
		Disk:       Usage{UsedGiB: 75, TotalGiB: 100, Percent: 75},
		Family:     FamilyLinux,
	}, facts)
	assert.Equal(t, "7.81 GiB / 15.62 GiB (50%)", facts.Memory.String())
	assert.Equal(t, "75.00 GiB / 100.00 GiB (75%)", facts.Disk.String())
}

func TestCollectPrefersSnapshot(t *testing.T) {
	fx := newTestFixture()
	delete(fx.Files, uptimePath)
	delete(fx.Files, memInfoPath)
	fx.Snap = &Snapshot{Uptime: 3600, TotalRAM: 4 * bytesPerGiB, UnusedRAM: bytesPerGiB}

	facts, err := Collect(context.Background(), fx, CollectOptions{Logger: quiet})
	require.NoError(t, err)
	assert.Equal(t, "1 hours, 0 minutes", facts.Uptime)
	assert.Equal(t, Usage{UsedGiB: 3, TotalGiB: 4, Percent: 75}, facts.Memory)
}

func TestCollectBSDWithoutProcfs(t *testing.T) {
	fx := &Fixture{
		Env:   map[string]string{"USER": "beastie", "SHELL": "/bin/sh"},
		Host:  "daemon",
		Files: map[string]string{"/bin/freebsd-version": ""},
		FS:    FSStat{BlockSize: 4096, Blocks: 26214400, Available: 6553600},
		Snap: &Snapshot{
			Uptime:        120,
			TotalRAM:      4 * bytesPerGiB,
			UnusedRAM:     bytesPerGiB,
			KernelRelease: "14.0-RELEASE",
			Arch:          "amd64",
		},
	}

	facts, err := Collect(context.Background(), fx, CollectOptions{Logger: quiet})
	require.NoError(t, err)
	assert.Equal(t, FamilyBSD, facts.Family)
	assert.Equal(t, "BSD 14.0-RELEASE (amd64)", facts.Kernel)
	assert.Equal(t, "2 minutes", facts.Uptime)
	assert.Equal(t, 75, facts.Memory.Percent)
	assert.Equal(t, 75, facts.Disk.Percent)
}

func TestCollectAbortsOnHardFailure(t *testing.T) {
	fx := newTestFixture()
	delete(fx.Files, memInfoPath)

	facts, err := Collect(context.Background(), fx, CollectOptions{Logger: quiet})
	require.Error(t, err)
	assert.True(t, IsKind(err, SourceUnavailable))
	assert.Equal(t, Facts{}, facts)

	var pe *ProbeError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "memory", pe.Probe)
}

func TestCollectKeepGoing(t *testing.T) {
	fx := newTestFixture()
	fx.HostErr = errors.New("no hostname")
	fx.StatfsErr = errors.New("no statfs")
	delete(fx.Files, kernelReleasePath)

	facts, err := Collect(context.Background(), fx, CollectOptions{KeepGoing: true, Logger: quiet})
	require.Error(t, err)
	assert.ErrorContains(t, err, "identity: syscall failure: no hostname")
	assert.ErrorContains(t, err, "kernel: source unavailable")
	assert.ErrorContains(t, err, "disk: syscall failure")

	assert.Equal(t, "Unknown", facts.Identity)
	assert.Equal(t, "Unknown", facts.Kernel)
	assert.Equal(t, "Unknown", facts.Disk.String())
	assert.Equal(t, "fish", facts.Shell)
	assert.Equal(t, "1 days, 1 hours, 0 minutes", facts.Uptime)
	assert.Equal(t, 50, facts.Memory.Percent)
}

func TestCollectMissingOptionalSources(t *testing.T) {
	fx := &Fixture{
		Host: "bare",
		Files: map[string]string{
			kernelReleasePath: "6.1.0",
			uptimePath:        "0.00 0.00",
			memInfoPath:       memInfo,
		},
		FS: FSStat{BlockSize: 1, Blocks: 100, Available: 100},
	}

	facts, err := Collect(context.Background(), fx, CollectOptions{Logger: quiet})
	require.NoError(t, err)
	assert.Equal(t, "unknown_user@bare", facts.Identity)
	assert.Equal(t, "unknown_shell", facts.Shell)
	assert.Equal(t, "Unknown 6.1.0 (unknown)", facts.Kernel)
	assert.Equal(t, "Unknown", facts.PrettyName)
	assert.Equal(t, "Unknown (Unknown)", facts.Desktop)
	assert.Equal(t, "0 minutes", facts.Uptime)
	assert.Equal(t, 0, facts.Disk.Percent)
}

func TestProbeErrorMessage(t *testing.T) {
	err := probeErr("disk", SyscallFailure, errors.New("EACCES"))
	assert.Equal(t, "disk: syscall failure: EACCES", err.Error())
	assert.Equal(t, "kind(9)", ErrorKind(9).String())
}

func BenchmarkIdentity(b *testing.B) {
	p := NewProber(newTestFixture())
	for i := 0; i < b.N; i++ {
		_, _ = p.Identity()
	}
}

func BenchmarkKernelInfo(b *testing.B) {
	p := NewProber(newTestFixture())
	for i := 0; i < b.N; i++ {
		_, _ = p.KernelInfo(nil)
	}
}

func BenchmarkPrettyName(b *testing.B) {
	p := NewProber(newTestFixture())
	for i := 0; i < b.N; i++ {
		_ = p.PrettyName()
	}
}

func BenchmarkShell(b *testing.B) {
	p := NewProber(newTestFixture())
	for i := 0; i < b.N; i++ {
		_ = p.Shell()
	}
}

func BenchmarkDesktop(b *testing.B) {
	p := NewProber(newTestFixture())
	for i := 0; i < b.N; i++ {
		_ = p.Desktop()
	}
}

func BenchmarkUptime(b *testing.B) {
	p := NewProber(newTestFixture())
	for i := 0; i < b.N; i++ {
		secs, _ := p.Uptime(nil)
		_ = FormatUptime(secs)
	}
}

func BenchmarkMemory(b *testing.B) {
	p := NewProber(newTestFixture())
	for i := 0; i < b.N; i++ {
		_, _ = p.Memory(nil)
	}
}

func BenchmarkDisk(b *testing.B) {
	p := NewProber(newTestFixture())
	for i := 0; i < b.N; i++ {
		_, _ = p.Disk()
	}
}

func BenchmarkCollectLocal(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Collect(context.Background(), Local(), CollectOptions{KeepGoing: true, Logger: quiet})
	}
}
