// Package sysinfo - Access to operating system state
package sysinfo

import (
	"context"
	"fmt"
	"os"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// Source is the capability every probe reads through. The local
// implementation talks to the real operating system; Fixture serves
// canned values so probes can be exercised deterministically.
type Source interface {
	// LookupEnv behaves like os.LookupEnv.
	LookupEnv(key string) (string, bool)

	// Hostname returns the kernel's host name.
	Hostname() (string, error)

	// ReadFile returns the whole content of a file or pseudo-file.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether name can be stat'ed.
	Exists(name string) bool

	// Statfs returns filesystem statistics for the mount containing path.
	Statfs(path string) (FSStat, error)

	// Snapshot returns the aggregate uptime/RAM query, when the platform
	// has one. Callers fall back to pseudo-files on error.
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// FSStat is the subset of statvfs(3) the disk probe needs.
type FSStat struct {
	// BlockSize is the fundamental block size in bytes
	BlockSize uint64

	// Blocks is the total number of blocks on the filesystem
	Blocks uint64

	// Available is the number of blocks available to unprivileged users
	Available uint64
}

// Snapshot is a single system information query shared by the uptime and
// memory probes so the platform is only asked once.
type Snapshot struct {
	// Uptime is the time since boot in seconds
	Uptime float64

	// TotalRAM is the physical memory size in bytes
	TotalRAM uint64

	// UnusedRAM is the memory available for new allocations in bytes
	UnusedRAM uint64

	// KernelRelease is the uname release string, empty if unknown
	KernelRelease string

	// Arch is the uname machine string, empty if unknown
	Arch string
}

type localSource struct{}

// Local returns a Source backed by the running operating system.
func Local() Source {
	return localSource{}
}

func (localSource) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

func (localSource) Hostname() (string, error) {
	return os.Hostname()
}

func (localSource) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

func (localSource) Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

func (localSource) Statfs(path string) (FSStat, error) {
	return statfs(path)
}

// Snapshot queries uptime, virtual memory and the kernel identity through
// gopsutil, which knows how to ask each supported platform for them. The
// kernel fields are left empty when that part of the query fails.
func (localSource) Snapshot(ctx context.Context) (*Snapshot, error) {
	up, err := host.UptimeWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get uptime: %w", err)
	}
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get memory info: %w", err)
	}
	snap := &Snapshot{
		Uptime:    float64(up),
		TotalRAM:  vm.Total,
		UnusedRAM: vm.Available,
	}
	if release, err := host.KernelVersionWithContext(ctx); err == nil {
		snap.KernelRelease = release
	}
	if arch, err := host.KernelArch(); err == nil {
		snap.Arch = arch
	}
	return snap, nil
}
