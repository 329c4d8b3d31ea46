// Package sysinfo gathers the facts a fetch summary shows: who and where the
// user is, what OS and kernel run, the desktop session, uptime, memory and
// root filesystem usage.
//
// Each fact comes from an independent probe on Prober. Probes either
// substitute a documented fallback ("Unknown", "unknown_shell", ...) when
// their source is legitimately absent, or return a *ProbeError when the
// source is something every supported host must provide.
package sysinfo

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// snapshotTimeout bounds the aggregate system query made by Collect.
const snapshotTimeout = 2 * time.Second

// Facts is everything a fetch summary displays. Collect returns it by value;
// nothing in this package keeps a reference to it.
type Facts struct {
	// Identity is "user@host"
	Identity string `json:"identity" yaml:"identity"`

	// Shell is the basename of the login shell
	Shell string `json:"shell" yaml:"shell"`

	// Kernel is "Family Release (Arch)"
	Kernel string `json:"kernel" yaml:"kernel"`

	// PrettyName is the human-readable distribution name
	PrettyName string `json:"pretty_name" yaml:"pretty_name"`

	// Desktop is "Desktop (SessionType)"
	Desktop string `json:"desktop" yaml:"desktop"`

	// Uptime is "N days, N hours, N minutes"
	Uptime string `json:"uptime" yaml:"uptime"`

	// Memory is physical memory usage
	Memory Usage `json:"memory" yaml:"memory"`

	// Disk is root filesystem usage
	Disk Usage `json:"disk" yaml:"disk"`

	// Family is the OS family used to pick a logo
	Family string `json:"family" yaml:"family"`
}

// Prober runs probes against a Source.
type Prober struct {
	src Source
}

// NewProber returns a Prober reading from src.
func NewProber(src Source) *Prober {
	return &Prober{src: src}
}

// CollectOptions tunes Collect.
type CollectOptions struct {
	// KeepGoing substitutes "Unknown" for facts whose probe hard-fails
	// instead of aborting. The failures are still returned, joined.
	KeepGoing bool

	// Logger receives per-probe debug records and, with KeepGoing, a
	// warning per failure. Nil means slog.Default().
	Logger *slog.Logger
}

// Collect runs every probe once, in display order, and returns the facts.
//
// Parameters:
//   - ctx: Bounds the aggregate snapshot query
//   - src: Where probes read from
//   - opts: Failure policy and logging
//
// Returns:
//   - The facts. Without KeepGoing they are only meaningful if err is nil.
//   - The first hard failure, or with KeepGoing all of them joined
func Collect(ctx context.Context, src Source, opts CollectOptions) (Facts, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	p := NewProber(src)

	snapCtx, cancel := context.WithTimeout(ctx, snapshotTimeout)
	snap, err := src.Snapshot(snapCtx)
	cancel()
	if err != nil {
		log.Debug("system snapshot unavailable, reading pseudo-files", slog.String("error", err.Error()))
		snap = nil
	}

	var (
		facts Facts
		errs  []error
	)
	// fail records err and reports whether collection must stop.
	fail := func(err error) bool {
		errs = append(errs, err)
		if !opts.KeepGoing {
			return true
		}
		log.Warn("probe failed", slog.String("error", err.Error()))
		return false
	}

	if facts.Identity, err = p.Identity(); err != nil {
		if fail(err) {
			return Facts{}, err
		}
		facts.Identity = unknown
	}
	log.Debug("collected identity", slog.String("identity", facts.Identity))

	facts.Shell = p.Shell()
	log.Debug("collected shell", slog.String("shell", facts.Shell))

	facts.Family = p.Family()
	if facts.Kernel, err = p.KernelInfo(snap); err != nil {
		if fail(err) {
			return Facts{}, err
		}
		facts.Kernel = unknown
	}
	log.Debug("collected kernel", slog.String("kernel", facts.Kernel))

	facts.PrettyName = p.PrettyName()
	log.Debug("collected os name", slog.String("name", facts.PrettyName))

	facts.Desktop = p.Desktop()
	log.Debug("collected desktop", slog.String("desktop", facts.Desktop))

	if secs, err := p.Uptime(snap); err != nil {
		if fail(err) {
			return Facts{}, err
		}
		facts.Uptime = unknown
	} else {
		facts.Uptime = FormatUptime(secs)
	}
	log.Debug("collected uptime", slog.String("uptime", facts.Uptime))

	if facts.Memory, err = p.Memory(snap); err != nil && fail(err) {
		return Facts{}, err
	}
	log.Debug("collected memory", slog.String("memory", facts.Memory.String()))

	if facts.Disk, err = p.Disk(); err != nil && fail(err) {
		return Facts{}, err
	}
	log.Debug("collected disk", slog.String("disk", facts.Disk.String()))

	return facts, errors.Join(errs...)
}
