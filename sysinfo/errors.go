// Package sysinfo - Probe error taxonomy
package sysinfo

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a probe could not produce its fact.
type ErrorKind int

const (
	// SourceUnavailable means a file or other data source could not be read.
	SourceUnavailable ErrorKind = iota + 1
	// ParseFailure means the source was read but its content was unusable.
	ParseFailure
	// SyscallFailure means an operating system call returned an error.
	SyscallFailure
)

// String returns a short lowercase name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case SourceUnavailable:
		return "source unavailable"
	case ParseFailure:
		return "parse failure"
	case SyscallFailure:
		return "syscall failure"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrZeroTotal is reported when a memory or filesystem source claims a total
// capacity of zero, which would otherwise produce a NaN percentage.
var ErrZeroTotal = errors.New("total capacity is zero")

// ProbeError is returned by probes that hard-fail.
//
// Probe names the fact that could not be gathered (for example "memory"),
// Kind classifies the failure and Err carries the underlying cause.
type ProbeError struct {
	Probe string
	Kind  ErrorKind
	Err   error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Probe, e.Kind, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

func probeErr(probe string, kind ErrorKind, err error) *ProbeError {
	return &ProbeError{Probe: probe, Kind: kind, Err: err}
}

// IsKind reports whether err is a *ProbeError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ProbeError
	return errors.As(err, &pe) && pe.Kind == kind
}
