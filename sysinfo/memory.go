package sysinfo

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

const (
	memInfoPath = "/proc/meminfo"

	memTotalKey     = "MemTotal"
	memAvailableKey = "MemAvailable"
)

// Memory returns physical memory usage.
//
// With a snapshot, TotalRAM and UnusedRAM (bytes) are used. Without one,
// MemTotal and MemAvailable (KiB) are read from /proc/meminfo. A missing
// source, a missing key or a zero total is an error.
func (p *Prober) Memory(snap *Snapshot) (Usage, error) {
	if snap != nil {
		u, err := newUsage(sub(snap.TotalRAM, snap.UnusedRAM), snap.TotalRAM, bytesPerGiB)
		if err != nil {
			return Usage{}, probeErr("memory", ParseFailure, err)
		}
		return u, nil
	}

	raw, err := p.src.ReadFile(memInfoPath)
	if err != nil {
		return Usage{}, probeErr("memory", SourceUnavailable, err)
	}
	total, available, err := parseMemInfo(string(raw))
	if err != nil {
		return Usage{}, probeErr("memory", ParseFailure, err)
	}
	u, err := newUsage(sub(total, available), total, kibPerGiB)
	if err != nil {
		return Usage{}, probeErr("memory", ParseFailure, err)
	}
	return u, nil
}

// parseMemInfo extracts MemTotal and MemAvailable, in KiB, from lines of
// the form "MemTotal:       16318480 kB".
func parseMemInfo(s string) (total, available uint64, err error) {
	var haveTotal, haveAvailable bool

	sc := bufio.NewScanner(strings.NewReader(s))
	for !(haveTotal && haveAvailable) && sc.Scan() {
		key, rest, ok := strings.Cut(sc.Text(), ":")
		if !ok || (key != memTotalKey && key != memAvailableKey) {
			continue
		}
		fields := strings.Fields(rest)
		if len(fields) == 0 {
			return 0, 0, fmt.Errorf("%s has no value", key)
		}
		v, err := strconv.ParseUint(fields[0], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("parse %s: %w", key, err)
		}
		if key == memTotalKey {
			total, haveTotal = v, true
		} else {
			available, haveAvailable = v, true
		}
	}
	if err := sc.Err(); err != nil {
		return 0, 0, err
	}

	switch {
	case !haveTotal:
		return 0, 0, fmt.Errorf("%s not found in %s", memTotalKey, memInfoPath)
	case !haveAvailable:
		return 0, 0, fmt.Errorf("%s not found in %s", memAvailableKey, memInfoPath)
	}
	return total, available, nil
}

// sub returns a-b, or 0 when b exceeds a.
func sub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}
