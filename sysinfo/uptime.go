package sysinfo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const uptimePath = "/proc/uptime"

// Uptime returns the seconds since boot.
//
// When snap is non-nil its Uptime is used as is; otherwise the first field
// of /proc/uptime is parsed. Pass the result to FormatUptime for display.
func (p *Prober) Uptime(snap *Snapshot) (float64, error) {
	if snap != nil {
		return snap.Uptime, nil
	}

	raw, err := p.src.ReadFile(uptimePath)
	if err != nil {
		return 0, probeErr("uptime", SourceUnavailable, err)
	}
	secs, err := parseUptime(string(raw))
	if err != nil {
		return 0, probeErr("uptime", ParseFailure, err)
	}
	return secs, nil
}

// parseUptime reads the first field of /proc/uptime ("12345.67 98765.43").
func parseUptime(s string) (float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("%s is empty", uptimePath)
	}
	secs, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, err
	}
	if secs < 0 || math.IsNaN(secs) || math.IsInf(secs, 0) {
		return 0, fmt.Errorf("invalid uptime %q", fields[0])
	}
	return secs, nil
}
