// Package sysinfo - Formatting utilities
package sysinfo

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	kibPerGiB   = 1024 * 1024
	bytesPerGiB = 1024 * 1024 * 1024

	minutesPerDay  = 60 * 24
	minutesPerHour = 60
)

// Usage is a used/total pair for a capacity such as RAM or a filesystem.
type Usage struct {
	UsedGiB  float64 `json:"used_gib" yaml:"used_gib"`
	TotalGiB float64 `json:"total_gib" yaml:"total_gib"`
	Percent  int     `json:"percent" yaml:"percent"`
}

// String renders the usage as "1.23 GiB / 4.00 GiB (31%)".
// The zero value, which only appears for a fact that failed, renders as "Unknown".
func (u Usage) String() string {
	if u == (Usage{}) {
		return unknown
	}
	return fmt.Sprintf("%.2f GiB / %.2f GiB (%d%%)", u.UsedGiB, u.TotalGiB, u.Percent)
}

// usageFields has Usage's fields without its methods.
type usageFields Usage

// MarshalJSON writes the zero value as the string "Unknown", like String.
func (u Usage) MarshalJSON() ([]byte, error) {
	if u == (Usage{}) {
		return json.Marshal(unknown)
	}
	return json.Marshal(usageFields(u))
}

// UnmarshalJSON accepts both forms MarshalJSON writes.
func (u *Usage) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != unknown {
			return fmt.Errorf("invalid usage %q", s)
		}
		*u = Usage{}
		return nil
	}
	return json.Unmarshal(data, (*usageFields)(u))
}

// MarshalYAML writes the zero value as the scalar "Unknown", like String.
func (u Usage) MarshalYAML() (interface{}, error) {
	if u == (Usage{}) {
		return unknown, nil
	}
	return usageFields(u), nil
}

// UnmarshalYAML accepts both forms MarshalYAML writes.
func (u *Usage) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		if value.Value != unknown {
			return fmt.Errorf("invalid usage %q", value.Value)
		}
		*u = Usage{}
		return nil
	}
	return value.Decode((*usageFields)(u))
}

// newUsage builds a Usage from raw counts expressed in the same unit.
//
// Parameters:
//   - used, total: The counts to compare
//   - perGiB: How many units make one GiB (1024³ for bytes, 1024² for KiB)
//
// Returns:
//   - The Usage, or ErrZeroTotal when total is 0
func newUsage(used, total, perGiB uint64) (Usage, error) {
	if total == 0 {
		return Usage{}, ErrZeroTotal
	}
	if used > total {
		used = total
	}
	return Usage{
		UsedGiB:  float64(used) / float64(perGiB),
		TotalGiB: float64(total) / float64(perGiB),
		Percent:  Percent(float64(used), float64(total)),
	}, nil
}

// Percent returns used/total as a whole percentage in [0,100].
//
// Halves round away from zero (49.5 becomes 50, 50.5 becomes 51).
// A non-positive total yields 0.
func Percent(used, total float64) int {
	if total <= 0 || math.IsNaN(used) {
		return 0
	}
	p := math.Round(used / total * 100)
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	}
	return int(p)
}

// FormatUptime converts uptime seconds into "N days, N hours, N minutes".
//
// Parameters:
//   - seconds: Time since boot
//
// Returns:
//   - The formatted string. Larger units are only shown once non-zero, and
//     every smaller unit is shown after them even when zero. Uptime that
//     rounds to zero minutes is "0 minutes".
//
// Example: FormatUptime(90000) returns "1 days, 1 hours, 0 minutes"
func FormatUptime(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := uint64(math.Round(seconds / 60))
	days := total / minutesPerDay
	hours := (total % minutesPerDay) / minutesPerHour
	minutes := total % minutesPerHour

	parts := make([]string, 0, 3)
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d days", days))
	}
	if hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if minutes > 0 || hours > 0 || days > 0 {
		parts = append(parts, fmt.Sprintf("%d minutes", minutes))
	}
	if len(parts) == 0 {
		return "0 minutes"
	}
	return strings.Join(parts, ", ")
}
