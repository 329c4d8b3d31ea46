//go:build !linux && !darwin && !freebsd && !windows
// +build !linux,!darwin,!freebsd,!windows

package sysinfo

import (
	"fmt"
	"runtime"
)

func statfs(path string) (FSStat, error) {
	return FSStat{}, fmt.Errorf("statfs %s: not supported on %s", path, runtime.GOOS)
}
