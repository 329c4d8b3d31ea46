//go:build linux || darwin || freebsd
// +build linux darwin freebsd

package sysinfo

import "golang.org/x/sys/unix"

// statfs wraps statfs(2). Field widths differ between kernels, so every
// value is widened to uint64.
func statfs(path string) (FSStat, error) {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return FSStat{}, err
	}
	return FSStat{
		BlockSize: uint64(st.Bsize),
		Blocks:    uint64(st.Blocks),
		Available: uint64(st.Bavail),
	}, nil
}
