//go:build windows
// +build windows

package sysinfo

import "golang.org/x/sys/windows"

// statfs queries the volume holding path with GetDiskFreeSpaceEx. Windows
// reports byte counts rather than blocks, so the block size is 1.
func statfs(path string) (FSStat, error) {
	var freeBytesAvailable, totalBytes, totalFreeBytes uint64

	drive, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return FSStat{}, err
	}
	err = windows.GetDiskFreeSpaceEx(
		drive,
		&freeBytesAvailable,
		&totalBytes,
		&totalFreeBytes,
	)
	if err != nil {
		return FSStat{}, err
	}

	return FSStat{
		BlockSize: 1,
		Blocks:    totalBytes,
		Available: freeBytesAvailable,
	}, nil
}
