package sysinfo

import "runtime"

const rootPath = "/"

// Disk returns usage of the root filesystem. Used space counts blocks
// reserved for the superuser, matching what df reports as not available.
func (p *Prober) Disk() (Usage, error) {
	st, err := p.src.Statfs(p.rootMount(runtime.GOOS))
	if err != nil {
		return Usage{}, probeErr("disk", SyscallFailure, err)
	}

	total := st.BlockSize * st.Blocks
	free := st.BlockSize * st.Available
	u, err := newUsage(sub(total, free), total, bytesPerGiB)
	if err != nil {
		return Usage{}, probeErr("disk", ParseFailure, err)
	}
	return u, nil
}

// rootMount returns the path standing for the root filesystem on goos. On
// Windows that is the system drive named by %SystemDrive%.
func (p *Prober) rootMount(goos string) string {
	if goos != "windows" {
		return rootPath
	}
	if d := p.env("SystemDrive"); d != "" {
		return d + `\`
	}
	return `C:\`
}
