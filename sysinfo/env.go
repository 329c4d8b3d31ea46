package sysinfo

import (
	"fmt"
	"strings"
)

const (
	unknown      = "Unknown"
	unknownUser  = "unknown_user"
	unknownShell = "unknown_shell"

	// desktopPrefixNone is prepended to XDG_CURRENT_DESKTOP by some
	// display managers when no session wrapper is configured.
	desktopPrefixNone = "none+"
)

// env returns the value of key, or "" when it is unset.
func (p *Prober) env(key string) string {
	v, _ := p.src.LookupEnv(key)
	return v
}

// Identity returns "user@host".
//
// The user comes from $USER, then $LOGNAME, and is "unknown_user" when both
// are empty. Failing to get the host name is a SyscallFailure.
func (p *Prober) Identity() (string, error) {
	user := p.env("USER")
	if user == "" {
		user = p.env("LOGNAME")
	}
	if user == "" {
		user = unknownUser
	}

	host, err := p.src.Hostname()
	if err != nil {
		return "", probeErr("identity", SyscallFailure, err)
	}
	return user + "@" + host, nil
}

// Shell returns the last path element of $SHELL, or "unknown_shell".
func (p *Prober) Shell() string {
	shell := p.env("SHELL")
	if i := strings.LastIndexByte(shell, '/'); i >= 0 {
		shell = shell[i+1:]
	}
	if shell == "" {
		return unknownShell
	}
	return shell
}

// Desktop returns "Desktop (SessionType)" from the XDG session variables.
// Either half is "Unknown" when its variable is unset or empty.
func (p *Prober) Desktop() string {
	desktop := strings.TrimPrefix(p.env("XDG_CURRENT_DESKTOP"), desktopPrefixNone)
	if desktop == "" {
		desktop = unknown
	}
	session := p.env("XDG_SESSION_TYPE")
	if session == "" {
		session = unknown
	}
	return fmt.Sprintf("%s (%s)", desktop, session)
}
