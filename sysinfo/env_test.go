package sysinfo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"user", map[string]string{"USER": "ada", "LOGNAME": "other"}, "ada@box"},
		{"logname fallback", map[string]string{"LOGNAME": "grace"}, "grace@box"},
		{"empty user", map[string]string{"USER": ""}, "unknown_user@box"},
		{"unset", nil, "unknown_user@box"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewProber(&Fixture{Env: tc.env, Host: "box"})
			got, err := p.Identity()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIdentityHostnameFailure(t *testing.T) {
	cause := errors.New("uname failed")
	p := NewProber(&Fixture{Env: map[string]string{"USER": "ada"}, HostErr: cause})

	_, err := p.Identity()
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsKind(err, SyscallFailure))

	var pe *ProbeError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "identity", pe.Probe)
}

func TestShell(t *testing.T) {
	tests := []struct {
		shell string
		set   bool
		want  string
	}{
		{"/usr/bin/fish", true, "fish"},
		{"/bin/bash", true, "bash"},
		{"zsh", true, "zsh"},
		{"/opt/local/bin/", true, "unknown_shell"},
		{"", true, "unknown_shell"},
		{"", false, "unknown_shell"},
	}

	for _, tc := range tests {
		env := map[string]string{}
		if tc.set {
			env["SHELL"] = tc.shell
		}
		got := NewProber(&Fixture{Env: env}).Shell()
		assert.Equal(t, tc.want, got, "SHELL=%q set=%v", tc.shell, tc.set)
	}
}

func TestDesktop(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "none prefix stripped",
			env:  map[string]string{"XDG_CURRENT_DESKTOP": "none+GNOME", "XDG_SESSION_TYPE": "wayland"},
			want: "GNOME (wayland)",
		},
		{
			name: "only one prefix stripped",
			env:  map[string]string{"XDG_CURRENT_DESKTOP": "none+none+i3", "XDG_SESSION_TYPE": "x11"},
			want: "none+i3 (x11)",
		},
		{
			name: "plain",
			env:  map[string]string{"XDG_CURRENT_DESKTOP": "KDE", "XDG_SESSION_TYPE": "x11"},
			want: "KDE (x11)",
		},
		{
			name: "prefix only",
			env:  map[string]string{"XDG_CURRENT_DESKTOP": "none+"},
			want: "Unknown (Unknown)",
		},
		{
			name: "unset",
			want: "Unknown (Unknown)",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NewProber(&Fixture{Env: tc.env}).Desktop())
		})
	}
}
