// Package sysinfo - In-memory Source
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// ErrNoSnapshot is returned by Fixture.Snapshot when Snap is nil.
var ErrNoSnapshot = errors.New("no system snapshot available")

// Fixture is a Source whose answers are fixed in advance. The zero value
// behaves like a host with an empty environment and no readable files.
type Fixture struct {
	// Env holds the environment; a missing key is an unset variable
	Env map[string]string

	// Host is returned by Hostname unless HostErr is set
	Host    string
	HostErr error

	// Files maps absolute paths to their content
	Files map[string]string

	// FS is returned by Statfs unless StatfsErr is set
	FS        FSStat
	StatfsErr error

	// Snap is returned by Snapshot; nil makes Snapshot fail
	Snap *Snapshot
}

func (f *Fixture) LookupEnv(key string) (string, bool) {
	v, ok := f.Env[key]
	return v, ok
}

func (f *Fixture) Hostname() (string, error) {
	if f.HostErr != nil {
		return "", f.HostErr
	}
	return f.Host, nil
}

func (f *Fixture) ReadFile(name string) ([]byte, error) {
	content, ok := f.Files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}

func (f *Fixture) Exists(name string) bool {
	_, ok := f.Files[name]
	return ok
}

func (f *Fixture) Statfs(path string) (FSStat, error) {
	if f.StatfsErr != nil {
		return FSStat{}, fmt.Errorf("statfs %s: %w", path, f.StatfsErr)
	}
	return f.FS, nil
}

func (f *Fixture) Snapshot(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if f.Snap == nil {
		return nil, ErrNoSnapshot
	}
	snap := *f.Snap
	return &snap, nil
}
