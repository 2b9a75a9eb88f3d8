// Package project resolves the aisdlc project root and provides path
// helpers for the files that live there.
//
// A project root is any directory containing a .aisdlc config file. The
// root is discovered by walking upward from the working directory; when no
// config file is found the working directory itself is used, which lets
// `aisdlc init` run in a fresh directory.
//
// Key types:
//   - [Project] is an explicit handle on a resolved root, passed into the
//     components that need it
//   - [Resolve] memoizes discovery for the process lifetime
//   - [Reset] clears the memoized root for test isolation
package project

import (
	"os"
	"path/filepath"
	"sync"
)

// ConfigFileName is the project configuration file, expected at the root.
const ConfigFileName = ".aisdlc"

// LockFileName is the workstream lock file, written next to the config.
const LockFileName = ".aisdlc.lock"

// Project is a handle on a resolved project root directory.
//
// Components receive a Project rather than consulting process-global state,
// so tests can point each component at a temporary directory.
type Project struct {
	// Root is the absolute path of the project root directory.
	Root string
}

// At returns a Project rooted at the given directory without discovery.
func At(root string) Project {
	return Project{Root: root}
}

// ConfigPath returns the path of the .aisdlc config file.
func (p Project) ConfigPath() string {
	return filepath.Join(p.Root, ConfigFileName)
}

// LockPath returns the path of the .aisdlc.lock file.
func (p Project) LockPath() string {
	return filepath.Join(p.Root, LockFileName)
}

// Join joins path elements onto the project root.
func (p Project) Join(elem ...string) string {
	return filepath.Join(append([]string{p.Root}, elem...)...)
}

// Locate walks upward from startDir looking for a .aisdlc config file and
// returns a Project rooted at the first directory that has one. When no
// ancestor has a config file, the Project is rooted at startDir itself.
func Locate(startDir string) Project {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return Project{Root: dir}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return Project{Root: startDir}
		}
		dir = parent
	}
}

var (
	mu       sync.Mutex
	resolved *Project
)

// Resolve discovers the project root from the current working directory.
//
// The result is cached for the process lifetime; subsequent calls return
// the same Project without touching the filesystem. Tests that change
// working directory must call [Reset] between runs.
func Resolve() (Project, error) {
	mu.Lock()
	defer mu.Unlock()

	if resolved != nil {
		return *resolved, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return Project{}, err
	}

	p := Locate(wd)
	resolved = &p
	return p, nil
}

// Reset clears the memoized project root. Exposed for test setup only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	resolved = nil
}
