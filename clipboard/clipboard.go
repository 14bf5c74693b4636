// Package clipboard implements the §6 Clipboard external interface: a thin
// wrapper over the host system clipboard with an in-process fallback store,
// per §5's "Shared resources" contract.
package clipboard

import (
	"fmt"
	"strings"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

// Adapter is the concrete Clipboard implementation. All accesses are
// best-effort: failures degrade to storing the last copied selection as a
// sequence of rows rather than surfacing a hard error to the caller.
type Adapter struct {
	mu             sync.Mutex
	fallback       []string
	fallbackActive bool

	// writeAll/readAll are indirected through fields (defaulting to the
	// real system clipboard) so tests can exercise the fallback path
	// without a display server.
	writeAll func(string) error
	readAll  func() (string, error)
}

// New creates a clipboard adapter with an empty fallback store.
func New() *Adapter {
	return &Adapter{writeAll: sysclip.WriteAll, readAll: sysclip.ReadAll}
}

// Set writes s to the system clipboard. On failure it stores s in the
// internal fallback (split into rows) and returns a wrapped error so the
// caller can surface the §7.6 "Clipboard failure" status message; the
// fallback write itself always succeeds.
func (a *Adapter) Set(s string) error {
	if err := a.writeAll(s); err != nil {
		a.mu.Lock()
		a.fallback = strings.Split(s, "\n")
		a.fallbackActive = true
		a.mu.Unlock()
		return fmt.Errorf("system clipboard unavailable, using internal fallback: %w", err)
	}
	a.mu.Lock()
	a.fallbackActive = false
	a.mu.Unlock()
	return nil
}

// Get reads the system clipboard, falling back to the last internally
// stored selection if the system clipboard is unavailable or empty due to a
// prior failed Set. The bool result is false only when neither source has
// content.
func (a *Adapter) Get() (string, bool) {
	if s, err := a.readAll(); err == nil {
		return s, true
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.fallbackActive {
		return "", false
	}
	return strings.Join(a.fallback, "\n"), true
}
