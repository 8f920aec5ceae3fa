// Package engine provides the pattern rendering primitives used by timefmt.
//
// Every engine follows the strftime(3) buffer contract: the caller owns the
// output buffer, and a return value of zero does not say whether the output
// was too large or the pattern could not be rendered.
package engine

import (
	"sort"
	"strings"
	"sync"

	"github.com/bytom/timefmt/calendar"
	"github.com/bytom/timefmt/errors"
)

// DefaultName is the engine used when none is configured.
const DefaultName = "lestrrat"

// ErrUnknownEngine is returned by New for a name nothing registered.
var ErrUnknownEngine = errors.New("unknown rendering engine")

// Renderer renders a strftime pattern for one calendar breakdown.
//
// Render writes the expansion into buf and returns the number of bytes
// written. The last byte of buf is reserved, the way strftime(3) reserves
// room for the terminator, so an expansion of len(buf) bytes or more does
// not fit. Render returns 0 when the expansion does not fit, when it is
// empty, or when the engine cannot render the pattern.
type Renderer interface {
	Name() string
	Render(buf []byte, pattern string, b calendar.Breakdown) int
}

// Constructor builds a fresh Renderer.
type Constructor func() Renderer

var (
	registryMu sync.RWMutex
	registry   = make(map[string]Constructor)
)

// Register makes an engine available by name. It panics if the name is
// taken, so registration belongs in init.
func Register(name string, ctor Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()

	name = strings.ToLower(name)
	if _, dup := registry[name]; dup {
		panic("engine: Register called twice for " + name)
	}
	registry[name] = ctor
}

// New returns a new instance of the named engine.
func New(name string) (Renderer, error) {
	registryMu.RLock()
	ctor, ok := registry[strings.ToLower(name)]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.WithDetailf(ErrUnknownEngine, "engine %q, have %s", name, strings.Join(Names(), ", "))
	}
	return ctor(), nil
}

// Names returns the registered engine names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// put copies a fully rendered expansion into buf under the Renderer
// contract.
func put(buf []byte, out string) int {
	if len(out) == 0 || len(out) >= len(buf) {
		return 0
	}
	return copy(buf, out)
}
