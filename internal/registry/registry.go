// Package registry provides a global registry for height strategies.
// Strategies register themselves in init() functions, allowing the CLI
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/rockfall/internal/shaft"
)

// Solver computes the tower height after a number of rocks.
// Solvers are pure: the same pattern and count always give the same result.
type Solver interface {
	// ID returns a unique identifier (e.g., "cycle", "brute").
	// Used for CLI flags and run history.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Height returns the tower height after n rocks fall through a fresh
	// shaft driven by pattern.
	Height(pattern shaft.Pattern, n int64) shaft.Result
}

// SolverInfo contains metadata about a registered solver.
type SolverInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a solver.
type Factory func() Solver

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a solver factory to the registry.
// Typically called from an init() function.
// Panics if a solver with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: solver %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f().Title()
}

// List returns information about all registered solvers, sorted by ID.
func List() []SolverInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SolverInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SolverInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new solver by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Solver, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown solver %q", id)
	}

	return f(), nil
}

// Exists checks if a solver with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
