package catalog

import (
	"fmt"
	"sort"

	"github.com/wildfunctions/symdiff/pkg/expr"
)

// Entry is a named, ready-built expression.
type Entry struct {
	Name        string
	Set         string
	Description string
	// Vars lists the display symbols in index order.
	Vars []string
	// Lo and Hi bound the interval every variable is sampled from when
	// the entry is swept; the function and its derivatives are finite there.
	Lo, Hi float64
	Build  func(v []expr.Expr[float64]) expr.Expr[float64]
}

// Expr builds a fresh tree for the entry.
func (e Entry) Expr() expr.Expr[float64] {
	vars := make([]expr.Expr[float64], len(e.Vars))
	for i, sym := range e.Vars {
		vars[i] = expr.Variable[float64](i, sym)
	}
	return e.Build(vars)
}

var registry = map[string]Entry{}

// Register adds an entry to the catalog. Registering a name twice panics.
func Register(e Entry) {
	if _, dup := registry[e.Name]; dup {
		panic(fmt.Sprintf("catalog: duplicate entry %q", e.Name))
	}
	registry[e.Name] = e
}

// Get returns an entry by name.
func Get(name string) (Entry, error) {
	e, ok := registry[name]
	if !ok {
		return Entry{}, fmt.Errorf("unknown expression: %s", name)
	}
	return e, nil
}

// Names returns all registered entry names, sorted.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Sets returns the distinct set names, sorted.
func Sets() []string {
	seen := map[string]bool{}
	var sets []string
	for _, e := range registry {
		if !seen[e.Set] {
			seen[e.Set] = true
			sets = append(sets, e.Set)
		}
	}
	sort.Strings(sets)
	return sets
}

// InSet returns the entries of one set sorted by name. The empty set name
// selects every entry.
func InSet(set string) ([]Entry, error) {
	var out []Entry
	for _, name := range Names() {
		e := registry[name]
		if set == "" || e.Set == set {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("unknown set: %s (available: %v)", set, Sets())
	}
	return out, nil
}
