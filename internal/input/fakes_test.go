package input

import (
	"errors"
	"fmt"
)

var errNotFound = errors.New("not found")

type fakeHandle string

func (h fakeHandle) QualifiedName() string { return string(h) }

// fakeEnv is an in-memory environment: known names resolve, everything else
// fails.
type fakeEnv struct {
	names   []string
	known   map[string]bool
	loads   []string
	app     map[string][]SourceType
	scanned []string
}

func newFakeEnv(names ...string) *fakeEnv {
	known := make(map[string]bool, len(names))
	for _, n := range names {
		known[n] = true
	}
	return &fakeEnv{names: names, known: known, app: map[string][]SourceType{}}
}

func (f *fakeEnv) LoadType(name string) (Handle, error) {
	f.loads = append(f.loads, name)
	if !f.known[name] {
		return nil, fmt.Errorf("type %s: %w", name, errNotFound)
	}
	return fakeHandle(name), nil
}

func (f *fakeEnv) AllNames() []string {
	return append([]string(nil), f.names...)
}

func (f *fakeEnv) ScanApplication(app string, excluded []string) ([]SourceType, error) {
	f.scanned = append(f.scanned, app)
	types, ok := f.app[app]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", app, errNotFound)
	}
	skip := make(map[string]bool, len(excluded))
	for _, e := range excluded {
		skip[e] = true
	}
	var out []SourceType
	for _, st := range types {
		if !skip[st.Name()] {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeEnv) environment() Environment {
	return Environment{Types: f, Inventory: f, Application: f}
}

func names(types []SourceType) []string {
	out := make([]string, 0, len(types))
	for _, st := range types {
		out = append(out, st.Name())
	}
	return out
}
