package input

import (
	"go-type-input/internal/glob"
)

// TypeResolver turns a qualified name into a type handle.
type TypeResolver interface {
	LoadType(name string) (Handle, error)
}

// NameInventory lists every candidate type name in the environment. The list
// must be stable for the duration of one Resolve call.
type NameInventory interface {
	AllNames() []string
}

// ApplicationScanner discovers the types used by an application entry point.
// Returned SourceTypes carry their own usage context.
type ApplicationScanner interface {
	ScanApplication(app string, excluded []string) ([]SourceType, error)
}

// FromNames resolves names in order. The first failure aborts the call and no
// partial result is returned.
func FromNames(names []string, resolver TypeResolver) ([]SourceType, error) {
	types := make([]SourceType, 0, len(names))
	for _, name := range names {
		h, err := resolver.LoadType(name)
		if err != nil {
			return nil, &NameResolutionError{Name: name, Err: err}
		}
		types = append(types, NewSourceType(h))
	}
	return types, nil
}

// FromPatterns resolves every inventory name matched by at least one glob,
// in inventory order.
func FromPatterns(patterns []string, inventory NameInventory, resolver TypeResolver) ([]SourceType, error) {
	names := glob.Filter(inventory.AllNames(), glob.CompileAll(patterns))
	return FromNames(names, resolver)
}

// FromApplication delegates to the application scanner.
func FromApplication(app string, excluded []string, scanner ApplicationScanner) ([]SourceType, error) {
	types, err := scanner.ScanApplication(app, excluded)
	if err != nil {
		return nil, &ApplicationScanError{Application: app, Err: err}
	}
	return types, nil
}
