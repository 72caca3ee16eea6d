package input

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Request selects the discovery strategies to run. A nil slice or an empty
// Application leaves the strategy out; an empty non-nil slice runs it with
// nothing to find.
type Request struct {
	Names       []string
	Patterns    []string
	Application string
	// Excluded lists qualified names the application scan must skip.
	Excluded []string
}

// Environment holds the collaborators the strategies run against. Only those
// needed by the requested strategies have to be set.
type Environment struct {
	Types       TypeResolver
	Inventory   NameInventory
	Application ApplicationScanner
	Logger      *log.Logger
}

// Resolve runs the requested strategies in the order names, patterns,
// application and concatenates their results. Types reachable through more
// than one strategy appear once per strategy.
func Resolve(req Request, env Environment) ([]SourceType, error) {
	logger := env.Logger
	if logger == nil {
		logger = log.Default()
	}

	var result []SourceType

	if req.Names != nil {
		if env.Types == nil {
			return nil, fmt.Errorf("%w: explicit names require a type resolver", ErrMissingCollaborator)
		}
		types, err := FromNames(req.Names, env.Types)
		if err != nil {
			return nil, err
		}
		logger.Debug("resolved explicit names", "requested", len(req.Names), "types", len(types))
		result = append(result, types...)
	}

	if req.Patterns != nil {
		if env.Types == nil || env.Inventory == nil {
			return nil, fmt.Errorf("%w: patterns require a type resolver and a name inventory", ErrMissingCollaborator)
		}
		types, err := FromPatterns(req.Patterns, env.Inventory, env.Types)
		if err != nil {
			return nil, err
		}
		logger.Debug("resolved patterns", "patterns", req.Patterns, "types", len(types))
		result = append(result, types...)
	}

	if req.Application != "" {
		if env.Application == nil {
			return nil, fmt.Errorf("%w: application %q requires an application scanner", ErrMissingCollaborator, req.Application)
		}
		types, err := FromApplication(req.Application, req.Excluded, env.Application)
		if err != nil {
			return nil, err
		}
		logger.Debug("scanned application", "application", req.Application, "excluded", len(req.Excluded), "types", len(types))
		result = append(result, types...)
	}

	if len(result) == 0 {
		return nil, ErrNoInput
	}
	return result, nil
}
