// Package input decides which types a generation run has to process.
//
// Types can be named explicitly, selected by glob pattern against the
// inventory of every type name in the loaded project, or discovered by
// introspecting an application entry point. Resolve runs whichever of the
// three strategies a Request asks for, in that fixed order, and concatenates
// their results:
//
//	types, err := input.Resolve(input.Request{
//	    Names:    []string{"example.com/shop/model.Order"},
//	    Patterns: []string{"example.com/shop/api.*Request"},
//	}, input.Environment{Types: project, Inventory: project})
//
// # Errors
//
// Resolution is all-or-nothing. A name that cannot be loaded fails the whole
// call with a *NameResolutionError, a failing application scan with an
// *ApplicationScanError, and an empty result with ErrNoInput. All three are
// configuration problems the user can fix; see IsUserError.
//
// Types reachable through more than one strategy are returned once per
// strategy. Nothing is cached between calls.
package input
