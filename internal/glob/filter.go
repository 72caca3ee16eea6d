package glob

// Filter returns the candidates matched by at least one pattern, in candidate
// order. Patterns are tried in order and the first match decides, so a name
// matched by several patterns is kept once.
func Filter(candidates []string, patterns []*Pattern) []string {
	result := make([]string, 0)
	for _, name := range candidates {
		if _, ok := FirstMatch(name, patterns); ok {
			result = append(result, name)
		}
	}
	return result
}

// FirstMatch returns the first pattern that matches name.
func FirstMatch(name string, patterns []*Pattern) (*Pattern, bool) {
	for _, p := range patterns {
		if p.Match(name) {
			return p, true
		}
	}
	return nil, false
}
