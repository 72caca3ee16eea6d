package glob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFilter_FirstMatchNoDuplicates(t *testing.T) {
	got := Filter([]string{"a.Foo", "a.Bar"}, CompileAll([]string{"a.*", "a.Foo"}))
	assert.Equal(t, []string{"a.Foo", "a.Bar"}, got)
}

func TestFilter_PreservesCandidateOrder(t *testing.T) {
	candidates := []string{"b.Two", "a.One", "c.Three", "a.Four"}
	got := Filter(candidates, CompileAll([]string{"a.*", "b.*"}))
	assert.Equal(t, []string{"b.Two", "a.One", "a.Four"}, got)
}

func TestFilter_NoPatterns(t *testing.T) {
	got := Filter([]string{"a.Foo"}, nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFirstMatch(t *testing.T) {
	patterns := CompileAll([]string{"a.Foo", "a.*"})

	p, ok := FirstMatch("a.Foo", patterns)
	require.True(t, ok)
	assert.Equal(t, "a.Foo", p.String())

	p, ok = FirstMatch("a.Bar", patterns)
	require.True(t, ok)
	assert.Equal(t, "a.*", p.String())

	_, ok = FirstMatch("b.Foo", patterns)
	assert.False(t, ok)
}

func TestProperty_FilterIsOrderedSubsequence(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		candidates := rapid.SliceOfDistinct(nameGen(), func(s string) string { return s }).Draw(rt, "candidates")
		globs := rapid.SliceOfN(rapid.StringMatching(`[a-c.*]{0,5}`), 0, 4).Draw(rt, "globs")
		patterns := CompileAll(globs)

		got := Filter(candidates, patterns)

		// got is a subsequence of candidates containing exactly the matched names.
		i := 0
		for _, c := range candidates {
			_, matched := FirstMatch(c, patterns)
			if matched {
				require.Less(rt, i, len(got))
				require.Equal(rt, c, got[i])
				i++
			}
		}
		require.Equal(rt, len(got), i)

		// Filtering twice changes nothing.
		require.Equal(rt, got, Filter(got, patterns))
	})
}
