package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromNames(t *testing.T) {
	env := newFakeEnv("a.X", "a.Y")

	types, err := FromNames([]string{"a.Y", "a.X"}, env)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.Y", "a.X"}, names(types))
	for _, st := range types {
		assert.Nil(t, st.Usage())
	}
}

func TestFromNames_FailFast(t *testing.T) {
	env := newFakeEnv("X")

	types, err := FromNames([]string{"X", "DoesNotExist", "X"}, env)
	require.Error(t, err)
	assert.Nil(t, types)

	var nameErr *NameResolutionError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "DoesNotExist", nameErr.Name)
	assert.ErrorIs(t, err, errNotFound)
	assert.Contains(t, err.Error(), `"DoesNotExist"`)
	assert.Equal(t, []string{"X", "DoesNotExist"}, env.loads, "loading stops at the first failure")
}

func TestFromNames_Empty(t *testing.T) {
	types, err := FromNames([]string{}, newFakeEnv())
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestFromPatterns_InventoryOrder(t *testing.T) {
	env := newFakeEnv("a.Zed", "b.Other", "a.Alpha", "a.sub.Deep")

	types, err := FromPatterns([]string{"a.*"}, env, env)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.Zed", "a.Alpha"}, names(types))
}

func TestFromPatterns_ResolutionFailure(t *testing.T) {
	env := newFakeEnv("a.Good")
	env.names = append(env.names, "a.Broken")

	_, err := FromPatterns([]string{"a.**"}, env, env)
	var nameErr *NameResolutionError
	require.ErrorAs(t, err, &nameErr)
	assert.Equal(t, "a.Broken", nameErr.Name)
}

func TestFromApplication(t *testing.T) {
	env := newFakeEnv()
	env.app["shop.Routes"] = []SourceType{
		NewSourceTypeWithUsage(fakeHandle("shop.Order"), "result 0 of func shop.GetOrder", "shop.GetOrder"),
		NewSourceTypeWithUsage(fakeHandle("shop.Secret"), "parameter s of func shop.Debug", "shop.Debug"),
	}

	types, err := FromApplication("shop.Routes", []string{"shop.Secret"}, env)
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "shop.Order", types[0].Name())
	require.NotNil(t, types[0].Usage())
	assert.Equal(t, "shop.GetOrder", types[0].Usage().Member)
}

func TestFromApplication_Error(t *testing.T) {
	_, err := FromApplication("missing.App", nil, newFakeEnv())

	var appErr *ApplicationScanError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "missing.App", appErr.Application)
	assert.ErrorIs(t, err, errNotFound)
}

func TestSourceType_Immutable(t *testing.T) {
	st := NewSourceTypeWithUsage(fakeHandle("a.X"), "ctx", "member")
	u := st.Usage()
	u.Context = "changed"
	assert.Equal(t, "ctx", st.Usage().Context)
	assert.Equal(t, "a.X (ctx)", st.String())
	assert.Equal(t, "a.X", NewSourceType(fakeHandle("a.X")).String())
	assert.Equal(t, "", SourceType{}.Name())
}
