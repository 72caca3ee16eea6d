package tracer

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanApplication_Type(t *testing.T) {
	project := loadShop(t, Options{})

	types, err := project.ScanApplication(apiPkg+".Server", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		apiPkg + ".CreateOrderRequest",
		apiPkg + ".OrderResponse",
		modelPkg + ".Status",
		modelPkg + ".Order",
		modelPkg + ".Customer",
	}, sourceNames(types))

	usage := types[0].Usage()
	require.NotNil(t, usage)
	assert.Equal(t, "parameter req of func (*example.com/shop/api.Server).CreateOrder", usage.Context)
	assert.Equal(t, "(*example.com/shop/api.Server).CreateOrder", usage.Member)

	assert.Equal(t, "result 0 of func (*example.com/shop/api.Server).CreateOrder", types[1].Usage().Context)
	assert.Equal(t, "referenced in body of func example.com/shop/api.buildOrder", types[4].Usage().Context)
}

func TestScanApplication_NoRecursion(t *testing.T) {
	project := loadShop(t, Options{Depth: -1})

	types, err := project.ScanApplication(apiPkg+".Server", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		apiPkg + ".CreateOrderRequest",
		apiPkg + ".OrderResponse",
		modelPkg + ".Status",
		modelPkg + ".Order",
	}, sourceNames(types))
}

func TestScanApplication_Func(t *testing.T) {
	project := loadShop(t, Options{})

	types, err := project.ScanApplication(apiPkg+".Routes", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{
		apiPkg + ".Server",
		apiPkg + ".CreateOrderRequest",
		apiPkg + ".OrderResponse",
		modelPkg + ".Status",
		modelPkg + ".Order",
	}, sourceNames(types))
}

func TestScanApplication_Excluded(t *testing.T) {
	project := loadShop(t, Options{})

	types, err := project.ScanApplication(apiPkg+".Routes", []string{
		modelPkg + ".Status",
		"(*example.com/shop/api.Server).ListOrders",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		apiPkg + ".Server",
		apiPkg + ".CreateOrderRequest",
		apiPkg + ".OrderResponse",
	}, sourceNames(types))
}

func TestScanApplication_ExcludedReceiver(t *testing.T) {
	project := loadShop(t, Options{})

	types, err := project.ScanApplication(apiPkg+".Routes", []string{apiPkg + ".Server"})
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestScanApplication_Interface(t *testing.T) {
	project := loadShop(t, Options{})

	types, err := project.ScanApplication(modelPkg+".Repository", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{modelPkg + ".Order"}, sourceNames(types))
}

func TestScanApplication_SkipsLocalAndTypeParams(t *testing.T) {
	project := loadShop(t, Options{})

	types, err := project.ScanApplication(genPkg+".Entry", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{modelPkg + ".Item", genPkg + ".Box"}, sourceNames(types))
	assert.Equal(t, "parameter items of func example.com/shop/gen.Entry", types[0].Usage().Context)
	assert.Equal(t, "result 0 of func example.com/shop/gen.Wrap", types[1].Usage().Context)

	for _, st := range types {
		_, err := project.LoadType(st.Name())
		assert.NoError(t, err, st.Name())
	}
}

func TestScanApplication_NotFound(t *testing.T) {
	project := loadShop(t, Options{})

	for _, app := range []string{
		apiPkg + ".Missing",
		"example.com/other.App",
		modelPkg + ".Status",
	} {
		_, err := project.ScanApplication(app, nil)
		assert.ErrorIs(t, err, ErrApplicationNotFound, app)
	}
	_, err := project.ScanApplication("NoDot", nil)
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestFindTargetAndGetFuncCode(t *testing.T) {
	project := loadShop(t, Options{})

	file, err := filepath.Abs(filepath.Join("testdata", "shop", "api", "api.go"))
	require.NoError(t, err)

	target, err := project.FindTarget(file, "buildOrder")
	require.NoError(t, err)
	code, err := GetFuncCode(target)
	require.NoError(t, err)
	assert.Contains(t, code, "func buildOrder(req CreateOrderRequest) model.Order")

	_, err = project.FindTarget(file, "nope")
	assert.Error(t, err)
}
