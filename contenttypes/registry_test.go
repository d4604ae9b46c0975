package contenttypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"reviews/config"
)

func stubResolver(label string) ResolverFunc {
	return func(db *gorm.DB, id uint) (string, error) {
		return label, nil
	}
}

func TestRegisterAndGet(t *testing.T) {
	Reset()

	require.NoError(t, Register(ContentType{Key: "product", Label: "product", Resolve: stubResolver("Widget")}))

	ct, ok := Get("product")
	assert.True(t, ok)
	assert.Equal(t, "product", ct.Key)
	assert.Equal(t, "product", ct.Label)

	_, ok = Get("missing")
	assert.False(t, ok)
}

func TestRegisterValidation(t *testing.T) {
	Reset()

	assert.Error(t, Register(ContentType{Key: "", Resolve: stubResolver("x")}))
	assert.Error(t, Register(ContentType{Key: "product"}))

	require.NoError(t, Register(ContentType{Key: "product", Resolve: stubResolver("x")}))
	assert.Error(t, Register(ContentType{Key: "product", Resolve: stubResolver("x")}))
}

func TestRegisterDefaultsLabelToKey(t *testing.T) {
	Reset()

	require.NoError(t, Register(ContentType{Key: "seller", Resolve: stubResolver("x")}))

	ct, ok := Get("seller")
	require.True(t, ok)
	assert.Equal(t, "seller", ct.Label)
}

func TestReviewableModelsOrder(t *testing.T) {
	Reset()

	// Registration order is preserved
	require.NoError(t, Register(ContentType{Key: "seller", Resolve: stubResolver("x")}))
	require.NoError(t, Register(ContentType{Key: "product", Resolve: stubResolver("x")}))

	cts := ReviewableModels()
	require.Len(t, cts, 2)
	assert.Equal(t, "seller", cts[0].Key)
	assert.Equal(t, "product", cts[1].Key)
}

func TestReviewableModelsEmpty(t *testing.T) {
	Reset()

	assert.Empty(t, ReviewableModels())
}

func TestResolve(t *testing.T) {
	Reset()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, Register(ContentType{Key: "product", Resolve: stubResolver("Widget")}))

	label, err := Resolve(db, "product", 1)
	require.NoError(t, err)
	assert.Equal(t, "Widget", label)

	_, err = Resolve(db, "missing", 1)
	assert.Error(t, err)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "Product", Title("product"))
	assert.Equal(t, "Gift Card", Title("gift card"))
	assert.Equal(t, "", Title(""))
}

func TestURLReversal(t *testing.T) {
	config.AppConfig = &config.Config{AdminBasePath: "/admin"}
	assert.Equal(t, "/admin/product/list", ChangelistURL("product"))
	assert.Equal(t, "/admin/product/7/change", ChangeURL("product", 7))

	// Falls back when config has not been loaded
	config.AppConfig = nil
	assert.Equal(t, "/admin/seller/list", ChangelistURL("seller"))
}
