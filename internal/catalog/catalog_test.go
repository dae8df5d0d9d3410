package catalog

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_storefront/internal/domain"
	"github.com/fjod/go_storefront/internal/logger"
	"github.com/fjod/go_storefront/internal/storage"
)

func newTestCatalog(t *testing.T) (*Catalog, *storage.Memory) {
	t.Helper()
	st := storage.NewMemory()
	c := New(st, logger.Discard())
	n := 0
	c.newID = func() string {
		n++
		return fmt.Sprintf("p-%d", n)
	}
	return c, st
}

func testStore(id, name string) domain.Store {
	return domain.Store{
		ID:       id,
		Name:     name,
		Category: "coffee",
		Products: []domain.Product{{ID: "beans", Name: "Beans", Description: "Dark", Price: 12, Category: "Coffee Beans", InStock: true}},
	}
}

func TestSaveGetAll(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCatalog(t)

	assert.Empty(t, c.All(ctx))

	require.NoError(t, c.Save(ctx, testStore("s1", "Brew & Bean")))
	require.NoError(t, c.Save(ctx, testStore("s2", "Page Turner Books")))

	all := c.All(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "s1", all[0].ID)
	assert.Equal(t, "s2", all[1].ID)

	got, err := c.Get(ctx, "s2")
	require.NoError(t, err)
	assert.Equal(t, "Page Turner Books", got.Name)

	_, err = c.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrStoreNotFound)
}

func TestSave_ReplacesByID(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCatalog(t)
	require.NoError(t, c.Save(ctx, testStore("s1", "Old")))
	require.NoError(t, c.Save(ctx, testStore("s2", "Other")))

	require.NoError(t, c.Save(ctx, testStore("s1", "New")))

	all := c.All(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "New", all[0].Name)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCatalog(t)
	require.NoError(t, c.Save(ctx, testStore("s1", "A")))
	require.NoError(t, c.Save(ctx, testStore("s2", "B")))

	require.NoError(t, c.Delete(ctx, "s1"))
	require.NoError(t, c.Delete(ctx, "missing"))

	all := c.All(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "s2", all[0].ID)
}

func TestAll_CorruptDataIsEmpty(t *testing.T) {
	ctx := context.Background()
	c, st := newTestCatalog(t)
	require.NoError(t, st.Set(ctx, StorageKey, "{not json"))

	assert.Empty(t, c.All(ctx))

	// saving over corrupt data starts a fresh list
	require.NoError(t, c.Save(ctx, testStore("s1", "A")))
	assert.Len(t, c.All(ctx), 1)
}

func TestProductCRUD(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCatalog(t)
	require.NoError(t, c.Save(ctx, testStore("s1", "Brew")))

	added, err := c.AddProduct(ctx, "s1", ProductInput{
		Name: "  Milk Frother ", Description: "Electric", Price: 34.99, Category: "Accessories", InStock: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "p-1", added.ID)
	assert.Equal(t, "Milk Frother", added.Name)

	store, err := c.Get(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, store.Products, 2)
	assert.Equal(t, "p-1", store.Products[1].ID)

	updated, err := c.UpdateProduct(ctx, "s1", "p-1", ProductInput{
		Name: "Milk Frother Pro", Description: "Faster", Price: 44.99, Category: "Accessories",
	})
	require.NoError(t, err)
	assert.Equal(t, "p-1", updated.ID)
	assert.False(t, updated.InStock)

	store, _ = c.Get(ctx, "s1")
	assert.Equal(t, "Milk Frother Pro", store.Products[1].Name)
	assert.Equal(t, 44.99, store.Products[1].Price)

	require.NoError(t, c.DeleteProduct(ctx, "s1", "beans"))
	store, _ = c.Get(ctx, "s1")
	require.Len(t, store.Products, 1)
	assert.Equal(t, "p-1", store.Products[0].ID)
}

func TestProductCRUD_Errors(t *testing.T) {
	ctx := context.Background()
	c, _ := newTestCatalog(t)
	require.NoError(t, c.Save(ctx, testStore("s1", "Brew")))
	valid := ProductInput{Name: "Mug", Description: "Big", Price: 5, Category: "Accessories"}

	_, err := c.AddProduct(ctx, "s1", ProductInput{Name: "Mug", Price: 5})
	assert.ErrorIs(t, err, ErrInvalidProduct)
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = c.AddProduct(ctx, "s1", ProductInput{Name: "Mug", Description: "Big", Category: "A", Price: -2})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)

	_, err = c.AddProduct(ctx, "missing", valid)
	assert.ErrorIs(t, err, ErrStoreNotFound)

	_, err = c.UpdateProduct(ctx, "s1", "missing", valid)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, c.DeleteProduct(ctx, "s1", "missing"), ErrProductNotFound)
	assert.ErrorIs(t, c.DeleteProduct(ctx, "missing", "beans"), ErrStoreNotFound)

	store, _ := c.Get(ctx, "s1")
	assert.Len(t, store.Products, 1)
}
