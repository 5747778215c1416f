package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Northwind/internal/model"
)

func TestCategoryRepository_SavePersistsClearedPicture(t *testing.T) {
	r := NewCategoryRepository(newTestDB(t))
	ctx := context.Background()

	id, err := r.Insert(ctx, &model.Category{CategoryName: "Beverages", Picture: []byte{0x89, 0x50}})
	require.NoError(t, err)

	c, err := r.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 0x50}, c.Picture)

	// очистка картинки не должна трогать остальные поля
	c.Picture = []byte{}
	require.NoError(t, r.Save(ctx, c))

	c, err = r.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, c.Picture)
	assert.Equal(t, "Beverages", c.CategoryName)
}

func TestCategoryRepository_ListFrom(t *testing.T) {
	r := NewCategoryRepository(newTestDB(t))
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"Beverages", "Condiments", "Confections"} {
		id, err := r.Insert(ctx, &model.Category{CategoryName: name})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	list, err := r.ListFrom(ctx, ids[1], 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Condiments", list[0].CategoryName)
	assert.Equal(t, "Confections", list[1].CategoryName)
}
