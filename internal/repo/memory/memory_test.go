package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Northwind/internal/model"
	"Northwind/internal/repo"
)

// первая запись получает id 1, дальше max+1
func TestProductStore_MaxPlusOneIDs(t *testing.T) {
	s := NewProductStore()
	ctx := context.Background()

	id1, err := s.Insert(ctx, &model.Product{ProductName: "Chai"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id1)

	id2, err := s.Insert(ctx, &model.Product{ProductName: "Chang"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), id2)

	// после удаления не-максимального ключа нумерация продолжается
	require.NoError(t, s.Delete(ctx, id1))
	id3, err := s.Insert(ctx, &model.Product{ProductName: "Aniseed"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id3)
}

func TestProductStore_ListFromKeyFloor(t *testing.T) {
	s := NewProductStore()
	ctx := context.Background()

	for _, name := range []string{"a", "b", "c", "d"} {
		_, err := s.Insert(ctx, &model.Product{ProductName: name})
		require.NoError(t, err)
	}

	list, err := s.ListFrom(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].ProductID)
	assert.Equal(t, int64(3), list[1].ProductID)
}

func TestEmployeeStore_FindMiss(t *testing.T) {
	s := NewEmployeeStore()
	_, err := s.FindByID(context.Background(), 42)
	assert.True(t, errors.Is(err, repo.ErrNotFound))
}

// записи в map хранятся по значению: правка возвращённого указателя
// не должна менять содержимое стора
func TestCategoryStore_ReturnsCopies(t *testing.T) {
	s := NewCategoryStore()
	ctx := context.Background()

	id, err := s.Insert(ctx, &model.Category{CategoryName: "Beverages"})
	require.NoError(t, err)

	c, err := s.FindByID(ctx, id)
	require.NoError(t, err)
	c.CategoryName = "mutated"

	again, err := s.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Beverages", again.CategoryName)
}

func TestBlogStore_Links(t *testing.T) {
	s := NewBlogStore()
	ctx := context.Background()

	exists, err := s.LinkExists(ctx, 5, 9)
	require.NoError(t, err)
	assert.False(t, exists)

	id, err := s.InsertLink(ctx, &model.BlogArticleProduct{ArticleID: 5, ProductID: 9})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	exists, err = s.LinkExists(ctx, 5, 9)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.DeleteLink(ctx, id))
	assert.True(t, errors.Is(s.DeleteLink(ctx, id), repo.ErrNotFound))
}
