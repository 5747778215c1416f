package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Northwind/internal/model"
)

func seedProduct(t *testing.T, r ProductRepository, name string, price int64) int64 {
	t.Helper()
	id, err := r.Insert(context.Background(), &model.Product{
		ProductName: name,
		UnitPrice:   decimal.NewNullDecimal(decimal.NewFromInt(price)),
	})
	require.NoError(t, err)
	return id
}

func TestProductRepository_InsertAssignsKey(t *testing.T) {
	r := NewProductRepository(newTestDB(t))

	id1 := seedProduct(t, r, "Chai", 18)
	id2 := seedProduct(t, r, "Chang", 19)

	assert.Positive(t, id1)
	assert.Greater(t, id2, id1)
}

func TestProductRepository_FindByID(t *testing.T) {
	r := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	id := seedProduct(t, r, "Chai", 18)

	p, err := r.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Chai", p.ProductName)
	assert.True(t, p.UnitPrice.Decimal.Equal(decimal.NewFromInt(18)))

	_, err = r.FindByID(ctx, id+100)
	assert.True(t, errors.Is(err, ErrNotFound))
}

// offset — нижняя граница ключа, не количество пропущенных строк
func TestProductRepository_ListFrom_KeyFloor(t *testing.T) {
	r := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	var ids []int64
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		ids = append(ids, seedProduct(t, r, name, 10))
	}

	list, err := r.ListFrom(ctx, ids[2], 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, ids[2], list[0].ProductID)
	assert.Equal(t, ids[3], list[1].ProductID)

	// все ключи >= fromID и по возрастанию
	list, err = r.ListFrom(ctx, ids[1], 100)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i, p := range list {
		assert.GreaterOrEqual(t, p.ProductID, ids[1])
		if i > 0 {
			assert.Greater(t, p.ProductID, list[i-1].ProductID)
		}
	}
}

func TestProductRepository_Delete(t *testing.T) {
	r := NewProductRepository(newTestDB(t))
	ctx := context.Background()

	id := seedProduct(t, r, "Chai", 18)

	require.NoError(t, r.Delete(ctx, id))
	_, err := r.FindByID(ctx, id)
	assert.True(t, errors.Is(err, ErrNotFound))

	// повторное удаление — промах
	assert.True(t, errors.Is(r.Delete(ctx, id), ErrNotFound))
}

func TestProductRepository_ListByCategory(t *testing.T) {
	db := newTestDB(t)
	r := NewProductRepository(db)
	ctx := context.Background()

	cat := int64(7)
	_, err := r.Insert(ctx, &model.Product{ProductName: "in", CategoryID: &cat})
	require.NoError(t, err)
	_, err = r.Insert(ctx, &model.Product{ProductName: "out"})
	require.NoError(t, err)

	list, err := r.ListByCategory(ctx, cat)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "in", list[0].ProductName)
}
