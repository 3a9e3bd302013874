package sqlite_test

import (
	"context"
	"testing"

	"github.com/fwojciec/shopgrid"
	"github.com/fwojciec/shopgrid/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func openTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestProductService_SaveProduct(t *testing.T) {
	t.Parallel()

	t.Run("round-trips a full product", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewProductService(openTestDB(t))
		ctx := context.Background()

		p := &shopgrid.Product{
			ID: 1001, Title: "Serum", Price: "25.50",
			StockStatus: shopgrid.StockInStock,
			Type:        "Skincare", Vendor: "Beautederm", Tags: "face, serum",
			Description:     strptr("A serum."),
			Benefits:        strptr("hydrates"),
			URL:             "https://shop.example.com/products/serum",
			ImageURL:        "https://cdn.example.com/serum.jpg",
			Handle:          "serum",
			DescriptionHTML: "<p>A serum.</p>",
		}
		require.NoError(t, s.SaveProduct(ctx, p))

		got, err := s.FindProductByID(ctx, 1001)
		require.NoError(t, err)
		assert.Equal(t, "Serum", got.Title)
		assert.Equal(t, "25.50", got.Price)
		require.NotNil(t, got.Description)
		assert.Equal(t, "A serum.", *got.Description)
		require.NotNil(t, got.Benefits)
		assert.Equal(t, "hydrates", *got.Benefits)
		assert.Nil(t, got.Ingredients)
		assert.False(t, got.ImportedAt.IsZero())
	})

	t.Run("replaces the record on repeated save", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewProductService(openTestDB(t))
		ctx := context.Background()

		require.NoError(t, s.SaveProduct(ctx, &shopgrid.Product{ID: 1, Title: "Old"}))
		require.NoError(t, s.SaveProduct(ctx, &shopgrid.Product{ID: 1, Title: "New"}))

		products, err := s.FindProducts(ctx, shopgrid.ProductFilter{})
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, "New", products[0].Title)
	})

	t.Run("rejects a product without identifier", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewProductService(openTestDB(t))

		err := s.SaveProduct(context.Background(), &shopgrid.Product{Title: "No ID"})

		require.Error(t, err)
		assert.Equal(t, shopgrid.EINVALID, shopgrid.ErrorCode(err))
	})
}

func TestProductService_FindProducts(t *testing.T) {
	t.Parallel()

	t.Run("filters by vendor", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewProductService(openTestDB(t))
		ctx := context.Background()
		require.NoError(t, s.SaveProduct(ctx, &shopgrid.Product{ID: 1, Vendor: "Beautederm"}))
		require.NoError(t, s.SaveProduct(ctx, &shopgrid.Product{ID: 2, Vendor: "Other"}))

		vendor := "Beautederm"
		products, err := s.FindProducts(ctx, shopgrid.ProductFilter{Vendor: &vendor})

		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.Equal(t, int64(1), products[0].ID)
	})

	t.Run("default sort is by identifier", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewProductService(openTestDB(t))
		ctx := context.Background()
		require.NoError(t, s.SaveProduct(ctx, &shopgrid.Product{ID: 3}))
		require.NoError(t, s.SaveProduct(ctx, &shopgrid.Product{ID: 1}))
		require.NoError(t, s.SaveProduct(ctx, &shopgrid.Product{ID: 2}))

		products, err := s.FindProducts(ctx, shopgrid.ProductFilter{})

		require.NoError(t, err)
		require.Len(t, products, 3)
		assert.Equal(t, int64(1), products[0].ID)
		assert.Equal(t, int64(3), products[2].ID)
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewProductService(openTestDB(t))
		ctx := context.Background()
		for id := int64(1); id <= 5; id++ {
			require.NoError(t, s.SaveProduct(ctx, &shopgrid.Product{ID: id}))
		}

		products, err := s.FindProducts(ctx, shopgrid.ProductFilter{Limit: 2, Offset: 2})

		require.NoError(t, err)
		require.Len(t, products, 2)
		assert.Equal(t, int64(3), products[0].ID)
		assert.Equal(t, int64(4), products[1].ID)
	})
}

func TestProductService_FindProductByID(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for unknown identifier", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewProductService(openTestDB(t))

		_, err := s.FindProductByID(context.Background(), 9999)

		require.Error(t, err)
		assert.Equal(t, shopgrid.ENOTFOUND, shopgrid.ErrorCode(err))
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing product", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewProductService(openTestDB(t))
		ctx := context.Background()
		require.NoError(t, s.SaveProduct(ctx, &shopgrid.Product{ID: 1}))

		require.NoError(t, s.DeleteProduct(ctx, 1))

		_, err := s.FindProductByID(ctx, 1)
		assert.Equal(t, shopgrid.ENOTFOUND, shopgrid.ErrorCode(err))
	})

	t.Run("returns not found for unknown identifier", func(t *testing.T) {
		t.Parallel()

		s := sqlite.NewProductService(openTestDB(t))

		err := s.DeleteProduct(context.Background(), 42)

		require.Error(t, err)
		assert.Equal(t, shopgrid.ENOTFOUND, shopgrid.ErrorCode(err))
	})
}
