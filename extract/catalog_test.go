package extract_test

import (
	"testing"

	"github.com/fwojciec/shopgrid"
	"github.com/fwojciec/shopgrid/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	t.Run("retains products in first-seen order", func(t *testing.T) {
		t.Parallel()

		c := extract.NewCatalog()
		require.True(t, c.Add(&shopgrid.Product{ID: 3, Title: "Third"}))
		require.True(t, c.Add(&shopgrid.Product{ID: 1, Title: "First"}))
		require.True(t, c.Add(&shopgrid.Product{ID: 2, Title: "Second"}))

		products := c.Products()
		require.Len(t, products, 3)
		assert.Equal(t, int64(3), products[0].ID)
		assert.Equal(t, int64(1), products[1].ID)
		assert.Equal(t, int64(2), products[2].ID)
	})

	t.Run("first occurrence wins on duplicate identifier", func(t *testing.T) {
		t.Parallel()

		c := extract.NewCatalog()
		require.True(t, c.Add(&shopgrid.Product{ID: 1001, Title: "From first document"}))
		assert.False(t, c.Add(&shopgrid.Product{ID: 1001, Title: "From second document"}))

		require.Equal(t, 1, c.Len())
		assert.Equal(t, "From first document", c.Products()[0].Title)
	})

	t.Run("re-adding the same products is idempotent", func(t *testing.T) {
		t.Parallel()

		c := extract.NewCatalog()
		batch := []*shopgrid.Product{{ID: 1}, {ID: 2}, {ID: 3}}
		for _, p := range batch {
			c.Add(p)
		}
		size := c.Len()

		for _, p := range batch {
			assert.False(t, c.Add(p))
		}
		assert.Equal(t, size, c.Len())
	})

	t.Run("seen reports admitted identifiers", func(t *testing.T) {
		t.Parallel()

		c := extract.NewCatalog()
		c.Add(&shopgrid.Product{ID: 42})

		assert.True(t, c.Seen(42))
		assert.False(t, c.Seen(43))
	})
}
