package shopgrid_test

import (
	"testing"

	"github.com/fwojciec/shopgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestColumns(t *testing.T) {
	t.Parallel()

	t.Run("fixed order matches the export schema", func(t *testing.T) {
		t.Parallel()

		var names []string
		for _, col := range shopgrid.Columns() {
			names = append(names, col.Name)
		}

		assert.Equal(t, []string{
			"product_id", "title", "price ($)", "stock_status", "product_type",
			"vendor", "tags", "description", "benefits", "how_to_use",
			"ingredients", "specifications", "inclusions", "care_instructions",
			"product_url", "primary_image_url",
		}, names)
	})

	t.Run("required columns are always present", func(t *testing.T) {
		t.Parallel()

		cols := shopgrid.Columns()
		p := &shopgrid.Product{ID: 1001, StockStatus: shopgrid.StockInStock}

		id, ok := cols[0].Value(p)
		require.True(t, ok)
		assert.Equal(t, "1001", id)

		title, ok := cols[1].Value(p)
		require.True(t, ok)
		assert.Empty(t, title)
	})

	t.Run("narrative columns report absence", func(t *testing.T) {
		t.Parallel()

		p := &shopgrid.Product{ID: 1, Benefits: strptr("soothes skin")}

		for _, col := range shopgrid.Columns() {
			switch col.Name {
			case "benefits":
				v, ok := col.Value(p)
				require.True(t, ok)
				assert.Equal(t, "soothes skin", v)
			case "ingredients":
				_, ok := col.Value(p)
				assert.False(t, ok)
			}
		}
	})
}

func TestPresentColumns(t *testing.T) {
	t.Parallel()

	t.Run("omits columns absent from every record", func(t *testing.T) {
		t.Parallel()

		products := []*shopgrid.Product{
			{ID: 1, Benefits: strptr("hydrates")},
			{ID: 2},
		}

		var names []string
		for _, col := range shopgrid.PresentColumns(products) {
			names = append(names, col.Name)
		}

		assert.Contains(t, names, "benefits")
		assert.NotContains(t, names, "ingredients")
		assert.NotContains(t, names, "description")
		assert.Contains(t, names, "product_id")
		assert.Contains(t, names, "primary_image_url")
	})

	t.Run("a column populated in any record is kept for all", func(t *testing.T) {
		t.Parallel()

		products := []*shopgrid.Product{
			{ID: 1},
			{ID: 2, CareInstructions: strptr("")},
		}

		var names []string
		for _, col := range shopgrid.PresentColumns(products) {
			names = append(names, col.Name)
		}

		assert.Contains(t, names, "care_instructions")
	})
}
