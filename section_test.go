package shopgrid_test

import (
	"testing"

	"github.com/fwojciec/shopgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLabel(t *testing.T) {
	t.Parallel()

	t.Run("lowercases and replaces spaces with underscores", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "how_to_use", shopgrid.NormalizeLabel("How To Use"))
		assert.Equal(t, "directions_for_use", shopgrid.NormalizeLabel("Directions For Use"))
	})

	t.Run("collapses whitespace runs and trims", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "care_instructions", shopgrid.NormalizeLabel("  Care \t  Instructions "))
	})

	t.Run("returns empty string for blank label", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, shopgrid.NormalizeLabel("   "))
	})
}

func TestSectionMapSet(t *testing.T) {
	t.Parallel()

	t.Run("last wins overwrites earlier value", func(t *testing.T) {
		t.Parallel()

		m := shopgrid.SectionMap{}
		m.Set("benefits", "first", shopgrid.LastWins)
		m.Set("benefits", "second", shopgrid.LastWins)

		assert.Equal(t, "second", m["benefits"])
	})

	t.Run("first wins keeps earlier value", func(t *testing.T) {
		t.Parallel()

		m := shopgrid.SectionMap{}
		m.Set("benefits", "first", shopgrid.FirstWins)
		m.Set("benefits", "second", shopgrid.FirstWins)

		assert.Equal(t, "first", m["benefits"])
	})
}

func TestSectionMapResolve(t *testing.T) {
	t.Parallel()

	t.Run("first present key wins", func(t *testing.T) {
		t.Parallel()

		m := shopgrid.SectionMap{
			"how_to_use":         "apply twice daily",
			"directions_for_use": "older wording",
		}

		got := m.Resolve([]string{"how_to_use", "directions_for_use"})

		require.NotNil(t, got)
		assert.Equal(t, "apply twice daily", *got)
	})

	t.Run("falls through to later aliases", func(t *testing.T) {
		t.Parallel()

		m := shopgrid.SectionMap{"directions_for_use": "older wording"}

		got := m.Resolve([]string{"how_to_use", "directions_for_use"})

		require.NotNil(t, got)
		assert.Equal(t, "older wording", *got)
	})

	t.Run("returns nil when no alias matches", func(t *testing.T) {
		t.Parallel()

		m := shopgrid.SectionMap{"ingredients": "water"}

		assert.Nil(t, m.Resolve([]string{"benefits"}))
	})

	t.Run("present but empty resolves to empty string", func(t *testing.T) {
		t.Parallel()

		m := shopgrid.SectionMap{"inclusions": ""}

		got := m.Resolve([]string{"inclusions"})

		require.NotNil(t, got)
		assert.Empty(t, *got)
	})
}
