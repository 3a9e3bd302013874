package extract_test

import (
	"context"
	"testing"

	"github.com/fwojciec/shopgrid"
	"github.com/fwojciec/shopgrid/extract"
	"github.com/fwojciec/shopgrid/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64ptr(v int64) *int64 { return &v }

// testRunner builds a Runner whose sources map names to item lists directly,
// so orchestration behavior is tested in isolation from HTML parsing.
func testRunner(items map[string][]shopgrid.Item) *extract.Runner {
	return &extract.Runner{
		Sources: &mock.SourceReader{
			ReadSourceFn: func(_ context.Context, name string) (string, error) {
				if _, ok := items[name]; !ok {
					return "", shopgrid.Errorf(shopgrid.ENOTFOUND, "source %q not found", name)
				}
				return name, nil
			},
		},
		Extractor: &mock.DocumentExtractor{
			ExtractItemsFn: func(html string) ([]shopgrid.Item, error) {
				return items[html], nil
			},
		},
		Sections: &mock.SectionParser{
			ParseSectionsFn: func(string) shopgrid.SectionMap { return shopgrid.SectionMap{} },
		},
		Normalizer: shopgrid.NewNormalizer(),
	}
}

func TestRunnerRun(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates across documents keeping first occurrence", func(t *testing.T) {
		t.Parallel()

		r := testRunner(map[string][]shopgrid.Item{
			"a.html": {{Raw: &shopgrid.RawProduct{ID: int64ptr(1001), Title: "First Title"}}},
			"b.html": {{Raw: &shopgrid.RawProduct{ID: int64ptr(1001), Title: "Second Title"}}},
		})

		catalog, result, err := r.Run(context.Background(), []string{"a.html", "b.html"}, nil)

		require.NoError(t, err)
		require.Equal(t, 1, catalog.Len())
		assert.Equal(t, "First Title", catalog.Products()[0].Title)
		assert.Equal(t, 1, result.Retained)
		assert.Equal(t, 1, result.Duplicates)
	})

	t.Run("unreadable source is skipped and the batch continues", func(t *testing.T) {
		t.Parallel()

		r := testRunner(map[string][]shopgrid.Item{
			"good.html": {{Raw: &shopgrid.RawProduct{ID: int64ptr(1)}}},
		})

		catalog, result, err := r.Run(context.Background(), []string{"missing.html", "good.html"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, catalog.Len())
		assert.Equal(t, 1, result.FailedSources)
		require.Len(t, result.Skips, 1)
		assert.Equal(t, "missing.html", result.Skips[0].Source)
		assert.Equal(t, "unreadable source", result.Skips[0].Reason)
	})

	t.Run("malformed items are reported and the rest survive", func(t *testing.T) {
		t.Parallel()

		r := testRunner(map[string][]shopgrid.Item{
			"doc.html": {
				{Raw: &shopgrid.RawProduct{ID: int64ptr(1)}},
				{Raw: &shopgrid.RawProduct{ID: int64ptr(2)}},
				{Err: shopgrid.Errorf(shopgrid.EINVALID, "decoding product data: bad json")},
				{Raw: &shopgrid.RawProduct{ID: int64ptr(4)}},
				{Raw: &shopgrid.RawProduct{ID: int64ptr(5)}},
			},
		})

		catalog, result, err := r.Run(context.Background(), []string{"doc.html"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 4, catalog.Len())
		require.Len(t, result.Skips, 1)
		assert.Equal(t, "malformed product data", result.Skips[0].Reason)
	})

	t.Run("payload without identifier is skipped not fatal", func(t *testing.T) {
		t.Parallel()

		r := testRunner(map[string][]shopgrid.Item{
			"doc.html": {
				{Raw: &shopgrid.RawProduct{Title: "Orphan"}},
				{Raw: &shopgrid.RawProduct{ID: int64ptr(2)}},
			},
		})

		catalog, result, err := r.Run(context.Background(), []string{"doc.html"}, nil)

		require.NoError(t, err)
		assert.Equal(t, 1, catalog.Len())
		require.Len(t, result.Skips, 1)
		assert.Equal(t, "missing identifier", result.Skips[0].Reason)
	})

	t.Run("zero retained products is the terminating condition", func(t *testing.T) {
		t.Parallel()

		r := testRunner(map[string][]shopgrid.Item{"empty.html": nil})

		catalog, result, err := r.Run(context.Background(), []string{"empty.html"}, nil)

		require.Error(t, err)
		assert.Equal(t, shopgrid.ENOTFOUND, shopgrid.ErrorCode(err))
		assert.Equal(t, 0, catalog.Len())
		assert.Equal(t, 0, result.Retained)
	})

	t.Run("concurrent extraction admits in input order", func(t *testing.T) {
		t.Parallel()

		items := map[string][]shopgrid.Item{
			"a.html": {{Raw: &shopgrid.RawProduct{ID: int64ptr(1), Title: "A"}}},
			"b.html": {{Raw: &shopgrid.RawProduct{ID: int64ptr(2), Title: "B"}}},
			"c.html": {{Raw: &shopgrid.RawProduct{ID: int64ptr(3), Title: "C"}}},
			"d.html": {{Raw: &shopgrid.RawProduct{ID: int64ptr(1), Title: "Duplicate of A"}}},
		}
		r := testRunner(items)
		r.Concurrency = 4

		catalog, result, err := r.Run(context.Background(), []string{"a.html", "b.html", "c.html", "d.html"}, nil)

		require.NoError(t, err)
		require.Equal(t, 3, catalog.Len())
		assert.Equal(t, "A", catalog.Products()[0].Title)
		assert.Equal(t, "B", catalog.Products()[1].Title)
		assert.Equal(t, "C", catalog.Products()[2].Title)
		assert.Equal(t, 1, result.Duplicates)
	})

	t.Run("persists retained products when a store is configured", func(t *testing.T) {
		t.Parallel()

		var saved []int64
		r := testRunner(map[string][]shopgrid.Item{
			"doc.html": {
				{Raw: &shopgrid.RawProduct{ID: int64ptr(1)}},
				{Raw: &shopgrid.RawProduct{ID: int64ptr(2)}},
			},
		})
		r.Store = &mock.ProductService{
			SaveProductFn: func(_ context.Context, p *shopgrid.Product) error {
				saved = append(saved, p.ID)
				return nil
			},
		}

		_, _, err := r.Run(context.Background(), []string{"doc.html"}, nil)

		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, saved)
	})

	t.Run("reports progress events per source", func(t *testing.T) {
		t.Parallel()

		r := testRunner(map[string][]shopgrid.Item{
			"good.html": {{Raw: &shopgrid.RawProduct{ID: int64ptr(1)}}},
		})

		var events []extract.ProgressType
		_, _, err := r.Run(context.Background(), []string{"good.html", "bad.html"}, func(e extract.ProgressEvent) {
			events = append(events, e.Type)
		})

		require.NoError(t, err)
		assert.Equal(t, []extract.ProgressType{
			extract.ProgressStarted,
			extract.ProgressSourceDone,
			extract.ProgressSourceFailed,
			extract.ProgressFinished,
		}, events)
	})

	t.Run("assigns a run identifier", func(t *testing.T) {
		t.Parallel()

		r := testRunner(map[string][]shopgrid.Item{
			"doc.html": {{Raw: &shopgrid.RawProduct{ID: int64ptr(1)}}},
		})

		_, result, err := r.Run(context.Background(), []string{"doc.html"}, nil)

		require.NoError(t, err)
		assert.NotEmpty(t, result.RunID)
	})
}
