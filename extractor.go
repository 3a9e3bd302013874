package shopgrid

// Item is one product container found in a source document. Exactly one of
// Raw or Err is set: a payload that failed to decode carries the decode
// error so callers can report the skip instead of silently dropping it.
type Item struct {
	Raw *RawProduct
	Err error
}

// DocumentExtractor scans one document's text for product containers and
// decodes their embedded structured-data payloads. Containers without a
// structured-data element are not returned at all; they are decorative.
type DocumentExtractor interface {
	ExtractItems(html string) ([]Item, error)
}
