package shopgrid

// Converter transforms an HTML fragment into Markdown. Used when rendering
// product sheets from description HTML.
type Converter interface {
	Convert(html string) (string, error)
}
