// Package htmltomarkdown converts product description HTML to Markdown for
// product sheets.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/shopgrid"
)

// Ensure Converter implements shopgrid.Converter at compile time.
var _ shopgrid.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown for description fragments. Description
// markup is paragraph/list/disclosure content, so the commonmark plugin set
// is sufficient.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms a description fragment into Markdown. An empty
// fragment is EINVALID; callers decide whether an empty description means
// "skip the sheet body" before converting.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", shopgrid.Errorf(shopgrid.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result) + "\n", nil
}
