// Package goquery provides CSS-selector-based extraction of product data
// from collection-grid HTML.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/shopgrid"
	"golang.org/x/net/html"
)

// Ensure SectionParser implements shopgrid.SectionParser at compile time.
var _ shopgrid.SectionParser = (*SectionParser)(nil)

// SectionParser extracts labeled sub-sections from a product description
// fragment. Descriptions follow a disclosure convention: a leading
// narrative paragraph followed by details elements whose summary carries a
// headline and whose content region holds the section body.
type SectionParser struct {
	// Collisions decides which occurrence wins when the same label
	// appears twice in one description.
	Collisions shopgrid.CollisionPolicy

	// Selectors target the sub-section markup.
	Selectors shopgrid.Selectors
}

// NewSectionParser creates a SectionParser for the default grid convention.
func NewSectionParser() *SectionParser {
	cfg := shopgrid.DefaultConfig()
	return &SectionParser{
		Collisions: cfg.SectionCollisions,
		Selectors:  cfg.Selectors,
	}
}

// ParseSections returns the sections of a description fragment. An empty or
// absent fragment yields an empty map with no keys at all; any non-empty
// fragment yields at least the "description" key. Unparseable input
// degrades to an empty map rather than failing the enclosing document.
func (p *SectionParser) ParseSections(fragment string) shopgrid.SectionMap {
	sections := shopgrid.SectionMap{}
	if strings.TrimSpace(fragment) == "" {
		return sections
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return sections
	}

	// The leading narrative paragraph is the first p outside any
	// disclosure element. Absent paragraph stores an empty string, so
	// the key is always present for non-empty fragments.
	lead := ""
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if sel.ParentsFiltered("details").Length() > 0 {
			return true
		}
		lead = flattenText(sel)
		return false
	})
	sections[shopgrid.SectionDescription] = lead

	doc.Find("details").Each(func(_ int, details *goquery.Selection) {
		key := shopgrid.NormalizeLabel(flattenText(details.Find(p.Selectors.Headline)))
		if key == "" {
			key = shopgrid.SectionFallbackLabel
		}

		var parts []string
		details.Find(p.Selectors.Content).First().
			Find("p, li, h3, h4, h5, h6").
			Each(func(_ int, el *goquery.Selection) {
				parts = append(parts, flattenText(el))
			})
		text := strings.TrimSpace(strings.Join(parts, "\n"))

		sections.Set(key, text, p.Collisions)
	})

	return sections
}

// flattenText joins all descendant text nodes of a selection with single
// spaces, collapsing internal whitespace and trimming the result.
func flattenText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if fields := strings.Fields(n.Data); len(fields) > 0 {
				parts = append(parts, strings.Join(fields, " "))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, node := range sel.Nodes {
		walk(node)
	}
	return strings.Join(parts, " ")
}
