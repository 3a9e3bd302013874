package shopgrid

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultURLBase is the base path from which canonical product URLs are
// derived by joining with the payload handle.
const DefaultURLBase = "https://beautederm.sg/collections/all/products"

// Normalizer maps a raw payload plus its parsed sections into the canonical
// Product record, applying field aliasing and defaults.
type Normalizer struct {
	// URLBase is joined with the payload handle to derive the canonical
	// product URL.
	URLBase string

	// Aliases resolve the narrative fields from parsed sections. Order
	// within each rule is priority order.
	Aliases []AliasRule
}

// NewNormalizer returns a Normalizer with the default URL base and alias
// rules.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		URLBase: DefaultURLBase,
		Aliases: DefaultAliases(),
	}
}

// Normalize produces one Product from a decoded payload and its sections.
// A payload without an identifier is rejected with EINVALID; every other
// missing field still emits with its documented default, so incomplete
// hand-authored payloads are never silently dropped.
func (n *Normalizer) Normalize(raw *RawProduct, sections SectionMap) (*Product, error) {
	if raw == nil || raw.ID == nil {
		return nil, Errorf(EINVALID, "product payload missing id")
	}

	stock := StockSoldOut
	if raw.Available {
		stock = StockInStock
	}

	p := &Product{
		ID:              *raw.ID,
		Title:           raw.Title,
		Price:           FormatMinorUnits(raw.Price),
		StockStatus:     stock,
		Type:            raw.Type,
		Vendor:          raw.Vendor,
		Tags:            strings.Join(raw.Tags, ", "),
		Description:     sections.Resolve([]string{SectionDescription}),
		URL:             strings.TrimSuffix(n.URLBase, "/") + "/" + raw.Handle,
		ImageURL:        raw.FeaturedImage,
		Handle:          raw.Handle,
		DescriptionHTML: raw.Description,
	}

	for _, rule := range n.Aliases {
		value := sections.Resolve(rule.Keys)
		if value == nil {
			continue
		}
		switch rule.Field {
		case FieldBenefits:
			p.Benefits = value
		case FieldHowToUse:
			p.HowToUse = value
		case FieldIngredients:
			p.Ingredients = value
		case FieldSpecifications:
			p.Specifications = value
		case FieldInclusions:
			p.Inclusions = value
		case FieldCareInstructions:
			p.CareInstructions = value
		}
	}

	return p, nil
}

// FormatMinorUnits renders an integer amount of minor currency units as a
// fixed two-decimal string, e.g. 2550 becomes "25.50". Decimal arithmetic
// avoids the float drift of dividing by 100.
func FormatMinorUnits(minor int64) string {
	return decimal.New(minor, -2).StringFixed(2)
}
