package shopgrid

import "strings"

// SectionMap maps a normalized section label to its extracted plain text.
// Keys are open-ended: any labeled sub-section discovered in the description
// markup becomes a key, so the key set must not be enumerated in advance.
type SectionMap map[string]string

// SectionDescription is the fixed key under which the leading narrative
// paragraph of a description is stored.
const SectionDescription = "description"

// SectionFallbackLabel is used for sub-sections whose headline is missing.
const SectionFallbackLabel = "general_details"

// CollisionPolicy decides which occurrence wins when a description defines
// the same section label more than once.
type CollisionPolicy string

// CollisionPolicy values.
const (
	LastWins  CollisionPolicy = "last-wins"
	FirstWins CollisionPolicy = "first-wins"
)

// NormalizeLabel converts a section headline into a SectionMap key:
// lowercase, trimmed, with internal whitespace runs collapsed to a single
// underscore. "How To Use" becomes "how_to_use".
func NormalizeLabel(label string) string {
	fields := strings.Fields(strings.ToLower(label))
	return strings.Join(fields, "_")
}

// Set inserts text under key according to the collision policy.
func (m SectionMap) Set(key, text string, policy CollisionPolicy) {
	if policy == FirstWins {
		if _, ok := m[key]; ok {
			return
		}
	}
	m[key] = text
}

// Resolve returns the value of the first key present in the map, or nil if
// none is. A present-but-empty section resolves to a pointer to the empty
// string, keeping "not found" distinguishable from "found but empty".
func (m SectionMap) Resolve(keys []string) *string {
	for _, key := range keys {
		if text, ok := m[key]; ok {
			return &text
		}
	}
	return nil
}

// AliasRule resolves one canonical output field from an ordered list of
// candidate section keys; the first key present wins.
type AliasRule struct {
	Field string   `yaml:"field"`
	Keys  []string `yaml:"keys"`
}

// Canonical narrative field names used by AliasRule.Field.
const (
	FieldBenefits         = "benefits"
	FieldHowToUse         = "how_to_use"
	FieldIngredients      = "ingredients"
	FieldSpecifications   = "specifications"
	FieldInclusions       = "inclusions"
	FieldCareInstructions = "care_instructions"
)

// DefaultAliases returns the alias rules for the catalog's section labeling
// convention. Order within each rule is priority order.
func DefaultAliases() []AliasRule {
	return []AliasRule{
		{Field: FieldBenefits, Keys: []string{"benefits"}},
		{Field: FieldHowToUse, Keys: []string{"how_to_use", "directions_for_use"}},
		{Field: FieldIngredients, Keys: []string{"ingredients"}},
		{Field: FieldSpecifications, Keys: []string{"details", "specification"}},
		{Field: FieldInclusions, Keys: []string{"inclusions"}},
		{Field: FieldCareInstructions, Keys: []string{"care"}},
	}
}

// SectionParser extracts labeled sub-sections from a rich-text description
// fragment. Malformed or empty fragments degrade to an empty map rather
// than failing the enclosing document.
type SectionParser interface {
	ParseSections(html string) SectionMap
}
