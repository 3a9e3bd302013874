package shopgrid

import (
	"os"

	yaml "gopkg.in/yaml.v3"
)

// Config is the optional file configuration. Zero values mean "use the
// default"; LoadConfig overlays the file on top of DefaultConfig so a
// partial file only overrides what it names.
type Config struct {
	// ProductURLBase is joined with each payload handle to derive the
	// canonical product URL.
	ProductURLBase string `yaml:"productURLBase"`

	// SectionCollisions selects the duplicate-label policy within one
	// description: "last-wins" (default) or "first-wins".
	SectionCollisions CollisionPolicy `yaml:"sectionCollisions"`

	// Aliases override the narrative field alias rules. When set, the
	// list replaces the defaults wholesale.
	Aliases []AliasRule `yaml:"aliases"`

	// Selectors target the grid markup convention.
	Selectors Selectors `yaml:"selectors"`
}

// Selectors are the CSS selectors locating product markup. Defaults match
// the productgrid convention of the source shop.
type Selectors struct {
	// Container matches one product container element.
	Container string `yaml:"container"`

	// ProductData matches the embedded structured-data element inside a
	// container.
	ProductData string `yaml:"productData"`

	// Headline matches the headline element inside a sub-section summary.
	Headline string `yaml:"headline"`

	// Content matches the hidden content region of a sub-section.
	Content string `yaml:"content"`
}

// DefaultConfig returns the configuration for the source shop's markup.
func DefaultConfig() Config {
	return Config{
		ProductURLBase:    DefaultURLBase,
		SectionCollisions: LastWins,
		Aliases:           DefaultAliases(),
		Selectors: Selectors{
			Container:   "li.productgrid--item",
			ProductData: `script[type="application/json"][data-product-data]`,
			Headline:    "summary span.headline",
			Content:     "div.indent-content",
		},
	}
}

// LoadConfig reads a YAML configuration file and overlays it on the
// defaults. Returns ENOTFOUND if the file does not exist and EINVALID if it
// does not parse.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, Errorf(ENOTFOUND, "config file %q not found", path)
	}
	if err != nil {
		return cfg, err
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return cfg, Errorf(EINVALID, "parsing config %q: %v", path, err)
	}

	if file.ProductURLBase != "" {
		cfg.ProductURLBase = file.ProductURLBase
	}
	if file.SectionCollisions != "" {
		if file.SectionCollisions != LastWins && file.SectionCollisions != FirstWins {
			return cfg, Errorf(EINVALID, "unknown sectionCollisions policy %q", file.SectionCollisions)
		}
		cfg.SectionCollisions = file.SectionCollisions
	}
	if len(file.Aliases) > 0 {
		cfg.Aliases = file.Aliases
	}
	if file.Selectors.Container != "" {
		cfg.Selectors.Container = file.Selectors.Container
	}
	if file.Selectors.ProductData != "" {
		cfg.Selectors.ProductData = file.Selectors.ProductData
	}
	if file.Selectors.Headline != "" {
		cfg.Selectors.Headline = file.Selectors.Headline
	}
	if file.Selectors.Content != "" {
		cfg.Selectors.Content = file.Selectors.Content
	}

	return cfg, nil
}
