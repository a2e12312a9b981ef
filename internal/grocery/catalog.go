package grocery

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed catalog_fr.yaml
var defaultCatalogYAML []byte

// ErrInvalidCatalog is returned when a catalog fails validation.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog holds the classification and formatting data of one locale.
type Catalog struct {
	// DefaultSection is used when nothing else matches.
	DefaultSection string `yaml:"default_section"`
	// Rules are evaluated in order before the keyword sections.
	Rules []Rule `yaml:"rules"`
	// Sections are evaluated in order; the first keyword hit wins.
	Sections []SectionKeywords `yaml:"sections"`
	// UnitWeights maps a counted-produce name to its weight in grams.
	UnitWeights WeightTable `yaml:"unit_weights"`
}

// SectionKeywords binds a section title to the substrings that select it.
type SectionKeywords struct {
	Category string   `yaml:"category"`
	Title    string   `yaml:"title"`
	Keywords []string `yaml:"keywords"`
}

// Rule is a predicate over a canonical key. It matches when the key
// contains every AllOf term, at least one AnyOf term (if any are listed)
// and none of the NoneOf terms.
type Rule struct {
	Name    string   `yaml:"name"`
	AllOf   []string `yaml:"all_of"`
	AnyOf   []string `yaml:"any_of"`
	NoneOf  []string `yaml:"none_of"`
	Section string   `yaml:"section"`
}

// Matches reports whether the rule applies to key.
func (r Rule) Matches(key string) bool {
	if len(r.AllOf) == 0 && len(r.AnyOf) == 0 {
		return false
	}
	for _, term := range r.AllOf {
		if !strings.Contains(key, term) {
			return false
		}
	}
	if len(r.AnyOf) > 0 && !containsAny(key, r.AnyOf) {
		return false
	}
	return !containsAny(key, r.NoneOf)
}

func containsAny(key string, terms []string) bool {
	for _, term := range terms {
		if term != "" && strings.Contains(key, term) {
			return true
		}
	}
	return false
}

// WeightTable maps counted-produce names to a per-unit weight in grams.
type WeightTable map[string]float64

// Lookup finds the weight for key, accepting a plural "s" or "x" on the key.
func (w WeightTable) Lookup(key string) (float64, bool) {
	if g, ok := w[key]; ok {
		return g, true
	}
	for _, suffix := range []string{"s", "x"} {
		if stem, ok := strings.CutSuffix(key, suffix); ok {
			if g, ok := w[stem]; ok {
				return g, true
			}
		}
	}
	return 0, false
}

// DefaultCatalog returns a fresh copy of the embedded French catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog: %v", err))
	}
	return c
}

// ParseCatalog decodes and validates a complete catalog document.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// LoadCatalog reads a catalog file and lays it over the default catalog.
// Rules and sections present in the file replace the defaults wholesale;
// unit weights are merged key by key.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	var file Catalog
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	c := DefaultCatalog()
	if file.DefaultSection != "" {
		c.DefaultSection = file.DefaultSection
	}
	if len(file.Rules) > 0 {
		c.Rules = file.Rules
	}
	if len(file.Sections) > 0 {
		c.Sections = file.Sections
	}
	for name, grams := range file.UnitWeights {
		c.UnitWeights[name] = grams
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Validate checks that every rule and section resolves to a title.
func (c *Catalog) Validate() error {
	if c.DefaultSection == "" {
		return fmt.Errorf("%w: default_section is required", ErrInvalidCatalog)
	}
	for i, r := range c.Rules {
		if r.Section == "" {
			return fmt.Errorf("%w: rule %d (%s) has no section", ErrInvalidCatalog, i, r.Name)
		}
		if len(r.AllOf) == 0 && len(r.AnyOf) == 0 {
			return fmt.Errorf("%w: rule %d (%s) has no terms", ErrInvalidCatalog, i, r.Name)
		}
	}
	for i, s := range c.Sections {
		if s.Title == "" {
			return fmt.Errorf("%w: section %d has no title", ErrInvalidCatalog, i)
		}
	}
	for name, grams := range c.UnitWeights {
		if grams <= 0 {
			return fmt.Errorf("%w: unit weight for %q must be positive", ErrInvalidCatalog, name)
		}
	}
	if c.UnitWeights == nil {
		c.UnitWeights = WeightTable{}
	}
	return nil
}
