package grocery

// Classifier assigns a canonical key to a shopping section.
type Classifier struct {
	rules    []Rule
	sections []SectionKeywords
	fallback string
}

// NewClassifier builds a classifier from a catalog. Terms are folded the
// same way keys are so catalog files may carry accents.
func NewClassifier(c *Catalog) *Classifier {
	cl := &Classifier{fallback: c.DefaultSection}
	for _, r := range c.Rules {
		cl.rules = append(cl.rules, Rule{
			Name:    r.Name,
			AllOf:   foldAll(r.AllOf),
			AnyOf:   foldAll(r.AnyOf),
			NoneOf:  foldAll(r.NoneOf),
			Section: r.Section,
		})
	}
	for _, s := range c.Sections {
		cl.sections = append(cl.sections, SectionKeywords{
			Category: s.Category,
			Title:    s.Title,
			Keywords: foldAll(s.Keywords),
		})
	}
	return cl
}

// Classify resolves key in order: overrides, rules, keyword sections, default.
func (c *Classifier) Classify(key string, overrides map[string]string) string {
	if section, ok := overrides[key]; ok && section != "" {
		return section
	}
	for _, r := range c.rules {
		if r.Matches(key) {
			return r.Section
		}
	}
	for _, s := range c.sections {
		if containsAny(key, s.Keywords) {
			return s.Title
		}
	}
	return c.fallback
}

// Default returns the fallback section title.
func (c *Classifier) Default() string {
	return c.fallback
}

func foldAll(terms []string) []string {
	if len(terms) == 0 {
		return nil
	}
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if f := collapse(fold(t)); f != "" {
			out = append(out, f)
		}
	}
	return out
}
