package grocery

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmynk/mealplanner/internal/metrics"
	"github.com/mmynk/mealplanner/internal/models"
)

// RecipeSource provides the recipes planned for the active week, in plan order.
type RecipeSource interface {
	AllRecipes(ctx context.Context) ([]models.Recipe, error)
}

// OverrideStore persists user corrections of section assignments.
type OverrideStore interface {
	// ListOverrides returns a user's overrides, most recent first.
	ListOverrides(ctx context.Context, userID string) ([]*models.Override, error)
	CreateOverride(ctx context.Context, o *models.Override) error
}

// Identity exposes the current user. An empty ID means anonymous.
type Identity interface {
	UserID() string
}

// UserID is an Identity backed by a fixed user ID.
type UserID string

func (u UserID) UserID() string { return string(u) }

// RecipeList is a RecipeSource over a fixed slice.
type RecipeList []models.Recipe

func (l RecipeList) AllRecipes(context.Context) ([]models.Recipe, error) {
	return l, nil
}

// Builder owns the grocery list of one user. It is not safe for concurrent
// use; callers serialize Generate and MoveItem.
type Builder struct {
	recipes   RecipeSource
	store     OverrideStore
	identity  Identity
	catalog   *Catalog
	classify  *Classifier
	format    *Formatter
	collator  *collate.Collator
	logger    *slog.Logger
	metrics   *metrics.Metrics
	overrides map[string]string

	sections []models.GrocerySection
	loading  bool
	err      error
}

// Option configures a Builder.
type Option func(*Builder)

// WithCatalog replaces the embedded default catalog.
func WithCatalog(c *Catalog) Option {
	return func(b *Builder) { b.catalog = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) { b.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Builder) { b.metrics = m }
}

// NewBuilder creates a builder. store and identity may be nil, in which
// case overrides are neither loaded nor saved.
func NewBuilder(recipes RecipeSource, store OverrideStore, identity Identity, opts ...Option) *Builder {
	b := &Builder{
		recipes:   recipes,
		store:     store,
		identity:  identity,
		logger:    slog.Default(),
		overrides: make(map[string]string),
		sections:  []models.GrocerySection{},
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.catalog == nil {
		b.catalog = DefaultCatalog()
	}
	b.classify = NewClassifier(b.catalog)
	b.format = NewFormatter(b.catalog.UnitWeights)
	b.collator = collate.New(language.French)
	return b
}

// Generate rebuilds the grocery list from the planned recipes.
//
// Override loading fails soft: the previously cached overrides are kept.
// If the recipes cannot be read, or the pipeline fails, the previous
// sections are kept and the error is both returned and stored in Err.
func (b *Builder) Generate(ctx context.Context) ([]models.GrocerySection, error) {
	start := time.Now()
	b.loading = true
	b.err = nil
	defer func() { b.loading = false }()

	b.loadOverrides(ctx)

	sections, err := b.build(ctx)
	if err != nil {
		b.err = err
		b.metrics.ObserveGeneration(metrics.OutcomeError, time.Since(start), 0)
		b.logger.Error("Failed to generate grocery list", "user_id", b.userID(), "error", err)
		return nil, err
	}

	b.sections = sections
	items := countItems(sections)
	b.metrics.ObserveGeneration(metrics.OutcomeOK, time.Since(start), items)
	b.logger.Info("Grocery list generated",
		"user_id", b.userID(),
		"sections", len(sections),
		"items", items,
		"duration_ms", time.Since(start).Milliseconds())
	return b.Sections(), nil
}

func (b *Builder) build(ctx context.Context) (sections []models.GrocerySection, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("grocery pipeline panicked: %v", r)
		}
	}()

	recipes, err := b.recipes.AllRecipes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load planned recipes: %w", err)
	}

	agg := NewAggregator()
	for _, r := range recipes {
		for _, raw := range r.Ingredients {
			if strings.TrimSpace(raw) == "" {
				continue
			}
			agg.Add(Parse(raw))
		}
	}

	grouped := make(map[string][]models.GroceryItem)
	for key, entry := range agg.Entries() {
		title := b.classify.Classify(key, b.overrides)
		grouped[title] = append(grouped[title], models.GroceryItem{
			Key:   key,
			Label: b.format.Format(*entry, key),
		})
	}

	sections = make([]models.GrocerySection, 0, len(grouped))
	for title, items := range grouped {
		b.sortItems(items)
		sections = append(sections, models.GrocerySection{Title: title, Items: items})
	}
	b.sortSections(sections)
	return sections, nil
}

// loadOverrides refreshes the override cache. The first row seen for a
// normalized label wins, so the most recent correction takes precedence.
func (b *Builder) loadOverrides(ctx context.Context) {
	userID := b.userID()
	if userID == "" || b.store == nil {
		return
	}

	rows, err := b.store.ListOverrides(ctx, userID)
	if err != nil {
		b.metrics.OverrideFailure(metrics.OpLoad)
		b.logger.Warn("Failed to load grocery overrides, using cached",
			"user_id", userID, "cached", len(b.overrides), "error", err)
		return
	}

	rows = slices.Clone(rows)
	slices.SortStableFunc(rows, func(a, c *models.Override) int {
		return cmp.Compare(c.CreatedAt, a.CreatedAt)
	})

	loaded := make(map[string]string, len(rows))
	for _, row := range rows {
		if row == nil {
			continue
		}
		key := Normalize(row.Label)
		if key == "" || row.Section == "" {
			continue
		}
		if _, seen := loaded[key]; !seen {
			loaded[key] = row.Section
		}
	}
	b.overrides = loaded
}

// MoveItem moves an item, found by display label or key, between sections
// and remembers the move for future generations. It reports whether
// anything moved.
func (b *Builder) MoveItem(ctx context.Context, label, from, to string) bool {
	if from == to {
		return false
	}
	fi := b.sectionIndex(from)
	if fi < 0 {
		return false
	}
	ii := slices.IndexFunc(b.sections[fi].Items, func(it models.GroceryItem) bool {
		return it.Label == label || it.Key == label
	})
	if ii < 0 {
		return false
	}

	item := b.sections[fi].Items[ii]
	key := item.Key
	if key == "" {
		key = Normalize(label)
	}
	b.sections[fi].Items = slices.Delete(b.sections[fi].Items, ii, ii+1)
	if len(b.sections[fi].Items) == 0 {
		b.sections = slices.Delete(b.sections, fi, fi+1)
	}

	ti := b.sectionIndex(to)
	if ti < 0 {
		b.sections = append(b.sections, models.GrocerySection{Title: to})
		ti = len(b.sections) - 1
	}
	b.sections[ti].Items = append(b.sections[ti].Items, item)
	b.sortItems(b.sections[ti].Items)
	b.sortSections(b.sections)

	b.overrides[key] = to
	b.saveOverride(ctx, key, to)
	return true
}

func (b *Builder) saveOverride(ctx context.Context, key, section string) {
	userID := b.userID()
	if userID == "" || b.store == nil || key == "" {
		return
	}
	o := &models.Override{UserID: userID, Label: key, Section: section}
	if err := b.store.CreateOverride(ctx, o); err != nil {
		b.metrics.OverrideFailure(metrics.OpSave)
		b.logger.Warn("Failed to save grocery override",
			"user_id", userID, "label", key, "section", section, "error", err)
		return
	}
	b.logger.Debug("Grocery override saved", "user_id", userID, "label", key, "section", section)
}

// ToggleItem flips the done flag of an item. Done flags live only in the
// current list and are reset by Generate.
func (b *Builder) ToggleItem(section, label string) bool {
	si := b.sectionIndex(section)
	if si < 0 {
		return false
	}
	for i := range b.sections[si].Items {
		if b.sections[si].Items[i].Label == label {
			b.sections[si].Items[i].Done = !b.sections[si].Items[i].Done
			return true
		}
	}
	return false
}

// Sections returns a copy of the current list.
func (b *Builder) Sections() []models.GrocerySection {
	out := make([]models.GrocerySection, len(b.sections))
	for i, s := range b.sections {
		out[i] = models.GrocerySection{Title: s.Title, Items: slices.Clone(s.Items)}
	}
	return out
}

// Loading reports whether a generation is in progress.
func (b *Builder) Loading() bool { return b.loading }

// Err returns the error of the last generation, if it failed.
func (b *Builder) Err() error { return b.err }

// Overrides returns a copy of the cached override map.
func (b *Builder) Overrides() map[string]string {
	out := make(map[string]string, len(b.overrides))
	for k, v := range b.overrides {
		out[k] = v
	}
	return out
}

func (b *Builder) userID() string {
	if b.identity == nil {
		return ""
	}
	return b.identity.UserID()
}

func (b *Builder) sectionIndex(title string) int {
	return slices.IndexFunc(b.sections, func(s models.GrocerySection) bool { return s.Title == title })
}

func (b *Builder) sortSections(sections []models.GrocerySection) {
	slices.SortFunc(sections, func(x, y models.GrocerySection) int {
		if c := b.collator.CompareString(x.Title, y.Title); c != 0 {
			return c
		}
		return strings.Compare(x.Title, y.Title)
	})
}

func (b *Builder) sortItems(items []models.GroceryItem) {
	slices.SortFunc(items, func(x, y models.GroceryItem) int {
		if c := b.collator.CompareString(x.Key, y.Key); c != 0 {
			return c
		}
		return strings.Compare(x.Label, y.Label)
	})
}

func countItems(sections []models.GrocerySection) int {
	n := 0
	for _, s := range sections {
		n += len(s.Items)
	}
	return n
}
