package models

// Override is a user-taught mapping from a normalized ingredient label to a
// shopping section. Overrides take precedence over automatic classification.
type Override struct {
	// ID is the unique identifier for the override (UUID format).
	ID string

	// UserID is the user who taught this mapping.
	UserID string

	// Label is the normalized ingredient key.
	Label string

	// Section is the section title chosen by the user.
	Section string

	// Done is stored for compatibility with the grocery_items shape; always false on insert.
	Done bool

	// CreatedAt is the Unix millisecond timestamp of the reclassification.
	CreatedAt int64
}

// GroceryItem is one rendered line of a generated grocery list.
type GroceryItem struct {
	// Key is the canonical ingredient key the item was grouped under.
	Key string

	// Label is the final display string (e.g., "5 carottes (500 g)").
	Label string

	// Done is toggled by the user. Regeneration resets it.
	Done bool
}

// GrocerySection is a named group of grocery items.
// Titles are unique within one generated list.
type GrocerySection struct {
	Title string
	Items []GroceryItem
}
