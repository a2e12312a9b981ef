// Package models defines the core domain models for the meal planner.
//
// # Persistent Models
//
// These are stored by the storage layer:
//   - Recipe: A recipe from the catalog, with free-text ingredient lines
//   - MealSlot: One recipe assigned to a day and meal of the user's week
//   - Override: A user-taught mapping from an ingredient key to a shopping section
//   - User: Registered user account
//
// # Derived Models
//
// These are rebuilt on every grocery list generation and never persisted:
//   - GrocerySection: A named group of grocery items (produce, dairy, ...)
//   - GroceryItem: One rendered line of the grocery list
//
// # Design Principles
//
// 1. **IDs, not pointers**: Relationships use ID strings (MealSlot.RecipeID, Override.UserID)
// 2. **Unix timestamps**: CreatedAt/UpdatedAt are Unix milliseconds
// 3. **Raw ingredients**: Recipes keep ingredients exactly as authored; parsing happens
//    in the grocery package at generation time
package models
