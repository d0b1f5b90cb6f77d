package domain

import "time"

// ShoppingItem is one entry of a user's shopping list
type ShoppingItem struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	Ingredient string    `json:"ingredient"`
	IsChecked  bool      `json:"isChecked"`
	RecipeID   string    `json:"recipeId,omitempty"`
	Category   Category  `json:"category,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// GroupBy selects how a shopping list is bucketed for display
type GroupBy string

const (
	GroupByCategory GroupBy = "category"
	GroupByRecipe   GroupBy = "recipe"
)

// AggregatedItem collapses shopping items that share ingredient text and checked state
type AggregatedItem struct {
	ID          string   `json:"id"`
	IDs         []string `json:"ids"`
	Ingredient  string   `json:"ingredient"`
	IsChecked   bool     `json:"isChecked"`
	Count       int      `json:"count"`
	RecipeID    string   `json:"recipeId,omitempty"`
	RecipeTitle string   `json:"recipeTitle,omitempty"`
	Category    Category `json:"category,omitempty"`
}

// ShoppingGroup is a titled bucket of aggregated items
type ShoppingGroup struct {
	ID    string           `json:"id"`
	Title string           `json:"title"`
	Items []AggregatedItem `json:"items"`
}
