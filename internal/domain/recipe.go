package domain

import "time"

// Recipe is a stored recipe. Ingredients are free-text lines such as "2 cups milk".
type Recipe struct {
	ID          string    `json:"id" yaml:"id"`
	UserID      string    `json:"userId" yaml:"userId"`
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Ingredients []string  `json:"ingredients" yaml:"ingredients"`
	Steps       []string  `json:"steps,omitempty" yaml:"steps"`
	Tags        []string  `json:"tags,omitempty" yaml:"tags"`
	IsPublic    bool      `json:"isPublic" yaml:"isPublic"`
	IsFavorite  bool      `json:"isFavorite" yaml:"isFavorite"`
	CookingTime int       `json:"cookingTime,omitempty" yaml:"cookingTime"`
	Difficulty  string    `json:"difficulty,omitempty" yaml:"difficulty"`
	Calories    int       `json:"calories,omitempty" yaml:"calories"`
	CreatedAt   time.Time `json:"createdAt" yaml:"-"`
}

// RecipeIngredients is the minimal view of a recipe the pantry matcher needs
type RecipeIngredients struct {
	ID          string   `json:"id" binding:"required"`
	Ingredients []string `json:"ingredients"`
}

// MatchResult is the outcome of comparing a pantry against one recipe.
// It is computed per request and never persisted.
type MatchResult struct {
	RecipeID            string   `json:"recipeId"`
	Title               string   `json:"title,omitempty"`
	Description         string   `json:"description,omitempty"`
	MatchCount          int      `json:"matchCount"`
	MatchPercentage     float64  `json:"matchPercentage"` // 0-100, unrounded
	MatchingIngredients []string `json:"matchingIngredients"`
	MissingIngredients  []string `json:"missingIngredients"`
}
