package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations.
// Values are opaque bytes; callers own serialization.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// RecipeRepository provides read access to the recipe corpus and seeding
type RecipeRepository interface {
	Get(ctx context.Context, id string) (*Recipe, error)
	ListByUser(ctx context.Context, userID string) ([]Recipe, error)
	Upsert(ctx context.Context, recipe *Recipe) error
}

// ShoppingRepository persists shopping list items
type ShoppingRepository interface {
	Create(ctx context.Context, items ...*ShoppingItem) error
	Get(ctx context.Context, id string) (*ShoppingItem, error)
	ListByUser(ctx context.Context, userID string) ([]ShoppingItem, error)
	Update(ctx context.Context, items ...*ShoppingItem) error
	Delete(ctx context.Context, ids ...string) error
}

// MealPlanRepository persists meal plan slots
type MealPlanRepository interface {
	Create(ctx context.Context, plans ...*MealPlan) error
	Get(ctx context.Context, id string) (*MealPlan, error)
	ListByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]MealPlan, error)
	Update(ctx context.Context, plan *MealPlan) error
	Delete(ctx context.Context, id string) error
}
