package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/chef/backend/internal/domain"
)

// RecipeRepository implements domain.RecipeRepository with GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Get returns one recipe by id
func (r *RecipeRepository) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	var model RecipeModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	recipe := recipeToDomain(&model)
	return &recipe, nil
}

// ListByUser returns the user's recipes, favorites first, then oldest first
func (r *RecipeRepository) ListByUser(ctx context.Context, userID string) ([]domain.Recipe, error) {
	var models []RecipeModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_favorite DESC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	recipes := make([]domain.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, recipeToDomain(&models[i]))
	}
	return recipes, nil
}

// Upsert inserts the recipe or overwrites the row with the same id
func (r *RecipeRepository) Upsert(ctx context.Context, recipe *domain.Recipe) error {
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now()
	}
	model := recipeToModel(recipe)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(model).Error
	if err != nil {
		return fmt.Errorf("upsert recipe: %w", err)
	}
	return nil
}
