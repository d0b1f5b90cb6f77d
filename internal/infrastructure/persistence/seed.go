package persistence

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chef/backend/internal/domain"
)

// recipeSeed is the on-disk layout of a recipe corpus file
type recipeSeed struct {
	Recipes []domain.Recipe `yaml:"recipes"`
}

// LoadRecipeSeed reads a YAML recipe corpus. Every recipe needs an id, a user id and a title.
func LoadRecipeSeed(path string) ([]domain.Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe seed: %w", err)
	}
	return ParseRecipeSeed(data)
}

// ParseRecipeSeed decodes a YAML recipe corpus
func ParseRecipeSeed(data []byte) ([]domain.Recipe, error) {
	var seed recipeSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("decode recipe seed: %w", err)
	}
	for i, r := range seed.Recipes {
		if r.ID == "" || r.UserID == "" || r.Title == "" {
			return nil, fmt.Errorf("recipe seed entry %d: id, userId and title are required", i)
		}
	}
	return seed.Recipes, nil
}

// SeedRecipes upserts every recipe and returns how many were written
func SeedRecipes(ctx context.Context, repo domain.RecipeRepository, recipes []domain.Recipe) (int, error) {
	for i := range recipes {
		if err := repo.Upsert(ctx, &recipes[i]); err != nil {
			return i, err
		}
	}
	return len(recipes), nil
}
