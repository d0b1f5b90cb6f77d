package persistence

import (
	"github.com/chef/backend/internal/domain"
)

func recipeToModel(r *domain.Recipe) *RecipeModel {
	return &RecipeModel{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		Ingredients: StringSlice(r.Ingredients),
		Steps:       StringSlice(r.Steps),
		Tags:        StringSlice(r.Tags),
		IsPublic:    r.IsPublic,
		IsFavorite:  r.IsFavorite,
		CookingTime: r.CookingTime,
		Difficulty:  r.Difficulty,
		Calories:    r.Calories,
		CreatedAt:   r.CreatedAt,
	}
}

func recipeToDomain(m *RecipeModel) domain.Recipe {
	return domain.Recipe{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Ingredients: []string(m.Ingredients),
		Steps:       []string(m.Steps),
		Tags:        []string(m.Tags),
		IsPublic:    m.IsPublic,
		IsFavorite:  m.IsFavorite,
		CookingTime: m.CookingTime,
		Difficulty:  m.Difficulty,
		Calories:    m.Calories,
		CreatedAt:   m.CreatedAt,
	}
}

func shoppingItemToModel(item *domain.ShoppingItem) *ShoppingItemModel {
	m := &ShoppingItemModel{
		ID:         item.ID,
		UserID:     item.UserID,
		Ingredient: item.Ingredient,
		IsChecked:  item.IsChecked,
		Category:   string(item.Category),
		CreatedAt:  item.CreatedAt,
	}
	if item.RecipeID != "" {
		id := item.RecipeID
		m.RecipeID = &id
	}
	return m
}

func shoppingItemToDomain(m *ShoppingItemModel) domain.ShoppingItem {
	item := domain.ShoppingItem{
		ID:         m.ID,
		UserID:     m.UserID,
		Ingredient: m.Ingredient,
		IsChecked:  m.IsChecked,
		Category:   domain.Category(m.Category),
		CreatedAt:  m.CreatedAt,
	}
	if m.RecipeID != nil {
		item.RecipeID = *m.RecipeID
	}
	return item
}

func mealPlanToModel(p *domain.MealPlan) *MealPlanModel {
	return &MealPlanModel{
		ID:       p.ID,
		UserID:   p.UserID,
		Date:     p.Date,
		MealType: string(p.MealType),
		RecipeID: p.RecipeID,
	}
}

func mealPlanToDomain(m *MealPlanModel) domain.MealPlan {
	return domain.MealPlan{
		ID:       m.ID,
		UserID:   m.UserID,
		Date:     m.Date,
		MealType: domain.MealType(m.MealType),
		RecipeID: m.RecipeID,
	}
}
