package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/chef/backend/internal/domain"
)

// MealPlanRepository implements domain.MealPlanRepository with GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Create inserts all plans in one statement
func (r *MealPlanRepository) Create(ctx context.Context, plans ...*domain.MealPlan) error {
	if len(plans) == 0 {
		return nil
	}
	models := make([]*MealPlanModel, 0, len(plans))
	for _, p := range plans {
		models = append(models, mealPlanToModel(p))
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return fmt.Errorf("create meal plans: %w", err)
	}
	return nil
}

// Get returns one plan by id
func (r *MealPlanRepository) Get(ctx context.Context, id string) (*domain.MealPlan, error) {
	var model MealPlanModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get meal plan: %w", err)
	}
	plan := mealPlanToDomain(&model)
	return &plan, nil
}

// ListByUserAndRange returns plans with startDate <= date <= endDate.
// YYYY-MM-DD strings sort chronologically, so a string range is enough.
func (r *MealPlanRepository) ListByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]domain.MealPlan, error) {
	var models []MealPlanModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Order("date ASC").
		Order("created_at ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}

	plans := make([]domain.MealPlan, 0, len(models))
	for i := range models {
		plans = append(plans, mealPlanToDomain(&models[i]))
	}
	return plans, nil
}

// Update moves a plan to a new date and slot
func (r *MealPlanRepository) Update(ctx context.Context, plan *domain.MealPlan) error {
	res := r.db.WithContext(ctx).
		Model(&MealPlanModel{}).
		Where("id = ?", plan.ID).
		Updates(map[string]interface{}{
			"date":      plan.Date,
			"meal_type": string(plan.MealType),
		})
	if res.Error != nil {
		return fmt.Errorf("update meal plan: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a plan
func (r *MealPlanRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&MealPlanModel{}).Error; err != nil {
		return fmt.Errorf("delete meal plan: %w", err)
	}
	return nil
}
