package persistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/chef/backend/internal/domain"
)

// ShoppingRepository implements domain.ShoppingRepository with GORM
type ShoppingRepository struct {
	db *gorm.DB
}

// NewShoppingRepository creates a new shopping list repository
func NewShoppingRepository(db *gorm.DB) *ShoppingRepository {
	return &ShoppingRepository{db: db}
}

// Create inserts all items in one transaction
func (r *ShoppingRepository) Create(ctx context.Context, items ...*domain.ShoppingItem) error {
	if len(items) == 0 {
		return nil
	}
	models := make([]*ShoppingItemModel, 0, len(items))
	for _, item := range items {
		models = append(models, shoppingItemToModel(item))
	}
	if err := r.db.WithContext(ctx).Create(&models).Error; err != nil {
		return fmt.Errorf("create shopping items: %w", err)
	}
	return nil
}

// Get returns one item by id
func (r *ShoppingRepository) Get(ctx context.Context, id string) (*domain.ShoppingItem, error) {
	var model ShoppingItemModel
	err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get shopping item: %w", err)
	}
	item := shoppingItemToDomain(&model)
	return &item, nil
}

// ListByUser returns the user's items in insertion order
func (r *ShoppingRepository) ListByUser(ctx context.Context, userID string) ([]domain.ShoppingItem, error) {
	var models []ShoppingItemModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&models).Error
	if err != nil {
		return nil, fmt.Errorf("list shopping items: %w", err)
	}

	items := make([]domain.ShoppingItem, 0, len(models))
	for i := range models {
		items = append(items, shoppingItemToDomain(&models[i]))
	}
	return items, nil
}

// Update saves checked state and category. All items are written in one
// transaction; an unknown id rolls the whole batch back with ErrNotFound.
func (r *ShoppingRepository) Update(ctx context.Context, items ...*domain.ShoppingItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			res := tx.Model(&ShoppingItemModel{}).
				Where("id = ?", item.ID).
				Updates(map[string]interface{}{
					"is_checked": item.IsChecked,
					"category":   string(item.Category),
				})
			if res.Error != nil {
				return fmt.Errorf("update shopping item: %w", res.Error)
			}
			if res.RowsAffected == 0 {
				return domain.ErrNotFound
			}
		}
		return nil
	})
}

// Delete removes the given ids; unknown ids are ignored
func (r *ShoppingRepository) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&ShoppingItemModel{}).Error; err != nil {
		return fmt.Errorf("delete shopping items: %w", err)
	}
	return nil
}
