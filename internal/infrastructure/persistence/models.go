// Package persistence stores recipes, shopping lists and meal plans with GORM
package persistence

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// StringSlice stores a []string as a JSON column
type StringSlice []string

// Value implements driver.Valuer
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (s *StringSlice) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*s = StringSlice{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringSlice", value)
	}
	if len(data) == 0 {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(s))
}

// RecipeModel represents the GORM model for recipes
type RecipeModel struct {
	ID          string      `gorm:"type:varchar(64);primaryKey"`
	UserID      string      `gorm:"type:varchar(255);not null;index"`
	Title       string      `gorm:"type:varchar(255);not null"`
	Description string      `gorm:"type:text"`
	Ingredients StringSlice `gorm:"type:text"`
	Steps       StringSlice `gorm:"type:text"`
	Tags        StringSlice `gorm:"type:text"`
	IsPublic    bool        `gorm:"default:false"`
	IsFavorite  bool        `gorm:"default:false"`
	CookingTime int         `gorm:"default:0"`
	Difficulty  string      `gorm:"type:varchar(20)"`
	Calories    int         `gorm:"default:0"`
	CreatedAt   time.Time   `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (RecipeModel) TableName() string { return "recipes" }

// ShoppingItemModel represents the GORM model for shopping list entries
type ShoppingItemModel struct {
	ID         string    `gorm:"type:char(36);primaryKey"`
	UserID     string    `gorm:"type:varchar(255);not null;index"`
	Ingredient string    `gorm:"type:text;not null"`
	IsChecked  bool      `gorm:"default:false"`
	RecipeID   *string   `gorm:"type:varchar(64)"`
	Category   string    `gorm:"type:varchar(50)"`
	CreatedAt  time.Time `gorm:"index"`
}

// TableName overrides the default table name
func (ShoppingItemModel) TableName() string { return "shopping_list" }

// MealPlanModel represents the GORM model for meal plan slots
type MealPlanModel struct {
	ID        string `gorm:"type:char(36);primaryKey"`
	UserID    string `gorm:"type:varchar(255);not null;index:idx_meal_plans_user_date,priority:1"`
	Date      string `gorm:"type:char(10);not null;index:idx_meal_plans_user_date,priority:2"`
	MealType  string `gorm:"type:varchar(20);not null"`
	RecipeID  string `gorm:"type:varchar(64);not null"`
	CreatedAt time.Time
}

// TableName overrides the default table name
func (MealPlanModel) TableName() string { return "meal_plans" }
