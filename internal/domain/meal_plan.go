package domain

// DateLayout is the calendar date format used by meal plans (YYYY-MM-DD)
const DateLayout = "2006-01-02"

// MealType is the slot of the day a planned meal occupies
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
)

// MealTypes returns the daily slots in the order they are filled.
func MealTypes() []MealType {
	return []MealType{MealTypeBreakfast, MealTypeLunch, MealTypeDinner}
}

// IsValid reports whether m is a known meal slot.
func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner:
		return true
	}
	return false
}

// MealPlan assigns a recipe to a (date, meal type) slot
type MealPlan struct {
	ID          string   `json:"id"`
	UserID      string   `json:"userId"`
	Date        string   `json:"date"`
	MealType    MealType `json:"mealType"`
	RecipeID    string   `json:"recipeId"`
	RecipeTitle string   `json:"recipeTitle,omitempty"`
}
