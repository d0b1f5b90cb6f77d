package domain

// Category is a grocery-aisle label used to group shopping list entries.
type Category string

const (
	CategoryProduce      Category = "Produce"
	CategoryDairy        Category = "Dairy"
	CategoryMeatSeafood  Category = "Meat & Seafood"
	CategoryGrainsPasta  Category = "Grains & Pasta"
	CategoryCannedJarred Category = "Canned & Jarred"
	CategoryBakingSpices Category = "Baking & Spices"
	CategoryFrozen       Category = "Frozen"
	CategoryBeverages    Category = "Beverages"
	CategoryHousehold    Category = "Household"
	CategoryOther        Category = "Other"
)

// AllCategories lists every category in classification priority order, Other last.
func AllCategories() []Category {
	return []Category{
		CategoryProduce,
		CategoryDairy,
		CategoryMeatSeafood,
		CategoryGrainsPasta,
		CategoryCannedJarred,
		CategoryBakingSpices,
		CategoryFrozen,
		CategoryBeverages,
		CategoryHousehold,
		CategoryOther,
	}
}

// IsValid reports whether c is one of the fixed category labels.
func (c Category) IsValid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}

// ParsedIngredient is a free-text ingredient line split into quantity, unit and item name
type ParsedIngredient struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
	Item     string  `json:"item"`
	Original string  `json:"original"`
}
