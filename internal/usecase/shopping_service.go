package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chef/backend/internal/domain"
)

const (
	generalGroupID    = "general"
	generalGroupTitle = "General Items"
)

// ShoppingService manages shopping lists and stamps each entry with an aisle category
type ShoppingService struct {
	items      domain.ShoppingRepository
	recipes    domain.RecipeRepository
	classifier *Classifier
	logger     *zap.Logger
	now        func() time.Time
}

// NewShoppingService creates a new shopping list service
func NewShoppingService(
	items domain.ShoppingRepository,
	recipes domain.RecipeRepository,
	classifier *Classifier,
	logger *zap.Logger,
) *ShoppingService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if classifier == nil {
		classifier = NewClassifier(ClassifierConfig{}, logger, nil)
	}
	return &ShoppingService{
		items:      items,
		recipes:    recipes,
		classifier: classifier,
		logger:     logger.Named("shopping"),
		now:        time.Now,
	}
}

// List returns every item on the user's list
func (s *ShoppingService) List(ctx context.Context, userID string) ([]domain.ShoppingItem, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return s.items.ListByUser(ctx, userID)
}

// Add classifies and stores one ingredient line
func (s *ShoppingService) Add(ctx context.Context, userID, ingredient, recipeID string) (*domain.ShoppingItem, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	ingredient = strings.TrimSpace(ingredient)
	if ingredient == "" {
		return nil, fmt.Errorf("%w: ingredient is required", domain.ErrInvalidRequest)
	}

	item := s.newItem(userID, ingredient, recipeID)
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create shopping item: %w", err)
	}

	s.logger.Info("added shopping item",
		zap.String("user", userID),
		zap.String("category", string(item.Category)),
	)
	return item, nil
}

// AddBatch stores several lines at once, e.g. a recipe's ingredients. Blank lines are skipped.
func (s *ShoppingService) AddBatch(ctx context.Context, userID string, ingredients []string, recipeID string) ([]domain.ShoppingItem, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	batch := make([]*domain.ShoppingItem, 0, len(ingredients))
	for _, ingredient := range ingredients {
		ingredient = strings.TrimSpace(ingredient)
		if ingredient == "" {
			continue
		}
		batch = append(batch, s.newItem(userID, ingredient, recipeID))
	}
	if len(batch) == 0 {
		return []domain.ShoppingItem{}, nil
	}

	if err := s.items.Create(ctx, batch...); err != nil {
		return nil, fmt.Errorf("create shopping items: %w", err)
	}

	created := make([]domain.ShoppingItem, 0, len(batch))
	for _, item := range batch {
		created = append(created, *item)
	}
	s.logger.Info("added shopping items", zap.String("user", userID), zap.Int("count", len(created)))
	return created, nil
}

func (s *ShoppingService) newItem(userID, ingredient, recipeID string) *domain.ShoppingItem {
	return &domain.ShoppingItem{
		ID:         uuid.NewString(),
		UserID:     userID,
		Ingredient: ingredient,
		RecipeID:   recipeID,
		Category:   s.classifier.Classify(ingredient),
		CreatedAt:  s.now(),
	}
}

// Toggle flips the checked state of one item
func (s *ShoppingService) Toggle(ctx context.Context, userID, id string) (*domain.ShoppingItem, error) {
	item, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	item.IsChecked = !item.IsChecked
	if err := s.items.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("update shopping item: %w", err)
	}
	return item, nil
}

// ToggleBatch flips every listed item once, however often its id repeats. All
// ids are checked for ownership first and the flips are saved together.
// It returns how many distinct items were flipped.
func (s *ShoppingService) ToggleBatch(ctx context.Context, userID string, ids []string) (int, error) {
	items, err := s.ownedAll(ctx, userID, ids)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}
	for _, item := range items {
		item.IsChecked = !item.IsChecked
	}
	if err := s.items.Update(ctx, items...); err != nil {
		return 0, fmt.Errorf("update shopping items: %w", err)
	}
	return len(items), nil
}

// Remove deletes one item
func (s *ShoppingService) Remove(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.items.Delete(ctx, id)
}

// RemoveBatch deletes every listed item and returns how many distinct items went
func (s *ShoppingService) RemoveBatch(ctx context.Context, userID string, ids []string) (int, error) {
	items, err := s.ownedAll(ctx, userID, ids)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}
	unique := make([]string, 0, len(items))
	for _, item := range items {
		unique = append(unique, item.ID)
	}
	if err := s.items.Delete(ctx, unique...); err != nil {
		return 0, fmt.Errorf("delete shopping items: %w", err)
	}
	return len(unique), nil
}

// ClearChecked deletes all checked items and returns how many were removed
func (s *ShoppingService) ClearChecked(ctx context.Context, userID string) (int, error) {
	return s.clear(ctx, userID, func(item domain.ShoppingItem) bool { return item.IsChecked })
}

// ClearAll empties the user's list
func (s *ShoppingService) ClearAll(ctx context.Context, userID string) (int, error) {
	return s.clear(ctx, userID, func(domain.ShoppingItem) bool { return true })
}

func (s *ShoppingService) clear(ctx context.Context, userID string, keep func(domain.ShoppingItem) bool) (int, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	var ids []string
	for _, item := range items {
		if keep(item) {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}
	if err := s.items.Delete(ctx, ids...); err != nil {
		return 0, fmt.Errorf("delete shopping items: %w", err)
	}
	return len(ids), nil
}

// Recategorize re-runs the classifier over stored items and returns how many changed
func (s *ShoppingService) Recategorize(ctx context.Context, userID string) (int, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return 0, err
	}
	changed := 0
	for i := range items {
		category := s.classifier.Classify(items[i].Ingredient)
		if category == items[i].Category {
			continue
		}
		items[i].Category = category
		if err := s.items.Update(ctx, &items[i]); err != nil {
			return changed, fmt.Errorf("update shopping item: %w", err)
		}
		changed++
	}
	return changed, nil
}

// Grouped buckets the list by aisle category or by source recipe. Items with the
// same ingredient text (case-insensitive) and checked state collapse into one
// entry with a count.
func (s *ShoppingService) Grouped(ctx context.Context, userID string, by domain.GroupBy) ([]domain.ShoppingGroup, error) {
	if by == "" {
		by = domain.GroupByCategory
	}
	if by != domain.GroupByCategory && by != domain.GroupByRecipe {
		return nil, fmt.Errorf("%w: unknown grouping %q", domain.ErrInvalidRequest, by)
	}

	items, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	titles := s.recipeTitles(ctx, items)

	groups := make(map[string]*domain.ShoppingGroup)
	var order []string
	for _, item := range items {
		key, title := groupKey(item, by, titles)
		group, ok := groups[key]
		if !ok {
			group = &domain.ShoppingGroup{ID: key, Title: title, Items: []domain.AggregatedItem{}}
			groups[key] = group
			order = append(order, key)
		}
		aggregate(group, item, titles[item.RecipeID])
	}

	result := make([]domain.ShoppingGroup, 0, len(order))
	for _, key := range order {
		result = append(result, *groups[key])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return groupLess(result[i], result[j], by)
	})
	return result, nil
}

func groupKey(item domain.ShoppingItem, by domain.GroupBy, titles map[string]string) (string, string) {
	if by == domain.GroupByRecipe {
		if item.RecipeID == "" {
			return generalGroupID, generalGroupTitle
		}
		title := titles[item.RecipeID]
		if title == "" {
			title = generalGroupTitle
		}
		return item.RecipeID, title
	}

	category := item.Category
	if category == "" {
		category = domain.CategoryOther
	}
	return string(category), string(category)
}

func aggregate(group *domain.ShoppingGroup, item domain.ShoppingItem, recipeTitle string) {
	name := strings.ToLower(strings.TrimSpace(item.Ingredient))
	for i := range group.Items {
		existing := &group.Items[i]
		if strings.ToLower(strings.TrimSpace(existing.Ingredient)) == name && existing.IsChecked == item.IsChecked {
			existing.IDs = append(existing.IDs, item.ID)
			existing.Count++
			return
		}
	}
	group.Items = append(group.Items, domain.AggregatedItem{
		ID:          item.ID,
		IDs:         []string{item.ID},
		Ingredient:  item.Ingredient,
		IsChecked:   item.IsChecked,
		Count:       1,
		RecipeID:    item.RecipeID,
		RecipeTitle: recipeTitle,
		Category:    item.Category,
	})
}

// groupLess orders recipe groups with General first, category groups with Other last.
func groupLess(a, b domain.ShoppingGroup, by domain.GroupBy) bool {
	if by == domain.GroupByRecipe {
		if a.ID == generalGroupID || b.ID == generalGroupID {
			return a.ID == generalGroupID && b.ID != generalGroupID
		}
		return a.Title < b.Title
	}
	other := string(domain.CategoryOther)
	if a.Title == other || b.Title == other {
		return b.Title == other && a.Title != other
	}
	return a.Title < b.Title
}

// recipeTitles looks up titles for the recipes referenced by items. Missing
// recipes are skipped.
func (s *ShoppingService) recipeTitles(ctx context.Context, items []domain.ShoppingItem) map[string]string {
	titles := make(map[string]string)
	if s.recipes == nil {
		return titles
	}
	for _, item := range items {
		if item.RecipeID == "" {
			continue
		}
		if _, done := titles[item.RecipeID]; done {
			continue
		}
		recipe, err := s.recipes.Get(ctx, item.RecipeID)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				s.logger.Warn("recipe lookup failed", zap.String("recipe", item.RecipeID), zap.Error(err))
			}
			titles[item.RecipeID] = ""
			continue
		}
		titles[item.RecipeID] = recipe.Title
	}
	return titles
}

func (s *ShoppingService) owned(ctx context.Context, userID, id string) (*domain.ShoppingItem, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	item, err := s.items.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if item.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return item, nil
}

func (s *ShoppingService) ownedAll(ctx context.Context, userID string, ids []string) ([]*domain.ShoppingItem, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	seen := make(map[string]bool, len(ids))
	items := make([]*domain.ShoppingItem, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		item, err := s.owned(ctx, userID, id)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
