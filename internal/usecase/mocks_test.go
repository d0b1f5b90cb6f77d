package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/chef/backend/internal/domain"
)

// MockCacheRepository is a mock implementation of domain.CacheRepository
type MockCacheRepository struct {
	data     map[string][]byte
	getError error
	setError error
	getCalls int
	setCalls int
	lastTTL  time.Duration
}

func NewMockCacheRepository() *MockCacheRepository {
	return &MockCacheRepository{data: make(map[string][]byte)}
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	m.getCalls++
	if m.getError != nil {
		return nil, m.getError
	}
	if value, ok := m.data[key]; ok {
		return value, nil
	}
	return nil, domain.ErrCacheMiss
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	m.setCalls++
	m.lastTTL = ttl
	if m.setError != nil {
		return m.setError
	}
	m.data[key] = value
	return nil
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, ok := m.data[key]
	return ok, nil
}

// MockRecipeRepository keeps recipes in insertion order
type MockRecipeRepository struct {
	recipes   []domain.Recipe
	listError error
	listCalls int
}

func NewMockRecipeRepository(recipes ...domain.Recipe) *MockRecipeRepository {
	return &MockRecipeRepository{recipes: recipes}
}

func (m *MockRecipeRepository) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	for i := range m.recipes {
		if m.recipes[i].ID == id {
			r := m.recipes[i]
			return &r, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockRecipeRepository) ListByUser(ctx context.Context, userID string) ([]domain.Recipe, error) {
	m.listCalls++
	if m.listError != nil {
		return nil, m.listError
	}
	var out []domain.Recipe
	for _, r := range m.recipes {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockRecipeRepository) Upsert(ctx context.Context, recipe *domain.Recipe) error {
	for i := range m.recipes {
		if m.recipes[i].ID == recipe.ID {
			m.recipes[i] = *recipe
			return nil
		}
	}
	m.recipes = append(m.recipes, *recipe)
	return nil
}

// MockShoppingRepository is an in-memory domain.ShoppingRepository
type MockShoppingRepository struct {
	mu          sync.Mutex
	items       []domain.ShoppingItem
	createError error
	updateError error
	updateCalls int
}

func NewMockShoppingRepository() *MockShoppingRepository {
	return &MockShoppingRepository{}
}

func (m *MockShoppingRepository) Create(ctx context.Context, items ...*domain.ShoppingItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createError != nil {
		return m.createError
	}
	for _, item := range items {
		m.items = append(m.items, *item)
	}
	return nil
}

func (m *MockShoppingRepository) Get(ctx context.Context, id string) (*domain.ShoppingItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.items {
		if m.items[i].ID == id {
			item := m.items[i]
			return &item, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockShoppingRepository) ListByUser(ctx context.Context, userID string) ([]domain.ShoppingItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.ShoppingItem{}
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *MockShoppingRepository) Update(ctx context.Context, items ...*domain.ShoppingItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.updateCalls++
	if m.updateError != nil {
		return m.updateError
	}
	idx := make([]int, len(items))
	for n, item := range items {
		idx[n] = -1
		for i := range m.items {
			if m.items[i].ID == item.ID {
				idx[n] = i
			}
		}
		if idx[n] < 0 {
			return domain.ErrNotFound
		}
	}
	for n, item := range items {
		m.items[idx[n]].IsChecked = item.IsChecked
		m.items[idx[n]].Category = item.Category
	}
	return nil
}

func (m *MockShoppingRepository) Delete(ctx context.Context, ids ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	kept := m.items[:0]
	for _, item := range m.items {
		if !drop[item.ID] {
			kept = append(kept, item)
		}
	}
	m.items = kept
	return nil
}

// MockMealPlanRepository is an in-memory domain.MealPlanRepository
type MockMealPlanRepository struct {
	plans []domain.MealPlan
}

func NewMockMealPlanRepository(plans ...domain.MealPlan) *MockMealPlanRepository {
	return &MockMealPlanRepository{plans: plans}
}

func (m *MockMealPlanRepository) Create(ctx context.Context, plans ...*domain.MealPlan) error {
	for _, p := range plans {
		stored := *p
		stored.RecipeTitle = ""
		m.plans = append(m.plans, stored)
	}
	return nil
}

func (m *MockMealPlanRepository) Get(ctx context.Context, id string) (*domain.MealPlan, error) {
	for i := range m.plans {
		if m.plans[i].ID == id {
			p := m.plans[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *MockMealPlanRepository) ListByUserAndRange(ctx context.Context, userID, startDate, endDate string) ([]domain.MealPlan, error) {
	out := []domain.MealPlan{}
	for _, p := range m.plans {
		if p.UserID == userID && p.Date >= startDate && p.Date <= endDate {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (m *MockMealPlanRepository) Update(ctx context.Context, plan *domain.MealPlan) error {
	for i := range m.plans {
		if m.plans[i].ID == plan.ID {
			m.plans[i].Date = plan.Date
			m.plans[i].MealType = plan.MealType
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *MockMealPlanRepository) Delete(ctx context.Context, id string) error {
	for i := range m.plans {
		if m.plans[i].ID == id {
			m.plans = append(m.plans[:i], m.plans[i+1:]...)
			return nil
		}
	}
	return nil
}

// countingRecorder tallies Recorder signals
type countingRecorder struct {
	classified map[domain.Category]int
	matches    []int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{classified: make(map[domain.Category]int)}
}

func (r *countingRecorder) IngredientClassified(category domain.Category) {
	r.classified[category]++
}

func (r *countingRecorder) PantryMatched(results int) {
	r.matches = append(r.matches, results)
}
