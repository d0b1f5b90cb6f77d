package usecase

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/chef/backend/internal/domain"
)

// autoFillDays is how many consecutive days AutoFill covers
const autoFillDays = 7

// MealPlanInput is the validated shape of a new or moved meal plan slot
type MealPlanInput struct {
	Date     string          `validate:"required,datetime=2006-01-02"`
	MealType domain.MealType `validate:"required,oneof=breakfast lunch dinner"`
	RecipeID string          `validate:"required"`
}

// MealPlanService plans recipes onto a weekly calendar
type MealPlanService struct {
	plans    domain.MealPlanRepository
	recipes  domain.RecipeRepository
	logger   *zap.Logger
	validate *validator.Validate
	pick     func(n int) int
}

// NewMealPlanService creates a new meal plan service
func NewMealPlanService(
	plans domain.MealPlanRepository,
	recipes domain.RecipeRepository,
	logger *zap.Logger,
) *MealPlanService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MealPlanService{
		plans:    plans,
		recipes:  recipes,
		logger:   logger.Named("mealplan"),
		validate: validator.New(),
		pick:     rand.Intn,
	}
}

// WithPicker replaces the random recipe picker. pick(n) must return a value in [0, n).
func (s *MealPlanService) WithPicker(pick func(n int) int) *MealPlanService {
	s.pick = pick
	return s
}

// Week returns the user's plans between start and end inclusive, with recipe titles
func (s *MealPlanService) Week(ctx context.Context, userID, start, end string) ([]domain.MealPlan, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if _, err := parseDate(start); err != nil {
		return nil, err
	}
	if _, err := parseDate(end); err != nil {
		return nil, err
	}

	plans, err := s.plans.ListByUserAndRange(ctx, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}

	titles := make(map[string]string)
	for i := range plans {
		id := plans[i].RecipeID
		title, ok := titles[id]
		if !ok {
			if recipe, err := s.recipes.Get(ctx, id); err == nil {
				title = recipe.Title
			} else if !errors.Is(err, domain.ErrNotFound) {
				s.logger.Warn("recipe lookup failed", zap.String("recipe", id), zap.Error(err))
			}
			titles[id] = title
		}
		plans[i].RecipeTitle = title
	}
	return plans, nil
}

// Add places a recipe into a slot
func (s *MealPlanService) Add(ctx context.Context, userID string, input MealPlanInput) (*domain.MealPlan, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}
	if _, err := s.recipes.Get(ctx, input.RecipeID); err != nil {
		return nil, err
	}

	plan := &domain.MealPlan{
		ID:       uuid.NewString(),
		UserID:   userID,
		Date:     input.Date,
		MealType: input.MealType,
		RecipeID: input.RecipeID,
	}
	if err := s.plans.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("create meal plan: %w", err)
	}
	return plan, nil
}

// Move changes the date and slot of an existing plan. Several plans may share a slot.
func (s *MealPlanService) Move(ctx context.Context, userID, id, date string, mealType domain.MealType) (*domain.MealPlan, error) {
	plan, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	input := MealPlanInput{Date: date, MealType: mealType, RecipeID: plan.RecipeID}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRequest, err)
	}

	plan.Date = date
	plan.MealType = mealType
	if err := s.plans.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("update meal plan: %w", err)
	}
	return plan, nil
}

// Remove deletes a plan
func (s *MealPlanService) Remove(ctx context.Context, userID, id string) error {
	if _, err := s.owned(ctx, userID, id); err != nil {
		return err
	}
	return s.plans.Delete(ctx, id)
}

// AutoFill fills every empty (date, meal type) slot of the seven days starting
// at startDate with one of the user's recipes chosen at random. Occupied slots
// are left alone. A user without recipes gets no plans.
func (s *MealPlanService) AutoFill(ctx context.Context, userID, startDate string) ([]domain.MealPlan, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	start, err := parseDate(startDate)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	if len(recipes) == 0 {
		return []domain.MealPlan{}, nil
	}

	dates := weekDates(start)
	existing, err := s.plans.ListByUserAndRange(ctx, userID, dates[0], dates[len(dates)-1])
	if err != nil {
		return nil, fmt.Errorf("list meal plans: %w", err)
	}
	occupied := make(map[string]bool, len(existing))
	for _, p := range existing {
		occupied[slotKey(p.Date, p.MealType)] = true
	}

	var created []*domain.MealPlan
	for _, date := range dates {
		for _, mealType := range domain.MealTypes() {
			if occupied[slotKey(date, mealType)] {
				continue
			}
			recipe := recipes[s.pick(len(recipes))]
			created = append(created, &domain.MealPlan{
				ID:          uuid.NewString(),
				UserID:      userID,
				Date:        date,
				MealType:    mealType,
				RecipeID:    recipe.ID,
				RecipeTitle: recipe.Title,
			})
		}
	}

	result := make([]domain.MealPlan, 0, len(created))
	if len(created) == 0 {
		return result, nil
	}
	if err := s.plans.Create(ctx, created...); err != nil {
		return nil, fmt.Errorf("create meal plans: %w", err)
	}
	for _, p := range created {
		result = append(result, *p)
	}

	s.logger.Info("auto-filled meal plan",
		zap.String("user", userID),
		zap.String("start", startDate),
		zap.Int("created", len(result)),
	)
	return result, nil
}

func (s *MealPlanService) owned(ctx context.Context, userID, id string) (*domain.MealPlan, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	plan, err := s.plans.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return plan, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrInvalidRequest, s)
	}
	return t, nil
}

// weekDates returns autoFillDays consecutive calendar dates starting at start.
func weekDates(start time.Time) []string {
	dates := make([]string, 0, autoFillDays)
	for i := 0; i < autoFillDays; i++ {
		dates = append(dates, start.AddDate(0, 0, i).Format(domain.DateLayout))
	}
	return dates
}

func slotKey(date string, mealType domain.MealType) string {
	return date + "|" + string(mealType)
}
