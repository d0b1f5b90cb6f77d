package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chef/backend/internal/domain"
	"github.com/chef/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	classifier *usecase.Classifier
	pantry     *usecase.PantryService
	shopping   *usecase.ShoppingService
	meals      *usecase.MealPlanService
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	classifier *usecase.Classifier,
	pantry *usecase.PantryService,
	shopping *usecase.ShoppingService,
	meals *usecase.MealPlanService,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		classifier: classifier,
		pantry:     pantry,
		shopping:   shopping,
		meals:      meals,
		logger:     logger.Named("http"),
	}
}

type ingredientsRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
}

type classifiedIngredient struct {
	Ingredient string          `json:"ingredient"`
	Category   domain.Category `json:"category"`
}

type parsedIngredient struct {
	domain.ParsedIngredient
	Category domain.Category `json:"category"`
}

type pantryMatchRequest struct {
	Pantry  []string                   `json:"pantry"`
	Recipes []domain.RecipeIngredients `json:"recipes" binding:"dive"`
}

type pantrySearchRequest struct {
	Pantry []string `json:"pantry"`
}

type shoppingItemRequest struct {
	Ingredient string `json:"ingredient" binding:"required"`
	RecipeID   string `json:"recipeId"`
}

type shoppingBatchRequest struct {
	Ingredients []string `json:"ingredients" binding:"required,min=1"`
	RecipeID    string   `json:"recipeId"`
}

type idsRequest struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}

type mealPlanRequest struct {
	Date     string          `json:"date" binding:"required"`
	MealType domain.MealType `json:"mealType" binding:"required"`
	RecipeID string          `json:"recipeId" binding:"required"`
}

type moveMealPlanRequest struct {
	Date     string          `json:"date" binding:"required"`
	MealType domain.MealType `json:"mealType" binding:"required"`
}

type autoFillRequest struct {
	StartDate string `json:"startDate" binding:"required"`
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "chef-backend",
		"version": "1.0.0",
	})
}

// ListCategories returns every aisle category in classification order
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": domain.AllCategories()})
}

// ClassifyIngredients assigns a category to each submitted line
func (h *Handler) ClassifyIngredients(c *gin.Context) {
	var req ingredientsRequest
	if !h.bind(c, &req) {
		return
	}

	results := make([]classifiedIngredient, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		results = append(results, classifiedIngredient{
			Ingredient: line,
			Category:   h.classifier.Classify(line),
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ParseIngredients splits each line into quantity, unit and item
func (h *Handler) ParseIngredients(c *gin.Context) {
	var req ingredientsRequest
	if !h.bind(c, &req) {
		return
	}

	results := make([]parsedIngredient, 0, len(req.Ingredients))
	for _, line := range req.Ingredients {
		results = append(results, parsedIngredient{
			ParsedIngredient: h.classifier.Parse(line),
			Category:         h.classifier.Classify(line),
		})
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// MatchPantry ranks a caller-supplied recipe list against the pantry
func (h *Handler) MatchPantry(c *gin.Context) {
	var req pantryMatchRequest
	if !h.bind(c, &req) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": h.pantry.Match(req.Pantry, req.Recipes)})
}

// SearchPantry ranks the caller's stored recipes against the pantry
func (h *Handler) SearchPantry(c *gin.Context) {
	var req pantrySearchRequest
	if !h.bind(c, &req) {
		return
	}
	results, err := h.pantry.Search(c.Request.Context(), currentUser(c), req.Pantry)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

// ListShoppingItems returns the caller's shopping list
func (h *Handler) ListShoppingItems(c *gin.Context) {
	items, err := h.shopping.List(c.Request.Context(), currentUser(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GroupedShoppingItems returns the list bucketed by ?by=category|recipe
func (h *Handler) GroupedShoppingItems(c *gin.Context) {
	by := domain.GroupBy(c.DefaultQuery("by", string(domain.GroupByCategory)))
	groups, err := h.shopping.Grouped(c.Request.Context(), currentUser(c), by)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// AddShoppingItem adds one line to the list
func (h *Handler) AddShoppingItem(c *gin.Context) {
	var req shoppingItemRequest
	if !h.bind(c, &req) {
		return
	}
	item, err := h.shopping.Add(c.Request.Context(), currentUser(c), req.Ingredient, req.RecipeID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// AddShoppingItems adds several lines, typically a recipe's ingredients
func (h *Handler) AddShoppingItems(c *gin.Context) {
	var req shoppingBatchRequest
	if !h.bind(c, &req) {
		return
	}
	items, err := h.shopping.AddBatch(c.Request.Context(), currentUser(c), req.Ingredients, req.RecipeID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"items": items})
}

// ToggleShoppingItem flips one item's checked state
func (h *Handler) ToggleShoppingItem(c *gin.Context) {
	item, err := h.shopping.Toggle(c.Request.Context(), currentUser(c), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// ToggleShoppingItems flips several items, e.g. an aggregated row
func (h *Handler) ToggleShoppingItems(c *gin.Context) {
	var req idsRequest
	if !h.bind(c, &req) {
		return
	}
	n, err := h.shopping.ToggleBatch(c.Request.Context(), currentUser(c), req.IDs)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"toggled": n})
}

// RemoveShoppingItem deletes one item
func (h *Handler) RemoveShoppingItem(c *gin.Context) {
	if err := h.shopping.Remove(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RemoveShoppingItems deletes several items
func (h *Handler) RemoveShoppingItems(c *gin.Context) {
	var req idsRequest
	if !h.bind(c, &req) {
		return
	}
	n, err := h.shopping.RemoveBatch(c.Request.Context(), currentUser(c), req.IDs)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": n})
}

// ClearCheckedItems deletes every checked item
func (h *Handler) ClearCheckedItems(c *gin.Context) {
	n, err := h.shopping.ClearChecked(c.Request.Context(), currentUser(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": n})
}

// ClearShoppingList empties the list
func (h *Handler) ClearShoppingList(c *gin.Context) {
	n, err := h.shopping.ClearAll(c.Request.Context(), currentUser(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removed": n})
}

// RecategorizeShoppingList re-classifies stored items
func (h *Handler) RecategorizeShoppingList(c *gin.Context) {
	n, err := h.shopping.Recategorize(c.Request.Context(), currentUser(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": n})
}

// ListMealPlans returns plans between ?start= and ?end= inclusive
func (h *Handler) ListMealPlans(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start == "" || end == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end query parameters are required"})
		return
	}
	plans, err := h.meals.Week(c.Request.Context(), currentUser(c), start, end)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// AddMealPlan places a recipe in a slot
func (h *Handler) AddMealPlan(c *gin.Context) {
	var req mealPlanRequest
	if !h.bind(c, &req) {
		return
	}
	plan, err := h.meals.Add(c.Request.Context(), currentUser(c), usecase.MealPlanInput{
		Date:     req.Date,
		MealType: req.MealType,
		RecipeID: req.RecipeID,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// MoveMealPlan moves a plan to another date or slot
func (h *Handler) MoveMealPlan(c *gin.Context) {
	var req moveMealPlanRequest
	if !h.bind(c, &req) {
		return
	}
	plan, err := h.meals.Move(c.Request.Context(), currentUser(c), c.Param("id"), req.Date, req.MealType)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// RemoveMealPlan deletes a plan
func (h *Handler) RemoveMealPlan(c *gin.Context) {
	if err := h.meals.Remove(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AutoFillMealPlans fills the empty slots of the week starting at startDate
func (h *Handler) AutoFillMealPlans(c *gin.Context) {
	var req autoFillRequest
	if !h.bind(c, &req) {
		return
	}
	plans, err := h.meals.AutoFill(c.Request.Context(), currentUser(c), req.StartDate)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"plans": plans})
}

// bind decodes the JSON body and writes a 400 on failure
func (h *Handler) bind(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return false
	}
	return true
}

// respondError maps domain errors to HTTP status codes
func (h *Handler) respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrRateLimited):
		status = http.StatusTooManyRequests
	}

	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		h.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(status, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
