package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/chef/backend/internal/domain"
)

// PantryServiceConfig holds configuration for the pantry service
type PantryServiceConfig struct {
	CacheTTL           time.Duration
	EnableDebugLogging bool
}

// PantryService finds recipes a user can cook from what they have
type PantryService struct {
	cache              domain.CacheRepository
	recipes            domain.RecipeRepository
	logger             *zap.Logger
	recorder           Recorder
	cacheTTL           time.Duration
	enableDebugLogging bool
}

// NewPantryService creates a new pantry service with dependencies
func NewPantryService(
	cache domain.CacheRepository,
	recipes domain.RecipeRepository,
	logger *zap.Logger,
	recorder Recorder,
	config PantryServiceConfig,
) *PantryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}

	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 5 * time.Minute
	}

	return &PantryService{
		cache:              cache,
		recipes:            recipes,
		logger:             logger.Named("pantry"),
		recorder:           recorder,
		cacheTTL:           cacheTTL,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Match ranks a caller-supplied recipe corpus against the pantry.
func (s *PantryService) Match(pantry []string, recipes []domain.RecipeIngredients) []domain.MatchResult {
	results := MatchPantry(pantry, recipes)
	s.recorder.PantryMatched(len(results))

	if s.enableDebugLogging {
		s.logger.Debug("matched pantry",
			zap.Strings("pantry", pantry),
			zap.Int("recipes", len(recipes)),
			zap.Int("results", len(results)),
		)
	}
	return results
}

// Search ranks the user's stored recipes against the pantry.
// Flow: check cache -> load recipes -> match -> cache -> return
func (s *PantryService) Search(ctx context.Context, userID string, pantry []string) ([]domain.MatchResult, error) {
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	if len(normalizePantry(pantry)) == 0 {
		return []domain.MatchResult{}, nil
	}

	cacheKey := generatePantryCacheKey(userID, pantry)

	// Try cache first
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		return cached, nil
	}

	recipes, err := s.recipes.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	corpus := make([]domain.RecipeIngredients, 0, len(recipes))
	byID := make(map[string]domain.Recipe, len(recipes))
	for _, r := range recipes {
		corpus = append(corpus, domain.RecipeIngredients{ID: r.ID, Ingredients: r.Ingredients})
		byID[r.ID] = r
	}

	results := s.Match(pantry, corpus)
	for i := range results {
		r := byID[results[i].RecipeID]
		results[i].Title = r.Title
		results[i].Description = r.Description
	}

	if err := s.setInCache(ctx, cacheKey, results); err != nil {
		// Log but don't fail if caching fails
		s.logger.Warn("failed to cache pantry search", zap.String("key", cacheKey), zap.Error(err))
	}

	return results, nil
}

// generatePantryCacheKey builds the cache key from the entries exactly as the
// matcher sees them, so two pantries share a key only when they match alike.
// Format: pantry:{user}:{sorted, quoted entries}
func generatePantryCacheKey(userID string, pantry []string) string {
	entries := normalizePantry(pantry)
	sort.Strings(entries)

	quoted := make([]string, 0, len(entries))
	for i, e := range entries {
		if i > 0 && e == entries[i-1] {
			continue
		}
		quoted = append(quoted, strconv.Quote(e))
	}
	return fmt.Sprintf("pantry:%s:%s", userID, strings.Join(quoted, ","))
}

func (s *PantryService) getFromCache(ctx context.Context, key string) ([]domain.MatchResult, error) {
	if s.cache == nil {
		return nil, domain.ErrCacheMiss
	}
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	var results []domain.MatchResult
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, domain.ErrCacheMiss
	}
	return results, nil
}

func (s *PantryService) setInCache(ctx context.Context, key string, results []domain.MatchResult) error {
	if s.cache == nil {
		return nil
	}
	data, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return s.cache.Set(ctx, key, data, s.cacheTTL)
}
