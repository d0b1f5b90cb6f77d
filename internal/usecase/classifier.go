package usecase

import (
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/chef/backend/internal/domain"
)

// categoryKeywords maps each aisle to its lowercase keywords. Declaration
// order is classification priority: the first category with a hit wins.
var categoryKeywords = []struct {
	category domain.Category
	keywords []string
}{
	{domain.CategoryProduce, []string{
		"apple", "banana", "orange", "lettuce", "tomato", "onion", "garlic", "carrot",
		"pepper", "potato", "spinach", "fruit", "vegetable", "herb", "cilantro", "parsley",
		"basil", "lemon", "lime", "cucumber", "avocado", "grape", "berry", "melon",
		"squash", "zucchini", "corn", "broccoli", "cauliflower", "kale", "arugula",
		"mushroom", "ginger", "mint", "thyme", "rosemary", "dill", "scallion", "shallot",
	}},
	{domain.CategoryDairy, []string{
		"milk", "cheese", "yogurt", "butter", "cream", "egg", "cheddar", "mozzarella",
		"parmesan", "curd", "ghee", "margarine", "feta", "brie", "ricotta", "paneer",
	}},
	{domain.CategoryMeatSeafood, []string{
		"chicken", "beef", "pork", "fish", "salmon", "shrimp", "tuna", "steak", "bacon",
		"sausage", "ham", "lamb", "turkey", "cod", "halibut", "prawn", "crab", "lobster",
		"duck", "prosciutto", "salami", "meatball", "ground meat",
	}},
	{domain.CategoryGrainsPasta, []string{
		"rice", "pasta", "noodle", "bread", "flour", "oat", "quinoa", "spaghetti",
		"macaroni", "tortilla", "cereal", "barley", "couscous", "penne", "fusilli",
		"linguine", "fettuccine", "lasagna", "bagel", "bun", "wrap", "pita", "cracker",
	}},
	{domain.CategoryCannedJarred, []string{
		"can", "jar", "sauce", "bean", "soup", "broth", "stock", "paste", "tuna canned",
		"chickpea", "lentil", "olive", "pickle", "capers", "jam", "jelly", "butter peanut",
		"butter almond", "salsa",
	}},
	{domain.CategoryBakingSpices, []string{
		"sugar", "salt", "pepper", "oil", "vinegar", "spice", "baking", "powder", "soda",
		"vanilla", "cinnamon", "honey", "syrup", "chocolate", "cocoa", "yeast", "cornstarch",
		"extract", "cumin", "paprika", "turmeric", "oregano", "chili", "nutmeg",
	}},
	{domain.CategoryFrozen, []string{
		"frozen", "ice cream", "pizza frozen", "peas frozen", "corn frozen", "berries frozen",
	}},
	{domain.CategoryBeverages, []string{
		"water", "soda", "juice", "coffee", "tea", "wine", "beer", "drink", "coke", "pepsi",
		"sprite", "lemonade",
	}},
	{domain.CategoryHousehold, []string{
		"paper", "soap", "cleaner", "detergent", "foil", "wrap", "bag", "tissue", "towel",
		"sponge", "shampoo", "toothpaste",
	}},
}

// keywordMatcher tests one keyword against an item name
type keywordMatcher struct {
	keyword string
	pattern *regexp.Regexp // nil for multi-word phrases
}

func (m keywordMatcher) matches(item string) bool {
	if m.pattern == nil {
		return strings.Contains(item, m.keyword)
	}
	return m.pattern.MatchString(item)
}

type categoryRule struct {
	category domain.Category
	matchers []keywordMatcher
}

// keywordTable is compiled once from categoryKeywords and never mutated
var keywordTable = compileKeywordTable()

func compileKeywordTable() []categoryRule {
	rules := make([]categoryRule, 0, len(categoryKeywords))
	for _, entry := range categoryKeywords {
		rule := categoryRule{category: entry.category}
		for _, kw := range entry.keywords {
			rule.matchers = append(rule.matchers, newKeywordMatcher(kw))
		}
		rules = append(rules, rule)
	}
	return rules
}

// newKeywordMatcher builds a whole-word matcher. Single words also accept their
// regular plural ("tomato" -> "tomatoes", "berry" -> "berries").
func newKeywordMatcher(keyword string) keywordMatcher {
	if strings.Contains(keyword, " ") {
		return keywordMatcher{keyword: keyword}
	}

	forms := []string{regexp.QuoteMeta(keyword) + `(?:s|es)?`}
	if stem, ok := strings.CutSuffix(keyword, "y"); ok && len(stem) > 0 && !strings.ContainsAny(stem[len(stem)-1:], "aeiou") {
		forms = append(forms, regexp.QuoteMeta(stem)+`ies`)
	}

	return keywordMatcher{
		keyword: keyword,
		pattern: regexp.MustCompile(`\b(?:` + strings.Join(forms, "|") + `)\b`),
	}
}

// Classify assigns a shopping aisle to a raw ingredient line.
// It never fails: blank or unrecognised input yields CategoryOther.
func Classify(line string) domain.Category {
	category, _ := classify(line)
	return category
}

// classify returns the category together with the keyword that decided it.
func classify(line string) (domain.Category, string) {
	item := ExtractItemName(line)
	if item == "" {
		return domain.CategoryOther, ""
	}

	for _, rule := range keywordTable {
		for _, m := range rule.matchers {
			if m.matches(item) {
				return rule.category, m.keyword
			}
		}
	}
	return domain.CategoryOther, ""
}

// Recorder receives usage signals from the usecase layer
type Recorder interface {
	IngredientClassified(category domain.Category)
	PantryMatched(results int)
}

type nopRecorder struct{}

func (nopRecorder) IngredientClassified(domain.Category) {}
func (nopRecorder) PantryMatched(int)                    {}

// ClassifierConfig holds configuration for the classifier
type ClassifierConfig struct {
	EnableDebugLogging bool
}

// Classifier wraps Classify with debug logging and usage recording
type Classifier struct {
	logger             *zap.Logger
	recorder           Recorder
	enableDebugLogging bool
}

// NewClassifier creates a classifier. A nil logger or recorder disables that concern.
func NewClassifier(config ClassifierConfig, logger *zap.Logger, recorder Recorder) *Classifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Classifier{
		logger:             logger.Named("classifier"),
		recorder:           recorder,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// Classify assigns a category to line and records the decision.
func (c *Classifier) Classify(line string) domain.Category {
	category, keyword := classify(line)

	if c.enableDebugLogging {
		c.logger.Debug("classified ingredient",
			zap.String("input", line),
			zap.String("category", string(category)),
			zap.String("keyword", keyword),
		)
	}
	c.recorder.IngredientClassified(category)

	return category
}

// Parse splits line into quantity, unit and item.
func (c *Classifier) Parse(line string) domain.ParsedIngredient {
	return ParseIngredient(line)
}
