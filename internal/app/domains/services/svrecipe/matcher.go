package svrecipe

import (
	"fmt"
	"strings"

	"pem/internal/app/domains/entity/etalert"
)

// 分类兜底的关键词表与代表 key
var (
	meatKeywords      = []string{"chicken", "beef", "pork", "meat", "turkey"}
	vegetableKeywords = []string{"lettuce", "tomato", "spinach", "pepper", "carrot", "onion"}
	fruitKeywords     = []string{"apple", "banana", "berry", "orange", "grape"}
	dairyKeywords     = []string{"milk", "cheese", "yogurt", "cream"}
)

const (
	meatFallbackKey      = "chicken"
	vegetableFallbackKey = "tomatoes"
	fruitFallbackKey     = "apples"
	dairyFallbackKey     = "milk"
)

// Matcher 菜谱匹配服务
// 匹配顺序：精确匹配 → 子串匹配 → 分类兜底 → 通用兜底，保证永不为空
type Matcher struct {
	catalog *Catalog
}

// NewMatcher 创建菜谱匹配服务
func NewMatcher(catalog *Catalog) *Matcher {
	return &Matcher{catalog: catalog}
}

// RecipesFor 根据商品名称返回菜谱建议（非空）
func (m *Matcher) RecipesFor(productName string) []etalert.RecipeSuggestion {
	normalized := strings.ToLower(strings.TrimSpace(productName))

	// 1. 精确匹配
	if recipes, ok := m.catalog.Lookup(normalized); ok {
		return recipes
	}

	// 2. 子串匹配（keys 已排序，匹配结果跨进程稳定）
	for _, key := range m.catalog.Keys() {
		if strings.Contains(normalized, key) || strings.Contains(key, normalized) {
			recipes, _ := m.catalog.Lookup(key)
			return recipes
		}
	}

	// 3. 分类兜底
	if recipes := m.categoryRecipes(normalized); len(recipes) > 0 {
		return recipes
	}

	// 4. 通用兜底：合成两条以商品名为食材的通用菜谱
	return m.genericRecipes(productName)
}

// categoryRecipes 按关键词归类，返回该分类代表食材的菜谱
func (m *Matcher) categoryRecipes(normalized string) []etalert.RecipeSuggestion {
	fallbackKey := ""
	switch {
	case containsAny(normalized, meatKeywords):
		fallbackKey = meatFallbackKey
	case containsAny(normalized, vegetableKeywords):
		fallbackKey = vegetableFallbackKey
	case containsAny(normalized, fruitKeywords):
		fallbackKey = fruitFallbackKey
	case containsAny(normalized, dairyKeywords):
		fallbackKey = dairyFallbackKey
	default:
		return nil
	}

	recipes, _ := m.catalog.Lookup(fallbackKey)
	return recipes
}

// genericRecipes 通用兜底菜谱，以商品原始名称参数化
func (m *Matcher) genericRecipes(productName string) []etalert.RecipeSuggestion {
	lower := strings.ToLower(productName)
	return []etalert.RecipeSuggestion{
		{
			Name:        "Quick Stir Fry",
			Ingredients: []string{lower, "vegetables", "oil", "seasonings"},
			CookTime:    "15 minutes",
			Difficulty:  etalert.DifficultyEasy,
			Description: fmt.Sprintf("Simple stir fry using %s", productName),
		},
		{
			Name:        "Simple Soup",
			Ingredients: []string{lower, "broth", "vegetables", "herbs"},
			CookTime:    "30 minutes",
			Difficulty:  etalert.DifficultyEasy,
			Description: fmt.Sprintf("Comforting soup featuring %s", productName),
		},
	}
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
