package recipe

import (
	"github.com/gin-gonic/gin"

	"pem/internal/app/domains/apimodel/response"
	"pem/internal/app/domains/services/svrecipe"
	"pem/internal/app/pkg/ginx"
)

// RecipeHandler 菜谱建议接口处理器
type RecipeHandler struct {
	matcher *svrecipe.Matcher
}

// NewRecipeHandler 创建菜谱处理器
func NewRecipeHandler(matcher *svrecipe.Matcher) *RecipeHandler {
	return &RecipeHandler{matcher: matcher}
}

// Suggest 按商品名查询菜谱建议
// GET /api/v1/recipes/:productName
func (h *RecipeHandler) Suggest(c *gin.Context) {
	productName := c.Param("productName")
	if productName == "" {
		ginx.BadRequest(c, "product name is required")
		return
	}

	recipes := h.matcher.RecipesFor(productName)
	ginx.Success(c, &response.RecipeListResponse{
		Product: productName,
		Items:   response.FromRecipeSuggestions(recipes),
		Count:   len(recipes),
	})
}
