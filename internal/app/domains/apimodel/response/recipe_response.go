package response

// RecipeResponse 菜谱建议响应（DTO）
type RecipeResponse struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	CookTime    string   `json:"cook_time"`
	Difficulty  string   `json:"difficulty"`
	Description string   `json:"description"`
	ForProduct  string   `json:"for_product,omitempty"`
}

// RecipeListResponse 商品菜谱查询响应
type RecipeListResponse struct {
	Product string            `json:"product"`
	Items   []*RecipeResponse `json:"items"`
	Count   int               `json:"count"`
}
