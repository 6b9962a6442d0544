package svrecipe

import (
	"sort"

	"pem/internal/app/domains/entity/etalert"
)

// Catalog 静态菜谱参照表
// 启动时构建一次，之后只读；keys 按字典序排好，保证子串匹配顺序稳定
type Catalog struct {
	recipes map[string][]etalert.RecipeSuggestion
	keys    []string
}

// NewCatalog 构建内置菜谱参照表（按小写食材名索引）
func NewCatalog() *Catalog {
	recipes := map[string][]etalert.RecipeSuggestion{
		// 乳制品
		"milk": {
			{
				Name:        "Creamy Pancakes",
				Ingredients: []string{"milk", "flour", "eggs", "sugar", "baking powder"},
				CookTime:    "20 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Fluffy pancakes perfect for breakfast",
			},
			{
				Name:        "Milk Rice Pudding",
				Ingredients: []string{"milk", "rice", "sugar", "vanilla", "cinnamon"},
				CookTime:    "45 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Comforting dessert with warm spices",
			},
			{
				Name:        "White Sauce Pasta",
				Ingredients: []string{"milk", "pasta", "butter", "flour", "cheese"},
				CookTime:    "25 minutes",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Creamy pasta with rich white sauce",
			},
		},
		"cheese": {
			{
				Name:        "Cheese Quesadillas",
				Ingredients: []string{"cheese", "tortillas", "onions", "peppers"},
				CookTime:    "15 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Quick and delicious Mexican-style quesadillas",
			},
			{
				Name:        "Mac and Cheese",
				Ingredients: []string{"cheese", "pasta", "milk", "butter", "flour"},
				CookTime:    "30 minutes",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Classic comfort food with creamy cheese sauce",
			},
			{
				Name:        "Cheese Omelette",
				Ingredients: []string{"cheese", "eggs", "butter", "herbs"},
				CookTime:    "10 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Perfect breakfast with melted cheese",
			},
		},
		"yogurt": {
			{
				Name:        "Yogurt Smoothie Bowl",
				Ingredients: []string{"yogurt", "berries", "granola", "honey"},
				CookTime:    "5 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Healthy breakfast bowl with fresh toppings",
			},
			{
				Name:        "Yogurt Marinated Chicken",
				Ingredients: []string{"yogurt", "chicken", "spices", "garlic", "lemon"},
				CookTime:    "45 minutes",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Tender chicken with yogurt marinade",
			},
		},
		// 肉类
		"chicken": {
			{
				Name:        "Chicken Stir Fry",
				Ingredients: []string{"chicken", "vegetables", "soy sauce", "garlic", "ginger"},
				CookTime:    "20 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Quick and healthy stir-fry with fresh vegetables",
			},
			{
				Name:        "Chicken Curry",
				Ingredients: []string{"chicken", "coconut milk", "curry powder", "onions", "tomatoes"},
				CookTime:    "40 minutes",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Aromatic curry with rich coconut sauce",
			},
			{
				Name:        "Grilled Chicken Salad",
				Ingredients: []string{"chicken", "lettuce", "tomatoes", "cucumber", "dressing"},
				CookTime:    "25 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Healthy salad with grilled chicken breast",
			},
		},
		"beef": {
			{
				Name:        "Beef Tacos",
				Ingredients: []string{"ground beef", "taco shells", "lettuce", "cheese", "tomatoes"},
				CookTime:    "20 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Classic tacos with seasoned ground beef",
			},
			{
				Name:        "Beef Stew",
				Ingredients: []string{"beef", "potatoes", "carrots", "onions", "broth"},
				CookTime:    "2 hours",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Hearty stew perfect for cold days",
			},
		},
		"pork": {
			{
				Name:        "Pork Chop Dinner",
				Ingredients: []string{"pork chops", "potatoes", "green beans", "herbs"},
				CookTime:    "35 minutes",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Complete dinner with juicy pork chops",
			},
		},
		// 蔬菜
		"lettuce": {
			{
				Name:        "Caesar Salad",
				Ingredients: []string{"lettuce", "croutons", "parmesan", "caesar dressing"},
				CookTime:    "10 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Classic Caesar salad with crispy lettuce",
			},
			{
				Name:        "Lettuce Wraps",
				Ingredients: []string{"lettuce", "ground meat", "vegetables", "sauce"},
				CookTime:    "15 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Healthy wraps using lettuce as shells",
			},
		},
		"tomatoes": {
			{
				Name:        "Caprese Salad",
				Ingredients: []string{"tomatoes", "mozzarella", "basil", "olive oil"},
				CookTime:    "10 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Fresh Italian salad with ripe tomatoes",
			},
			{
				Name:        "Tomato Pasta Sauce",
				Ingredients: []string{"tomatoes", "garlic", "onions", "herbs", "olive oil"},
				CookTime:    "30 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Homemade pasta sauce with fresh tomatoes",
			},
			{
				Name:        "Stuffed Tomatoes",
				Ingredients: []string{"tomatoes", "rice", "herbs", "cheese"},
				CookTime:    "45 minutes",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Baked tomatoes stuffed with savory filling",
			},
		},
		"spinach": {
			{
				Name:        "Spinach Smoothie",
				Ingredients: []string{"spinach", "banana", "apple", "yogurt"},
				CookTime:    "5 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Healthy green smoothie packed with nutrients",
			},
			{
				Name:        "Creamed Spinach",
				Ingredients: []string{"spinach", "cream", "garlic", "nutmeg"},
				CookTime:    "15 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Classic side dish with rich cream sauce",
			},
		},
		"bell peppers": {
			{
				Name:        "Stuffed Bell Peppers",
				Ingredients: []string{"bell peppers", "ground meat", "rice", "cheese"},
				CookTime:    "45 minutes",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Colorful peppers stuffed with savory filling",
			},
		},
		// 水果
		"apples": {
			{
				Name:        "Apple Pie",
				Ingredients: []string{"apples", "pie crust", "sugar", "cinnamon", "butter"},
				CookTime:    "1 hour",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Classic American apple pie with flaky crust",
			},
			{
				Name:        "Apple Crisp",
				Ingredients: []string{"apples", "oats", "brown sugar", "butter", "cinnamon"},
				CookTime:    "45 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Warm dessert with crunchy oat topping",
			},
			{
				Name:        "Apple Sauce",
				Ingredients: []string{"apples", "sugar", "cinnamon", "lemon juice"},
				CookTime:    "25 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Homemade applesauce perfect as side or snack",
			},
		},
		"bananas": {
			{
				Name:        "Banana Bread",
				Ingredients: []string{"bananas", "flour", "sugar", "eggs", "butter"},
				CookTime:    "1 hour",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Moist banana bread perfect for overripe bananas",
			},
			{
				Name:        "Banana Smoothie",
				Ingredients: []string{"bananas", "milk", "honey", "ice"},
				CookTime:    "5 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Creamy smoothie with natural sweetness",
			},
			{
				Name:        "Banana Pancakes",
				Ingredients: []string{"bananas", "eggs", "flour", "milk"},
				CookTime:    "15 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Fluffy pancakes with mashed banana",
			},
		},
		"strawberries": {
			{
				Name:        "Strawberry Shortcake",
				Ingredients: []string{"strawberries", "biscuits", "whipped cream", "sugar"},
				CookTime:    "30 minutes",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Classic dessert with fresh strawberries",
			},
			{
				Name:        "Strawberry Jam",
				Ingredients: []string{"strawberries", "sugar", "lemon juice"},
				CookTime:    "45 minutes",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Homemade jam to preserve fresh strawberries",
			},
		},
		// 烘焙
		"bread": {
			{
				Name:        "French Toast",
				Ingredients: []string{"bread", "eggs", "milk", "cinnamon", "vanilla"},
				CookTime:    "15 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Perfect breakfast using day-old bread",
			},
			{
				Name:        "Bread Pudding",
				Ingredients: []string{"bread", "milk", "eggs", "sugar", "vanilla"},
				CookTime:    "45 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Comforting dessert that uses stale bread",
			},
			{
				Name:        "Croutons",
				Ingredients: []string{"bread", "olive oil", "herbs", "garlic"},
				CookTime:    "20 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Crunchy bread cubes perfect for salads",
			},
		},
		// 海鲜
		"salmon": {
			{
				Name:        "Grilled Salmon",
				Ingredients: []string{"salmon", "lemon", "herbs", "olive oil"},
				CookTime:    "20 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Simple grilled salmon with fresh herbs",
			},
			{
				Name:        "Salmon Teriyaki",
				Ingredients: []string{"salmon", "teriyaki sauce", "rice", "vegetables"},
				CookTime:    "25 minutes",
				Difficulty:  etalert.DifficultyMedium,
				Description: "Asian-inspired salmon with sweet glaze",
			},
		},
		// 蛋类
		"eggs": {
			{
				Name:        "Scrambled Eggs",
				Ingredients: []string{"eggs", "butter", "milk", "salt", "pepper"},
				CookTime:    "5 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Creamy scrambled eggs for any meal",
			},
			{
				Name:        "Egg Fried Rice",
				Ingredients: []string{"eggs", "rice", "vegetables", "soy sauce"},
				CookTime:    "15 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Quick fried rice with scrambled eggs",
			},
			{
				Name:        "Deviled Eggs",
				Ingredients: []string{"eggs", "mayonnaise", "mustard", "paprika"},
				CookTime:    "20 minutes",
				Difficulty:  etalert.DifficultyEasy,
				Description: "Classic appetizer perfect for parties",
			},
		},
	}

	keys := make([]string, 0, len(recipes))
	for k := range recipes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return &Catalog{
		recipes: recipes,
		keys:    keys,
	}
}

// Lookup 精确匹配（key 为小写食材名）
func (c *Catalog) Lookup(key string) ([]etalert.RecipeSuggestion, bool) {
	recipes, ok := c.recipes[key]
	return recipes, ok
}

// Keys 返回排好序的全部 key（只读）
func (c *Catalog) Keys() []string {
	return c.keys
}
