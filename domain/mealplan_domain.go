package domain

var (
	MessageSuccessBuildMealPlan  = "success build meal plan"
	MessageSuccessExportCalendar = "success export calendar"

	MessageFailedBuildMealPlan  = "failed to build meal plan"
	MessageFailedExportCalendar = "failed to export calendar"
)

type (
	// MealPlan maps weekday x meal type to a placed recipe; a nil slot means
	// no candidate fit the remaining budget or macro ceilings.
	MealPlan map[Weekday]map[MealType]*ScoredRecipe

	GroceryStatus string

	GroceryItem struct {
		Name          string        `json:"name"`
		Amount        float64       `json:"amount"`
		Unit          string        `json:"unit"`
		Status        GroceryStatus `json:"status"`
		AvailableDate string        `json:"available_date,omitempty"` // arriving-soon only
		MealTypes     []MealType    `json:"meal_types"`
	}

	BuildMealPlanRequest struct {
		LikedRecipes []ScoredRecipe     `json:"liked_recipes" validate:"required"`
		Preferences  StudentPreferences `json:"preferences"`
	}

	BuildMealPlanResponse struct {
		Plan            MealPlan      `json:"plan"`
		ActiveMealTypes []MealType    `json:"active_meal_types"`
		GroceryList     []GroceryItem `json:"grocery_list"`
		BuyItemCount    int           `json:"buy_item_count"`
	}
)

const (
	GroceryInStock      GroceryStatus = "in-stock"
	GroceryArrivingSoon GroceryStatus = "arriving-soon"
	GroceryNeedToBuy    GroceryStatus = "need-to-buy"
)
