package model

// Food is one row of a USDA food search result.
type Food struct {
	FoodCode                 int64  `json:"food_code"`
	MainDescription          string `json:"main_description"`
	AdditionalDescription    string `json:"additional_description,omitempty"`
	WWEIACategoryDescription string `json:"wweia_category_description"`
	IsAntiInflammatory       bool   `json:"is_anti_inflammatory"`
	IsProInflammatory        bool   `json:"is_pro_inflammatory"`
	IsLowGI                  bool   `json:"is_low_gi"`
	IsHighFiber              bool   `json:"is_high_fiber"`
	IsOmega3Rich             bool   `json:"is_omega3_rich"`
	IsUltraProcessed         bool   `json:"is_ultra_processed"`
	IsMUFARich               bool   `json:"is_mufa_rich"`
}

// FoodItem is one entry of a 24-hour recall. Nutrient fields are filled in
// by the backend on creation.
type FoodItem struct {
	ID               int64    `json:"id,omitempty"`
	FoodCode         int64    `json:"food_code"`
	FoodDescription  string   `json:"food_description"`
	QuantityGrams    float64  `json:"quantity_grams"`
	MealType         string   `json:"meal_type"`
	MealTime         string   `json:"meal_time,omitempty"`
	Calories         *float64 `json:"calories,omitempty"`
	CarbsG           *float64 `json:"carbs_g,omitempty"`
	ProteinG         *float64 `json:"protein_g,omitempty"`
	FatG             *float64 `json:"fat_g,omitempty"`
	FiberG           *float64 `json:"fiber_g,omitempty"`
	SodiumMg         *float64 `json:"sodium_mg,omitempty"`
	IsUltraProcessed bool     `json:"is_ultra_processed,omitempty"`
}

// RecallCreate is the request body for submitting a 24-hour dietary recall.
// Dates and times travel as strings ("2026-01-31", "08:30:00"); the client
// never interprets them.
type RecallCreate struct {
	RecallDate        string     `json:"recall_date"`
	FoodItems         []FoodItem `json:"food_items"`
	EatingWindowStart string     `json:"eating_window_start,omitempty"`
	EatingWindowEnd   string     `json:"eating_window_end,omitempty"`
	SkippedBreakfast  bool       `json:"skipped_breakfast"`
	LateNightEating   bool       `json:"late_night_eating"`
}

// DietaryRecord is a scored recall as returned by the backend.
type DietaryRecord struct {
	ID                       int64      `json:"id"`
	UserID                   int64      `json:"user_id"`
	RecallDate               string     `json:"recall_date"`
	EatingWindowStart        string     `json:"eating_window_start,omitempty"`
	EatingWindowEnd          string     `json:"eating_window_end,omitempty"`
	EatingWindowHours        *float64   `json:"eating_window_hours,omitempty"`
	SkippedBreakfast         bool       `json:"skipped_breakfast"`
	LateNightEating          bool       `json:"late_night_eating"`
	TotalCalories            *float64   `json:"total_calories,omitempty"`
	CarbPercent              *float64   `json:"carb_percent,omitempty"`
	ProteinPercent           *float64   `json:"protein_percent,omitempty"`
	FatPercent               *float64   `json:"fat_percent,omitempty"`
	SaturatedFatG            *float64   `json:"saturated_fat_g,omitempty"`
	FiberG                   *float64   `json:"fiber_g,omitempty"`
	AddedSugarG              *float64   `json:"added_sugar_g,omitempty"`
	SodiumMg                 *float64   `json:"sodium_mg,omitempty"`
	Omega3G                  *float64   `json:"omega3_g,omitempty"`
	UltraProcessedPercent    *float64   `json:"ultra_processed_percent,omitempty"`
	GlycemicLoad             *float64   `json:"glycemic_load,omitempty"`
	FruitVegServings         *float64   `json:"fruit_veg_servings,omitempty"`
	DietaryInflammatoryScore *string    `json:"dietary_inflammatory_score,omitempty"`
	ChrononutritionScore     *float64   `json:"chrononutrition_score,omitempty"`
	DietQualityScore         *float64   `json:"diet_quality_score,omitempty"`
	FoodItems                []FoodItem `json:"food_items"`
}

// FFQ is a food-frequency questionnaire submission; the same shape is sent
// on create (without ID/UserID) and returned on list.
type FFQ struct {
	ID                         int64   `json:"id,omitempty"`
	UserID                     int64   `json:"user_id,omitempty"`
	AssessmentDate             string  `json:"assessment_date"`
	RedMeatServingsWeek        float64 `json:"red_meat_servings_week"`
	ProcessedMeatServingsWeek  float64 `json:"processed_meat_servings_week"`
	FishServingsWeek           float64 `json:"fish_servings_week"`
	PoultryServingsWeek        float64 `json:"poultry_servings_week"`
	EggsServingsWeek           float64 `json:"eggs_servings_week"`
	DairyServingsWeek          float64 `json:"dairy_servings_week"`
	LegumesServingsWeek        float64 `json:"legumes_servings_week"`
	NutsSeedsServingsWeek      float64 `json:"nuts_seeds_servings_week"`
	WholeGrainsServingsWeek    float64 `json:"whole_grains_servings_week"`
	RefinedGrainsServingsWeek  float64 `json:"refined_grains_servings_week"`
	VegetablesServingsDay      float64 `json:"vegetables_servings_day"`
	FruitsServingsDay          float64 `json:"fruits_servings_day"`
	FriedFoodsServingsWeek     float64 `json:"fried_foods_servings_week"`
	SweetsServingsWeek         float64 `json:"sweets_servings_week"`
	SugaryBeveragesServingsDay float64 `json:"sugary_beverages_servings_day"`
	AlcoholServingsWeek        float64 `json:"alcohol_servings_week"`
	OliveOilTbspDay            float64 `json:"olive_oil_tbsp_day"`
	FastFoodServingsWeek       float64 `json:"fast_food_servings_week"`
}
