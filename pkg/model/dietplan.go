package model

import "encoding/json"

// PlanRequest asks the backend to generate a diet plan from a given source
// ("rule_based", "ml_model" or "combined") and optional assessment inputs.
type PlanRequest struct {
	Source          string `json:"source,omitempty"`
	DietaryRecordID *int64 `json:"dietary_record_id,omitempty"`
	FFQID           *int64 `json:"ffq_id,omitempty"`
}

// DietPlan is a generated plan. Rule and recommendation payloads are kept
// as raw JSON: the client renders them but attaches no meaning to their
// structure.
type DietPlan struct {
	ID                int64    `json:"id"`
	UserID            int64    `json:"user_id"`
	Source            string   `json:"source"`
	TargetCalories    *float64 `json:"target_calories,omitempty"`
	TargetCarbPercent *float64 `json:"target_carb_percent,omitempty"`
	TargetProteinPct  *float64 `json:"target_protein_percent,omitempty"`
	TargetFatPercent  *float64 `json:"target_fat_percent,omitempty"`
	TargetFiberG      *float64 `json:"target_fiber_g,omitempty"`
	TargetSodiumMg    *float64 `json:"target_sodium_mg,omitempty"`
	TargetAddedSugarG *float64 `json:"target_added_sugar_g,omitempty"`

	TriggeredRules      json.RawMessage `json:"triggered_rules,omitempty"`
	FoodRecommendations json.RawMessage `json:"food_recommendations,omitempty"`
	LifestyleReminders  []string        `json:"lifestyle_reminders,omitempty"`
	MealPattern         json.RawMessage `json:"meal_pattern,omitempty"`

	LowGIPlan            bool `json:"low_gi_plan"`
	CalorieDeficitPlan   bool `json:"calorie_deficit_plan"`
	AntiInflammatoryDiet bool `json:"anti_inflammatory_diet"`
	Omega3Emphasis       bool `json:"omega3_emphasis"`
	MUFAEmphasis         bool `json:"mufa_emphasis"`
	SolubleFiberEmphasis bool `json:"soluble_fiber_emphasis"`
	TimeRestrictedEating bool `json:"time_restricted_eating"`
	PortionControl       bool `json:"portion_control"`
	CarbDistribution     bool `json:"carb_distribution"`

	MLConfidenceScore        *float64 `json:"ml_confidence_score,omitempty"`
	MLPredictedRiskReduction *float64 `json:"ml_predicted_risk_reduction,omitempty"`
	MLRecommendedPlanType    *string  `json:"ml_recommended_plan_type,omitempty"`
	Summary                  *string  `json:"summary,omitempty"`
	CreatedAt                string   `json:"created_at"`
}

// ModelComparison is the side-by-side rule-based vs ML comparison.
type ModelComparison struct {
	PatientRiskProfile json.RawMessage `json:"patient_risk_profile"`
	RuleBasedPlan      DietPlan        `json:"rule_based_plan"`
	MLPlan             DietPlan        `json:"ml_plan"`
	AgreementScore     float64         `json:"agreement_score"`
	KeyDifferences     []string        `json:"key_differences"`
}

// Goal is a patient health goal; current value and progress are maintained
// server-side.
type Goal struct {
	ID              int64    `json:"id"`
	GoalType        string   `json:"goal_type"`
	TargetValue     float64  `json:"target_value"`
	CurrentValue    *float64 `json:"current_value,omitempty"`
	Deadline        *string  `json:"deadline,omitempty"`
	IsAchieved      bool     `json:"is_achieved"`
	AchievedAt      *string  `json:"achieved_at,omitempty"`
	ProgressPercent *float64 `json:"progress_percent,omitempty"`
	CreatedAt       string   `json:"created_at"`
}
