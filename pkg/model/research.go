package model

// PopulationStats is the investigator dashboard's /research/stats payload.
type PopulationStats struct {
	TotalPatients int  `json:"total_patients"`
	TotalRecalls  int  `json:"total_recalls"`
	TotalPlans    int  `json:"total_plans"`
	MLModelReady  bool `json:"ml_model_ready"`

	AvgBMI            float64 `json:"avg_bmi"`
	AvgFastingGlucose float64 `json:"avg_fasting_glucose"`
	AvgTriglycerides  float64 `json:"avg_triglycerides"`
	AvgHDL            float64 `json:"avg_hdl"`

	AvgTotalCalories         float64 `json:"avg_total_calories"`
	AvgFiberG                float64 `json:"avg_fiber_g"`
	AvgSodiumMg              float64 `json:"avg_sodium_mg"`
	AvgUltraProcessedPercent float64 `json:"avg_ultra_processed_percent"`
	AvgOmega3G               float64 `json:"avg_omega3_g"`
	AvgGlycemicLoad          float64 `json:"avg_glycemic_load"`
	AvgFruitVegServings      float64 `json:"avg_fruit_veg_servings"`
	AvgAddedSugarG           float64 `json:"avg_added_sugar_g"`
	AvgDietQualityScore      float64 `json:"avg_diet_quality_score"`

	RiskDistribution       map[string]int `json:"risk_distribution"`
	DISDistribution        map[string]int `json:"dis_distribution"`
	PlanSourceDistribution map[string]int `json:"plan_source_distribution"`
}

// EnrolledPatient is one row of the investigator's patient registry.
type EnrolledPatient struct {
	ID                          int64    `json:"id"`
	FullName                    string   `json:"full_name"`
	Email                       string   `json:"email"`
	IsActive                    bool     `json:"is_active"`
	Role                        string   `json:"role"`
	TotalRecalls                int      `json:"total_recalls"`
	BMI                         *float64 `json:"bmi"`
	BMICategory                 *string  `json:"bmi_category"`
	FastingGlucose              *float64 `json:"fasting_glucose"`
	RiskCategory                *string  `json:"risk_category"`
	MetabolicSyndromeComponents *int     `json:"metabolic_syndrome_components"`
}
