package model

// PatientProfile mirrors the backend's patient profile record. The client
// renders these fields as-is; all derived values (BMI, risk scores) are
// computed server-side and arrive populated or nil.
type PatientProfile struct {
	ID                   int64    `json:"id,omitempty"`
	UserID               int64    `json:"user_id,omitempty"`
	Age                  int      `json:"age"`
	Sex                  string   `json:"sex"`
	WeightKg             float64  `json:"weight_kg"`
	HeightCm             float64  `json:"height_cm"`
	WaistCircumferenceCm *float64 `json:"waist_circumference_cm,omitempty"`
	BPSystolic           *int     `json:"bp_systolic,omitempty"`
	BPDiastolic          *int     `json:"bp_diastolic,omitempty"`
	FastingGlucoseMgDl   *float64 `json:"fasting_glucose_mg_dl,omitempty"`
	TriglyceridesMgDl    *float64 `json:"triglycerides_mg_dl,omitempty"`
	HDLCholesterolMgDl   *float64 `json:"hdl_cholesterol_mg_dl,omitempty"`
	HsCRPMgL             *float64 `json:"hs_crp_mg_l,omitempty"`
	Medications          []string `json:"medications,omitempty"`
	ActivityLevel        string   `json:"activity_level,omitempty"`
	SleepDurationHours   *float64 `json:"sleep_duration_hours,omitempty"`
	SmokingStatus        string   `json:"smoking_status,omitempty"`

	// Server-computed, read-only.
	BMI                   *float64 `json:"bmi,omitempty"`
	WaistHeightRatio      *float64 `json:"waist_height_ratio,omitempty"`
	EstimatedCalorieReq   *float64 `json:"estimated_calorie_req,omitempty"`
	MetabolicRiskScore    *int     `json:"metabolic_risk_score,omitempty"`
	MetabolicRiskCategory *string  `json:"metabolic_risk_category,omitempty"`
	MetSyndComponentCount *int     `json:"metabolic_syndrome_component_count,omitempty"`
}

// AnthropometricSummary is the backend's computed /patients/profile/summary
// response, displayed verbatim on the dashboard.
type AnthropometricSummary struct {
	BMI                         float64  `json:"bmi"`
	BMICategory                 string   `json:"bmi_category"`
	WaistHeightRatio            *float64 `json:"waist_height_ratio"`
	MetabolicSyndromeComponents int      `json:"metabolic_syndrome_components"`
	MetabolicSyndromePresent    bool     `json:"metabolic_syndrome_present"`
	EstimatedCalorieReq         float64  `json:"estimated_calorie_req"`
	CalorieDeficit              *float64 `json:"calorie_deficit"`
	MetabolicRiskScore          int      `json:"metabolic_risk_score"`
	MetabolicRiskCategory       string   `json:"metabolic_risk_category"`
}
