package api

// Hygiene payloads keep the snake_case keys the report agents were prompted
// against.

type HygieneFinding struct {
	ResourceType         string            `json:"resource_type"`
	ResourceID           string            `json:"resource_id"`
	Region               string            `json:"region"`
	EstimatedMonthlyCost float64           `json:"estimated_monthly_cost"`
	AgeDays              *int              `json:"age_days"`
	Tags                 map[string]string `json:"tags"`
	RiskLevel            string            `json:"risk_level"`
	RecommendedAction    string            `json:"recommended_action"`
	SizeGB               *int32            `json:"size_gb,omitempty"`
	Name                 string            `json:"name,omitempty"`
	Type                 string            `json:"type,omitempty"`
}

type HygieneSummary struct {
	TotalEstimatedSavings float64 `json:"total_estimated_savings"`
	TotalResources        int     `json:"total_resources"`
}

type HygieneReport struct {
	Findings []HygieneFinding `json:"findings"`
	Summary  HygieneSummary   `json:"summary"`
}
