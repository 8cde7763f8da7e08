package api

type Finding struct {
	RecommendationIdentifier string     `json:"recommendationIdentifier"`
	CheckName                string     `json:"checkName"`
	CheckID                  string     `json:"checkId"`
	Status                   string     `json:"status"`
	Description              string     `json:"description"`
	RecommendedAction        string     `json:"recommendedAction"`
	ResourceCount            int64      `json:"resourceCount"`
	EstimatedMonthlySavings  *float64   `json:"estimatedMonthlySavings,omitempty"`
	Resources                []Resource `json:"resources"`
}

type Resource struct {
	ID                string            `json:"id"`
	TAResourceArn     string            `json:"taResourceArn"`
	AwsResourceID     string            `json:"awsResourceId"`
	RegionCode        string            `json:"regionCode"`
	Status            string            `json:"status"`
	Metadata          map[string]string `json:"metadata"`
	LastUpdatedAt     string            `json:"lastUpdatedAt,omitempty"`
	ExclusionStatus   string            `json:"exclusionStatus"`
	RecommendationArn string            `json:"recommendationArn"`
}

type ReportSummary struct {
	TotalFindings                int      `json:"totalFindings"`
	TotalEstimatedMonthlySavings *float64 `json:"totalEstimatedMonthlySavings,omitempty"`
	GeneratedAt                  string   `json:"generatedAt"`
}

// FindingsReport is the payload of the cost and security recommendation
// providers.
type FindingsReport struct {
	Summary  ReportSummary `json:"summary"`
	Findings []Finding     `json:"findings"`
}

type ResourceListSummary struct {
	TotalResources int    `json:"totalResources"`
	GeneratedAt    string `json:"generatedAt"`
}

// ResourceListReport is the payload of the resource list provider.
type ResourceListReport struct {
	Summary   ResourceListSummary `json:"summary"`
	Resources []Resource          `json:"resources"`
}
