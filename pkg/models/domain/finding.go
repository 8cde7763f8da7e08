package domain

import "time"

// Pillar is a categorization axis of Trusted Advisor recommendations.
type Pillar string

const (
	PillarCostOptimizing Pillar = "cost_optimizing"
	PillarSecurity       Pillar = "security"
)

// Finding is one enriched Trusted Advisor recommendation. Immutable once
// constructed; findings live only for the duration of one invocation.
type Finding struct {
	RecommendationIdentifier string
	CheckName                string
	CheckID                  string
	Status                   string
	Description              string
	RecommendedAction        string
	ResourceCount            int64
	EstimatedMonthlySavings  *float64 // cost pillar only
	Resources                []Resource
}

// Resource is one AWS resource referenced by a recommendation.
type Resource struct {
	ID                string
	Arn               string
	AwsResourceID     string
	RegionCode        string
	Status            string
	Metadata          map[string]string
	LastUpdatedAt     *time.Time
	ExclusionStatus   string
	RecommendationArn string
}
