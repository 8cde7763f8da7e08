package domain

type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// HygieneFinding is one idle or unused infrastructure resource detected by
// the hygiene scanner.
type HygieneFinding struct {
	ResourceType         string
	ResourceID           string
	Region               string
	EstimatedMonthlyCost float64
	AgeDays              *int
	Tags                 map[string]string
	RiskLevel            RiskLevel
	RecommendedAction    string

	// Resource-type specific extras.
	SizeGB *int32
	Name   string
	LBType string
}
