package adapters

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/de-tools/cloud-report/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapFindingDomainToApi(t *testing.T) {
	updated := time.Date(2026, 8, 30, 9, 15, 0, 0, time.FixedZone("CEST", 2*3600))

	finding := MapFindingDomainToApi(domain.Finding{
		RecommendationIdentifier: "arn:r1",
		CheckName:                "Low Utilization Amazon EC2 Instances",
		ResourceCount:            3,
		EstimatedMonthlySavings:  aws.Float64(42.5),
		Resources: []domain.Resource{
			{ID: "res-1", LastUpdatedAt: &updated},
		},
	})

	assert.Equal(t, "arn:r1", finding.RecommendationIdentifier)
	assert.Equal(t, int64(3), finding.ResourceCount)
	require.NotNil(t, finding.EstimatedMonthlySavings)
	assert.Equal(t, 42.5, *finding.EstimatedMonthlySavings)
	require.Len(t, finding.Resources, 1)
	assert.Equal(t, "2026-08-30T07:15:00Z", finding.Resources[0].LastUpdatedAt)
}

func TestMapResourceDomainToApi_DefaultsMetadata(t *testing.T) {
	resource := MapResourceDomainToApi(domain.Resource{ID: "res-1"})

	assert.NotNil(t, resource.Metadata)
	assert.Empty(t, resource.Metadata)
	assert.Empty(t, resource.LastUpdatedAt)
}

func TestMapHygieneFindingDomainToApi(t *testing.T) {
	finding := MapHygieneFindingDomainToApi(domain.HygieneFinding{
		ResourceType: "LOAD_BALANCER",
		ResourceID:   "arn:lb",
		RiskLevel:    domain.RiskMedium,
		Name:         "web",
		LBType:       "APPLICATION",
	})

	assert.Equal(t, "MEDIUM", finding.RiskLevel)
	assert.Equal(t, "APPLICATION", finding.Type)
	assert.NotNil(t, finding.Tags)
}
