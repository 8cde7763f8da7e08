package advisor

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/trustedadvisor"
)

// API is the subset of the Trusted Advisor client the explorer depends on.
type API interface {
	ListRecommendations(
		ctx context.Context,
		params *trustedadvisor.ListRecommendationsInput,
		optFns ...func(*trustedadvisor.Options),
	) (*trustedadvisor.ListRecommendationsOutput, error)
	GetRecommendation(
		ctx context.Context,
		params *trustedadvisor.GetRecommendationInput,
		optFns ...func(*trustedadvisor.Options),
	) (*trustedadvisor.GetRecommendationOutput, error)
	ListRecommendationResources(
		ctx context.Context,
		params *trustedadvisor.ListRecommendationResourcesInput,
		optFns ...func(*trustedadvisor.Options),
	) (*trustedadvisor.ListRecommendationResourcesOutput, error)
}

// NewClient builds the real Trusted Advisor client. Construct it once at
// process start and reuse it across invocations.
func NewClient(cfg aws.Config) API {
	return trustedadvisor.NewFromConfig(cfg)
}
