package advisor

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/trustedadvisor"
	"github.com/aws/aws-sdk-go-v2/service/trustedadvisor/types"
	"github.com/de-tools/cloud-report/pkg/models/domain"
	"github.com/rs/zerolog"
)

// maxPageSize is the largest page the ListRecommendations API accepts.
const maxPageSize = 200

// Explorer retrieves and enriches Trusted Advisor recommendations.
type Explorer interface {
	// ListFindings pages through every recommendation of the pillar that is
	// in "error" status and enriches each one. A listing failure aborts the
	// whole call; an enrichment failure drops just that recommendation.
	ListFindings(ctx context.Context, pillar domain.Pillar) ([]domain.Finding, error)

	// ListResources pages through every resource of one recommendation.
	ListResources(ctx context.Context, recommendationID string) ([]domain.Resource, error)
}

type explorer struct {
	client   API
	pageSize int32
}

func NewExplorer(client API) Explorer {
	return &explorer{
		client:   client,
		pageSize: maxPageSize,
	}
}

func (e *explorer) ListFindings(ctx context.Context, pillar domain.Pillar) ([]domain.Finding, error) {
	summaries, err := e.listSummaries(ctx, pillar)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)
	findings := make([]domain.Finding, 0, len(summaries))
	for _, summary := range summaries {
		finding, err := e.enrich(ctx, summary)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("recommendation", aws.ToString(summary.Arn)).
				Msg("dropping recommendation after enrichment failure")
			continue
		}
		findings = append(findings, finding)
	}
	return findings, nil
}

func (e *explorer) listSummaries(
	ctx context.Context,
	pillar domain.Pillar,
) ([]types.RecommendationSummary, error) {
	var (
		summaries []types.RecommendationSummary
		nextToken *string
	)
	for {
		out, err := e.client.ListRecommendations(ctx, &trustedadvisor.ListRecommendationsInput{
			Pillar:     types.RecommendationPillar(pillar),
			Status:     types.RecommendationStatusError,
			MaxResults: aws.Int32(e.pageSize),
			NextToken:  nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list %s recommendations: %w", pillar, err)
		}
		summaries = append(summaries, out.RecommendationSummaries...)
		if out.NextToken == nil || *out.NextToken == "" {
			return summaries, nil
		}
		nextToken = out.NextToken
	}
}

func (e *explorer) enrich(
	ctx context.Context,
	summary types.RecommendationSummary,
) (domain.Finding, error) {
	arn := aws.ToString(summary.Arn)

	out, err := e.client.GetRecommendation(ctx, &trustedadvisor.GetRecommendationInput{
		RecommendationIdentifier: summary.Arn,
	})
	if err != nil {
		return domain.Finding{}, fmt.Errorf("failed to get recommendation %s: %w", arn, err)
	}

	resources, err := e.ListResources(ctx, arn)
	if err != nil {
		return domain.Finding{}, err
	}

	finding := domain.Finding{
		RecommendationIdentifier: arn,
		CheckName:                aws.ToString(summary.Name),
		CheckID:                  aws.ToString(summary.Id),
		Status:                   string(summary.Status),
		ResourceCount:            resourceCount(summary.ResourcesAggregates),
		Resources:                resources,
	}
	if rec := out.Recommendation; rec != nil {
		description := aws.ToString(rec.Description)
		finding.Description = description
		finding.RecommendedAction = recommendedAction(description)
	}
	if agg := summary.PillarSpecificAggregates; agg != nil && agg.CostOptimizing != nil {
		finding.EstimatedMonthlySavings = agg.CostOptimizing.EstimatedMonthlySavings
	}
	return finding, nil
}

func (e *explorer) ListResources(ctx context.Context, recommendationID string) ([]domain.Resource, error) {
	var (
		resources []domain.Resource
		nextToken *string
	)
	for {
		out, err := e.client.ListRecommendationResources(ctx, &trustedadvisor.ListRecommendationResourcesInput{
			RecommendationIdentifier: aws.String(recommendationID),
			MaxResults:               aws.Int32(e.pageSize),
			NextToken:                nextToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list resources of %s: %w", recommendationID, err)
		}
		for _, rs := range out.RecommendationResourceSummaries {
			resources = append(resources, mapResourceSummary(rs))
		}
		if out.NextToken == nil || *out.NextToken == "" {
			return resources, nil
		}
		nextToken = out.NextToken
	}
}

func mapResourceSummary(rs types.RecommendationResourceSummary) domain.Resource {
	metadata := rs.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	return domain.Resource{
		ID:                aws.ToString(rs.Id),
		Arn:               aws.ToString(rs.Arn),
		AwsResourceID:     aws.ToString(rs.AwsResourceId),
		RegionCode:        aws.ToString(rs.RegionCode),
		Status:            string(rs.Status),
		Metadata:          metadata,
		LastUpdatedAt:     rs.LastUpdatedAt,
		ExclusionStatus:   string(rs.ExclusionStatus),
		RecommendationArn: aws.ToString(rs.RecommendationArn),
	}
}

// resourceCount sums error and warning counts; absent counts mean zero.
func resourceCount(agg *types.RecommendationResourcesAggregates) int64 {
	if agg == nil {
		return 0
	}
	return aws.ToInt64(agg.ErrorCount) + aws.ToInt64(agg.WarningCount)
}
