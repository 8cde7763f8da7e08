package provider

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/cloud-report/pkg/adapters"
	"github.com/de-tools/cloud-report/pkg/models/agent"
	"github.com/de-tools/cloud-report/pkg/models/api"
	"github.com/de-tools/cloud-report/pkg/services/advisor"
)

const recommendationIDParam = "recommendationIdentifier"

// NewResourceList lists the resources referenced by one recommendation. The
// recommendationIdentifier parameter is required; its absence is rejected
// before any remote call.
func NewResourceList(explorer advisor.Explorer) *Provider {
	return New("list_recommendation_resources", func(ctx context.Context, event agent.Event) (any, error) {
		id, ok := event.Parameter(recommendationIDParam)
		if !ok || id == "" {
			return nil, fmt.Errorf("missing required parameter %q", recommendationIDParam)
		}

		resources, err := explorer.ListResources(ctx, id)
		if err != nil {
			return nil, err
		}

		report := api.ResourceListReport{
			Summary: api.ResourceListSummary{
				TotalResources: len(resources),
				GeneratedAt:    time.Now().UTC().Format(timestampLayout),
			},
			Resources: make([]api.Resource, 0, len(resources)),
		}
		for _, r := range resources {
			report.Resources = append(report.Resources, adapters.MapResourceDomainToApi(r))
		}
		return report, nil
	})
}
