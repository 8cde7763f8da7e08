package provider

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/de-tools/cloud-report/pkg/adapters"
	"github.com/de-tools/cloud-report/pkg/models/agent"
	"github.com/de-tools/cloud-report/pkg/models/api"
	"github.com/de-tools/cloud-report/pkg/models/domain"
	"github.com/de-tools/cloud-report/pkg/services/advisor"
)

// NewCostRecommendations lists cost-optimizing pillar recommendations,
// sorted by estimated monthly savings descending.
func NewCostRecommendations(explorer advisor.Explorer) *Provider {
	return New("get_cost_recommendations", func(ctx context.Context, _ agent.Event) (any, error) {
		findings, err := explorer.ListFindings(ctx, domain.PillarCostOptimizing)
		if err != nil {
			return nil, err
		}
		return buildCostReport(findings, time.Now().UTC()), nil
	})
}

// NewSecurityRecommendations lists security pillar recommendations.
func NewSecurityRecommendations(explorer advisor.Explorer) *Provider {
	return New("get_security_recommendations", func(ctx context.Context, _ agent.Event) (any, error) {
		findings, err := explorer.ListFindings(ctx, domain.PillarSecurity)
		if err != nil {
			return nil, err
		}
		return buildFindingsReport(findings, time.Now().UTC()), nil
	})
}

func buildCostReport(findings []domain.Finding, now time.Time) api.FindingsReport {
	// Stable sort: equal savings keep their arrival order.
	sort.SliceStable(findings, func(i, j int) bool {
		return savings(findings[i]) > savings(findings[j])
	})

	var total float64
	for _, f := range findings {
		total += savings(f)
	}
	total = round2(total)

	report := buildFindingsReport(findings, now)
	report.Summary.TotalEstimatedMonthlySavings = &total
	return report
}

func buildFindingsReport(findings []domain.Finding, now time.Time) api.FindingsReport {
	report := api.FindingsReport{
		Summary: api.ReportSummary{
			TotalFindings: len(findings),
			GeneratedAt:   now.Format(timestampLayout),
		},
		Findings: make([]api.Finding, 0, len(findings)),
	}
	for _, f := range findings {
		report.Findings = append(report.Findings, adapters.MapFindingDomainToApi(f))
	}
	return report
}

func savings(f domain.Finding) float64 {
	if f.EstimatedMonthlySavings == nil {
		return 0
	}
	return *f.EstimatedMonthlySavings
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
