package provider

import (
	"context"
	"math"
	"strings"

	"github.com/de-tools/cloud-report/pkg/adapters"
	"github.com/de-tools/cloud-report/pkg/models/agent"
	"github.com/de-tools/cloud-report/pkg/models/api"
	"github.com/de-tools/cloud-report/pkg/services/hygiene"
)

const regionsParam = "regions"

// NewHygieneScan runs the infrastructure hygiene scan. An optional "regions"
// parameter (comma-separated) overrides the scanner's default region.
func NewHygieneScan(scanner hygiene.Scanner) *Provider {
	return New("run_scan", func(ctx context.Context, event agent.Event) (any, error) {
		var regions []string
		if value, ok := event.Parameter(regionsParam); ok {
			for _, region := range strings.Split(value, ",") {
				if region = strings.TrimSpace(region); region != "" {
					regions = append(regions, region)
				}
			}
		}

		findings, err := scanner.Scan(ctx, regions)
		if err != nil {
			return nil, err
		}

		report := api.HygieneReport{
			Findings: make([]api.HygieneFinding, 0, len(findings)),
		}
		var total float64
		for _, f := range findings {
			total += f.EstimatedMonthlyCost
			report.Findings = append(report.Findings, adapters.MapHygieneFindingDomainToApi(f))
		}
		report.Summary = api.HygieneSummary{
			TotalEstimatedSavings: math.Round(total*10000) / 10000,
			TotalResources:        len(findings),
		}
		return report, nil
	})
}
