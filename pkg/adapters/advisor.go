package adapters

import (
	"time"

	"github.com/de-tools/cloud-report/pkg/models/api"
	"github.com/de-tools/cloud-report/pkg/models/domain"
)

func MapFindingDomainToApi(f domain.Finding) api.Finding {
	res := api.Finding{
		RecommendationIdentifier: f.RecommendationIdentifier,
		CheckName:                f.CheckName,
		CheckID:                  f.CheckID,
		Status:                   f.Status,
		Description:              f.Description,
		RecommendedAction:        f.RecommendedAction,
		ResourceCount:            f.ResourceCount,
		EstimatedMonthlySavings:  f.EstimatedMonthlySavings,
		Resources:                make([]api.Resource, 0, len(f.Resources)),
	}
	for _, r := range f.Resources {
		res.Resources = append(res.Resources, MapResourceDomainToApi(r))
	}
	return res
}

func MapResourceDomainToApi(r domain.Resource) api.Resource {
	metadata := r.Metadata
	if metadata == nil {
		metadata = map[string]string{}
	}
	res := api.Resource{
		ID:                r.ID,
		TAResourceArn:     r.Arn,
		AwsResourceID:     r.AwsResourceID,
		RegionCode:        r.RegionCode,
		Status:            r.Status,
		Metadata:          metadata,
		ExclusionStatus:   r.ExclusionStatus,
		RecommendationArn: r.RecommendationArn,
	}
	if r.LastUpdatedAt != nil {
		res.LastUpdatedAt = r.LastUpdatedAt.UTC().Format(time.RFC3339)
	}
	return res
}

func MapHygieneFindingDomainToApi(f domain.HygieneFinding) api.HygieneFinding {
	tags := f.Tags
	if tags == nil {
		tags = map[string]string{}
	}
	return api.HygieneFinding{
		ResourceType:         f.ResourceType,
		ResourceID:           f.ResourceID,
		Region:               f.Region,
		EstimatedMonthlyCost: f.EstimatedMonthlyCost,
		AgeDays:              f.AgeDays,
		Tags:                 tags,
		RiskLevel:            string(f.RiskLevel),
		RecommendedAction:    f.RecommendedAction,
		SizeGB:               f.SizeGB,
		Name:                 f.Name,
		Type:                 f.LBType,
	}
}
