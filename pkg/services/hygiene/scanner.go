package hygiene

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	cwtypes "github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2/types"
	"github.com/de-tools/cloud-report/pkg/models/domain"
	"github.com/rs/zerolog"
)

// Scanner detects idle and unused infrastructure worth cleaning up.
type Scanner interface {
	// Scan runs every check over the given regions (the default region when
	// none are passed) and returns the combined findings.
	Scan(ctx context.Context, regions []string) ([]domain.HygieneFinding, error)
}

type Settings struct {
	DefaultRegion      string
	Prices             Prices
	MetricWindow       time.Duration
	MinSnapshotAgeDays int
	Now                func() time.Time
}

type scanner struct {
	clients  ClientFactory
	settings Settings
}

func NewScanner(clients ClientFactory, settings Settings) Scanner {
	if settings.DefaultRegion == "" {
		settings.DefaultRegion = "us-east-1"
	}
	if settings.Prices == (Prices{}) {
		settings.Prices = DefaultPrices()
	}
	if settings.MetricWindow == 0 {
		settings.MetricWindow = 7 * 24 * time.Hour
	}
	if settings.MinSnapshotAgeDays == 0 {
		settings.MinSnapshotAgeDays = 3
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}
	return &scanner{clients: clients, settings: settings}
}

func (s *scanner) Scan(ctx context.Context, regions []string) ([]domain.HygieneFinding, error) {
	if len(regions) == 0 {
		regions = []string{s.settings.DefaultRegion}
	}

	var findings []domain.HygieneFinding
	for _, region := range regions {
		clients := s.clients(region)

		scans := []func(context.Context, Clients, string) ([]domain.HygieneFinding, error){
			s.scanUnattachedVolumes,
			s.scanStaleSnapshots,
			s.scanUnusedAddresses,
			s.scanIdleNatGateways,
			s.scanIdleLoadBalancers,
			s.scanEmptyLogGroups,
		}
		for _, scan := range scans {
			regional, err := scan(ctx, clients, region)
			if err != nil {
				return nil, err
			}
			findings = append(findings, regional...)
		}
	}
	return findings, nil
}

func (s *scanner) scanUnattachedVolumes(
	ctx context.Context,
	clients Clients,
	region string,
) ([]domain.HygieneFinding, error) {
	paginator := ec2.NewDescribeVolumesPaginator(clients.EC2, &ec2.DescribeVolumesInput{
		Filters: []ec2types.Filter{
			{
				Name:   aws.String("status"),
				Values: []string{"available"},
			},
		},
	})

	var findings []domain.HygieneFinding
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe volumes in %s: %w", region, err)
		}
		for _, volume := range page.Volumes {
			sizeGB := aws.ToInt32(volume.Size)
			findings = append(findings, domain.HygieneFinding{
				ResourceType:         "EBS_VOLUME",
				ResourceID:           aws.ToString(volume.VolumeId),
				Region:               region,
				EstimatedMonthlyCost: round4(float64(sizeGB) * s.settings.Prices.EBSGBMonth),
				AgeDays:              s.ageDays(volume.CreateTime),
				Tags:                 tagMap(volume.Tags),
				RiskLevel:            domain.RiskMedium,
				RecommendedAction:    "Delete volume if no longer needed",
				SizeGB:               aws.Int32(sizeGB),
			})
		}
	}
	return findings, nil
}

func (s *scanner) scanStaleSnapshots(
	ctx context.Context,
	clients Clients,
	region string,
) ([]domain.HygieneFinding, error) {
	paginator := ec2.NewDescribeSnapshotsPaginator(clients.EC2, &ec2.DescribeSnapshotsInput{
		OwnerIds: []string{"self"},
	})

	var findings []domain.HygieneFinding
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe snapshots in %s: %w", region, err)
		}
		for _, snapshot := range page.Snapshots {
			age := s.ageDays(snapshot.StartTime)
			if age == nil || *age < s.settings.MinSnapshotAgeDays {
				continue
			}

			sizeGB := aws.ToInt32(snapshot.VolumeSize)
			findings = append(findings, domain.HygieneFinding{
				ResourceType:         "EBS_SNAPSHOT",
				ResourceID:           aws.ToString(snapshot.SnapshotId),
				Region:               region,
				EstimatedMonthlyCost: round4(float64(sizeGB) * s.settings.Prices.SnapshotGBMonth),
				AgeDays:              age,
				Tags:                 tagMap(snapshot.Tags),
				RiskLevel:            domain.RiskLow,
				RecommendedAction:    "Review and delete stale snapshot if no longer required",
				SizeGB:               aws.Int32(sizeGB),
			})
		}
	}
	return findings, nil
}

func (s *scanner) scanUnusedAddresses(
	ctx context.Context,
	clients Clients,
	region string,
) ([]domain.HygieneFinding, error) {
	out, err := clients.EC2.DescribeAddresses(ctx, &ec2.DescribeAddressesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe addresses in %s: %w", region, err)
	}

	var findings []domain.HygieneFinding
	for _, address := range out.Addresses {
		if address.AssociationId != nil {
			continue
		}

		id := aws.ToString(address.AllocationId)
		if id == "" {
			id = aws.ToString(address.PublicIp)
		}
		findings = append(findings, domain.HygieneFinding{
			ResourceType:         "ELASTIC_IP",
			ResourceID:           id,
			Region:               region,
			EstimatedMonthlyCost: round4(s.settings.Prices.EIPMonth),
			Tags:                 map[string]string{},
			RiskLevel:            domain.RiskMedium,
			RecommendedAction:    "Release unused Elastic IP",
		})
	}
	return findings, nil
}

func (s *scanner) scanIdleNatGateways(
	ctx context.Context,
	clients Clients,
	region string,
) ([]domain.HygieneFinding, error) {
	out, err := clients.EC2.DescribeNatGateways(ctx, &ec2.DescribeNatGatewaysInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe NAT gateways in %s: %w", region, err)
	}

	logger := zerolog.Ctx(ctx)
	var findings []domain.HygieneFinding
	for _, nat := range out.NatGateways {
		natID := aws.ToString(nat.NatGatewayId)
		hasTraffic, err := s.hasTraffic(ctx, clients.CloudWatch, "AWS/NATGateway", "BytesOutToDestination", []cwtypes.Dimension{
			{Name: aws.String("NatGatewayId"), Value: aws.String(natID)},
		})
		if err != nil {
			// Metrics unavailable: do not flag the gateway.
			logger.Warn().Err(err).Str("nat_gateway", natID).Msg("skipping NAT gateway without metrics")
			continue
		}
		if hasTraffic {
			continue
		}

		findings = append(findings, domain.HygieneFinding{
			ResourceType:         "NAT_GATEWAY",
			ResourceID:           natID,
			Region:               region,
			EstimatedMonthlyCost: round4(s.settings.Prices.NATMonth),
			Tags:                 map[string]string{},
			RiskLevel:            domain.RiskHigh,
			RecommendedAction:    "Remove or downsize idle NAT Gateway",
		})
	}
	return findings, nil
}

func (s *scanner) scanIdleLoadBalancers(
	ctx context.Context,
	clients Clients,
	region string,
) ([]domain.HygieneFinding, error) {
	paginator := elasticloadbalancingv2.NewDescribeLoadBalancersPaginator(
		clients.ELB,
		&elasticloadbalancingv2.DescribeLoadBalancersInput{},
	)

	logger := zerolog.Ctx(ctx)
	var findings []domain.HygieneFinding
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe load balancers in %s: %w", region, err)
		}
		for _, lb := range page.LoadBalancers {
			arn := aws.ToString(lb.LoadBalancerArn)

			namespace, metric := "AWS/ApplicationELB", "RequestCount"
			if lb.Type != elbtypes.LoadBalancerTypeEnumApplication {
				namespace, metric = "AWS/NetworkELB", "ActiveFlowCount"
			}

			// CloudWatch identifies the LB by the ARN suffix after "loadbalancer/".
			dimension := arn
			if idx := strings.Index(arn, "loadbalancer/"); idx >= 0 {
				dimension = arn[idx+len("loadbalancer/"):]
			}

			hasTraffic, err := s.hasTraffic(ctx, clients.CloudWatch, namespace, metric, []cwtypes.Dimension{
				{Name: aws.String("LoadBalancer"), Value: aws.String(dimension)},
			})
			if err != nil {
				logger.Warn().Err(err).Str("load_balancer", arn).Msg("skipping load balancer without metrics")
				continue
			}
			if hasTraffic {
				continue
			}

			findings = append(findings, domain.HygieneFinding{
				ResourceType:         "LOAD_BALANCER",
				ResourceID:           arn,
				Region:               region,
				EstimatedMonthlyCost: round4(s.settings.Prices.ELBMonth),
				Tags:                 map[string]string{},
				RiskLevel:            domain.RiskMedium,
				RecommendedAction:    "Delete or consolidate idle load balancer",
				Name:                 aws.ToString(lb.LoadBalancerName),
				LBType:               strings.ToUpper(string(lb.Type)),
			})
		}
	}
	return findings, nil
}

func (s *scanner) scanEmptyLogGroups(
	ctx context.Context,
	clients Clients,
	region string,
) ([]domain.HygieneFinding, error) {
	paginator := cloudwatchlogs.NewDescribeLogGroupsPaginator(
		clients.Logs,
		&cloudwatchlogs.DescribeLogGroupsInput{},
	)

	var findings []domain.HygieneFinding
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe log groups in %s: %w", region, err)
		}
		for _, group := range page.LogGroups {
			if aws.ToInt64(group.StoredBytes) != 0 {
				continue
			}
			// Empty groups cost effectively nothing; keep the entry for hygiene.
			findings = append(findings, domain.HygieneFinding{
				ResourceType:      "CLOUDWATCH_LOG_GROUP",
				ResourceID:        aws.ToString(group.LogGroupName),
				Region:            region,
				Tags:              map[string]string{},
				RiskLevel:         domain.RiskLow,
				RecommendedAction: "Delete unused empty log group",
			})
		}
	}
	return findings, nil
}

func (s *scanner) hasTraffic(
	ctx context.Context,
	cw CloudWatchAPI,
	namespace, metric string,
	dimensions []cwtypes.Dimension,
) (bool, error) {
	end := s.settings.Now().UTC()
	start := end.Add(-s.settings.MetricWindow)

	out, err := cw.GetMetricStatistics(ctx, &cloudwatch.GetMetricStatisticsInput{
		Namespace:  aws.String(namespace),
		MetricName: aws.String(metric),
		Dimensions: dimensions,
		StartTime:  aws.Time(start),
		EndTime:    aws.Time(end),
		Period:     aws.Int32(3600),
		Statistics: []cwtypes.Statistic{cwtypes.StatisticSum},
	})
	if err != nil {
		return false, fmt.Errorf("failed to get %s/%s statistics: %w", namespace, metric, err)
	}
	for _, datapoint := range out.Datapoints {
		if aws.ToFloat64(datapoint.Sum) > 0 {
			return true, nil
		}
	}
	return false, nil
}

func (s *scanner) ageDays(created *time.Time) *int {
	if created == nil {
		return nil
	}
	days := int(s.settings.Now().UTC().Sub(*created).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}

func tagMap(tags []ec2types.Tag) map[string]string {
	out := make(map[string]string, len(tags))
	for _, tag := range tags {
		out[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
	}
	return out
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
