package hygiene

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
)

// EC2API covers the EC2 calls the scanner issues.
type EC2API interface {
	ec2.DescribeVolumesAPIClient
	ec2.DescribeSnapshotsAPIClient
	DescribeAddresses(
		ctx context.Context,
		params *ec2.DescribeAddressesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeAddressesOutput, error)
	DescribeNatGateways(
		ctx context.Context,
		params *ec2.DescribeNatGatewaysInput,
		optFns ...func(*ec2.Options),
	) (*ec2.DescribeNatGatewaysOutput, error)
}

type ELBAPI interface {
	elasticloadbalancingv2.DescribeLoadBalancersAPIClient
}

type LogsAPI interface {
	cloudwatchlogs.DescribeLogGroupsAPIClient
}

type CloudWatchAPI interface {
	GetMetricStatistics(
		ctx context.Context,
		params *cloudwatch.GetMetricStatisticsInput,
		optFns ...func(*cloudwatch.Options),
	) (*cloudwatch.GetMetricStatisticsOutput, error)
}

// Clients bundles the per-region AWS clients one scan pass works with.
type Clients struct {
	EC2        EC2API
	ELB        ELBAPI
	Logs       LogsAPI
	CloudWatch CloudWatchAPI
}

// ClientFactory builds the client bundle for one region.
type ClientFactory func(region string) Clients

// NewClientFactory derives per-region clients from one shared config.
func NewClientFactory(cfg aws.Config) ClientFactory {
	return func(region string) Clients {
		return Clients{
			EC2: ec2.NewFromConfig(cfg, func(o *ec2.Options) {
				o.Region = region
			}),
			ELB: elasticloadbalancingv2.NewFromConfig(cfg, func(o *elasticloadbalancingv2.Options) {
				o.Region = region
			}),
			Logs: cloudwatchlogs.NewFromConfig(cfg, func(o *cloudwatchlogs.Options) {
				o.Region = region
			}),
			CloudWatch: cloudwatch.NewFromConfig(cfg, func(o *cloudwatch.Options) {
				o.Region = region
			}),
		}
	}
}
