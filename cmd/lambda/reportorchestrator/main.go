package main

import (
	"context"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/de-tools/cloud-report/pkg/services/report"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load AWS config")
	}

	reportConfig, agentSettings := report.ConfigFromEnv()
	orchestrator := report.NewOrchestrator(
		reportConfig,
		report.NewAgentGenerator(
			bedrockagentruntime.NewFromConfig(cfg),
			agentSettings.AgentID,
			agentSettings.AgentAliasID,
		),
		report.NewSESMailer(sesv2.NewFromConfig(cfg)),
	)

	lambda.Start(func(ctx context.Context, event events.CloudWatchEvent) (report.Result, error) {
		return orchestrator.Run(logger.WithContext(ctx), report.ParseType(event.Detail))
	})
}
