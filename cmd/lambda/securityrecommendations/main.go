package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/de-tools/cloud-report/pkg/models/agent"
	"github.com/de-tools/cloud-report/pkg/services/advisor"
	"github.com/de-tools/cloud-report/pkg/services/provider"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load AWS config")
	}

	p := provider.NewSecurityRecommendations(advisor.NewExplorer(advisor.NewClient(cfg)))

	lambda.Start(func(ctx context.Context, event agent.Event) (json.RawMessage, error) {
		return p.HandleInvocation(logger.WithContext(ctx), event)
	})
}
