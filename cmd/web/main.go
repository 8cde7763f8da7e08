package main

import (
	"fmt"
	"net"
	"os"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/de-tools/cloud-report/pkg/server"
	"github.com/de-tools/cloud-report/pkg/services/advisor"
	"github.com/de-tools/cloud-report/pkg/services/hygiene"
	"github.com/de-tools/cloud-report/pkg/services/provider"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "web",
		Short: "Start the local agent-runtime harness for cloud-report",
		RunE:  runServer,
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(cmd.Context())

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	explorer := advisor.NewExplorer(advisor.NewClient(cfg))
	scanner := hygiene.NewScanner(hygiene.NewClientFactory(cfg), hygiene.Settings{
		DefaultRegion: cfg.Region,
	})
	registry, err := provider.NewRegistry(
		provider.NewCostRecommendations(explorer),
		provider.NewSecurityRecommendations(explorer),
		provider.NewResourceList(explorer),
		provider.NewHygieneScan(scanner),
	)
	if err != nil {
		return fmt.Errorf("failed to build provider registry: %w", err)
	}

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")
	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			Registry: registry,
		},
	})
	return api.Start()
}
