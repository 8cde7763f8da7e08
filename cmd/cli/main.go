package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/de-tools/cloud-report/pkg/models/agent"
	"github.com/de-tools/cloud-report/pkg/services/advisor"
	"github.com/de-tools/cloud-report/pkg/services/hygiene"
	"github.com/de-tools/cloud-report/pkg/services/provider"
	"github.com/de-tools/cloud-report/pkg/services/report"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	actionGroup string
	eventParams []string
	reportType  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cloud-report",
		Short: "Run the cloud report provider functions locally",
	}

	invokeCmd := &cobra.Command{
		Use:   "invoke <function>",
		Short: "Invoke a provider function with an agent action-group event",
		Args:  cobra.ExactArgs(1),
		RunE:  runInvoke,
	}
	invokeCmd.Flags().StringVarP(&actionGroup, "action-group", "g", "",
		"actionGroup echoed in the response envelope")
	invokeCmd.Flags().StringArrayVarP(&eventParams, "param", "p", nil,
		"event parameter as name=value (repeatable)")

	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Generate and send the cloud report",
		RunE:  runReport,
	}
	reportCmd.Flags().StringVar(&reportType, "type", "daily", "report type: daily or weekly")

	rootCmd.AddCommand(invokeCmd, reportCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runInvoke(cmd *cobra.Command, args []string) error {
	ctx, cfg, err := setup(cmd.Context())
	if err != nil {
		return err
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

	p, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	event := agent.Event{ActionGroup: actionGroup, Function: args[0]}
	for _, raw := range eventParams {
		name, value, ok := strings.Cut(raw, "=")
		if !ok {
			return fmt.Errorf("invalid parameter %q, expected name=value", raw)
		}
		event.Parameters = append(event.Parameters, agent.Parameter{Name: name, Value: value})
	}

	envelope, err := p.HandleInvocation(ctx, event)
	if err != nil {
		return err
	}
	fmt.Println(string(envelope))
	return nil
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx, cfg, err := setup(cmd.Context())
	if err != nil {
		return err
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

	result, err := orchestrator.Run(ctx, report.Type(reportType))
	if err != nil {
		return err
	}
	fmt.Printf("%s (%s, %d recipients)\n", result.Status, result.ReportType, result.RecipientCount)
	return nil
}

func setup(ctx context.Context) (context.Context, aws.Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	ctx = logger.WithContext(ctx)

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return ctx, cfg, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return ctx, cfg, nil
}
