package report

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/rs/zerolog"
)

// Type is the report cadence.
type Type string

const (
	TypeDaily  Type = "daily"
	TypeWeekly Type = "weekly"
)

// Generator produces the report text for a prompt. Backed by the Bedrock
// supervisor agent in production.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Mailer delivers the rendered report.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type Email struct {
	From       string
	Recipients []string
	Subject    string
	BodyHTML   string
}

type Config struct {
	Recipients  []string
	FromEmail   string
	Environment string
}

// Result is the orchestrator's invocation response.
type Result struct {
	Status         string `json:"status"`
	Reason         string `json:"reason,omitempty"`
	ReportType     string `json:"reportType,omitempty"`
	RecipientCount int    `json:"recipientCount,omitempty"`
}

// Orchestrator generates a scheduled cloud report through the supervisor
// agent and emails it to the configured recipients.
type Orchestrator struct {
	config    Config
	generator Generator
	mailer    Mailer
}

func NewOrchestrator(config Config, generator Generator, mailer Mailer) *Orchestrator {
	return &Orchestrator{
		config:    config,
		generator: generator,
		mailer:    mailer,
	}
}

func (o *Orchestrator) Run(ctx context.Context, reportType Type) (Result, error) {
	logger := zerolog.Ctx(ctx)

	if len(o.config.Recipients) == 0 || o.config.FromEmail == "" {
		logger.Warn().Msg("report recipients or sender address not configured, skipping report")
		return Result{Status: "skipped", Reason: "missing_config"}, nil
	}

	if reportType != TypeDaily && reportType != TypeWeekly {
		reportType = TypeDaily
	}

	content, err := o.generator.Generate(ctx, prompt(reportType))
	if err != nil {
		return Result{}, fmt.Errorf("failed to generate %s report: %w", reportType, err)
	}
	if strings.TrimSpace(content) == "" {
		content = "(No report content generated.)"
	}

	environment := o.config.Environment
	if environment == "" {
		environment = "sandbox"
	}

	email := Email{
		From:       o.config.FromEmail,
		Recipients: o.config.Recipients,
		Subject:    fmt.Sprintf("[%s] AWS Cloud Report - %s", environment, title(reportType)),
		BodyHTML:   renderHTML(content),
	}
	if err := o.mailer.Send(ctx, email); err != nil {
		return Result{}, fmt.Errorf("failed to send %s report: %w", reportType, err)
	}

	logger.Info().
		Str("report_type", string(reportType)).
		Int("recipients", len(o.config.Recipients)).
		Msg("report sent")

	return Result{
		Status:         "sent",
		ReportType:     string(reportType),
		RecipientCount: len(o.config.Recipients),
	}, nil
}

// ParseType reads the reportType out of an EventBridge detail document. The
// detail may arrive as an object or as a JSON-encoded string of one; anything
// malformed or unknown falls back to the daily report.
func ParseType(detail []byte) Type {
	var payload struct {
		ReportType string `json:"reportType"`
	}
	if err := json.Unmarshal(detail, &payload); err != nil {
		var encoded string
		if err := json.Unmarshal(detail, &encoded); err != nil {
			return TypeDaily
		}
		if err := json.Unmarshal([]byte(encoded), &payload); err != nil {
			return TypeDaily
		}
	}

	switch Type(payload.ReportType) {
	case TypeDaily, TypeWeekly:
		return Type(payload.ReportType)
	default:
		return TypeDaily
	}
}

func prompt(reportType Type) string {
	return fmt.Sprintf(
		"Generate a %s cloud report for this AWS account. Include: "+
			"1) Cost optimization opportunities (use CostOptimizationAgent). "+
			"2) Security issues from Trusted Advisor (use SecurityAgent). "+
			"3) Hygiene findings - unused EBS, snapshots, EIPs, idle NAT/ALB, empty log groups (use HygieneAgent). "+
			"Format as clear sections with bullet points. "+
			"Do not include internal reasoning; output only the final report.",
		reportType,
	)
}

func title(reportType Type) string {
	return strings.ToUpper(string(reportType)[:1]) + string(reportType)[1:]
}

func renderHTML(content string) string {
	return fmt.Sprintf(
		"<html><body><pre style='white-space:pre-wrap;font-family:sans-serif;'>%s</pre></body></html>",
		html.EscapeString(content),
	)
}
