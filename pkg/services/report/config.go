package report

import (
	"strings"

	"github.com/spf13/viper"
)

// AgentSettings identify the supervisor agent invoked for report generation.
type AgentSettings struct {
	AgentID      string
	AgentAliasID string
}

// ConfigFromEnv reads the orchestrator configuration from the environment.
func ConfigFromEnv() (Config, AgentSettings) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("AGENT_ALIAS_ID", "TSTALIASID")
	v.SetDefault("ENVIRONMENT_NAME", "sandbox")

	var recipients []string
	for _, recipient := range strings.Split(v.GetString("REPORT_RECIPIENTS"), ",") {
		if recipient = strings.TrimSpace(recipient); recipient != "" {
			recipients = append(recipients, recipient)
		}
	}

	config := Config{
		Recipients:  recipients,
		FromEmail:   strings.TrimSpace(v.GetString("SES_FROM_EMAIL")),
		Environment: v.GetString("ENVIRONMENT_NAME"),
	}
	settings := AgentSettings{
		AgentID:      v.GetString("AGENT_ID"),
		AgentAliasID: v.GetString("AGENT_ALIAS_ID"),
	}
	return config, settings
}
