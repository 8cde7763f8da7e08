package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("REPORT_RECIPIENTS", "ops@example.com, finops@example.com ,")
	t.Setenv("SES_FROM_EMAIL", " reports@example.com ")
	t.Setenv("AGENT_ID", "AGENT123")
	t.Setenv("ENVIRONMENT_NAME", "production")

	config, settings := ConfigFromEnv()

	assert.Equal(t, []string{"ops@example.com", "finops@example.com"}, config.Recipients)
	assert.Equal(t, "reports@example.com", config.FromEmail)
	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, "AGENT123", settings.AgentID)
	assert.Equal(t, "TSTALIASID", settings.AgentAliasID)
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	config, settings := ConfigFromEnv()

	assert.Empty(t, config.Recipients)
	assert.Equal(t, "sandbox", config.Environment)
	assert.Equal(t, "TSTALIASID", settings.AgentAliasID)
}
