package provider

import (
	"context"
	"testing"

	"github.com/de-tools/cloud-report/pkg/models/agent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(name string) *Provider {
	return New(name, func(ctx context.Context, _ agent.Event) (any, error) {
		return map[string]string{}, nil
	})
}

func TestRegistry_RejectsDuplicateFunction(t *testing.T) {
	registry, err := NewRegistry(noop("run_scan"))
	require.NoError(t, err)

	err = registry.Register(noop("run_scan"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_GetUnknownFunction(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)

	_, err = registry.Get("missing")
	require.Error(t, err)
}

func TestRegistry_ListsFunctions(t *testing.T) {
	registry, err := NewRegistry(noop("a"), noop("b"))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"a", "b"}, registry.Functions())

	p, err := registry.Get("a")
	require.NoError(t, err)
	assert.Equal(t, "a", p.Function())
}
