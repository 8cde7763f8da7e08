package provider

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/de-tools/cloud-report/pkg/agentio"
	"github.com/de-tools/cloud-report/pkg/models/agent"
	"github.com/rs/zerolog"
)

// timestampLayout is the report timestamp format: UTC, second precision,
// no timezone suffix.
const timestampLayout = "2006-01-02 15:04:05"

// RunFunc produces the payload of one invocation. Returning an error turns
// the whole invocation into a REPROMPT envelope.
type RunFunc func(ctx context.Context, event agent.Event) (any, error)

// Provider handles one agent action-group invocation end to end: run the
// variant pipeline, wrap the result into a response envelope, and stream the
// envelope to the sink in fixed-size chunks.
type Provider struct {
	function  string
	run       RunFunc
	chunkSize int
}

func New(function string, run RunFunc) *Provider {
	return &Provider{
		function:  function,
		run:       run,
		chunkSize: agentio.DefaultChunkSize,
	}
}

func (p *Provider) Function() string {
	return p.function
}

// Handle streams the envelope for one invocation to the sink. Pipeline
// failures are not returned to the runtime: they degrade to the REPROMPT
// envelope so the calling agent can retry or reformulate.
func (p *Provider) Handle(ctx context.Context, event agent.Event, sink agentio.Sink) error {
	envelope := p.invoke(ctx, event)
	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("failed to encode response envelope: %w", err)
	}
	return agentio.WriteChunked(sink, data, p.chunkSize)
}

// HandleInvocation runs Handle against an in-memory sink and returns the raw
// envelope bytes, for runtimes that consume the response as a return value.
func (p *Provider) HandleInvocation(ctx context.Context, event agent.Event) (json.RawMessage, error) {
	var sink agentio.BufferSink
	if err := p.Handle(ctx, event, &sink); err != nil {
		return nil, err
	}
	return sink.Bytes(), nil
}

func (p *Provider) invoke(ctx context.Context, event agent.Event) agent.Envelope {
	payload, err := p.run(ctx, event)
	if err != nil {
		zerolog.Ctx(ctx).Error().
			Err(err).
			Str("function", p.function).
			Msg("invocation failed")
		return agent.NewError(event, err)
	}

	envelope, err := agent.NewResult(event, payload)
	if err != nil {
		return agent.NewError(event, err)
	}
	return envelope
}
