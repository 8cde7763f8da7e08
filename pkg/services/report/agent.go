package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime"
	"github.com/aws/aws-sdk-go-v2/service/bedrockagentruntime/types"
	"github.com/google/uuid"
)

// AgentAPI is the subset of the Bedrock agent runtime client the generator
// depends on.
type AgentAPI interface {
	InvokeAgent(
		ctx context.Context,
		params *bedrockagentruntime.InvokeAgentInput,
		optFns ...func(*bedrockagentruntime.Options),
	) (*bedrockagentruntime.InvokeAgentOutput, error)
}

// AgentGenerator asks the Bedrock supervisor agent for a report and drains
// its completion stream into one string. Every call uses a fresh session.
type AgentGenerator struct {
	client       AgentAPI
	agentID      string
	agentAliasID string
}

func NewAgentGenerator(client AgentAPI, agentID, agentAliasID string) *AgentGenerator {
	if agentAliasID == "" {
		agentAliasID = "TSTALIASID"
	}
	return &AgentGenerator{
		client:       client,
		agentID:      agentID,
		agentAliasID: agentAliasID,
	}
}

func (g *AgentGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := g.client.InvokeAgent(ctx, &bedrockagentruntime.InvokeAgentInput{
		AgentId:      aws.String(g.agentID),
		AgentAliasId: aws.String(g.agentAliasID),
		SessionId:    aws.String(uuid.NewString()),
		InputText:    aws.String(prompt),
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke agent %s: %w", g.agentID, err)
	}

	stream := out.GetStream()
	defer stream.Close()

	var completion strings.Builder
	for event := range stream.Events() {
		if chunk, ok := event.(*types.ResponseStreamMemberChunk); ok {
			completion.Write(chunk.Value.Bytes)
		}
	}
	if err := stream.Err(); err != nil {
		return "", fmt.Errorf("failed to read agent completion stream: %w", err)
	}
	return completion.String(), nil
}
