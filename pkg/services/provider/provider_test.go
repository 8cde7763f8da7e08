package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/de-tools/cloud-report/pkg/agentio"
	"github.com/de-tools/cloud-report/pkg/models/agent"
	"github.com/de-tools/cloud-report/pkg/models/api"
	"github.com/de-tools/cloud-report/pkg/models/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

type mockExplorer struct{ mock.Mock }

func (m *mockExplorer) ListFindings(ctx context.Context, pillar domain.Pillar) ([]domain.Finding, error) {
	args := m.Called(ctx, pillar)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Finding), args.Error(1)
}

func (m *mockExplorer) ListResources(ctx context.Context, recommendationID string) ([]domain.Resource, error) {
	args := m.Called(ctx, recommendationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resource), args.Error(1)
}

func invoke(t *testing.T, p *Provider, event agent.Event) agent.Envelope {
	t.Helper()
	raw, err := p.HandleInvocation(context.Background(), event)
	require.NoError(t, err)

	var envelope agent.Envelope
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, agent.MessageVersion, envelope.MessageVersion)
	return envelope
}

func decodeBody(t *testing.T, envelope agent.Envelope, target any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(envelope.Response.FunctionResponse.ResponseBody.Text.Body), target))
}

func costFinding(id string, savings float64) domain.Finding {
	return domain.Finding{
		RecommendationIdentifier: id,
		EstimatedMonthlySavings:  aws.Float64(savings),
	}
}

func TestCostRecommendations_SortsBySavingsDescending(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("ListFindings", mock.Anything, domain.PillarCostOptimizing).Return([]domain.Finding{
		costFinding("r1", 10),
		costFinding("r2", 30),
		costFinding("r3", 30),
		costFinding("r4", 5),
	}, nil)

	envelope := invoke(t, NewCostRecommendations(explorer), agent.Event{})

	var report api.FindingsReport
	decodeBody(t, envelope, &report)

	require.Len(t, report.Findings, 4)
	order := make([]string, 0, 4)
	for _, f := range report.Findings {
		order = append(order, f.RecommendationIdentifier)
	}
	// Equal savings keep their arrival order.
	assert.Equal(t, []string{"r2", "r3", "r1", "r4"}, order)

	assert.Equal(t, 4, report.Summary.TotalFindings)
	require.NotNil(t, report.Summary.TotalEstimatedMonthlySavings)
	assert.Equal(t, 75.0, *report.Summary.TotalEstimatedMonthlySavings)
	assert.Regexp(t, timestampPattern, report.Summary.GeneratedAt)
	explorer.AssertExpectations(t)
}

func TestCostRecommendations_RoundsTotalSavings(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("ListFindings", mock.Anything, domain.PillarCostOptimizing).Return([]domain.Finding{
		costFinding("r1", 10.128),
		costFinding("r2", 0.125),
	}, nil)

	envelope := invoke(t, NewCostRecommendations(explorer), agent.Event{})

	var report api.FindingsReport
	decodeBody(t, envelope, &report)
	require.NotNil(t, report.Summary.TotalEstimatedMonthlySavings)
	assert.Equal(t, 10.25, *report.Summary.TotalEstimatedMonthlySavings)
}

func TestSecurityRecommendations_OmitsSavingsSummary(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("ListFindings", mock.Anything, domain.PillarSecurity).Return([]domain.Finding{
		{RecommendationIdentifier: "r1", CheckName: "MFA on Root Account"},
	}, nil)

	envelope := invoke(t, NewSecurityRecommendations(explorer), agent.Event{})

	body := envelope.Response.FunctionResponse.ResponseBody.Text.Body
	assert.NotContains(t, body, "totalEstimatedMonthlySavings")

	var report api.FindingsReport
	decodeBody(t, envelope, &report)
	assert.Equal(t, 1, report.Summary.TotalFindings)
	assert.Nil(t, report.Summary.TotalEstimatedMonthlySavings)
}

func TestHandle_EchoesIdentityOnSuccessAndError(t *testing.T) {
	event := agent.Event{ActionGroup: "X", Function: "Y"}

	ok := new(mockExplorer)
	ok.On("ListFindings", mock.Anything, domain.PillarSecurity).Return([]domain.Finding{}, nil)
	envelope := invoke(t, NewSecurityRecommendations(ok), event)
	assert.Equal(t, "X", envelope.Response.ActionGroup)
	assert.Equal(t, "Y", envelope.Response.Function)
	assert.Empty(t, envelope.Response.ResponseState)

	broken := new(mockExplorer)
	broken.On("ListFindings", mock.Anything, domain.PillarSecurity).Return(nil, fmt.Errorf("api unavailable"))
	envelope = invoke(t, NewSecurityRecommendations(broken), event)
	assert.Equal(t, "X", envelope.Response.ActionGroup)
	assert.Equal(t, "Y", envelope.Response.Function)
	assert.Equal(t, agent.StateReprompt, envelope.Response.ResponseState)

	var body map[string]string
	decodeBody(t, envelope, &body)
	assert.Contains(t, body["error"], "api unavailable")
}

func TestResourceList_MissingParameterShortCircuits(t *testing.T) {
	explorer := new(mockExplorer)

	envelope := invoke(t, NewResourceList(explorer), agent.Event{
		ActionGroup: "ta",
		Function:    "list_recommendation_resources",
		Parameters:  []agent.Parameter{},
	})

	assert.Equal(t, agent.StateReprompt, envelope.Response.ResponseState)

	var body map[string]string
	decodeBody(t, envelope, &body)
	assert.Contains(t, body["error"], "recommendationIdentifier")
	explorer.AssertNotCalled(t, "ListResources", mock.Anything, mock.Anything)
}

func TestResourceList_ReturnsResources(t *testing.T) {
	explorer := new(mockExplorer)
	explorer.On("ListResources", mock.Anything, "arn:r1").Return([]domain.Resource{
		{ID: "res-1", AwsResourceID: "vol-1", RegionCode: "eu-west-1"},
		{ID: "res-2"},
	}, nil)

	envelope := invoke(t, NewResourceList(explorer), agent.Event{
		Parameters: []agent.Parameter{{Name: "recommendationIdentifier", Value: "arn:r1"}},
	})

	var report api.ResourceListReport
	decodeBody(t, envelope, &report)
	assert.Equal(t, 2, report.Summary.TotalResources)
	assert.Regexp(t, timestampPattern, report.Summary.GeneratedAt)
	require.Len(t, report.Resources, 2)
	assert.Equal(t, "res-1", report.Resources[0].ID)
	assert.NotNil(t, report.Resources[1].Metadata)
	explorer.AssertExpectations(t)
}

func TestHandle_ChunksLargeEnvelope(t *testing.T) {
	big := strings.Repeat("x", 3*agentio.DefaultChunkSize)
	p := New("big", func(ctx context.Context, _ agent.Event) (any, error) {
		return map[string]string{"blob": big}, nil
	})

	sink := &agentio.BufferSink{}
	require.NoError(t, p.Handle(context.Background(), agent.Event{}, sink))

	assert.Greater(t, len(sink.Chunks()), 1)
	for _, chunk := range sink.Chunks() {
		assert.LessOrEqual(t, len(chunk), agentio.DefaultChunkSize)
	}

	var envelope agent.Envelope
	require.NoError(t, json.Unmarshal(sink.Bytes(), &envelope))
	assert.True(t, sink.Closed())
}
