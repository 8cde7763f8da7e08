package agent

import (
	"encoding/json"
	"fmt"
)

const (
	// MessageVersion is the protocol version expected by the agent runtime.
	MessageVersion = "1.0"

	// StateReprompt tells the calling agent to retry or reformulate its
	// request instead of treating the response as final.
	StateReprompt = "REPROMPT"
)

// Envelope is the fixed response contract toward the agent runtime. It is
// built exactly once per invocation, on both the success and error paths.
type Envelope struct {
	MessageVersion string   `json:"messageVersion"`
	Response       Response `json:"response"`
}

type Response struct {
	ActionGroup      string           `json:"actionGroup"`
	Function         string           `json:"function"`
	ResponseState    string           `json:"responseState,omitempty"`
	FunctionResponse FunctionResponse `json:"functionResponse"`
}

type FunctionResponse struct {
	ResponseBody ResponseBody `json:"responseBody"`
}

type ResponseBody struct {
	Text TextBody `json:"TEXT"`
}

type TextBody struct {
	Body string `json:"body"`
}

// NewResult wraps a payload into a success envelope. The actionGroup and
// function of the inbound event are echoed verbatim so the caller can
// correlate the response.
func NewResult(event Event, payload any) (Envelope, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("failed to encode payload: %w", err)
	}
	return newEnvelope(event, string(body), ""), nil
}

// NewError wraps an error into a REPROMPT envelope with the same identity
// echo as the success path.
func NewError(event Event, cause error) Envelope {
	body, _ := json.Marshal(map[string]string{"error": cause.Error()})
	return newEnvelope(event, string(body), StateReprompt)
}

func newEnvelope(event Event, body, state string) Envelope {
	return Envelope{
		MessageVersion: MessageVersion,
		Response: Response{
			ActionGroup:   event.ActionGroup,
			Function:      event.Function,
			ResponseState: state,
			FunctionResponse: FunctionResponse{
				ResponseBody: ResponseBody{
					Text: TextBody{Body: body},
				},
			},
		},
	}
}
