package agent

// Event is the invocation payload a Bedrock agent action group sends to a
// provider function.
type Event struct {
	ActionGroup string      `json:"actionGroup"`
	Function    string      `json:"function"`
	Parameters  []Parameter `json:"parameters"`
}

type Parameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Parameter returns the value of the named parameter and whether it was
// present on the event.
func (e Event) Parameter(name string) (string, bool) {
	for _, p := range e.Parameters {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}
