package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type ToolName string

const (
	ToolSearchInternet ToolName = "search_internet"
	ToolGoogleTrends   ToolName = "google_trends"
	ToolHuman          ToolName = "human"
)

func (t ToolName) String() string {
	return string(t)
}

var ErrEmptyToolInput = errors.New("tool input is empty")

// ToolArgument describes the single string parameter every tool accepts.
type ToolArgument struct {
	Name        string
	Description string
}

// Schema returns the JSON schema advertised to the model for this argument.
func (a ToolArgument) Schema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			a.Name: map[string]interface{}{
				"type":        "string",
				"description": a.Description,
			},
		},
		"required": []string{a.Name},
	}
}

// Extract pulls the tool input out of the raw function-call arguments.
// Models usually send a JSON object keyed by the argument name; some send the
// bare text, which is returned as is.
func (a ToolArgument) Extract(arguments string) (string, error) {
	raw := strings.TrimSpace(arguments)
	if raw == "" {
		return "", ErrEmptyToolInput
	}
	if !strings.HasPrefix(raw, "{") {
		return raw, nil
	}

	var args map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return "", fmt.Errorf("invalid JSON arguments: %w", err)
	}

	if v, ok := args[a.Name].(string); ok {
		return requireText(v)
	}

	var only string
	found := 0
	for _, v := range args {
		if s, ok := v.(string); ok {
			only = s
			found++
		}
	}
	if found == 1 {
		return requireText(only)
	}

	return "", fmt.Errorf("missing string argument %q", a.Name)
}

func requireText(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", ErrEmptyToolInput
	}
	return s, nil
}
