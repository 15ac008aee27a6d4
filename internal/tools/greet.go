package tools

import (
	"context"
	"encoding/json"
	"fmt"
)

// Greeting formats the canonical greeting for a name. The exact punctuation
// is part of the tool contract and must not change.
func Greeting(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// GreetTool returns a greeting for the given name
func GreetTool() Tool {
	return Tool{
		Name:        "greet",
		Description: "Greet a person by name.",
		InputSchema: map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the person to greet",
				},
			},
			"required": []string{"name"},
		},
		Execute: func(ctx context.Context, input map[string]interface{}) (string, error) {
			name, _ := input["name"].(string)
			b, err := json.Marshal(Greeting(name))
			if err != nil {
				return "", fmt.Errorf("marshal greeting: %w", err)
			}
			return string(b), nil
		},
	}
}
