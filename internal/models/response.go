package models

import "encoding/json"

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// ToolInfo describes one registered tool for discovery
type ToolInfo struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema"`
}

// ToolListResponse is returned by GET /api/v1/tools
type ToolListResponse struct {
	Tools []ToolInfo `json:"tools"`
}

// ToolCallResponse is returned by POST /api/v1/tools/{tool_name}. Result is
// the tool's own JSON output, embedded verbatim.
type ToolCallResponse struct {
	Status string          `json:"status"`
	Tool   string          `json:"tool"`
	Result json.RawMessage `json:"result"`
}

// AgentResponse is returned by POST /api/v1/agent
type AgentResponse struct {
	Status        string                 `json:"status"`
	Prompt        string                 `json:"prompt"`
	Answer        string                 `json:"answer"`
	ToolsUsed     []string               `json:"tools_used"`
	AgentMetadata map[string]interface{} `json:"agent_metadata"`
}
