package models

// MaxPromptLength bounds agent prompts; longer prompts are rejected up front
// rather than passed to the model.
const MaxPromptLength = 2000

// AgentRequest for POST /api/v1/agent
type AgentRequest struct {
	Prompt  string `json:"prompt"`
	Timeout int    `json:"timeout"` // seconds
}

func (r *AgentRequest) SetDefaults() {
	if r.Timeout == 0 {
		r.Timeout = 300
	}
	if r.Timeout < 10 {
		r.Timeout = 10
	}
	if r.Timeout > 600 {
		r.Timeout = 600
	}
}
