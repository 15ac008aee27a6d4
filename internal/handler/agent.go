package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/estimmo/estimmo/internal/agent"
	"github.com/estimmo/estimmo/internal/models"
	"github.com/estimmo/estimmo/internal/tools"
	"golang.org/x/sync/singleflight"
)

// AgentHandler handles POST /api/v1/agent
type AgentHandler struct {
	agent    *agent.Agent
	registry []tools.Tool
	sf       singleflight.Group // collapse concurrent identical prompts into one run
}

func NewAgentHandler(a *agent.Agent, registry []tools.Tool) *AgentHandler {
	return &AgentHandler{agent: a, registry: registry}
}

type agentRun struct {
	answer    string
	toolsUsed []string
}

// Query handles POST /api/v1/agent
func (h *AgentHandler) Query(w http.ResponseWriter, r *http.Request) {
	if h.agent == nil {
		models.WriteError(w, http.StatusServiceUnavailable, "agent is not configured")
		return
	}

	var req models.AgentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		models.WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	req.SetDefaults()

	if req.Prompt == "" {
		models.WriteError(w, http.StatusBadRequest, "prompt is required")
		return
	}
	if len(req.Prompt) > models.MaxPromptLength {
		models.WriteError(w, http.StatusBadRequest, "prompt exceeds maximum length")
		return
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(req.Timeout)*time.Second)
	defer cancel()

	v, err, shared := h.sf.Do(req.Prompt, func() (interface{}, error) {
		answer, used, err := h.agent.Run(ctx, req.Prompt, h.registry)
		if err != nil {
			return nil, err
		}
		return agentRun{answer: answer, toolsUsed: used}, nil
	})
	if err != nil {
		models.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	run := v.(agentRun)
	toolsUsed := run.toolsUsed
	if toolsUsed == nil {
		toolsUsed = []string{}
	}

	models.WriteJSON(w, http.StatusOK, models.AgentResponse{
		Status:    "ok",
		Prompt:    req.Prompt,
		Answer:    run.answer,
		ToolsUsed: toolsUsed,
		AgentMetadata: map[string]interface{}{
			"model":       h.agent.Model(),
			"duration_ms": time.Since(start).Milliseconds(),
			"shared":      shared,
		},
	})
}
