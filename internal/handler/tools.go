package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/estimmo/estimmo/internal/models"
	"github.com/estimmo/estimmo/internal/tools"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// ToolsHandler serves tool discovery and invocation for a remote runtime
type ToolsHandler struct {
	registry []tools.Tool
}

func NewToolsHandler(registry []tools.Tool) *ToolsHandler {
	return &ToolsHandler{registry: registry}
}

// List handles GET /api/v1/tools
func (h *ToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	infos := make([]models.ToolInfo, len(h.registry))
	for i, t := range h.registry {
		infos[i] = models.ToolInfo{
			Name:        t.Name,
			Description: t.Description,
			InputSchema: t.InputSchema,
		}
	}
	models.WriteJSON(w, http.StatusOK, models.ToolListResponse{Tools: infos})
}

// Call handles POST /api/v1/tools/{tool_name}. The request body is the
// arguments object; an empty body means no arguments. A known tool always
// answers 200 — failures of the underlying call are reported inside the
// result object, so the calling runtime never has to special-case transport
// problems of the tool itself.
func (h *ToolsHandler) Call(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "tool_name")

	var tool *tools.Tool
	for i := range h.registry {
		if h.registry[i].Name == name {
			tool = &h.registry[i]
			break
		}
	}
	if tool == nil {
		models.WriteError(w, http.StatusNotFound, "unknown tool: "+name)
		return
	}

	args := map[string]interface{}{}
	if err := json.NewDecoder(r.Body).Decode(&args); err != nil && !errors.Is(err, io.EOF) {
		models.WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := tool.Execute(r.Context(), args)
	if err != nil {
		log.Error().Err(err).Str("tool", name).Msg("tool execution failed")
		models.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	models.WriteJSON(w, http.StatusOK, models.ToolCallResponse{
		Status: "ok",
		Tool:   name,
		Result: json.RawMessage(result),
	})
}
