package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/estimmo/estimmo/internal/agent"
	"github.com/estimmo/estimmo/internal/estimate"
	"github.com/estimmo/estimmo/internal/handler"
	"github.com/estimmo/estimmo/internal/models"
	"github.com/estimmo/estimmo/internal/tools"
	"github.com/go-chi/chi/v5"
)

func testRegistry(upstreamURL string) []tools.Tool {
	client := estimate.NewClient(upstreamURL, 2*time.Second, func() estimate.Credentials {
		return estimate.Credentials{}
	})
	return []tools.Tool{tools.GreetTool(), tools.EstimateTool(client)}
}

func toolsRouter(registry []tools.Tool) http.Handler {
	h := handler.NewToolsHandler(registry)
	r := chi.NewRouter()
	r.Get("/api/v1/tools", h.List)
	r.Post("/api/v1/tools/{tool_name}", h.Call)
	return r
}

// ─── Tool discovery ───────────────────────────────────────────────────────────

func TestToolsList(t *testing.T) {
	r := toolsRouter(testRegistry("http://127.0.0.1:1"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tools", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp models.ToolListResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Tools) != 2 {
		t.Fatalf("listed %d tools, want 2", len(resp.Tools))
	}

	names := map[string]bool{}
	for _, ti := range resp.Tools {
		names[ti.Name] = true
		if ti.InputSchema == nil {
			t.Errorf("tool %q has no input schema", ti.Name)
		}
	}
	if !names["greet"] || !names["estimate_real_estate_investment"] {
		t.Errorf("tool names = %v, want greet and estimate_real_estate_investment", names)
	}
}

// ─── Tool invocation ──────────────────────────────────────────────────────────

func TestToolCallGreet(t *testing.T) {
	r := toolsRouter(testRegistry("http://127.0.0.1:1"))

	body := strings.NewReader(`{"name": "World"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/greet", body)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rr.Code, rr.Body.String())
	}

	var resp models.ToolCallResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Tool != "greet" {
		t.Errorf("tool = %q, want greet", resp.Tool)
	}

	var greeting string
	if err := json.Unmarshal(resp.Result, &greeting); err != nil {
		t.Fatalf("result is not a JSON string: %v", err)
	}
	if greeting != "Hello, World!" {
		t.Errorf("greeting = %q, want %q", greeting, "Hello, World!")
	}
}

func TestToolCallEmptyBody(t *testing.T) {
	r := toolsRouter(testRegistry("http://127.0.0.1:1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/greet", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("an empty body means no arguments, got status %d", rr.Code)
	}
}

func TestToolCallUnknownTool(t *testing.T) {
	r := toolsRouter(testRegistry("http://127.0.0.1:1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/nonexistent", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestToolCallInvalidBody(t *testing.T) {
	r := toolsRouter(testRegistry("http://127.0.0.1:1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/greet", strings.NewReader(`{not json`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rr.Code)
	}
}

func TestToolCallEstimateReturns200OnUpstreamFailure(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer upstream.Close()

	r := toolsRouter(testRegistry(upstream.URL))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tools/estimate_real_estate_investment", strings.NewReader(`{}`))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with an in-band error", rr.Code)
	}

	var resp models.ToolCallResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	var result map[string]interface{}
	if err := json.Unmarshal(resp.Result, &result); err != nil {
		t.Fatalf("result is not a JSON object: %v", err)
	}
	if !strings.Contains(result["error"].(string), "HTTP error occurred") {
		t.Errorf("error = %v, want an HTTP error message", result["error"])
	}
	if result["status_code"].(float64) != 500 {
		t.Errorf("status_code = %v, want 500", result["status_code"])
	}
}

// ─── Health ───────────────────────────────────────────────────────────────────

type stubPinger struct {
	err error
}

func (s stubPinger) Ping(ctx context.Context) error { return s.err }

func TestHealthUpstreamOK(t *testing.T) {
	h := handler.NewHealthHandler(stubPinger{}, false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.Health(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var resp models.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "healthy" {
		t.Errorf("status = %q, want healthy", resp.Status)
	}
	if resp.Checks["estimate_api"] != "ok" {
		t.Errorf("estimate_api check = %q, want ok", resp.Checks["estimate_api"])
	}
	if resp.Checks["agent"] != "disabled" {
		t.Errorf("agent check = %q, want disabled", resp.Checks["agent"])
	}
}

func TestHealthUpstreamDown(t *testing.T) {
	h := handler.NewHealthHandler(stubPinger{err: errors.New("connection refused")}, true)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	h.Health(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}

	var resp models.HealthResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "degraded" {
		t.Errorf("status = %q, want degraded", resp.Status)
	}
	if resp.Checks["agent"] != "ok" {
		t.Errorf("agent check = %q, want ok", resp.Checks["agent"])
	}
}

// ─── Agent ────────────────────────────────────────────────────────────────────

func TestAgentNotConfigured(t *testing.T) {
	h := handler.NewAgentHandler(nil, testRegistry("http://127.0.0.1:1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/agent", strings.NewReader(`{"prompt": "hello"}`))
	rr := httptest.NewRecorder()
	h.Query(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503 when no agent is configured", rr.Code)
	}
}

func TestAgentPromptRequired(t *testing.T) {
	h := handler.NewAgentHandler(agent.New("test-key", "", ""), testRegistry("http://127.0.0.1:1"))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/agent", strings.NewReader(`{"prompt": ""}`))
	rr := httptest.NewRecorder()
	h.Query(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for an empty prompt", rr.Code)
	}
}

func TestAgentPromptTooLong(t *testing.T) {
	h := handler.NewAgentHandler(agent.New("test-key", "", ""), testRegistry("http://127.0.0.1:1"))

	long := strings.Repeat("a", models.MaxPromptLength+1)
	body := strings.NewReader(`{"prompt": "` + long + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/agent", body)
	rr := httptest.NewRecorder()
	h.Query(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for an oversized prompt", rr.Code)
	}
}
