package estimate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const estimatePath = "/api/estimate"

// Client issues estimation calls against the estimateur-immo API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	creds      CredentialsProvider
}

// NewClient builds a client for the given upstream base URL. The timeout
// bounds the whole request/response cycle; on expiry the call surfaces as a
// TransportError. A nil creds provider reads the process environment.
func NewClient(baseURL string, timeout time.Duration, creds CredentialsProvider) *Client {
	if creds == nil {
		creds = CredentialsFromEnv
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		creds:      creds,
	}
}

// Estimate POSTs the request payload and returns one of the Result variants.
// It never returns a Go error: every failure mode is folded into the result
// so the tool call always hands a well-formed object to its runtime.
func (c *Client) Estimate(ctx context.Context, req Request) Result {
	base := c.baseURL
	if req.APIBaseURL != "" {
		base = strings.TrimRight(req.APIBaseURL, "/")
	}

	body, err := json.Marshal(req.payload())
	if err != nil {
		return CallError{Message: err.Error()}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, base+estimatePath, bytes.NewReader(body))
	if err != nil {
		return CallError{Message: err.Error()}
	}
	httpReq.Header.Set("Content-Type", "application/json")
	for k, v := range c.creds().Headers() {
		httpReq.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Warn().Err(err).Str("url", base+estimatePath).Msg("estimate request failed")
		return TransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		code := resp.StatusCode
		log.Warn().Int("status", code).Str("url", base+estimatePath).Msg("estimate upstream error")
		return TransportError{
			Message:    fmt.Sprintf("%d %s for url %s", code, http.StatusText(code), base+estimatePath),
			StatusCode: &code,
		}
	}

	var out map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return CallError{Message: err.Error()}
	}

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("estimate request completed")

	return Success{Body: out}
}

// Ping checks upstream reachability for health reporting. Any response,
// whatever the status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/", nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}
