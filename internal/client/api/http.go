package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"

	"github.com/google/uuid"

	"github.com/influeapp/influe-cli/internal/logging"
)

// maxResponseBytes caps how much of a response body is read. Analysis
// payloads are small; anything larger is a misbehaving server.
const maxResponseBytes = 1 << 20

// HTTPClient talks JSON over HTTP to the portal backend.
//
// A cookie jar keeps the anonymous session cookie alive between requests so
// that session credits keep working without login. No request timeout is set
// beyond the transport defaults; cancellation happens via ctx.
type HTTPClient struct {
	baseURL string
	hc      *http.Client
	token   string
	log     logging.Logger
}

func NewHTTPClient(baseURL string, log logging.Logger) (*HTTPClient, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &HTTPClient{
		baseURL: baseURL,
		hc:      &http.Client{Jar: jar},
		log:     log.With("component", "api"),
	}, nil
}

func (c *HTTPClient) SetToken(token string) { c.token = token }
func (c *HTTPClient) ClearToken()           { c.token = "" }

// envelope is the common response wrapper: {"ok": ..., "error": ...}.
type envelope struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path, contentType string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// do executes the request, maps error statuses to sentinels, and decodes
// the body into out (when non-nil).
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Warn(req.Context(), "request failed", "path", req.URL.Path, "err", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var env envelope
	jsonErr := json.Unmarshal(body, &env)

	if err := mapStatus(resp.StatusCode, env.Error); err != nil {
		return err
	}
	if jsonErr != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, jsonErr)
	}
	if !env.OK {
		if env.Error != "" {
			return fmt.Errorf("request rejected: %s", env.Error)
		}
		return fmt.Errorf("request rejected")
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
		}
	}
	return nil
}

// mapStatus converts HTTP error statuses into sentinel errors, keeping any
// server-supplied detail text.
func mapStatus(code int, detail string) error {
	switch {
	case code == http.StatusUnauthorized:
		return wrapStatus(ErrUnauthorized, detail)
	case code == http.StatusPaymentRequired:
		return wrapStatus(ErrNoCredits, detail)
	case code == http.StatusConflict:
		return wrapStatus(ErrEmailTaken, detail)
	case code == http.StatusTooManyRequests:
		return wrapStatus(ErrRateLimited, detail)
	case code >= 500:
		return wrapStatus(ErrServer, detail)
	case code >= 400:
		if detail != "" {
			return fmt.Errorf("request rejected: %s", detail)
		}
		return fmt.Errorf("request rejected: status %d", code)
	}
	return nil
}

func (c *HTTPClient) postJSON(ctx context.Context, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

type authResponse struct {
	envelope
	Token string `json:"token"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (string, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.postJSON(ctx, "/auth/login", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: missing token", ErrMalformedResponse)
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password string) (string, error) {
	var resp authResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.postJSON(ctx, "/auth/register", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("%w: missing token", ErrMalformedResponse)
	}
	return resp.Token, nil
}

func (c *HTTPClient) CreditsStatus(ctx context.Context) (*CreditStatus, error) {
	var resp struct {
		envelope
		Data CreditStatus `json:"data"`
	}
	if err := c.getJSON(ctx, "/credits_status", &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *HTTPClient) GateLogin(ctx context.Context) (*GateDecision, error) {
	var resp struct {
		envelope
		GateDecision
	}
	if err := c.getJSON(ctx, "/gate/login", &resp); err != nil {
		return nil, err
	}
	return &resp.GateDecision, nil
}

type analysisResponse struct {
	envelope
	Analysis Analysis `json:"analysis"`
}

func (c *HTTPClient) AnalyzeText(ctx context.Context, text string) (*Analysis, error) {
	var resp analysisResponse
	if err := c.postJSON(ctx, "/analyze_text", map[string]string{"text": text}, &resp); err != nil {
		return nil, err
	}
	return &resp.Analysis, nil
}

func (c *HTTPClient) AnalyzePhoto(ctx context.Context, filename string, photo io.Reader, intent string) (*Analysis, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fw, err := w.CreateFormFile("photo", filename)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(fw, photo); err != nil {
		return nil, err
	}
	if intent != "" {
		if err := w.WriteField("intent", intent); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/analyze_photo", w.FormDataContentType(), &buf)
	if err != nil {
		return nil, err
	}

	var resp analysisResponse
	if err := c.do(req, &resp); err != nil {
		return nil, err
	}
	return &resp.Analysis, nil
}

func (c *HTTPClient) Purchase(ctx context.Context, pkg int) error {
	return c.postJSON(ctx, "/purchase", map[string]int{"package": pkg}, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (*Profile, error) {
	var resp struct {
		envelope
		Data Profile `json:"data"`
	}
	if err := c.getJSON(ctx, "/user/profile", &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

func (c *HTTPClient) Privacy(ctx context.Context) (string, error) {
	var resp struct {
		envelope
		Policy string `json:"policy"`
	}
	if err := c.getJSON(ctx, "/privacy", &resp); err != nil {
		return "", err
	}
	return resp.Policy, nil
}

// Ping hits /health, which does not use the {ok,...} envelope.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", "", nil)
	if err != nil {
		return err
	}
	resp, err := c.hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	var health struct {
		Status string `json:"status"`
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := json.Unmarshal(body, &health); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if health.Status != "ok" {
		return ErrUnavailable
	}
	return nil
}
