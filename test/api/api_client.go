package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/onsi/ginkgo/v2"
)

const traceIDHeader = "X-Trace-ID"

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
}

// Response is a decoded API response.
type Response struct {
	StatusCode int
	Header     http.Header
	Raw        []byte
	Body       map[string]interface{}
	TraceID    string
}

// Message returns the "message" field of an error body.
func (r *Response) Message() string {
	msg, _ := r.Body["message"].(string)
	return msg
}

// ID returns the "_id" field of a journey body.
func (r *Response) ID() string {
	id, _ := r.Body["_id"].(string)
	return id
}

func NewAPIClient(config *TestConfig, baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}
}

func (c *APIClient) CreateJourney(ctx context.Context, payload interface{}) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling journey: %w", err)
	}
	return c.doRequest(ctx, http.MethodPost, c.endpoints.CreateJourney(), bytes.NewReader(body))
}

func (c *APIClient) GetJourney(ctx context.Context, journeyID string) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, c.endpoints.GetJourney(journeyID), nil)
}

func (c *APIClient) Healthz(ctx context.Context) (*Response, error) {
	return c.doRequest(ctx, http.MethodGet, c.endpoints.Healthz(), nil)
}

func (c *APIClient) doRequest(ctx context.Context, method, path string, body io.Reader) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// a fresh trace id per request lets a failure be found in server logs
	traceID := uuid.New().String()
	req.Header.Set(traceIDHeader, traceID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)
	if err != nil {
		ginkgo.GinkgoWriter.Printf("[%s %s] ERROR duration=%s trace_id=%s error=%v\n", method, path, duration, traceID, err)
		return nil, fmt.Errorf("http request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s trace_id=%s\n", method, path, resp.StatusCode, duration, traceID)
	}
	if c.config.LogResponses && len(raw) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(raw))
	}

	out := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Raw:        raw,
		TraceID:    traceID,
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out.Body); err != nil {
			return out, fmt.Errorf("unmarshaling response (status %d, trace ID %s): %w", resp.StatusCode, traceID, err)
		}
	}
	return out, nil
}
