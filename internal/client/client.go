// Package client is the typed HTTP client for the case tracker API. It maps
// transport failures and error payloads into the domain error taxonomy so
// consumers branch on error kind, never on HTTP details.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dcdanielca/casetracker/internal/domain"
	"github.com/dcdanielca/casetracker/internal/filters"
)

const fallbackErrorMessage = "Ocurrió un error inesperado"

// Client calls the case tracker REST API.
type Client struct {
	baseURL string
	httpc   *http.Client
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client, e.g. to set timeouts
// or inject a test transport.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListCases fetches one page of cases matching the given filters.
func (c *Client) ListCases(ctx context.Context, f domain.CaseFilters) (*domain.PaginatedResult[domain.Case], error) {
	endpoint := c.baseURL + "/api/v1/cases?" + filters.Encode(f).Encode()
	var out domain.PaginatedResult[domain.Case]
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetCase fetches a case and its queries by id. A missing id yields an
// error satisfying domain.IsNotFound.
func (c *Client) GetCase(ctx context.Context, id string) (*domain.CaseDetail, error) {
	endpoint := c.baseURL + "/api/v1/cases/" + url.PathEscape(id)
	var out domain.CaseDetail
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateCase submits a new case and returns the persisted record.
func (c *Client) CreateCase(ctx context.Context, in domain.CreateCaseInput) (*domain.Case, error) {
	endpoint := c.baseURL + "/api/v1/cases"
	var out domain.Case
	if err := c.do(ctx, http.MethodPost, endpoint, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do performs one request and decodes the response into out. Non-2xx
// responses become AppErrors carrying the backend's detail message when
// present, else a generic fallback.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return domain.NewAppError(domain.CodeInternal, fallbackErrorMessage, err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, fallbackErrorMessage, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, fallbackErrorMessage, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return domain.NewAppError(domain.CodeInternal, fallbackErrorMessage, err)
		}
	}
	return nil
}

type errorBody struct {
	Detail string            `json:"detail"`
	Errors map[string]string `json:"errors"`
}

// decodeError turns an error response into an AppError. The message is
// taken from the backend's detail field when present.
func decodeError(resp *http.Response) error {
	var body errorBody
	_ = json.NewDecoder(resp.Body).Decode(&body)

	message := body.Detail
	if message == "" {
		message = fallbackErrorMessage
	}

	code := domain.CodeInternal
	switch {
	case resp.StatusCode == http.StatusNotFound:
		code = domain.CodeNotFound
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		code = domain.CodeValidation
	}

	return domain.NewAppError(code, message, fmt.Errorf("http %d", resp.StatusCode))
}
