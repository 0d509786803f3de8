package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/recoleta-app/collector-api/pkg/config"
	appErrors "github.com/recoleta-app/collector-api/pkg/errors"
)

// Upstream holds the shared HTTP client for the backend that owns discard
// and collector records. Repositories forward the caller's bearer token on
// every request; this service never mints upstream credentials of its own.
type Upstream struct {
	baseURL string
	client  *http.Client
}

// NewUpstream constructs the shared upstream client.
func NewUpstream(cfg config.UpstreamConfig) *Upstream {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Upstream{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type upstreamFailure struct {
	Message string `json:"message"`
}

// do performs a request against the upstream API and returns the raw body.
// Non-2xx responses are mapped to an upstream error carrying the backend's
// message when one is present.
func (u *Upstream) do(ctx context.Context, method, path, token string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal upstream request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := u.client.Do(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var failure upstreamFailure
		if err := json.Unmarshal(raw, &failure); err == nil && failure.Message != "" {
			return nil, appErrors.Clone(appErrors.ErrUpstream, failure.Message)
		}
		return nil, appErrors.Clone(appErrors.ErrUpstream, fmt.Sprintf("upstream returned status %d", res.StatusCode))
	}

	return raw, nil
}
