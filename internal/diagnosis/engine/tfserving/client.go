package tfserving

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/yungbote/agrinet/internal/config"
	"github.com/yungbote/agrinet/internal/diagnosis/engine"
)

// Engine talks to a TensorFlow Serving REST endpoint.
type Engine struct {
	baseURL string
	model   string
	timeout time.Duration

	httpClient *http.Client
}

func New(cfg config.ModelConfig) (*Engine, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("tfserving: base_url required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("tfserving: invalid base_url: %w", err)
	}
	model := strings.TrimSpace(cfg.Name)
	if model == "" {
		return nil, errors.New("tfserving: model name required")
	}

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          32,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,
	}

	timeout := cfg.Timeout.Duration
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Engine{
		baseURL:    baseURL,
		model:      model,
		timeout:    timeout,
		httpClient: &http.Client{Transport: tr},
	}, nil
}

// NewWithHTTPClient is intended for tests; it avoids network access by using a custom RoundTripper.
func NewWithHTTPClient(cfg config.ModelConfig, httpClient *http.Client) (*Engine, error) {
	e, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if httpClient != nil {
		e.httpClient = httpClient
	}
	return e, nil
}

func (e *Engine) Name() string { return "tfserving:" + e.model }

type predictRequest struct {
	Instances [][][][]float32 `json:"instances"`
}

type predictResponse struct {
	Predictions [][]float64 `json:"predictions"`
	Error       string      `json:"error,omitempty"`
}

func (e *Engine) Predict(ctx context.Context, input *engine.Tensor) ([]float32, error) {
	if input == nil {
		return nil, errors.New("tfserving: nil input")
	}
	req := predictRequest{Instances: [][][][]float32{input.Nested()}}

	var resp predictResponse
	path := "/v1/models/" + url.PathEscape(e.model) + ":predict"
	if err := e.doJSON(ctx, http.MethodPost, path, req, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("tfserving: %s", resp.Error)
	}
	if len(resp.Predictions) == 0 {
		return nil, errors.New("tfserving: empty predictions")
	}

	row := resp.Predictions[0]
	out := make([]float32, len(row))
	for i, v := range row {
		out[i] = float32(v)
	}
	return out, nil
}

type modelStatusResponse struct {
	ModelVersionStatus []struct {
		Version string `json:"version"`
		State   string `json:"state"`
	} `json:"model_version_status"`
}

// Ready reports nil when at least one version of the model is AVAILABLE.
func (e *Engine) Ready(ctx context.Context) error {
	var resp modelStatusResponse
	if err := e.doJSON(ctx, http.MethodGet, "/v1/models/"+url.PathEscape(e.model), nil, &resp); err != nil {
		return err
	}
	for _, s := range resp.ModelVersionStatus {
		if strings.EqualFold(s.State, "AVAILABLE") {
			return nil
		}
	}
	return fmt.Errorf("tfserving: model %q has no available version", e.model)
}

func (e *Engine) doJSON(ctx context.Context, method string, path string, body any, out any) error {
	var rdr io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return err
		}
		rdr = &buf
	}

	ctx2, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx2, method, e.baseURL+path, rdr)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		return &HTTPError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
