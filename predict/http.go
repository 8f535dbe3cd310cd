package predict

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultHTTPTimeout = 30 * time.Second
	maxErrorBody       = 512
)

// HTTPClient runs predictions against a model server. The server accepts a
// JSON request on POST {base}/predict and answers with the loss density and
// the H waveform.
type HTTPClient struct {
	endpoint string
	model    Model
	material string
	client   *http.Client
}

// HTTPOption configures an HTTPClient.
type HTTPOption func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) HTTPOption {
	return func(h *HTTPClient) {
		if c != nil {
			h.client = c
		}
	}
}

// WithTimeout sets the per-request timeout of the default client.
func WithTimeout(d time.Duration) HTTPOption {
	return func(h *HTTPClient) {
		if d > 0 {
			h.client = &http.Client{Timeout: d}
		}
	}
}

type predictRequest struct {
	Model       string    `json:"model"`
	Material    string    `json:"material"`
	B           []float64 `json:"b"`
	Frequency   float64   `json:"frequency"`
	Temperature float64   `json:"temperature"`
}

type predictResponse struct {
	LossDensity float64   `json:"loss_density"`
	H           []float64 `json:"h"`
}

// NewHTTPClient creates a client for one model and material.
func NewHTTPClient(baseURL string, model Model, material string, opts ...HTTPOption) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("predict: base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("predict: base url must be http or https: %q", baseURL)
	}

	h := &HTTPClient{
		endpoint: strings.TrimRight(u.String(), "/") + "/predict",
		model:    model,
		material: material,
		client:   &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h, nil
}

// OpenHTTP returns an OpenFunc that creates HTTP clients against baseURL,
// for use with [NewCache].
func OpenHTTP(baseURL string, opts ...HTTPOption) OpenFunc {
	return func(_ context.Context, model Model, material string) (Predictor, error) {
		return NewHTTPClient(baseURL, model, material, opts...)
	}
}

// Predict posts one cycle to the model server.
func (h *HTTPClient) Predict(ctx context.Context, bTesla []float64, freqHz, tempC float64) (Prediction, error) {
	body, err := json.Marshal(predictRequest{
		Model:       h.model.Name,
		Material:    h.material,
		B:           bTesla,
		Frequency:   freqHz,
		Temperature: tempC,
	})
	if err != nil {
		return Prediction{}, fmt.Errorf("predict: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return Prediction{}, fmt.Errorf("predict: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return Prediction{}, fmt.Errorf("predict: %s: %w", h.endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return Prediction{}, fmt.Errorf("%w: %s: status %d: %s",
			ErrBadResponse, h.endpoint, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Prediction{}, fmt.Errorf("%w: decode: %v", ErrBadResponse, err)
	}

	p := Prediction{LossDensity: out.LossDensity, H: out.H}
	if err := p.Validate(len(bTesla)); err != nil {
		return Prediction{}, err
	}
	return p, nil
}
