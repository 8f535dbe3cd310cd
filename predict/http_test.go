package predict

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPClientPredict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/predict", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req predictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Sydney", req.Model)
		assert.Equal(t, "N87", req.Material)
		assert.Equal(t, 100e3, req.Frequency)
		assert.Equal(t, 25.0, req.Temperature)

		h := make([]float64, len(req.B))
		for i, b := range req.B {
			h[i] = b * 1000
		}
		_ = json.NewEncoder(w).Encode(predictResponse{LossDensity: 42e3, H: h})
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL+"/api/", Model{Name: "Sydney", Resolution: 128}, "N87")
	require.NoError(t, err)

	got, err := c.Predict(context.Background(), []float64{0.1, -0.1}, 100e3, 25)
	require.NoError(t, err)
	assert.Equal(t, 42e3, got.LossDensity)
	assert.InDeltaSlice(t, []float64{100, -100}, got.H, 1e-12)
}

func TestHTTPClientStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "model not loaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, DefaultModel(), DefaultMaterial())
	require.NoError(t, err)

	_, err = c.Predict(context.Background(), []float64{0.1}, 1e5, 25)
	require.ErrorIs(t, err, ErrBadResponse)
	assert.Contains(t, err.Error(), "503")
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestHTTPClientLengthMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"loss_density": 1, "h": [1, 2, 3]}`))
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, DefaultModel(), DefaultMaterial())
	require.NoError(t, err)

	_, err = c.Predict(context.Background(), []float64{0.1, 0.2}, 1e5, 25)
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestHTTPClientMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"loss_density": `))
	}))
	defer srv.Close()

	c, err := NewHTTPClient(srv.URL, DefaultModel(), DefaultMaterial())
	require.NoError(t, err)

	_, err = c.Predict(context.Background(), []float64{0.1}, 1e5, 25)
	assert.ErrorIs(t, err, ErrBadResponse)
}

func TestHTTPClientContextCancel(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	c, err := NewHTTPClient(srv.URL, DefaultModel(), DefaultMaterial(), WithTimeout(5*time.Second))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Predict(ctx, []float64{0.1}, 1e5, 25)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewHTTPClientRejectsBadURL(t *testing.T) {
	_, err := NewHTTPClient("ftp://models.local", DefaultModel(), DefaultMaterial())
	assert.Error(t, err)
	_, err = NewHTTPClient("://", DefaultModel(), DefaultMaterial())
	assert.Error(t, err)
}

func TestOpenHTTPWithCache(t *testing.T) {
	c := NewCache(OpenHTTP("http://localhost:8080", WithTimeout(time.Second)))
	p, err := c.Get(context.Background(), "Sydney", "3C90")
	require.NoError(t, err)

	hc, ok := p.(*HTTPClient)
	require.True(t, ok)
	assert.Equal(t, "http://localhost:8080/predict", hc.endpoint)
	assert.Equal(t, "3C90", hc.material)
}
