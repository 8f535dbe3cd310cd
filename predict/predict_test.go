package predict

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPredictionValidate(t *testing.T) {
	ok := Prediction{LossDensity: 1200, H: []float64{1, -1}}
	require.NoError(t, ok.Validate(2))

	tests := []struct {
		name string
		p    Prediction
	}{
		{"length", Prediction{LossDensity: 1, H: []float64{1}}},
		{"nan loss", Prediction{LossDensity: math.NaN(), H: []float64{1, 2}}},
		{"negative loss", Prediction{LossDensity: -1, H: []float64{1, 2}}},
		{"inf h", Prediction{LossDensity: 1, H: []float64{1, math.Inf(-1)}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.p.Validate(2), ErrBadResponse)
		})
	}
}

func TestFuncAdapter(t *testing.T) {
	var p Predictor = Func(func(_ context.Context, b []float64, f, temp float64) (Prediction, error) {
		return Prediction{LossDensity: f + temp, H: make([]float64, len(b))}, nil
	})
	got, err := p.Predict(context.Background(), []float64{0.1, 0.2}, 100e3, 25)
	require.NoError(t, err)
	assert.Equal(t, 100025.0, got.LossDensity)
	assert.Len(t, got.H, 2)
}

func TestCatalog(t *testing.T) {
	m, err := LookupModel("paderborn")
	require.NoError(t, err)
	assert.Equal(t, Model{Name: "Paderborn", Resolution: 1024}, m)

	m, err = LookupModel("Sydney")
	require.NoError(t, err)
	assert.Equal(t, 128, m.Resolution)
	assert.Equal(t, m, DefaultModel())

	_, err = LookupModel("Princeton")
	assert.ErrorIs(t, err, ErrUnknownModel)

	mat, err := LookupMaterial("n87")
	require.NoError(t, err)
	assert.Equal(t, "N87", mat)
	assert.Equal(t, "T37", DefaultMaterial())
	assert.Len(t, Materials(), 15)

	_, err = LookupMaterial("unobtainium")
	assert.ErrorIs(t, err, ErrUnknownMaterial)

	// Callers get copies.
	list := Models()
	list[0].Resolution = 1
	assert.Equal(t, 1024, Models()[0].Resolution)
}

func TestCacheOpensOnce(t *testing.T) {
	var (
		mu     sync.Mutex
		opened []string
	)
	c := NewCache(func(_ context.Context, m Model, material string) (Predictor, error) {
		mu.Lock()
		opened = append(opened, m.Name+"/"+material)
		mu.Unlock()
		return Func(func(context.Context, []float64, float64, float64) (Prediction, error) {
			return Prediction{}, nil
		}), nil
	})

	ctx := context.Background()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Get(ctx, "sydney", "n87")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	_, err := c.Get(ctx, "Paderborn", "N87")
	require.NoError(t, err)

	assert.Equal(t, []string{"Sydney/N87", "Paderborn/N87"}, opened)
	assert.Equal(t, 2, c.Len())
}

func TestCacheErrors(t *testing.T) {
	boom := errors.New("boom")
	calls := 0
	c := NewCache(func(context.Context, Model, string) (Predictor, error) {
		calls++
		return nil, boom
	})

	_, err := c.Get(context.Background(), "nope", "N87")
	assert.ErrorIs(t, err, ErrUnknownModel)
	_, err = c.Get(context.Background(), "Sydney", "nope")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
	assert.Equal(t, 0, calls)

	_, err = c.Get(context.Background(), "Sydney", "N87")
	assert.ErrorIs(t, err, boom)
	_, err = c.Get(context.Background(), "Sydney", "N87")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 0, c.Len())
}
