package diagnosis

import (
	"context"
	"errors"
	"image/color"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/agrinet/internal/config"
	"github.com/yungbote/agrinet/internal/diagnosis/engine"
)

type memCache struct {
	mu   sync.Mutex
	data map[string]Prediction
	gets int
}

func (c *memCache) Get(_ context.Context, key string) (*Prediction, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	p, ok := c.data[key]
	if !ok {
		return nil, false, nil
	}
	return &p, true, nil
}

func (c *memCache) Set(_ context.Context, key string, p *Prediction) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = map[string]Prediction{}
	}
	c.data[key] = *p
	return nil
}

type recorded struct {
	digest string
	class  string
	cached bool
}

type fakeRecorder struct {
	rows []recorded
	err  error
}

func (r *fakeRecorder) RecordPrediction(_ context.Context, digest, _ string, p Prediction, cached bool) error {
	r.rows = append(r.rows, recorded{digest: digest, class: p.Class, cached: cached})
	return r.err
}

type fakeObserver struct {
	classes []string
	errs    []string
}

func (o *fakeObserver) ObservePrediction(class string, _ bool, _ time.Duration) {
	o.classes = append(o.classes, class)
}

func (o *fakeObserver) ObservePredictionError(reason string) { o.errs = append(o.errs, reason) }

func fixedScores(scores ...float32) engine.Engine {
	return engine.Func(func(context.Context, *engine.Tensor) ([]float32, error) {
		return scores, nil
	})
}

func leafUpload(t *testing.T) Upload {
	return Upload{Filename: "leaf.png", Data: encodePNG(t, solid(12, 12, color.NRGBA{R: 30, G: 160, B: 40, A: 255}))}
}

func TestPredictPicksArgmaxWithDetails(t *testing.T) {
	obs := &fakeObserver{}
	svc := NewService(nil, fixedScores(0.05, 0.1, 0.05, 0.6, 0.1, 0.1), WithObserver(obs))

	p, err := svc.Predict(context.Background(), leafUpload(t))
	require.NoError(t, err)

	assert.Equal(t, ClassNorthernLeafBlight, p.Class)
	assert.InDelta(t, 0.6, p.Confidence, 1e-6)
	assert.Contains(t, p.Symptoms, "cigar-shaped")
	assert.Contains(t, p.Treatment, "Pyraclostrobin")
	assert.Equal(t, []string{ClassNorthernLeafBlight}, obs.classes)
}

func TestPredictWithoutModel(t *testing.T) {
	obs := &fakeObserver{}
	svc := NewService(nil, nil, WithObserver(obs))

	_, err := svc.Predict(context.Background(), leafUpload(t))
	assert.ErrorIs(t, err, ErrModelNotLoaded)
	assert.ErrorIs(t, svc.Ready(context.Background()), ErrModelNotLoaded)
	assert.False(t, svc.Loaded())
	assert.Equal(t, []string{"not_loaded"}, obs.errs)
}

func TestPredictInvalidImage(t *testing.T) {
	svc := NewService(nil, fixedScores(1, 0, 0, 0, 0, 0))
	_, err := svc.Predict(context.Background(), Upload{Filename: "x.txt", Data: []byte("hello")})
	assert.ErrorIs(t, err, ErrInvalidImage)
}

func TestPredictWrongScoreCount(t *testing.T) {
	svc := NewService(nil, fixedScores(0.5, 0.5))
	_, err := svc.Predict(context.Background(), leafUpload(t))
	assert.ErrorIs(t, err, ErrScoreShape)
}

func TestPredictEngineFailure(t *testing.T) {
	boom := errors.New("upstream down")
	svc := NewService(nil, engine.Func(func(context.Context, *engine.Tensor) ([]float32, error) {
		return nil, boom
	}))
	_, err := svc.Predict(context.Background(), leafUpload(t))
	assert.ErrorIs(t, err, boom)
}

func TestPredictUsesCacheAndRecorder(t *testing.T) {
	calls := 0
	eng := engine.Func(func(context.Context, *engine.Tensor) ([]float32, error) {
		calls++
		return []float32{0.9, 0.02, 0.02, 0.02, 0.02, 0.02}, nil
	})
	cache := &memCache{}
	rec := &fakeRecorder{err: errors.New("db down")}
	svc := NewService(nil, eng, WithCache(cache), WithRecorder(rec))

	up := leafUpload(t)
	first, err := svc.Predict(context.Background(), up)
	require.NoError(t, err)
	second, err := svc.Predict(context.Background(), up)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	require.Len(t, rec.rows, 2)
	assert.False(t, rec.rows[0].cached)
	assert.True(t, rec.rows[1].cached)
	assert.Equal(t, up.Digest(), rec.rows[0].digest)
}

func TestArgmaxFirstMaxWins(t *testing.T) {
	idx, v := Argmax([]float32{0.2, 0.4, 0.4, 0.0})
	assert.Equal(t, 1, idx)
	assert.Equal(t, float32(0.4), v)

	idx, _ = Argmax(nil)
	assert.Equal(t, -1, idx)
}

func TestNewEngine(t *testing.T) {
	eng, err := NewEngine(config.ModelConfig{Engine: config.EngineMock})
	require.NoError(t, err)
	assert.Equal(t, "mock", eng.Name())

	_, err = NewEngine(config.ModelConfig{Engine: "onnx"})
	assert.Error(t, err)

	_, err = NewEngine(config.ModelConfig{Engine: config.EngineTFServing})
	assert.Error(t, err)

	eng, err = NewEngine(config.ModelConfig{Engine: "tf_serving", BaseURL: "http://localhost:8501", Name: "vgg19"})
	require.NoError(t, err)
	assert.Equal(t, "tfserving:vgg19", eng.Name())
}

func TestMockEngineEndToEnd(t *testing.T) {
	eng, err := NewEngine(config.ModelConfig{Engine: config.EngineMock})
	require.NoError(t, err)
	svc := NewService(nil, eng, WithInputSize(32))

	p, err := svc.Predict(context.Background(), leafUpload(t))
	require.NoError(t, err)
	assert.Contains(t, ClassNames(), p.Class)
	assert.Greater(t, p.Confidence, 0.0)
	assert.NoError(t, svc.Ready(context.Background()))
}

type brokenCache struct {
	getErr error
	setErr error
	sets   int
}

func (c *brokenCache) Get(context.Context, string) (*Prediction, bool, error) {
	return nil, false, c.getErr
}

func (c *brokenCache) Set(context.Context, string, *Prediction) error {
	c.sets++
	return c.setErr
}

func TestPredictSurvivesCacheFailures(t *testing.T) {
	cases := []struct {
		name  string
		cache *brokenCache
	}{
		{"get fails", &brokenCache{getErr: errors.New("redis: connection refused")}},
		{"set fails", &brokenCache{setErr: errors.New("redis: OOM")}},
		{"both fail", &brokenCache{getErr: errors.New("read timeout"), setErr: errors.New("write timeout")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			obs := &fakeObserver{}
			svc := NewService(nil, fixedScores(0.1, 0.7, 0.05, 0.05, 0.05, 0.05), WithCache(tc.cache), WithObserver(obs))

			p, err := svc.Predict(context.Background(), leafUpload(t))
			require.NoError(t, err)
			assert.Equal(t, ClassGrayLeafSpot, p.Class)
			assert.Equal(t, 1, tc.cache.sets)
			assert.Equal(t, []string{ClassGrayLeafSpot}, obs.classes)
			assert.Empty(t, obs.errs)
		})
	}
}
