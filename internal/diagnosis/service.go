package diagnosis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/yungbote/agrinet/internal/diagnosis/engine"
	"github.com/yungbote/agrinet/internal/platform/logger"
)

var (
	ErrModelNotLoaded = errors.New("model is not loaded")
	ErrScoreShape     = errors.New("model returned an unexpected number of scores")
)

type Prediction struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	Symptoms   string  `json:"symptoms"`
	Treatment  string  `json:"treatment"`
}

type Upload struct {
	Filename string
	Data     []byte
}

// Digest is the hex SHA-256 of the upload bytes.
func (u Upload) Digest() string {
	sum := sha256.Sum256(u.Data)
	return hex.EncodeToString(sum[:])
}

type Cache interface {
	Get(ctx context.Context, key string) (*Prediction, bool, error)
	Set(ctx context.Context, key string, p *Prediction) error
}

// Recorder keeps a history of served predictions.
type Recorder interface {
	RecordPrediction(ctx context.Context, digest string, filename string, p Prediction, cached bool) error
}

type Observer interface {
	ObservePrediction(class string, cached bool, elapsed time.Duration)
	ObservePredictionError(reason string)
}

type Option func(*Service)

func WithInputSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.inputSize = size
		}
	}
}

func WithCache(c Cache) Option { return func(s *Service) { s.cache = c } }

func WithRecorder(r Recorder) Option { return func(s *Service) { s.recorder = r } }

func WithObserver(o Observer) Option { return func(s *Service) { s.observer = o } }

type Service struct {
	log       *logger.Logger
	engine    engine.Engine
	inputSize int
	cache     Cache
	recorder  Recorder
	observer  Observer
}

// NewService builds the prediction service. A nil engine is allowed: the service then
// answers every prediction with ErrModelNotLoaded, which is how a failed model load
// surfaces to clients.
func NewService(log *logger.Logger, eng engine.Engine, opts ...Option) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Service{
		log:       log.With("service", "DiagnosisService"),
		engine:    eng,
		inputSize: DefaultInputSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) Loaded() bool { return s != nil && s.engine != nil }

func (s *Service) EngineName() string {
	if !s.Loaded() {
		return ""
	}
	return s.engine.Name()
}

// Ready returns nil when a prediction could be served right now.
func (s *Service) Ready(ctx context.Context) error {
	if !s.Loaded() {
		return ErrModelNotLoaded
	}
	if c, ok := s.engine.(engine.Checker); ok {
		return c.Ready(ctx)
	}
	return nil
}

func (s *Service) Predict(ctx context.Context, up Upload) (*Prediction, error) {
	start := time.Now()
	if !s.Loaded() {
		s.observeError("not_loaded")
		return nil, ErrModelNotLoaded
	}

	digest := up.Digest()
	key := s.cacheKey(digest)

	if s.cache != nil {
		p, ok, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.log.Warn("prediction cache read failed (ignored)", "error", err)
		case ok:
			s.log.Debug("prediction cache hit", "digest", digest, "class", p.Class)
			s.finish(ctx, digest, up.Filename, *p, true, start)
			return p, nil
		}
	}

	input, err := Preprocess(up.Data, s.inputSize)
	if err != nil {
		s.log.Debug("image preprocessing failed", "filename", up.Filename, "error", err)
		s.observeError("invalid_image")
		return nil, err
	}

	scores, err := s.engine.Predict(ctx, input)
	if err != nil {
		s.observeError("engine")
		return nil, fmt.Errorf("predict with %s: %w", s.engine.Name(), err)
	}
	if len(scores) != NumClasses() {
		s.observeError("shape")
		return nil, fmt.Errorf("%w: got %d, want %d", ErrScoreShape, len(scores), NumClasses())
	}

	idx, confidence := Argmax(scores)
	class := classNames[idx]
	d, _ := Lookup(class)
	p := &Prediction{
		Class:      class,
		Confidence: float64(confidence),
		Symptoms:   d.Symptoms,
		Treatment:  d.Treatment,
	}
	s.log.Debug("prediction", "class", class, "class_index", idx, "confidence", p.Confidence)

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, p); err != nil {
			s.log.Warn("prediction cache write failed (ignored)", "error", err)
		}
	}
	s.finish(ctx, digest, up.Filename, *p, false, start)
	return p, nil
}

func (s *Service) finish(ctx context.Context, digest, filename string, p Prediction, cached bool, start time.Time) {
	if s.recorder != nil {
		if err := s.recorder.RecordPrediction(ctx, digest, filename, p, cached); err != nil {
			s.log.Warn("failed to record prediction (ignored)", "error", err)
		}
	}
	if s.observer != nil {
		s.observer.ObservePrediction(p.Class, cached, time.Since(start))
	}
}

func (s *Service) observeError(reason string) {
	if s.observer != nil {
		s.observer.ObservePredictionError(reason)
	}
}

func (s *Service) cacheKey(digest string) string {
	return "agrinet:prediction:" + s.engine.Name() + ":" + strconv.Itoa(s.inputSize) + ":" + digest
}

// Argmax returns the first index holding the maximum score, and that score.
func Argmax(scores []float32) (int, float32) {
	if len(scores) == 0 {
		return -1, 0
	}
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best, scores[best]
}
