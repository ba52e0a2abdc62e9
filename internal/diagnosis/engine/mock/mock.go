package mock

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"math"

	"github.com/yungbote/agrinet/internal/diagnosis/engine"
)

// Engine produces stable pseudo-probabilities from the image content. Identical inputs
// always score identically.
type Engine struct {
	Classes int
}

func New(classes int) *Engine {
	return &Engine{Classes: classes}
}

func (e *Engine) Name() string { return "mock" }

func (e *Engine) Predict(ctx context.Context, input *engine.Tensor) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	h := sha256.New()
	var buf [4]byte
	for _, v := range input.Data {
		binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
		_, _ = h.Write(buf[:])
	}
	sum := h.Sum(nil)

	logits := make([]float64, e.Classes)
	for i := range logits {
		u := binary.LittleEndian.Uint32(sum[(i*4)%len(sum):])
		logits[i] = float64(u%10_000) / 1_000.0
	}
	return softmax(logits), nil
}

func softmax(logits []float64) []float32 {
	if len(logits) == 0 {
		return []float32{}
	}
	maxV := logits[0]
	for _, v := range logits[1:] {
		maxV = math.Max(maxV, v)
	}
	var total float64
	exps := make([]float64, len(logits))
	for i, v := range logits {
		exps[i] = math.Exp(v - maxV)
		total += exps[i]
	}
	out := make([]float32, len(logits))
	for i := range exps {
		out[i] = float32(exps[i] / total)
	}
	return out
}
