package engine

import "context"

// Tensor is a single image in height-width-channel order with values in [0,1].
type Tensor struct {
	Height   int
	Width    int
	Channels int
	Data     []float32
}

func NewTensor(height, width, channels int) *Tensor {
	return &Tensor{
		Height:   height,
		Width:    width,
		Channels: channels,
		Data:     make([]float32, height*width*channels),
	}
}

func (t *Tensor) At(y, x, c int) float32 {
	return t.Data[(y*t.Width+x)*t.Channels+c]
}

func (t *Tensor) Set(y, x, c int, v float32) {
	t.Data[(y*t.Width+x)*t.Channels+c] = v
}

// Nested returns the tensor as [height][width][channels], the shape serving APIs expect
// for a single instance.
func (t *Tensor) Nested() [][][]float32 {
	out := make([][][]float32, t.Height)
	for y := 0; y < t.Height; y++ {
		row := make([][]float32, t.Width)
		for x := 0; x < t.Width; x++ {
			off := (y*t.Width + x) * t.Channels
			row[x] = t.Data[off : off+t.Channels : off+t.Channels]
		}
		out[y] = row
	}
	return out
}

// Engine scores one preprocessed image. The returned slice holds one score per class,
// in the model's output order.
type Engine interface {
	Name() string
	Predict(ctx context.Context, input *Tensor) ([]float32, error)
}

// Checker is implemented by engines that can report whether their backing model is
// currently servable.
type Checker interface {
	Ready(ctx context.Context) error
}

// Func adapts a plain function to Engine.
type Func func(ctx context.Context, input *Tensor) ([]float32, error)

func (f Func) Name() string { return "func" }

func (f Func) Predict(ctx context.Context, input *Tensor) ([]float32, error) {
	return f(ctx, input)
}
