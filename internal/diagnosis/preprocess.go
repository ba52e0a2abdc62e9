package diagnosis

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/yungbote/agrinet/internal/diagnosis/engine"
)

const (
	DefaultInputSize = 224

	// MaxPixels caps the decoded size of an upload, checked from the header before decoding.
	MaxPixels = 4096 * 4096
)

var ErrInvalidImage = errors.New("invalid image data")

// Preprocess decodes raw, resizes it to size×size, drops any alpha channel and scales
// every channel into [0,1].
func Preprocess(raw []byte, size int) (*engine.Tensor, error) {
	if size <= 0 {
		size = DefaultInputSize
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty upload", ErrInvalidImage)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Width*cfg.Height > MaxPixels {
		return nil, fmt.Errorf("%w: unsupported dimensions %dx%d", ErrInvalidImage, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	src := opaque(img)
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	t := engine.NewTensor(size, size, 3)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			off := dst.PixOffset(x, y)
			for c := 0; c < 3; c++ {
				t.Set(y, x, c, float32(dst.Pix[off+c])/255.0)
			}
		}
	}
	return t, nil
}

// opaque forces alpha to fully opaque in place for the decoded types that carry straight
// alpha, so transparent pixels keep their stored colour through the resize. Other types
// are returned unchanged.
func opaque(img image.Image) image.Image {
	switch m := img.(type) {
	case *image.NRGBA:
		for i := 3; i < len(m.Pix); i += 4 {
			m.Pix[i] = 0xff
		}
	case *image.NRGBA64:
		for i := 6; i < len(m.Pix); i += 8 {
			m.Pix[i], m.Pix[i+1] = 0xff, 0xff
		}
	case *image.Paletted:
		pal := make(color.Palette, len(m.Palette))
		for i, c := range m.Palette {
			n := color.NRGBAModel.Convert(c).(color.NRGBA)
			n.A = 0xff
			pal[i] = n
		}
		m.Palette = pal
	}
	return img
}
