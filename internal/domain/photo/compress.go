package photo

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"math"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	// MaxSide — найдовша сторона після стискання.
	MaxSide = 500

	jpegQuality = 70
)

// Compress декодує сире зображення, вписує його в рамку 500px по довшій
// стороні зі збереженням пропорцій і перекодовує в JPEG. Єдина мета —
// щоб запис помістився в квоту локального сховища.
func Compress(data []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	if width >= height {
		if width > MaxSide {
			height = int(math.Round(float64(height) * MaxSide / float64(width)))
			width = MaxSide
		}
	} else {
		if height > MaxSide {
			width = int(math.Round(float64(width) * MaxSide / float64(height)))
			height = MaxSide
		}
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", fmt.Errorf("encode jpeg: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
