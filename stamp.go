package devshot

import (
	"bytes"
	"fmt"
	"image/color"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	stampPadding = 20
	stampBorder  = 1
)

// Stamp adds a footer below the image with the captured URL, so the
// verification artifact records what it shows. Returns a new PNG.
func (imgB Image) Stamp(rawURL string) (Image, error) {
	img, err := png.Decode(bytes.NewReader(imgB))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	face, err := loadFont()
	if err != nil {
		return nil, err
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy() + stampPadding*2 + stampBorder
	dc := gg.NewContext(w, h)

	dc.DrawImage(img, 0, 0)

	yLine := float64(img.Bounds().Dy())
	dc.SetColor(color.White)
	dc.DrawRectangle(0, yLine, float64(w), float64(stampPadding*2+stampBorder))
	dc.Fill()
	dc.SetColor(color.Black)
	dc.DrawLine(0, yLine, float64(w), yLine)
	dc.SetLineWidth(float64(stampBorder))
	dc.Stroke()
	dc.SetFontFace(face)
	dc.DrawStringAnchored(rawURL, float64(w)/2, yLine+float64(stampPadding), 0.5, 0.3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return buf.Bytes(), nil
}

func loadFont() (font.Face, error) {
	ttFont, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	return truetype.NewFace(ttFont, &truetype.Options{
		Size: 12,
	}), nil
}
