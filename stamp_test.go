package devshot

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func testImage(t *testing.T, width, height int) Image {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestStamp(t *testing.T) {
	img := testImage(t, 375, 667)

	stamped, err := img.Stamp("http://127.0.0.1:5173/")
	if err != nil {
		t.Fatalf("Stamp() error = %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(stamped))
	if err != nil {
		t.Fatalf("stamped image is not a valid PNG: %v", err)
	}
	if cfg.Width != 375 {
		t.Fatalf("expected stamped width 375, got %d", cfg.Width)
	}
	wantHeight := 667 + stampPadding*2 + stampBorder
	if cfg.Height != wantHeight {
		t.Fatalf("expected stamped height %d, got %d", wantHeight, cfg.Height)
	}
}

func TestStampInvalidImage(t *testing.T) {
	if _, err := Image([]byte("not a png")).Stamp("http://127.0.0.1:5173/"); err == nil {
		t.Fatal("expected error stamping invalid image, got nil")
	}
}
