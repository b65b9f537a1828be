package devshot

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	log "github.com/sirupsen/logrus"
)

// Result contains the outcome of a screenshot capture.
type Result struct {
	URL   string
	Image Image
}

// Image is raw PNG screenshot data.
type Image []byte

// Capture navigates a headless browser to rawURL with the configured
// viewport and returns the captured screenshot. Navigation waits for the
// page load event before the screenshot is taken.
func (c *Capturer) Capture(ctx context.Context, rawURL string) (*Result, error) {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		return nil, fmt.Errorf("invalid capture URL %q: %w", rawURL, err)
	}

	log.Debugf("attempting capture on %s", rawURL)

	timeout := time.Duration(c.Options.Timeout) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	// Append the capturer's flags to the default allocator options.
	opts := append(chromedp.DefaultExecAllocatorOptions[:], c.allocatorFlags()...)

	allocator, cancelAllocator := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAllocator()

	bctx, cancelBrowser := chromedp.NewContext(allocator)
	defer cancelBrowser()

	// Surface network activity at debug level so a hanging capture can be
	// told apart from a slow page.
	chromedp.ListenTarget(bctx, func(ev interface{}) {
		if _, ok := ev.(*network.EventLoadingFinished); ok {
			log.Debugf("network request finished for %s", rawURL)
		}
	})

	var buf []byte

	tasks := chromedp.Tasks{
		chromedp.EmulateViewport(int64(c.Options.ViewportWidth), int64(c.Options.ViewportHeight)),
		chromedp.Navigate(rawURL),
		chromedp.CaptureScreenshot(&buf),
	}

	if err := chromedp.Run(bctx, tasks); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("capture of %s timed out after %s: %w", rawURL, timeout, err)
		}
		return nil, fmt.Errorf("capturing %s: %w", rawURL, err)
	}

	if len(buf) == 0 {
		return nil, fmt.Errorf("browser returned an empty screenshot for %s", rawURL)
	}

	log.Debugf("captured %d bytes for %s", len(buf), rawURL)

	return &Result{URL: rawURL, Image: buf}, nil
}

// WriteFile writes the screenshot to path, creating parent directories as
// needed. An empty image is an error rather than a silent zero-byte file.
func (r *Result) WriteFile(path string) error {
	if len(r.Image) == 0 {
		return errors.New("refusing to write empty screenshot")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Write(r.Image); err != nil {
		return err
	}

	return nil
}
