// Package devshot captures viewport screenshots of a development server
// with a headless browser, for visual verification of UI changes.
package devshot

import (
	"github.com/chromedp/chromedp"
	"github.com/go-rod/rod/lib/launcher"
	log "github.com/sirupsen/logrus"
)

const Version = "0.1.0"

// Capturer takes viewport screenshots with a headless browser.
type Capturer struct {
	Options *Options
}

// Options contains options for the capturer.
type Options struct {
	ViewportWidth  int    // width of the emulated viewport (pixels)
	ViewportHeight int    // height of the emulated viewport (pixels)
	Timeout        int    // timeout for the whole capture (seconds)
	Headless       bool   // run the browser in headless mode
	UserAgent      string // user agent to use, browser default if empty
	ExecPath       string // browser binary, discovered on PATH if empty
	Verbose        bool   // verbose logging
}

// DefaultOptions returns default options: a 375x667 viewport at device
// scale factor 1, headless.
func DefaultOptions() *Options {
	return &Options{
		ViewportWidth:  375,
		ViewportHeight: 667,
		Timeout:        30,
		Headless:       true,
	}
}

// New returns a capturer with default options.
func New() *Capturer {
	return &Capturer{Options: DefaultOptions()}
}

// NewWithOptions returns a capturer with the specified options.
func NewWithOptions(options *Options) *Capturer {
	if options.Verbose {
		log.SetLevel(log.DebugLevel)
	}
	return &Capturer{Options: options}
}

// allocatorFlags returns chromedp.ExecAllocatorOptions based on the
// capturer's options.
func (c *Capturer) allocatorFlags() []chromedp.ExecAllocatorOption {
	var flags []chromedp.ExecAllocatorOption

	if c.Options.Headless {
		flags = append(flags, chromedp.Flag("headless", true))
	}

	if c.Options.UserAgent != "" {
		flags = append(flags, chromedp.UserAgent(c.Options.UserAgent))
	}

	// Point chromedp at an explicit binary when given one, otherwise
	// fall back to whatever browser is installed on the system.
	if c.Options.ExecPath != "" {
		flags = append(flags, chromedp.ExecPath(c.Options.ExecPath))
	} else if path, found := launcher.LookPath(); found {
		log.Debugf("using browser binary at %s", path)
		flags = append(flags, chromedp.ExecPath(path))
	}

	return flags
}
