package main

import (
	"context"
	"os"

	"devshot"

	"github.com/sirupsen/logrus"
)

// The development server and artifact path are fixed: the tool exists to
// verify one local UI, not to be a general screenshot utility.
const (
	targetURL  = "http://127.0.0.1:5173/"
	outputPath = "verification/verification.png"
)

var log = logrus.New()

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
}

func main() {
	capturer := devshot.New()

	log.Infof("devshot %s capturing %s at %dx%d",
		devshot.Version, targetURL,
		capturer.Options.ViewportWidth, capturer.Options.ViewportHeight)

	result, err := capturer.Capture(context.Background(), targetURL)
	if err != nil {
		log.Fatalf("capture failed: %v", err)
	}

	stamped, err := result.Image.Stamp(targetURL)
	if err != nil {
		log.Fatalf("could not stamp screenshot: %v", err)
	}
	result.Image = stamped

	if err := result.WriteFile(outputPath); err != nil {
		log.Fatalf("could not write screenshot: %v", err)
	}

	log.Infof("screenshot saved to %s", outputPath)
}
