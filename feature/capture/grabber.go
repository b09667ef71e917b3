package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"time"

	"github.com/kbinani/screenshot"
)

// Grabber captures the current display contents.
type Grabber interface {
	Grab(ctx context.Context) (Frame, error)
}

// Frame is one encoded capture.
type Frame struct {
	PNG        []byte
	CapturedAt time.Time
	Width      int
	Height     int
}

// NewGrabber returns the grabber for the configured backend.
func NewGrabber(backend string) (Grabber, error) {
	switch backend {
	case BackendScreen, "":
		return ScreenGrabber{}, nil
	case BackendSynthetic:
		return SyntheticGrabber{}, nil
	default:
		return nil, fmt.Errorf("unknown capture backend %q", backend)
	}
}

// ScreenGrabber captures the union of all active displays.
type ScreenGrabber struct{}

// Grab implements Grabber.
func (ScreenGrabber) Grab(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, captureError(err)
	}
	n := screenshot.NumActiveDisplays()
	if n <= 0 {
		return Frame{}, ErrNoDisplay
	}
	var bounds image.Rectangle
	for i := 0; i < n; i++ {
		bounds = bounds.Union(screenshot.GetDisplayBounds(i))
	}
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return Frame{}, captureError(fmt.Errorf("grab display: %w", err))
	}
	return encodeFrame(img, time.Now())
}

// SyntheticGrabber renders a generated gradient, for hosts without a display.
type SyntheticGrabber struct{}

// Grab implements Grabber.
func (SyntheticGrabber) Grab(ctx context.Context) (Frame, error) {
	if err := ctx.Err(); err != nil {
		return Frame{}, captureError(err)
	}
	const width, height = 640, 400
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	hue := uint8(rand.Intn(200) + 40)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: hue, G: uint8(x % 255), B: uint8(y % 255), A: 255})
		}
	}
	return encodeFrame(img, time.Now())
}

func encodeFrame(img image.Image, at time.Time) (Frame, error) {
	if img == nil {
		return Frame{}, captureError(errors.New("nil image"))
	}
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return Frame{}, captureError(fmt.Errorf("encode png: %w", err))
	}
	b := img.Bounds()
	return Frame{
		PNG:        buf.Bytes(),
		CapturedAt: at,
		Width:      b.Dx(),
		Height:     b.Dy(),
	}, nil
}
