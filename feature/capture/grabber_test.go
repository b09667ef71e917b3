package capture

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrabber(t *testing.T) {
	g, err := NewGrabber(BackendScreen)
	require.NoError(t, err)
	assert.IsType(t, ScreenGrabber{}, g)

	g, err = NewGrabber(BackendSynthetic)
	require.NoError(t, err)
	assert.IsType(t, SyntheticGrabber{}, g)

	_, err = NewGrabber("webcam")
	assert.ErrorContains(t, err, "webcam")
}

func TestSyntheticGrabber(t *testing.T) {
	frame, err := SyntheticGrabber{}.Grab(context.Background())
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(frame.PNG))
	require.NoError(t, err)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 400, frame.Height)
	assert.False(t, frame.CapturedAt.IsZero())
}

func TestSyntheticGrabber_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := SyntheticGrabber{}.Grab(ctx)
	assert.ErrorIs(t, err, ErrCaptureFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEncodeFrame(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	frame, err := encodeFrame(image.NewGray(image.Rect(0, 0, 3, 2)), at)
	require.NoError(t, err)
	assert.Equal(t, at, frame.CapturedAt)
	assert.Equal(t, 3, frame.Width)
	assert.Equal(t, 2, frame.Height)

	_, err = encodeFrame(nil, at)
	assert.ErrorIs(t, err, ErrCaptureFailed)
}

func TestErrNoDisplayIsCaptureFailure(t *testing.T) {
	assert.ErrorIs(t, ErrNoDisplay, ErrCaptureFailed)
}
