package capture

import (
	"errors"
	"fmt"
)

var (
	// ErrCaptureFailed wraps every failure of the screen grab or PNG encode step.
	ErrCaptureFailed = errors.New("screenshot capture failed")
	// ErrNoDisplay reports that no active display could be found.
	ErrNoDisplay = fmt.Errorf("%w: no active display", ErrCaptureFailed)
	// ErrNoScreenshots is returned by Archive when the session holds no images.
	ErrNoScreenshots = errors.New("no screenshots available")
	// ErrHistoryDisabled is returned when session history is requested without a database.
	ErrHistoryDisabled = errors.New("capture session history is disabled")
)

// captureError makes sure err is recognisable as ErrCaptureFailed.
func captureError(err error) error {
	if errors.Is(err, ErrCaptureFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrCaptureFailed, err)
}
