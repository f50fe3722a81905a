// Package term provides the interface to the terminal: input events, the
// screen buffer, and the driver contract that concrete backends satisfy.
package term

import (
	"errors"
	"fmt"
)

// Driver is the contract between the toolkit and a concrete terminal
// backend. The application core never touches raw terminal primitives; it is
// polymorphic over any implementation of this interface.
type Driver interface {
	// Setup puts the terminal in the mode suitable for the toolkit, and
	// returns a function to restore the original mode. The caller should
	// call the returned function exactly once, typically in a defer, so that
	// the terminal is restored even on abnormal termination.
	Setup() (restore func(), err error)

	// Size returns the size of the terminal, in character cells.
	Size() (width, height int)

	// ReadEvent reads a single event. It blocks until input is available,
	// unless a refresh rate has been configured with SetRefreshRate, in
	// which case it returns a TickEvent after one frame interval without
	// input. Errors for which IsReadErrorRecoverable returns true may be
	// ignored by the caller; any other error is fatal.
	ReadEvent() (Event, error)

	// WriteBuffer updates the terminal display to reflect the given buffer
	// and flushes the output.
	WriteBuffer(buf *Buffer) error

	// ClearScreen erases the entire terminal screen, forcing the next
	// WriteBuffer to repaint every cell. It is used after a resize, when
	// the terminal may hold stale content.
	ClearScreen()

	// SetRefreshRate sets the refresh rate in frames per second, within
	// [0, 1000]. When the rate is nonzero, ReadEvent returns synthetic
	// TickEvent values between inputs. A rate of 0 (the default) disables
	// ticking. Values outside the range are clamped.
	SetRefreshRate(fps int)
}

// MaxRefreshRate is the upper bound for Driver.SetRefreshRate.
const MaxRefreshRate = 1000

// ErrStopped is returned by a Driver whose input has been shut down by the
// restore function returned from Setup.
var ErrStopped = errors.New("stopped")

var errTimeout = errors.New("timed out")

type seqError struct {
	msg string
	seq string
}

func (err seqError) Error() string {
	return fmt.Sprintf("%s: %q", err.msg, err.seq)
}

// IsReadErrorRecoverable returns whether an error returned by a Driver's
// ReadEvent is recoverable, i.e. whether reading may continue afterwards.
func IsReadErrorRecoverable(err error) bool {
	var serr seqError
	if errors.As(err, &serr) {
		return true
	}
	return errors.Is(err, errTimeout)
}
