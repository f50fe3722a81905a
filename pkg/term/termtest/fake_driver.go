// Package termtest provides a scripted terminal driver for use in tests.
package termtest

import (
	"sync"
	"testing"
	"time"

	"github.com/weftui/weft/pkg/term"
)

const (
	// Maximum number of buffer updates FakeDriver expects to see.
	fakeDriverBufferUpdates = 4096
	// Maximum number of events FakeDriver produces.
	fakeDriverEvents = 4096
)

// An implementation of the term.Driver interface that is useful in tests.
type fakeDriver struct {
	setup func() (func(), error)
	// Channel that ReadEvent reads from. Can be used to inject events.
	eventCh chan term.Event
	// Whether eventCh has been closed.
	eventChClosed bool
	// Mutex for synchronizing writing and closing eventCh.
	eventChMutex sync.Mutex
	// Channel for publishing updates of the screen buffer.
	bufCh chan *term.Buffer
	// Records history of the screen buffer.
	bufs []*term.Buffer
	// Mutex for guarding bufs.
	bufMutex sync.RWMutex
	// Number of times Setup has been called.
	setupCalls int
	// Number of times the restore function from Setup has been called.
	restoreCalls int
	// Number of times the screen has been cleared, incremented in
	// ClearScreen.
	cleared int
	// Last argument to SetRefreshRate, after clamping.
	fps int

	sizeMutex sync.RWMutex
	// Predefined sizes.
	width, height int
}

// Initial size of the fake driver's screen.
const (
	FakeDriverWidth  = 50
	FakeDriverHeight = 20
)

// NewFakeDriver creates a new fake driver and a handle for controlling it.
// The initial size of the screen is FakeDriverWidth and FakeDriverHeight.
func NewFakeDriver() (term.Driver, DriverCtrl) {
	d := &fakeDriver{
		eventCh: make(chan term.Event, fakeDriverEvents),
		bufCh:   make(chan *term.Buffer, fakeDriverBufferUpdates),
		width:   FakeDriverWidth, height: FakeDriverHeight,
	}
	return d, DriverCtrl{d}
}

// Delegates to the setup function specified using the SetSetup method of
// DriverCtrl, or returns a function counting restores and a nil error.
func (d *fakeDriver) Setup() (func(), error) {
	d.setupCalls++
	if d.setup != nil {
		return d.setup()
	}
	return func() { d.restoreCalls++ }, nil
}

// Returns the size specified by using the SetSize method of DriverCtrl.
func (d *fakeDriver) Size() (w, h int) {
	d.sizeMutex.RLock()
	defer d.sizeMutex.RUnlock()
	return d.width, d.height
}

// Returns the next event from d.eventCh.
func (d *fakeDriver) ReadEvent() (term.Event, error) {
	event, ok := <-d.eventCh
	if !ok {
		return nil, term.ErrStopped
	}
	return event, nil
}

// WriteBuffer records a new buffer, sending it to the buffer channel and
// appending it to the buffer history.
func (d *fakeDriver) WriteBuffer(buf *term.Buffer) error {
	d.bufMutex.Lock()
	defer d.bufMutex.Unlock()
	d.bufs = append(d.bufs, buf)
	d.bufCh <- buf
	return nil
}

func (d *fakeDriver) ClearScreen() {
	d.cleared++
}

func (d *fakeDriver) SetRefreshRate(fps int) {
	if fps < 0 {
		fps = 0
	} else if fps > term.MaxRefreshRate {
		fps = term.MaxRefreshRate
	}
	d.fps = fps
}

// DriverCtrl is a handle for controlling a fake driver.
type DriverCtrl struct{ *fakeDriver }

// GetDriverCtrl takes a term.Driver and returns a DriverCtrl and true, if
// the driver is a fake driver. Otherwise it returns an invalid DriverCtrl
// and false.
func GetDriverCtrl(d term.Driver) (DriverCtrl, bool) {
	fake, ok := d.(*fakeDriver)
	return DriverCtrl{fake}, ok
}

// SetSetup sets the return values of the Setup method of the fake driver.
func (c DriverCtrl) SetSetup(restore func(), err error) {
	c.setup = func() (func(), error) {
		return restore, err
	}
}

// SetSize sets the size of the fake driver's screen.
func (c DriverCtrl) SetSize(w, h int) {
	c.sizeMutex.Lock()
	defer c.sizeMutex.Unlock()
	c.width, c.height = w, h
}

// Inject injects events into the fake driver.
func (c DriverCtrl) Inject(events ...term.Event) {
	c.eventChMutex.Lock()
	defer c.eventChMutex.Unlock()
	if c.eventChClosed {
		return
	}
	for _, event := range events {
		c.eventCh <- event
	}
}

// StopRead closes the event channel, making subsequent ReadEvent calls
// return term.ErrStopped.
func (c DriverCtrl) StopRead() {
	c.eventChMutex.Lock()
	defer c.eventChMutex.Unlock()
	if !c.eventChClosed {
		close(c.eventCh)
		c.eventChClosed = true
	}
}

// LastBuffer returns the last buffer written to the fake driver, or nil if
// no buffer has been written yet.
func (c DriverCtrl) LastBuffer() *term.Buffer {
	c.bufMutex.RLock()
	defer c.bufMutex.RUnlock()
	if len(c.bufs) == 0 {
		return nil
	}
	return c.bufs[len(c.bufs)-1]
}

// Buffers returns the history of buffers written to the fake driver.
func (c DriverCtrl) Buffers() []*term.Buffer {
	c.bufMutex.RLock()
	defer c.bufMutex.RUnlock()
	return append([]*term.Buffer(nil), c.bufs...)
}

// SetupCalls returns the number of times Setup has been called.
func (c DriverCtrl) SetupCalls() int { return c.setupCalls }

// RestoreCalls returns the number of times the restore function returned by
// Setup has been called.
func (c DriverCtrl) RestoreCalls() int { return c.restoreCalls }

// ScreenCleared returns the number of times ClearScreen has been called.
func (c DriverCtrl) ScreenCleared() int { return c.cleared }

// RefreshRate returns the last refresh rate set with SetRefreshRate.
func (c DriverCtrl) RefreshRate() int { return c.fps }

// TestBuffer verifies that a buffer matching b will be written within 100ms,
// and fails the test if it isn't.
func (c DriverCtrl) TestBuffer(t *testing.T, b *term.Buffer) {
	t.Helper()
	if !c.awaitBuffer(b) {
		t.Errorf("wanted buffer not shown")
		t.Logf("Wanted buffer: %s", b.TTYString())
		last := c.LastBuffer()
		if last == nil {
			t.Logf("No buffer shown")
		} else {
			t.Logf("Last buffer: %s", last.TTYString())
		}
	}
}

func (c DriverCtrl) awaitBuffer(want *term.Buffer) bool {
	if c.matchLastBuffer(want) {
		return true
	}
	timeout := time.After(100 * time.Millisecond)
	for {
		select {
		case <-c.bufCh:
			if c.matchLastBuffer(want) {
				return true
			}
		case <-timeout:
			return false
		}
	}
}

func (c DriverCtrl) matchLastBuffer(want *term.Buffer) bool {
	last := c.LastBuffer()
	return last != nil && last.TTYString() == want.TTYString()
}
