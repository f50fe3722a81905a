//go:build unix

package term

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/weftui/weft/pkg/sys"
)

const (
	enterAltScreen = "\033[?1049h"
	exitAltScreen  = "\033[?1049l"

	// Buffer size of the internal event channel. The value is chosen for no
	// particular reason.
	eventChSize = 128
)

// NewDriver creates a Driver for a real Unix terminal, reading input from in
// and writing output to out.
func NewDriver(in, out *os.File) Driver {
	return &unixDriver{in: in, out: out, writer: NewWriter(out)}
}

// StdDriver returns a Driver on the process's stdin and stderr.
func StdDriver() Driver {
	return NewDriver(os.Stdin, os.Stderr)
}

type readResult struct {
	event Event
	err   error
}

type unixDriver struct {
	in     *os.File
	out    *os.File
	writer Writer

	// Guards fps.
	mutex sync.Mutex
	fps   int

	events chan readResult
	done   chan struct{}
	reader fileReader
	sigCh  chan os.Signal
	wg     sync.WaitGroup
}

func (d *unixDriver) Setup() (func(), error) {
	if !sys.IsATTY(d.in.Fd()) {
		return nil, fmt.Errorf("setup terminal: %s is not a terminal", d.in.Name())
	}
	savedTermios, err := term.MakeRaw(int(d.in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("setup terminal: %w", err)
	}
	fmt.Fprint(d.out, enterAltScreen, hideCursor)

	reader, err := newFileReader(d.in)
	if err != nil {
		term.Restore(int(d.in.Fd()), savedTermios)
		fmt.Fprint(d.out, exitAltScreen, showCursor)
		return nil, fmt.Errorf("setup terminal: %w", err)
	}
	d.reader = reader
	d.events = make(chan readResult, eventChSize)
	d.done = make(chan struct{})

	deliver := func(res readResult) bool {
		select {
		case d.events <- res:
			return true
		case <-d.done:
			return false
		}
	}

	// Decode input in the background. Events are consumed one at a time by
	// ReadEvent.
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for {
			event, err := readEvent(reader)
			if err == ErrStopped {
				return
			}
			if !deliver(readResult{event, err}) {
				return
			}
			if err != nil && !IsReadErrorRecoverable(err) {
				return
			}
		}
	}()

	// Turn SIGWINCH into resize events.
	d.sigCh = make(chan os.Signal, 32)
	signal.Notify(d.sigCh, sys.SIGWINCH)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		for range d.sigCh {
			if !deliver(readResult{ResizeEvent{}, nil}) {
				return
			}
		}
	}()

	var once sync.Once
	restore := func() {
		once.Do(func() {
			close(d.done)
			signal.Stop(d.sigCh)
			close(d.sigCh)
			reader.Stop()
			reader.Close()
			d.wg.Wait()
			fmt.Fprint(d.out, exitAltScreen, showCursor)
			if err := term.Restore(int(d.in.Fd()), savedTermios); err != nil {
				logger.Println("failed to restore terminal:", err)
			}
		})
	}
	return restore, nil
}

func (d *unixDriver) Size() (width, height int) {
	row, col := sys.WinSize(d.in)
	return col, row
}

func (d *unixDriver) ReadEvent() (Event, error) {
	d.mutex.Lock()
	fps := d.fps
	d.mutex.Unlock()

	if fps <= 0 {
		select {
		case res := <-d.events:
			return res.event, res.err
		case <-d.done:
			return nil, ErrStopped
		}
	}
	select {
	case res := <-d.events:
		return res.event, res.err
	case <-d.done:
		return nil, ErrStopped
	case <-time.After(time.Second / time.Duration(fps)):
		return TickEvent{}, nil
	}
}

func (d *unixDriver) WriteBuffer(buf *Buffer) error {
	return d.writer.UpdateBuffer(buf, false)
}

func (d *unixDriver) ClearScreen() {
	d.writer.ClearScreen()
}

func (d *unixDriver) SetRefreshRate(fps int) {
	if fps < 0 {
		fps = 0
	}
	if fps > MaxRefreshRate {
		fps = MaxRefreshRate
	}
	d.mutex.Lock()
	d.fps = fps
	d.mutex.Unlock()
}
