//go:build unix

package sys

import (
	"os"

	"golang.org/x/sys/unix"
)

// SIGWINCH is the window size change signal.
const SIGWINCH = unix.SIGWINCH

// WinSize queries the size of the terminal referenced by the given file.
func WinSize(file *os.File) (row, col int) {
	fd := int(file.Fd())
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return -1, -1
	}

	// Pick up a reasonable value for row and col if they equal zero in
	// special cases, e.g. a serial console.
	if ws.Col == 0 {
		ws.Col = 80
	}
	if ws.Row == 0 {
		ws.Row = 24
	}

	return int(ws.Row), int(ws.Col)
}
