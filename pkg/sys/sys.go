// Package sys provides the small set of system utilities needed by the
// terminal driver.
package sys

import (
	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file descriptor refers to a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
