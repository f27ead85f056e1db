//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package taglist

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// TerminalWidth returns the column count of the terminal on fd.
func TerminalWidth(fd int) (int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, errors.Wrap(err, "taglist: get window size")
	}
	return int(ws.Col), nil
}
