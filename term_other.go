//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package taglist

import "github.com/pkg/errors"

// TerminalWidth is not supported on this platform.
func TerminalWidth(fd int) (int, error) {
	return 0, errors.New("taglist: terminal width not supported on this platform")
}
