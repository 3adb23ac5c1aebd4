// Where: internal/infra/interaction/interaction.go
// What: Terminal detection for output decoration.
// Why: Decide emoji output without threading file descriptors through commands.
package interaction

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether the file refers to a terminal device.
var IsTerminal = func(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// IsTerminalWriter reports whether w is an *os.File attached to a terminal.
func IsTerminalWriter(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return IsTerminal(file)
}
