// Where: internal/infra/ui/streams.go
// What: UserInterface split across stdout and stderr.
// Why: Keep stdout limited to command results so callers can capture it.
package ui

import "io"

// UserInterface exposes the output helpers used by commands and usecases.
type UserInterface interface {
	// Info writes a bare line to the result stream.
	Info(msg string)
	// Warn and Error write decorated lines to the diagnostic stream.
	Warn(msg string)
	Error(msg string)
}

// NewStreams returns a UserInterface writing results to out and diagnostics
// to errOut.
func NewStreams(out, errOut io.Writer, emojiEnabled bool) UserInterface {
	return streamUI{
		results:     NewWithEmoji(out, false),
		diagnostics: NewWithEmoji(errOut, emojiEnabled),
	}
}

type streamUI struct {
	results     *Console
	diagnostics *Console
}

func (s streamUI) Info(msg string) {
	s.results.Info(msg)
}

func (s streamUI) Warn(msg string) {
	s.diagnostics.Warn(msg)
}

func (s streamUI) Error(msg string) {
	s.diagnostics.Error(msg)
}
