package command

import (
	"bytes"
	"errors"
	"testing"

	"github.com/poruru-code/m2settings/internal/infra/envsource"
	"github.com/poruru-code/m2settings/internal/infra/ui"
)

var errTestError = errors.New("test error")

func TestExitWithError(t *testing.T) {
	var out, errOut bytes.Buffer
	code := exitWithError(ui.NewStreams(&out, &errOut, true), errTestError)

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if got, want := errOut.String(), "✗ test error\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
	if out.Len() != 0 {
		t.Errorf("stdout should stay empty, got %q", out.String())
	}
}

func TestHandleParseError_GenericError(t *testing.T) {
	var out, errOut bytes.Buffer
	code := handleParseError(errors.New("some other error"), Dependencies{
		Out:    &out,
		ErrOut: &errOut,
		Env:    envsource.Map(map[string]string{"NO_EMOJI": "1"}),
	})

	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if got, want := errOut.String(), "[error] some other error\n"; got != want {
		t.Errorf("stderr = %q, want %q", got, want)
	}
}

func TestResolveEmojiEnabled(t *testing.T) {
	tests := []struct {
		name    string
		flags   CLI
		env     map[string]string
		want    bool
		wantErr bool
	}{
		{name: "conflict", flags: CLI{Emoji: true, NoEmoji: true}, wantErr: true},
		{name: "forced on", flags: CLI{Emoji: true}, env: map[string]string{"NO_EMOJI": "1"}, want: true},
		{name: "forced off", flags: CLI{NoEmoji: true}, want: false},
		{name: "NO_EMOJI", env: map[string]string{"NO_EMOJI": "1"}, want: false},
		{name: "dumb terminal", env: map[string]string{"TERM": "dumb"}, want: false},
		{name: "non-terminal writer", env: map[string]string{"TERM": "xterm"}, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveEmojiEnabled(&bytes.Buffer{}, tc.flags, envsource.Map(tc.env))
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("emoji = %v, want %v", got, tc.want)
			}
		})
	}
}
