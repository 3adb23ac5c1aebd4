// Where: internal/command/output.go
// What: Output decoration helpers for command adapters.
// Why: Decide emoji usage once per invocation.
package command

import (
	"errors"
	"io"
	"strings"

	"github.com/poruru-code/m2settings/internal/constants"
	"github.com/poruru-code/m2settings/internal/infra/envsource"
	"github.com/poruru-code/m2settings/internal/infra/interaction"
)

var errEmojiFlagConflict = errors.New("--emoji and --no-emoji cannot be used together")

// resolveEmojiEnabled applies, in order: explicit flags, NO_EMOJI, TERM=dumb,
// then terminal detection on the diagnostic stream.
func resolveEmojiEnabled(errOut io.Writer, flags CLI, env envsource.View) (bool, error) {
	if flags.Emoji && flags.NoEmoji {
		return false, errEmojiFlagConflict
	}
	if flags.Emoji {
		return true, nil
	}
	if flags.NoEmoji {
		return false, nil
	}
	if strings.TrimSpace(envsource.Value(env, constants.EnvNoEmoji, "")) != "" {
		return false, nil
	}
	term := strings.ToLower(strings.TrimSpace(envsource.Value(env, constants.EnvTerm, "")))
	if term == "dumb" {
		return false, nil
	}
	return interaction.IsTerminalWriter(errOut), nil
}
