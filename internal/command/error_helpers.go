// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep failure output and exit codes consistent across commands.
package command

import "github.com/poruru-code/m2settings/internal/infra/ui"

// exitWithError prints err on the diagnostic stream and returns exit code 1.
func exitWithError(output ui.UserInterface, err error) int {
	output.Error(err.Error())
	return 1
}
