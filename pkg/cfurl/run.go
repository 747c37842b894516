package cfurl

import (
	"errors"
	"fmt"

	"github.com/common-fate/cfurl/pkg/launcher"
	"github.com/common-fate/clio"
	"github.com/common-fate/clio/clierr"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
)

// Run runs the app and returns the process exit code.
func Run(app *cli.App, args []string) int {
	err := app.Run(args)
	if err == nil {
		return 0
	}

	var launchErr *launcher.Error
	if errors.As(err, &launchErr) {
		color.New(color.FgRed).Fprintf(app.ErrWriter, "✗ Failed to open browser: %s\n", launchErr.Err)
		return 1
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(app.ErrWriter, msg)
		}
		return exitErr.ExitCode()
	}

	// if the error is an instance of clierr.PrintCLIErrorer then print the error accordingly
	if cliError, ok := err.(clierr.PrintCLIErrorer); ok {
		cliError.PrintCLIError()
	} else {
		clio.Error(err.Error())
	}
	return 1
}
