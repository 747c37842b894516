package cfurl

import (
	"errors"
	"fmt"
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/urfave/cli/v2"
)

// exitUsage is the exit code for a malformed invocation.
const exitUsage = 2

var errNoCommand = errors.New("no command specified")

// appUsageError prints err and the app help to the error stream.
func appUsageError(c *cli.Context, err error) error {
	fmt.Fprintf(c.App.ErrWriter, "Incorrect Usage: %s\n\n", err)
	cli.HelpPrinter(c.App.ErrWriter, cli.AppHelpTemplate, c.App)
	return cli.Exit("", exitUsage)
}

// commandUsageError prints err and the help for the current command to the error stream.
func commandUsageError(c *cli.Context, err error) error {
	fmt.Fprintf(c.App.ErrWriter, "Incorrect Usage: %s\n\n", err)
	cli.HelpPrinter(c.App.ErrWriter, cli.CommandHelpTemplate, c.Command)
	return cli.Exit("", exitUsage)
}

func unknownCommand(c *cli.Context, name string) error {
	fmt.Fprintf(c.App.ErrWriter, "'%s' is not a cfurl command.\n", name)
	if s := suggestCommand(name, c.App.VisibleCommands()); s != "" {
		fmt.Fprintf(c.App.ErrWriter, "Did you mean '%s'?\n", s)
	}
	fmt.Fprintln(c.App.ErrWriter, "Run 'cfurl list' to see every destination.")
	return cli.Exit("", exitUsage)
}

// maxSuggestDistance bounds the edit distance of a suggestion that isn't a fuzzy match.
const maxSuggestDistance = 2

// suggestCommand returns the command name closest to name, or "" if nothing is close.
func suggestCommand(name string, commands []*cli.Command) string {
	var targets []string
	for _, cmd := range commands {
		targets = append(targets, cmd.Names()...)
	}

	// prefer names which contain the input, e.g. 'wrkrs' -> 'workers'
	ranks := fuzzy.RankFindFold(name, targets)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", maxSuggestDistance+1
	for _, t := range targets {
		if d := fuzzy.LevenshteinDistance(name, t); d < bestDistance {
			best, bestDistance = t, d
		}
	}
	return best
}
