package cfurl

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/common-fate/cfurl/pkg/cfflags"
	"github.com/common-fate/cfurl/pkg/dash"
	"github.com/common-fate/cfurl/pkg/launcher"
	"github.com/common-fate/clio"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

func sectionFlag() cli.Flag {
	names := make([]string, 0, len(dash.SecuritySections))
	for n := range dash.SecuritySections {
		names = append(names, n)
	}
	sort.Strings(names)
	return &cli.StringFlag{Name: "section", Aliases: []string{"s"}, Usage: "Specific section: " + strings.Join(names, ", ")}
}

// destinationCommands builds one command per dashboard destination.
func destinationCommands(opts *Opts) []*cli.Command {
	var commands []*cli.Command
	for _, spec := range dash.Commands {
		var flags []cli.Flag
		if spec.HasSection {
			flags = append(flags, sectionFlag())
		}
		commands = append(commands, &cli.Command{
			Name:      spec.Name,
			Aliases:   spec.Aliases,
			Usage:     spec.Usage,
			ArgsUsage: spec.ArgsUsage(),
			Flags:     flags,
			// flags are parsed by cfflags so they may follow the positional argument
			SkipFlagParsing: true,
			Action: destinationAction(spec, flags, opts),
		})
	}
	return commands
}

func destinationAction(spec dash.Spec, flags []cli.Flag, opts *Opts) cli.ActionFunc {
	return func(c *cli.Context) error {
		allFlags, err := cfflags.New(spec.Name, flags, c)
		if errors.Is(err, flag.ErrHelp) {
			cli.HelpPrinter(c.App.Writer, cli.CommandHelpTemplate, c.Command)
			return nil
		}
		if err != nil {
			return commandUsageError(c, err)
		}

		var section *string
		if allFlags.IsSet("section") {
			s := allFlags.String("section")
			section = &s
			if _, ok := dash.SecuritySections[s]; !ok {
				clio.Debugf("unrecognised security section %q, opening the security overview", s)
			}
		}

		cmd, err := dash.Parse(spec, allFlags.Positionals(), section)
		if err != nil {
			return commandUsageError(c, err)
		}

		u := dash.Resolve(cmd)
		clio.Debugw("resolved destination", "command", spec.Name, "url", u)

		if c.Bool("print") {
			fmt.Fprintln(c.App.Writer, u)
			return nil
		}

		l := selectLauncher(c, opts)
		clio.Debugw("opening destination", "url", u, "launcher", fmt.Sprintf("%T", l))
		if err := l.Launch(u); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintln(c.App.Writer, "✓ Opened")
		return nil
	}
}

func selectLauncher(c *cli.Context, opts *Opts) launcher.Launcher {
	var l launcher.Launcher = launcher.Open{}
	if tmpl := c.String("browser-command"); tmpl != "" {
		l = launcher.Command{Template: tmpl}
	}
	if opts.Launcher != nil {
		l = opts.Launcher
	}

	if opts.DisableProgress || c.Bool("no-spinner") || !isTerminal(os.Stderr.Fd()) {
		return l
	}
	return launcher.WithProgress(l, launcher.ProgressOpts{
		Writer:  opts.Stderr,
		Message: "Opening in your browser...",
		Hold:    progressHold,
	})
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
