package cfurl

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/common-fate/cfurl/internal/build"
	"github.com/common-fate/cfurl/pkg/banners"
	"github.com/common-fate/cfurl/pkg/launcher"
	"github.com/common-fate/clio"
	"github.com/urfave/cli/v2"
)

// progressHold is how long the spinner stays up after the browser was asked to open.
const progressHold = time.Second

type Opts struct {
	// Launcher overrides the launcher selected from the global flags.
	Launcher launcher.Launcher
	// DisableProgress turns the spinner off regardless of flags.
	DisableProgress bool

	Stdout io.Writer
	Stderr io.Writer
}

func GetCliApp(opts Opts) *cli.App {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprint(c.App.Writer, banners.WithVersion())
	}

	flags := []cli.Flag{
		&cli.BoolFlag{Name: "verbose", Usage: "Log debug messages"},
		&cli.BoolFlag{Name: "print", Aliases: []string{"p"}, Usage: "Print the URL instead of opening it"},
		&cli.BoolFlag{Name: "no-spinner", Usage: "Don't show a progress spinner while the browser opens"},
		&cli.StringFlag{Name: "browser-command", Usage: "Command template used to open the URL, e.g. 'firefox --new-tab {{.URL}}'"},
	}

	commands := destinationCommands(&opts)
	commands = append(commands, &ListCommand)

	app := &cli.App{
		Flags:                flags,
		Name:                 "cfurl",
		Usage:                "Quick access to Cloudflare dashboard pages",
		UsageText:            "cfurl [global options] command [command options] [arguments...]",
		Version:              build.Version,
		HideVersion:          false,
		Commands:             commands,
		Writer:               opts.Stdout,
		ErrWriter:            opts.Stderr,
		EnableBashCompletion: true,
		// errors are turned into exit codes by Run
		ExitErrHandler: func(c *cli.Context, err error) {},
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return appUsageError(c, err)
		},
		Before: func(c *cli.Context) error {
			clio.SetLevelFromEnv("CFURL_LOG")
			if c.Bool("verbose") {
				clio.SetLevelFromString("debug")
			}
			return nil
		},
		Action: func(c *cli.Context) error {
			if !c.Args().Present() {
				return appUsageError(c, errNoCommand)
			}
			return unknownCommand(c, c.Args().First())
		},
	}

	return app
}
