package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

const AppName = "benchgate"

type App struct {
	logger zerolog.Logger
	cli    *cli.App
}

func New() *App {

	// Set default log level to info
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger :=
		log.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339Nano,
		})

	app := &App{
		logger: logger,
		cli: &cli.App{
			Name:  AppName,
			Usage: "Gate CI on benchmark regressions against a versioned baseline",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "verbose",
					Usage: "Enable verbose (debug) logging",
				},
			},
			Before: func(ctx *cli.Context) error {
				if ctx.Bool("verbose") {
					zerolog.SetGlobalLevel(zerolog.DebugLevel)
				}
				return nil
			},
		},
	}
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "measure",
		Usage:  "Benchmark all projects and write hyperfine exports for a new baseline",
		Action: app.measure,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "projects-dir",
				Usage:    "Directory containing one subdirectory per benchmarked project",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "out",
				Usage:    "Directory to write measurement exports to",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "runs",
				Usage: "Number of timed runs per command",
				Value: 10,
			},
			commandFlag(),
		},
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "compare",
		Usage:  "Benchmark all projects and compare against the latest baseline",
		Action: app.compare,
		Description: `Benchmark all projects and compare against the latest baseline.

Each project is timed once per benchmark command. The sample is joined
against the highest-versioned baseline in --baseline-dir and flagged
as a regression when it exceeds mean + 3 standard deviations. The full
list of calculations is printed to stdout as JSON; the exit code is
non-zero when any calculation regressed.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "baseline-dir",
				Usage:    "Directory containing baseline JSON files, one per release",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "projects-dir",
				Usage:    "Directory containing one subdirectory per benchmarked project",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "tmp-dir",
				Usage: "Directory for intermediate hyperfine exports",
				Value: os.TempDir(),
			},
			commandFlag(),
		},
	})
	app.cli.Commands = append(app.cli.Commands, &cli.Command{
		Name:   "list",
		Usage:  "List previous comparison runs",
		Action: app.list,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "limit",
				Aliases: []string{"n"},
				Usage:   "Limit number of results (default: 20)",
				Value:   20,
			},
		},
	})
	return app
}

func commandFlag() cli.Flag {
	return &cli.StringSliceFlag{
		Name:    "command",
		Aliases: []string{"c"},
		Usage:   "Benchmark command as name=<shell command>, '{dir}' expands to the project directory (can be specified multiple times)",
	}
}

func (a *App) Run(args []string) error {
	return a.cli.Run(args)
}

// SetVersion sets the version information for the CLI application
func (a *App) SetVersion(version, commit, date string) {
	a.cli.Version = version
	if commit != "none" && commit != "" {
		a.cli.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version, commit[:8], date)
	}
}
