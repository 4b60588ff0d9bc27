// Command gmapi geocodes addresses, prints Static Maps URLs and renders the
// map widget from the command line, using the same settings as the library.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-gmapi/pkg/config"
	"github.com/goliatone/go-gmapi/pkg/logging"
)

type cliArgs struct {
	Config  string   `arg:"--config,env:GMAPI_CONFIG" help:"settings file (YAML or JSON)"`
	EnvFile []string `arg:"--env-file,separate" help:".env file to load, repeatable"`

	Geocode   *geocodeCmd   `arg:"subcommand:geocode" help:"look up an address or coordinates"`
	StaticMap *staticMapCmd `arg:"subcommand:staticmap" help:"print a Static Maps image URL"`
	Widget    *widgetCmd    `arg:"subcommand:widget" help:"render the map widget HTML"`
}

func (cliArgs) Description() string {
	return "gmapi builds Google Maps markup and runs geocoding lookups.\n"
}

type env struct {
	ctx      context.Context
	settings config.Settings
	logger   zerolog.Logger
	stdout   io.Writer
	stderr   io.Writer
	prompt   prompter
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr, surveyPrompter{})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer, prompt prompter) int {
	var args cliArgs
	parser, err := arg.NewParser(arg.Config{Program: "gmapi"}, &args)
	if err != nil {
		fmt.Fprintf(stderr, "gmapi: %v\n", err)
		return 2
	}
	if err := parser.Parse(argv); err != nil {
		if errors.Is(err, arg.ErrHelp) {
			parser.WriteHelp(stdout)
			return 0
		}
		parser.WriteUsage(stderr)
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}
	if parser.Subcommand() == nil {
		parser.WriteHelp(stderr)
		return 2
	}

	var opts []config.Option
	if args.Config != "" {
		opts = append(opts, config.WithFile(args.Config))
	}
	if len(args.EnvFile) > 0 {
		opts = append(opts, config.WithEnvFiles(args.EnvFile...))
	}
	settings, err := config.Load(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "gmapi: %v\n", err)
		return 1
	}
	logger, err := logging.NewWriter(stderr, settings.Log)
	if err != nil {
		fmt.Fprintf(stderr, "gmapi: %v\n", err)
		return 1
	}

	e := &env{ctx: ctx, settings: settings, logger: logger, stdout: stdout, stderr: stderr, prompt: prompt}
	switch {
	case args.Geocode != nil:
		err = args.Geocode.run(e)
	case args.StaticMap != nil:
		err = args.StaticMap.run(e)
	case args.Widget != nil:
		err = args.Widget.run(e)
	}
	if err != nil {
		var coded exitError
		if errors.As(err, &coded) {
			fmt.Fprintf(stderr, "gmapi: %v\n", coded.err)
			return coded.code
		}
		logger.Error().Err(err).Msg("command failed")
		return 1
	}
	return 0
}

// exitError reports an expected failure with a specific exit code and no log
// entry.
type exitError struct {
	code int
	err  error
}

func (e exitError) Error() string { return e.err.Error() }

func (e exitError) Unwrap() error { return e.err }

func usageError(format string, args ...any) error {
	return exitError{code: 2, err: fmt.Errorf(format, args...)}
}
