package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/surfgrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usage prints the top-level help text.
func usage(output io.Writer) {
	fmt.Fprint(output, `
Surfgrid - a 3D function plotting engine driven by HCL scene files.

Usage:
  surfgrid <command> [options] [SCENE_PATH]
  surfgrid [options] SCENE_PATH

Commands:
  render    Build the scene once and write the geometry snapshot (the default)
  ranges    Resolve and print the axis ranges of a scene
  serve     Push the scene to live viewers over socket.io
  console   Start an interactive expression console

Arguments:
  SCENE_PATH
    Path to a single .hcl scene file or a directory containing .hcl files.

Run 'surfgrid <command> -h' for the options of one command.
`)
}

// Parse processes command-line arguments. It returns a populated app config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	if len(args) == 0 {
		usage(output)
		return nil, true, nil
	}

	command := args[0]
	rest := args[1:]
	switch command {
	case "help", "-h", "--help":
		usage(output)
		return nil, true, nil
	case app.CommandRender, app.CommandRanges, app.CommandServe, app.CommandConsole:
	default:
		// Any other first argument is a scene path or a flag: render is
		// the default command.
		command = app.CommandRender
		rest = args
	}

	flagSet := flag.NewFlagSet("surfgrid "+command, flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprintf(output, `
Usage:
  surfgrid %s [options] [SCENE_PATH]

Options:
`, command)
		flagSet.PrintDefaults()
	}

	var scenePath string
	flagSet.StringVar(&scenePath, "scene", "", "Path to the scene file or directory.")
	flagSet.StringVar(&scenePath, "s", "", "Shorthand for -scene.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	var stepsCapFlag *int
	if command != app.CommandConsole {
		stepsCapFlag = flagSet.Int("steps-cap", 0, "Clamp line_steps and surface_steps of every plot. 0 leaves them alone.")
	}

	var outputFlag *string
	var listenFlag *string
	var watchFlag *bool
	switch command {
	case app.CommandRender:
		outputFlag = flagSet.String("o", "", "Output file for the snapshot. '.gz' paths are compressed; empty writes to stdout.")
	case app.CommandServe:
		listenFlag = flagSet.String("listen", ":8077", "Listen address for the preview server.")
		watchFlag = flagSet.Bool("watch", true, "Rebuild and push when scene files change.")
	}

	if err := flagSet.Parse(rest); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := scenePath
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Scene path determined.", "path", path)

	if path == "" && command != app.CommandConsole {
		slog.Debug("No scene path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if _, err := app.ParseLevel(logLevel); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if stepsCapFlag != nil && *stepsCapFlag != 0 && *stepsCapFlag < 3 {
		return nil, false, &ExitError{Code: 2, Message: "invalid steps-cap: must be 0 or at least 3"}
	}
	slog.Debug("CLI parameter validation complete.")

	cfg := app.Config{
		Command:   command,
		ScenePath: path,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	}
	if stepsCapFlag != nil {
		cfg.StepsCap = *stepsCapFlag
	}
	if outputFlag != nil {
		cfg.OutputPath = *outputFlag
	}
	if listenFlag != nil {
		cfg.ListenAddr = *listenFlag
	}
	if watchFlag != nil {
		cfg.Watch = *watchFlag
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "command", command)
	return config, false, nil
}
