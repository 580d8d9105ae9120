package app

import (
	"errors"
	"fmt"
)

// Command names the App knows how to run.
const (
	CommandRender  = "render"
	CommandRanges  = "ranges"
	CommandServe   = "serve"
	CommandConsole = "console"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command   string
	ScenePath string // hcl file or directory

	OutputPath string // render: target file, empty writes to standard output
	ListenAddr string // serve: listen address
	Watch      bool   // serve: rebuild when scene files change
	StepsCap   int    // clamp plot sampling steps, 0 leaves them alone

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandRender, CommandRanges, CommandServe, CommandConsole:
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	// The console can start without a scene; every other command needs one.
	if cfg.ScenePath == "" && cfg.Command != CommandConsole {
		return nil, errors.New("ScenePath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
