package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vk/surfgrid/internal/console"
	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/export"
	"github.com/vk/surfgrid/internal/preview"
	"github.com/vk/surfgrid/internal/scene"
)

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "command", a.config.Command)

	var err error
	switch a.config.Command {
	case CommandRender:
		err = a.runRender(ctx)
	case CommandRanges:
		err = a.runRanges(ctx)
	case CommandServe:
		err = a.runServe(ctx)
	case CommandConsole:
		err = a.runConsole(ctx)
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}
	if err != nil {
		return err
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runRender builds the scene once and writes the geometry snapshot.
func (a *App) runRender(ctx context.Context) error {
	doc, err := scene.LoadPathWith(ctx, a.config.ScenePath, a.sceneOptions())
	if err != nil {
		return err
	}

	a.logger.Info("🚀 Building scene...", "path", a.config.ScenePath)
	snap := export.Snapshot(ctx, doc)

	if a.config.OutputPath == "" || a.config.OutputPath == "-" {
		if err := export.Write(a.outW, snap); err != nil {
			return err
		}
	} else if err := export.WriteFile(ctx, a.config.OutputPath, snap); err != nil {
		return err
	}

	a.logger.Info("🏁 Render finished.", "axes", len(snap.Axes), "plots", len(snap.Plots))
	return nil
}

// runRanges resolves the axis ranges and prints one line per axis.
func (a *App) runRanges(ctx context.Context) error {
	doc, err := scene.LoadPathWith(ctx, a.config.ScenePath, a.sceneOptions())
	if err != nil {
		return err
	}
	doc.ResolveRanges(ctx)

	for _, ax := range doc.Axes() {
		min, max := ax.PlottedRange()
		scale := "linear"
		if ax.Log() {
			scale = "log"
		}
		label := ""
		if ax.Label() != "" {
			label = "  " + ax.Label()
		}
		fmt.Fprintf(a.outW, "%-10s %-7s [%g, %g]%s\n", ax.Name(), scale, min, max, label)
	}
	return nil
}

// runServe starts the preview server and blocks until interrupted.
func (a *App) runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := preview.New(preview.Config{
		Addr:      a.config.ListenAddr,
		ScenePath: a.config.ScenePath,
		Watch:     a.config.Watch,
		StepsCap:  a.config.StepsCap,
	})
	return srv.Run(ctx)
}

// sceneOptions maps the app configuration onto scene construction options.
func (a *App) sceneOptions() scene.Options {
	return scene.Options{StepsCap: a.config.StepsCap}
}

// runConsole hands the terminal to the interactive prompt.
func (a *App) runConsole(ctx context.Context) error {
	return console.New(a.config.ScenePath, a.outW).Run(ctx)
}
