package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"folderswap/internal/adapters/desktop"
	"folderswap/internal/adapters/editor"
	"folderswap/internal/adapters/tui"
	"folderswap/internal/bootstrap"
	"folderswap/internal/config"
)

func main() {
	settings := config.FromEnv("warn")
	config.BindFlags(pflag.CommandLine, &settings)
	pflag.Parse()

	if err := run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(settings config.Settings) error {
	settings, err := settings.Resolve()
	if err != nil {
		return err
	}

	// stdout belongs to the UI, so logs go to a file
	logger, logFile, err := config.FileLogger(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()
	ctx := logger.WithContext(context.Background())

	svc, err := bootstrap.New(ctx, settings)
	if err != nil {
		return err
	}
	defer svc.Close()

	app := tui.NewApp(ctx, svc, editor.NewOpener(), desktop.NewRevealer())
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("terminal UI exited")
		return err
	}
	return nil
}
