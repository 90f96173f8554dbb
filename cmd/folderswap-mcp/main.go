package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/pflag"

	mcpadapter "folderswap/internal/adapters/mcp"
	"folderswap/internal/bootstrap"
	"folderswap/internal/config"
)

func main() {
	settings := config.FromEnv("warn")
	config.BindFlags(pflag.CommandLine, &settings)
	pflag.Parse()

	if err := run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "folderswap-mcp: %v\n", err)
		os.Exit(1)
	}
}

func run(settings config.Settings) error {
	settings, err := settings.Resolve()
	if err != nil {
		return err
	}

	// stdout carries the protocol, so logs go to a file
	logger, logFile, err := config.FileLogger(settings.LogFile, settings.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()
	logger = logger.With().Str("component", "mcp").Logger()
	ctx := logger.WithContext(context.Background())

	svc, err := bootstrap.New(ctx, settings)
	if err != nil {
		return err
	}
	defer svc.Close()

	mcpServer := server.NewMCPServer(
		"folderswap-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, svc, logger)
	mcpadapter.RegisterWriteTools(mcpServer, svc, logger)

	logger.Info().Str("store", settings.Store).Msg("serving on stdio")
	return server.ServeStdio(mcpServer)
}
