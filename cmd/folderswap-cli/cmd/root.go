package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"folderswap/internal/bootstrap"
	"folderswap/internal/config"
)

var (
	settings = config.FromEnv("info")
	services *bootstrap.Services
	ctx      = context.Background()
)

var rootCmd = &cobra.Command{
	Use:   "folderswap-cli",
	Short: "Move keyword-tagged folders between a source and a target directory",
	Long: `folderswap-cli manages a list of keywords and two directories, source
and target. For a keyword it lists every top-level folder of either
directory whose name contains the keyword, and moves folders between them.

At most one folder per keyword lives in target: moving a folder into
target moves the previous one back to source.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		resolved, err := settings.Resolve()
		if err != nil {
			return err
		}
		logger, err := config.ConsoleLogger(os.Stderr, resolved.LogLevel)
		if err != nil {
			return err
		}
		ctx = logger.WithContext(cmd.Context())

		services, err = bootstrap.New(ctx, resolved)
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if services == nil {
			return nil
		}
		return services.Close()
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	config.BindFlags(rootCmd.PersistentFlags(), &settings)
}

// GetServices returns the initialized services
func GetServices() *bootstrap.Services {
	return services
}

// Context returns the command context carrying the logger
func Context() context.Context {
	return ctx
}
