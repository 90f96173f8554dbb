package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folderswap/internal/application/commands"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Show or set the source and target directories",
}

var dirsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the configured directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dirs := GetServices().Directories
		pair := dirs.Pair()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "source: %s\n", orNotSet(pair.Source))
		fmt.Fprintf(out, "target: %s\n", orNotSet(pair.Target))
		if err := dirs.Validate(); err != nil {
			fmt.Fprintf(out, "warning: %s\n", err)
		}
		return nil
	},
}

var dirsSetCmd = &cobra.Command{
	Use:   "set <source|target> <path>",
	Short: "Set one of the directories",
	Long: `Set the source or target directory. The path must be an existing
directory; ~ is expanded and the path is stored absolute.

Examples:
  folderswap-cli dirs set source ~/projects/archive
  folderswap-cli dirs set target ~/projects/active`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"source", "target"},
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewSetDirectoryCommand(GetServices().Directories, args[0], args[1]).Execute(Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func orNotSet(path string) string {
	if path == "" {
		return "(not set)"
	}
	return path
}

func init() {
	rootCmd.AddCommand(dirsCmd)
	dirsCmd.AddCommand(dirsShowCmd)
	dirsCmd.AddCommand(dirsSetCmd)
}
