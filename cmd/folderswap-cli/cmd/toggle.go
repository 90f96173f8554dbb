package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folderswap/internal/application/commands"
)

var toggleSide string

var toggleCmd = &cobra.Command{
	Use:   "toggle <keyword> <folder>",
	Short: "Move a folder between source and target",
	Long: `Move a folder matching the keyword to the other directory, or to the
side given with --side. Moving a folder into target moves every other
folder matching the keyword out of target.

Examples:
  folderswap-cli toggle project projectAlpha
  folderswap-cli toggle project projectAlpha --side target`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := GetServices()
		result, err := commands.NewToggleCommand(svc.Engine, svc.Directories, args[0], args[1], toggleSide).Execute(Context())
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		printIndex(cmd.OutOrStdout(), result.Index)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(toggleCmd)
	toggleCmd.Flags().StringVar(&toggleSide, "side", "", "source or target (default: flip the current side)")
}
