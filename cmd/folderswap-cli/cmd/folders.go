package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"folderswap/internal/application/commands"
	"folderswap/internal/domain"
)

var foldersCmd = &cobra.Command{
	Use:   "folders <keyword>",
	Short: "List folders matching a keyword",
	Long: `List the top-level folders of source and target whose name contains the
keyword. Folders in target are printed as [x], folders in source as [ ].

Example:
  folderswap-cli folders project`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := GetServices()
		idx, err := commands.NewListFoldersCommand(svc.Engine, svc.Directories, args[0]).Execute(Context())
		if err != nil {
			return err
		}
		printIndex(cmd.OutOrStdout(), idx)
		return nil
	},
}

func printIndex(w io.Writer, idx *domain.FolderIndex) {
	if idx.Len() == 0 {
		fmt.Fprintf(w, "no folders match %q\n", idx.Keyword)
		return
	}
	for _, e := range idx.Entries {
		mark := " "
		if e.InTarget() {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s\n", mark, e.Name)
	}
}

func init() {
	rootCmd.AddCommand(foldersCmd)
}
