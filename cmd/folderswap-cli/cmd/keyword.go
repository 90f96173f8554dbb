package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"folderswap/internal/application/commands"
)

var (
	keywordSearch string
	keywordSort   string
)

var keywordCmd = &cobra.Command{
	Use:     "keyword",
	Aliases: []string{"kw"},
	Short:   "Manage registered keywords",
}

var keywordAddCmd = &cobra.Command{
	Use:   "add <keyword>",
	Short: "Register a keyword",
	Long: `Register a keyword. Keywords are stored lowercase and duplicates are
ignored.

Examples:
  folderswap-cli keyword add project
  folderswap-cli keyword add "client x"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewAddKeywordCommand(GetServices().Keywords, args[0]).Execute(Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var keywordRemoveCmd = &cobra.Command{
	Use:     "rm <keyword>",
	Aliases: []string{"remove"},
	Short:   "Remove a registered keyword",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := commands.NewRemoveKeywordCommand(GetServices().Keywords, args[0]).Execute(Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

var keywordListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List registered keywords",
	Long: `List registered keywords, one per line.

Examples:
  folderswap-cli keyword list
  folderswap-cli keyword list --search proj
  folderswap-cli keyword list --sort alpha`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		order, err := commands.ParseKeywordOrder(keywordSort)
		if err != nil {
			return err
		}

		keywords, err := commands.NewListKeywordsCommand(GetServices().Keywords, keywordSearch, order).Execute(Context())
		if err != nil {
			return err
		}
		for _, k := range keywords {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keywordCmd)
	keywordCmd.AddCommand(keywordAddCmd)
	keywordCmd.AddCommand(keywordRemoveCmd)
	keywordCmd.AddCommand(keywordListCmd)

	keywordListCmd.Flags().StringVarP(&keywordSearch, "search", "s", "", "only keywords containing this text")
	keywordListCmd.Flags().StringVar(&keywordSort, "sort", "register", "order: register or alpha")
}
