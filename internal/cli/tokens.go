package cli

import (
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "tokens",
		Aliases: []string{"ls"},
		Short:   "List the token registry",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				printError(cmd, err)
				return err
			}

			tokens, err := a.svc.Tokens(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd.OutOrStdout(), tokens)
			}
			printTokens(cmd.OutOrStdout(), tokens)
			return nil
		},
	}
}
