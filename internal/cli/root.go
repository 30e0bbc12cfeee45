package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "cfg/config.yaml"

// NewRootCmd builds the quotectl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "quotectl",
		Short: "Price token swaps against the configured registry",
		Long: `quotectl computes swap quotes locally with the same engine, registry
and preferences the HTTP service uses.

Examples:
  quotectl quote 1 ETH USDC
  quotectl quote 2500 USDC cbBTC --slippage 1
  quotectl tokens
  echo "1\n1.5\n2" | quotectl watch ETH USDC`,
		SilenceUsage: true,
	}

	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}
	root.PersistentFlags().StringP("config", "c", path, "Path to the YAML config")
	root.PersistentFlags().BoolP("json", "j", false, "Output in JSON format")

	root.AddCommand(newQuoteCmd(), newTokensCmd(), newWatchCmd())
	return root
}

// Execute runs quotectl with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

func printError(cmd *cobra.Command, err error) {
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "\nError: %v\n\n", err)
}
