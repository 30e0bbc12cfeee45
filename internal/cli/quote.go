package cli

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fleshka4/swap-quote/internal/quote"
	"github.com/fleshka4/swap-quote/internal/service/dto"
)

func newQuoteCmd() *cobra.Command {
	var slippage string

	cmd := &cobra.Command{
		Use:   "quote <amount> <from> <to>",
		Short: "Quote a swap",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				printError(cmd, err)
				return err
			}

			req := dto.QuoteRequest{
				From:   args[1],
				To:     args[2],
				Amount: quote.ParseAmount(args[0]),
			}
			if slippage != "" {
				s, err := decimal.NewFromString(slippage)
				if err != nil {
					return errors.Wrap(err, "bad --slippage")
				}
				req.SlippagePercent = &s
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.RequestTimeout)
			defer cancel()

			q, err := a.svc.Quote(ctx, req)
			if err != nil {
				printError(cmd, err)
				return err
			}

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				return printJSON(cmd.OutOrStdout(), q)
			}
			printQuote(cmd.OutOrStdout(), q)
			return nil
		},
	}
	cmd.Flags().StringVarP(&slippage, "slippage", "s", "", "Slippage tolerance in percent (default: stored preference)")
	return cmd
}
