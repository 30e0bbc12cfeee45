package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/fleshka4/swap-quote/internal/quote"
	"github.com/fleshka4/swap-quote/internal/service/dto"
)

func bandColor(l quote.ImpactLevel) *color.Color {
	switch l {
	case quote.ImpactHigh:
		return color.New(color.FgRed, color.Bold)
	case quote.ImpactCaution:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printQuote(w io.Writer, q *dto.QuoteResponse) {
	if q.Net.IsZero() {
		_, _ = fmt.Fprintf(w, "%s %s -> %s: enter an amount\n", q.Amount, q.From.Symbol, q.To.Symbol)
		return
	}

	_, _ = fmt.Fprintln(w, strings.Repeat("-", 48))
	_, _ = fmt.Fprintf(w, "  You pay        %s %s ($%s)\n",
		q.Amount, q.From.Symbol, q.InputValueUSD.StringFixed(2))
	_, _ = fmt.Fprintf(w, "  You receive    %s %s\n",
		color.CyanString(q.Net.StringFixed(q.To.Decimals)), q.To.Symbol)
	if q.Wrap {
		_, _ = fmt.Fprintf(w, "  Route          %s\n", color.HiBlackString("1:1 wrap, no fee"))
	} else {
		_, _ = fmt.Fprintf(w, "  Price impact   %s\n",
			bandColor(q.ImpactLevel).Sprintf("%s%% (%s)", q.PriceImpactPercent.StringFixed(2), q.ImpactLevel))
		_, _ = fmt.Fprintf(w, "  Fee            %s%%\n", q.FeeRate.Shift(2).String())
	}
	_, _ = fmt.Fprintf(w, "  Min received   %s %s at %s%% slippage\n",
		q.MinimumReceived.StringFixed(q.To.Decimals), q.To.Symbol, q.SlippagePercent)
	if q.RequiresAcknowledgment {
		_, _ = fmt.Fprintln(w, color.RedString("  High price impact: confirm before swapping"))
	}
	_, _ = fmt.Fprintln(w, strings.Repeat("-", 48))
}

func printTokens(w io.Writer, tokens []quote.Token) {
	for _, t := range tokens {
		line := fmt.Sprintf("  %-10s %-16s $%-12s balance %s",
			color.YellowString(t.Symbol), t.Name, t.PriceUSD.String(), t.Balance.String())
		if t.Imported {
			line += " " + color.HiBlackString(t.Address)
		}
		_, _ = fmt.Fprintln(w, line)
	}
	_, _ = fmt.Fprintf(w, "\nTotal: %d tokens\n", len(tokens))
}
