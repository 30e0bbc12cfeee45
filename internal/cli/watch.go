package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/fleshka4/swap-quote/internal/quote"
	"github.com/fleshka4/swap-quote/internal/service/dto"
	"github.com/fleshka4/swap-quote/internal/session"
)

// newWatchCmd reads amounts line by line and prints a quote for the latest
// one once input settles, the way an amount field reprices while typing.
func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <from> <to>",
		Short: "Reprice a pair for every amount read from stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				printError(cmd, err)
				return err
			}

			from, to := args[0], args[1]
			s := session.New(
				session.Func[string, *dto.QuoteResponse](func(ctx context.Context, amount string) (*dto.QuoteResponse, error) {
					return a.svc.Quote(ctx, dto.QuoteRequest{From: from, To: to, Amount: quote.ParseAmount(amount)})
				}),
				session.WithDebounce(a.cfg.Session.Debounce),
				session.WithLatency(a.cfg.Session.Latency),
			)
			defer s.Close()

			out := cmd.OutOrStdout()
			show := func(u session.Update[*dto.QuoteResponse]) {
				if u.Err != nil {
					_, _ = fmt.Fprintf(out, "error: %v\n", u.Err)
					return
				}
				printQuote(out, u.Result)
			}

			ctx := cmd.Context()
			lines := make(chan string)
			scanErr := make(chan error, 1)
			go func() {
				defer close(lines)
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					select {
					case lines <- strings.TrimSpace(scanner.Text()):
					case <-ctx.Done():
						return
					}
				}
				scanErr <- scanner.Err()
			}()

			var last string
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case u := <-s.Results():
					show(u)
				case line, ok := <-lines:
					if ok {
						last = line
						s.Submit(line)
						continue
					}
					if err := ctx.Err(); err != nil {
						return err
					}
					if err := <-scanErr; err != nil {
						printError(cmd, err)
						return errors.Wrap(err, "read stdin")
					}
					if last == "" {
						return nil
					}
					// flush the debounced tail and wait for its result
					seq := s.SubmitNow(last)
					for u := range s.Results() {
						if u.Seq == seq {
							show(u)
							return nil
						}
					}
					return nil
				}
			}
		},
	}
}
