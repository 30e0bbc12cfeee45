package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const testConfig = `
quote:
  fee_rate: 0.003
  pool_liquidity_usd: 500000
session:
  debounce: 10ms
  latency: 1ms
tokens:
  - {symbol: ETH, name: Ethereum, price_usd: 2450, decimals: 6, balance: "1.42"}
  - {symbol: WETH, name: Wrapped Ether, price_usd: 2450, decimals: 6}
  - {symbol: USDC, name: USD Coin, price_usd: 1, decimals: 2}
`

func init() {
	color.NoColor = true
}

func writeConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	cfg := testConfig + "preferences_path: " + filepath.Join(dir, "prefs.yaml") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--config", writeConfig(t)))

	err := cmd.Execute()
	return out.String(), err
}

func TestQuoteCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "quote", "1", "ETH", "USDC")
	require.NoError(t, err)
	require.Contains(t, out, "2430.68 USDC")
	require.Contains(t, out, "0.49% (safe)")
	require.Contains(t, out, "at 0.5% slippage")
}

func TestQuoteCmd_JSON(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "quote", "1", "ETH", "USDC", "--slippage", "1", "--json")
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "2430.681015", got["outputAmountNet"])
	require.Equal(t, "1", got["slippagePercent"])
}

func TestQuoteCmd_HighImpact(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "quote", "1000", "ETH", "USDC")
	require.NoError(t, err)
	require.Contains(t, out, "(high)")
	require.Contains(t, out, "confirm before swapping")
}

func TestQuoteCmd_Wrap(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "quote", "2", "ETH", "WETH")
	require.NoError(t, err)
	require.Contains(t, out, "2.000000 WETH")
	require.Contains(t, out, "1:1 wrap")
}

func TestQuoteCmd_Errors(t *testing.T) {
	t.Parallel()

	_, err := run(t, "", "quote", "1", "ETH", "DOGE")
	require.Error(t, err)

	_, err = run(t, "", "quote", "1", "ETH", "eth")
	require.Error(t, err)

	_, err = run(t, "", "quote", "1", "ETH")
	require.Error(t, err)
}

func TestTokensCmd(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "tokens")
	require.NoError(t, err)
	require.Contains(t, out, "ETH")
	require.Contains(t, out, "Total: 3 tokens")
}

func TestWatchCmd_PrintsLatest(t *testing.T) {
	t.Parallel()

	out, err := run(t, "0.5\n1\n", "watch", "ETH", "USDC")
	require.NoError(t, err)
	require.Contains(t, out, "2430.68 USDC")
}

func TestWatchCmd_ReadError(t *testing.T) {
	t.Parallel()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(iotest.ErrReader(errors.New("tty gone")))
	cmd.SetArgs([]string{"watch", "ETH", "USDC", "--config", writeConfig(t)})

	err := cmd.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "tty gone")
	require.Contains(t, out.String(), "tty gone")
}

func TestWatchCmd_Cancelled(t *testing.T) {
	t.Parallel()

	pr, pw := io.Pipe()
	defer func() {
		_ = pw.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	cmd := NewRootCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetIn(pr)
	cmd.SetArgs([]string{"watch", "ETH", "USDC", "--config", writeConfig(t)})

	done := make(chan error, 1)
	go func() {
		done <- cmd.ExecuteContext(ctx)
	}()

	_, err := pw.Write([]byte("1\n"))
	require.NoError(t, err)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestWatchCmd_EmptyInput(t *testing.T) {
	t.Parallel()

	out, err := run(t, "", "watch", "ETH", "USDC")
	require.NoError(t, err)
	require.Empty(t, out)
}
