package registry

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fleshka4/swap-quote/internal/apperrors"
	"github.com/fleshka4/swap-quote/internal/quote"
)

const (
	addressPrefix = "0x"
	addressLength = 2 + 2*common.AddressLength
)

// ParseAddress checks that s looks like a contract address: the 0x prefix
// followed by 40 hex characters.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, addressPrefix) {
		return common.Address{}, errors.Wrap(apperrors.ErrInvalidTokenAddress, "missing 0x prefix")
	}
	if len(s) != addressLength {
		return common.Address{}, errors.Wrapf(apperrors.ErrInvalidTokenAddress, "length %d, want %d", len(s), addressLength)
	}
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Wrap(apperrors.ErrInvalidTokenAddress, "not hex")
	}
	addr := common.HexToAddress(s)
	if addr == (common.Address{}) {
		return common.Address{}, errors.Wrap(apperrors.ErrInvalidTokenAddress, "zero address")
	}
	return addr, nil
}

// Placeholder fabricates a preview token for addr. Symbol and reference price
// are derived from keccak256(addr), so the same address always yields the
// same token. taken reports symbols already in use; the symbol grows until it
// is free.
func Placeholder(addr common.Address, taken func(string) bool) quote.Token {
	h := crypto.Keccak256(addr.Bytes())

	hexHash := strings.ToUpper(common.Bytes2Hex(h))
	symbol := "TKN" + hexHash[:4]
	for n := 6; taken != nil && taken(symbol) && n <= len(hexHash); n += 2 {
		symbol = "TKN" + hexHash[:n]
	}

	// price in [0.0001, 10.0000]
	n := binary.BigEndian.Uint32(h[4:8])
	price := decimal.New(int64(n%100000)+1, -4)

	hexAddr := addr.Hex()
	return quote.Token{
		Symbol:   symbol,
		Name:     fmt.Sprintf("Imported %s…%s", hexAddr[:6], hexAddr[len(hexAddr)-4:]),
		Balance:  decimal.Zero,
		PriceUSD: price,
		Decimals: 4,
		Address:  hexAddr,
		Imported: true,
	}
}
