package quote

import "strings"

// PegSet holds symbol pairs that convert 1:1 without touching a market,
// such as a native asset and its wrapped representation.
type PegSet struct {
	pairs map[pegKey]struct{}
}

type pegKey struct {
	a, b string
}

func newPegKey(a, b string) pegKey {
	a, b = strings.ToUpper(a), strings.ToUpper(b)
	if b < a {
		a, b = b, a
	}
	return pegKey{a: a, b: b}
}

// NewPegSet builds a PegSet from symbol pairs. Order inside a pair does not matter.
func NewPegSet(pairs ...[2]string) PegSet {
	s := PegSet{pairs: make(map[pegKey]struct{}, len(pairs))}
	for _, p := range pairs {
		if strings.EqualFold(p[0], p[1]) {
			continue
		}
		s.pairs[newPegKey(p[0], p[1])] = struct{}{}
	}
	return s
}

// DefaultPegs returns the ETH/WETH wrap pair.
func DefaultPegs() PegSet {
	return NewPegSet([2]string{"ETH", "WETH"})
}

// Pegged reports whether from and to are a recognized 1:1 pair.
func (s PegSet) Pegged(from, to string) bool {
	if len(s.pairs) == 0 {
		return false
	}
	_, ok := s.pairs[newPegKey(from, to)]
	return ok
}

// Len returns the number of pegged pairs.
func (s PegSet) Len() int {
	return len(s.pairs)
}
