package quote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThresholds_Classify(t *testing.T) {
	t.Parallel()

	th := DefaultThresholds()

	tests := []struct {
		impact string
		want   ImpactLevel
	}{
		{impact: "0", want: ImpactSafe},
		{impact: "0.49", want: ImpactSafe},
		{impact: "0.9999", want: ImpactSafe},
		{impact: "1", want: ImpactCaution},
		{impact: "3.2", want: ImpactCaution},
		{impact: "5", want: ImpactCaution},
		{impact: "5.0001", want: ImpactHigh},
		{impact: "99", want: ImpactHigh},
	}

	for _, tt := range tests {
		t.Run(tt.impact, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, th.Classify(d(tt.impact)))
		})
	}
}

func TestImpactLevel_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "safe", ImpactSafe.String())
	require.Equal(t, "caution", ImpactCaution.String())
	require.Equal(t, "high", ImpactHigh.String())
	require.Equal(t, "unknown", ImpactLevel(42).String())

	b, err := ImpactHigh.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "high", string(b))
}

func TestConstantProductImpact(t *testing.T) {
	t.Parallel()

	m := ConstantProductImpact{}

	// half = 250000, in = 250000 -> 50%
	require.True(t, m.ImpactPercent(d("250000"), d("500000")).Equal(d("50")))

	// small trades sit just under twice the linear impact, since only half
	// of the depth backs each side
	small := m.ImpactPercent(d("2450"), d("500000"))
	linear := LinearImpact{}.ImpactPercent(d("2450"), d("500000"))
	require.True(t, small.GreaterThan(linear))
	require.True(t, small.LessThan(linear.Mul(two)))
}

func TestEngine_ConstantProductModel(t *testing.T) {
	t.Parallel()

	e := NewEngine(WithImpactModel(ConstantProductImpact{}))
	require.Equal(t, "constant_product", e.Model().Name())

	res, err := e.Compute(newReq("300000"))
	require.NoError(t, err)
	// asymptotically approaches 100, so the clamp applies
	require.True(t, res.PriceImpactPercent.Equal(MaxImpactPercent))

	res, err = e.Compute(newReq("1"))
	require.NoError(t, err)
	require.True(t, res.Net.LessThan(res.Gross))
}

func TestParseImpactModel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		want    string
		wantErr assert.ErrorAssertionFunc
	}{
		{name: "", want: "linear", wantErr: assert.NoError},
		{name: "Linear", want: "linear", wantErr: assert.NoError},
		{name: "constant_product", want: "constant_product", wantErr: assert.NoError},
		{name: "xyk", want: "constant_product", wantErr: assert.NoError},
		{name: "curve", wantErr: assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := ParseImpactModel(tt.name)
			tt.wantErr(t, err)
			if m != nil {
				require.Equal(t, tt.want, m.Name())
			}
		})
	}
}

func TestPegSet(t *testing.T) {
	t.Parallel()

	s := DefaultPegs()
	require.Equal(t, 1, s.Len())
	require.True(t, s.Pegged("ETH", "WETH"))
	require.True(t, s.Pegged("weth", "eth"))
	require.False(t, s.Pegged("ETH", "USDC"))

	empty := NewPegSet([2]string{"X", "x"})
	require.Equal(t, 0, empty.Len())
	require.False(t, empty.Pegged("X", "X"))
	require.False(t, PegSet{}.Pegged("ETH", "WETH"))
}

func TestToken_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, tokenA.Validate())
	require.Error(t, tok("", "1").Validate())
	require.Error(t, tok("NEG", "-1").Validate())
	require.Error(t, tok("ZERO", "0").Validate())
}
