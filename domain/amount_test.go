package domain

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestToWei(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		in  string
		out string
	}{
		{"1", "1000000000000000000"},
		{"1.5", "1500000000000000000"},
		{"0.01", "10000000000000000"},
		{"0.000000000000000001", "1"},
	}

	for _, tt := range tests {
		d, err := ParseAmount(tt.in)
		req.NoError(err)
		req.Equal(tt.out, ToWei(d).String())
	}
}

func TestFromWei(t *testing.T) {
	req := require.New(t)

	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	req.True(ok)
	req.True(decimal.RequireFromString("1.5").Equal(FromWei(wei)))
}

func TestParsePositiveAmount(t *testing.T) {
	req := require.New(t)

	_, err := ParsePositiveAmount("0")
	req.ErrorIs(err, ErrInvalidPrice)

	_, err = ParsePositiveAmount("-1.2")
	req.ErrorIs(err, ErrInvalidPrice)

	_, err = ParsePositiveAmount("abc")
	req.ErrorIs(err, ErrInvalidPrice)

	d, err := ParsePositiveAmount("1.5")
	req.NoError(err)
	req.True(decimal.RequireFromString("1.5").Equal(d))
}
