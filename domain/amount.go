package domain

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// weiPerEther is the fixed-point scale of the chain's native unit.
var weiPerEther = decimal.New(1, 18)

// ParseAmount parses a decimal string in the chain's native unit.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	return d, nil
}

// ParsePositiveAmount parses a decimal string and rejects zero and negative
// values. Every user-supplied price goes through here before submission.
func ParsePositiveAmount(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, ErrInvalidPrice
	}
	return d, nil
}

// ToWei converts a native-unit amount to its integer wei representation.
func ToWei(d decimal.Decimal) *big.Int {
	return d.Mul(weiPerEther).BigInt()
}

// FromWei converts an integer wei value to the native display unit.
func FromWei(wei *big.Int) decimal.Decimal {
	return decimal.NewFromBigInt(wei, 0).Div(weiPerEther)
}
