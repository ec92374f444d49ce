package validator

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
}

func (s *ValidatorTestSuite) TestIsValidAddress() {
	tests := []struct {
		desc       string
		address    string
		expIsValid bool
	}{
		{
			desc:       "too short",
			address:    "0x000",
			expIsValid: false,
		},
		{
			desc:       "missing prefix",
			address:    "939ae6a4c8dfdbb1f7085189574f0a938013952b00",
			expIsValid: false,
		},
		{
			desc:       "valid address - checksummed",
			address:    "0x939ae6A4C8dfDBB1f7085189574F0A938013952A",
			expIsValid: true,
		},
		{
			desc:       "valid address - lower case",
			address:    "0x939ae6a4c8dfdbb1f7085189574f0a938013952b",
			expIsValid: true,
		},
	}
	for _, t := range tests {
		s.Equal(t.expIsValid, IsValidAddress(t.address), t.desc)
	}
}

func (s *ValidatorTestSuite) TestEthAddrTag() {
	v := New()
	type params struct {
		Owner string `validate:"required,ethaddr"`
	}
	s.NoError(v.Struct(params{Owner: "0x939ae6a4c8dfdbb1f7085189574f0a938013952b"}))
	s.Error(v.Struct(params{Owner: "0x000"}))
	s.Error(v.Struct(params{}))
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}
