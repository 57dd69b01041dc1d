package types

import (
	"testing"

	"github.com/rxtech-lab/argo-screener/pkg/errors"
	"github.com/stretchr/testify/suite"
)

type PolicyTestSuite struct {
	suite.Suite
}

func TestPolicySuite(t *testing.T) {
	suite.Run(t, new(PolicyTestSuite))
}

func (suite *PolicyTestSuite) TestParsePolicy() {
	tests := []struct {
		input    string
		expected Policy
	}{
		{"baseline", PolicyBaseline},
		{"extended", PolicyExtended},
		{"  Extended ", PolicyExtended},
		{"BASELINE", PolicyBaseline},
	}

	for _, tc := range tests {
		suite.Run(tc.input, func() {
			p, err := ParsePolicy(tc.input)
			suite.NoError(err)
			suite.Equal(tc.expected, p)
		})
	}
}

func (suite *PolicyTestSuite) TestParsePolicyUnknown() {
	_, err := ParsePolicy("aggressive")
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidPolicy))
}

func (suite *PolicyTestSuite) TestValid() {
	suite.True(PolicyBaseline.Valid())
	suite.True(PolicyExtended.Valid())
	suite.False(Policy("").Valid())
}
