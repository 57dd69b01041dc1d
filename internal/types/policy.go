package types

import (
	"strings"

	"github.com/rxtech-lab/argo-screener/pkg/errors"
)

// Policy selects which condition set the rule evaluator applies.
type Policy string

const (
	// PolicyBaseline is the 4-condition keep-increasing check.
	PolicyBaseline Policy = "baseline"
	// PolicyExtended is the 9-condition keep-increasing check.
	PolicyExtended Policy = "extended"
)

// Policies returns every recognised policy.
func Policies() []Policy {
	return []Policy{PolicyBaseline, PolicyExtended}
}

// ParsePolicy parses a case-insensitive policy name.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.Newf(errors.ErrCodeInvalidPolicy, "unknown policy %q, expected one of %v", s, Policies())
	}

	return p, nil
}

// Valid reports whether p is a recognised policy.
func (p Policy) Valid() bool {
	switch p {
	case PolicyBaseline, PolicyExtended:
		return true
	default:
		return false
	}
}
