package service

import (
	"github.com/minhanle/skillcheck/internal/apperr"
	"github.com/minhanle/skillcheck/internal/model"
)

// CredentialPolicy decides whether a supplied credential satisfies the stored
// one. The shipped policy is plain string equality; a hashed comparison can be
// swapped in without touching the gate's contract.
type CredentialPolicy interface {
	Matches(stored, supplied string) bool
}

type plainEqualityPolicy struct{}

func NewPlainEqualityPolicy() CredentialPolicy {
	return &plainEqualityPolicy{}
}

func (p *plainEqualityPolicy) Matches(stored, supplied string) bool {
	return stored == supplied
}

// AccessGate gates candidate visibility of an assessment's question content
// behind the assessment's optional secret.
type AccessGate interface {
	Authorize(assessment *model.Assessment, supplied string) error
}

type accessGate struct {
	policy CredentialPolicy
}

func NewAccessGate(policy CredentialPolicy) AccessGate {
	return &accessGate{policy: policy}
}

// Authorize grants unconditionally when the assessment carries no secret.
// Otherwise the supplied credential must satisfy the policy; a missing
// credential and a wrong one are both rejections, distinguished only for UX.
func (g *accessGate) Authorize(assessment *model.Assessment, supplied string) error {
	if assessment.Secret == "" {
		return nil
	}
	if g.policy.Matches(assessment.Secret, supplied) {
		return nil
	}
	return &apperr.AuthRequired{CredentialSupplied: supplied != ""}
}
