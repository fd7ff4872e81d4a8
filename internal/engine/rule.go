package engine

import "credit_engine/internal/domain/entities"

// Rule is a single eligibility check over a proposal.
//
// Evaluate must be a pure function of the proposal fields and the rule's own
// thresholds: same proposal in, same result out. A business rejection is a
// RuleResult with Passed=false; a non-nil error means the rule itself could
// not compute and aborts the whole evaluation. The two must never be
// conflated, or the audit trail would record faults as rejections.

type Rule interface {
	// Code is the stable identifier recorded in RuleResult and in
	// rejected reasons. Unique per rule type.
	Code() string
	// Name is a human-readable label.
	Name() string
	Evaluate(proposal entities.Proposal) (entities.RuleResult, error)
}
