package engine

import (
	"fmt"

	"credit_engine/internal/domain/entities"
)

// DecisionEngine runs a fixed chain of rules against a proposal and aggregates
// the results into a Decision. Evaluation is a single-pass pure transformation:
// no I/O, no state. Rules execute in registration order, and every rule always
// runs - the decision must report every reason a proposal could be rejected,
// not just the first.

type DecisionEngine struct {
	rules []Rule
}

func NewDecisionEngine(rules []Rule) *DecisionEngine {
	return &DecisionEngine{rules: rules}
}

// Rules returns the configured rules in registration order.
func (e *DecisionEngine) Rules() []Rule {
	return e.rules
}

// Evaluate produces exactly one RuleResult per configured rule, in
// registration order, and aggregates them: APPROVED iff every rule passed,
// REJECTED otherwise. Policy name/version are snapshotted into the decision.
//
// A rule returning an error is an evaluation fault, not a business rejection;
// it aborts the evaluation and surfaces to the caller.
func (e *DecisionEngine) Evaluate(proposal entities.Proposal, policy entities.Policy) (entities.Decision, error) {
	ruleResults := make([]entities.RuleResult, 0, len(e.rules))
	allPassed := true

	for _, rule := range e.rules {
		result, err := rule.Evaluate(proposal)
		if err != nil {
			return entities.Decision{}, fmt.Errorf("rule %s evaluation failed: %w", rule.Code(), err)
		}
		ruleResults = append(ruleResults, result)
		if !result.Passed {
			allPassed = false
		}
	}

	status := entities.DecisionStatusRejected
	if allPassed {
		status = entities.DecisionStatusApproved
	}

	return entities.NewDecision(proposal.ID, status, policy.Name, policy.Version, ruleResults)
}

// DefaultRules builds the canonical rule chain with the given thresholds. The
// registration order is part of the audit contract: downstream consumers rely
// on rule_results keeping this ordering.
func DefaultRules(minIncome, maxCommitment float64, minAge, maxAge, maxInstallments int) []Rule {
	return []Rule{
		NewMinIncomeRule(minIncome),
		NewMaxIncomeCommitmentRule(maxCommitment),
		NewAgeRangeRule(minAge, maxAge),
		NewMaxInstallmentsRule(maxInstallments),
	}
}
