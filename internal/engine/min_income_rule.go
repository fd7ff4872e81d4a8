package engine

import (
	"fmt"

	"credit_engine/internal/domain/entities"
)

const DefaultMinIncome = 1000.0

// MinIncomeRule checks that the applicant earns at least the configured
// minimum monthly income.

type MinIncomeRule struct {
	MinIncome float64
}

func NewMinIncomeRule(minIncome float64) *MinIncomeRule {
	return &MinIncomeRule{MinIncome: minIncome}
}

func (r *MinIncomeRule) Code() string { return "MIN_INCOME_NOT_MET" }

func (r *MinIncomeRule) Name() string { return "Minimum Income Rule" }

func (r *MinIncomeRule) Evaluate(proposal entities.Proposal) (entities.RuleResult, error) {
	income := proposal.Applicant.MonthlyIncome
	passed := income >= r.MinIncome

	message := ""
	if !passed {
		message = fmt.Sprintf("Minimum income not met. Required: %v, Provided: %v", r.MinIncome, income)
	}

	return entities.RuleResult{
		RuleCode: r.Code(),
		Passed:   passed,
		Message:  message,
		Metadata: entities.Metadata{
			"min_income":       r.MinIncome,
			"applicant_income": income,
		},
	}, nil
}
