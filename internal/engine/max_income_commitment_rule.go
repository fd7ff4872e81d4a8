package engine

import (
	"fmt"

	"credit_engine/internal/domain/entities"
)

const DefaultMaxCommitment = 0.30

// zeroIncomeCommitment is the sentinel ratio recorded when the applicant has
// no income at all: the real ratio is undefined (division by zero), and the
// rule fails outright. -1 cannot collide with a real ratio, which is never
// negative.
const zeroIncomeCommitment = -1.0

// MaxIncomeCommitmentRule checks that the monthly payment does not commit more
// than the configured share of the applicant's monthly income.

type MaxIncomeCommitmentRule struct {
	MaxCommitment float64
}

func NewMaxIncomeCommitmentRule(maxCommitment float64) *MaxIncomeCommitmentRule {
	return &MaxIncomeCommitmentRule{MaxCommitment: maxCommitment}
}

func (r *MaxIncomeCommitmentRule) Code() string { return "MAX_INCOME_COMMITMENT_EXCEEDED" }

func (r *MaxIncomeCommitmentRule) Name() string { return "Maximum Income Commitment Rule" }

func (r *MaxIncomeCommitmentRule) Evaluate(proposal entities.Proposal) (entities.RuleResult, error) {
	monthlyPayment := proposal.RequestedAmount / float64(proposal.Installments)
	income := proposal.Applicant.MonthlyIncome

	if income <= 0 {
		return entities.RuleResult{
			RuleCode: r.Code(),
			Passed:   false,
			Message: fmt.Sprintf(
				"Income commitment exceeded. Max: %.0f%%, applicant has no monthly income",
				r.MaxCommitment*100,
			),
			Metadata: entities.Metadata{
				"max_commitment":        r.MaxCommitment,
				"calculated_commitment": zeroIncomeCommitment,
				"monthly_payment":       monthlyPayment,
			},
		}, nil
	}

	commitment := monthlyPayment / income
	passed := commitment <= r.MaxCommitment

	message := ""
	if !passed {
		message = fmt.Sprintf(
			"Income commitment exceeded. Max: %.0f%%, Calculated: %.2f%%",
			r.MaxCommitment*100, commitment*100,
		)
	}

	return entities.RuleResult{
		RuleCode: r.Code(),
		Passed:   passed,
		Message:  message,
		Metadata: entities.Metadata{
			"max_commitment":        r.MaxCommitment,
			"calculated_commitment": commitment,
			"monthly_payment":       monthlyPayment,
		},
	}, nil
}
