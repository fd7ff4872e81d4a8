package engine

import (
	"fmt"

	"credit_engine/internal/domain/entities"
)

// 84 installments = 7 years.
const DefaultMaxInstallments = 84

// MaxInstallmentsRule checks that the requested installment count does not
// exceed the configured maximum.

type MaxInstallmentsRule struct {
	MaxInstallments int
}

func NewMaxInstallmentsRule(maxInstallments int) *MaxInstallmentsRule {
	return &MaxInstallmentsRule{MaxInstallments: maxInstallments}
}

func (r *MaxInstallmentsRule) Code() string { return "MAX_INSTALLMENTS_EXCEEDED" }

func (r *MaxInstallmentsRule) Name() string { return "Maximum Installments Rule" }

func (r *MaxInstallmentsRule) Evaluate(proposal entities.Proposal) (entities.RuleResult, error) {
	passed := proposal.Installments <= r.MaxInstallments

	message := ""
	if !passed {
		message = fmt.Sprintf("Maximum installments exceeded. Max: %d, Provided: %d", r.MaxInstallments, proposal.Installments)
	}

	return entities.RuleResult{
		RuleCode: r.Code(),
		Passed:   passed,
		Message:  message,
		Metadata: entities.Metadata{
			"max_installments":       r.MaxInstallments,
			"requested_installments": proposal.Installments,
		},
	}, nil
}
