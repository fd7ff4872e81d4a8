package engine

import (
	"fmt"

	"credit_engine/internal/domain/entities"
)

const (
	DefaultMinAge = 18
	DefaultMaxAge = 65
)

// AgeRangeRule checks that the applicant's age falls inside the configured
// inclusive range.

type AgeRangeRule struct {
	MinAge int
	MaxAge int
}

func NewAgeRangeRule(minAge, maxAge int) *AgeRangeRule {
	return &AgeRangeRule{MinAge: minAge, MaxAge: maxAge}
}

func (r *AgeRangeRule) Code() string { return "AGE_OUT_OF_RANGE" }

func (r *AgeRangeRule) Name() string { return "Age Range Rule" }

func (r *AgeRangeRule) Evaluate(proposal entities.Proposal) (entities.RuleResult, error) {
	age := proposal.Applicant.Age
	passed := age >= r.MinAge && age <= r.MaxAge

	message := ""
	if !passed {
		message = fmt.Sprintf("Age out of range. Required: %d-%d, Provided: %d", r.MinAge, r.MaxAge, age)
	}

	return entities.RuleResult{
		RuleCode: r.Code(),
		Passed:   passed,
		Message:  message,
		Metadata: entities.Metadata{
			"min_age":       r.MinAge,
			"max_age":       r.MaxAge,
			"applicant_age": age,
		},
	}, nil
}
