package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidApplicant wraps every applicant construction failure so callers can
// classify it as a client-input fault with a single errors.Is check.
var ErrInvalidApplicant = errors.New("invalid applicant")

// Applicant is the credit requester snapshot embedded in a Proposal.
//
// Domain notes:
//   - DocumentNumber is the natural key (CPF or similar document).
//   - A proposal owns its applicant by value: later edits to the applicant
//     record never change what was evaluated.
//
// Construct through NewApplicant; a zero-value Applicant is not valid.

type Applicant struct {
	DocumentNumber string  `json:"document_number"`
	Name           string  `json:"name"`
	MonthlyIncome  float64 `json:"monthly_income"`
	Age            int     `json:"age"`
}

// NewApplicant validates and builds an Applicant. Fields are checked here,
// once, so every Applicant in the system is well formed.
func NewApplicant(documentNumber, name string, monthlyIncome float64, age int) (Applicant, error) {
	if strings.TrimSpace(documentNumber) == "" {
		return Applicant{}, fmt.Errorf("%w: document number is required", ErrInvalidApplicant)
	}
	if strings.TrimSpace(name) == "" {
		return Applicant{}, fmt.Errorf("%w: name is required", ErrInvalidApplicant)
	}
	if monthlyIncome < 0 {
		return Applicant{}, fmt.Errorf("%w: monthly income must be >= 0", ErrInvalidApplicant)
	}
	if age < 0 || age > 120 {
		return Applicant{}, fmt.Errorf("%w: age must be between 0 and 120", ErrInvalidApplicant)
	}

	return Applicant{
		DocumentNumber: strings.TrimSpace(documentNumber),
		Name:           strings.TrimSpace(name),
		MonthlyIncome:  monthlyIncome,
		Age:            age,
	}, nil
}
