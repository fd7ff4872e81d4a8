package request

import (
	"credit_engine/internal/domain/entities"
	"credit_engine/internal/usecase"
)

type ApplicantRequest struct {
	DocumentNumber string  `json:"document_number" binding:"required"`
	Name           string  `json:"name" binding:"required"`
	MonthlyIncome  float64 `json:"monthly_income" binding:"gte=0"`
	Age            int     `json:"age" binding:"gte=0,lte=120"`
}

// ProposalRequest is the payload accepted by POST /credit_decisions.
//
// Binding tags mirror the domain invariants so malformed payloads are refused
// at the edge; the domain constructors re-validate, so nothing depends on gin
// being the only entry point.
type ProposalRequest struct {
	Applicant       ApplicantRequest `json:"applicant" binding:"required"`
	RequestedAmount float64          `json:"requested_amount" binding:"required,gt=0"`
	Installments    int              `json:"installments" binding:"required,gt=0"`
	ProductType     string           `json:"product_type" binding:"required"`
	Channel         string           `json:"channel" binding:"required"`
}

// ToCommand translates the payload into the usecase command.
func (r ProposalRequest) ToCommand() usecase.ProposalRequest {
	return usecase.ProposalRequest{
		DocumentNumber:  r.Applicant.DocumentNumber,
		Name:            r.Applicant.Name,
		MonthlyIncome:   r.Applicant.MonthlyIncome,
		Age:             r.Applicant.Age,
		RequestedAmount: r.RequestedAmount,
		Installments:    r.Installments,
		ProductType:     entities.ProductType(r.ProductType),
		Channel:         entities.Channel(r.Channel),
	}
}
