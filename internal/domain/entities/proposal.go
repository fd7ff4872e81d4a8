package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidProposal wraps every proposal construction failure.
var ErrInvalidProposal = errors.New("invalid proposal")

// ProductType enumerates the credit products a proposal can request.

type ProductType string

const (
	ProductTypePersonalLoan ProductType = "PERSONAL_LOAN"
	ProductTypePayrollLoan  ProductType = "PAYROLL_LOAN"
	ProductTypeCreditCard   ProductType = "CREDIT_CARD"
)

// Valid reports whether the value is one of the known product types.
func (p ProductType) Valid() bool {
	switch p {
	case ProductTypePersonalLoan, ProductTypePayrollLoan, ProductTypeCreditCard:
		return true
	}
	return false
}

// Channel enumerates where a proposal originated.

type Channel string

const (
	ChannelApp        Channel = "APP"
	ChannelBackoffice Channel = "BACKOFFICE"
	ChannelPartnerX   Channel = "PARTNER_X"
)

// Valid reports whether the value is one of the known channels.
func (c Channel) Valid() bool {
	switch c {
	case ChannelApp, ChannelBackoffice, ChannelPartnerX:
		return true
	}
	return false
}

// Proposal is a single credit request, immutable once created.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The embedded Applicant is a snapshot taken at submission time.

type Proposal struct {
	ID              string      `json:"id"`
	Applicant       Applicant   `json:"applicant"`
	RequestedAmount float64     `json:"requested_amount"`
	Installments    int         `json:"installments"`
	ProductType     ProductType `json:"product_type"`
	Channel         Channel     `json:"channel"`
	CreatedAt       time.Time   `json:"created_at"`
}

// NewProposal validates and builds a Proposal, generating its id and creation
// timestamp. The applicant must come from NewApplicant.
func NewProposal(applicant Applicant, requestedAmount float64, installments int, productType ProductType, channel Channel) (Proposal, error) {
	if requestedAmount <= 0 {
		return Proposal{}, fmt.Errorf("%w: requested amount must be positive", ErrInvalidProposal)
	}
	if installments <= 0 {
		return Proposal{}, fmt.Errorf("%w: installments must be positive", ErrInvalidProposal)
	}
	if !productType.Valid() {
		return Proposal{}, fmt.Errorf("%w: unknown product type %q", ErrInvalidProposal, string(productType))
	}
	if !channel.Valid() {
		return Proposal{}, fmt.Errorf("%w: unknown channel %q", ErrInvalidProposal, string(channel))
	}

	return Proposal{
		ID:              uuid.NewString(),
		Applicant:       applicant,
		RequestedAmount: requestedAmount,
		Installments:    installments,
		ProductType:     productType,
		Channel:         channel,
		CreatedAt:       time.Now().UTC(),
	}, nil
}
