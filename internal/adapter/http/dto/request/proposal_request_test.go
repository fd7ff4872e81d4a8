package request

import (
	"testing"

	"credit_engine/internal/domain/entities"
)

func TestProposalRequest_ToCommand(t *testing.T) {
	r := ProposalRequest{
		Applicant: ApplicantRequest{
			DocumentNumber: "12345678900",
			Name:           "Maria Souza",
			MonthlyIncome:  5000,
			Age:            30,
		},
		RequestedAmount: 10000,
		Installments:    24,
		ProductType:     "PERSONAL_LOAN",
		Channel:         "APP",
	}

	cmd := r.ToCommand()
	if cmd.DocumentNumber != "12345678900" || cmd.Name != "Maria Souza" {
		t.Fatalf("unexpected applicant fields: %+v", cmd)
	}
	if cmd.MonthlyIncome != 5000 || cmd.Age != 30 {
		t.Fatalf("unexpected applicant numbers: %+v", cmd)
	}
	if cmd.RequestedAmount != 10000 || cmd.Installments != 24 {
		t.Fatalf("unexpected proposal numbers: %+v", cmd)
	}
	if cmd.ProductType != entities.ProductTypePersonalLoan || cmd.Channel != entities.ChannelApp {
		t.Fatalf("unexpected enums: %+v", cmd)
	}
}

func TestProposalRequest_ToCommandKeepsUnknownEnums(t *testing.T) {
	// The command carries the raw values through; the domain constructors
	// decide whether an enum value is acceptable.
	r := ProposalRequest{
		Applicant:       ApplicantRequest{DocumentNumber: "1", Name: "n"},
		RequestedAmount: 1,
		Installments:    1,
		ProductType:     "MORTGAGE",
		Channel:         "KIOSK",
	}

	cmd := r.ToCommand()
	if string(cmd.ProductType) != "MORTGAGE" || string(cmd.Channel) != "KIOSK" {
		t.Fatalf("expected raw enum values preserved, got %+v", cmd)
	}
	if cmd.ProductType.Valid() || cmd.Channel.Valid() {
		t.Fatalf("expected invalid enums, got %+v", cmd)
	}
}
