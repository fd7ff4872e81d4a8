package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"credit_engine/internal/domain/entities"
	"credit_engine/internal/engine"
	"credit_engine/internal/usecase/interfaces"
)

var (
	ErrPolicyNotFound    = errors.New("no active policy for this product/channel combination")
	ErrDecisionNotFound  = errors.New("decision not found")
	ErrInvalidDecisionID = errors.New("invalid decision id")
	ErrInvalidProposalID = errors.New("invalid proposal id")
)

// ProposalRequest is the application-level command to analyze a credit
// proposal. Field validation happens in the domain constructors; the usecase
// only carries the raw values in.

type ProposalRequest struct {
	DocumentNumber  string
	Name            string
	MonthlyIncome   float64
	Age             int
	RequestedAmount float64
	Installments    int
	ProductType     entities.ProductType
	Channel         entities.Channel
}

// ICreditDecisionUseCase encapsulates the credit decision workflow.
//
// AnalyzeProposal orchestrates the full flow: build the domain objects,
// resolve the applicable policy, persist the proposal, run the decision
// engine, persist and return the decision. Validation and policy-resolution
// failures happen before any write.

type ICreditDecisionUseCase interface {
	AnalyzeProposal(ctx context.Context, req ProposalRequest) (entities.Decision, error)
	GetDecisionByID(ctx context.Context, id string) (entities.Decision, error)
	GetDecisionByProposalID(ctx context.Context, proposalID string) (entities.Decision, error)
}

type CreditDecisionUseCase struct {
	proposalRepo interfaces.IProposalRepository
	decisionRepo interfaces.IDecisionRepository
	policyRepo   interfaces.IPolicyRepository
	engine       *engine.DecisionEngine
}

var _ ICreditDecisionUseCase = (*CreditDecisionUseCase)(nil)

func NewCreditDecisionUseCase(
	proposalRepo interfaces.IProposalRepository,
	decisionRepo interfaces.IDecisionRepository,
	policyRepo interfaces.IPolicyRepository,
	eng *engine.DecisionEngine,
) *CreditDecisionUseCase {
	return &CreditDecisionUseCase{
		proposalRepo: proposalRepo,
		decisionRepo: decisionRepo,
		policyRepo:   policyRepo,
		engine:       eng,
	}
}

func (u *CreditDecisionUseCase) AnalyzeProposal(ctx context.Context, req ProposalRequest) (entities.Decision, error) {
	log.Printf("[decision][usecase] analyze start document=%s product=%s channel=%s amount=%.2f installments=%d",
		req.DocumentNumber, req.ProductType, req.Channel, req.RequestedAmount, req.Installments)

	applicant, err := entities.NewApplicant(req.DocumentNumber, req.Name, req.MonthlyIncome, req.Age)
	if err != nil {
		log.Printf("[decision][usecase] invalid applicant err=%v", err)
		return entities.Decision{}, err
	}

	proposal, err := entities.NewProposal(applicant, req.RequestedAmount, req.Installments, req.ProductType, req.Channel)
	if err != nil {
		log.Printf("[decision][usecase] invalid proposal err=%v", err)
		return entities.Decision{}, err
	}

	policy, err := u.policyRepo.GetByProductAndChannel(ctx, proposal.ProductType, proposal.Channel)
	if err != nil {
		log.Printf("[decision][usecase] policy lookup failed product=%s channel=%s err=%v", proposal.ProductType, proposal.Channel, err)
		return entities.Decision{}, err
	}
	if policy.ID == "" {
		log.Printf("[decision][usecase] no active policy product=%s channel=%s", proposal.ProductType, proposal.Channel)
		return entities.Decision{}, fmt.Errorf("%w: product %s, channel %s", ErrPolicyNotFound, proposal.ProductType, proposal.Channel)
	}
	log.Printf("[decision][usecase] policy resolved name=%s version=%s", policy.Name, policy.Version)

	proposal, err = u.proposalRepo.Save(ctx, proposal)
	if err != nil {
		log.Printf("[decision][usecase] proposal save failed proposal_id=%s err=%v", proposal.ID, err)
		return entities.Decision{}, err
	}

	decision, err := u.engine.Evaluate(proposal, policy)
	if err != nil {
		log.Printf("[decision][usecase] evaluation fault proposal_id=%s err=%v", proposal.ID, err)
		return entities.Decision{}, err
	}

	decision, err = u.decisionRepo.Save(ctx, decision)
	if err != nil {
		log.Printf("[decision][usecase] decision save failed proposal_id=%s decision_id=%s err=%v", proposal.ID, decision.ID, err)
		return entities.Decision{}, err
	}

	log.Printf("[decision][usecase] analyze success proposal_id=%s decision_id=%s status=%s rejected=%v",
		proposal.ID, decision.ID, decision.Status, decision.RejectedReasons())
	return decision, nil
}

func (u *CreditDecisionUseCase) GetDecisionByID(ctx context.Context, id string) (entities.Decision, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Decision{}, ErrInvalidDecisionID
	}

	d, err := u.decisionRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Decision{}, err
	}
	if d.ID == "" {
		return entities.Decision{}, ErrDecisionNotFound
	}
	return d, nil
}

func (u *CreditDecisionUseCase) GetDecisionByProposalID(ctx context.Context, proposalID string) (entities.Decision, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return entities.Decision{}, ErrInvalidProposalID
	}

	d, err := u.decisionRepo.GetByProposalID(ctx, proposalID)
	if err != nil {
		return entities.Decision{}, err
	}
	if d.ID == "" {
		return entities.Decision{}, ErrDecisionNotFound
	}
	return d, nil
}
