package interfaces

import (
	"context"

	"credit_engine/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for Proposal.
//
// Save is an idempotent upsert: the applicant sub-entity is keyed by document
// number, the proposal by its own id. GetByID returns a zero-value Proposal
// (empty ID) when nothing is stored.

type IProposalRepository interface {
	Save(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
}
