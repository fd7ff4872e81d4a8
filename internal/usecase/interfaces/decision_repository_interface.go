package interfaces

import (
	"context"

	"credit_engine/internal/domain/entities"
)

// IDecisionRepository abstracts DynamoDB persistence for Decision.
//
// The store enforces the at-most-one-decision-per-proposal invariant: a second
// Save for the same proposal id must not produce a second decision (the stored
// one wins and is returned). Lookups return a zero-value Decision (empty ID)
// when nothing is stored.

type IDecisionRepository interface {
	Save(ctx context.Context, d entities.Decision) (entities.Decision, error)
	GetByID(ctx context.Context, id string) (entities.Decision, error)
	GetByProposalID(ctx context.Context, proposalID string) (entities.Decision, error)
}
