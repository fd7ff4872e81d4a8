package interfaces

import (
	"context"

	"credit_engine/internal/domain/entities"
)

// IPolicyRepository abstracts DynamoDB persistence for Policy.
//
// GetByProductAndChannel returns the single active policy whose product-type
// and channel sets both contain the inputs, or a zero-value Policy (empty ID)
// when none matches. When several active policies match, implementations must
// apply a deterministic tie-break.
//
// Seed creates a policy if absent and never overwrites an existing one; it is
// used only by process startup, never by request handling.

type IPolicyRepository interface {
	GetByProductAndChannel(ctx context.Context, productType entities.ProductType, channel entities.Channel) (entities.Policy, error)
	Seed(ctx context.Context, p entities.Policy) error
}
