package database

import (
	"context"
	"log"

	"credit_engine/internal/domain/entities"
	"credit_engine/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const (
	DefaultPolicyName    = "DEFAULT_POLICY_V1"
	DefaultPolicyVersion = "1.0"
)

// SeedDefaultPolicy creates the default credit policy if it does not exist
// yet: PERSONAL_LOAN across every channel. Runs once at process startup;
// request handling never touches policy data.
func SeedDefaultPolicy(ctx context.Context, policyRepo interfaces.IPolicyRepository) error {
	policy, err := entities.NewPolicy(
		uuid.NewString(),
		DefaultPolicyName,
		DefaultPolicyVersion,
		[]entities.ProductType{entities.ProductTypePersonalLoan},
		[]entities.Channel{entities.ChannelApp, entities.ChannelBackoffice, entities.ChannelPartnerX},
		true,
	)
	if err != nil {
		return err
	}

	if err := policyRepo.Seed(ctx, policy); err != nil {
		return err
	}
	log.Printf("[database] default policy ensured name=%s version=%s", policy.Name, policy.Version)
	return nil
}
