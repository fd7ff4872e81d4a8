package entities

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidDecision wraps every decision construction failure.
var ErrInvalidDecision = errors.New("invalid decision")

// DecisionStatus represents the credit decision outcome.
//
// Only APPROVED and REJECTED are producible today; PENDING_DOCS is reserved
// for a future document-collection flow.

type DecisionStatus string

const (
	DecisionStatusApproved    DecisionStatus = "APPROVED"
	DecisionStatusRejected    DecisionStatus = "REJECTED"
	DecisionStatusPendingDocs DecisionStatus = "PENDING_DOCS"
)

// Decision is the auditable outcome of running every rule against a proposal
// under a specific policy. Policy name/version are snapshotted at evaluation
// time so later policy changes never rewrite history.
//
// Storage model (DynamoDB):
//   - PK: proposal_id (guarantees at most one decision per proposal)
//   - GSI (id-index): id

type Decision struct {
	ID            string         `json:"id"`
	ProposalID    string         `json:"proposal_id"`
	Status        DecisionStatus `json:"status"`
	PolicyName    string         `json:"policy_name"`
	PolicyVersion string         `json:"policy_version"`
	RuleResults   []RuleResult   `json:"rule_results"`
	CreatedAt     time.Time      `json:"created_at"`
}

// NewDecision validates and builds a Decision, generating its id and creation
// timestamp. RuleResults must be in rule execution order; the order is part of
// the audit trail.
func NewDecision(proposalID string, status DecisionStatus, policyName, policyVersion string, ruleResults []RuleResult) (Decision, error) {
	if proposalID == "" {
		return Decision{}, fmt.Errorf("%w: proposal id is required", ErrInvalidDecision)
	}
	if policyName == "" {
		return Decision{}, fmt.Errorf("%w: policy name is required", ErrInvalidDecision)
	}
	if policyVersion == "" {
		return Decision{}, fmt.Errorf("%w: policy version is required", ErrInvalidDecision)
	}

	return Decision{
		ID:            uuid.NewString(),
		ProposalID:    proposalID,
		Status:        status,
		PolicyName:    policyName,
		PolicyVersion: policyVersion,
		RuleResults:   ruleResults,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// RejectedReasons returns the codes of the failed rules, preserving rule
// execution order. Empty when the decision is approved.
func (d Decision) RejectedReasons() []string {
	reasons := []string{}
	for _, r := range d.RuleResults {
		if !r.Passed {
			reasons = append(reasons, r.RuleCode)
		}
	}
	return reasons
}
