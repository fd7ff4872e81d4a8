package response

import (
	"time"

	"credit_engine/internal/domain/entities"
)

type RuleResultResponse struct {
	RuleCode string                 `json:"rule_code"`
	Passed   bool                   `json:"passed"`
	Message  string                 `json:"message,omitempty"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

type DecisionResponse struct {
	ID              string               `json:"id"`
	ProposalID      string               `json:"proposal_id"`
	Status          string               `json:"status"`
	PolicyName      string               `json:"policy_name"`
	PolicyVersion   string               `json:"policy_version"`
	RejectedReasons []string             `json:"rejected_reasons"`
	RuleResults     []RuleResultResponse `json:"rule_results"`
	CreatedAt       time.Time            `json:"created_at"`
}

func FromDecision(d entities.Decision) DecisionResponse {
	ruleResults := make([]RuleResultResponse, 0, len(d.RuleResults))
	for _, r := range d.RuleResults {
		ruleResults = append(ruleResults, RuleResultResponse{
			RuleCode: r.RuleCode,
			Passed:   r.Passed,
			Message:  r.Message,
			Metadata: r.Metadata,
		})
	}

	return DecisionResponse{
		ID:              d.ID,
		ProposalID:      d.ProposalID,
		Status:          string(d.Status),
		PolicyName:      d.PolicyName,
		PolicyVersion:   d.PolicyVersion,
		RejectedReasons: d.RejectedReasons(),
		RuleResults:     ruleResults,
		CreatedAt:       d.CreatedAt,
	}
}
