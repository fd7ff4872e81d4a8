package entities

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewDecision(t *testing.T) {
	results := []RuleResult{
		{RuleCode: "MIN_INCOME_NOT_MET", Passed: true},
		{RuleCode: "AGE_OUT_OF_RANGE", Passed: false, Message: "Age out of range. Required: 18-65, Provided: 17"},
	}

	t.Run("valid", func(t *testing.T) {
		d, err := NewDecision("prop-1", DecisionStatusRejected, "DEFAULT_POLICY_V1", "1.0", results)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID == "" || d.CreatedAt.IsZero() {
			t.Fatalf("expected generated id and timestamp: %+v", d)
		}
		if d.ProposalID != "prop-1" || d.PolicyName != "DEFAULT_POLICY_V1" || d.PolicyVersion != "1.0" {
			t.Fatalf("unexpected fields: %+v", d)
		}
	})

	cases := []struct {
		name          string
		proposalID    string
		policyName    string
		policyVersion string
	}{
		{name: "missing proposal id", proposalID: "", policyName: "P", policyVersion: "1.0"},
		{name: "missing policy name", proposalID: "prop-1", policyName: "", policyVersion: "1.0"},
		{name: "missing policy version", proposalID: "prop-1", policyName: "P", policyVersion: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewDecision(tc.proposalID, DecisionStatusApproved, tc.policyName, tc.policyVersion, results)
			if !errors.Is(err, ErrInvalidDecision) {
				t.Fatalf("expected ErrInvalidDecision, got %v", err)
			}
		})
	}
}

func TestDecisionRejectedReasons(t *testing.T) {
	t.Run("empty when all passed", func(t *testing.T) {
		d := Decision{RuleResults: []RuleResult{
			{RuleCode: "A", Passed: true},
			{RuleCode: "B", Passed: true},
		}}
		if got := d.RejectedReasons(); len(got) != 0 {
			t.Fatalf("expected no reasons, got %v", got)
		}
	})

	t.Run("preserves execution order", func(t *testing.T) {
		d := Decision{RuleResults: []RuleResult{
			{RuleCode: "A", Passed: false},
			{RuleCode: "B", Passed: true},
			{RuleCode: "C", Passed: false},
			{RuleCode: "D", Passed: false},
		}}
		want := []string{"A", "C", "D"}
		if got := d.RejectedReasons(); !reflect.DeepEqual(got, want) {
			t.Fatalf("expected %v, got %v", want, got)
		}
	})
}
