package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"credit_engine/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// stubHTTPClient feeds canned DynamoDB wire responses to a real client, so the
// repository's error decoding and read-back logic run unchanged.
type stubHTTPClient struct {
	responses []*http.Response
	requests  []*http.Request
}

func (s *stubHTTPClient) Do(req *http.Request) (*http.Response, error) {
	s.requests = append(s.requests, req)
	if len(s.responses) == 0 {
		return nil, fmt.Errorf("unexpected request %d to %s", len(s.requests), req.URL)
	}
	resp := s.responses[0]
	s.responses = s.responses[1:]
	resp.Request = req
	return resp, nil
}

func dynamoResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": []string{"application/x-amz-json-1.0"}},
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func stubbedDynamoClient(stub *stubHTTPClient) *dynamodb.Client {
	return dynamodb.New(dynamodb.Options{
		Region:      "us-east-1",
		Credentials: credentials.NewStaticCredentialsProvider("test", "test", ""),
		HTTPClient:  stub,
		Retryer:     aws.NopRetryer{},
	})
}

const conditionalCheckFailedBody = `{"__type":"com.amazonaws.dynamodb.v20120810#ConditionalCheckFailedException","message":"The conditional request failed"}`

const storedDecisionItemBody = `{"Item":{` +
	`"proposal_id":{"S":"prop-1"},` +
	`"id":{"S":"dec-stored"},` +
	`"status":{"S":"APPROVED"},` +
	`"policy_name":{"S":"DEFAULT_POLICY_V1"},` +
	`"policy_version":{"S":"1.0"},` +
	`"rule_results":{"S":"[{\"rule_code\":\"MIN_INCOME_NOT_MET\",\"passed\":true}]"},` +
	`"created_at":{"S":"2026-01-02T03:04:05.000000001Z"}}}`

func newDecision(t *testing.T, id, proposalID string) entities.Decision {
	t.Helper()
	return entities.Decision{
		ID:            id,
		ProposalID:    proposalID,
		Status:        entities.DecisionStatusApproved,
		PolicyName:    "DEFAULT_POLICY_V1",
		PolicyVersion: "1.0",
		RuleResults:   []entities.RuleResult{{RuleCode: "MIN_INCOME_NOT_MET", Passed: true}},
		CreatedAt:     time.Now().UTC(),
	}
}

func TestDecisionDynamoRepository_Save(t *testing.T) {
	t.Run("first write wins", func(t *testing.T) {
		stub := &stubHTTPClient{responses: []*http.Response{
			dynamoResponse(http.StatusOK, `{}`),
		}}
		repo := NewDecisionDynamoRepository(stubbedDynamoClient(stub))

		d := newDecision(t, "dec-new", "prop-1")
		got, err := repo.Save(context.Background(), d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "dec-new" {
			t.Fatalf("expected dec-new, got %s", got.ID)
		}
		if len(stub.requests) != 1 {
			t.Fatalf("expected 1 request, got %d", len(stub.requests))
		}
	})

	t.Run("duplicate submission returns the stored decision", func(t *testing.T) {
		// The conditional put loses against the existing item; Save must read
		// the stored decision back instead of surfacing an error or returning
		// the freshly built one.
		stub := &stubHTTPClient{responses: []*http.Response{
			dynamoResponse(http.StatusBadRequest, conditionalCheckFailedBody),
			dynamoResponse(http.StatusOK, storedDecisionItemBody),
		}}
		repo := NewDecisionDynamoRepository(stubbedDynamoClient(stub))

		d := newDecision(t, "dec-new", "prop-1")
		got, err := repo.Save(context.Background(), d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "dec-stored" {
			t.Fatalf("expected stored decision dec-stored, got %s", got.ID)
		}
		if got.ProposalID != "prop-1" || got.Status != entities.DecisionStatusApproved {
			t.Fatalf("unexpected stored decision: %+v", got)
		}
		if len(got.RuleResults) != 1 || got.RuleResults[0].RuleCode != "MIN_INCOME_NOT_MET" {
			t.Fatalf("unexpected rule results: %+v", got.RuleResults)
		}
		if len(stub.requests) != 2 {
			t.Fatalf("expected put then read-back, got %d requests", len(stub.requests))
		}
	})

	t.Run("other dynamodb errors surface", func(t *testing.T) {
		stub := &stubHTTPClient{responses: []*http.Response{
			dynamoResponse(http.StatusBadRequest, `{"__type":"com.amazonaws.dynamodb.v20120810#ResourceNotFoundException","message":"Requested resource not found"}`),
		}}
		repo := NewDecisionDynamoRepository(stubbedDynamoClient(stub))

		_, err := repo.Save(context.Background(), newDecision(t, "dec-new", "prop-1"))
		if err == nil {
			t.Fatal("expected error")
		}
		if len(stub.requests) != 1 {
			t.Fatalf("expected no read-back, got %d requests", len(stub.requests))
		}
	})
}
