package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"credit_engine/internal/domain/entities"
	"credit_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDecisionsTableName = "decisions"
	decisionsIDIndex          = "id-index"
)

type decisionItem struct {
	ProposalID    string `dynamodbav:"proposal_id"`
	ID            string `dynamodbav:"id"`
	Status        string `dynamodbav:"status"`
	PolicyName    string `dynamodbav:"policy_name"`
	PolicyVersion string `dynamodbav:"policy_version"`
	RuleResults   string `dynamodbav:"rule_results"`
	CreatedAt     string `dynamodbav:"created_at"`
}

// DecisionDynamoRepository persists Decision entities in DynamoDB.
//
// Table requirements:
//   - PK: proposal_id (string)
//   - GSI: id-index (PK: id)
//
// We purposely use proposal id as PK to guarantee 1 decision per proposal.
// A concurrent duplicate submission loses the conditional put, and the stored
// decision is read back and returned instead, so duplicates stay idempotent.
//
// Rule results are stored as a JSON string for auditability; map keys come out
// sorted, so the stored form is stable across writes of equal content.

type DecisionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDecisionRepository = (*DecisionDynamoRepository)(nil)

func NewDecisionDynamoRepository(ddb *dynamodb.Client) *DecisionDynamoRepository {
	return &DecisionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("DECISIONS_TABLE", defaultDecisionsTableName),
	}
}

func (r *DecisionDynamoRepository) Save(ctx context.Context, d entities.Decision) (entities.Decision, error) {
	it, err := toDecisionItem(d)
	if err != nil {
		return entities.Decision{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Decision{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#proposal_id)"),
		ExpressionAttributeNames: map[string]string{
			"#proposal_id": "proposal_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return r.GetByProposalID(ctx, d.ProposalID)
		}
		return entities.Decision{}, err
	}
	return d, nil
}

func (r *DecisionDynamoRepository) GetByProposalID(ctx context.Context, proposalID string) (entities.Decision, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"proposal_id": &types.AttributeValueMemberS{Value: proposalID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Decision{}, err
	}
	if len(out.Item) == 0 {
		return entities.Decision{}, nil
	}

	var it decisionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Decision{}, err
	}
	return fromDecisionItem(it)
}

func (r *DecisionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Decision, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(decisionsIDIndex),
		KeyConditionExpression: aws.String("#id = :id"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Decision{}, err
	}
	if len(out.Items) == 0 {
		return entities.Decision{}, nil
	}

	var it decisionItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Decision{}, err
	}
	return fromDecisionItem(it)
}

func toDecisionItem(d entities.Decision) (decisionItem, error) {
	ruleResults, err := json.Marshal(d.RuleResults)
	if err != nil {
		return decisionItem{}, err
	}
	return decisionItem{
		ProposalID:    d.ProposalID,
		ID:            d.ID,
		Status:        string(d.Status),
		PolicyName:    d.PolicyName,
		PolicyVersion: d.PolicyVersion,
		RuleResults:   string(ruleResults),
		CreatedAt:     d.CreatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromDecisionItem(it decisionItem) (entities.Decision, error) {
	var ruleResults []entities.RuleResult
	if it.RuleResults != "" {
		if err := json.Unmarshal([]byte(it.RuleResults), &ruleResults); err != nil {
			return entities.Decision{}, err
		}
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Decision{
		ID:            it.ID,
		ProposalID:    it.ProposalID,
		Status:        entities.DecisionStatus(it.Status),
		PolicyName:    it.PolicyName,
		PolicyVersion: it.PolicyVersion,
		RuleResults:   ruleResults,
		CreatedAt:     createdAt,
	}, nil
}
