package repository

import (
	"context"
	"strconv"
	"time"

	"credit_engine/internal/domain/entities"
	"credit_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultProposalsTableName  = "proposals"
	defaultApplicantsTableName = "applicants"
)

type applicantItem struct {
	DocumentNumber string `dynamodbav:"document_number"`
	Name           string `dynamodbav:"name"`
	MonthlyIncome  string `dynamodbav:"monthly_income"`
	Age            int    `dynamodbav:"age"`
}

type proposalItem struct {
	ID              string `dynamodbav:"id"`
	DocumentNumber  string `dynamodbav:"document_number"`
	RequestedAmount string `dynamodbav:"requested_amount"`
	Installments    int    `dynamodbav:"installments"`
	ProductType     string `dynamodbav:"product_type"`
	Channel         string `dynamodbav:"channel"`
	CreatedAt       string `dynamodbav:"created_at"`
}

// ProposalDynamoRepository persists Proposal entities (and their applicant
// snapshot) in DynamoDB.
//
// Table requirements:
//   - proposals:  PK: id (string)
//   - applicants: PK: document_number (string)
//
// The applicant row is an unconditional put: resubmitting with the same
// document number refreshes the applicant record (idempotent upsert), while
// the proposal keeps its own snapshot of the data it was evaluated with.

type ProposalDynamoRepository struct {
	ddb             *dynamodb.Client
	tableName       string
	applicantsTable string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:             ddb,
		tableName:       getenvDefault("PROPOSALS_TABLE", defaultProposalsTableName),
		applicantsTable: getenvDefault("APPLICANTS_TABLE", defaultApplicantsTableName),
	}
}

func (r *ProposalDynamoRepository) Save(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	applicantAV, err := attributevalue.MarshalMap(toApplicantItem(p.Applicant))
	if err != nil {
		return entities.Proposal{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.applicantsTable),
		Item:      applicantAV,
	}); err != nil {
		return entities.Proposal{}, err
	}

	proposalAV, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}
	if _, err := r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      proposalAV,
	}); err != nil {
		return entities.Proposal{}, err
	}

	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}

	applicant, err := r.getApplicant(ctx, it.DocumentNumber)
	if err != nil {
		return entities.Proposal{}, err
	}

	return fromProposalItem(it, applicant), nil
}

func (r *ProposalDynamoRepository) getApplicant(ctx context.Context, documentNumber string) (entities.Applicant, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.applicantsTable),
		Key: map[string]types.AttributeValue{
			"document_number": &types.AttributeValueMemberS{Value: documentNumber},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Applicant{}, err
	}
	if len(out.Item) == 0 {
		return entities.Applicant{}, nil
	}

	var it applicantItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Applicant{}, err
	}
	return fromApplicantItem(it), nil
}

func toApplicantItem(a entities.Applicant) applicantItem {
	return applicantItem{
		DocumentNumber: a.DocumentNumber,
		Name:           a.Name,
		MonthlyIncome:  floatToString(a.MonthlyIncome),
		Age:            a.Age,
	}
}

func fromApplicantItem(it applicantItem) entities.Applicant {
	income, _ := strconv.ParseFloat(it.MonthlyIncome, 64)
	return entities.Applicant{
		DocumentNumber: it.DocumentNumber,
		Name:           it.Name,
		MonthlyIncome:  income,
		Age:            it.Age,
	}
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:              p.ID,
		DocumentNumber:  p.Applicant.DocumentNumber,
		RequestedAmount: floatToString(p.RequestedAmount),
		Installments:    p.Installments,
		ProductType:     string(p.ProductType),
		Channel:         string(p.Channel),
		CreatedAt:       p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProposalItem(it proposalItem, applicant entities.Applicant) entities.Proposal {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	amount, _ := strconv.ParseFloat(it.RequestedAmount, 64)
	return entities.Proposal{
		ID:              it.ID,
		Applicant:       applicant,
		RequestedAmount: amount,
		Installments:    it.Installments,
		ProductType:     entities.ProductType(it.ProductType),
		Channel:         entities.Channel(it.Channel),
		CreatedAt:       createdAt,
	}
}
