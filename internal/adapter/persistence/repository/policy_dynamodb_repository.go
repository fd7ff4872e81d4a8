package repository

import (
	"context"
	"errors"
	"sort"

	"credit_engine/internal/domain/entities"
	"credit_engine/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultPoliciesTableName = "policies"

type policyItem struct {
	Name         string   `dynamodbav:"name"`
	Version      string   `dynamodbav:"version"`
	ID           string   `dynamodbav:"id"`
	ProductTypes []string `dynamodbav:"product_types"`
	Channels     []string `dynamodbav:"channels"`
	IsActive     bool     `dynamodbav:"is_active"`
}

// PolicyDynamoRepository reads Policy entities from DynamoDB.
//
// Table requirements:
//   - PK: name (string), SK: version (string)
//
// (name, version) is the policy's matching identity, so it is also the table
// key: seeding the same policy twice is a no-op, and the same name can exist
// across versions.
//
// The active policy set is expected to stay small (tens of rows), so matching
// scans the table and filters in code, mirroring how policies are resolved
// administratively. When several active policies match a product/channel pair,
// the one with the lowest (name, version) wins - a deterministic tie-break
// instead of scan order.

type PolicyDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPolicyRepository = (*PolicyDynamoRepository)(nil)

func NewPolicyDynamoRepository(ddb *dynamodb.Client) *PolicyDynamoRepository {
	return &PolicyDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("POLICIES_TABLE", defaultPoliciesTableName),
	}
}

func (r *PolicyDynamoRepository) GetByProductAndChannel(ctx context.Context, productType entities.ProductType, channel entities.Channel) (entities.Policy, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("#is_active = :active"),
		ExpressionAttributeNames: map[string]string{
			"#is_active": "is_active",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":active": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.Policy{}, err
	}

	policies := make([]entities.Policy, 0, len(out.Items))
	for _, item := range out.Items {
		var it policyItem
		if err := attributevalue.UnmarshalMap(item, &it); err != nil {
			return entities.Policy{}, err
		}
		policies = append(policies, fromPolicyItem(it))
	}

	sort.Slice(policies, func(i, j int) bool {
		if policies[i].Name != policies[j].Name {
			return policies[i].Name < policies[j].Name
		}
		return policies[i].Version < policies[j].Version
	})

	for _, p := range policies {
		if p.AppliesTo(productType, channel) {
			return p, nil
		}
	}
	return entities.Policy{}, nil
}

func (r *PolicyDynamoRepository) Seed(ctx context.Context, p entities.Policy) error {
	av, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#name)"),
		ExpressionAttributeNames: map[string]string{
			"#name": "name",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func toPolicyItem(p entities.Policy) policyItem {
	productTypes := make([]string, 0, len(p.ProductTypes))
	for _, pt := range p.ProductTypes {
		productTypes = append(productTypes, string(pt))
	}
	channels := make([]string, 0, len(p.Channels))
	for _, c := range p.Channels {
		channels = append(channels, string(c))
	}
	return policyItem{
		Name:         p.Name,
		Version:      p.Version,
		ID:           p.ID,
		ProductTypes: productTypes,
		Channels:     channels,
		IsActive:     p.IsActive,
	}
}

func fromPolicyItem(it policyItem) entities.Policy {
	productTypes := make([]entities.ProductType, 0, len(it.ProductTypes))
	for _, pt := range it.ProductTypes {
		productTypes = append(productTypes, entities.ProductType(pt))
	}
	channels := make([]entities.Channel, 0, len(it.Channels))
	for _, c := range it.Channels {
		channels = append(channels, entities.Channel(c))
	}
	return entities.Policy{
		ID:           it.ID,
		Name:         it.Name,
		Version:      it.Version,
		ProductTypes: productTypes,
		Channels:     channels,
		IsActive:     it.IsActive,
	}
}
