package repository

import (
	"context"
	"errors"

	"autocover/internal/domain/entities"
	"autocover/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPoliciesTableName = "policies"
	policiesIDIndex          = "id-index"
)

type policyItem struct {
	LeadID               string `dynamodbav:"lead_id"`
	ID                   string `dynamodbav:"id"`
	Package              string `dynamodbav:"package"`
	PolicyStartDate      string `dynamodbav:"policy_start_date"`
	ExpirationDate       string `dynamodbav:"expiration_date"`
	ExpirationDateManual bool   `dynamodbav:"expiration_date_manual"`
	ExpirationMiles      int64  `dynamodbav:"expiration_miles"`
	DeductibleCents      int64  `dynamodbav:"deductible_cents"`
	TotalPremiumCents    int64  `dynamodbav:"total_premium_cents"`
	DownPaymentCents     int64  `dynamodbav:"down_payment_cents,omitempty"`
	MonthlyPaymentCents  int64  `dynamodbav:"monthly_payment_cents,omitempty"`
	TotalPayments        int    `dynamodbav:"total_payments,omitempty"`
	PaymentOption        string `dynamodbav:"payment_option"`
	CreatedAt            string `dynamodbav:"created_at"`
	UpdatedAt            string `dynamodbav:"updated_at"`
}

// PolicyDynamoRepository persists Policy entities in DynamoDB.
//
// Table requirements:
//   - PK: lead_id (string)
//   - GSI: id-index (PK: id)
//
// The lead id is the partition key on purpose: the conditional put in
// Create is then simultaneously the insert and the "policy already exists
// for this lead" precondition, evaluated atomically by DynamoDB. Two
// concurrent convert calls cannot both succeed; the loser reads back the
// winner's row.

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

func (r *PolicyDynamoRepository) Create(ctx context.Context, p entities.Policy) (entities.Policy, bool, error) {
	av, err := attributevalue.MarshalMap(toPolicyItem(p))
	if err != nil {
		return entities.Policy{}, false, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#lead_id)"),
		ExpressionAttributeNames: map[string]string{
			"#lead_id": "lead_id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			existing, gerr := r.GetByLeadID(ctx, p.LeadID)
			if gerr != nil {
				return entities.Policy{}, false, gerr
			}
			return existing, false, nil
		}
		return entities.Policy{}, false, err
	}
	return p, true, nil
}

func (r *PolicyDynamoRepository) GetByLeadID(ctx context.Context, leadID string) (entities.Policy, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"lead_id": &types.AttributeValueMemberS{Value: leadID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Policy{}, err
	}
	if len(out.Item) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

func (r *PolicyDynamoRepository) GetByID(ctx context.Context, id string) (entities.Policy, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(policiesIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Policy{}, err
	}
	if len(out.Items) == 0 {
		return entities.Policy{}, nil
	}

	var it policyItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyItem(it), nil
}

func toPolicyItem(p entities.Policy) policyItem {
	return policyItem{
		LeadID:               p.LeadID,
		ID:                   p.ID,
		Package:              string(p.Package),
		PolicyStartDate:      formatTime(p.PolicyStartDate),
		ExpirationDate:       formatTime(p.ExpirationDate),
		ExpirationDateManual: p.ExpirationDateManual,
		ExpirationMiles:      p.ExpirationMiles,
		DeductibleCents:      p.DeductibleCents,
		TotalPremiumCents:    p.TotalPremiumCents,
		DownPaymentCents:     p.DownPaymentCents,
		MonthlyPaymentCents:  p.MonthlyPaymentCents,
		TotalPayments:        p.TotalPayments,
		PaymentOption:        string(p.PaymentOption),
		CreatedAt:            formatTime(p.CreatedAt),
		UpdatedAt:            formatTime(p.UpdatedAt),
	}
}

func fromPolicyItem(it policyItem) entities.Policy {
	return entities.Policy{
		LeadID:               it.LeadID,
		ID:                   it.ID,
		Package:              entities.CoveragePlan(it.Package),
		PolicyStartDate:      parseTime(it.PolicyStartDate),
		ExpirationDate:       parseTime(it.ExpirationDate),
		ExpirationDateManual: it.ExpirationDateManual,
		ExpirationMiles:      it.ExpirationMiles,
		DeductibleCents:      it.DeductibleCents,
		TotalPremiumCents:    it.TotalPremiumCents,
		DownPaymentCents:     it.DownPaymentCents,
		MonthlyPaymentCents:  it.MonthlyPaymentCents,
		TotalPayments:        it.TotalPayments,
		PaymentOption:        entities.PaymentOption(it.PaymentOption),
		CreatedAt:            parseTime(it.CreatedAt),
		UpdatedAt:            parseTime(it.UpdatedAt),
	}
}
