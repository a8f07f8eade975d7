package repository

import (
	"context"

	"autocover/internal/domain/entities"
	"autocover/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultBillingProfilesTableName = "billing_profiles"

type billingProfileItem struct {
	PolicyID          string `dynamodbav:"policy_id"`
	PaymentMethod     string `dynamodbav:"payment_method,omitempty"`
	AccountName       string `dynamodbav:"account_name,omitempty"`
	AccountIdentifier string `dynamodbav:"account_identifier,omitempty"`
	CardBrand         string `dynamodbav:"card_brand,omitempty"`
	CardLastFour      string `dynamodbav:"card_last_four,omitempty"`
	CardExpiryMonth   int    `dynamodbav:"card_expiry_month,omitempty"`
	CardExpiryYear    int    `dynamodbav:"card_expiry_year,omitempty"`
	BillingZip        string `dynamodbav:"billing_zip,omitempty"`
	AutopayEnabled    bool   `dynamodbav:"autopay_enabled"`
	Notes             string `dynamodbav:"notes,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// BillingProfileDynamoRepository persists BillingProfile entities in DynamoDB.
//
// Table requirements:
//   - PK: policy_id (string)
//
// A policy has at most one profile, so the policy id is the partition key
// and Put is an unconditional overwrite.

type BillingProfileDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBillingProfileRepository = (*BillingProfileDynamoRepository)(nil)

func NewBillingProfileDynamoRepository(ddb *dynamodb.Client) *BillingProfileDynamoRepository {
	return &BillingProfileDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BILLING_PROFILES_TABLE", defaultBillingProfilesTableName),
	}
}

func (r *BillingProfileDynamoRepository) Put(ctx context.Context, p entities.BillingProfile) (entities.BillingProfile, error) {
	av, err := attributevalue.MarshalMap(toBillingProfileItem(p))
	if err != nil {
		return entities.BillingProfile{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.BillingProfile{}, err
	}
	return p, nil
}

func (r *BillingProfileDynamoRepository) GetByPolicyID(ctx context.Context, policyID string) (entities.BillingProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"policy_id": &types.AttributeValueMemberS{Value: policyID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BillingProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.BillingProfile{}, nil
	}

	var it billingProfileItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BillingProfile{}, err
	}
	return fromBillingProfileItem(it), nil
}

func toBillingProfileItem(p entities.BillingProfile) billingProfileItem {
	return billingProfileItem{
		PolicyID:          p.PolicyID,
		PaymentMethod:     p.PaymentMethod,
		AccountName:       p.AccountName,
		AccountIdentifier: p.AccountIdentifier,
		CardBrand:         p.CardBrand,
		CardLastFour:      p.CardLastFour,
		CardExpiryMonth:   p.CardExpiryMonth,
		CardExpiryYear:    p.CardExpiryYear,
		BillingZip:        p.BillingZip,
		AutopayEnabled:    p.AutopayEnabled,
		Notes:             p.Notes,
		CreatedAt:         formatTime(p.CreatedAt),
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromBillingProfileItem(it billingProfileItem) entities.BillingProfile {
	return entities.BillingProfile{
		PolicyID:          it.PolicyID,
		PaymentMethod:     it.PaymentMethod,
		AccountName:       it.AccountName,
		AccountIdentifier: it.AccountIdentifier,
		CardBrand:         it.CardBrand,
		CardLastFour:      it.CardLastFour,
		CardExpiryMonth:   it.CardExpiryMonth,
		CardExpiryYear:    it.CardExpiryYear,
		BillingZip:        it.BillingZip,
		AutopayEnabled:    it.AutopayEnabled,
		Notes:             it.Notes,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
