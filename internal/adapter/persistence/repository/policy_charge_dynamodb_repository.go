package repository

import (
	"context"
	"encoding/json"
	"errors"

	"autocover/internal/domain/entities"
	"autocover/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPolicyChargesTableName = "policy_charges"
	chargesPolicyIDIndex          = "policy_id-index"
)

type policyChargeItem struct {
	ID                 string `dynamodbav:"id"`
	PolicyID           string `dynamodbav:"policy_id"`
	AmountCents        int64  `dynamodbav:"amount_cents"`
	Status             string `dynamodbav:"status"`
	Description        string `dynamodbav:"description,omitempty"`
	ChargedAt          string `dynamodbav:"charged_at"`
	ProviderPaymentID  string `dynamodbav:"provider_payment_id,omitempty"`
	ProviderPayloadRaw string `dynamodbav:"provider_payload_raw,omitempty"`
}

// PolicyChargeDynamoRepository persists PolicyCharge entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: policy_id-index (PK: policy_id)
//
// The raw provider payload is stored as a JSON string attribute; the parsed
// map on the entity is rebuilt on read and never persisted separately.

type PolicyChargeDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPolicyChargeRepository = (*PolicyChargeDynamoRepository)(nil)

func NewPolicyChargeDynamoRepository(ddb *dynamodb.Client) *PolicyChargeDynamoRepository {
	return &PolicyChargeDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("POLICY_CHARGES_TABLE", defaultPolicyChargesTableName),
	}
}

func (r *PolicyChargeDynamoRepository) Create(ctx context.Context, c entities.PolicyCharge) (entities.PolicyCharge, error) {
	av, err := attributevalue.MarshalMap(toPolicyChargeItem(c))
	if err != nil {
		return entities.PolicyCharge{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PolicyCharge{}, err
	}
	return c, nil
}

func (r *PolicyChargeDynamoRepository) GetByID(ctx context.Context, id string) (entities.PolicyCharge, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PolicyCharge{}, err
	}
	if len(out.Item) == 0 {
		return entities.PolicyCharge{}, nil
	}

	var it policyChargeItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PolicyCharge{}, err
	}
	return fromPolicyChargeItem(it), nil
}

func (r *PolicyChargeDynamoRepository) ListByPolicyID(ctx context.Context, policyID string) ([]entities.PolicyCharge, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(chargesPolicyIDIndex),
		KeyConditionExpression: aws.String("policy_id = :pid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pid": &types.AttributeValueMemberS{Value: policyID},
		},
	})
	if err != nil {
		return nil, err
	}

	charges := make([]entities.PolicyCharge, 0, len(out.Items))
	for _, raw := range out.Items {
		var it policyChargeItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		charges = append(charges, fromPolicyChargeItem(it))
	}
	return charges, nil
}

func (r *PolicyChargeDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ChargeStatus) (entities.PolicyCharge, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PolicyCharge{}, nil
		}
		return entities.PolicyCharge{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PolicyCharge{}, nil
	}

	var it policyChargeItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PolicyCharge{}, err
	}
	return fromPolicyChargeItem(it), nil
}

func toPolicyChargeItem(c entities.PolicyCharge) policyChargeItem {
	return policyChargeItem{
		ID:                 c.ID,
		PolicyID:           c.PolicyID,
		AmountCents:        c.AmountCents,
		Status:             string(c.Status),
		Description:        c.Description,
		ChargedAt:          formatTime(c.ChargedAt),
		ProviderPaymentID:  c.ProviderPaymentID,
		ProviderPayloadRaw: string(c.ProviderPayloadRaw),
	}
}

func fromPolicyChargeItem(it policyChargeItem) entities.PolicyCharge {
	c := entities.PolicyCharge{
		ID:                it.ID,
		PolicyID:          it.PolicyID,
		AmountCents:       it.AmountCents,
		Status:            entities.ChargeStatus(it.Status),
		Description:       it.Description,
		ChargedAt:         parseTime(it.ChargedAt),
		ProviderPaymentID: it.ProviderPaymentID,
	}
	if it.ProviderPayloadRaw != "" {
		c.ProviderPayloadRaw = json.RawMessage(it.ProviderPayloadRaw)
		var parsed map[string]interface{}
		if err := json.Unmarshal(c.ProviderPayloadRaw, &parsed); err == nil {
			c.ProviderPayload = parsed
		}
	}
	return c
}
