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

const (
	defaultContractsTableName = "contracts"
	contractsQuoteIDIndex     = "quote_id-index"
)

type addressItem struct {
	Line1      string `dynamodbav:"line1,omitempty"`
	Line2      string `dynamodbav:"line2,omitempty"`
	City       string `dynamodbav:"city,omitempty"`
	State      string `dynamodbav:"state,omitempty"`
	PostalCode string `dynamodbav:"postal_code,omitempty"`
	Country    string `dynamodbav:"country,omitempty"`
}

type paymentCaptureItem struct {
	Method       string `dynamodbav:"method,omitempty"`
	CardBrand    string `dynamodbav:"card_brand,omitempty"`
	CardLastFour string `dynamodbav:"card_last_four,omitempty"`
	ExpMonth     int    `dynamodbav:"exp_month,omitempty"`
	ExpYear      int    `dynamodbav:"exp_year,omitempty"`
	Notes        string `dynamodbav:"notes,omitempty"`
}

type contractItem struct {
	ID              string             `dynamodbav:"id"`
	QuoteID         string             `dynamodbav:"quote_id"`
	State           string             `dynamodbav:"state"`
	FileURL         string             `dynamodbav:"file_url,omitempty"`
	Placeholder     bool               `dynamodbav:"placeholder,omitempty"`
	SignerName      string             `dynamodbav:"signer_name,omitempty"`
	SignerEmail     string             `dynamodbav:"signer_email,omitempty"`
	Consent         bool               `dynamodbav:"consent"`
	Payment         paymentCaptureItem `dynamodbav:"payment,omitempty"`
	BillingAddress  addressItem        `dynamodbav:"billing_address,omitempty"`
	ShippingAddress addressItem        `dynamodbav:"shipping_address,omitempty"`
	SentAt          string             `dynamodbav:"sent_at,omitempty"`
	SignedAt        string             `dynamodbav:"signed_at,omitempty"`
	CreatedAt       string             `dynamodbav:"created_at"`
	UpdatedAt       string             `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists Contract entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: quote_id-index (PK: quote_id)
//
// The stored payment capture already carries only masked card metadata; the
// full card number and CVV never reach this layer.

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) Create(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
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
		return entities.Contract{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contract, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Contract{}, err
	}
	if len(out.Item) == 0 {
		return entities.Contract{}, nil
	}

	var it contractItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Contract{}, err
	}
	return fromContractItem(it), nil
}

func (r *ContractDynamoRepository) ListByQuoteID(ctx context.Context, quoteID string) ([]entities.Contract, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(contractsQuoteIDIndex),
		KeyConditionExpression: aws.String("quote_id = :qid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":qid": &types.AttributeValueMemberS{Value: quoteID},
		},
	})
	if err != nil {
		return nil, err
	}

	contracts := make([]entities.Contract, 0, len(out.Items))
	for _, raw := range out.Items {
		var it contractItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		contracts = append(contracts, fromContractItem(it))
	}
	return contracts, nil
}

// Save overwrites the full contract row; used for the sign transition and
// for voiding superseded contracts.
func (r *ContractDynamoRepository) Save(ctx context.Context, c entities.Contract) (entities.Contract, error) {
	av, err := attributevalue.MarshalMap(toContractItem(c))
	if err != nil {
		return entities.Contract{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Contract{}, err
	}
	return c, nil
}

func toContractItem(c entities.Contract) contractItem {
	it := contractItem{
		ID:          c.ID,
		QuoteID:     c.QuoteID,
		State:       string(c.State),
		FileURL:     c.FileURL,
		Placeholder: c.Placeholder,
		SignerName:  c.SignerName,
		SignerEmail: c.SignerEmail,
		Consent:     c.Consent,
		Payment: paymentCaptureItem{
			Method:       c.Payment.Method,
			CardBrand:    c.Payment.CardBrand,
			CardLastFour: c.Payment.CardLastFour,
			ExpMonth:     c.Payment.ExpMonth,
			ExpYear:      c.Payment.ExpYear,
			Notes:        c.Payment.Notes,
		},
		BillingAddress:  toAddressItem(c.BillingAddress),
		ShippingAddress: toAddressItem(c.ShippingAddress),
		SentAt:          formatTime(c.SentAt),
		CreatedAt:       formatTime(c.CreatedAt),
		UpdatedAt:       formatTime(c.UpdatedAt),
	}
	if c.SignedAt != nil {
		it.SignedAt = formatTime(*c.SignedAt)
	}
	return it
}

func fromContractItem(it contractItem) entities.Contract {
	c := entities.Contract{
		ID:          it.ID,
		QuoteID:     it.QuoteID,
		State:       entities.ContractState(it.State),
		FileURL:     it.FileURL,
		Placeholder: it.Placeholder,
		SignerName:  it.SignerName,
		SignerEmail: it.SignerEmail,
		Consent:     it.Consent,
		Payment: entities.PaymentCapture{
			Method:       it.Payment.Method,
			CardBrand:    it.Payment.CardBrand,
			CardLastFour: it.Payment.CardLastFour,
			ExpMonth:     it.Payment.ExpMonth,
			ExpYear:      it.Payment.ExpYear,
			Notes:        it.Payment.Notes,
		},
		BillingAddress:  fromAddressItem(it.BillingAddress),
		ShippingAddress: fromAddressItem(it.ShippingAddress),
		SentAt:          parseTime(it.SentAt),
		CreatedAt:       parseTime(it.CreatedAt),
		UpdatedAt:       parseTime(it.UpdatedAt),
	}
	if it.SignedAt != "" {
		signedAt := parseTime(it.SignedAt)
		c.SignedAt = &signedAt
	}
	return c
}

func toAddressItem(a entities.Address) addressItem {
	return addressItem{
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func fromAddressItem(it addressItem) entities.Address {
	return entities.Address{
		Line1:      it.Line1,
		Line2:      it.Line2,
		City:       it.City,
		State:      it.State,
		PostalCode: it.PostalCode,
		Country:    it.Country,
	}
}
