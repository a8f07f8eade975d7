package repository

import (
	"context"
	"errors"
	"time"

	"autocover/internal/domain/entities"
	"autocover/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLeadsTableName = "leads"

type vehicleItem struct {
	Make     string `dynamodbav:"make,omitempty"`
	Model    string `dynamodbav:"model,omitempty"`
	Year     int    `dynamodbav:"year,omitempty"`
	Odometer int64  `dynamodbav:"odometer,omitempty"`
	VIN      string `dynamodbav:"vin,omitempty"`
}

type noteItem struct {
	Text      string `dynamodbav:"text"`
	Author    string `dynamodbav:"author,omitempty"`
	CreatedAt string `dynamodbav:"created_at"`
}

type leadItem struct {
	ID        string      `dynamodbav:"id"`
	Name      string      `dynamodbav:"name"`
	Email     string      `dynamodbav:"email,omitempty"`
	Phone     string      `dynamodbav:"phone,omitempty"`
	Stage     string      `dynamodbav:"stage"`
	Vehicle   vehicleItem `dynamodbav:"vehicle"`
	Notes     []noteItem  `dynamodbav:"notes,omitempty"`
	CreatedAt string      `dynamodbav:"created_at"`
	UpdatedAt string      `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists Lead entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type LeadDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb *dynamodb.Client) *LeadDynamoRepository {
	return &LeadDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LEADS_TABLE", defaultLeadsTableName),
	}
}

func (r *LeadDynamoRepository) Create(ctx context.Context, l entities.Lead) (entities.Lead, error) {
	av, err := attributevalue.MarshalMap(toLeadItem(l))
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return l, nil
}

func (r *LeadDynamoRepository) GetByID(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) UpdateStage(ctx context.Context, id string, stage entities.LeadStage) (entities.Lead, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #stage = :stage, #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":stage":      &types.AttributeValueMemberS{Value: string(stage)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#stage":      "stage",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func (r *LeadDynamoRepository) AppendNote(ctx context.Context, id string, note entities.Note) (entities.Lead, error) {
	noteAV, err := attributevalue.Marshal(noteItem{
		Text:      note.Text,
		Author:    note.Author,
		CreatedAt: formatTime(note.CreatedAt),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #notes = list_append(if_not_exists(#notes, :empty), :note), #updated_at = :updated_at"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":note":       &types.AttributeValueMemberL{Value: []types.AttributeValue{noteAV}},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#notes":      "notes",
			"#updated_at": "updated_at",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}

	var it leadItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Lead{}, err
	}
	return fromLeadItem(it), nil
}

func toLeadItem(l entities.Lead) leadItem {
	it := leadItem{
		ID:    l.ID,
		Name:  l.Name,
		Email: l.Email,
		Phone: l.Phone,
		Stage: string(l.Stage),
		Vehicle: vehicleItem{
			Make:     l.Vehicle.Make,
			Model:    l.Vehicle.Model,
			Year:     l.Vehicle.Year,
			Odometer: l.Vehicle.Odometer,
			VIN:      l.Vehicle.VIN,
		},
		CreatedAt: formatTime(l.CreatedAt),
		UpdatedAt: formatTime(l.UpdatedAt),
	}
	for _, n := range l.Notes {
		it.Notes = append(it.Notes, noteItem{Text: n.Text, Author: n.Author, CreatedAt: formatTime(n.CreatedAt)})
	}
	return it
}

func fromLeadItem(it leadItem) entities.Lead {
	l := entities.Lead{
		ID:    it.ID,
		Name:  it.Name,
		Email: it.Email,
		Phone: it.Phone,
		Stage: entities.LeadStage(it.Stage),
		Vehicle: entities.Vehicle{
			Make:     it.Vehicle.Make,
			Model:    it.Vehicle.Model,
			Year:     it.Vehicle.Year,
			Odometer: it.Vehicle.Odometer,
			VIN:      it.Vehicle.VIN,
		},
		CreatedAt: parseTime(it.CreatedAt),
		UpdatedAt: parseTime(it.UpdatedAt),
	}
	for _, n := range it.Notes {
		l.Notes = append(l.Notes, entities.Note{Text: n.Text, Author: n.Author, CreatedAt: parseTime(n.CreatedAt)})
	}
	return l
}
