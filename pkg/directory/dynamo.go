package directory

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// MeetingIndex is the secondary index used for roster queries.
const MeetingIndex = "meetingIdIndex"

// DynamoAPI is the slice of the DynamoDB client the directory uses.
type DynamoAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
}

type dynamoDirectory struct {
	client DynamoAPI
	table  string
}

// NewDynamoDirectory returns a Directory backed by a DynamoDB table with a
// fromNumber/callId composite key and a meetingIdIndex secondary index.
func NewDynamoDirectory(client DynamoAPI, table string) Directory {
	return &dynamoDirectory{client: client, table: table}
}

func callerKey(fromNumber, callID string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"fromNumber": &types.AttributeValueMemberS{Value: fromNumber},
		"callId":     &types.AttributeValueMemberS{Value: callID},
	}
}

func (d *dynamoDirectory) FindByCaller(ctx context.Context, fromNumber, callID string) (*Record, error) {
	out, err := d.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key:       callerKey(fromNumber, callID),
	})
	if err != nil {
		return nil, fmt.Errorf("get attendee record: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var rec Record
	if err := attributevalue.UnmarshalMap(out.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal attendee record: %w", err)
	}
	return &rec, nil
}

func (d *dynamoDirectory) FindAllByMeeting(ctx context.Context, meetingID string) ([]Record, error) {
	var roster []Record
	var startKey map[string]types.AttributeValue

	for {
		out, err := d.client.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(d.table),
			IndexName:              aws.String(MeetingIndex),
			KeyConditionExpression: aws.String("meetingId = :meetingId"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":meetingId": &types.AttributeValueMemberS{Value: meetingID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("query meeting roster: %w", err)
		}

		var page []Record
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal meeting roster: %w", err)
		}
		roster = append(roster, page...)

		if out.LastEvaluatedKey == nil {
			return roster, nil
		}
		startKey = out.LastEvaluatedKey
	}
}

func (d *dynamoDirectory) Upsert(ctx context.Context, rec Record) error {
	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal attendee record: %w", err)
	}

	_, err = d.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put attendee record: %w", err)
	}
	return nil
}

func (d *dynamoDirectory) Delete(ctx context.Context, fromNumber, callID string) error {
	_, err := d.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.table),
		Key:       callerKey(fromNumber, callID),
	})
	if err != nil {
		return fmt.Errorf("delete attendee record: %w", err)
	}
	return nil
}
