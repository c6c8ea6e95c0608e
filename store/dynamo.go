package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

// DynamoClient is a thin wrapper around the DynamoDB SDK shared by all
// table-specific stores.
type DynamoClient struct {
	Client *dynamodb.Client
	Logger *zap.Logger
}

// InitializeDynamoDBClient initializes the DynamoDB client for the given region
func InitializeDynamoDBClient(ctx context.Context, region string) (*dynamodb.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return dynamodb.NewFromConfig(cfg), nil
}

// PutItem marshals item and writes it to tableName, overwriting any item
// with the same key.
func (dc *DynamoClient) PutItem(ctx context.Context, tableName string, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("failed to marshal item for table '%s': %w", tableName, err)
	}

	_, err = dc.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(tableName),
		Item:      marshaled,
	})
	if err != nil {
		return fmt.Errorf("failed to put item in table '%s': %w", tableName, err)
	}
	dc.Logger.Debug("item written", zap.String("table", tableName))
	return nil
}

// GetItem retrieves a single item by key. Returns ErrNotFound when absent.
func (dc *DynamoClient) GetItem(ctx context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	output, err := dc.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(tableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get item from table '%s': %w", tableName, err)
	}
	if output.Item == nil {
		return nil, ErrNotFound
	}
	return output.Item, nil
}

// QueryItems queries a table by its primary key condition
func (dc *DynamoClient) QueryItems(
	ctx context.Context,
	tableName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	limit int32,
) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(tableName),
		KeyConditionExpression:    aws.String(keyConditionExpression),
		ExpressionAttributeValues: expressionAttributeValues,
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	output, err := dc.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query items from table '%s': %w", tableName, err)
	}
	return output.Items, nil
}

// QueryItemsWithIndex queries a table through a Global Secondary Index
func (dc *DynamoClient) QueryItemsWithIndex(
	ctx context.Context,
	tableName string,
	indexName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	limit int32,
) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(tableName),
		IndexName:                 aws.String(indexName),
		KeyConditionExpression:    aws.String(keyConditionExpression),
		ExpressionAttributeValues: expressionAttributeValues,
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	output, err := dc.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query GSI '%s' on table '%s': %w", indexName, tableName, err)
	}
	dc.Logger.Debug("GSI query complete",
		zap.String("table", tableName),
		zap.String("index", indexName),
		zap.Int("items", len(output.Items)))
	return output.Items, nil
}

// QueryItemsSorted queries a table ordered by its sort key. latestFirst
// selects descending order (newest items first).
func (dc *DynamoClient) QueryItemsSorted(
	ctx context.Context,
	tableName string,
	keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	limit int32,
	latestFirst bool,
) ([]map[string]types.AttributeValue, error) {
	input := &dynamodb.QueryInput{
		TableName:                 aws.String(tableName),
		KeyConditionExpression:    aws.String(keyConditionExpression),
		ExpressionAttributeValues: expressionAttributeValues,
		ScanIndexForward:          aws.Bool(!latestFirst),
	}
	if limit > 0 {
		input.Limit = aws.Int32(limit)
	}

	output, err := dc.Client.Query(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("failed to query table '%s': %w", tableName, err)
	}
	return output.Items, nil
}

// ScanExcluding performs a full scan of tableName, filtering out items whose
// attribute equals the excluded value, and unmarshals the remainder into
// result (a pointer to a slice of structs). A full-population scan is a
// documented scaling limit of the discovery path.
func (dc *DynamoClient) ScanExcluding(
	ctx context.Context,
	tableName string,
	attribute string,
	excludedValue string,
	result interface{},
) error {
	input := &dynamodb.ScanInput{
		TableName:        aws.String(tableName),
		FilterExpression: aws.String(fmt.Sprintf("#%s <> :%s", attribute, attribute)),
		ExpressionAttributeNames: map[string]string{
			"#" + attribute: attribute,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":" + attribute: &types.AttributeValueMemberS{Value: excludedValue},
		},
	}

	output, err := dc.Client.Scan(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to scan table '%s': %w", tableName, err)
	}

	if err := attributevalue.UnmarshalListOfMaps(output.Items, result); err != nil {
		return fmt.Errorf("failed to unmarshal scan result: %w", err)
	}
	return nil
}

// UpdateItem applies a SET update expression and returns the new attributes.
// A non-empty conditionExpression guards the write; when it does not hold the
// item is left untouched and ErrNotFound is returned, keeping UpdateItem an
// update rather than an upsert.
func (dc *DynamoClient) UpdateItem(
	ctx context.Context,
	tableName string,
	updateExpression string,
	conditionExpression string,
	key map[string]types.AttributeValue,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) (map[string]types.AttributeValue, error) {
	input := &dynamodb.UpdateItemInput{
		TableName:                 aws.String(tableName),
		Key:                       key,
		UpdateExpression:          aws.String(updateExpression),
		ExpressionAttributeValues: expressionAttributeValues,
		ExpressionAttributeNames:  expressionAttributeNames,
		ReturnValues:              types.ReturnValueAllNew,
	}
	if conditionExpression != "" {
		input.ConditionExpression = aws.String(conditionExpression)
	}

	output, err := dc.Client.UpdateItem(ctx, input)
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update item in table '%s': %w", tableName, err)
	}
	return output.Attributes, nil
}
