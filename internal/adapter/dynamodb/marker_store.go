package dynamodb

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	dynamodbv2 "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bornholm/lifemap/internal/core/model"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

// Client is the subset of the DynamoDB API used by the marker store.
type Client interface {
	dynamodbv2.DescribeTableAPIClient
	dynamodbv2.QueryAPIClient
	dynamodbv2.ScanAPIClient

	CreateTable(ctx context.Context, params *dynamodbv2.CreateTableInput, optFns ...func(*dynamodbv2.Options)) (*dynamodbv2.CreateTableOutput, error)
	GetItem(ctx context.Context, params *dynamodbv2.GetItemInput, optFns ...func(*dynamodbv2.Options)) (*dynamodbv2.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodbv2.PutItemInput, optFns ...func(*dynamodbv2.Options)) (*dynamodbv2.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodbv2.UpdateItemInput, optFns ...func(*dynamodbv2.Options)) (*dynamodbv2.UpdateItemOutput, error)
}

type MarkerStore struct {
	table     string
	getClient func(ctx context.Context) (Client, error)
	now       func() time.Time
}

// CreateMarker implements [port.MarkerStore].
func (s *MarkerStore) CreateMarker(ctx context.Context, ownerID model.UserID, fields model.MarkerFields) (model.PersistedMarker, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	now := s.now()
	item := newMarkerItem(model.NewMarkerID(), ownerID, fields, now, now)

	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, errors.Wrap(err, "could not marshal marker")
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name(attrID))).
		Build()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	_, err = client.PutItem(ctx, &dynamodbv2.PutItemInput{
		TableName:                 aws.String(s.table),
		Item:                      av,
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})
	if err != nil {
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			return nil, errors.Wrapf(port.ErrConflict, "marker '%s' already exists", item.ID)
		}

		return nil, errors.Wrapf(err, "could not put marker '%s'", item.ID)
	}

	return item.toMarker(), nil
}

// GetMarkerByID implements [port.MarkerStore].
func (s *MarkerStore) GetMarkerByID(ctx context.Context, id model.MarkerID) (model.PersistedMarker, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := client.GetItem(ctx, &dynamodbv2.GetItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			attrID: &types.AttributeValueMemberS{Value: string(id)},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "could not get marker '%s'", id)
	}

	if len(res.Item) == 0 {
		return nil, errors.WithStack(port.ErrNotFound)
	}

	var item markerItem
	if err := attributevalue.UnmarshalMap(res.Item, &item); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal marker")
	}

	return item.toMarker(), nil
}

// QueryMarkers implements [port.MarkerStore].
func (s *MarkerStore) QueryMarkers(ctx context.Context) ([]model.PersistedMarker, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	paginator := dynamodbv2.NewScanPaginator(client, &dynamodbv2.ScanInput{
		TableName:      aws.String(s.table),
		ConsistentRead: aws.Bool(true),
	})

	markers := make([]model.PersistedMarker, 0)

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "could not scan markers")
		}

		pageMarkers, err := unmarshalMarkers(page.Items)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		markers = append(markers, pageMarkers...)
	}

	return markers, nil
}

// QueryMarkersByOwner implements [port.MarkerStore].
func (s *MarkerStore) QueryMarkersByOwner(ctx context.Context, ownerID model.UserID) ([]model.PersistedMarker, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	expr, err := expression.NewBuilder().
		WithKeyCondition(expression.Key(attrOwnerID).Equal(expression.Value(string(ownerID)))).
		Build()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	paginator := dynamodbv2.NewQueryPaginator(client, &dynamodbv2.QueryInput{
		TableName:                 aws.String(s.table),
		IndexName:                 aws.String(ownerIndexName),
		KeyConditionExpression:    expr.KeyCondition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
	})

	markers := make([]model.PersistedMarker, 0)

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, errors.Wrapf(err, "could not query markers of owner '%s'", ownerID)
		}

		pageMarkers, err := unmarshalMarkers(page.Items)
		if err != nil {
			return nil, errors.WithStack(err)
		}

		markers = append(markers, pageMarkers...)
	}

	return markers, nil
}

// UpdateMarker implements [port.MarkerStore].
func (s *MarkerStore) UpdateMarker(ctx context.Context, id model.MarkerID, fields model.MarkerFields) (model.PersistedMarker, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	item := newMarkerItem(id, "", fields, time.Time{}, s.now())

	update := expression.
		Set(expression.Name("title"), expression.Value(item.Title)).
		Set(expression.Name("date_from"), expression.Value(item.DateFrom)).
		Set(expression.Name("date_to"), expression.Value(item.DateTo)).
		Set(expression.Name("description"), expression.Value(item.Description)).
		Set(expression.Name("location_name"), expression.Value(item.LocationName)).
		Set(expression.Name("location_address"), expression.Value(item.LocationAddress)).
		Set(expression.Name("lat"), expression.Value(item.Lat)).
		Set(expression.Name("lng"), expression.Value(item.Lng)).
		Set(expression.Name("is_private"), expression.Value(item.Private)).
		Set(expression.Name("updated_at"), expression.Value(item.UpdatedAt))

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeExists(expression.Name(attrID))).
		WithUpdate(update).
		Build()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	res, err := client.UpdateItem(ctx, &dynamodbv2.UpdateItemInput{
		TableName: aws.String(s.table),
		Key: map[string]types.AttributeValue{
			attrID: &types.AttributeValueMemberS{Value: string(id)},
		},
		ConditionExpression:       expr.Condition(),
		UpdateExpression:          expr.Update(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var conditionErr *types.ConditionalCheckFailedException
		if errors.As(err, &conditionErr) {
			return nil, errors.WithStack(port.ErrNotFound)
		}

		return nil, errors.Wrapf(err, "could not update marker '%s'", id)
	}

	var updated markerItem
	if err := attributevalue.UnmarshalMap(res.Attributes, &updated); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal marker")
	}

	return updated.toMarker(), nil
}

func unmarshalMarkers(items []map[string]types.AttributeValue) ([]model.PersistedMarker, error) {
	markerItems := make([]markerItem, 0, len(items))
	if err := attributevalue.UnmarshalListOfMaps(items, &markerItems); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal markers")
	}

	markers := make([]model.PersistedMarker, 0, len(markerItems))
	for _, i := range markerItems {
		markers = append(markers, i.toMarker())
	}

	return markers, nil
}

func NewMarkerStore(client Client, table string, createTable bool) *MarkerStore {
	return &MarkerStore{
		table:     table,
		getClient: createGetClient(client, table, createTable),
		now:       time.Now,
	}
}

var _ port.MarkerStore = &MarkerStore{}

func createGetClient(client Client, table string, createTable bool) func(ctx context.Context) (Client, error) {
	var (
		mutex   sync.Mutex
		created bool
	)

	return func(ctx context.Context) (Client, error) {
		if !createTable {
			return client, nil
		}

		mutex.Lock()
		defer mutex.Unlock()

		if created {
			return client, nil
		}

		// Failures are not remembered, the next call tries again
		if err := ensureTable(ctx, client, table); err != nil {
			return nil, errors.WithStack(err)
		}

		created = true

		return client, nil
	}
}

func ensureTable(ctx context.Context, client Client, table string) error {
	_, err := client.CreateTable(ctx, &dynamodbv2.CreateTableInput{
		TableName:   aws.String(table),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(attrID), AttributeType: types.ScalarAttributeTypeS},
			{AttributeName: aws.String(attrOwnerID), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(attrID), KeyType: types.KeyTypeHash},
		},
		GlobalSecondaryIndexes: []types.GlobalSecondaryIndex{
			{
				IndexName: aws.String(ownerIndexName),
				KeySchema: []types.KeySchemaElement{
					{AttributeName: aws.String(attrOwnerID), KeyType: types.KeyTypeHash},
				},
				Projection: &types.Projection{
					ProjectionType: types.ProjectionTypeAll,
				},
			},
		},
	})
	if err != nil {
		var inUseErr *types.ResourceInUseException
		if !errors.As(err, &inUseErr) {
			return errors.Wrapf(err, "could not create table '%s'", table)
		}

		slog.DebugContext(ctx, "table already exists", slog.String("table", table))
	}

	waiter := dynamodbv2.NewTableExistsWaiter(client)

	if err := waiter.Wait(ctx, &dynamodbv2.DescribeTableInput{TableName: aws.String(table)}, 2*time.Minute); err != nil {
		return errors.Wrapf(err, "could not wait for table '%s'", table)
	}

	return nil
}
