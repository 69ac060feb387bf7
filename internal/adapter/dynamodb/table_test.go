package dynamodb

import (
	"context"
	"testing"

	dynamodbv2 "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/pkg/errors"
)

type tableClient struct {
	Client
	createTableCalls int
}

func (c *tableClient) CreateTable(ctx context.Context, params *dynamodbv2.CreateTableInput, optFns ...func(*dynamodbv2.Options)) (*dynamodbv2.CreateTableOutput, error) {
	c.createTableCalls++

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &dynamodbv2.CreateTableOutput{}, nil
}

func (c *tableClient) DescribeTable(ctx context.Context, params *dynamodbv2.DescribeTableInput, optFns ...func(*dynamodbv2.Options)) (*dynamodbv2.DescribeTableOutput, error) {
	return &dynamodbv2.DescribeTableOutput{
		Table: &types.TableDescription{
			TableName:   params.TableName,
			TableStatus: types.TableStatusActive,
		},
	}, nil
}

func (c *tableClient) GetItem(ctx context.Context, params *dynamodbv2.GetItemInput, optFns ...func(*dynamodbv2.Options)) (*dynamodbv2.GetItemOutput, error) {
	return &dynamodbv2.GetItemOutput{}, nil
}

func TestMarkerStoreTableCreationRecovers(t *testing.T) {
	client := &tableClient{}
	store := NewMarkerStore(client, "markers", true)

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.GetMarkerByID(canceled, "unknown"); !errors.Is(err, context.Canceled) {
		t.Fatalf("store.GetMarkerByID(canceled): expected context.Canceled, got %+v", err)
	}

	ctx := context.Background()

	if _, err := store.GetMarkerByID(ctx, "unknown"); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("store.GetMarkerByID: expected port.ErrNotFound, got %+v", err)
	}

	if _, err := store.GetMarkerByID(ctx, "unknown"); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("store.GetMarkerByID: expected port.ErrNotFound, got %+v", err)
	}

	if e, g := 2, client.createTableCalls; e != g {
		t.Errorf("client.createTableCalls: expected %d, got %d", e, g)
	}
}
