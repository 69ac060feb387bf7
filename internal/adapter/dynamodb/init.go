package dynamodb

import (
	"context"
	"net/url"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	dynamodbv2 "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/bornholm/lifemap/internal/core/port"
	"github.com/bornholm/lifemap/internal/setup"
	"github.com/pkg/errors"
)

const (
	ParamRegion      = "region"
	ParamEndpoint    = "endpoint"
	ParamCreateTable = "createTable"
)

func init() {
	setup.MarkerStores.Register("dynamodb", createMarkerStore)
}

func createMarkerStore(u *url.URL) (port.MarkerStore, error) {
	table := u.Host
	if table == "" {
		return nil, errors.Errorf("missing table name in uri '%s'", u.Redacted())
	}

	query := u.Query()

	opts := make([]func(*config.LoadOptions) error, 0)

	if region := query.Get(ParamRegion); region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	if u.User != nil {
		secret, _ := u.User.Password()
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(u.User.Username(), secret, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, errors.Wrap(err, "could not load aws config")
	}

	endpoint := query.Get(ParamEndpoint)

	client := dynamodbv2.NewFromConfig(cfg, func(o *dynamodbv2.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	createTable := false
	if rawCreateTable := query.Get(ParamCreateTable); rawCreateTable != "" {
		createTable, err = strconv.ParseBool(rawCreateTable)
		if err != nil {
			return nil, errors.Wrapf(err, "could not parse '%s' parameter", ParamCreateTable)
		}
	}

	return NewMarkerStore(client, table, createTable), nil
}
