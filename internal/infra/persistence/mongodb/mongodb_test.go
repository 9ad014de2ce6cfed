package mongodb_test

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func startMongo(ctx context.Context) (*mongodb.MongoDBContainer, *mongo.Client, error) {
	mongoContainer, err := mongodb.Run(ctx, "mongo:7.0")
	if err != nil {
		return nil, nil, fmt.Errorf("mongodb.Run: %w", err)
	}

	connStr, err := mongoContainer.ConnectionString(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("mc.ConnectionString: %w", err)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(connStr))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo.Connect: %w", err)
	}

	return mongoContainer, client, nil
}
