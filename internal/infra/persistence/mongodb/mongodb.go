// Package mongodb contains the concrete implementation of the persistence layer using MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"shop/config"
	"shop/internal/domain/lifecycle"
	"shop/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const emailIndexName = "uniq_users_email"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database handle.
// The connection is verified and indexes are ensured when the application starts,
// and the client is disconnected when it stops.
func New(params Params) (*mongo.Database, error) {
	client, err := mongo.Connect(context.Background(), clientOptions(params.Config, params.Logger))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db, params.Config.Mongo); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", db.Name()))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(client.Disconnect(ctx), "failed to disconnect MongoDB")
		},
	})

	return db, nil
}

func clientOptions(cfg *config.Config, logger *slog.Logger) *options.ClientOptions {
	mongoCfg := cfg.Mongo

	opts := options.Client().
		ApplyURI(mongoCfg.URI).
		SetMonitor(newCommandMonitor(logger, cfg)).
		SetPoolMonitor(newPoolMonitor(logger))

	if mongoCfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(mongoCfg.ConnectTimeout)
	}
	if mongoCfg.ServerSelectionTimeout > 0 {
		opts.SetServerSelectionTimeout(mongoCfg.ServerSelectionTimeout)
	}
	if mongoCfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(mongoCfg.MaxPoolSize)
	}
	if mongoCfg.MinPoolSize > 0 {
		opts.SetMinPoolSize(mongoCfg.MinPoolSize)
	}

	return opts
}

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
// The unique email index is the only source of duplicate-email conflicts.
func EnsureIndexes(ctx context.Context, db *mongo.Database, cfg *config.MongoConfig) error {
	_, err := db.Collection(cfg.UserCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(emailIndexName),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create users email index")
	}

	return nil
}
