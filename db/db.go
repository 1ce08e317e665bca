package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DB is the record-store handle shared by every feature package. It is
// constructed once at process start and passed by reference; the four
// collections are the only ones the service touches.
type DB struct {
	Client *mongo.Client

	ShoppingList   *mongo.Collection
	ShoppingPrices *mongo.Collection
	ShoppingStores *mongo.Collection
	Recipes        *mongo.Collection
}

// Connect dials MongoDB, verifies the connection with a ping, and wires up
// the collections.
func Connect(ctx context.Context, uri, dbName string) (*DB, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	if err := client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	d := client.Database(dbName)
	return &DB{
		Client:         client,
		ShoppingList:   d.Collection("shoppingList"),
		ShoppingPrices: d.Collection("shoppingPrices"),
		ShoppingStores: d.Collection("shoppingStores"),
		Recipes:        d.Collection("recipes"),
	}, nil
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}

// OptionsFindLatest sorts by creation time, newest first.
func OptionsFindLatest() *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
}
