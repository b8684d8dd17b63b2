package db

import (
	"context"

	"kidcare/store"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collections bundles the store handles for every collection the API serves.
// It is built once at startup and injected into the handler services.
type Collections struct {
	Users    store.Collection
	Services store.Collection
	Nannies  store.Collection
	Reviews  store.Collection
	Bookings store.Collection
	Payments store.Collection
}

// Connect dials MongoDB, pings the deployment, and returns the client
// together with the collection handles for the given database.
func Connect(ctx context.Context, uri, dbName string) (*mongo.Client, *Collections, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, err
	}

	database := client.Database(dbName)
	cols := &Collections{
		Users:    store.NewMongo(database.Collection("users")),
		Services: store.NewMongo(database.Collection("services")),
		Nannies:  store.NewMongo(database.Collection("nannies")),
		Reviews:  store.NewMongo(database.Collection("reviews")),
		Bookings: store.NewMongo(database.Collection("bookings")),
		Payments: store.NewMongo(database.Collection("payments")),
	}
	return client, cols, nil
}
