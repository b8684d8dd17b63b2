package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the per-collection capability set the route handlers are
// written against. All operations act on at most one document except the two
// find variants; write results are the driver's acknowledgement objects and
// are forwarded to clients as-is.
type Collection interface {
	FindAll(ctx context.Context) ([]bson.M, error)
	FindMany(ctx context.Context, filter bson.M) ([]bson.M, error)
	// FindOne decodes the first match into out and returns
	// mongo.ErrNoDocuments when nothing matches.
	FindOne(ctx context.Context, filter bson.M, out interface{}) error
	InsertOne(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter, update bson.M) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error)
}

// Mongo adapts a *mongo.Collection to the Collection interface.
type Mongo struct {
	coll *mongo.Collection
}

func NewMongo(coll *mongo.Collection) *Mongo {
	return &Mongo{coll: coll}
}

func (m *Mongo) FindAll(ctx context.Context) ([]bson.M, error) {
	return m.FindMany(ctx, bson.M{})
}

func (m *Mongo) FindMany(ctx context.Context, filter bson.M) ([]bson.M, error) {
	cursor, err := m.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

func (m *Mongo) FindOne(ctx context.Context, filter bson.M, out interface{}) error {
	return m.coll.FindOne(ctx, filter).Decode(out)
}

func (m *Mongo) InsertOne(ctx context.Context, doc interface{}) (*mongo.InsertOneResult, error) {
	return m.coll.InsertOne(ctx, doc)
}

func (m *Mongo) UpdateOne(ctx context.Context, filter, update bson.M) (*mongo.UpdateResult, error) {
	return m.coll.UpdateOne(ctx, filter, update)
}

func (m *Mongo) DeleteOne(ctx context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	return m.coll.DeleteOne(ctx, filter)
}
