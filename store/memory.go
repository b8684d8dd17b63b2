package store

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Memory is an in-process Collection used by handler tests. It supports the
// subset of filter/update semantics the handlers rely on: top-level equality
// filters and $set updates, first match wins.
type Memory struct {
	mu   sync.Mutex
	docs []bson.M
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) FindAll(ctx context.Context) ([]bson.M, error) {
	return m.FindMany(ctx, bson.M{})
}

func (m *Memory) FindMany(_ context.Context, filter bson.M) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []bson.M{}
	for _, doc := range m.docs {
		if matches(doc, filter) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *Memory) FindOne(_ context.Context, filter bson.M, out interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.docs {
		if matches(doc, filter) {
			raw, err := bson.Marshal(doc)
			if err != nil {
				return err
			}
			return bson.Unmarshal(raw, out)
		}
	}
	return mongo.ErrNoDocuments
}

func (m *Memory) InsertOne(_ context.Context, doc interface{}) (*mongo.InsertOneResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}
	stored := bson.M{}
	if err := bson.Unmarshal(raw, &stored); err != nil {
		return nil, err
	}
	if _, ok := stored["_id"]; !ok {
		stored["_id"] = primitive.NewObjectID()
	}
	m.docs = append(m.docs, stored)
	return &mongo.InsertOneResult{InsertedID: stored["_id"]}, nil
}

func (m *Memory) UpdateOne(_ context.Context, filter, update bson.M) (*mongo.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.docs {
		if !matches(doc, filter) {
			continue
		}
		res := &mongo.UpdateResult{MatchedCount: 1}
		if set, ok := update["$set"].(bson.M); ok {
			for k, v := range set {
				if !reflect.DeepEqual(doc[k], v) {
					doc[k] = v
					res.ModifiedCount = 1
				}
			}
		}
		return res, nil
	}
	return &mongo.UpdateResult{}, nil
}

func (m *Memory) DeleteOne(_ context.Context, filter bson.M) (*mongo.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, doc := range m.docs {
		if matches(doc, filter) {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, ok := doc[k]
		if !ok {
			return false
		}
		if !reflect.DeepEqual(got, want) {
			return false
		}
	}
	return true
}
