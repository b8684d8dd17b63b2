package store

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestMemoryFindOneMissing(t *testing.T) {
	mem := NewMemory()

	var out bson.M
	err := mem.FindOne(context.Background(), bson.M{"email": "ghost@example.com"}, &out)
	if !errors.Is(err, mongo.ErrNoDocuments) {
		t.Fatalf("err = %v, want mongo.ErrNoDocuments", err)
	}
}

func TestMemoryUpdateOneFirstMatchOnly(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	for _, status := range []string{"pending", "pending"} {
		if _, err := mem.InsertOne(ctx, bson.M{"status": status}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	res, err := mem.UpdateOne(ctx, bson.M{"status": "pending"}, bson.M{"$set": bson.M{"status": "confirmed"}})
	if err != nil {
		t.Fatalf("UpdateOne: %v", err)
	}
	if res.MatchedCount != 1 || res.ModifiedCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", res.MatchedCount, res.ModifiedCount)
	}

	remaining, err := mem.FindMany(ctx, bson.M{"status": "pending"})
	if err != nil {
		t.Fatalf("FindMany: %v", err)
	}
	if len(remaining) != 1 {
		t.Errorf("expected one pending booking to remain, got %d", len(remaining))
	}
}

func TestMemoryDeleteOneFirstMatchOnly(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if _, err := mem.InsertOne(ctx, bson.M{"name": "dup"}); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}

	res, err := mem.DeleteOne(ctx, bson.M{"name": "dup"})
	if err != nil {
		t.Fatalf("DeleteOne: %v", err)
	}
	if res.DeletedCount != 1 {
		t.Errorf("DeletedCount = %d, want 1", res.DeletedCount)
	}

	all, err := mem.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 document left, got %d", len(all))
	}
}

func TestMemoryInsertAssignsID(t *testing.T) {
	mem := NewMemory()

	res, err := mem.InsertOne(context.Background(), bson.M{"name": "autogen"})
	if err != nil {
		t.Fatalf("InsertOne: %v", err)
	}
	if res.InsertedID == nil {
		t.Fatal("expected a generated _id")
	}
}
