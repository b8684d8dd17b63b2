package bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kidcare/store"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedBooking(t *testing.T, mem *store.Memory, doc bson.M) primitive.ObjectID {
	t.Helper()
	res, err := mem.InsertOne(context.Background(), doc)
	if err != nil {
		t.Fatalf("seeding booking: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID)
}

func TestGetBookingsByEmail(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem)

	seedBooking(t, mem, bson.M{"email": "x@y.com", "package": "weekday"})
	seedBooking(t, mem, bson.M{"email": "x@y.com", "package": "weekend"})
	seedBooking(t, mem, bson.M{"email": "other@y.com", "package": "weekday"})

	req := httptest.NewRequest(http.MethodGet, "/bookings?email=x@y.com", nil)
	w := httptest.NewRecorder()
	svc.GetBookingsByEmail(w, req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var got []map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d bookings, want 2", len(got))
	}
	for _, b := range got {
		if b["email"] != "x@y.com" {
			t.Errorf("booking email = %v, want x@y.com", b["email"])
		}
	}
}

func TestGetBookingsByEmailNoMatch(t *testing.T) {
	svc := NewService(store.NewMemory())

	req := httptest.NewRequest(http.MethodGet, "/bookings?email=nobody@y.com", nil)
	w := httptest.NewRecorder()
	svc.GetBookingsByEmail(w, req, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := strings.TrimSpace(w.Body.String())
	if body != "[]" {
		t.Errorf("body = %q, want empty array", body)
	}
}

func TestCreateBookingIfNewDuplicateStatus(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem)

	post := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/allbookings", strings.NewReader(body))
		w := httptest.NewRecorder()
		svc.CreateBookingIfNew(w, req, nil)
		return w
	}

	first := post(`{"email":"x@y.com","status":"pending"}`)
	if first.Code != http.StatusOK {
		t.Fatalf("first status = %d, want 200", first.Code)
	}
	var ack map[string]interface{}
	if err := json.NewDecoder(first.Body).Decode(&ack); err != nil {
		t.Fatalf("decoding first response: %v", err)
	}
	if ack["InsertedID"] == nil {
		t.Errorf("first response missing InsertedID: %v", ack)
	}

	// any second booking with the same status collides
	second := post(`{"email":"other@y.com","status":"pending"}`)
	var msg map[string]string
	if err := json.NewDecoder(second.Body).Decode(&msg); err != nil {
		t.Fatalf("decoding second response: %v", err)
	}
	if msg["message"] != "already exists" {
		t.Errorf("second response = %v, want already exists", msg)
	}

	docs, err := mem.FindAll(context.Background())
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("expected 1 booking, got %d", len(docs))
	}
}

func TestCheckBookingStatus(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem)
	id := seedBooking(t, mem, bson.M{"email": "x@y.com", "status": "pending"})

	check := func(id, status string) bool {
		req := httptest.NewRequest(http.MethodGet, "/allbookings/status/"+id, strings.NewReader(`{"status":"`+status+`"}`))
		w := httptest.NewRecorder()
		svc.CheckBookingStatus(w, req, httprouter.Params{{Key: "id", Value: id}})
		if w.Code != http.StatusOK {
			t.Fatalf("status code = %d, want 200", w.Code)
		}
		var resp map[string]bool
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		return resp["status"]
	}

	if !check(id.Hex(), "pending") {
		t.Error("matching status should answer true")
	}
	if check(id.Hex(), "confirmed") {
		t.Error("non-matching status should answer false")
	}
	if check(primitive.NewObjectID().Hex(), "pending") {
		t.Error("missing booking should answer false")
	}
}

func TestUpdateBookingStatus(t *testing.T) {
	mem := store.NewMemory()
	svc := NewService(mem)
	id := seedBooking(t, mem, bson.M{"email": "x@y.com", "status": "pending"})

	req := httptest.NewRequest(http.MethodPatch, "/allbookings/status/"+id.Hex(), strings.NewReader(`{"status":"confirmed"}`))
	w := httptest.NewRecorder()
	svc.UpdateBookingStatus(w, req, httprouter.Params{{Key: "id", Value: id.Hex()}})

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var ack map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&ack); err != nil {
		t.Fatalf("decoding ack: %v", err)
	}
	if ack["ModifiedCount"] != float64(1) {
		t.Errorf("ModifiedCount = %v, want 1", ack["ModifiedCount"])
	}

	docs, err := mem.FindMany(context.Background(), bson.M{"status": "confirmed"})
	if err != nil {
		t.Fatalf("FindMany: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("expected the booking status to be confirmed")
	}
}

func TestUpdateBookingStatusNoMatch(t *testing.T) {
	svc := NewService(store.NewMemory())
	id := primitive.NewObjectID().Hex()

	req := httptest.NewRequest(http.MethodPatch, "/allbookings/status/"+id, strings.NewReader(`{"status":"confirmed"}`))
	w := httptest.NewRecorder()
	svc.UpdateBookingStatus(w, req, httprouter.Params{{Key: "id", Value: id}})

	// no match is still a 200 with a zero-count ack; clients inspect the payload
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var ack map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&ack); err != nil {
		t.Fatalf("decoding ack: %v", err)
	}
	if ack["MatchedCount"] != float64(0) {
		t.Errorf("MatchedCount = %v, want 0", ack["MatchedCount"])
	}
}
