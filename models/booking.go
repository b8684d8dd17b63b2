package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is the typed view of a bookings document; package details beyond
// these fields are stored as submitted.
type Booking struct {
	ID     primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email  string             `json:"email" bson:"email"`
	Status string             `json:"status,omitempty" bson:"status,omitempty"`
}
