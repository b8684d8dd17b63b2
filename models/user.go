package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is the typed view of a users document. Create routes insert the raw
// request body, so documents may carry fields beyond these; only the ones the
// server reads are listed.
type User struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name,omitempty" bson:"name,omitempty"`
	Email string             `json:"email" bson:"email"`
	Photo string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role  string             `json:"role,omitempty" bson:"role,omitempty"`
}
