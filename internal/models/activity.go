package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is a single logged activity entry. Value semantics depend on
// Type: number of meals, minutes of cardio/stretch/cold plunge, pounds for
// weight, milliliters for water.
type Activity struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AuthorID  primitive.ObjectID `bson:"author_id" json:"author_id"`
	Type      string             `bson:"type" json:"type"` // e.g. "meal", "cardio", "cold plunge"
	Value     float64            `bson:"value" json:"value"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
