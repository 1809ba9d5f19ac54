package id

import "go.mongodb.org/mongo-driver/bson/primitive"

// GenerateID creates a unique 24-character hex ID.
// The format is a Mongo ObjectID so both store backends share one ID space.
func GenerateID() string {
	return primitive.NewObjectID().Hex()
}

// Valid reports whether s has the shape of an ID produced by GenerateID.
func Valid(s string) bool {
	return primitive.IsValidObjectID(s)
}
