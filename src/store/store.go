package store

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Store is the persistence collaborator documents hand their writes to.
// The mapping layer never talks to a database itself.
type Store interface {
	// Insert persists a full document into a collection and returns the
	// generated identity value.
	Insert(collection string, document bson.M) (primitive.ObjectID, error)

	// Update applies a set-style partial update to the persisted document
	// identified by id.
	Update(collection string, id primitive.ObjectID, set bson.M) error
}
