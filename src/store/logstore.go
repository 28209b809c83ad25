package store

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"mongodm/src/helpers"
	"mongodm/src/settings"
)

// LogStore is a stand-in collaborator that only logs what would be sent to
// the database. Insert still generates and returns a fresh ObjectID so the
// save state machine behaves like it would against a real store.
type LogStore struct {
	logger   *zap.SugaredLogger
	settings *settings.Arguments
}

func NewLogStore(logger *zap.SugaredLogger, args *settings.Arguments) *LogStore {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if args == nil {
		args = &settings.Arguments{}
	}

	return &LogStore{
		logger:   logger,
		settings: args,
	}
}

func (s *LogStore) Insert(collection string, document bson.M) (primitive.ObjectID, error) {
	opID := helpers.GenerateUUID()
	id := primitive.NewObjectID()

	encoded, err := helpers.EncodeBSON(document)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to encode document for collection '%s': %w", collection, err)
	}

	s.logger.Infof("[%s] insert into collection '%s': new _id %s, %d byte document", opID, collection, id.Hex(), len(encoded))
	if s.settings.Debug {
		s.logger.Debugf("[%s] insert payload: %v", opID, document)
	}

	return id, nil
}

func (s *LogStore) Update(collection string, id primitive.ObjectID, set bson.M) error {
	opID := helpers.GenerateUUID()

	encoded, err := helpers.EncodeBSON(bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to encode update for collection '%s': %w", collection, err)
	}

	s.logger.Infof("[%s] update collection '%s' _id %s, %d byte update", opID, collection, id.Hex(), len(encoded))
	if s.settings.Debug {
		s.logger.Debugf("[%s] update payload: {$set: %v}", opID, set)
	}

	return nil
}
