package helpers

import (
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Add this function to generate UUIDs
func GenerateUUID() string {
	return uuid.New().String()
}

func EncodeBSON(document map[string]interface{}) ([]byte, error) {
	// Encode the map into BSON
	bsonData, err := bson.Marshal(document)
	if err != nil {
		return nil, fmt.Errorf("error encoding BSON: %w", err)
	}

	return bsonData, nil
}

func DecodeBSON(bsonData []byte) (map[string]interface{}, error) {
	// Decode the BSON back into a Go map
	var decodedData map[string]interface{}
	err := bson.Unmarshal(bsonData, &decodedData)
	if err != nil {
		return nil, fmt.Errorf("error decoding BSON: %w", err)
	}

	return decodedData, nil
}
