/* system.go
 * Contains the methods for interacting with the system config collection
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetSystemConfig returns the singleton system document. A missing document
// decodes to the zero config.
func (s *Store) GetSystemConfig() (SystemConfig, error) {
	var cfg SystemConfig
	err := s.Collections.System.FindOne(context.TODO(), bson.D{{Key: "_id", Value: systemConfigID}}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return SystemConfig{ID: systemConfigID, Week: 1}, nil
		}
		return SystemConfig{}, fmt.Errorf("error fetching system config from db: %w", err)
	}
	return cfg, nil
}

// SaveSystemConfig stores the display week and featured game ids.
func (s *Store) SaveSystemConfig(cfg SystemConfig) error {
	filter := bson.M{"_id": systemConfigID}
	update := bson.M{"$set": bson.M{
		"week":              cfg.Week,
		"featured_game_ids": cfg.FeaturedGameIDs,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := s.Collections.System.UpdateOne(context.TODO(), filter, update, opts); err != nil {
		return fmt.Errorf("failed to save system config: %w", err)
	}
	return nil
}
