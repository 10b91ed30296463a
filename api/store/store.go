/* store.go
 * Contains the Store struct and NewStore function. The methods for this package
 * are split by collection: games, picks, users, playoff and leaderboard each
 * have their own file.
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Document ids for the two singleton config documents.
const (
	systemConfigID  = "config"
	playoffConfigID = "playoff_config"
)

type Store struct {
	Client      *mongo.Client
	Database    *mongo.Database
	Collections struct {
		Games        *mongo.Collection
		Users        *mongo.Collection
		Picks        *mongo.Collection
		BracketPicks *mongo.Collection
		Playoff      *mongo.Collection
		System       *mongo.Collection
	}
}

// NewStore initialises the store: connects to Mongo, binds the collections and
// ensures the pick uniqueness index exists.
func NewStore(dbName string, mongoURI string) (*Store, error) {
	if dbName == "" {
		return nil, fmt.Errorf("dbName cannot be empty")
	}
	client, err := mongo.Connect(context.TODO(), options.Client().ApplyURI(mongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)

	s := &Store{
		Client:   client,
		Database: db,
	}
	s.Collections.Games = db.Collection("games")
	s.Collections.Users = db.Collection("users")
	s.Collections.Picks = db.Collection("picks")
	s.Collections.BracketPicks = db.Collection("bracket_picks")
	s.Collections.Playoff = db.Collection("playoff_config")
	s.Collections.System = db.Collection("system")

	if err := s.ensurePickIndex(); err != nil {
		return nil, fmt.Errorf("failed to ensure pick index: %w", err)
	}

	return s, nil
}

// ensurePickIndex creates the unique (user, gameId) index on picks. The
// uniqueness invariant lives in the database, not just in application code:
// resubmission overwrites, it can never create a duplicate.
func (s *Store) ensurePickIndex() error {
	_, err := s.Collections.Picks.Indexes().CreateOne(context.TODO(), mongo.IndexModel{
		Keys:    bson.D{{Key: "user", Value: 1}, {Key: "gameId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
