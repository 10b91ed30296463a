/* picks.go
 * Contains the methods for interacting with the picks collection
 */

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertPick records or overwrites a user's pick on a game. New picks start
// pending; overwriting an existing pick resets it to pending so the next
// settlement pass scores the new team, not the old result.
func (s *Store) UpsertPick(user string, gameID string, teamID string, week int) error {
	filter := bson.M{"user": user, "gameId": gameID}
	update := bson.M{"$set": bson.M{
		"teamId": teamID,
		"week":   week,
		"result": ResultPending,
	}}
	opts := options.Update().SetUpsert(true)
	if _, err := s.Collections.Picks.UpdateOne(context.TODO(), filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert pick for %s on game %s: %w", user, gameID, err)
	}
	return nil
}

// GetAllPicks returns every pick in the collection. Win recounts operate on
// the full set, not a week at a time: past results can change.
func (s *Store) GetAllPicks() ([]Pick, error) {
	return s.findPicks(bson.D{})
}

// GetPicksByGameIDs returns all users' picks recorded against the given games.
func (s *Store) GetPicksByGameIDs(gameIDs []string) ([]Pick, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}
	return s.findPicks(bson.D{{Key: "gameId", Value: bson.M{"$in": gameIDs}}})
}

func (s *Store) findPicks(filter bson.D) ([]Pick, error) {
	cursor, err := s.Collections.Picks.Find(context.TODO(), filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching picks from db: %w", err)
	}
	var picks []Pick
	if err = cursor.All(context.TODO(), &picks); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of picks: %w", err)
	}
	return picks, nil
}

// SavePickResults writes settled results back, keyed on (user, gameId) rather
// than document id so a pass over a freshly decoded snapshot can always be
// persisted.
func (s *Store) SavePickResults(picks []Pick) error {
	if len(picks) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(picks))
	for _, p := range picks {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"user": p.User, "gameId": p.GameID}).
			SetUpdate(bson.M{"$set": bson.M{"result": p.Result}}))
	}
	if _, err := s.Collections.Picks.BulkWrite(context.TODO(), models); err != nil {
		return fmt.Errorf("failed to save pick results: %w", err)
	}
	return nil
}
