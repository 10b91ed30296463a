/* games.go
 * Contains the methods for interacting with the games collection
 */

package store

import (
	"context"
	"errors"
	"fmt"

	"cfb-pickem/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpsertGames writes a batch of normalized feed games, keyed on the feed's
// game id. Existing documents are replaced field-by-field so a re-sync after
// a score correction updates in place instead of duplicating.
func (s *Store) UpsertGames(games []shared.Game) error {
	if len(games) == 0 {
		return nil
	}
	models := make([]mongo.WriteModel, 0, len(games))
	for _, g := range games {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"id": g.ID}).
			SetUpdate(bson.M{"$set": g}).
			SetUpsert(true))
	}
	if _, err := s.Collections.Games.BulkWrite(context.TODO(), models); err != nil {
		return fmt.Errorf("failed to upsert games: %w", err)
	}
	return nil
}

// GetGames returns every stored game.
func (s *Store) GetGames() ([]shared.Game, error) {
	return s.findGames(bson.D{})
}

// GetGamesByWeek returns the stored games for one week.
func (s *Store) GetGamesByWeek(week int) ([]shared.Game, error) {
	return s.findGames(bson.D{{Key: "week", Value: week}})
}

func (s *Store) findGames(filter bson.D) ([]shared.Game, error) {
	cursor, err := s.Collections.Games.Find(context.TODO(), filter)
	if err != nil {
		return nil, fmt.Errorf("error fetching games from db: %w", err)
	}
	var games []shared.Game
	if err = cursor.All(context.TODO(), &games); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of games: %w", err)
	}
	return games, nil
}

// GetGameByID returns a single game by feed id.
func (s *Store) GetGameByID(id string) (shared.Game, error) {
	opts := options.FindOne()
	var g shared.Game
	err := s.Collections.Games.FindOne(context.TODO(), bson.D{{Key: "id", Value: id}}, opts).Decode(&g)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return shared.Game{}, err
		}
		return shared.Game{}, fmt.Errorf("error fetching game %s from db: %w", id, err)
	}
	return g, nil
}

// SetGameSpread overwrites the posted spread on one game. This is the single
// entry point for manual line corrections; settlement then re-runs through
// the normal path instead of a bespoke fixup.
func (s *Store) SetGameSpread(id string, spread string) error {
	res, err := s.Collections.Games.UpdateOne(context.TODO(),
		bson.M{"id": id},
		bson.M{"$set": bson.M{"spread": spread}})
	if err != nil {
		return fmt.Errorf("failed to update spread for game %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("no game with id %s", id)
	}
	return nil
}
