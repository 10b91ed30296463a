/* playoff.go
 * Contains the methods for interacting with the playoff_config and
 * bracket_picks collections
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

// GetPlayoffConfig returns the singleton playoff document. A missing document
// is not an error; it decodes to an empty config so callers can ask "is the
// field seeded yet" without special-casing first run.
func (s *Store) GetPlayoffConfig() (PlayoffConfig, error) {
	var cfg PlayoffConfig
	err := s.Collections.Playoff.FindOne(context.TODO(), bson.D{{Key: "_id", Value: playoffConfigID}}).Decode(&cfg)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return PlayoffConfig{ID: playoffConfigID}, nil
		}
		return PlayoffConfig{}, fmt.Errorf("error fetching playoff config from db: %w", err)
	}
	return cfg, nil
}

// StorePlayoffTeams replaces the seeded field. Results are deliberately left
// alone: reseeding mid-playoff is an operator correction, not a reset.
func (s *Store) StorePlayoffTeams(teams []shared.BracketTeam) error {
	filter := bson.M{"_id": playoffConfigID}
	update := bson.M{"$set": bson.M{"teams": teams}}
	opts := options.Update().SetUpsert(true)
	if _, err := s.Collections.Playoff.UpdateOne(context.TODO(), filter, update, opts); err != nil {
		return fmt.Errorf("failed to store playoff teams: %w", err)
	}
	return nil
}

// StorePlayoffResults replaces the actual-winner and match-detail maps from a
// resolution pass. Full replacement, not merge: the pass recomputes everything
// and a correction that removes a winner must actually remove it.
func (s *Store) StorePlayoffResults(results map[string]string, details map[string]MatchDetail) error {
	filter := bson.M{"_id": playoffConfigID}
	update := bson.M{"$set": bson.M{"results": results, "match_details": details}}
	opts := options.Update().SetUpsert(true)
	if _, err := s.Collections.Playoff.UpdateOne(context.TODO(), filter, update, opts); err != nil {
		return fmt.Errorf("failed to store playoff results: %w", err)
	}
	return nil
}

// StoreBracketPick replaces a user's bracket predictions wholesale. There is
// no per-match merge; the client always sends the full bracket.
func (s *Store) StoreBracketPick(user string, predictions map[string]string) error {
	filter := bson.M{"user": user}
	update := bson.M{"$set": bson.M{"picks": predictions}}
	opts := options.Update().SetUpsert(true)
	if _, err := s.Collections.BracketPicks.UpdateOne(context.TODO(), filter, update, opts); err != nil {
		return fmt.Errorf("failed to store bracket pick for %s: %w", user, err)
	}
	return nil
}

// GetBracketPick returns one user's bracket predictions.
func (s *Store) GetBracketPick(user string) (BracketPick, error) {
	var pick BracketPick
	err := s.Collections.BracketPicks.FindOne(context.TODO(), bson.D{{Key: "user", Value: user}}).Decode(&pick)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return BracketPick{}, err
		}
		return BracketPick{}, fmt.Errorf("error fetching bracket pick from db: %w", err)
	}
	return pick, nil
}

// GetAllBracketPicks returns every user's bracket predictions. Used by the
// scoring pass, which recomputes all playoff points in full.
func (s *Store) GetAllBracketPicks() ([]BracketPick, error) {
	cursor, err := s.Collections.BracketPicks.Find(context.TODO(), bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error fetching bracket picks from db: %w", err)
	}
	var picks []BracketPick
	if err = cursor.All(context.TODO(), &picks); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of bracket picks: %w", err)
	}
	return picks, nil
}
