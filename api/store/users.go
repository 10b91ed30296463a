/* users.go
 * Contains the methods for interacting with the users collection
 */

package store

import (
	"context"
	"fmt"

	"cfb-pickem/api/shared"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureUser creates the user document if it does not exist. Names are the
// identity (case-sensitive); there is no authentication in this system.
func (s *Store) EnsureUser(name string) error {
	if name == "" {
		return fmt.Errorf("user name cannot be empty")
	}
	filter := bson.M{"name": name}
	update := bson.M{"$setOnInsert": bson.M{"wins": 0, "playoff_points": 0}}
	opts := options.Update().SetUpsert(true)
	if _, err := s.Collections.Users.UpdateOne(context.TODO(), filter, update, opts); err != nil {
		return fmt.Errorf("failed to ensure user %s: %w", name, err)
	}
	return nil
}

// GetUsers returns every user.
func (s *Store) GetUsers() ([]shared.User, error) {
	cursor, err := s.Collections.Users.Find(context.TODO(), bson.D{})
	if err != nil {
		return nil, fmt.Errorf("error fetching users from db: %w", err)
	}
	var users []shared.User
	if err = cursor.All(context.TODO(), &users); err != nil {
		return nil, fmt.Errorf("error unpacking cursor into slice of users: %w", err)
	}
	return users, nil
}

// SetSeasonWins overwrites the cached win totals from a full recount. Users
// absent from the map are reset to zero: the recount is the source of truth
// and a stale cached total must not survive it.
func (s *Store) SetSeasonWins(wins map[string]int) error {
	return s.setUserCounts("wins", wins)
}

// SetPlayoffPoints overwrites the cached bracket scores from a full rescore.
func (s *Store) SetPlayoffPoints(points map[string]int) error {
	return s.setUserCounts("playoff_points", points)
}

func (s *Store) setUserCounts(field string, counts map[string]int) error {
	users, err := s.GetUsers()
	if err != nil {
		return err
	}
	models := make([]mongo.WriteModel, 0, len(users))
	for _, u := range users {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"name": u.Name}).
			SetUpdate(bson.M{"$set": bson.M{field: counts[u.Name]}}))
	}
	if len(models) == 0 {
		return nil
	}
	if _, err := s.Collections.Users.BulkWrite(context.TODO(), models); err != nil {
		return fmt.Errorf("failed to update user %s: %w", field, err)
	}
	return nil
}
