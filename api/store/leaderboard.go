/* leaderboard.go
 * Contains the leaderboard read model. The leaderboard is a pure projection of
 * the users collection; settlement passes keep the cached counts current, so
 * there is nothing to compute here beyond ordering.
 */

package store

import "sort"

// Leaderboard returns every user ordered by season wins, playoff points, then
// name for a stable tiebreak.
func (s *Store) Leaderboard() ([]LeaderboardEntry, error) {
	users, err := s.GetUsers()
	if err != nil {
		return nil, err
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for _, u := range users {
		entries = append(entries, LeaderboardEntry{
			Name:          u.Name,
			SeasonWins:    u.SeasonWins,
			PlayoffPoints: u.PlayoffPoints,
		})
	}
	SortLeaderboard(entries)
	return entries, nil
}

// SortLeaderboard orders entries in place: wins descending, playoff points
// descending, then name ascending.
func SortLeaderboard(entries []LeaderboardEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SeasonWins != entries[j].SeasonWins {
			return entries[i].SeasonWins > entries[j].SeasonWins
		}
		if entries[i].PlayoffPoints != entries[j].PlayoffPoints {
			return entries[i].PlayoffPoints > entries[j].PlayoffPoints
		}
		return entries[i].Name < entries[j].Name
	})
}
