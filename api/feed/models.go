/* models.go
 * Contains the JSON structures returned by the ESPN college football
 * scoreboard endpoint. Only the fields we read are declared.
 */

package feed

type scoreboardResponse struct {
	Events []event `json:"events"`
}

type event struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ShortName    string        `json:"shortName"`
	Date         string        `json:"date"`
	Week         eventWeek     `json:"week"`
	Competitions []competition `json:"competitions"`
}

type eventWeek struct {
	Number int `json:"number"`
}

type competition struct {
	Competitors []competitor `json:"competitors"`
	Odds        []odds       `json:"odds"`
	Status      status       `json:"status"`
}

type competitor struct {
	HomeAway string      `json:"homeAway"`
	Score    string      `json:"score"`
	Team     team        `json:"team"`
	Rank     curatedRank `json:"curatedRank"`
	Records  []record    `json:"records"`
}

type team struct {
	ID           string `json:"id"`
	DisplayName  string `json:"displayName"`
	Abbreviation string `json:"abbreviation"`
	Logo         string `json:"logo"`
}

type curatedRank struct {
	Current int `json:"current"`
}

type record struct {
	Type    string `json:"type"`
	Summary string `json:"summary"`
}

type odds struct {
	Details string `json:"details"`
}

type status struct {
	Period int        `json:"period"`
	Clock  string     `json:"displayClock"`
	Type   statusType `json:"type"`
}

type statusType struct {
	State string `json:"state"`
}
