// internal/models/team.go
package models

// League is the grouping key for team records. It stays internal; the wire
// format carries only the original three fields.
type League string

const (
	LeagueJ1 League = "j1"
	LeagueJ2 League = "j2"
)

// Team is one club record. JSON keys match the original wire format.
type Team struct {
	Abbreviation string `json:"team_abbreviation"`
	ActiveArea   string `json:"active_area"`
	JoinYear     uint   `json:"join_year"`
	League       League `json:"-"`
}
