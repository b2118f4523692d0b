// internal/teams/registry.go

// Package teams holds the canonical team table. The per-league endpoints are
// filtered views over this one table so the subsets can never drift from the
// full list.
package teams

import "stepchain/internal/models"

var table = []models.Team{
	{Abbreviation: "鹿島", ActiveArea: "茨城県", JoinYear: 1991, League: models.LeagueJ1},
	{Abbreviation: "浦和", ActiveArea: "埼玉県", JoinYear: 1991, League: models.LeagueJ1},
	{Abbreviation: "水戸", ActiveArea: "茨城県", JoinYear: 2000, League: models.LeagueJ2},
}

// All returns every team in registration order.
func All() []models.Team {
	out := make([]models.Team, len(table))
	copy(out, table)
	return out
}

// ByLeague returns the teams of one league, preserving registration order.
func ByLeague(league models.League) []models.Team {
	out := make([]models.Team, 0, len(table))
	for _, t := range table {
		if t.League == league {
			out = append(out, t)
		}
	}
	return out
}
