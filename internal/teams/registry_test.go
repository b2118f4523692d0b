// internal/teams/registry_test.go
package teams

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stepchain/internal/models"
)

func TestAll_FixedOrder(t *testing.T) {
	all := All()

	require.Len(t, all, 3)
	assert.Equal(t, "鹿島", all[0].Abbreviation)
	assert.Equal(t, "浦和", all[1].Abbreviation)
	assert.Equal(t, "水戸", all[2].Abbreviation)
}

func TestByLeague_PartitionsTable(t *testing.T) {
	j1 := ByLeague(models.LeagueJ1)
	j2 := ByLeague(models.LeagueJ2)

	require.Len(t, j1, 2)
	require.Len(t, j2, 1)
	assert.Equal(t, All(), append(j1, j2...), "the leagues partition the full table in order")
}

func TestByLeague_UnknownLeagueIsEmpty(t *testing.T) {
	assert.Empty(t, ByLeague(models.League("j3")))
}

func TestAll_ReturnsCopy(t *testing.T) {
	first := All()
	first[0].Abbreviation = "mutated"

	assert.Equal(t, "鹿島", All()[0].Abbreviation, "callers cannot mutate the table")
}
