package pokedex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
)

func TestGenerationVersionGroup(t *testing.T) {
	expected := []string{
		"red-blue", "gold-silver", "ruby-sapphire", "diamond-pearl",
		"black-white", "x-y", "sun-moon", "sword-shield",
	}

	for i, gen := range pokedex.Generations() {
		vg, ok := gen.VersionGroup()
		assert.True(t, ok, "generation %s", gen)
		assert.Equal(t, expected[i], vg)
	}

	_, ok := pokedex.Generation("9").VersionGroup()
	assert.False(t, ok)
}

func TestParseLearnMethod(t *testing.T) {
	assert.Equal(t, pokedex.MethodLevelUp, pokedex.ParseLearnMethod("level-up"))
	assert.Equal(t, pokedex.MethodEgg, pokedex.ParseLearnMethod("egg"))
	assert.Equal(t, pokedex.MethodOther, pokedex.ParseLearnMethod("stadium-surfing-pikachu"))
	assert.Equal(t, pokedex.MethodOther, pokedex.ParseLearnMethod("all"))
	assert.Equal(t, pokedex.MethodOther, pokedex.ParseLearnMethod(""))
}

func TestParseFilterTokens(t *testing.T) {
	assert.Equal(t, pokedex.MethodAll, pokedex.ParseFilterMethod("All"))
	assert.Equal(t, pokedex.MethodLevelUp, pokedex.ParseFilterMethod(" Level-Up "))
	assert.Equal(t, pokedex.LearnMethod("bogus"), pokedex.ParseFilterMethod("BOGUS"))
	assert.Equal(t, pokedex.LearnMethod(""), pokedex.ParseFilterMethod("   "))

	assert.Equal(t, pokedex.Generation3, pokedex.ParseGeneration(" 3 "))
	assert.Equal(t, pokedex.Generation("gen3"), pokedex.ParseGeneration("gen3"))
}

func TestFilterStateMatches(t *testing.T) {
	detail := pokedex.VersionGroupDetail{
		LevelLearnedAt: 7,
		Method:         "level-up",
		VersionGroup:   "ruby-sapphire",
	}

	testCases := []struct {
		name   string
		filter pokedex.FilterState
		want   bool
	}{
		{"same generation and method", pokedex.FilterState{Generation: "3", Method: pokedex.MethodLevelUp}, true},
		{"same generation, all methods", pokedex.FilterState{Generation: "3", Method: pokedex.MethodAll}, true},
		{"same generation, other method", pokedex.FilterState{Generation: "3", Method: pokedex.MethodMachine}, false},
		{"other generation", pokedex.FilterState{Generation: "1", Method: pokedex.MethodAll}, false},
		{"unknown generation", pokedex.FilterState{Generation: "gen3", Method: pokedex.MethodAll}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Matches(detail))
		})
	}
}

func TestAppStateSnapshotsAreCopies(t *testing.T) {
	original := pokedex.AppState{
		SessionID: "session_1",
		Filter:    pokedex.DefaultFilter(),
	}

	record := &pokedex.CreatureRecord{ID: 25, Name: "pikachu"}
	withRecord := original.WithRecord("pikachu", record, []pokedex.ResolvedMove{{Name: "growl", Level: 1}})
	assert.Nil(t, original.Record)
	assert.Equal(t, 25, withRecord.Record.ID)

	failed := withRecord.WithError("xyzabc123", pokedex.NotFoundMessage)
	assert.Nil(t, failed.Record)
	assert.Empty(t, failed.Moves)
	assert.Equal(t, pokedex.NotFoundMessage, failed.Error)
	assert.NotNil(t, withRecord.Record)

	refiltered := withRecord.WithFilter(pokedex.FilterState{Generation: "2", Method: pokedex.MethodAll})
	assert.Equal(t, pokedex.Generation1, withRecord.Filter.Generation)
	assert.Equal(t, pokedex.Generation2, refiltered.Filter.Generation)
}

func TestDisplayFallsBackToCanonical(t *testing.T) {
	localized := "Eléctrico"
	empty := ""

	assert.Equal(t, "Eléctrico", pokedex.TypeRef{Name: "electric", LocalizedName: &localized}.Display())
	assert.Equal(t, "electric", pokedex.TypeRef{Name: "electric", LocalizedName: &empty}.Display())
	assert.Equal(t, "thunder-shock", pokedex.ResolvedMove{Name: "thunder-shock"}.Display())
}
