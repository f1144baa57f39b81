package pokeapi_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/testutils"
)

func newTestClient(t *testing.T) (pokeapi.Client, *testutils.PokeAPIServer) {
	t.Helper()

	srv := testutils.NewPokeAPIServer(t)
	client, err := pokeapi.New(&pokeapi.Config{BaseURL: srv.BaseURL()})
	require.NoError(t, err)

	return client, srv
}

func TestConfigValidate(t *testing.T) {
	cfg := &pokeapi.Config{}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, pokeapi.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.NotEmpty(t, cfg.UserAgent)

	cfg = &pokeapi.Config{BaseURL: "http://localhost:8080/api/v2"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:8080/api/v2/", cfg.BaseURL)

	cfg = &pokeapi.Config{BaseURL: "not a url"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = pokeapi.New(nil)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestGetPokemon(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	pokemon, err := client.GetPokemon(ctx, "pikachu")
	require.NoError(t, err)

	assert.Equal(t, 25, pokemon.ID)
	assert.Equal(t, "pikachu", pokemon.Name)
	assert.Equal(t, 4, pokemon.Height)
	require.Len(t, pokemon.Types, 1)
	assert.Equal(t, "electric", pokemon.Types[0].Type.Name)
	require.Len(t, pokemon.Stats, 6)
	assert.Equal(t, 90, pokemon.Stats[5].BaseStat)
	assert.Equal(t, "https://img.example/artwork/25.png", pokemon.Sprites.Other.OfficialArtwork.FrontDefault)
	require.Len(t, pokemon.Moves, 5)
	assert.Equal(t, "thunder-shock", pokemon.Moves[0].Move.Name)
	require.Len(t, pokemon.Moves[0].VersionGroupDetails, 2)
	assert.Equal(t, "ruby-sapphire", pokemon.Moves[0].VersionGroupDetails[1].VersionGroup.Name)
}

func TestGetPokemonNotFound(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetPokemon(context.Background(), "xyzabc123")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, http.StatusNotFound, errors.GetMeta(err)["status"])
}

func TestGetPokemonRequiresQuery(t *testing.T) {
	client, _ := newTestClient(t)

	_, err := client.GetPokemon(context.Background(), "")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestFollowsEmbeddedLocators(t *testing.T) {
	client, srv := newTestClient(t)
	ctx := context.Background()

	pokemon, err := client.GetPokemon(ctx, "25")
	require.NoError(t, err)

	species, err := client.GetSpecies(ctx, pokemon.Species.URL)
	require.NoError(t, err)
	require.NotNil(t, species.EvolutionChain)

	name, ok := pokeapi.LocalizedName(species.Names, "ja")
	assert.True(t, ok)
	assert.Equal(t, "ピカチュウ", name)

	chain, err := client.GetEvolutionChain(ctx, species.EvolutionChain.URL)
	require.NoError(t, err)
	assert.Equal(t, "pichu", chain.Chain.Species.Name)
	require.Len(t, chain.Chain.EvolvesTo, 1)
	assert.Len(t, chain.Chain.EvolvesTo[0].EvolvesTo, 2)

	assert.Equal(t, 1, srv.Calls("pokemon-species/25"))
	assert.Equal(t, 1, srv.Calls("evolution-chain/10"))
}

func TestRelativeLocators(t *testing.T) {
	client, _ := newTestClient(t)
	ctx := context.Background()

	electric, err := client.GetType(ctx, "type/13/")
	require.NoError(t, err)
	assert.Equal(t, "electric", electric.Name)

	move, err := client.GetMove(ctx, "/move/45")
	require.NoError(t, err)
	assert.Equal(t, "growl", move.Name)
	assert.Nil(t, move.Power)
	require.NotNil(t, move.Accuracy)
	assert.Equal(t, 100, *move.Accuracy)
}

func TestUpstreamFailuresMapToCodes(t *testing.T) {
	client, srv := newTestClient(t)
	ctx := context.Background()

	srv.Fail("move/85", http.StatusServiceUnavailable)
	_, err := client.GetMove(ctx, "move/85")
	require.Error(t, err)
	assert.True(t, errors.IsUnavailable(err))

	_, err = client.GetType(ctx, "")
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestCanceledContext(t *testing.T) {
	client, _ := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.GetPokemon(ctx, "pikachu")
	require.Error(t, err)
	assert.Equal(t, errors.CodeCanceled, errors.GetCode(err))
}

func TestLocalizedName(t *testing.T) {
	names := []pokeapi.Name{
		{Name: "", Language: pokeapi.NamedResource{Name: "fr"}},
		{Name: "Electric", Language: pokeapi.NamedResource{Name: "en"}},
	}

	got, ok := pokeapi.LocalizedName(names, "en")
	assert.True(t, ok)
	assert.Equal(t, "Electric", got)

	_, ok = pokeapi.LocalizedName(names, "fr")
	assert.False(t, ok)
}
