package creature

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockClient *pokeapimock.MockClient
	svc        Service
	ctx        context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = pokeapimock.NewMockClient(s.ctrl)
	s.ctx = context.Background()

	svc, err := NewOrchestrator(&Config{Client: s.mockClient, Language: "es"})
	s.Require().NoError(err)
	s.svc = svc
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := NewOrchestrator(nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = NewOrchestrator(&Config{})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = NewOrchestrator(&Config{Client: s.mockClient, MaxConcurrentLookups: 100})
	s.Assert().True(errors.IsInvalidArgument(err))

	cfg := &Config{Client: s.mockClient}
	s.Require().NoError(cfg.Validate())
	s.Assert().Equal(DefaultLanguage, cfg.Language)
	s.Assert().Equal(DefaultMaxConcurrentLookups, cfg.MaxConcurrentLookups)
}

func (s *OrchestratorTestSuite) TestQueryIsTrimmedAndLowercased() {
	s.mockClient.EXPECT().
		GetPokemon(s.ctx, "pikachu").
		Return(nil, errors.NotFound("pokeapi returned 404"))

	_, err := s.svc.Lookup(s.ctx, &LookupInput{Query: "  PikaChu \n"})
	s.Assert().True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestEmptyQueryIsNotFound() {
	out, err := s.svc.Lookup(s.ctx, &LookupInput{Query: "   "})
	s.Assert().Nil(out)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal(pokedex.NotFoundMessage, errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestEveryStageFailureCollapsesToNotFound() {
	pokemon := &pokeapi.Pokemon{
		ID:      25,
		Name:    "pikachu",
		Species: pokeapi.NamedResource{Name: "pikachu", URL: "pokemon-species/25/"},
	}
	species := &pokeapi.Species{
		ID:             25,
		EvolutionChain: &pokeapi.Resource{URL: "evolution-chain/10/"},
	}

	testCases := []struct {
		name  string
		setup func()
	}{
		{
			name: "pokemon lookup unavailable",
			setup: func() {
				s.mockClient.EXPECT().GetPokemon(s.ctx, "pikachu").
					Return(nil, errors.Unavailable("pokeapi unreachable"))
			},
		},
		{
			name: "species lookup fails",
			setup: func() {
				s.mockClient.EXPECT().GetPokemon(s.ctx, "pikachu").Return(pokemon, nil)
				s.mockClient.EXPECT().GetSpecies(s.ctx, "pokemon-species/25/").
					Return(nil, errors.Internal("failed to decode"))
			},
		},
		{
			name: "species has no chain locator",
			setup: func() {
				s.mockClient.EXPECT().GetPokemon(s.ctx, "pikachu").Return(pokemon, nil)
				s.mockClient.EXPECT().GetSpecies(s.ctx, "pokemon-species/25/").
					Return(&pokeapi.Species{ID: 25}, nil)
			},
		},
		{
			name: "evolution chain lookup fails",
			setup: func() {
				s.mockClient.EXPECT().GetPokemon(s.ctx, "pikachu").Return(pokemon, nil)
				s.mockClient.EXPECT().GetSpecies(s.ctx, "pokemon-species/25/").Return(species, nil)
				s.mockClient.EXPECT().GetEvolutionChain(s.ctx, "evolution-chain/10/").
					Return(nil, errors.NotFound("pokeapi returned 404"))
			},
		},
		{
			name: "pokemon has no species locator",
			setup: func() {
				s.mockClient.EXPECT().GetPokemon(s.ctx, "pikachu").
					Return(&pokeapi.Pokemon{ID: 25, Name: "pikachu"}, nil)
			},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()

			out, err := s.svc.Lookup(s.ctx, &LookupInput{Query: "pikachu"})
			s.Assert().Nil(out)
			s.Require().Error(err)
			s.Assert().True(errors.IsNotFound(err))
			s.Assert().Equal(pokedex.NotFoundMessage, errors.GetMessage(err))
			s.Assert().Equal("pikachu", errors.GetMeta(err)["query"])
		})
	}
}

func (s *OrchestratorTestSuite) TestTypeLocalizationFailureFallsBackToCanonical() {
	s.mockClient.EXPECT().GetPokemon(s.ctx, "charizard").Return(&pokeapi.Pokemon{
		ID:      6,
		Name:    "charizard",
		Species: pokeapi.NamedResource{URL: "pokemon-species/6/"},
		Types: []pokeapi.PokemonType{
			{Slot: 1, Type: pokeapi.NamedResource{Name: "fire", URL: "type/10/"}},
			{Slot: 2, Type: pokeapi.NamedResource{Name: "flying", URL: "type/3/"}},
		},
		Stats: []pokeapi.PokemonStat{
			{BaseStat: 78, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 300, Stat: pokeapi.NamedResource{Name: "attack"}},
			{BaseStat: -1, Stat: pokeapi.NamedResource{Name: "defense"}},
		},
		Sprites: pokeapi.Sprites{FrontDefault: "https://img.example/sprites/6.png"},
	}, nil)
	s.mockClient.EXPECT().GetSpecies(s.ctx, "pokemon-species/6/").Return(&pokeapi.Species{
		Names: []pokeapi.Name{
			{Name: "Charizard", Language: pokeapi.NamedResource{Name: "en"}},
		},
		EvolutionChain: &pokeapi.Resource{URL: "evolution-chain/2/"},
	}, nil)
	s.mockClient.EXPECT().GetEvolutionChain(s.ctx, "evolution-chain/2/").Return(&pokeapi.EvolutionChain{
		Chain: pokeapi.ChainLink{Species: pokeapi.NamedResource{Name: "charmander"}},
	}, nil)
	s.mockClient.EXPECT().GetType(s.ctx, "type/10/").Return(&pokeapi.Type{
		Name:  "fire",
		Names: []pokeapi.Name{{Name: "Fuego", Language: pokeapi.NamedResource{Name: "es"}}},
	}, nil)
	s.mockClient.EXPECT().GetType(s.ctx, "type/3/").Return(nil, errors.Unavailable("pokeapi returned 503"))

	out, err := s.svc.Lookup(s.ctx, &LookupInput{Query: "charizard"})
	s.Require().NoError(err)

	record := out.Record
	s.Assert().Equal("charizard", record.DisplayName, "no spanish species name, canonical used")
	s.Require().Len(record.Types, 2)
	s.Assert().Equal("fire", record.Types[0].Name)
	s.Assert().Equal("Fuego", record.Types[0].Display())
	s.Assert().Equal("flying", record.Types[1].Name)
	s.Assert().Nil(record.Types[1].LocalizedName)

	s.Assert().Equal([]pokedex.StatEntry{
		{Name: "hp", Value: 78},
		{Name: "attack", Value: 255},
		{Name: "defense", Value: 0},
	}, record.Stats)
	s.Assert().Equal("https://img.example/sprites/6.png", record.ArtworkURL)
}

func TestLookupPikachuAgainstFixtureServer(t *testing.T) {
	srv := testutils.NewPokeAPIServer(t)
	client, err := pokeapi.New(&pokeapi.Config{BaseURL: srv.BaseURL()})
	require.NoError(t, err)

	svc, err := NewOrchestrator(&Config{Client: client, Language: "es"})
	require.NoError(t, err)

	out, err := svc.Lookup(context.Background(), &LookupInput{Query: "Pikachu"})
	require.NoError(t, err)

	record := out.Record
	assert.Equal(t, 25, record.ID)
	assert.Equal(t, "pikachu", record.Name)
	assert.Equal(t, "Pikachu", record.DisplayName)
	assert.InDelta(t, 0.4, record.Height, 1e-9)
	assert.InDelta(t, 6.0, record.Weight, 1e-9)
	assert.Equal(t, "https://img.example/artwork/25.png", record.ArtworkURL)

	require.Len(t, record.Types, 1)
	assert.Equal(t, "Eléctrico", record.Types[0].Display())

	require.Len(t, record.Evolutions, 3)
	assert.Equal(t, "pichu", record.Evolutions[0].Name)
	assert.Nil(t, record.Evolutions[0].MinLevel)
	assert.Equal(t, "pikachu", record.Evolutions[1].Name)
	assert.Nil(t, record.Evolutions[1].MinLevel)
	assert.Equal(t, "raichu", record.Evolutions[2].Name, "first branch only")
	assert.Nil(t, record.Evolutions[2].MinLevel)
	assert.Equal(t, "thunder-stone", record.Evolutions[2].Item)

	require.Len(t, record.Moves, 5)
	assert.Equal(t, "thunder-shock", record.Moves[0].Name)
	assert.Equal(t, srv.BaseURL()+"move/84/", record.Moves[0].Locator)
	assert.Equal(t, pokedex.VersionGroupDetail{
		LevelLearnedAt: 1, Method: "level-up", VersionGroup: "ruby-sapphire",
	}, record.Moves[0].Details[1])

	assert.Zero(t, srv.Calls("move/84"), "moves are not resolved during lookup")
}

func TestLookupNonexistentPokemon(t *testing.T) {
	srv := testutils.NewPokeAPIServer(t)
	client, err := pokeapi.New(&pokeapi.Config{BaseURL: srv.BaseURL()})
	require.NoError(t, err)

	svc, err := NewOrchestrator(&Config{Client: client})
	require.NoError(t, err)

	out, err := svc.Lookup(context.Background(), &LookupInput{Query: "xyzabc123"})
	assert.Nil(t, out)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, pokedex.NotFoundMessage, errors.GetMessage(err))
}

func TestLookupMissingChainAgainstFixtureServer(t *testing.T) {
	srv := testutils.NewPokeAPIServer(t)
	srv.Fail("type/13", http.StatusInternalServerError)
	client, err := pokeapi.New(&pokeapi.Config{BaseURL: srv.BaseURL()})
	require.NoError(t, err)

	svc, err := NewOrchestrator(&Config{Client: client})
	require.NoError(t, err)

	_, err = svc.Lookup(context.Background(), &LookupInput{Query: "missingno"})
	assert.True(t, errors.IsNotFound(err))

	out, err := svc.Lookup(context.Background(), &LookupInput{Query: "25"})
	require.NoError(t, err)
	assert.Equal(t, "electric", out.Record.Types[0].Display(), "failed type lookup keeps canonical name")
}

func TestFlattenEvolution(t *testing.T) {
	level16 := 16
	level36 := 36

	t.Run("single node chain", func(t *testing.T) {
		steps := flattenEvolution(&pokeapi.ChainLink{
			Species:          pokeapi.NamedResource{Name: "tauros"},
			EvolutionDetails: []pokeapi.EvolutionDetail{{MinLevel: &level16}},
		})

		require.Len(t, steps, 1)
		assert.Equal(t, "tauros", steps[0].Name)
		assert.Nil(t, steps[0].MinLevel)
	})

	t.Run("level based chain", func(t *testing.T) {
		steps := flattenEvolution(&pokeapi.ChainLink{
			Species: pokeapi.NamedResource{Name: "charmander"},
			EvolvesTo: []pokeapi.ChainLink{{
				Species: pokeapi.NamedResource{Name: "charmeleon"},
				EvolutionDetails: []pokeapi.EvolutionDetail{
					{MinLevel: &level16, Trigger: pokeapi.NamedResource{Name: "level-up"}},
				},
				EvolvesTo: []pokeapi.ChainLink{{
					Species: pokeapi.NamedResource{Name: "charizard"},
					EvolutionDetails: []pokeapi.EvolutionDetail{
						{MinLevel: &level36, Trigger: pokeapi.NamedResource{Name: "level-up"}},
					},
				}},
			}},
		})

		require.Len(t, steps, 3)
		assert.Nil(t, steps[0].MinLevel)
		require.NotNil(t, steps[1].MinLevel)
		assert.Equal(t, 16, *steps[1].MinLevel)
		require.NotNil(t, steps[2].MinLevel)
		assert.Equal(t, 36, *steps[2].MinLevel)
		assert.Equal(t, "level-up", steps[2].Trigger)
	})

	t.Run("branching chain follows first child", func(t *testing.T) {
		steps := flattenEvolution(&pokeapi.ChainLink{
			Species: pokeapi.NamedResource{Name: "eevee"},
			EvolvesTo: []pokeapi.ChainLink{
				{Species: pokeapi.NamedResource{Name: "vaporeon"}},
				{Species: pokeapi.NamedResource{Name: "jolteon"}},
				{Species: pokeapi.NamedResource{Name: "flareon"}},
			},
		})

		names := make([]string, len(steps))
		for i, step := range steps {
			names[i] = step.Name
		}
		assert.Equal(t, []string{"eevee", "vaporeon"}, names)
	})
}
