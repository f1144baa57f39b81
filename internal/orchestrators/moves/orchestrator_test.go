package moves

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	pokeapimock "github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi/mock"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/testutils"
)

func ptr[T any](v T) *T {
	return &v
}

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

	svc, err := NewOrchestrator(&Config{Client: s.mockClient, MaxConcurrentLookups: 4})
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

	_, err = NewOrchestrator(&Config{Client: s.mockClient, MaxConcurrentLookups: -1})
	s.Assert().True(errors.IsInvalidArgument(err))

	cfg := &Config{Client: s.mockClient}
	s.Require().NoError(cfg.Validate())
	s.Assert().Equal(DefaultLanguage, cfg.Language)
	s.Assert().Equal(DefaultMaxConcurrentLookups, cfg.MaxConcurrentLookups)
}

func (s *OrchestratorTestSuite) TestResolveRequiresInput() {
	_, err := s.svc.Resolve(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSortsByLevelAscending() {
	raw := []pokedex.RawMoveRef{
		rawMove("ember", detail("ruby-sapphire", "level-up", 7)),
		rawMove("scratch", detail("ruby-sapphire", "egg", 3)),
	}

	s.mockClient.EXPECT().GetMove(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("offline")).Times(2)

	out, err := s.svc.Resolve(s.ctx, &ResolveInput{
		Moves:  raw,
		Filter: pokedex.FilterState{Generation: pokedex.Generation3, Method: pokedex.MethodAll},
	})
	s.Require().NoError(err)

	want := []pokedex.ResolvedMove{
		{Name: "scratch", Level: 3, Method: pokedex.MethodEgg},
		{Name: "ember", Level: 7, Method: pokedex.MethodLevelUp},
	}
	if diff := cmp.Diff(want, out.Moves); diff != "" {
		s.T().Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func (s *OrchestratorTestSuite) TestEqualLevelsKeepInputOrder() {
	raw := []pokedex.RawMoveRef{
		rawMove("c", detail("red-blue", "level-up", 5)),
		rawMove("a", detail("red-blue", "level-up", 1)),
		rawMove("d", detail("red-blue", "level-up", 5)),
		rawMove("b", detail("red-blue", "level-up", 0)),
		rawMove("e", detail("red-blue", "level-up", 5)),
	}

	s.mockClient.EXPECT().GetMove(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFound("gone")).AnyTimes()

	out, err := s.svc.Resolve(s.ctx, &ResolveInput{Moves: raw, Filter: pokedex.DefaultFilter()})
	s.Require().NoError(err)

	got := make([]string, len(out.Moves))
	for i, m := range out.Moves {
		got[i] = m.Name
	}
	s.Assert().Equal([]string{"a", "b", "c", "d", "e"}, got)
}

func (s *OrchestratorTestSuite) TestLevelComesFromFirstDetail() {
	// The matching detail says 13; the first listed detail says 16.
	raw := []pokedex.RawMoveRef{
		rawMove("quick-attack",
			detail("red-blue", "level-up", 16),
			detail("sword-shield", "level-up", 13)),
	}

	s.mockClient.EXPECT().GetMove(gomock.Any(), "move/quick-attack").
		Return(&pokeapi.Move{Name: "quick-attack"}, nil)

	out, err := s.svc.Resolve(s.ctx, &ResolveInput{
		Moves:  raw,
		Filter: pokedex.FilterState{Generation: pokedex.Generation8, Method: pokedex.MethodLevelUp},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Moves, 1)
	s.Assert().Equal(16, out.Moves[0].Level)
}

func (s *OrchestratorTestSuite) TestSingleLookupFailureIsIsolated() {
	raw := []pokedex.RawMoveRef{
		rawMove("tackle", detail("red-blue", "level-up", 1)),
		rawMove("growl", detail("red-blue", "level-up", 2)),
		rawMove("ember", detail("red-blue", "level-up", 3)),
	}

	s.mockClient.EXPECT().GetMove(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, locator string) (*pokeapi.Move, error) {
			if locator == "move/growl" {
				return nil, errors.Unavailable("connection reset")
			}
			return &pokeapi.Move{
				Names:    []pokeapi.Name{{Name: "Localized " + locator, Language: pokeapi.NamedResource{Name: "en"}}},
				Power:    ptr(40),
				Accuracy: ptr(100),
				Type:     &pokeapi.NamedResource{Name: "normal"},
			}, nil
		}).Times(3)

	out, err := s.svc.Resolve(s.ctx, &ResolveInput{Moves: raw, Filter: pokedex.DefaultFilter()})
	s.Require().NoError(err)

	want := []pokedex.ResolvedMove{
		{
			Name:          "tackle",
			LocalizedName: ptr("Localized move/tackle"),
			Power:         ptr(40),
			Accuracy:      ptr(100),
			Type:          ptr("normal"),
			Level:         1,
			Method:        pokedex.MethodLevelUp,
		},
		{Name: "growl", Level: 2, Method: pokedex.MethodLevelUp},
		{
			Name:          "ember",
			LocalizedName: ptr("Localized move/ember"),
			Power:         ptr(40),
			Accuracy:      ptr(100),
			Type:          ptr("normal"),
			Level:         3,
			Method:        pokedex.MethodLevelUp,
		},
	}
	if diff := cmp.Diff(want, out.Moves); diff != "" {
		s.T().Errorf("Resolve() mismatch (-want +got):\n%s", diff)
	}
}

func (s *OrchestratorTestSuite) TestUnknownGenerationSkipsLookups() {
	out, err := s.svc.Resolve(s.ctx, &ResolveInput{
		Moves:  sampleMoves(),
		Filter: pokedex.FilterState{Generation: "42", Method: pokedex.MethodAll},
	})
	s.Require().NoError(err)
	s.Assert().Empty(out.Moves)
}

func TestResolveDoesNotLeakWorkers(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctrl := gomock.NewController(t)
	client := pokeapimock.NewMockClient(ctrl)

	raw := make([]pokedex.RawMoveRef, 0, 40)
	for i := 0; i < 40; i++ {
		raw = append(raw, rawMove("move", detail("red-blue", "level-up", 40-i)))
	}
	client.EXPECT().GetMove(gomock.Any(), gomock.Any()).
		Return(&pokeapi.Move{}, nil).Times(40)

	svc, err := NewOrchestrator(&Config{Client: client, MaxConcurrentLookups: 3})
	require.NoError(t, err)

	out, err := svc.Resolve(context.Background(), &ResolveInput{Moves: raw, Filter: pokedex.DefaultFilter()})
	require.NoError(t, err)
	require.Len(t, out.Moves, 40)
	assert.Equal(t, 1, out.Moves[0].Level)
	assert.Equal(t, 40, out.Moves[39].Level)
}

func TestResolveAgainstFixtures(t *testing.T) {
	srv := testutils.NewPokeAPIServer(t)
	client, err := pokeapi.New(&pokeapi.Config{BaseURL: srv.BaseURL()})
	require.NoError(t, err)

	pikachu, err := client.GetPokemon(context.Background(), "pikachu")
	require.NoError(t, err)

	raw := make([]pokedex.RawMoveRef, len(pikachu.Moves))
	for i, m := range pikachu.Moves {
		details := make([]pokedex.VersionGroupDetail, len(m.VersionGroupDetails))
		for j, d := range m.VersionGroupDetails {
			details[j] = detail(d.VersionGroup.Name, d.MoveLearnMethod.Name, d.LevelLearnedAt)
		}
		raw[i] = pokedex.RawMoveRef{Name: m.Move.Name, Locator: m.Move.URL, Details: details}
	}

	t.Run("gen 1 level-up", func(t *testing.T) {
		svc, err := NewOrchestrator(&Config{Client: client})
		require.NoError(t, err)

		out, err := svc.Resolve(context.Background(), &ResolveInput{Moves: raw, Filter: pokedex.DefaultFilter()})
		require.NoError(t, err)

		want := []pokedex.ResolvedMove{
			{
				Name:          "thunder-shock",
				LocalizedName: ptr("Thunder Shock"),
				Description:   ptr("An electrical attack that may paralyze the foe."),
				Power:         ptr(40),
				Accuracy:      ptr(100),
				Type:          ptr("electric"),
				Level:         1,
				Method:        pokedex.MethodLevelUp,
			},
			{
				Name:          "growl",
				LocalizedName: ptr("Growl"),
				Description:   ptr("Lowers the target's Attack by one stage."),
				Accuracy:      ptr(100),
				Type:          ptr("normal"),
				Level:         1,
				Method:        pokedex.MethodLevelUp,
			},
			{
				Name:          "thunder-wave",
				LocalizedName: ptr("Thunder Wave"),
				Description:   ptr("A weak jolt of electricity that paralyzes the foe."),
				Accuracy:      ptr(90),
				Type:          ptr("electric"),
				Level:         9,
				Method:        pokedex.MethodLevelUp,
			},
			{
				Name:          "quick-attack",
				LocalizedName: ptr("Quick Attack"),
				Description:   ptr("An extremely fast attack that always strikes first."),
				Power:         ptr(40),
				Accuracy:      ptr(100),
				Type:          ptr("normal"),
				Level:         16,
				Method:        pokedex.MethodLevelUp,
			},
		}
		if diff := cmp.Diff(want, out.Moves); diff != "" {
			t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
		}
		assert.Zero(t, srv.Calls("move/85"))
	})

	t.Run("spanish names and descriptions", func(t *testing.T) {
		svc, err := NewOrchestrator(&Config{Client: client, Language: "es"})
		require.NoError(t, err)

		out, err := svc.Resolve(context.Background(), &ResolveInput{
			Moves:  raw,
			Filter: pokedex.FilterState{Generation: pokedex.Generation3, Method: pokedex.MethodAll},
		})
		require.NoError(t, err)
		require.Len(t, out.Moves, 1)

		move := out.Moves[0]
		assert.Equal(t, "Impactrueno", move.Display())
		require.NotNil(t, move.Description)
		assert.Equal(t, "Ataque eléctrico que puede paralizar.", *move.Description)
	})

	t.Run("failed lookup keeps the move", func(t *testing.T) {
		srv.Fail("move/86", http.StatusInternalServerError)

		svc, err := NewOrchestrator(&Config{Client: client})
		require.NoError(t, err)

		out, err := svc.Resolve(context.Background(), &ResolveInput{Moves: raw, Filter: pokedex.DefaultFilter()})
		require.NoError(t, err)
		require.Len(t, out.Moves, 4)

		wave := out.Moves[2]
		assert.Equal(t, pokedex.ResolvedMove{Name: "thunder-wave", Level: 9, Method: pokedex.MethodLevelUp}, wave)
		assert.NotNil(t, out.Moves[0].LocalizedName)
		assert.NotNil(t, out.Moves[3].Description)
	})
}

func TestDescribe(t *testing.T) {
	move := &pokeapi.Move{
		FlavorTextEntries: []pokeapi.MoveFlavorText{
			{FlavorText: "Old\ntext.", Language: pokeapi.NamedResource{Name: "en"}, VersionGroup: &pokeapi.NamedResource{Name: "red-blue"}},
			{FlavorText: "Newer\ftext.", Language: pokeapi.NamedResource{Name: "en"}, VersionGroup: &pokeapi.NamedResource{Name: "gold-silver"}},
			{FlavorText: "Texte.", Language: pokeapi.NamedResource{Name: "fr"}, VersionGroup: &pokeapi.NamedResource{Name: "gold-silver"}},
		},
		EffectEntries: []pokeapi.VerboseEffect{
			{ShortEffect: "Does  damage.", Language: pokeapi.NamedResource{Name: "en"}},
		},
	}

	got, ok := describe(move, "en", "gold-silver")
	assert.True(t, ok)
	assert.Equal(t, "Newer text.", got)

	got, ok = describe(move, "en", "x-y")
	assert.True(t, ok)
	assert.Equal(t, "Old text.", got)

	got, ok = describe(move, "fr", "red-blue")
	assert.True(t, ok)
	assert.Equal(t, "Texte.", got)

	move.FlavorTextEntries = nil
	got, ok = describe(move, "en", "red-blue")
	assert.True(t, ok)
	assert.Equal(t, "Does damage.", got)

	_, ok = describe(move, "ja", "red-blue")
	assert.False(t, ok)
}
