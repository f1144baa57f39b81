// Package app owns the per-session pokedex state and applies the three user
// intents to it: search, generation change and method filter change.
package app

//go:generate mockgen -destination=mock/mock_service.go -package=appmock github.com/KirkDiggler/pokedex-api/internal/orchestrators/app Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/creature"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/moves"
	"github.com/KirkDiggler/pokedex-api/internal/pkg/idgen"
	"github.com/KirkDiggler/pokedex-api/internal/repositories/session"
)

// Service defines the interface for session state operations
type Service interface {
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)

	// Intents. Each one recomputes state from the stored snapshot and only
	// commits if no newer intent for the session has started meanwhile.
	SubmitSearch(ctx context.Context, input *SubmitSearchInput) (*SubmitSearchOutput, error)
	ChangeGeneration(ctx context.Context, input *ChangeGenerationInput) (*ChangeGenerationOutput, error)
	ChangeMethodFilter(ctx context.Context, input *ChangeMethodFilterInput) (*ChangeMethodFilterOutput, error)
}

// Config holds the dependencies for the app orchestrator
type Config struct {
	SessionRepo session.Repository
	Creatures   creature.Service
	Moves       moves.Service
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.Creatures == nil {
		vb.RequiredField("Creatures")
	}
	if c.Moves == nil {
		vb.RequiredField("Moves")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo session.Repository
	creatures   creature.Service
	moves       moves.Service
	idGen       idgen.Generator
}

// NewOrchestrator creates a new app orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionRepo: cfg.SessionRepo,
		creatures:   cfg.Creatures,
		moves:       cfg.Moves,
		idGen:       cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.sessionRepo.Create(ctx, session.CreateInput{State: &pokedex.AppState{
		SessionID: o.idGen.Generate(),
		Filter:    pokedex.DefaultFilter(),
	}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	slog.Info("Started session", "session_id", out.State.SessionID)

	return &StartSessionOutput{State: out.State}, nil
}

func (o *orchestrator) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	out, err := o.sessionRepo.Get(ctx, session.GetInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}

	return &GetStateOutput{State: out.State}, nil
}

// EndSession drops the session and its sequence counter. Intents still in
// flight for it fail with NotFound when they commit.
func (o *orchestrator) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	if _, err := o.sessionRepo.Delete(ctx, session.DeleteInput{SessionID: input.SessionID}); err != nil {
		return nil, errors.Wrap(err, "failed to end session")
	}

	slog.Info("Ended session", "session_id", input.SessionID)

	return &EndSessionOutput{}, nil
}

func (o *orchestrator) SubmitSearch(ctx context.Context, input *SubmitSearchInput) (*SubmitSearchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	state, err := o.begin(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	query := strings.TrimSpace(input.Query)
	lookup, err := o.creatures.Lookup(ctx, &creature.LookupInput{Query: query})
	switch {
	case errors.IsNotFound(err):
		next := state.WithError(query, pokedex.NotFoundMessage)
		state = &next
	case err != nil:
		return nil, errors.Wrap(err, "failed to look up pokemon")
	default:
		resolved, err := o.resolveMoves(ctx, lookup.Record, state.Filter)
		if err != nil {
			return nil, err
		}
		next := state.WithRecord(query, lookup.Record, resolved)
		state = &next
	}

	committed, superseded, err := o.commit(ctx, state)
	if err != nil {
		return nil, err
	}

	slog.Info("Search applied",
		"session_id", input.SessionID,
		"query", query,
		"found", committed.Record != nil,
		"superseded", superseded)

	return &SubmitSearchOutput{State: committed, Superseded: superseded}, nil
}

func (o *orchestrator) ChangeGeneration(ctx context.Context, input *ChangeGenerationInput) (*ChangeGenerationOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateRequired("generation", string(input.Generation), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, superseded, err := o.refilter(ctx, input.SessionID, func(f pokedex.FilterState) pokedex.FilterState {
		f.Generation = input.Generation
		return f
	})
	if err != nil {
		return nil, err
	}

	return &ChangeGenerationOutput{State: state, Superseded: superseded}, nil
}

func (o *orchestrator) ChangeMethodFilter(ctx context.Context, input *ChangeMethodFilterInput) (*ChangeMethodFilterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("session_id", input.SessionID, vb)
	errors.ValidateRequired("method", string(input.Method), vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	state, superseded, err := o.refilter(ctx, input.SessionID, func(f pokedex.FilterState) pokedex.FilterState {
		f.Method = input.Method
		return f
	})
	if err != nil {
		return nil, err
	}

	return &ChangeMethodFilterOutput{State: state, Superseded: superseded}, nil
}

// refilter applies a filter change and re-runs the move pipeline over the
// retained raw move list. No creature lookup happens.
func (o *orchestrator) refilter(
	ctx context.Context,
	sessionID string,
	change func(pokedex.FilterState) pokedex.FilterState,
) (*pokedex.AppState, bool, error) {
	state, err := o.begin(ctx, sessionID)
	if err != nil {
		return nil, false, err
	}

	filter := change(state.Filter)
	resolved, err := o.resolveMoves(ctx, state.Record, filter)
	if err != nil {
		return nil, false, err
	}

	next := state.WithFilter(filter).WithMoves(resolved)

	committed, superseded, err := o.commit(ctx, &next)
	if err != nil {
		return nil, false, err
	}

	slog.Info("Filter applied",
		"session_id", sessionID,
		"generation", filter.Generation,
		"method", filter.Method,
		"moves", len(committed.Moves),
		"superseded", superseded)

	return committed, superseded, nil
}

// begin draws a fresh sequence number and then loads the snapshot it applies
// to. Any intent that commits after the draw is superseded, so the snapshot
// can never be older than the latest applied result.
func (o *orchestrator) begin(ctx context.Context, sessionID string) (*pokedex.AppState, error) {
	seq, err := o.sessionRepo.NextSequence(ctx, session.NextSequenceInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to start intent")
	}

	current, err := o.sessionRepo.Get(ctx, session.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get session")
	}

	state := *current.State
	state.Sequence = seq.Sequence
	return &state, nil
}

// commit saves state unless a newer intent has been issued. A superseded
// result is dropped and the stored state is returned instead.
func (o *orchestrator) commit(ctx context.Context, state *pokedex.AppState) (*pokedex.AppState, bool, error) {
	saved, err := o.sessionRepo.SaveIfCurrent(ctx, session.SaveIfCurrentInput{State: state})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to save session")
	}
	if saved.Saved {
		return saved.State, false, nil
	}

	slog.Debug("Discarding superseded result", "session_id", state.SessionID, "sequence", state.Sequence)

	current, err := o.sessionRepo.Get(ctx, session.GetInput{SessionID: state.SessionID})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to get session")
	}
	return current.State, true, nil
}

func (o *orchestrator) resolveMoves(
	ctx context.Context,
	record *pokedex.CreatureRecord,
	filter pokedex.FilterState,
) ([]pokedex.ResolvedMove, error) {
	if record == nil {
		return nil, nil
	}

	out, err := o.moves.Resolve(ctx, &moves.ResolveInput{Moves: record.Moves, Filter: filter})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve moves")
	}
	return out.Moves, nil
}
