package v1alpha1

import (
	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
)

// StateToProto converts a session snapshot to its wire form
func StateToProto(state *pokedex.AppState) *pokedexv1alpha1.State {
	if state == nil {
		return nil
	}

	moves := make([]*pokedexv1alpha1.Move, len(state.Moves))
	for i, m := range state.Moves {
		moves[i] = convertMoveToProto(m)
	}

	return &pokedexv1alpha1.State{
		SessionId: state.SessionID,
		Query:     state.Query,
		Filter: &pokedexv1alpha1.FilterState{
			Generation: string(state.Filter.Generation),
			Method:     string(state.Filter.Method),
		},
		Pokemon:   convertRecordToProto(state.Record),
		Moves:     moves,
		Error:     state.Error,
		Sequence:  state.Sequence,
		ExpiresAt: state.ExpiresAt,
	}
}

func convertRecordToProto(record *pokedex.CreatureRecord) *pokedexv1alpha1.Pokemon {
	if record == nil {
		return nil
	}

	types := make([]*pokedexv1alpha1.TypeRef, len(record.Types))
	for i, t := range record.Types {
		types[i] = &pokedexv1alpha1.TypeRef{
			Name:          t.Name,
			LocalizedName: deref(t.LocalizedName),
		}
	}

	stats := make([]*pokedexv1alpha1.Stat, len(record.Stats))
	for i, s := range record.Stats {
		stats[i] = &pokedexv1alpha1.Stat{
			Name:  s.Name,
			Value: int32(s.Value), // nolint:gosec // clamped to 0..255
		}
	}

	evolutions := make([]*pokedexv1alpha1.EvolutionStep, len(record.Evolutions))
	for i, e := range record.Evolutions {
		evolutions[i] = &pokedexv1alpha1.EvolutionStep{
			Name:     e.Name,
			MinLevel: toInt32(e.MinLevel),
			Trigger:  e.Trigger,
			Item:     e.Item,
		}
	}

	return &pokedexv1alpha1.Pokemon{
		Id:          int32(record.ID), // nolint:gosec // pokedex numbers are small
		Name:        record.Name,
		DisplayName: record.DisplayName,
		Types:       types,
		Stats:       stats,
		ArtworkUrl:  record.ArtworkURL,
		Height:      record.Height,
		Weight:      record.Weight,
		Evolutions:  evolutions,
	}
}

func convertMoveToProto(move pokedex.ResolvedMove) *pokedexv1alpha1.Move {
	return &pokedexv1alpha1.Move{
		Name:          move.Name,
		LocalizedName: deref(move.LocalizedName),
		Description:   deref(move.Description),
		Power:         toInt32(move.Power),
		Accuracy:      toInt32(move.Accuracy),
		Type:          deref(move.Type),
		Level:         int32(move.Level), // nolint:gosec // levels are 1..100
		Method:        string(move.Method),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toInt32(v *int) *int32 {
	if v == nil {
		return nil
	}
	n := int32(*v) // nolint:gosec // bounded upstream values
	return &n
}
