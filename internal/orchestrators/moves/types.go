package moves

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
)

// ResolveInput defines the request for resolving a move list
type ResolveInput struct {
	Moves  []pokedex.RawMoveRef
	Filter pokedex.FilterState
}

// ResolveOutput defines the response for resolving a move list
type ResolveOutput struct {
	// Moves is sorted by level, ties in input order
	Moves []pokedex.ResolvedMove
}

// Selection is a raw move that passed the filter, with the detail that
// matched it.
type Selection struct {
	Move    pokedex.RawMoveRef
	Matched pokedex.VersionGroupDetail
}
