package app

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
)

// StartSessionInput defines the request for starting a session
type StartSessionInput struct{}

// StartSessionOutput defines the response for starting a session
type StartSessionOutput struct {
	State *pokedex.AppState
}

// SubmitSearchInput defines the request for a search intent
type SubmitSearchInput struct {
	SessionID string
	Query     string
}

// SubmitSearchOutput defines the response for a search intent
type SubmitSearchOutput struct {
	State *pokedex.AppState
	// Superseded is true when a newer intent started before this one
	// finished. State is then the stored state, not this intent's result.
	Superseded bool
}

// ChangeGenerationInput defines the request for a generation change
type ChangeGenerationInput struct {
	SessionID  string
	Generation pokedex.Generation
}

// ChangeGenerationOutput defines the response for a generation change
type ChangeGenerationOutput struct {
	State      *pokedex.AppState
	Superseded bool
}

// ChangeMethodFilterInput defines the request for a method filter change
type ChangeMethodFilterInput struct {
	SessionID string
	Method    pokedex.LearnMethod
}

// ChangeMethodFilterOutput defines the response for a method filter change
type ChangeMethodFilterOutput struct {
	State      *pokedex.AppState
	Superseded bool
}

// GetStateInput defines the request for reading a session
type GetStateInput struct {
	SessionID string
}

// GetStateOutput defines the response for reading a session
type GetStateOutput struct {
	State *pokedex.AppState
}

// EndSessionInput defines the request for ending a session
type EndSessionInput struct {
	SessionID string
}

// EndSessionOutput defines the response for ending a session
type EndSessionOutput struct{}
