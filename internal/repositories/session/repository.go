// Package session stores pokedex session state and the sequence counter used
// to discard superseded results.
package session

import (
	"context"

	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/pokedex-api/internal/repositories/session Repository

// Repository defines the interface for session persistence
type Repository interface {
	// Create stores a new session. The sequence counter starts at zero.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves the latest saved snapshot of a session
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// NextSequence issues the next sequence number for a session. Numbers are
	// strictly increasing for the life of the session.
	NextSequence(ctx context.Context, input NextSequenceInput) (*NextSequenceOutput, error)

	// SaveIfCurrent stores the state only if its Sequence is still the latest
	// issued number. Saved is false when a newer intent has started since.
	SaveIfCurrent(ctx context.Context, input SaveIfCurrentInput) (*SaveIfCurrentOutput, error)

	// Delete removes a session and its counter
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a session
type CreateInput struct {
	State *pokedex.AppState
}

// CreateOutput defines the output for creating a session
type CreateOutput struct {
	State *pokedex.AppState
}

// GetInput defines the input for getting a session
type GetInput struct {
	SessionID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	State *pokedex.AppState
}

// NextSequenceInput defines the input for issuing a sequence number
type NextSequenceInput struct {
	SessionID string
}

// NextSequenceOutput defines the output for issuing a sequence number
type NextSequenceOutput struct {
	Sequence uint64
}

// SaveIfCurrentInput defines the input for a conditional save
type SaveIfCurrentInput struct {
	State *pokedex.AppState
}

// SaveIfCurrentOutput defines the output for a conditional save
type SaveIfCurrentOutput struct {
	Saved bool
	State *pokedex.AppState // the stored state when Saved
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	SessionID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct{}
