package pokedex

import "time"

// NotFoundMessage is the user-visible text for a failed search.
const NotFoundMessage = "Pokemon not found"

// AppState is everything a rendering surface needs for one session. It is
// treated as an immutable snapshot: the With* methods return modified copies.
type AppState struct {
	SessionID string          `json:"session_id"`
	Query     string          `json:"query"`
	Filter    FilterState     `json:"filter"`
	Record    *CreatureRecord `json:"record,omitempty"`
	Moves     []ResolvedMove  `json:"moves"`
	Error     string          `json:"error,omitempty"`

	// Sequence is the number of the intent whose result this snapshot holds.
	Sequence  uint64    `json:"sequence"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// WithFilter returns a copy with the filter replaced. Moves are left for the
// caller to recompute.
func (s AppState) WithFilter(filter FilterState) AppState {
	s.Filter = filter
	return s
}

// WithRecord returns a copy holding a fresh search result with the error
// cleared.
func (s AppState) WithRecord(query string, record *CreatureRecord, moves []ResolvedMove) AppState {
	s.Query = query
	s.Record = record
	s.Moves = moves
	s.Error = ""
	return s
}

// WithError returns a copy with the record and moves cleared and msg shown.
func (s AppState) WithError(query, msg string) AppState {
	s.Query = query
	s.Record = nil
	s.Moves = nil
	s.Error = msg
	return s
}

// WithMoves returns a copy with the resolved move list replaced.
func (s AppState) WithMoves(moves []ResolvedMove) AppState {
	s.Moves = moves
	return s
}
