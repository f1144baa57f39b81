package v1alpha1

import "time"

// FilterState is the active move filter
type FilterState struct {
	Generation string `json:"generation"`
	Method     string `json:"method"`
}

// TypeRef is an elemental type
type TypeRef struct {
	Name          string `json:"name"`
	LocalizedName string `json:"localized_name,omitempty"`
}

// Stat is a base stat
type Stat struct {
	Name  string `json:"name"`
	Value int32  `json:"value"`
}

// EvolutionStep is one stage of the evolution chain
type EvolutionStep struct {
	Name     string `json:"name"`
	MinLevel *int32 `json:"min_level,omitempty"`
	Trigger  string `json:"trigger,omitempty"`
	Item     string `json:"item,omitempty"`
}

// Pokemon is the resolved creature record
type Pokemon struct {
	Id          int32            `json:"id"`
	Name        string           `json:"name"`
	DisplayName string           `json:"display_name"`
	Types       []*TypeRef       `json:"types"`
	Stats       []*Stat          `json:"stats"`
	ArtworkUrl  string           `json:"artwork_url"`
	Height      float64          `json:"height"`
	Weight      float64          `json:"weight"`
	Evolutions  []*EvolutionStep `json:"evolutions"`
}

// Move is a resolved move
type Move struct {
	Name          string `json:"name"`
	LocalizedName string `json:"localized_name,omitempty"`
	Description   string `json:"description,omitempty"`
	Power         *int32 `json:"power,omitempty"`
	Accuracy      *int32 `json:"accuracy,omitempty"`
	Type          string `json:"type,omitempty"`
	Level         int32  `json:"level"`
	Method        string `json:"method"`
}

// State is everything a client renders for one session
type State struct {
	SessionId string       `json:"session_id"`
	Query     string       `json:"query"`
	Filter    *FilterState `json:"filter"`
	Pokemon   *Pokemon     `json:"pokemon,omitempty"`
	Moves     []*Move      `json:"moves"`
	Error     string       `json:"error,omitempty"`
	Sequence  uint64       `json:"sequence"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// GetPokemon returns the record or nil
func (x *State) GetPokemon() *Pokemon {
	if x != nil {
		return x.Pokemon
	}
	return nil
}

// GetMoves returns the move list or nil
func (x *State) GetMoves() []*Move {
	if x != nil {
		return x.Moves
	}
	return nil
}

// GetFilter returns the filter or nil
func (x *State) GetFilter() *FilterState {
	if x != nil {
		return x.Filter
	}
	return nil
}

type StartSessionRequest struct{}

type StartSessionResponse struct {
	State *State `json:"state"`
}

type GetStateRequest struct {
	SessionId string `json:"session_id"`
}

type GetStateResponse struct {
	State *State `json:"state"`
}

type EndSessionRequest struct {
	SessionId string `json:"session_id"`
}

type EndSessionResponse struct{}

type SubmitSearchRequest struct {
	SessionId string `json:"session_id"`
	Query     string `json:"query"`
}

type SubmitSearchResponse struct {
	State      *State `json:"state"`
	Superseded bool   `json:"superseded"`
}

type ChangeGenerationRequest struct {
	SessionId  string `json:"session_id"`
	Generation string `json:"generation"`
}

type ChangeGenerationResponse struct {
	State      *State `json:"state"`
	Superseded bool   `json:"superseded"`
}

type ChangeMethodFilterRequest struct {
	SessionId string `json:"session_id"`
	Method    string `json:"method"`
}

type ChangeMethodFilterResponse struct {
	State      *State `json:"state"`
	Superseded bool   `json:"superseded"`
}
