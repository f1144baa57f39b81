package creature

import (
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
)

// LookupInput defines the request for looking up a pokemon
type LookupInput struct {
	// Query is a name or numeric id; case and surrounding space are ignored
	Query string
}

// LookupOutput defines the response for looking up a pokemon
type LookupOutput struct {
	Record *pokedex.CreatureRecord
}
