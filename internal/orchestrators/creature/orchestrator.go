// Package creature resolves a search query into a normalized CreatureRecord
package creature

//go:generate mockgen -destination=mock/mock_service.go -package=creaturemock github.com/KirkDiggler/pokedex-api/internal/orchestrators/creature Service

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

const (
	// DefaultLanguage is used for localized names when none is configured
	DefaultLanguage = "en"

	// DefaultMaxConcurrentLookups bounds the per-type localization fan-out
	DefaultMaxConcurrentLookups = 8
)

// Service defines the interface for creature lookups
type Service interface {
	// Lookup runs the creature -> species -> evolution chain -> types chain.
	// Every failure is reported as NotFound.
	Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error)
}

// Config holds the dependencies for the creature orchestrator
type Config struct {
	Client               pokeapi.Client
	Language             string
	MaxConcurrentLookups int
}

// Validate ensures all required dependencies are provided and sets defaults
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Language == "" {
		c.Language = DefaultLanguage
	}
	if c.MaxConcurrentLookups == 0 {
		c.MaxConcurrentLookups = DefaultMaxConcurrentLookups
	}
	errors.ValidateRange("MaxConcurrentLookups", c.MaxConcurrentLookups, 1, 64, vb)

	return vb.Build()
}

type orchestrator struct {
	client        pokeapi.Client
	language      string
	maxConcurrent int
}

// NewOrchestrator creates a new creature orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		client:        cfg.Client,
		language:      cfg.Language,
		maxConcurrent: cfg.MaxConcurrentLookups,
	}, nil
}

// Lookup resolves the query into a CreatureRecord
func (o *orchestrator) Lookup(ctx context.Context, input *LookupInput) (*LookupOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	query := strings.ToLower(strings.TrimSpace(input.Query))
	if query == "" {
		return nil, o.notFound(query, "query", errors.InvalidArgument("query is empty"))
	}

	pokemon, err := o.client.GetPokemon(ctx, query)
	if err != nil {
		return nil, o.notFound(query, "pokemon", err)
	}
	if pokemon.Species.URL == "" {
		return nil, o.notFound(query, "pokemon", errors.NotFound("species locator missing"))
	}

	species, err := o.client.GetSpecies(ctx, pokemon.Species.URL)
	if err != nil {
		return nil, o.notFound(query, "species", err)
	}
	if species.EvolutionChain == nil || species.EvolutionChain.URL == "" {
		return nil, o.notFound(query, "species", errors.NotFound("evolution chain locator missing"))
	}

	chain, err := o.client.GetEvolutionChain(ctx, species.EvolutionChain.URL)
	if err != nil {
		return nil, o.notFound(query, "evolution_chain", err)
	}

	displayName := pokemon.Name
	if localized, ok := pokeapi.LocalizedName(species.Names, o.language); ok {
		displayName = localized
	}

	record := &pokedex.CreatureRecord{
		ID:          pokemon.ID,
		Name:        pokemon.Name,
		DisplayName: displayName,
		Types:       o.localizeTypes(ctx, pokemon.Types),
		Stats:       convertStats(pokemon.Stats),
		ArtworkURL:  artworkURL(pokemon.Sprites),
		Height:      float64(pokemon.Height) / 10,
		Weight:      float64(pokemon.Weight) / 10,
		Evolutions:  flattenEvolution(&chain.Chain),
		Moves:       convertMoves(pokemon.Moves),
	}

	slog.Info("Resolved pokemon",
		"query", query,
		"id", record.ID,
		"types", len(record.Types),
		"evolutions", len(record.Evolutions),
		"moves", len(record.Moves))

	return &LookupOutput{Record: record}, nil
}

// notFound logs the real cause and returns the only error callers may see
func (o *orchestrator) notFound(query, stage string, cause error) error {
	slog.Warn("Pokemon lookup failed", "query", query, "stage", stage, "error", cause)
	return errors.NotFound(pokedex.NotFoundMessage).WithMeta("query", query)
}

// localizeTypes resolves localized type names concurrently. A failed lookup
// leaves that slot with only its canonical name.
func (o *orchestrator) localizeTypes(ctx context.Context, types []pokeapi.PokemonType) []pokedex.TypeRef {
	refs := make([]pokedex.TypeRef, len(types))

	var g errgroup.Group
	g.SetLimit(o.maxConcurrent)

	for i, t := range types {
		refs[i] = pokedex.TypeRef{Name: t.Type.Name}
		if t.Type.URL == "" {
			continue
		}

		g.Go(func() error {
			typeData, err := o.client.GetType(ctx, t.Type.URL)
			if err != nil {
				slog.Debug("Type localization failed", "type", t.Type.Name, "error", err)
				return nil
			}
			if name, ok := pokeapi.LocalizedName(typeData.Names, o.language); ok {
				refs[i].LocalizedName = &name
			}
			return nil
		})
	}

	_ = g.Wait() // nolint:errcheck // workers never return errors

	return refs
}

func convertStats(stats []pokeapi.PokemonStat) []pokedex.StatEntry {
	entries := make([]pokedex.StatEntry, len(stats))
	for i, s := range stats {
		entries[i] = pokedex.StatEntry{
			Name:  s.Stat.Name,
			Value: min(max(s.BaseStat, 0), pokedex.MaxStatValue),
		}
	}
	return entries
}

func artworkURL(sprites pokeapi.Sprites) string {
	if sprites.Other.OfficialArtwork.FrontDefault != "" {
		return sprites.Other.OfficialArtwork.FrontDefault
	}
	return sprites.FrontDefault
}

func convertMoves(moves []pokeapi.PokemonMove) []pokedex.RawMoveRef {
	refs := make([]pokedex.RawMoveRef, len(moves))
	for i, m := range moves {
		details := make([]pokedex.VersionGroupDetail, len(m.VersionGroupDetails))
		for j, d := range m.VersionGroupDetails {
			details[j] = pokedex.VersionGroupDetail{
				LevelLearnedAt: d.LevelLearnedAt,
				Method:         d.MoveLearnMethod.Name,
				VersionGroup:   d.VersionGroup.Name,
			}
		}
		refs[i] = pokedex.RawMoveRef{
			Name:    m.Move.Name,
			Locator: m.Move.URL,
			Details: details,
		}
	}
	return refs
}
