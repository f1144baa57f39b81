// Package moves filters a creature's raw move list by generation and learn
// method and resolves each surviving move's detail.
package moves

//go:generate mockgen -destination=mock/mock_service.go -package=movesmock github.com/KirkDiggler/pokedex-api/internal/orchestrators/moves Service

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

const (
	// DefaultLanguage is used for localized names and descriptions
	DefaultLanguage = "en"

	// DefaultMaxConcurrentLookups bounds the per-move detail fan-out
	DefaultMaxConcurrentLookups = 8
)

// Service defines the interface for move resolution
type Service interface {
	// Resolve selects the moves matching the filter and resolves their detail.
	// A failed detail lookup never fails the call; that move keeps only its
	// name, level and method.
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
}

// Config holds the dependencies for the move orchestrator
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

// NewOrchestrator creates a new move orchestrator with the provided dependencies
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

// Resolve runs select -> lookup -> sort
func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	selected := SelectMoves(input.Moves, input.Filter)
	versionGroup, _ := input.Filter.Generation.VersionGroup()

	resolved := make([]pokedex.ResolvedMove, len(selected))

	var g errgroup.Group
	g.SetLimit(o.maxConcurrent)

	for i, sel := range selected {
		level, method := LearnedAt(sel.Move)
		resolved[i] = pokedex.ResolvedMove{
			Name:   sel.Move.Name,
			Level:  level,
			Method: method,
		}
		if sel.Move.Locator == "" {
			continue
		}

		g.Go(func() error {
			move, err := o.client.GetMove(ctx, sel.Move.Locator)
			if err != nil {
				slog.Debug("Supplementary lookup failed", "move", sel.Move.Name, "error", err)
				return nil
			}
			o.applyDetail(&resolved[i], move, versionGroup)
			return nil
		})
	}

	_ = g.Wait() // nolint:errcheck // workers never return errors

	sort.SliceStable(resolved, func(a, b int) bool {
		return resolved[a].Level < resolved[b].Level
	})

	slog.Debug("Resolved moves",
		"generation", input.Filter.Generation,
		"method", input.Filter.Method,
		"candidates", len(input.Moves),
		"selected", len(resolved))

	return &ResolveOutput{Moves: resolved}, nil
}

func (o *orchestrator) applyDetail(dst *pokedex.ResolvedMove, move *pokeapi.Move, versionGroup string) {
	if name, ok := pokeapi.LocalizedName(move.Names, o.language); ok {
		dst.LocalizedName = &name
	}
	if desc, ok := describe(move, o.language, versionGroup); ok {
		dst.Description = &desc
	}
	if move.Power != nil {
		power := max(*move.Power, 0)
		dst.Power = &power
	}
	if move.Accuracy != nil {
		accuracy := min(max(*move.Accuracy, 0), 100)
		dst.Accuracy = &accuracy
	}
	if move.Type != nil && move.Type.Name != "" {
		typeName := move.Type.Name
		dst.Type = &typeName
	}
}

// describe picks the flavor text for versionGroup in lang, then any flavor
// text in lang, then the short effect text in lang.
func describe(move *pokeapi.Move, lang, versionGroup string) (string, bool) {
	var fallback string
	for _, entry := range move.FlavorTextEntries {
		if entry.Language.Name != lang {
			continue
		}
		text := normalizeText(entry.FlavorText)
		if text == "" {
			continue
		}
		if entry.VersionGroup != nil && entry.VersionGroup.Name == versionGroup {
			return text, true
		}
		if fallback == "" {
			fallback = text
		}
	}
	if fallback != "" {
		return fallback, true
	}

	for _, entry := range move.EffectEntries {
		if entry.Language.Name != lang {
			continue
		}
		if text := normalizeText(entry.ShortEffect); text != "" {
			return text, true
		}
	}
	return "", false
}

// normalizeText collapses the line breaks and padding game text carries
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
