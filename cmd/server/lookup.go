package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/pokedex-api/cmd/server/client"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
	"github.com/KirkDiggler/pokedex-api/internal/handlers/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/creature"
	"github.com/KirkDiggler/pokedex-api/internal/orchestrators/moves"
)

var (
	lookupGeneration string
	lookupMethod     string
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <name-or-number>",
	Short: "Look up a pokemon without a server",
	Long: `Run the lookup and move pipeline in-process against PokeAPI and print
the result. No Redis or session is involved.`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	defaults := pokedex.DefaultFilter()
	lookupCmd.Flags().StringVar(&lookupGeneration, "generation", string(defaults.Generation), "Generation: "+client.GenerationChoices())
	lookupCmd.Flags().StringVar(&lookupMethod, "method", string(defaults.Method),
		"Learn method: level-up, machine, tutor, egg, other or all")
	addPipelineFlags(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	p, err := newPipeline()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	filter := pokedex.FilterState{
		Generation: pokedex.ParseGeneration(lookupGeneration),
		Method:     pokedex.ParseFilterMethod(lookupMethod),
	}
	state := pokedex.AppState{Filter: filter}

	found, err := p.creatures.Lookup(ctx, &creature.LookupInput{Query: args[0]})
	switch {
	case errors.IsNotFound(err):
		state = state.WithError(args[0], pokedex.NotFoundMessage)
	case err != nil:
		return fmt.Errorf("lookup failed: %w", err)
	default:
		resolved, err := p.moves.Resolve(ctx, &moves.ResolveInput{Moves: found.Record.Moves, Filter: filter})
		if err != nil {
			return fmt.Errorf("move resolution failed: %w", err)
		}
		state = state.WithRecord(args[0], found.Record, resolved.Moves)
	}

	return client.RenderState(os.Stdout, v1alpha1.StateToProto(&state))
}
