package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

var searchCmd = &cobra.Command{
	Use:   "search <name-or-number>",
	Short: "Search for a pokemon",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var generationCmd = &cobra.Command{
	Use:   "generation <1-8>",
	Short: "Change the generation used to filter moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runGeneration,
}

var methodCmd = &cobra.Command{
	Use:   "method <level-up|machine|tutor|egg|other|all>",
	Short: "Change the learn method used to filter moves",
	Args:  cobra.ExactArgs(1),
	RunE:  runMethod,
}

func runSearch(_ *cobra.Command, args []string) error {
	return runIntent(func(ctx context.Context, c pokedexv1alpha1.PokedexServiceClient) (*pokedexv1alpha1.State, bool, error) {
		resp, err := c.SubmitSearch(ctx, &pokedexv1alpha1.SubmitSearchRequest{
			SessionId: sessionID,
			Query:     args[0],
		})
		if err != nil {
			return nil, false, err
		}
		return resp.State, resp.Superseded, nil
	})
}

func runGeneration(_ *cobra.Command, args []string) error {
	return runIntent(func(ctx context.Context, c pokedexv1alpha1.PokedexServiceClient) (*pokedexv1alpha1.State, bool, error) {
		resp, err := c.ChangeGeneration(ctx, &pokedexv1alpha1.ChangeGenerationRequest{
			SessionId:  sessionID,
			Generation: args[0],
		})
		if err != nil {
			return nil, false, err
		}
		return resp.State, resp.Superseded, nil
	})
}

func runMethod(_ *cobra.Command, args []string) error {
	return runIntent(func(ctx context.Context, c pokedexv1alpha1.PokedexServiceClient) (*pokedexv1alpha1.State, bool, error) {
		resp, err := c.ChangeMethodFilter(ctx, &pokedexv1alpha1.ChangeMethodFilterRequest{
			SessionId: sessionID,
			Method:    args[0],
		})
		if err != nil {
			return nil, false, err
		}
		return resp.State, resp.Superseded, nil
	})
}

type intentFunc func(context.Context, pokedexv1alpha1.PokedexServiceClient) (*pokedexv1alpha1.State, bool, error)

func runIntent(call intentFunc) error {
	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	state, superseded, err := call(ctx, client)
	if err != nil {
		return errors.FromGRPCError(err)
	}

	if superseded {
		fmt.Fprintln(os.Stderr, "A newer request for this session finished first; showing its result.")
	}

	return RenderState(os.Stdout, state)
}
