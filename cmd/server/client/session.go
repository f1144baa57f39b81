package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

var newSessionCmd = &cobra.Command{
	Use:   "new-session",
	Short: "Start a new session",
	Args:  cobra.NoArgs,
	RunE:  runNewSession,
}

var endSessionCmd = &cobra.Command{
	Use:   "end-session",
	Short: "End a session and discard its state",
	Args:  cobra.NoArgs,
	RunE:  runEndSession,
}

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show the current state of a session",
	Args:  cobra.NoArgs,
	RunE:  runState,
}

func runNewSession(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.StartSession(ctx, &pokedexv1alpha1.StartSessionRequest{})
	if err != nil {
		return fmt.Errorf("failed to start session: %w", errors.FromGRPCError(err))
	}

	fmt.Printf("Session started: %s\n", resp.State.SessionId)
	fmt.Printf("Expires at: %s\n\n", resp.State.ExpiresAt.Local().Format("15:04:05"))
	fmt.Printf("Next: pokedex client search --session %s pikachu\n", resp.State.SessionId)
	return nil
}

func runState(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetState(ctx, &pokedexv1alpha1.GetStateRequest{SessionId: sessionID})
	if err != nil {
		return fmt.Errorf("failed to get state: %w", errors.FromGRPCError(err))
	}

	return RenderState(os.Stdout, resp.State)
}

func runEndSession(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createPokedexClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.EndSession(ctx, &pokedexv1alpha1.EndSessionRequest{SessionId: sessionID}); err != nil {
		return fmt.Errorf("failed to end session: %w", errors.FromGRPCError(err))
	}

	fmt.Printf("Session ended: %s\n", sessionID)
	return nil
}
