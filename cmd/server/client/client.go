// Package client provides commands that drive a running pokedex server and
// render its state to the terminal
package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pokedexv1alpha1 "github.com/KirkDiggler/pokedex-api/api/pokedex/v1alpha1"
	"github.com/KirkDiggler/pokedex-api/internal/entities/pokedex"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration

	sessionID string
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the pokedex server",
	Long: `Client commands make real gRPC requests against a running server. Start a
session with new-session, then pass its id to the other commands with --session.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(newSessionCmd)
	ClientCmd.AddCommand(stateCmd)
	ClientCmd.AddCommand(endSessionCmd)
	ClientCmd.AddCommand(searchCmd)
	ClientCmd.AddCommand(generationCmd)
	ClientCmd.AddCommand(methodCmd)

	generationCmd.Long = "Change the generation used to filter moves. Known generations: " +
		GenerationChoices() + ". Any other value matches no moves."

	for _, cmd := range []*cobra.Command{stateCmd, endSessionCmd, searchCmd, generationCmd, methodCmd} {
		cmd.Flags().StringVar(&sessionID, "session", "", "Session ID (required)")
		_ = cmd.MarkFlagRequired("session") // nolint:errcheck // safe to ignore in init
	}
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createPokedexClient creates a pokedex service client
func createPokedexClient() (pokedexv1alpha1.PokedexServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	client := pokedexv1alpha1.NewPokedexServiceClient(conn)
	return client, cleanup, nil
}

// GenerationChoices lists the known generation tokens for help text
func GenerationChoices() string {
	gens := pokedex.Generations()
	tokens := make([]string, len(gens))
	for i, g := range gens {
		tokens[i] = string(g)
	}
	return strings.Join(tokens, ", ")
}
