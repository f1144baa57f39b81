// Package main is the entry point for the pokedex gRPC server and its
// companion client commands
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/KirkDiggler/pokedex-api/cmd/server/client"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Pokedex gRPC Server",
	Long: `Pokedex looks up pokemon on PokeAPI, flattens the nested payloads into a
single record and lists the moves learnable in a chosen generation.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(client.ClientCmd)
}

// flagEnv maps flag names to the environment variables that provide their
// defaults
var flagEnv = map[string]string{
	"log-level":              "POKEDEX_LOG_LEVEL",
	"port":                   "POKEDEX_PORT",
	"redis-addr":             "POKEDEX_REDIS_ADDR",
	"redis-password":         "POKEDEX_REDIS_PASSWORD",
	"pokeapi-url":            "POKEAPI_BASE_URL",
	"language":               "POKEDEX_LANGUAGE",
	"session-ttl":            "POKEDEX_SESSION_TTL",
	"max-concurrent-lookups": "POKEDEX_MAX_CONCURRENT_LOOKUPS",
	"server":                 "POKEDEX_SERVER_ADDR",
}

// setup loads .env, fills unset flags from the environment and installs the
// default logger
func setup(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	var applyErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagEnv[f.Name]
		if !ok || f.Changed || applyErr != nil {
			return
		}
		if value, set := os.LookupEnv(key); set {
			if err := f.Value.Set(value); err != nil {
				applyErr = fmt.Errorf("invalid %s=%q: %w", key, value, err)
			}
		}
	})
	if applyErr != nil {
		return applyErr
	}

	level, err := parseLevel(logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	return nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
