// Package pokeapi is the HTTP client for the public PokeAPI v2 service
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokedex-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/KirkDiggler/pokedex-api/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI endpoint
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "pokedex-api"
)

// Client defines the interface for PokeAPI lookups. Every method except
// GetPokemon takes a locator: the url embedded in a parent payload, or a path
// relative to the base URL.
type Client interface {
	// GetPokemon fetches a pokemon by lowercase name or numeric id
	GetPokemon(ctx context.Context, query string) (*Pokemon, error)

	// GetSpecies fetches the species referenced by a pokemon
	GetSpecies(ctx context.Context, locator string) (*Species, error)

	// GetEvolutionChain fetches the chain referenced by a species
	GetEvolutionChain(ctx context.Context, locator string) (*EvolutionChain, error)

	// GetType fetches an elemental type
	GetType(ctx context.Context, locator string) (*Type, error)

	// GetMove fetches a move
	GetMove(ctx context.Context, locator string) (*Move, error)
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// BaseURL for PokeAPI (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// UserAgent sent with every request (optional)
	UserAgent string
	// HTTPClient overrides the client built from HTTPTimeout (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if _, err := url.ParseRequestURI(cfg.BaseURL); err != nil {
		return errors.InvalidArgumentf("invalid base url %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	return nil
}

type client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		userAgent:  cfg.UserAgent,
		httpClient: httpClient,
	}, nil
}

func (c *client) GetPokemon(ctx context.Context, query string) (*Pokemon, error) {
	if query == "" {
		return nil, errors.InvalidArgument("query is required")
	}

	var pokemon Pokemon
	if err := c.get(ctx, "pokemon/"+url.PathEscape(query), &pokemon); err != nil {
		return nil, errors.Wrapf(err, "failed to get pokemon %s", query)
	}
	return &pokemon, nil
}

func (c *client) GetSpecies(ctx context.Context, locator string) (*Species, error) {
	var species Species
	if err := c.get(ctx, locator, &species); err != nil {
		return nil, errors.Wrap(err, "failed to get species")
	}
	return &species, nil
}

func (c *client) GetEvolutionChain(ctx context.Context, locator string) (*EvolutionChain, error) {
	var chain EvolutionChain
	if err := c.get(ctx, locator, &chain); err != nil {
		return nil, errors.Wrap(err, "failed to get evolution chain")
	}
	return &chain, nil
}

func (c *client) GetType(ctx context.Context, locator string) (*Type, error) {
	var t Type
	if err := c.get(ctx, locator, &t); err != nil {
		return nil, errors.Wrap(err, "failed to get type")
	}
	return &t, nil
}

func (c *client) GetMove(ctx context.Context, locator string) (*Move, error) {
	var move Move
	if err := c.get(ctx, locator, &move); err != nil {
		return nil, errors.Wrap(err, "failed to get move")
	}
	return &move, nil
}

// resolve turns a locator into an absolute URL
func (c *client) resolve(locator string) string {
	if strings.HasPrefix(locator, "http://") || strings.HasPrefix(locator, "https://") {
		return locator
	}
	return c.baseURL + strings.TrimPrefix(locator, "/")
}

func (c *client) get(ctx context.Context, locator string, out any) error {
	if locator == "" {
		return errors.InvalidArgument("locator is required")
	}

	target := c.resolve(locator)
	slog.Debug("Calling PokeAPI", "url", target)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to build request").
			WithMeta("url", target)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(ctx, err).WithMeta("url", target)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body) // nolint:errcheck // drain for connection reuse
		_ = resp.Body.Close()
	}()

	if code := errors.CodeFromHTTPStatus(resp.StatusCode); code != errors.CodeOK {
		return errors.Newf(code, "pokeapi returned %d", resp.StatusCode).
			WithMeta("url", target).
			WithMeta("status", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, fmt.Sprintf("failed to decode %T", out)).
			WithMeta("url", target)
	}

	return nil
}

func transportError(ctx context.Context, err error) *errors.Error {
	switch ctx.Err() {
	case context.Canceled:
		return errors.WrapWithCode(err, errors.CodeCanceled, "request canceled")
	case context.DeadlineExceeded:
		return errors.WrapWithCode(err, errors.CodeDeadlineExceeded, "request deadline exceeded")
	default:
		return errors.WrapWithCode(err, errors.CodeUnavailable, "pokeapi unreachable")
	}
}
