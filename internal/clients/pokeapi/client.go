// Package pokeapi is the client for the read-only Pokémon catalog
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/KirkDiggler/pokemon-api/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/KirkDiggler/pokemon-api/internal/entities/catalog"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

const (
	defaultBaseURL     = "https://pokeapi.co/api/v2/"
	defaultHTTPTimeout = 10 * time.Second
	maxBodyBytes       = 4 << 20
)

// Fetcher returns the raw JSON document of a catalog resource
type Fetcher interface {
	Fetch(ctx context.Context, kind string, key Key) ([]byte, error)
}

// Client defines the catalog lookups the game needs
type Client interface {
	Fetcher

	// GetPokemon fetches a pokemon by pokedex number or name
	GetPokemon(ctx context.Context, key Key) (*catalog.Pokemon, error)

	// GetPokemonSpecies fetches a species by pokedex number or name
	GetPokemonSpecies(ctx context.Context, key Key) (*catalog.PokemonSpecies, error)

	// GetMove fetches a move by id or name
	GetMove(ctx context.Context, key Key) (*catalog.Move, error)
}

// GetResource fetches and decodes any catalog resource kind
func GetResource[T any](ctx context.Context, f Fetcher, kind string, key Key) (*T, error) {
	if key.IsZero() {
		return nil, errors.InvalidArgumentf("%s key is required", kind)
	}

	body, err := f.Fetch(ctx, kind, key)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s %s", kind, key)
	}

	return &out, nil
}

// Config contains configuration options for the catalog client
type Config struct {
	// BaseURL of the catalog (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for catalog requests (optional, defaults to 10 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the transport, mainly for tests
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if !strings.HasSuffix(cfg.BaseURL, "/") {
		cfg.BaseURL += "/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = defaultHTTPTimeout
	}

	vb := errors.NewValidationBuilder()
	if !strings.HasPrefix(cfg.BaseURL, "http://") && !strings.HasPrefix(cfg.BaseURL, "https://") {
		vb.Field("base_url", "must be an http or https URL")
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("http_timeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a catalog client talking HTTP to the configured base URL
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}, nil
}

func (c *client) Fetch(ctx context.Context, kind string, key Key) ([]byte, error) {
	url := fmt.Sprintf("%s%s/%s/", c.baseURL, kind, key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build request for %s %s", kind, key)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, errors.WrapWithCodef(ctxErr, errors.GetCode(ctxErr), "fetch %s %s interrupted", kind, key)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to fetch %s %s", kind, key)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.NotFoundf("%s %s not found in catalog", kind, key).
			WithMeta("kind", kind).
			WithMeta("key", key.String())
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		slog.WarnContext(ctx, "catalog returned unexpected status",
			"kind", kind,
			"key", key.String(),
			"status", resp.StatusCode)
		return nil, errors.Unavailablef("catalog returned %d for %s %s", resp.StatusCode, kind, key)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to read %s %s", kind, key)
	}
	if len(body) > maxBodyBytes {
		return nil, errors.Internalf("catalog document too large for %s %s", kind, key).
			WithMeta("kind", kind).
			WithMeta("key", key.String()).
			WithMeta("max_bytes", maxBodyBytes)
	}

	return body, nil
}

func (c *client) GetPokemon(ctx context.Context, key Key) (*catalog.Pokemon, error) {
	return GetResource[catalog.Pokemon](ctx, c, catalog.KindPokemon, key)
}

func (c *client) GetPokemonSpecies(ctx context.Context, key Key) (*catalog.PokemonSpecies, error) {
	return GetResource[catalog.PokemonSpecies](ctx, c, catalog.KindPokemonSpecies, key)
}

func (c *client) GetMove(ctx context.Context, key Key) (*catalog.Move, error) {
	return GetResource[catalog.Move](ctx, c, catalog.KindMove, key)
}
