// Package game implements the game service: it owns every write to a
// player's save and checks ownership before any of them
package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/clock"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/idgen"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/keylock"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/gamesave"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/gamesession"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/ownedpokemon"
	"github.com/KirkDiggler/pokemon-api/internal/rules"
	"github.com/KirkDiggler/pokemon-api/internal/services/enrichment"
	"github.com/KirkDiggler/pokemon-api/internal/services/game"
	"github.com/KirkDiggler/pokemon-api/internal/validation"
)

// Config holds the dependencies for the game orchestrator
type Config struct {
	GameSaveRepo     gamesave.Repository
	GameSessionRepo  gamesession.Repository
	OwnedPokemonRepo ownedpokemon.Repository
	Rules            rules.Service
	Enrichment       enrichment.Service
	Validators       *validation.Validators
	IDGenerator      idgen.Generator

	// EventBus receives domain events (optional, defaults to a private bus)
	EventBus events.EventBus
	// Clock (optional, defaults to the system clock)
	Clock clock.Clock
	// Locker serializes writes per save (optional)
	Locker *keylock.Locker
}

// Validate ensures all required dependencies are provided and sets defaults
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GameSaveRepo == nil {
		vb.RequiredField("GameSaveRepo")
	}
	if c.GameSessionRepo == nil {
		vb.RequiredField("GameSessionRepo")
	}
	if c.OwnedPokemonRepo == nil {
		vb.RequiredField("OwnedPokemonRepo")
	}
	if c.Rules == nil {
		vb.RequiredField("Rules")
	}
	if c.Enrichment == nil {
		vb.RequiredField("Enrichment")
	}
	if c.Validators == nil {
		vb.RequiredField("Validators")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	if c.EventBus == nil {
		c.EventBus = events.NewBus()
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.Locker == nil {
		c.Locker = keylock.New()
	}

	return vb.Build()
}

// Orchestrator implements the game.Service interface
type Orchestrator struct {
	saveRepo    gamesave.Repository
	sessionRepo gamesession.Repository
	ownedRepo   ownedpokemon.Repository
	rules       rules.Service
	enrichment  enrichment.Service
	validators  *validation.Validators
	idGen       idgen.Generator
	eventBus    events.EventBus
	clock       clock.Clock
	locker      *keylock.Locker
}

// New creates a new game orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		saveRepo:    cfg.GameSaveRepo,
		sessionRepo: cfg.GameSessionRepo,
		ownedRepo:   cfg.OwnedPokemonRepo,
		rules:       cfg.Rules,
		enrichment:  cfg.Enrichment,
		validators:  cfg.Validators,
		idGen:       cfg.IDGenerator,
		eventBus:    cfg.EventBus,
		clock:       cfg.Clock,
		locker:      cfg.Locker,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ game.Service = (*Orchestrator)(nil)

// activeSession resolves the session of a connection and checks the caller
// owns it
func (o *Orchestrator) activeSession(ctx context.Context, connectionID, userID string) (*entities.GameSession, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("connection_id", connectionID, vb)
	errors.ValidateRequired("user_id", userID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.sessionRepo.Get(ctx, gamesession.GetInput{ConnectionID: connectionID})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFound("no active game session for this connection")
		}
		return nil, errors.AsServerError(err, "failed to load game session")
	}

	if out.GameSession.UserID != userID {
		slog.WarnContext(ctx, "game session used by another user",
			"connection_id", connectionID,
			"game_save_id", out.GameSession.GameSaveID)
		return nil, errors.PermissionDenied("game session belongs to another user")
	}

	return out.GameSession, nil
}

// saveData loads the data row of a save. Every save has one, so a missing
// row is a server fault.
func (o *Orchestrator) saveData(ctx context.Context, gameSaveID string) (*entities.GameSaveData, error) {
	out, err := o.saveRepo.GetData(ctx, gamesave.GetDataInput{GameSaveID: gameSaveID})
	if err != nil {
		return nil, errors.AsServerError(err, fmt.Sprintf("failed to load data of game save %s", gameSaveID))
	}
	return out.GameSaveData, nil
}

// lockSave serializes writes to one save inside this process
func (o *Orchestrator) lockSave(ctx context.Context, gameSaveID string) (func(), error) {
	unlock, err := o.locker.Lock(ctx, gameSaveID)
	if err != nil {
		return nil, errors.AsServerError(err, "interrupted waiting for game save")
	}
	return unlock, nil
}

// requireOwnedBySave rejects pokemon that belong to another save. Foreign
// pokemon are reported like missing ones.
func requireOwnedBySave(gameSaveID string, owned []*entities.OwnedPokemon) error {
	for _, p := range owned {
		if p.GameSaveID != gameSaveID {
			return errors.NotFoundf("owned pokemon %s not found", p.ID)
		}
	}
	return nil
}

// loadOwnedPokemon reads pokemon of a save in ID order, enriching them when
// deep is set
func (o *Orchestrator) loadOwnedPokemon(
	ctx context.Context,
	gameSaveID string,
	ids []string,
	deep bool,
) ([]*entities.OwnedPokemon, error) {
	if len(ids) == 0 {
		return []*entities.OwnedPokemon{}, nil
	}
	for i, id := range ids {
		if id == "" {
			return nil, errors.InvalidArgumentf("owned pokemon id %d is empty", i)
		}
	}

	out, err := o.ownedRepo.GetMany(ctx, ownedpokemon.GetManyInput{IDs: ids})
	if err != nil {
		return nil, errors.AsServerError(err, "failed to load owned pokemon")
	}
	if len(out.MissingIDs) > 0 {
		return nil, errors.NotFoundf("owned pokemon %s not found", out.MissingIDs[0]).
			WithMeta("missing_ids", out.MissingIDs)
	}
	if err := requireOwnedBySave(gameSaveID, out.OwnedPokemon); err != nil {
		return nil, err
	}

	if !deep {
		return out.OwnedPokemon, nil
	}

	enriched, err := o.enrichment.GetDeepOwnedPokemon(ctx, &enrichment.GetDeepOwnedPokemonInput{
		OwnedPokemon: out.OwnedPokemon,
	})
	if err != nil {
		return nil, err
	}
	return enriched.OwnedPokemon, nil
}

// persistOwnedPokemon validates and stores the pokemon without catalog data
func (o *Orchestrator) persistOwnedPokemon(ctx context.Context, owned *entities.OwnedPokemon) error {
	if err := o.validators.OwnedPokemon.Validate(ctx, owned); err != nil {
		return err
	}

	_, err := o.ownedRepo.Update(ctx, ownedpokemon.UpdateInput{OwnedPokemon: owned.Persisted()})
	if err != nil {
		return errors.AsServerError(err, fmt.Sprintf("failed to update owned pokemon %s", owned.ID))
	}
	return nil
}
