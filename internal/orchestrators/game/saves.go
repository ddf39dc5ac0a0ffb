package game

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/gamesave"
	"github.com/KirkDiggler/pokemon-api/internal/services/game"
)

// CreateNewGame creates a save and its starting data for a user
func (o *Orchestrator) CreateNewGame(
	ctx context.Context,
	input *game.CreateNewGameInput,
) (*game.CreateNewGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	errors.ValidateRequired("character_name", input.CharacterName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	cfg := o.rules.Config()

	count, err := o.saveRepo.CountByUserID(ctx, gamesave.CountByUserIDInput{UserID: input.UserID})
	if err != nil {
		return nil, errors.AsServerError(err, "failed to count game saves")
	}
	if count.Count >= cfg.MaxGameSaves {
		return nil, errors.ResourceExhaustedf("a user can have at most %d game saves", cfg.MaxGameSaves)
	}

	now := o.clock.Now()
	save := &entities.GameSave{
		ID:            o.idGen.Generate(),
		UserID:        input.UserID,
		CharacterName: strings.TrimSpace(input.CharacterName),
		DateCreated:   now,
		LastPlayed:    now,
	}
	data := &entities.GameSaveData{
		ID:           o.idGen.Generate(),
		GameSaveID:   save.ID,
		Version:      1,
		DateModified: now,
		GameData: entities.GameData{
			LastPlayedScene:     cfg.StarterScene,
			LastPlayedLocationX: cfg.StarterLocationX,
			LastPlayedLocationY: cfg.StarterLocationY,
			DeckPokemon:         []entities.DeckPokemon{},
			UnlockedGameResources: entities.UnlockedGameResources{
				Scenes: []string{cfg.StarterScene},
			},
		},
	}

	if err := o.validators.GameSave.Validate(ctx, save); err != nil {
		return nil, err
	}
	if err := o.validators.GameSaveData.Validate(ctx, data); err != nil {
		return nil, err
	}

	created, err := o.saveRepo.Create(ctx, gamesave.CreateInput{
		GameSave:     save,
		GameSaveData: data,
		MaxPerUser:   cfg.MaxGameSaves,
	})
	if err != nil {
		// a concurrent create can still win the last slot
		if errors.IsResourceExhausted(err) || errors.IsAborted(err) {
			return nil, err
		}
		return nil, errors.AsServerError(err, "failed to create game save")
	}

	slog.InfoContext(ctx, "game save created",
		"user_id", save.UserID,
		"game_save_id", save.ID)

	o.publish(ctx, EventGameSaveCreated, created.GameSave, nil, map[string]any{
		EventKeyUserID: save.UserID,
	})

	return &game.CreateNewGameOutput{
		GameSave:     created.GameSave,
		GameSaveData: created.GameSaveData,
	}, nil
}

// ListGameSaves returns the user's saves oldest first
func (o *Orchestrator) ListGameSaves(
	ctx context.Context,
	input *game.ListGameSavesInput,
) (*game.ListGameSavesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", input.UserID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	out, err := o.saveRepo.ListByUserID(ctx, gamesave.ListByUserIDInput{UserID: input.UserID})
	if err != nil {
		return nil, errors.AsServerError(err, "failed to list game saves")
	}

	return &game.ListGameSavesOutput{GameSaves: out.GameSaves}, nil
}
