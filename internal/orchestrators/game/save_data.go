package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/gamesave"
	"github.com/KirkDiggler/pokemon-api/internal/repositories/ownedpokemon"
	"github.com/KirkDiggler/pokemon-api/internal/services/game"
)

// GetGameSaveData returns the persisted data of the session's save
func (o *Orchestrator) GetGameSaveData(
	ctx context.Context,
	input *game.GetGameSaveDataInput,
) (*game.GetGameSaveDataOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.activeSession(ctx, input.ConnectionID, input.UserID)
	if err != nil {
		return nil, err
	}

	data, err := o.saveData(ctx, session.GameSaveID)
	if err != nil {
		return nil, err
	}

	return &game.GetGameSaveDataOutput{GameSaveData: data}, nil
}

// SaveGameData overwrites the payload of the session's save. A changed deck
// is checked against the save's pokemon before anything is written.
func (o *Orchestrator) SaveGameData(
	ctx context.Context,
	input *game.SaveGameDataInput,
) (*game.SaveGameDataOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.activeSession(ctx, input.ConnectionID, input.UserID)
	if err != nil {
		return nil, err
	}

	unlock, err := o.lockSave(ctx, session.GameSaveID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	current, err := o.saveData(ctx, session.GameSaveID)
	if err != nil {
		return nil, err
	}

	next := &entities.GameSaveData{
		ID:           current.ID,
		GameSaveID:   current.GameSaveID,
		Version:      current.Version,
		DateModified: o.clock.Now(),
		GameData:     input.GameData,
	}
	if next.GameData.DeckPokemon == nil {
		next.GameData.DeckPokemon = []entities.DeckPokemon{}
	}

	if err := o.validators.GameSaveData.Validate(ctx, next); err != nil {
		return nil, err
	}

	if !entities.SameDeckSet(current.GameData.DeckPokemon, next.GameData.DeckPokemon) {
		if err := o.checkDeckOwnership(ctx, session.GameSaveID, next.GameData.DeckPokemonIDs()); err != nil {
			return nil, err
		}
	}

	updated, err := o.saveRepo.UpdateData(ctx, gamesave.UpdateDataInput{
		GameSaveData:    next,
		ExpectedVersion: current.Version,
	})
	if err != nil {
		if errors.IsAborted(err) {
			return nil, errors.WrapWithCode(err, errors.CodeAborted,
				"game save was changed by another request, reload and try again")
		}
		return nil, errors.AsServerError(err, "failed to save game data")
	}

	slog.DebugContext(ctx, "game data saved",
		"game_save_id", updated.GameSaveData.GameSaveID,
		"version", updated.GameSaveData.Version,
		"deck_size", len(updated.GameSaveData.GameData.DeckPokemon))

	o.publish(ctx, EventGameSaveDataSaved, session, nil, map[string]any{
		EventKeyUserID:     session.UserID,
		EventKeyGameSaveID: session.GameSaveID,
		EventKeyVersion:    updated.GameSaveData.Version,
	})

	return &game.SaveGameDataOutput{GameSaveData: updated.GameSaveData}, nil
}

// checkDeckOwnership requires every deck entry to be a pokemon of the save
func (o *Orchestrator) checkDeckOwnership(ctx context.Context, gameSaveID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	out, err := o.ownedRepo.GetMany(ctx, ownedpokemon.GetManyInput{IDs: ids})
	if err != nil {
		return errors.AsServerError(err, "failed to load deck pokemon")
	}

	if len(out.MissingIDs) > 0 {
		return errors.InvalidArgumentf("deck references unknown pokemon %s", out.MissingIDs[0]).
			WithMeta("missing_ids", out.MissingIDs)
	}
	for _, p := range out.OwnedPokemon {
		if p.GameSaveID != gameSaveID {
			slog.WarnContext(ctx, "deck references pokemon of another save",
				"game_save_id", gameSaveID,
				"owned_pokemon_id", p.ID)
			return errors.InvalidArgumentf("deck references unknown pokemon %s", p.ID)
		}
	}

	return nil
}
