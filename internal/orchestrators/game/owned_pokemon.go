package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/services/enrichment"
	"github.com/KirkDiggler/pokemon-api/internal/services/game"
)

// GetOwnedPokemonInDeck returns the deck of the session's save in deck order
func (o *Orchestrator) GetOwnedPokemonInDeck(
	ctx context.Context,
	input *game.GetOwnedPokemonInDeckInput,
) (*game.GetOwnedPokemonInDeckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.activeSession(ctx, input.ConnectionID, input.UserID)
	if err != nil {
		return nil, err
	}

	deck, err := o.deck(ctx, session.GameSaveID, input.Deep)
	if err != nil {
		return nil, err
	}

	return &game.GetOwnedPokemonInDeckOutput{OwnedPokemon: deck}, nil
}

// deck loads the pokemon referenced by the save's deck
func (o *Orchestrator) deck(ctx context.Context, gameSaveID string, deep bool) ([]*entities.OwnedPokemon, error) {
	data, err := o.saveData(ctx, gameSaveID)
	if err != nil {
		return nil, err
	}

	ids := data.GameData.DeckPokemonIDs()
	if len(ids) == 0 {
		return []*entities.OwnedPokemon{}, nil
	}
	if !deep {
		return o.loadOwnedPokemon(ctx, gameSaveID, ids, false)
	}

	out, err := o.enrichment.GetFullOwnedPokemon(ctx, &enrichment.GetFullOwnedPokemonInput{IDs: ids})
	if err != nil {
		return nil, err
	}
	if err := requireOwnedBySave(gameSaveID, out.OwnedPokemon); err != nil {
		return nil, err
	}

	return out.OwnedPokemon, nil
}

// GetOwnedPokemonByID returns pokemon of the session's save in request order
func (o *Orchestrator) GetOwnedPokemonByID(
	ctx context.Context,
	input *game.GetOwnedPokemonByIDInput,
) (*game.GetOwnedPokemonByIDOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	session, err := o.activeSession(ctx, input.ConnectionID, input.UserID)
	if err != nil {
		return nil, err
	}

	owned, err := o.loadOwnedPokemon(ctx, session.GameSaveID, input.OwnedPokemonIDs, input.Deep)
	if err != nil {
		return nil, err
	}

	return &game.GetOwnedPokemonByIDOutput{OwnedPokemon: owned}, nil
}

// RefillDeckHp restores every deck pokemon to full HP
func (o *Orchestrator) RefillDeckHp(
	ctx context.Context,
	input *game.RefillDeckHpInput,
) (*game.RefillDeckHpOutput, error) {
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

	deck, err := o.deck(ctx, session.GameSaveID, true)
	if err != nil {
		return nil, err
	}

	// compute every refill before writing any of them
	refilled := make([]*entities.OwnedPokemon, 0, len(deck))
	for _, owned := range deck {
		healed, err := o.rules.RefillOwnedPokemonHp(owned)
		if err != nil {
			return nil, err
		}
		if err := o.validators.OwnedPokemon.Validate(ctx, healed); err != nil {
			return nil, err
		}
		refilled = append(refilled, healed)
	}

	for i, healed := range refilled {
		if healed.CurrentHp == deck[i].CurrentHp {
			continue
		}
		if err := o.persistOwnedPokemon(ctx, healed); err != nil {
			return nil, err
		}
	}

	slog.DebugContext(ctx, "deck hp refilled",
		"game_save_id", session.GameSaveID,
		"count", len(refilled))

	return &game.RefillDeckHpOutput{OwnedPokemon: refilled}, nil
}

// AddExperience grants experience to one pokemon of the session's save and
// levels it up as far as the experience allows
func (o *Orchestrator) AddExperience(
	ctx context.Context,
	input *game.AddExperienceInput,
) (*game.AddExperienceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("owned_pokemon_id", input.OwnedPokemonID, vb)
	errors.ValidateMin("experience", input.Experience, 0, vb)
	if err := vb.Build(); err != nil {
		return nil, err
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

	owned, err := o.loadOwnedPokemon(ctx, session.GameSaveID, []string{input.OwnedPokemonID}, true)
	if err != nil {
		return nil, err
	}

	result, err := o.rules.AddXpToOwnedPokemon(owned[0], input.Experience)
	if err != nil {
		return nil, err
	}

	if err := o.persistOwnedPokemon(ctx, result.OwnedPokemon); err != nil {
		return nil, err
	}

	if result.LevelsGained > 0 {
		slog.InfoContext(ctx, "owned pokemon leveled up",
			"owned_pokemon_id", result.OwnedPokemon.ID,
			"level", result.OwnedPokemon.PokemonLevel,
			"levels_gained", result.LevelsGained)

		o.publish(ctx, EventOwnedPokemonLeveledUp, result.OwnedPokemon, nil, map[string]any{
			EventKeyUserID:       session.UserID,
			EventKeyGameSaveID:   session.GameSaveID,
			EventKeyLevel:        result.OwnedPokemon.PokemonLevel,
			EventKeyLevelsGained: result.LevelsGained,
		})
	}

	return &game.AddExperienceOutput{
		OwnedPokemon: result.OwnedPokemon,
		LevelsGained: result.LevelsGained,
	}, nil
}
