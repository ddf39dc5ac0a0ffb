// Package validation holds the business rule checks run before every create
// or update. Failures are InvalidArgument errors listing each bad field.
package validation

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

const maxCharacterNameLength = 32

// Validator checks an entity before it is written
type Validator[T any] interface {
	Validate(ctx context.Context, entity T) error
}

// Func adapts a plain function to a Validator
type Func[T any] func(ctx context.Context, entity T) error

// Validate calls f
func (f Func[T]) Validate(ctx context.Context, entity T) error {
	return f(ctx, entity)
}

// Config holds the limits the validators enforce
type Config struct {
	MaxLevel    int
	MaxDeckSize int
}

// Validate validates the config
func (cfg *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateMin("max_level", cfg.MaxLevel, 1, vb)
	errors.ValidateMin("max_deck_size", cfg.MaxDeckSize, 1, vb)
	return vb.Build()
}

// Validators bundles one validator per stored entity
type Validators struct {
	GameSave     Validator[*entities.GameSave]
	GameSaveData Validator[*entities.GameSaveData]
	GameSession  Validator[*entities.GameSession]
	OwnedPokemon Validator[*entities.OwnedPokemon]
}

// New creates the default validators
func New(cfg *Config) (*Validators, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	limits := *cfg
	return &Validators{
		GameSave:     Func[*entities.GameSave](validateGameSave),
		GameSaveData: Func[*entities.GameSaveData](limits.validateGameSaveData),
		GameSession:  Func[*entities.GameSession](validateGameSession),
		OwnedPokemon: Func[*entities.OwnedPokemon](limits.validateOwnedPokemon),
	}, nil
}

func validateGameSave(_ context.Context, save *entities.GameSave) error {
	if save == nil {
		return errors.InvalidArgument("game save is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", save.ID, vb)
	errors.ValidateRequired("user_id", save.UserID, vb)
	errors.ValidateRequired("character_name", save.CharacterName, vb)
	errors.ValidateMaxLength("character_name", save.CharacterName, maxCharacterNameLength, vb)
	if save.DateCreated.IsZero() {
		vb.RequiredField("date_created")
	}
	if save.LastPlayed.Before(save.DateCreated) {
		vb.Field("last_played", "must not be before date_created")
	}
	return vb.Build()
}

func (cfg *Config) validateGameSaveData(_ context.Context, data *entities.GameSaveData) error {
	if data == nil {
		return errors.InvalidArgument("game save data is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", data.ID, vb)
	errors.ValidateRequired("game_save_id", data.GameSaveID, vb)
	errors.ValidateRequired("game_data.last_played_scene", data.GameData.LastPlayedScene, vb)

	deck := data.GameData.DeckPokemon
	if len(deck) > cfg.MaxDeckSize {
		vb.Fieldf("game_data.deck_pokemon", "must hold at most %d pokemon", cfg.MaxDeckSize)
	}
	seen := make(map[string]struct{}, len(deck))
	for i, p := range deck {
		field := fmt.Sprintf("game_data.deck_pokemon[%d]", i)
		if p.OwnedPokemonID == "" {
			vb.RequiredField(field + ".owned_pokemon_id")
			continue
		}
		if _, dup := seen[p.OwnedPokemonID]; dup {
			vb.Fieldf(field, "pokemon %s is already in the deck", p.OwnedPokemonID)
		}
		seen[p.OwnedPokemonID] = struct{}{}
	}

	if len(data.GameData.UnlockedGameResources.Scenes) == 0 {
		vb.Field("game_data.unlocked_game_resources.scenes", "must unlock at least one scene")
	}
	for i, scene := range data.GameData.UnlockedGameResources.Scenes {
		errors.ValidateRequired(fmt.Sprintf("game_data.unlocked_game_resources.scenes[%d]", i), scene, vb)
	}

	return vb.Build()
}

func validateGameSession(_ context.Context, session *entities.GameSession) error {
	if session == nil {
		return errors.InvalidArgument("game session is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("connection_id", session.ConnectionID, vb)
	errors.ValidateRequired("game_save_id", session.GameSaveID, vb)
	errors.ValidateRequired("user_id", session.UserID, vb)
	return vb.Build()
}

func (cfg *Config) validateOwnedPokemon(_ context.Context, owned *entities.OwnedPokemon) error {
	if owned == nil {
		return errors.InvalidArgument("owned pokemon is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", owned.ID, vb)
	errors.ValidateRequired("game_save_id", owned.GameSaveID, vb)
	errors.ValidateRequired("pokemon_resource_name", owned.PokemonResourceName, vb)
	errors.ValidateRange("pokemon_level", owned.PokemonLevel, 1, cfg.MaxLevel, vb)
	errors.ValidateMin("current_experience", owned.CurrentExperience, 0, vb)
	errors.ValidateMin("current_hp", owned.CurrentHp, 0, vb)

	seen := make(map[string]struct{}, entities.MoveSlots)
	for i, move := range owned.MoveResourceNames() {
		if move == "" {
			continue
		}
		if _, dup := seen[move]; dup {
			vb.Fieldf(fmt.Sprintf("moves[%d]", i), "move %s is already known", move)
		}
		seen[move] = struct{}{}
	}

	return vb.Build()
}
