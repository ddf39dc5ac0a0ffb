package game

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/services/enrichment"
	"github.com/KirkDiggler/pokemon-api/internal/services/game"
)

// InGrassRandomPokemonEncounter rolls for a wild pokemon in an unlocked scene.
// The pokemon is built in memory only.
func (o *Orchestrator) InGrassRandomPokemonEncounter(
	ctx context.Context,
	input *game.InGrassRandomPokemonEncounterInput,
) (*game.InGrassRandomPokemonEncounterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("scene_name", input.SceneName, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	scene, ok := o.rules.WildScene(input.SceneName)
	if !ok {
		return nil, errors.InvalidArgumentf("scene %s has no wild pokemon", input.SceneName)
	}

	pokedexID, err := o.rules.GetRandomPokedexNumberFromIntRangeWithRandomEncounterIncluded(scene.PokedexRange)
	if err != nil {
		return nil, err
	}
	if pokedexID == nil {
		return &game.InGrassRandomPokemonEncounterOutput{}, nil
	}

	session, err := o.activeSession(ctx, input.ConnectionID, input.UserID)
	if err != nil {
		return nil, err
	}

	data, err := o.saveData(ctx, session.GameSaveID)
	if err != nil {
		return nil, err
	}
	if !data.GameData.UnlockedGameResources.HasScene(input.SceneName) {
		return nil, errors.PermissionDeniedf("scene %s is not unlocked", input.SceneName)
	}

	species, err := o.enrichment.GetPokemonAndSpecies(ctx, &enrichment.GetPokemonAndSpeciesInput{
		PokedexID: *pokedexID,
	})
	if err != nil {
		return nil, err
	}

	level, err := o.rules.GetRandomNumberFromIntRange(scene.LevelRange)
	if err != nil {
		return nil, err
	}

	moveSet, err := o.rules.GetRandomMoveSetFromPokemon(species.Pokemon, level)
	if err != nil {
		return nil, err
	}

	moves, err := o.enrichment.GetMoveSet(ctx, &enrichment.GetMoveSetInput{MoveSet: moveSet})
	if err != nil {
		return nil, err
	}

	maxHp, err := o.rules.GetPokemonMaxHp(species.Pokemon, level)
	if err != nil {
		return nil, err
	}

	wild := &entities.WildPokemon{
		ID:                    o.idGen.Generate(),
		SceneName:             input.SceneName,
		PokemonResourceName:   species.Pokemon.Name,
		PokemonLevel:          level,
		CurrentHp:             maxHp,
		MaxHp:                 maxHp,
		MoveOneResourceName:   moveSet[0],
		MoveTwoResourceName:   moveSet[1],
		MoveThreeResourceName: moveSet[2],
		MoveFourResourceName:  moveSet[3],
		Pokemon:               species.Pokemon,
		PokemonSpecies:        species.PokemonSpecies,
		MoveOne:               moves.Moves[0],
		MoveTwo:               moves.Moves[1],
		MoveThree:             moves.Moves[2],
		MoveFour:              moves.Moves[3],
	}

	slog.DebugContext(ctx, "wild pokemon encountered",
		"scene", input.SceneName,
		"pokemon", wild.PokemonResourceName,
		"level", wild.PokemonLevel,
		"moves", moveSet.Names())

	o.publish(ctx, EventWildPokemonEncountered, session, wild, map[string]any{
		EventKeyUserID:     session.UserID,
		EventKeyGameSaveID: session.GameSaveID,
		EventKeyLevel:      wild.PokemonLevel,
		EventKeyMoves:      moveSet.Names(),
	})

	return &game.InGrassRandomPokemonEncounterOutput{WildPokemon: wild}, nil
}
