package ownedpokemon

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	redisclient "github.com/KirkDiggler/pokemon-api/internal/redis"
)

const (
	ownedPokemonKeyPrefix = "owned_pokemon:"
	saveIndexKeyPrefix    = "owned_pokemon:save:"

	errOwnedPokemonNil   = "owned pokemon cannot be nil"
	errOwnedPokemonID    = "owned pokemon ID cannot be empty"
	errGameSaveIDEmpty   = "game save ID cannot be empty"
	errResourceNameEmpty = "pokemon resource name cannot be empty"
)

func ownedPokemonKey(id string) string {
	return ownedPokemonKeyPrefix + id
}

func saveIndexKey(gameSaveID string) string {
	return saveIndexKeyPrefix + gameSaveID
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis owned pokemon repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed owned pokemon repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func validateOwned(owned *entities.OwnedPokemon) error {
	if owned == nil {
		return errors.InvalidArgument(errOwnedPokemonNil)
	}
	if owned.ID == "" {
		return errors.InvalidArgument(errOwnedPokemonID)
	}
	if owned.GameSaveID == "" {
		return errors.InvalidArgument(errGameSaveIDEmpty)
	}
	if owned.PokemonResourceName == "" {
		return errors.InvalidArgument(errResourceNameEmpty)
	}
	return nil
}

func decode(raw string) (*entities.OwnedPokemon, error) {
	var owned entities.OwnedPokemon
	if err := json.Unmarshal([]byte(raw), &owned); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal owned pokemon")
	}
	return &owned, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateOwned(input.OwnedPokemon); err != nil {
		return nil, err
	}

	stored := input.OwnedPokemon.Persisted()
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal owned pokemon")
	}

	created, err := r.client.SetNX(ctx, ownedPokemonKey(stored.ID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create owned pokemon")
	}
	if !created {
		return nil, errors.AlreadyExistsf("owned pokemon with ID %s already exists", stored.ID)
	}

	if err := r.client.SAdd(ctx, saveIndexKey(stored.GameSaveID), stored.ID).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to index owned pokemon")
	}

	return &CreateOutput{OwnedPokemon: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errOwnedPokemonID)
	}

	raw, err := r.client.Get(ctx, ownedPokemonKey(input.ID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("owned pokemon with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get owned pokemon")
	}

	owned, err := decode(raw)
	if err != nil {
		return nil, err
	}
	return &GetOutput{OwnedPokemon: owned}, nil
}

func (r *redisRepository) GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error) {
	out := &GetManyOutput{
		OwnedPokemon: []*entities.OwnedPokemon{},
	}
	if len(input.IDs) == 0 {
		return out, nil
	}

	keys := make([]string, len(input.IDs))
	for i, id := range input.IDs {
		if id == "" {
			return nil, errors.InvalidArgument(errOwnedPokemonID)
		}
		keys[i] = ownedPokemonKey(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get owned pokemon")
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			out.MissingIDs = append(out.MissingIDs, input.IDs[i])
			continue
		}
		owned, err := decode(raw)
		if err != nil {
			return nil, err
		}
		out.OwnedPokemon = append(out.OwnedPokemon, owned)
	}

	return out, nil
}

func (r *redisRepository) ListByGameSaveID(
	ctx context.Context,
	input ListByGameSaveIDInput,
) (*ListByGameSaveIDOutput, error) {
	if input.GameSaveID == "" {
		return nil, errors.InvalidArgument(errGameSaveIDEmpty)
	}

	indexKey := saveIndexKey(input.GameSaveID)
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get owned pokemon from index %s", indexKey)
	}
	sort.Strings(ids)

	many, err := r.GetMany(ctx, GetManyInput{IDs: ids})
	if err != nil {
		return nil, err
	}
	for _, id := range many.MissingIDs {
		slog.WarnContext(ctx, "owned pokemon not found, cleaning up index",
			"owned_pokemon_id", id,
			"index_key", indexKey)
		r.client.SRem(ctx, indexKey, id)
	}

	return &ListByGameSaveIDOutput{OwnedPokemon: many.OwnedPokemon}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateOwned(input.OwnedPokemon); err != nil {
		return nil, err
	}

	existing, err := r.Get(ctx, GetInput{ID: input.OwnedPokemon.ID})
	if err != nil {
		return nil, err
	}

	stored := input.OwnedPokemon.Persisted()
	data, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal owned pokemon")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, ownedPokemonKey(stored.ID), data, 0)
	if existing.OwnedPokemon.GameSaveID != stored.GameSaveID {
		pipe.SRem(ctx, saveIndexKey(existing.OwnedPokemon.GameSaveID), stored.ID)
		pipe.SAdd(ctx, saveIndexKey(stored.GameSaveID), stored.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update owned pokemon")
	}

	return &UpdateOutput{OwnedPokemon: stored}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	existing, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, ownedPokemonKey(input.ID))
	pipe.SRem(ctx, saveIndexKey(existing.OwnedPokemon.GameSaveID), input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete owned pokemon")
	}

	return &DeleteOutput{}, nil
}
