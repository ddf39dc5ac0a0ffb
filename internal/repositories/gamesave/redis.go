package gamesave

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokemon-api/internal/redis"
)

const (
	gameSaveKeyPrefix = "game_save:"
	dataKeyPrefix     = "game_save_data:"
	userIndexPrefix   = "game_save:user:"

	errGameSaveNil     = "game save cannot be nil"
	errGameSaveIDEmpty = "game save ID cannot be empty"
	errUserIDEmpty     = "user ID cannot be empty"
	errDataNil         = "game save data cannot be nil"
)

func gameSaveKey(id string) string {
	return gameSaveKeyPrefix + id
}

func dataKey(gameSaveID string) string {
	return dataKeyPrefix + gameSaveID
}

func userIndexKey(userID string) string {
	return userIndexPrefix + userID
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis game save repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed game save repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	save, data := input.GameSave, input.GameSaveData
	if save == nil {
		return nil, errors.InvalidArgument(errGameSaveNil)
	}
	if data == nil {
		return nil, errors.InvalidArgument(errDataNil)
	}
	if save.ID == "" {
		return nil, errors.InvalidArgument(errGameSaveIDEmpty)
	}
	if save.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}
	if data.GameSaveID != save.ID {
		return nil, errors.InvalidArgumentf("game save data belongs to %q, not %q", data.GameSaveID, save.ID)
	}

	stored := *data
	if stored.Version == 0 {
		stored.Version = 1
	}
	if stored.DateModified.IsZero() {
		stored.DateModified = r.clock.Now()
	}

	saveJSON, err := json.Marshal(save)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game save")
	}
	dataJSON, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game save data")
	}

	indexKey := userIndexKey(save.UserID)
	err = redisclient.WatchWithRetry(ctx, r.client, redisclient.DefaultTxRetries, func(tx *redisclient.Tx) error {
		exists, err := tx.Exists(ctx, gameSaveKey(save.ID)).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to check existence")
		}
		if exists > 0 {
			return errors.AlreadyExistsf("game save with ID %s already exists", save.ID)
		}

		if input.MaxPerUser > 0 {
			count, err := tx.SCard(ctx, indexKey).Result()
			if err != nil {
				return errors.Wrapf(err, "failed to count game saves")
			}
			if int(count) >= input.MaxPerUser {
				return errors.ResourceExhaustedf("user already has the maximum of %d game saves", input.MaxPerUser).
					WithMeta("user_id", save.UserID)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redisclient.Pipeliner) error {
			pipe.Set(ctx, gameSaveKey(save.ID), saveJSON, 0)
			pipe.Set(ctx, dataKey(save.ID), dataJSON, 0)
			pipe.SAdd(ctx, indexKey, save.ID)
			return nil
		})
		return err
	}, indexKey, gameSaveKey(save.ID))
	if err != nil {
		var appErr *errors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.Wrapf(err, "failed to create game save")
	}

	return &CreateOutput{
		GameSave:     save,
		GameSaveData: &stored,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errGameSaveIDEmpty)
	}

	save, err := r.getSave(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{GameSave: save}, nil
}

func (r *redisRepository) getSave(ctx context.Context, id string) (*entities.GameSave, error) {
	result, err := r.client.Get(ctx, gameSaveKey(id)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("game save with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get game save")
	}

	var save entities.GameSave
	if err := json.Unmarshal([]byte(result), &save); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal game save")
	}
	return &save, nil
}

func (r *redisRepository) ListByUserID(ctx context.Context, input ListByUserIDInput) (*ListByUserIDOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	indexKey := userIndexKey(input.UserID)
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get game saves from index %s", indexKey)
	}
	if len(ids) == 0 {
		return &ListByUserIDOutput{GameSaves: []*entities.GameSave{}}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = gameSaveKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get game saves")
	}

	saves := make([]*entities.GameSave, 0, len(ids))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			slog.WarnContext(ctx, "game save not found, cleaning up index",
				"game_save_id", ids[i],
				"index_key", indexKey)
			r.client.SRem(ctx, indexKey, ids[i])
			continue
		}

		var save entities.GameSave
		if err := json.Unmarshal([]byte(raw), &save); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal game save %s", ids[i])
		}
		saves = append(saves, &save)
	}

	sort.Slice(saves, func(i, j int) bool {
		if saves[i].DateCreated.Equal(saves[j].DateCreated) {
			return saves[i].ID < saves[j].ID
		}
		return saves[i].DateCreated.Before(saves[j].DateCreated)
	})

	return &ListByUserIDOutput{GameSaves: saves}, nil
}

func (r *redisRepository) CountByUserID(ctx context.Context, input CountByUserIDInput) (*CountByUserIDOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	count, err := r.client.SCard(ctx, userIndexKey(input.UserID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count game saves")
	}
	return &CountByUserIDOutput{Count: int(count)}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.GameSave == nil {
		return nil, errors.InvalidArgument(errGameSaveNil)
	}
	if input.GameSave.ID == "" {
		return nil, errors.InvalidArgument(errGameSaveIDEmpty)
	}

	existing, err := r.getSave(ctx, input.GameSave.ID)
	if err != nil {
		return nil, err
	}
	if existing.UserID != input.GameSave.UserID {
		return nil, errors.InvalidArgument("game save owner cannot change")
	}

	data, err := json.Marshal(input.GameSave)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game save")
	}
	if err := r.client.Set(ctx, gameSaveKey(input.GameSave.ID), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update game save")
	}

	return &UpdateOutput{GameSave: input.GameSave}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errGameSaveIDEmpty)
	}

	save, err := r.getSave(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, gameSaveKey(input.ID), dataKey(input.ID))
	pipe.SRem(ctx, userIndexKey(save.UserID), input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete game save")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) GetData(ctx context.Context, input GetDataInput) (*GetDataOutput, error) {
	if input.GameSaveID == "" {
		return nil, errors.InvalidArgument(errGameSaveIDEmpty)
	}

	result, err := r.client.Get(ctx, dataKey(input.GameSaveID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("game save data for %s not found", input.GameSaveID)
		}
		return nil, errors.Wrapf(err, "failed to get game save data")
	}

	data, err := decodeData(result)
	if err != nil {
		return nil, err
	}
	return &GetDataOutput{GameSaveData: data}, nil
}

func decodeData(raw string) (*entities.GameSaveData, error) {
	var data entities.GameSaveData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal game save data")
	}
	return &data, nil
}

func (r *redisRepository) UpdateData(ctx context.Context, input UpdateDataInput) (*UpdateDataOutput, error) {
	if input.GameSaveData == nil {
		return nil, errors.InvalidArgument(errDataNil)
	}
	saveID := input.GameSaveData.GameSaveID
	if saveID == "" {
		return nil, errors.InvalidArgument(errGameSaveIDEmpty)
	}

	key := dataKey(saveID)
	var updated entities.GameSaveData

	// no retries: a concurrent writer means the caller's view is stale
	err := redisclient.WatchWithRetry(ctx, r.client, 0, func(tx *redisclient.Tx) error {
		raw, err := tx.Get(ctx, key).Result()
		if err != nil {
			if errors.Is(err, redisclient.Nil) {
				return errors.NotFoundf("game save data for %s not found", saveID)
			}
			return errors.Wrapf(err, "failed to get game save data")
		}

		current, err := decodeData(raw)
		if err != nil {
			return err
		}
		if current.Version != input.ExpectedVersion {
			return errors.Abortedf("game save data changed since it was read (version %d, expected %d)",
				current.Version, input.ExpectedVersion)
		}

		updated = *input.GameSaveData
		updated.ID = current.ID
		updated.Version = current.Version + 1
		updated.DateModified = r.clock.Now()

		payload, err := json.Marshal(&updated)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal game save data")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redisclient.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		return err
	}, key)
	if err != nil {
		var appErr *errors.Error
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, errors.Wrapf(err, "failed to update game save data")
	}

	return &UpdateDataOutput{GameSaveData: &updated}, nil
}
