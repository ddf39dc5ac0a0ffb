package gamesession

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"github.com/KirkDiggler/pokemon-api/internal/entities"
	"github.com/KirkDiggler/pokemon-api/internal/errors"
	"github.com/KirkDiggler/pokemon-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/pokemon-api/internal/redis"
)

const (
	sessionKeyPrefix   = "game_session:"
	saveIndexKeyPrefix = "game_session:save:"

	errSessionNil        = "game session cannot be nil"
	errConnectionIDEmpty = "connection ID cannot be empty"
	errGameSaveIDEmpty   = "game save ID cannot be empty"
)

func sessionKey(connectionID string) string {
	return sessionKeyPrefix + connectionID
}

func saveIndexKey(gameSaveID string) string {
	return saveIndexKeyPrefix + gameSaveID
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis game session repository
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

// NewRedis creates a new Redis-backed game session repository
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

func decodeSession(raw string) (*entities.GameSession, error) {
	var session entities.GameSession
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal game session")
	}
	return &session, nil
}

func passThrough(err error, message string) error {
	var appErr *errors.Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return errors.Wrap(err, message)
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	session := input.GameSession
	if session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("connection_id", session.ConnectionID, vb)
	errors.ValidateRequired("game_save_id", session.GameSaveID, vb)
	errors.ValidateRequired("user_id", session.UserID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	stored := *session
	if stored.DateCreated.IsZero() {
		stored.DateCreated = r.clock.Now()
	}
	payload, err := json.Marshal(&stored)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal game session")
	}

	key := sessionKey(stored.ConnectionID)
	indexKey := saveIndexKey(stored.GameSaveID)
	var terminated []string

	err = redisclient.WatchWithRetry(ctx, r.client, redisclient.DefaultTxRetries, func(tx *redisclient.Tx) error {
		terminated = terminated[:0]

		// the connection may be bound to a different save
		var previousSaveID string
		raw, err := tx.Get(ctx, key).Result()
		switch {
		case err == nil:
			previous, err := decodeSession(raw)
			if err != nil {
				return err
			}
			previousSaveID = previous.GameSaveID
		case errors.Is(err, redisclient.Nil):
		default:
			return errors.Wrapf(err, "failed to get game session")
		}

		existing, err := tx.SMembers(ctx, indexKey).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to get game sessions of save")
		}
		for _, connectionID := range existing {
			if connectionID != stored.ConnectionID {
				terminated = append(terminated, connectionID)
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redisclient.Pipeliner) error {
			for _, connectionID := range terminated {
				pipe.Del(ctx, sessionKey(connectionID))
			}
			if previousSaveID != "" && previousSaveID != stored.GameSaveID {
				pipe.SRem(ctx, saveIndexKey(previousSaveID), stored.ConnectionID)
			}
			pipe.Del(ctx, indexKey)
			pipe.Set(ctx, key, payload, 0)
			pipe.SAdd(ctx, indexKey, stored.ConnectionID)
			return nil
		})
		return err
	}, key, indexKey)
	if err != nil {
		return nil, passThrough(err, "failed to create game session")
	}

	if len(terminated) > 0 {
		slog.InfoContext(ctx, "terminated previous game sessions",
			"game_save_id", stored.GameSaveID,
			"connection_ids", terminated)
	}

	return &CreateOutput{
		GameSession:             &stored,
		TerminatedConnectionIDs: slices.Clone(terminated),
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ConnectionID == "" {
		return nil, errors.InvalidArgument(errConnectionIDEmpty)
	}

	raw, err := r.client.Get(ctx, sessionKey(input.ConnectionID)).Result()
	if err != nil {
		if errors.Is(err, redisclient.Nil) {
			return nil, errors.NotFoundf("game session for connection %s not found", input.ConnectionID)
		}
		return nil, errors.Wrapf(err, "failed to get game session")
	}

	session, err := decodeSession(raw)
	if err != nil {
		return nil, err
	}
	return &GetOutput{GameSession: session}, nil
}

func (r *redisRepository) ListByGameSaveID(
	ctx context.Context,
	input ListByGameSaveIDInput,
) (*ListByGameSaveIDOutput, error) {
	if input.GameSaveID == "" {
		return nil, errors.InvalidArgument(errGameSaveIDEmpty)
	}

	indexKey := saveIndexKey(input.GameSaveID)
	connectionIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get game sessions from index %s", indexKey)
	}

	sessions := make([]*entities.GameSession, 0, len(connectionIDs))
	for _, connectionID := range connectionIDs {
		out, err := r.Get(ctx, GetInput{ConnectionID: connectionID})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "game session not found, cleaning up index",
					"connection_id", connectionID,
					"index_key", indexKey)
				r.client.SRem(ctx, indexKey, connectionID)
				continue
			}
			return nil, err
		}
		sessions = append(sessions, out.GameSession)
	}

	return &ListByGameSaveIDOutput{GameSessions: sessions}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ConnectionID == "" {
		return nil, errors.InvalidArgument(errConnectionIDEmpty)
	}

	out, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	deleted := pipe.Del(ctx, sessionKey(input.ConnectionID))
	pipe.SRem(ctx, saveIndexKey(out.GameSession.GameSaveID), input.ConnectionID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete game session")
	}
	if deleted.Val() == 0 {
		// lost a race with another delete
		return nil, errors.NotFoundf("game session for connection %s not found", input.ConnectionID)
	}

	return &DeleteOutput{GameSession: out.GameSession}, nil
}

func (r *redisRepository) DeleteByGameSaveID(
	ctx context.Context,
	input DeleteByGameSaveIDInput,
) (*DeleteByGameSaveIDOutput, error) {
	if input.GameSaveID == "" {
		return nil, errors.InvalidArgument(errGameSaveIDEmpty)
	}

	indexKey := saveIndexKey(input.GameSaveID)
	count := 0

	err := redisclient.WatchWithRetry(ctx, r.client, redisclient.DefaultTxRetries, func(tx *redisclient.Tx) error {
		connectionIDs, err := tx.SMembers(ctx, indexKey).Result()
		if err != nil {
			return errors.Wrapf(err, "failed to get game sessions from index %s", indexKey)
		}
		if len(connectionIDs) == 0 {
			count = 0
			return nil
		}

		keys := make([]string, len(connectionIDs))
		for i, connectionID := range connectionIDs {
			keys[i] = sessionKey(connectionID)
		}

		var deleted *redisclient.IntCmd
		_, err = tx.TxPipelined(ctx, func(pipe redisclient.Pipeliner) error {
			deleted = pipe.Del(ctx, keys...)
			pipe.Del(ctx, indexKey)
			return nil
		})
		if err != nil {
			return err
		}
		count = int(deleted.Val())
		return nil
	}, indexKey)
	if err != nil {
		return nil, passThrough(err, "failed to delete game sessions")
	}

	return &DeleteByGameSaveIDOutput{Count: count}, nil
}
