package redis

import (
	"context"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/KirkDiggler/pokemon-api/internal/errors"
)

// DefaultTxRetries is how often WatchWithRetry reruns fn after a watched key
// changed underneath it
const DefaultTxRetries = 3

// Tx is the transaction handle passed to a TxFunc
type Tx = redis.Tx

// Pipeliner queues commands inside MULTI/EXEC
type Pipeliner = redis.Pipeliner

// IntCmd is the result of an integer command queued on a pipeline
type IntCmd = redis.IntCmd

// TxFunc runs inside WATCH. Writes must go through tx.TxPipelined.
type TxFunc func(tx *Tx) error

// WatchWithRetry runs fn under WATCH of keys, rerunning it when another client
// modified a watched key before EXEC. When the retries run out the result is
// an Aborted error so callers can tell contention from failure.
func WatchWithRetry(ctx context.Context, client Client, retries int, fn TxFunc, keys ...string) error {
	for attempt := 0; ; attempt++ {
		err := client.Watch(ctx, func(tx *redis.Tx) error {
			return fn(tx)
		}, keys...)
		if !IsTxFailed(err) {
			return err
		}
		if attempt >= retries {
			return apperrors.WrapWithCode(err, apperrors.CodeAborted, "concurrent modification, retry the request")
		}
		slog.DebugContext(ctx, "watched keys changed, retrying transaction",
			"keys", keys,
			"attempt", attempt+1)
	}
}

// IsTxFailed reports whether err is an optimistic lock failure
func IsTxFailed(err error) bool {
	return errors.Is(err, TxFailedErr)
}
