package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories depend on this package
// rather than on a concrete go-redis client type.
type Client interface {
	redis.UniversalClient
}

// Nil is returned by commands when a key does not exist
const Nil = redis.Nil

// TxFailedErr is returned by Watch when a watched key changed before EXEC
const TxFailedErr = redis.TxFailedErr
