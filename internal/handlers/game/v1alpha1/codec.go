package v1alpha1

import (
	"bytes"
	"context"
	"encoding/json"

	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/pokemon-api/internal/errors"
)

// Metadata keys carrying the caller's identity
const (
	MetadataUserID       = "x-user-id"
	MetadataConnectionID = "x-connection-id"
)

// caller is who is calling and over which connection
type caller struct {
	UserID       string
	ConnectionID string
}

func callerFromContext(ctx context.Context) caller {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return caller{}
	}
	return caller{
		UserID:       first(md.Get(MetadataUserID)),
		ConnectionID: first(md.Get(MetadataConnectionID)),
	}
}

func first(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// decode converts the request struct into dst. Unknown fields are rejected.
func decode(req *structpb.Struct, dst any) error {
	if req == nil || len(req.GetFields()) == 0 {
		return nil
	}

	raw, err := protojson.Marshal(req)
	if err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.InvalidArgumentf("malformed request: %v", err)
	}
	return nil
}

// encode converts a response value into a struct
func encode(v any) (*structpb.Struct, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, errors.Wrap(err, "failed to encode response")
	}
	return out, nil
}
