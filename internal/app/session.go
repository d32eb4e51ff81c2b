package app

import (
	"context"

	"github.com/google/uuid"

	"github.com/oshokin/applemusic-client/internal/logger"
)

// sessionIDKey is the log field that ties together every line of one invocation.
const sessionIDKey = "session_id"

// NewSessionContext returns a context whose logger tags every entry with a fresh session id.
func NewSessionContext(ctx context.Context) context.Context {
	return logger.WithKV(ctx, sessionIDKey, uuid.NewString())
}
