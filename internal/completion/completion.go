// Package completion wraps the LLM chat-completion service behind a
// small interface. The rest of the system treats the LLM as an opaque
// collaborator: given a system/user text pair it returns either a raw
// JSON payload or trimmed free-form text.
package completion

import (
	"context"
	"encoding/json"
)

// Completer is the single collaborator abstraction the core consumes.
type Completer interface {
	// CompleteJSON sends a system/user pair to a model configured for
	// strict JSON output and returns the raw JSON payload. Returns
	// ErrMalformedResponse if the model reply is not parseable JSON.
	CompleteJSON(ctx context.Context, system, user string) (json.RawMessage, error)

	// CompleteText sends a system/user pair and returns the trimmed
	// free-form text reply.
	CompleteText(ctx context.Context, system, user string) (string, error)
}
