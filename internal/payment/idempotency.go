package payment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewIdempotencyKey returns a fresh key for one submission attempt:
// millisecond timestamp plus a random UUID suffix. A retry of the same
// logical payment gets a new key — the client can't know whether a prior
// attempt partially succeeded server-side, and reusing the key would mask
// a legitimate distinct transfer as a duplicate.
func NewIdempotencyKey() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString())
}
