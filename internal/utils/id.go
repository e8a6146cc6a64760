package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewID returns an opaque 32-character hex identifier: a random UUID with
// the dashes stripped. Ids carry no semantic structure and are never reused.
func NewID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
