package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// NewEntityID returns a prefixed identifier like "ws_1b4e28ba...". The prefix
// makes IDs self-describing in logs and foreign-key mixups obvious.
func NewEntityID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
