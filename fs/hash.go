package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hash returns the xxhash of content in hex.
func Hash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
