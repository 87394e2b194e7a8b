package shared

import (
	"strings"
)

// BuildCacheKey joins key parts with the ":" separator redis tooling expects.
func BuildCacheKey(parts ...string) string {
	return strings.Join(parts, ":")
}
