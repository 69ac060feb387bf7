package cache

import (
	"fmt"
	"strings"
)

func getCompositeCacheKey(parts ...any) string {
	keys := make([]string, len(parts))
	for i, p := range parts {
		keys[i] = fmt.Sprint(p)
	}
	return strings.Join(keys, "|")
}
