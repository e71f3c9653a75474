package cache

import (
	"strconv"
	"strings"
)

// GlobalKeyPrefix namespaces every key this service writes.
const GlobalKeyPrefix = "notesquizzer"

// GenerateCacheKey joins prefix, service, object type and identifier with ":".
// Extra params are joined by "_" and appended as one more segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	parts := []string{GlobalKeyPrefix, serviceName, objectType, identifier}
	if len(paramsKey) > 0 {
		parts = append(parts, strings.Join(paramsKey, "_"))
	}
	return strings.Join(parts, ":")
}

// RateLimitKey is the counter key for one fixed rate-limit window.
func RateLimitKey(scope string, bucket int64) string {
	return GenerateCacheKey(scope, "ratelimit", strconv.FormatInt(bucket, 10))
}
