package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Key generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
//
// Parts are JSON-marshaled before hashing, so any combination of
// serializable values (graph hashes, formats, render options) produces
// a stable key.
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// keyType extracts the prefix of a key built by [Key]. Keys without a
// prefix report as themselves.
func keyType(key string) string {
	prefix, _, _ := strings.Cut(key, ":")
	return prefix
}
