package rulecache

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"
)

// domainCacheKey separates this package's hash domain from any other
// SHA-256 hash a caller might compute, the same null-byte-separated
// domain-prefix scheme the teacher's ir.hashWithDomain uses for
// content-addressed ids.
const domainCacheKey = "rulelearn/rulecache/v1"

// HashBytes returns the hex-encoded SHA-256 digest of data, for callers
// to hash attribute/object file contents before building a Key.
func HashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// NewKey builds the cache key for one induction run's inputs: the
// content digests of the attributes and objects documents, the
// induction mode, and the sorted "name=threshold" spelling of every
// configured consistency measure. Two runs over byte-identical inputs
// and configuration always collide on the same key regardless of
// measure declaration order.
func NewKey(attributesDigest, objectsDigest, mode string, measures []string) string {
	sorted := append([]string(nil), measures...)
	sort.Strings(sorted)

	h := sha256.New()
	h.Write([]byte(domainCacheKey))
	h.Write([]byte{0x00})
	h.Write([]byte(attributesDigest))
	h.Write([]byte{0x00})
	h.Write([]byte(objectsDigest))
	h.Write([]byte{0x00})
	h.Write([]byte(mode))
	h.Write([]byte{0x00})
	h.Write([]byte(strings.Join(sorted, ",")))
	return hex.EncodeToString(h.Sum(nil))
}
