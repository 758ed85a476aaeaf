package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// DefaultKeyer names entries by what they hold: "solution:<n>" and
// "board:<n>:<step>:<glyph hash>". Disk counts and steps are small, so only
// the free-form glyph string is hashed.
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

func (DefaultKeyer) SolutionKey(n int) string {
	return "solution:" + strconv.Itoa(n)
}

func (DefaultKeyer) BoardKey(n, step int, glyphs string) string {
	return "board:" + strconv.Itoa(n) + ":" + strconv.Itoa(step) + ":" + Hash([]byte(glyphs))[:16]
}

// ScopedKeyer prefixes every key of an inner [Keyer], so that several
// deployments or schema versions can share one Redis.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the [DefaultKeyer] when inner is nil.
//
//	keyer := cache.NewScopedKeyer(nil, "hanoi:v1:")
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = DefaultKeyer{}
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) SolutionKey(n int) string { return k.prefix + k.inner.SolutionKey(n) }

func (k *ScopedKeyer) BoardKey(n, step int, glyphs string) string {
	return k.prefix + k.inner.BoardKey(n, step, glyphs)
}

// Hash returns the hex SHA-256 of data (64 characters). [FileCache] uses it
// to turn keys into file names.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
