// Package share mints and resolves public share links for recipes. A share
// token is an opaque, URL-safe identifier stored on the recipe record; the
// resolver turns a token into a routable URL.
package share

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// TokenGenerator mints share tokens. Implementations must return URL-safe
// strings that are unique per invocation even for the same seed.
type TokenGenerator interface {
	Token(seed string) string
}

type hashTokenGenerator struct{}

// NewTokenGenerator returns the default generator. Tokens mix the seed with
// a random nonce so regenerating a link invalidates the old one.
func NewTokenGenerator() TokenGenerator {
	return hashTokenGenerator{}
}

func (hashTokenGenerator) Token(seed string) string {
	key := strings.TrimSpace(seed) + ":" + uuid.NewString()
	uid, err := hashid.NewUUID(key, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		uid = uuid.New()
	}
	return strings.ReplaceAll(uid.String(), "-", "")
}

// StaticTokenGenerator always returns the same token. Test helper.
type StaticTokenGenerator struct {
	Value string
}

func (s StaticTokenGenerator) Token(string) string {
	return s.Value
}
