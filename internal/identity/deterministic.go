package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

// UUID derives a deterministic UUID from a stable key using go-hashid.
//
// Callers must ensure key construction prevents cross-entity collisions
// (prefix by domain/type).
func UUID(key string) uuid.UUID {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(trimmed, hashid.WithHashAlgorithm(hashid.SHA256), hashid.WithNormalization(true))
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(trimmed))
	}
	return uid
}

// LanguageUUID returns the stable identifier for a configured language code.
func LanguageUUID(code string) uuid.UUID {
	return UUID("go-recipes:language:" + strings.ToLower(strings.TrimSpace(code)))
}

// RecipeUUID returns the stable identifier used when seeding recipes from
// deterministic sources (fixtures, markdown imports with explicit slugs).
func RecipeUUID(slug string) uuid.UUID {
	return UUID("go-recipes:recipe:" + strings.ToLower(strings.TrimSpace(slug)))
}

// PlanUUID returns the stable identifier for a weekly plan keyed by its
// week-start date (YYYY-MM-DD).
func PlanUUID(weekStart string) uuid.UUID {
	return UUID("go-recipes:plan:" + strings.TrimSpace(weekStart))
}
