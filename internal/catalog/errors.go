package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrRecipeIDRequired      = errors.New("catalog: recipe id required")
	ErrSlugRequired          = errors.New("catalog: slug is required")
	ErrSlugInvalid           = errors.New("catalog: slug contains invalid characters")
	ErrSlugExists            = errors.New("catalog: slug already exists")
	ErrTitleRequired         = errors.New("catalog: title is required")
	ErrContentRequired       = errors.New("catalog: content is required")
	ErrRatingOutOfRange      = errors.New("catalog: rating must be between 0 and 5")
	ErrUnknownLanguage       = errors.New("catalog: unknown language")
	ErrDuplicateLanguage     = errors.New("catalog: duplicate language provided")
	ErrTranslationNotFound   = errors.New("catalog: translation not found")
	ErrTranslationsDisabled  = errors.New("catalog: translations feature disabled")
	ErrShareTokenRequired    = errors.New("catalog: share token required")
	ErrServingsInvalid       = errors.New("catalog: servings must be at least 1")
	ErrLanguageCodeRequired  = errors.New("catalog: language code is required")
	ErrLanguageNameRequired  = errors.New("catalog: language display name is required")
	ErrDefaultLanguageLocked = errors.New("catalog: the default language cannot be removed")
)

// NotFoundError reports a missing catalog entity by resource and lookup key.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return "catalog: not found"
	}
	return fmt.Sprintf("catalog: %s not found: %s", e.Resource, e.Key)
}

// IsNotFound reports whether err wraps a catalog NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// UnknownLanguageError captures invalid language inputs for translation
// operations.
type UnknownLanguageError struct {
	RecipeID uuid.UUID
	Code     string
}

func (e *UnknownLanguageError) Error() string {
	if e == nil {
		return ErrUnknownLanguage.Error()
	}
	code := strings.TrimSpace(e.Code)
	if code != "" {
		return fmt.Sprintf("%s: language=%s", ErrUnknownLanguage.Error(), code)
	}
	return ErrUnknownLanguage.Error()
}

func (e *UnknownLanguageError) Unwrap() error {
	return ErrUnknownLanguage
}
