package i18n

import (
	"errors"
	"fmt"
)

// ErrMissingTranslation marks a key with no message in the active locale or
// its fallback.
var ErrMissingTranslation = errors.New("i18n: missing translation")

// Translator resolves a message key into display text. Implementations
// return ErrMissingTranslation (wrapped) when the key is unknown so callers
// can fall back to literal text.
type Translator interface {
	Translate(key string) (string, error)
}

// Static is an in-memory Translator backed by a plain map.
type Static map[string]string

func (s Static) Translate(key string) (string, error) {
	msg, ok := s[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingTranslation, key)
	}
	return msg, nil
}
