package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation.
var (
	ErrMissingRelationship = errors.New("relationship is required")
	ErrMissingPersonA      = errors.New("person_a is required")
	ErrMissingPersonB      = errors.New("person_b is required")
	ErrSamePerson          = errors.New("person_a and person_b must differ")
	ErrInvalidSex          = errors.New("sex must be M or F")
	ErrInvalidRelationship = errors.New("unknown relationship type")
	ErrInvalidTier         = errors.New("unknown generation tier")
)

// Sentinel errors for entity lookups.
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrPersonNotFound  = errors.New("person not found")
	ErrFactorNotFound  = errors.New("consanguinity factor not found")
)

// ErrSessionLimit indicates the server-wide cap on live sessions was hit
// (maps to HTTP 429 Too Many Requests).
var ErrSessionLimit = errors.New("session limit reached")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}
