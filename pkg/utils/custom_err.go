package utils

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks caller input rejected before any model call.
	ErrValidation     = errors.New("validation error")
	ErrInvalidDays    = errors.New("days must be greater than 0")
	ErrNoCities       = errors.New("at least one city is required")
	ErrMissingCountry = errors.New("country is required")
	ErrMissingCity    = errors.New("city is required")

	ErrUpstreamGeneration = errors.New("model generation failed")
	ErrMalformedResponse  = errors.New("malformed model response")

	// ErrRankingFailed is fatal for an itinerary request.
	ErrRankingFailed = errors.New("ranking failed")
	// ErrEnrichmentFailed only affects the day it was raised for.
	ErrEnrichmentFailed = errors.New("enrichment failed")
)

// ValidationError tags err so that errors.Is(err, ErrValidation) holds.
func ValidationError(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// UpstreamError wraps a failed model call.
func UpstreamError(err error) error {
	return fmt.Errorf("%w: %w", ErrUpstreamGeneration, err)
}
