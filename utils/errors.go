package utils

import "fmt"

// NotFoundError signals that a referenced customer, cleaner or booking does
// not exist. Surfaced to callers as a 404.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// ConflictError signals that a booking request lost the availability check:
// the cleaner already has an active booking on the requested day.
type ConflictError struct {
	Message string
}

func (e ConflictError) Error() string {
	return e.Message
}

// ValidationError signals malformed input rejected before it reaches the
// booking engine.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
