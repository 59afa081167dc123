package models

import "fmt"

// ValidationError reports a malformed request payload.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

func NewValidationError(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// UpdateResult mirrors the counters of a single-document update.
type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// DeleteResult mirrors the counter of a single-document delete.
type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}
