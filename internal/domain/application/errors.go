package application

import (
	"errors"
	"fmt"
	"strings"

	"loan-backoffice/internal/domain/document"
)

var (
	ErrNotFound          = errors.New("application not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("conflicting request already pending")
)

// ValidationError reports malformed or out-of-policy input. The caller can
// fix the named field and retry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

// IncompleteDocumentsError blocks the pending → under_review gate and names
// exactly the required document types still missing.
type IncompleteDocumentsError struct {
	Missing []document.Type
}

func (e *IncompleteDocumentsError) Error() string {
	names := make([]string, len(e.Missing))
	for i, t := range e.Missing {
		names[i] = string(t)
	}
	return "missing required documents: " + strings.Join(names, ", ")
}
