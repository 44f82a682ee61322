package fieldtree

import (
	"errors"
	"fmt"
)

// BuildError reports a structural problem detected while building a
// field tree.
type BuildError struct {
	// Code identifies the error category.
	Code BuildErrorCode

	// Model is the model being expanded when the error was detected.
	Model string

	// Relation is the relation field whose expansion failed.
	Relation string

	// Message is a human-readable description.
	Message string
}

// BuildErrorCode categorizes build errors.
type BuildErrorCode string

const (
	// ErrCodeUnboundedFieldTree indicates a cyclic relation would be
	// expanded without an include list bounding the recursion.
	ErrCodeUnboundedFieldTree BuildErrorCode = "UNBOUNDED_FIELD_TREE"
)

// Error implements the error interface.
func (e *BuildError) Error() string {
	if e.Relation != "" {
		return fmt.Sprintf("%s: %s (model=%s, relation=%s)", e.Code, e.Message, e.Model, e.Relation)
	}
	return fmt.Sprintf("%s: %s (model=%s)", e.Code, e.Message, e.Model)
}

// IsUnboundedFieldTree returns true if the error is an unbounded-tree
// build error. Uses errors.As to handle wrapped errors.
func IsUnboundedFieldTree(err error) bool {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Code == ErrCodeUnboundedFieldTree
	}
	return false
}
