package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrReferenced indicates that a resource cannot be deleted because other
// records still reference it (e.g. an account used by journal entries).
var ErrReferenced = errors.New("resource is referenced by other records")

// ErrExtraction indicates that the vision extraction collaborator failed or
// returned data that could not be coerced into candidates.
var ErrExtraction = errors.New("extraction failed")

// ErrUnauthorized indicates a missing or invalid session.
var ErrUnauthorized = errors.New("unauthorized")
