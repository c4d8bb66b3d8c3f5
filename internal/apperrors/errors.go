package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPersistence indicates that durable storage could not be read or written,
// or that a stored payload was malformed.
var ErrPersistence = errors.New("persistence failure")

// ErrExternalService indicates that an external collaborator (the advisor
// backend) was unreachable or returned an unusable payload.
var ErrExternalService = errors.New("external service failure")
