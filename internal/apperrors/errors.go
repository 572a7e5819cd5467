package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation cannot proceed because of the
// current state of the resource (e.g. deleting a category that still has products).
var ErrConflict = errors.New("resource state conflict")

// ErrUserAlreadyExists indicates a registration attempt with an email that is already taken.
var ErrUserAlreadyExists = errors.New("user already exists")

// ErrInvalidCredentials indicates a failed login. It is deliberately returned for
// both an unknown email and a wrong password so responses cannot be used to
// enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidRefreshToken indicates that the presented refresh token does not match
// any stored, unexpired token. A token that was already rotated falls in here too.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")
