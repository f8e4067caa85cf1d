package repository

import "errors"

// ErrProductNotFound is the absent-sentinel: the store has no record with the
// requested ID. Callers must tell it apart from infrastructure or validation
// failures with errors.Is.
var ErrProductNotFound = errors.New("product not found")
