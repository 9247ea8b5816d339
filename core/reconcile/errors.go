package reconcile

import "errors"

// Rejection reasons returned by Store operations. Callers match them with
// errors.Is; the wrapped message names the offending value.
var (
	// ErrInvalidInput means the command failed validation.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateInPantry means an item with the same name is already in stock.
	ErrDuplicateInPantry = errors.New("item already in pantry")
	// ErrDuplicateInList means the shopping list already holds the name.
	ErrDuplicateInList = errors.New("item already on shopping list")
	// ErrNotFound means the referenced id does not exist.
	ErrNotFound = errors.New("not found")
)
