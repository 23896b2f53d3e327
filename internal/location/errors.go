package location

import "errors"

// ErrInvalidDesignation is returned when a token resolves to no known
// designation code or name.
var ErrInvalidDesignation = errors.New("invalid designation")
