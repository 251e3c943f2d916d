package delta2html

import "errors"

// Sentinel errors for library operations.
var (
	// Input-shape errors: fail fast, no partial tree is returned.
	ErrMissingOps = errors.New("delta missing ops array")
	ErrEmptyEmbed = errors.New("embed object has no keys")

	// JSON interchange errors.
	ErrDeltaParse = errors.New("failed to parse delta JSON")
)
