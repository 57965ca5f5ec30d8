package morpho

import "github.com/cockroachdb/errors"

// Sentinel errors shared across morpho packages. Wrap these with
// errors.Wrapf and test with errors.Is.
var (
	// ErrValidation marks malformed input: wrong shapes, missing columns,
	// unsupported types or bad option values. Never retried, never suppressed.
	ErrValidation = errors.New("validation error")

	// ErrDomain marks a well-formed operation whose result is undefined, such
	// as converting a unit against a dimensionless target.
	ErrDomain = errors.New("domain error")

	// ErrDependency marks a requested capability whose provider has not been
	// configured, such as parallel execution without a worker pool.
	ErrDependency = errors.New("dependency error")
)
