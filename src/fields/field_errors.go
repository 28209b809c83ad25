package fields

// Add custom error definitions here
import "errors"

// ErrConfiguration is returned when a field descriptor is declared with a
// missing name or type.
var ErrConfiguration = errors.New("invalid field configuration")

// ErrTypeMismatch is returned when a value fails a field's type check.
var ErrTypeMismatch = errors.New("value type mismatch")
