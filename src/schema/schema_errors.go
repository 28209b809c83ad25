package schema

// Add custom error definitions here
import "errors"

// ErrNoPrimaryKey is returned when registration finds no primary key field.
var ErrNoPrimaryKey = errors.New("primary key not found")

// ErrDuplicatePrimaryKey is returned when registration finds a second primary key field.
var ErrDuplicatePrimaryKey = errors.New("duplicate primary key")
