package fields

import (
	"fmt"
	"reflect"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IdentityAttr is the attribute name every schema carries its identity
// field under.
const IdentityAttr = "_id"

var (
	stringType   = reflect.TypeOf("")
	intType      = reflect.TypeOf(int(0))
	boolType     = reflect.TypeOf(false)
	floatType    = reflect.TypeOf(float64(0))
	objectIDType = reflect.TypeOf(primitive.ObjectID{})
	anyType      = reflect.TypeOf((*interface{})(nil)).Elem()
)

// Validation is a caller-supplied check run against a candidate value. Its
// error is propagated to the writer unchanged.
type Validation func(value interface{}) error

// Options carries the optional knobs shared by all field constructors.
type Options struct {
	Default    Default
	Required   bool
	Unique     bool
	TypeCheck  bool
	Validation Validation
}

// Field describes one schema attribute: the document key it maps to, the
// expected value type, its default, and its constraints. Fields are built
// once at schema declaration and never mutated afterward.
type Field struct {
	// Name is the document field name, distinct from the attribute name
	// the schema declares it under.
	Name       string
	Type       reflect.Type
	Default    Default
	PrimaryKey bool

	Required   bool
	Unique     bool
	TypeCheck  bool
	Validation Validation
}

// New builds a field with an explicit type, for value types the typed
// variants do not cover.
func New(name string, fieldType reflect.Type, primaryKey bool, opts Options) (*Field, error) {
	f := build(name, fieldType, primaryKey, opts)
	if err := f.Check(); err != nil {
		return nil, err
	}
	return f, nil
}

// String declares a text field.
func String(name string, opts Options) *Field {
	return build(name, stringType, false, opts)
}

// Integer declares an integer field.
func Integer(name string, opts Options) *Field {
	return build(name, intType, false, opts)
}

// Boolean declares a boolean field.
func Boolean(name string, opts Options) *Field {
	return build(name, boolType, false, opts)
}

// Float declares a floating-point field.
func Float(name string, opts Options) *Field {
	return build(name, floatType, false, opts)
}

// Common declares a free-form field that accepts any value type, intended
// for default-carrying attributes. Type enforcement is always off.
func Common(name string, opts Options) *Field {
	f := build(name, anyType, false, opts)
	f.TypeCheck = false
	return f
}

// Identity is the preset for the assumed identity field: document name
// "_id", ObjectID-typed, primary key, with every optional check disabled.
// Schema registration injects it; declarations do not need to.
func Identity() *Field {
	return &Field{
		Name:       IdentityAttr,
		Type:       objectIDType,
		PrimaryKey: true,
	}
}

func build(name string, fieldType reflect.Type, primaryKey bool, opts Options) *Field {
	return &Field{
		Name:       name,
		Type:       fieldType,
		Default:    opts.Default,
		PrimaryKey: primaryKey,
		Required:   opts.Required,
		Unique:     opts.Unique,
		TypeCheck:  opts.TypeCheck,
		Validation: opts.Validation,
	}
}

// Check verifies the declaration itself is well formed. Registration runs
// it for every declared field before the schema is accepted.
func (f *Field) Check() error {
	if f.Name == "" {
		return fmt.Errorf("%w: field name is empty", ErrConfiguration)
	}
	if f.Type == nil {
		return fmt.Errorf("%w: field '%s' has no type", ErrConfiguration, f.Name)
	}
	return nil
}

// Validate is a pass/fail gate for a candidate value; it never transforms
// the value. Required and Unique are carried as metadata for the
// persistence layer and are not checked here.
func (f *Field) Validate(value interface{}) error {
	if f.TypeCheck {
		if value == nil || !reflect.TypeOf(value).AssignableTo(f.Type) {
			return fmt.Errorf("%w: value %#v is not a %s", ErrTypeMismatch, value, f.Type)
		}
	}

	if f.Validation != nil {
		return f.Validation(value)
	}
	return nil
}

func (f *Field) String() string {
	return fmt.Sprintf("<Field %s: %s>", f.Type, f.Name)
}
