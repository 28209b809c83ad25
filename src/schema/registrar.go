package schema

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"mongodm/src/fields"
)

// Definition is the declared body of one model: its name, an optional
// collection override, and the attributes declared on it. Attribute values
// that are *fields.Field become mapped fields; everything else stays a
// plain attribute.
type Definition struct {
	Name       string
	Collection string
	Attrs      map[string]interface{}
}

// Descriptor is the finalized metadata for a registered model. It is
// computed exactly once, shared read-only by every document of the model,
// and never mutated after registration.
type Descriptor struct {
	// Name is the model name the definition was registered under.
	Name string

	// Collection is the target collection, defaulting to the lower-cased
	// model name.
	Collection string

	// Fields maps attribute names to their field descriptors.
	Fields map[string]*fields.Field

	// PrimaryKey is the attribute name of the single primary key field.
	PrimaryKey string

	// Plain holds declared attributes that are not field descriptors,
	// untouched by registration.
	Plain map[string]interface{}

	// Defaults holds each mapped attribute's literal default. Computed
	// producers are not invoked at registration and record nil here.
	Defaults map[string]interface{}
}

// Register runs once per model, at declaration time. It partitions the
// declared attributes, injects the identity field, and enforces that
// exactly one field is the primary key. Any failure aborts the whole
// registration; there is no partial descriptor.
func Register(def Definition, logger *zap.SugaredLogger) (*Descriptor, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	if def.Name == "" {
		return nil, fmt.Errorf("%w: model name is empty", fields.ErrConfiguration)
	}

	collection := def.Collection
	if collection == "" {
		collection = strings.ToLower(def.Name)
	}
	logger.Debugf("found model: %s (collection: %s)", def.Name, collection)

	attrs := make(map[string]interface{}, len(def.Attrs)+1)
	for attr, value := range def.Attrs {
		attrs[attr] = value
	}
	// The identity field is always assumed, even when the declaration
	// carries its own _id attribute.
	attrs[fields.IdentityAttr] = fields.Identity()

	desc := &Descriptor{
		Name:       def.Name,
		Collection: collection,
		Fields:     make(map[string]*fields.Field),
		Plain:      make(map[string]interface{}),
		Defaults:   make(map[string]interface{}),
	}

	primaryKey := ""
	for attr, value := range attrs {
		field, ok := value.(*fields.Field)
		if !ok {
			desc.Plain[attr] = value
			continue
		}

		if err := field.Check(); err != nil {
			return nil, fmt.Errorf("model %s, attribute '%s': %w", def.Name, attr, err)
		}
		logger.Debugf("    found mapping: %s => %s", attr, field)

		desc.Fields[attr] = field
		desc.Defaults[attr] = field.Default.Value()

		if field.PrimaryKey {
			if primaryKey != "" {
				return nil, fmt.Errorf("%w: model %s declares more than one primary key field", ErrDuplicatePrimaryKey, def.Name)
			}
			primaryKey = attr
		}
	}

	if primaryKey == "" {
		return nil, fmt.Errorf("%w: model %s", ErrNoPrimaryKey, def.Name)
	}
	desc.PrimaryKey = primaryKey

	return desc, nil
}

// MustRegister is Register for package-level model declarations; it panics
// when the definition is rejected.
func MustRegister(def Definition, logger *zap.SugaredLogger) *Descriptor {
	desc, err := Register(def, logger)
	if err != nil {
		panic(err)
	}
	return desc
}
