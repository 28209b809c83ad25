package document

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"mongodm/src/fields"
	"mongodm/src/schema"
	"mongodm/src/store"
)

// Document is one instance of a registered model. It holds the current
// attribute values and the ordered list of attributes modified since the
// last save. All mutations must route through Set; the descriptor it
// consults is shared and read-only.
type Document struct {
	schema *schema.Descriptor
	store  store.Store
	logger *zap.SugaredLogger

	values map[string]interface{}

	// dirty keeps attribute names in write order and may repeat an
	// attribute that was set more than once.
	dirty []string
}

// New builds an empty document of the given model. Literal field defaults
// are seeded as starting values; computed defaults are left unresolved.
func New(desc *schema.Descriptor, st store.Store, logger *zap.SugaredLogger) *Document {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	d := &Document{
		schema: desc,
		store:  st,
		logger: logger,
		values: make(map[string]interface{}),
	}
	for attr, def := range desc.Defaults {
		if def != nil {
			d.values[attr] = def
		}
	}
	return d
}

// Schema returns the shared descriptor of the document's model.
func (d *Document) Schema() *schema.Descriptor {
	return d.schema
}

// Set writes one attribute. Mapped attributes are validated first; a
// failed validation leaves both the stored value and the dirty list
// untouched and the error reaches the caller unchanged. Unmapped
// attributes are stored as-is with no validation or tracking.
func (d *Document) Set(attr string, value interface{}) error {
	field, ok := d.schema.Fields[attr]
	if !ok {
		d.values[attr] = value
		return nil
	}

	if err := field.Validate(value); err != nil {
		return err
	}

	d.dirty = append(d.dirty, attr)
	d.values[attr] = value
	return nil
}

// Value returns the currently stored value for an attribute.
func (d *Document) Value(attr string) (interface{}, bool) {
	value, ok := d.values[attr]
	return value, ok
}

// ValueOrDefault returns the stored value when one is present. An absent
// value is backfilled from the field's default and stored through Set, but
// only when the field's own default is falsy; a computed default therefore
// never fires through this path. The gate is kept as-is for compatibility
// with the behavior existing schemas rely on.
func (d *Document) ValueOrDefault(attr string) (interface{}, error) {
	if value, ok := d.values[attr]; ok && value != nil {
		return value, nil
	}

	field, ok := d.schema.Fields[attr]
	if !ok {
		return nil, fmt.Errorf("no field mapped to attribute '%s'", attr)
	}

	if field.Default.Falsy() {
		value := field.Default.Resolve()
		d.logger.Debugf("using default value for %s: %v", attr, value)
		if err := d.Set(attr, value); err != nil {
			return nil, err
		}
		return value, nil
	}
	return nil, nil
}

// Dirty returns a copy of the attributes modified since the last save, in
// write order.
func (d *Document) Dirty() []string {
	out := make([]string, len(d.dirty))
	copy(out, d.dirty)
	return out
}

// ValidateFields runs every mapped field's validation against the current
// value, passing nil for absent attributes. All failures are collected
// into one error rather than stopping at the first.
func (d *Document) ValidateFields() error {
	var errs error
	for attr, field := range d.schema.Fields {
		if err := field.Validate(d.values[attr]); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("attribute '%s': %w", attr, err))
		}
	}
	if errs != nil {
		return errs
	}

	d.logger.Debugf("validate passed for model %s", d.schema.Name)
	return nil
}

// Save validates every field, then hands the write to the store: an update
// of the dirty attributes when the document already has an identity, a
// full insert otherwise. The dirty list is cleared on both paths before
// the store's verdict is known; callers needing stricter semantics must
// add their own acknowledgement handling. A validation failure aborts the
// save with the dirty list untouched.
func (d *Document) Save() error {
	if err := d.ValidateFields(); err != nil {
		return err
	}

	if id, ok := d.identity(); ok {
		set := bson.M{}
		for _, attr := range d.dirty {
			set[d.schema.Fields[attr].Name] = d.values[attr]
		}
		d.logger.Debugf("update record _id=%s, {$set: %v}", id.Hex(), set)

		err := d.store.Update(d.schema.Collection, id, set)
		d.dirty = d.dirty[:0]
		if err != nil {
			return fmt.Errorf("failed to update collection '%s': %w", d.schema.Collection, err)
		}
		return nil
	}

	doc := bson.M{}
	for attr, field := range d.schema.Fields {
		if value, ok := d.values[attr]; ok {
			doc[field.Name] = value
		}
	}
	d.logger.Debugf("insert new record to collection %s, %s", d.schema.Collection, d)

	id, err := d.store.Insert(d.schema.Collection, doc)
	d.dirty = d.dirty[:0]
	if err != nil {
		return fmt.Errorf("failed to insert into collection '%s': %w", d.schema.Collection, err)
	}
	if !id.IsZero() {
		// Written back directly so the generated identity is not
		// recorded as a mutation.
		d.values[fields.IdentityAttr] = id
	}
	return nil
}

// identity reports the current identity value, treating an unset or
// zero ObjectID as absent.
func (d *Document) identity() (primitive.ObjectID, bool) {
	value, ok := d.values[fields.IdentityAttr]
	if !ok || value == nil {
		return primitive.NilObjectID, false
	}
	id, ok := value.(primitive.ObjectID)
	if !ok || id.IsZero() {
		return primitive.NilObjectID, false
	}
	return id, true
}

// String renders the mapped attribute values; the identity attribute is
// omitted until the document has one.
func (d *Document) String() string {
	rendered := make(map[string]interface{}, len(d.schema.Fields))
	for attr := range d.schema.Fields {
		rendered[attr] = d.values[attr]
	}
	if _, ok := d.identity(); !ok {
		delete(rendered, fields.IdentityAttr)
	}
	return fmt.Sprintf("%v", rendered)
}
