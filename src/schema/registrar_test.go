package schema_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"mongodm/src/fields"
	"mongodm/src/schema"
)

func userDefinition() schema.Definition {
	return schema.Definition{
		Name: "User",
		Attrs: map[string]interface{}{
			"name":       fields.String("user_name", fields.Options{TypeCheck: true}),
			"test_field": fields.Common("test", fields.Options{Default: fields.Literal(-9999)}),
			"comment":    "not a field",
		},
	}
}

func Test_Register_Builds_Descriptor(t *testing.T) {
	t.Parallel()

	logger := zaptest.NewLogger(t).Sugar()

	desc, err := schema.Register(userDefinition(), logger)
	require.NoError(t, err)

	assert.Equal(t, "User", desc.Name)
	assert.Equal(t, "user", desc.Collection)

	// Mapped fields, including the injected identity field.
	require.Len(t, desc.Fields, 3)
	assert.Equal(t, "user_name", desc.Fields["name"].Name)
	assert.Equal(t, "test", desc.Fields["test_field"].Name)

	// Plain attributes are recorded and left untouched.
	assert.Equal(t, map[string]interface{}{"comment": "not a field"}, desc.Plain)

	// Literal defaults are captured per mapped attribute.
	assert.Equal(t, -9999, desc.Defaults["test_field"])
	assert.Nil(t, desc.Defaults["name"])
}

func Test_Register_Injects_Identity_Field(t *testing.T) {
	t.Parallel()

	desc, err := schema.Register(schema.Definition{
		Name:  "Session",
		Attrs: map[string]interface{}{},
	}, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	identity, ok := desc.Fields[fields.IdentityAttr]
	require.True(t, ok)
	assert.True(t, identity.PrimaryKey)
	assert.Equal(t, fields.IdentityAttr, identity.Name)
	assert.Equal(t, fields.IdentityAttr, desc.PrimaryKey)
}

func Test_Register_Identity_Field_Overrides_Declared_Id_Attribute(t *testing.T) {
	t.Parallel()

	desc, err := schema.Register(schema.Definition{
		Name: "Session",
		Attrs: map[string]interface{}{
			"_id": "bogus",
		},
	}, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	// The declared plain value is replaced by the assumed identity field.
	assert.Empty(t, desc.Plain)
	require.Contains(t, desc.Fields, fields.IdentityAttr)
	assert.True(t, desc.Fields[fields.IdentityAttr].PrimaryKey)
}

func Test_Register_Rejects_Second_Primary_Key(t *testing.T) {
	t.Parallel()

	email, err := fields.New("email", reflect.TypeOf(""), true, fields.Options{Unique: true})
	require.NoError(t, err)

	_, err = schema.Register(schema.Definition{
		Name: "Account",
		Attrs: map[string]interface{}{
			"email": email,
		},
	}, zaptest.NewLogger(t).Sugar())
	require.ErrorIs(t, err, schema.ErrDuplicatePrimaryKey)
}

func Test_Register_Rejects_Malformed_Field(t *testing.T) {
	t.Parallel()

	_, err := schema.Register(schema.Definition{
		Name: "Broken",
		Attrs: map[string]interface{}{
			"nameless": fields.String("", fields.Options{}),
		},
	}, zaptest.NewLogger(t).Sugar())
	require.ErrorIs(t, err, fields.ErrConfiguration)
}

func Test_Register_Rejects_Empty_Model_Name(t *testing.T) {
	t.Parallel()

	_, err := schema.Register(schema.Definition{}, zaptest.NewLogger(t).Sugar())
	require.ErrorIs(t, err, fields.ErrConfiguration)
}

func Test_Register_Honors_Collection_Override(t *testing.T) {
	t.Parallel()

	desc, err := schema.Register(schema.Definition{
		Name:       "User",
		Collection: "accounts",
		Attrs:      map[string]interface{}{},
	}, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	assert.Equal(t, "accounts", desc.Collection)
}

func Test_Register_Does_Not_Invoke_Computed_Defaults(t *testing.T) {
	t.Parallel()

	invoked := false
	def := schema.Definition{
		Name: "Token",
		Attrs: map[string]interface{}{
			"value": fields.String("value", fields.Options{
				Default: fields.Computed(func() interface{} {
					invoked = true
					return "generated"
				}),
			}),
		},
	}

	desc, err := schema.Register(def, zaptest.NewLogger(t).Sugar())
	require.NoError(t, err)

	assert.False(t, invoked)
	assert.Nil(t, desc.Defaults["value"])
}

func Test_MustRegister_Panics_On_Rejected_Definition(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		schema.MustRegister(schema.Definition{}, nil)
	})
}
