package helpers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mongodm/src/helpers"
)

func Test_GenerateUUID_Is_Unique(t *testing.T) {
	t.Parallel()

	first := helpers.GenerateUUID()
	second := helpers.GenerateUUID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func Test_EncodeBSON_Round_Trip(t *testing.T) {
	t.Parallel()

	encoded, err := helpers.EncodeBSON(map[string]interface{}{"user_name": "Jett"})
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	decoded, err := helpers.DecodeBSON(encoded)
	require.NoError(t, err)
	assert.Equal(t, "Jett", decoded["user_name"])
}

func Test_EncodeBSON_Fails_On_Unsupported_Value(t *testing.T) {
	t.Parallel()

	_, err := helpers.EncodeBSON(map[string]interface{}{"bad": make(chan int)})
	require.Error(t, err)
}
