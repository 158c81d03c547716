package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONSchema(t *testing.T) {
	data, err := JSONSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, schemaID, doc["$id"])
	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok, "top-level properties expected")
	for _, key := range []string{"logging", "storage", "display", "detection", "server"} {
		assert.Contains(t, props, key)
	}
}
