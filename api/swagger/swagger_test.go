package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocIsValidJSON(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)

	var parsed struct {
		Paths map[string]interface{} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	for _, path := range []string{"/api/v1/events", "/api/v1/events/{id}", "/api/v1/events/export", "/api/v1/projects", "/api/v1/projects/{id}", "/api/v1/projects/export", "/health", "/ready"} {
		assert.Contains(t, parsed.Paths, path)
	}
}
