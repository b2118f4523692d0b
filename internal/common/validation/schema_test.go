// internal/common/validation/schema_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":     "object",
		"required": []string{"id"},
		"properties": map[string]interface{}{
			"id": map[string]interface{}{
				"type":      "string",
				"minLength": 1,
				"maxLength": 5,
			},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		document  interface{}
		wantValid bool
	}{
		{
			name:      "valid document",
			document:  map[string]interface{}{"id": "abc"},
			wantValid: true,
		},
		{
			name:      "missing required field",
			document:  map[string]interface{}{},
			wantValid: false,
		},
		{
			name:      "value below minLength",
			document:  map[string]interface{}{"id": ""},
			wantValid: false,
		},
		{
			name:      "value above maxLength",
			document:  map[string]interface{}{"id": "toolong"},
			wantValid: false,
		},
		{
			name:      "wrong type",
			document:  map[string]interface{}{"id": 42},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(tt.document, testSchema())
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
			if !tt.wantValid {
				assert.NotEmpty(t, result.Errors)
				assert.NotEmpty(t, result.Message())
			}
		})
	}
}

func TestValidate_AcceptsTaggedStructs(t *testing.T) {
	doc := struct {
		ID string `json:"id"`
	}{ID: "abc"}

	result, err := Validate(doc, testSchema())
	require.NoError(t, err)
	assert.True(t, result.Valid)
}
