package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/nfrund/petcommunity/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.ID
	}{
		{"string", `{"id":"abc-1"}`, "abc-1"},
		{"integer", `{"id":42}`, "42"},
		{"null", `{"id":null}`, ""},
		{"missing", `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v struct {
				ID domain.ID `json:"id"`
			}
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &v))
			assert.Equal(t, tt.want, v.ID)
		})
	}

	t.Run("rejects objects", func(t *testing.T) {
		var v struct {
			ID domain.ID `json:"id"`
		}
		assert.Error(t, json.Unmarshal([]byte(`{"id":{"x":1}}`), &v))
	})
}

func TestPetDecodesReferencePayload(t *testing.T) {
	var p domain.Pet
	raw := `{"id":1,"name":"Rex","species":"Dog","age":3,"description":"Friendly","date_added":"2024-01-01"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, domain.Pet{ID: "1", Name: "Rex", Species: "Dog", Age: 3, Description: "Friendly"}, p)
}
