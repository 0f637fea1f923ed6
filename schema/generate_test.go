package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSimpleStruct(t *testing.T) {
	type entry struct {
		Name  string `json:"name" description:"The entry name"`
		Count int    `json:"count,omitempty" description:"How many"`
		Done  bool   `json:"done"`
	}

	s, err := Generate(entry{})
	require.NoError(t, err)
	require.Equal(t, Object, s.Type)

	require.Contains(t, s.Properties, "name")
	assert.Equal(t, String, s.Properties["name"].Type)
	assert.Equal(t, "The entry name", s.Properties["name"].Description)

	require.Contains(t, s.Properties, "count")
	assert.Equal(t, Integer, s.Properties["count"].Type)

	require.Contains(t, s.Properties, "done")
	assert.Equal(t, Boolean, s.Properties["done"].Type)

	// omitempty fields are optional, everything else is required
	assert.ElementsMatch(t, []string{"name", "done"}, s.Required)

	require.NotNil(t, s.AdditionalProperties)
	assert.False(t, *s.AdditionalProperties)
}

func TestGenerateEnumTag(t *testing.T) {
	type action struct {
		Kind string `json:"action" description:"The action to take" enum:"add,delete,mark"`
	}

	s, err := Generate(action{})
	require.NoError(t, err)
	require.Contains(t, s.Properties, "action")
	assert.Equal(t, []string{"add", "delete", "mark"}, s.Properties["action"].Enum)
}

func TestGenerateNestedArray(t *testing.T) {
	type item struct {
		Text string `json:"text"`
	}
	type batch struct {
		Items []item `json:"items" description:"The list of items"`
	}

	s, err := Generate(batch{})
	require.NoError(t, err)

	items := s.Properties["items"]
	require.NotNil(t, items)
	assert.Equal(t, Array, items.Type)
	require.NotNil(t, items.Items)
	assert.Equal(t, Object, items.Items.Type)
	require.Contains(t, items.Items.Properties, "text")
	assert.Equal(t, String, items.Items.Properties["text"].Type)
}

func TestGenerateRequiredOverride(t *testing.T) {
	type entry struct {
		A string `json:"a,omitempty" required:"true"`
		B string `json:"b" required:"false"`
		C string `json:"-"`
	}

	s, err := Generate(entry{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, s.Required)
	assert.NotContains(t, s.Properties, "C")
	assert.NotContains(t, s.Properties, "-")
}

func TestGenerateNil(t *testing.T) {
	_, err := Generate(nil)
	assert.Error(t, err)
}

func TestSchemaRoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		input Schema
	}{
		{
			name: "enum property",
			input: Schema{
				Type: Object,
				Properties: map[string]*Property{
					"status": {
						Type:        String,
						Description: "Status of the item",
						Enum:        []string{"complete", "incomplete"},
					},
				},
			},
		},
		{
			name: "array of objects",
			input: Schema{
				Type: Object,
				Properties: map[string]*Property{
					"actions": {
						Type:        Array,
						Description: "Ordered actions",
						Items: &Property{
							Type: Object,
							Properties: map[string]*Property{
								"action": {Type: String},
							},
							Required: []string{"action"},
						},
					},
				},
				Required: []string{"actions"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.input)
			require.NoError(t, err)
			var result Schema
			require.NoError(t, json.Unmarshal(data, &result))
			assert.Equal(t, tt.input, result)
		})
	}
}
