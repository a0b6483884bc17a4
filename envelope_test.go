package winja

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractList(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		keys     []string
		expected string
	}{
		{
			name:     "bare array",
			body:     `[{"id":1},{"id":2}]`,
			expected: `[{"id":1},{"id":2}]`,
		},
		{
			name:     "data envelope",
			body:     `{"data":[{"id":1}]}`,
			expected: `[{"id":1}]`,
		},
		{
			name:     "named key",
			body:     `{"plans":[{"id":1}]}`,
			keys:     []string{"plans"},
			expected: `[{"id":1}]`,
		},
		{
			name:     "paginator nested under named key",
			body:     `{"reports":{"data":[{"id":1}],"current_page":1,"total":1}}`,
			keys:     []string{"reports"},
			expected: `[{"id":1}]`,
		},
		{
			name:     "data preferred over named key",
			body:     `{"data":[{"id":1}],"plans":[{"id":2}]}`,
			keys:     []string{"plans"},
			expected: `[{"id":1}]`,
		},
		{
			name:     "null payload",
			body:     `null`,
			expected: `[]`,
		},
		{
			name:     "object without a list",
			body:     `{"message":"ok"}`,
			keys:     []string{"plans"},
			expected: `[]`,
		},
		{
			name:     "scalar payload",
			body:     `42`,
			expected: `[]`,
		},
		{
			name:     "malformed payload",
			body:     `{"plans":`,
			keys:     []string{"plans"},
			expected: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractList([]byte(tt.body), tt.keys...)
			assert.JSONEq(t, tt.expected, string(got))
		})
	}
}

func TestDecodeList(t *testing.T) {
	plans, err := decodeList[SubscriptionPlan]([]byte(`{"plans":[{"id":1,"name":"Pro"}]}`), "plans")
	require.NoError(t, err)

	require.Len(t, plans, 1)
	assert.Equal(t, "Pro", plans[0].Name)
}

func TestDecodeListEmptyOnUnknownShape(t *testing.T) {
	plans, err := decodeList[SubscriptionPlan]([]byte(`{"something":"else"}`), "plans")
	require.NoError(t, err)
	assert.Empty(t, plans)
}

func TestDecodeObject(t *testing.T) {
	t.Run("bare object", func(t *testing.T) {
		user, err := decodeObject[User]([]byte(`{"id":3,"name":"Jane"}`))
		require.NoError(t, err)
		assert.Equal(t, "Jane", user.Name)
	})

	t.Run("data envelope", func(t *testing.T) {
		user, err := decodeObject[User]([]byte(`{"data":{"id":3,"name":"Jane"}}`))
		require.NoError(t, err)
		assert.Equal(t, "Jane", user.Name)
	})
}

func TestFlag(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected bool
	}{
		{name: "integer one", body: `1`, expected: true},
		{name: "integer zero", body: `0`, expected: false},
		{name: "boolean true", body: `true`, expected: true},
		{name: "boolean false", body: `false`, expected: false},
		{name: "string one", body: `"1"`, expected: true},
		{name: "string zero", body: `"0"`, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Flag
			require.NoError(t, f.UnmarshalJSON([]byte(tt.body)))
			assert.Equal(t, tt.expected, f.Bool())
		})
	}

	t.Run("marshals as integer", func(t *testing.T) {
		raw, err := Flag(true).MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, "1", string(raw))

		raw, err = Flag(false).MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, "0", string(raw))
	})
}
