package resolve

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeFlat(t *testing.T) {
	tests := []struct {
		name      string
		base      string
		local     string
		remote    string
		localWins bool
		expected  map[string]any
	}{
		{
			name:      "disjoint changes merge both",
			base:      `{"name":"Run"}`,
			local:     `{"name":"Run","schedule":"daily"}`,
			remote:    `{"name":"Run","archived":true}`,
			localWins: true,
			expected:  map[string]any{"name": "Run", "schedule": "daily", "archived": true},
		},
		{
			name:      "both changed same field local wins",
			base:      `{"name":"Run"}`,
			local:     `{"name":"Morning Run"}`,
			remote:    `{"name":"Jog"}`,
			localWins: true,
			expected:  map[string]any{"name": "Morning Run"},
		},
		{
			name:      "both changed same field remote wins",
			base:      `{"name":"Run"}`,
			local:     `{"name":"Morning Run"}`,
			remote:    `{"name":"Jog"}`,
			localWins: false,
			expected:  map[string]any{"name": "Jog"},
		},
		{
			name:      "local removed field remote untouched",
			base:      `{"name":"Run","note":"old"}`,
			local:     `{"name":"Run"}`,
			remote:    `{"name":"Run","note":"old"}`,
			localWins: false,
			expected:  map[string]any{"name": "Run"},
		},
		{
			// Без общего снимка каждое поле считается измененным обеими
			// сторонами — пополевой LWW по всему payload
			name:      "nil base degenerates to field level lww",
			base:      "",
			local:     `{"name":"Morning Run","schedule":"daily"}`,
			remote:    `{"name":"Jog"}`,
			localWins: false,
			expected:  map[string]any{"name": "Jog", "schedule": "daily"},
		},
		{
			name:      "identical change both sides",
			base:      `{"name":"Run"}`,
			local:     `{"name":"Jog"}`,
			remote:    `{"name":"Jog"}`,
			localWins: false,
			expected:  map[string]any{"name": "Jog"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged, err := mergeFlat([]byte(tt.base), []byte(tt.local), []byte(tt.remote), tt.localWins)
			require.NoError(t, err)

			var got map[string]any
			require.NoError(t, json.Unmarshal(merged, &got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMergeFlat_Unmergeable(t *testing.T) {
	tests := []struct {
		name   string
		local  string
		remote string
	}{
		{name: "nested object", local: `{"meta":{"color":"red"}}`, remote: `{"name":"Jog"}`},
		{name: "array field", local: `{"name":"Run"}`, remote: `{"tags":["a","b"]}`},
		{name: "not json", local: `not-json`, remote: `{"name":"Jog"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mergeFlat(nil, []byte(tt.local), []byte(tt.remote), true)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnmergeablePayload)
		})
	}
}

func TestMergeFlat_Deterministic(t *testing.T) {
	local := []byte(`{"b":1,"a":2,"c":3}`)
	remote := []byte(`{"d":4}`)

	first, err := mergeFlat(nil, local, remote, true)
	require.NoError(t, err)
	second, err := mergeFlat(nil, local, remote, true)
	require.NoError(t, err)

	// json.Marshal сортирует ключи — байтовое представление стабильно
	assert.Equal(t, first, second)
}
