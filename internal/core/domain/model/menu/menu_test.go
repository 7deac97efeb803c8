package menu_test

import (
	"encoding/json"
	"testing"

	"ordermanager/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func latteMenu(latteOptions ...string) menu.Snapshot {
	return menu.Snapshot{
		Items: []menu.Item{
			{
				Drink:     "latte",
				Available: true,
				Modifiers: []menu.ModifierGroup{{Options: latteOptions}},
			},
			{
				Drink:     "espresso",
				Available: true,
				Modifiers: nil,
			},
		},
	}
}

func TestSnapshot_Allows(t *testing.T) {
	tests := []struct {
		name      string
		snapshot  menu.Snapshot
		drink     string
		modifiers []string
		want      bool
	}{
		{
			name:      "drink with allowed modifier is valid",
			snapshot:  latteMenu("oat-milk", "soy-milk"),
			drink:     "latte",
			modifiers: []string{"oat-milk"},
			want:      true,
		},
		{
			name:      "disallowed modifier invalidates the whole order",
			snapshot:  latteMenu("soy-milk"),
			drink:     "latte",
			modifiers: []string{"oat-milk"},
			want:      false,
		},
		{
			name:      "one bad modifier among good ones fails closed",
			snapshot:  latteMenu("oat-milk", "soy-milk"),
			drink:     "latte",
			modifiers: []string{"oat-milk", "caramel"},
			want:      false,
		},
		{
			name:      "unknown drink is invalid regardless of modifiers",
			snapshot:  latteMenu("oat-milk"),
			drink:     "cortado",
			modifiers: nil,
			want:      false,
		},
		{
			name:      "empty modifier list is always valid",
			snapshot:  latteMenu(),
			drink:     "latte",
			modifiers: nil,
			want:      true,
		},
		{
			name:      "drink without modifier categories rejects any modifier",
			snapshot:  latteMenu("oat-milk"),
			drink:     "espresso",
			modifiers: []string{"oat-milk"},
			want:      false,
		},
		{
			name:     "empty snapshot rejects everything",
			snapshot: menu.Snapshot{},
			drink:    "latte",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.snapshot.Allows(tt.drink, tt.modifiers))
		})
	}
}

func TestSnapshot_Allows_ModifierAllowedByAnyCategory(t *testing.T) {
	snapshot := menu.Snapshot{
		Items: []menu.Item{
			{
				Drink:     "latte",
				Available: true,
				Modifiers: []menu.ModifierGroup{
					{Options: []string{"small", "large"}},
					{Options: []string{"oat-milk", "soy-milk"}},
				},
			},
		},
	}

	assert.True(t, snapshot.Allows("latte", []string{"large", "oat-milk"}))
	assert.False(t, snapshot.Allows("latte", []string{"large", "caramel"}))
}

func TestSnapshot_JSONShape(t *testing.T) {
	// The configuration source stores the menu under the "value" key with
	// capitalized "Options" inside each modifier category.
	raw := `{
		"value": [
			{
				"available": true,
				"drink": "latte",
				"icon": "latte.svg",
				"modifiers": [{"Options": ["oat-milk", "soy-milk"]}]
			}
		]
	}`

	var snapshot menu.Snapshot
	require.NoError(t, json.Unmarshal([]byte(raw), &snapshot))

	require.Len(t, snapshot.Items, 1)
	assert.Equal(t, "latte", snapshot.Items[0].Drink)
	assert.True(t, snapshot.Allows("latte", []string{"soy-milk"}))
}

func TestSnapshot_Find(t *testing.T) {
	snapshot := latteMenu("oat-milk")

	item, ok := snapshot.Find("latte")
	require.True(t, ok)
	assert.Equal(t, "latte", item.Drink)

	_, ok = snapshot.Find("mocha")
	assert.False(t, ok)
}
