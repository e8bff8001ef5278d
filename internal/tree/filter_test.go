package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilter(t *testing.T) {
	items := []descriptor{
		{Path: "textures\\ui\\ui_icon.dds"},
		{Path: "config\\system.ltx"},
		{Path: "textures\\act\\act_stalker.dds"},
		{Path: "config\\weapons\\w_ak74.ltx"},
	}
	root := Build(items, pathOf, "\\")

	tests := []struct {
		name     string
		pattern  string
		expected []string
	}{
		{"empty pattern keeps everything", "", []string{
			"textures", "textures\\ui", "textures\\ui\\ui_icon.dds", "textures\\act", "textures\\act\\act_stalker.dds",
			"config", "config\\system.ltx", "config\\weapons", "config\\weapons\\w_ak74.ltx",
		}},
		{"extension glob", "**/*.ltx", []string{
			"config", "config\\system.ltx", "config\\weapons", "config\\weapons\\w_ak74.ltx",
		}},
		{"folder prefix", "textures/ui/*", []string{
			"textures", "textures\\ui", "textures\\ui\\ui_icon.dds",
		}},
		{"no match", "**/*.xml", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, err := Filter(root, tt.pattern, "\\")
			require.NoError(t, err)

			ids := []string{}
			for _, row := range Flatten(filtered, nil) {
				ids = append(ids, row.Node.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}

	// the source tree is left untouched
	assert.Equal(t, 4, CountLeaves(root))
}

func TestFilter_InvalidPattern(t *testing.T) {
	root := Build([]descriptor{{Path: "a"}}, pathOf, "/")

	_, err := Filter(root, "[", "/")
	assert.Error(t, err)
}

func TestFilter_NilRoot(t *testing.T) {
	filtered, err := Filter[descriptor](nil, "*", "/")
	assert.NoError(t, err)
	assert.Nil(t, filtered)
}
