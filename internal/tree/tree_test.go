package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type descriptor struct {
	Path string
	Size int
}

func pathOf(d descriptor) string { return d.Path }

func labels(nodes []*Node[descriptor]) []string {
	result := make([]string, len(nodes))
	for i, n := range nodes {
		result[i] = n.Label
	}
	return result
}

func TestBuild_NestedFoldersAndRootLeaf(t *testing.T) {
	items := []descriptor{{Path: "a\\b\\c"}, {Path: "a\\b\\d"}, {Path: "x"}}

	root := Build(items, pathOf, "\\")

	require.Len(t, root.Children, 2)

	a := root.Children[0]
	assert.True(t, a.IsFolder())
	assert.Equal(t, "a", a.ID)
	assert.Equal(t, "a", a.Label)
	require.Len(t, a.Children, 1)

	ab := a.Children[0]
	assert.True(t, ab.IsFolder())
	assert.Equal(t, "a\\b", ab.ID)
	assert.Equal(t, "b", ab.Label)
	assert.Equal(t, []string{"c", "d"}, labels(ab.Children))
	assert.Equal(t, "a\\b\\c", ab.Children[0].ID)
	assert.Equal(t, "a\\b\\d", ab.Children[1].ID)

	x := root.Children[1]
	assert.False(t, x.IsFolder())
	assert.Equal(t, "x", x.ID)
	require.NotNil(t, x.Payload)
	assert.Equal(t, items[2], *x.Payload)
}

func TestBuild_EmptyInput(t *testing.T) {
	root := Build(nil, pathOf, "\\")

	require.NotNil(t, root)
	assert.NotNil(t, root.Children)
	assert.Empty(t, root.Children)
}

func TestBuild_EmptyPathYieldsRootLeaf(t *testing.T) {
	root := Build([]descriptor{{Path: ""}}, pathOf, "\\")

	require.Len(t, root.Children, 1)
	leaf := root.Children[0]
	assert.False(t, leaf.IsFolder())
	assert.Equal(t, "", leaf.Label)
	assert.Equal(t, "", leaf.ID)
	assert.NotNil(t, leaf.Payload)
}

func TestBuild_DropsEmptySegments(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		expectedID string
	}{
		{"leading delimiter", "\\a\\b", "a\\b"},
		{"trailing delimiter", "a\\b\\", "a\\b"},
		{"doubled delimiter", "a\\\\b", "a\\b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Build([]descriptor{{Path: tt.path}}, pathOf, "\\")

			require.Len(t, root.Children, 1)
			require.Len(t, root.Children[0].Children, 1)
			assert.Equal(t, tt.expectedID, root.Children[0].Children[0].ID)
			assert.Equal(t, "b", root.Children[0].Children[0].Label)
		})
	}
}

func TestBuild_OnlyDelimitersYieldsRootLeaf(t *testing.T) {
	root := Build([]descriptor{{Path: "\\\\"}}, pathOf, "\\")

	require.Len(t, root.Children, 1)
	assert.Equal(t, "", root.Children[0].Label)
}

func TestBuild_KeepsFirstEncounterOrder(t *testing.T) {
	items := []descriptor{
		{Path: "z\\1"},
		{Path: "a\\1"},
		{Path: "z\\0"},
		{Path: "m"},
		{Path: "a\\0"},
	}

	root := Build(items, pathOf, "\\")

	assert.Equal(t, []string{"z", "a", "m"}, labels(root.Children))
	assert.Equal(t, []string{"1", "0"}, labels(root.Children[0].Children))
	assert.Equal(t, []string{"1", "0"}, labels(root.Children[1].Children))
}

func TestBuild_DuplicatePathsProduceDuplicateLeaves(t *testing.T) {
	items := []descriptor{{Path: "a\\b", Size: 1}, {Path: "a\\b", Size: 2}}

	root := Build(items, pathOf, "\\")

	require.Len(t, root.Children, 1)
	leaves := root.Children[0].Children
	require.Len(t, leaves, 2)
	assert.Equal(t, leaves[0].ID, leaves[1].ID)
	assert.Equal(t, 1, leaves[0].Payload.Size)
	assert.Equal(t, 2, leaves[1].Payload.Size)
}

func TestBuild_LeafIsNotReusedAsFolder(t *testing.T) {
	root := Build([]descriptor{{Path: "a"}, {Path: "a\\b"}}, pathOf, "\\")

	require.Len(t, root.Children, 2)
	assert.False(t, root.Children[0].IsFolder())
	assert.True(t, root.Children[1].IsFolder())
	assert.Equal(t, "a", root.Children[1].ID)
}

func TestBuild_IsDeterministic(t *testing.T) {
	items := []descriptor{
		{Path: "textures\\ui\\ui_icon_equipment.dds", Size: 10},
		{Path: "config\\system.ltx", Size: 2},
		{Path: "textures\\ui\\ui_common.dds", Size: 4},
		{Path: "readme.txt", Size: 1},
	}

	first := Build(items, pathOf, "\\")
	second := Build(items, pathOf, "\\")

	assert.NotSame(t, first, second)
	assert.NotSame(t, first.Children[0], second.Children[0])
	if diff := cmp.Diff(first, second, cmp.AllowUnexported(Node[descriptor]{})); diff != "" {
		t.Errorf("Build() is not deterministic (-first +second):\n%s", diff)
	}
}

func TestBuild_PayloadIsCopied(t *testing.T) {
	items := []descriptor{{Path: "a", Size: 1}}

	root := Build(items, pathOf, "\\")
	items[0].Size = 99

	assert.Equal(t, 1, root.Children[0].Payload.Size)
}

func TestBuild_EmptyDelimiterKeepsWholePath(t *testing.T) {
	root := Build([]descriptor{{Path: "a/b"}}, pathOf, "")

	require.Len(t, root.Children, 1)
	assert.Equal(t, "a/b", root.Children[0].Label)
}

func TestFind(t *testing.T) {
	root := Build([]descriptor{{Path: "a/b/c"}, {Path: "x"}}, pathOf, "/")

	tests := []struct {
		id    string
		found bool
	}{
		{"a", true},
		{"a/b", true},
		{"a/b/c", true},
		{"x", true},
		{"a/c", false},
	}

	for _, tt := range tests {
		node := Find(root, tt.id)
		assert.Equal(t, tt.found, node != nil, "Find(%q)", tt.id)
		if node != nil {
			assert.Equal(t, tt.id, node.ID)
		}
	}

	assert.Nil(t, Find[descriptor](nil, "a"))
}

func TestCountLeaves(t *testing.T) {
	root := Build([]descriptor{{Path: "a/b/c"}, {Path: "a/b/d"}, {Path: "x"}}, pathOf, "/")

	assert.Equal(t, 3, CountLeaves(root))
	assert.Equal(t, 0, CountLeaves[descriptor](nil))
}

func TestFlatten(t *testing.T) {
	root := Build([]descriptor{{Path: "a/b/c"}, {Path: "a/d"}, {Path: "x"}}, pathOf, "/")

	all := Flatten(root, nil)
	ids := make([]string, len(all))
	depths := make([]int, len(all))
	for i, row := range all {
		ids[i] = row.Node.ID
		depths[i] = row.Depth
	}
	assert.Equal(t, []string{"a", "a/b", "a/b/c", "a/d", "x"}, ids)
	assert.Equal(t, []int{0, 1, 2, 1, 0}, depths)

	collapsed := Flatten(root, func(id string) bool { return id == "a" })
	ids = ids[:0]
	for _, row := range collapsed {
		ids = append(ids, row.Node.ID)
	}
	assert.Equal(t, []string{"a", "a/b", "a/d", "x"}, ids)
}
