package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/ports"
	portsmocks "github.com/xray-forge/xrf-shell/internal/ports/mocks"
	"github.com/xray-forge/xrf-shell/internal/tree"
)

const exportsJSON = `{
	"conditions": [
		{"name": "is_enemy", "filepath": "scripts\\declarations\\conditions\\relations.lua", "line": 10, "col": 1},
		{"name": "is_wounded", "filepath": "scripts\\declarations\\conditions\\relations.lua", "line": 20, "col": 1}
	],
	"dialogs": [
		{"name": "give_money", "filepath": "scripts\\declarations\\dialogs\\trade.lua", "line": 3, "col": 1,
		 "parameters": [{"name": "amount", "typing": "number", "comment": ""}]}
	],
	"effects": []
}`

func TestExportsEditor_Open(t *testing.T) {
	b := portsmocks.NewMockBridge(t)
	recent, repo := newRecentService(t)

	b.EXPECT().Invoke(mock.Anything, domain.CommandOpenXRExports, ports.Args{
		"conditionsPath": "c",
		"dialogsPath":    "d",
		"effectsPath":    "e",
	}).Return(json.RawMessage(exportsJSON), nil)
	repo.EXPECT().Record(mock.Anything, mock.MatchedBy(func(r domain.RecentResource) bool {
		return r.Editor == domain.EditorExports && len(r.Locators) == 3
	})).Return(nil)
	repo.EXPECT().Prune(mock.Anything, domain.EditorExports, 10).Return(nil)

	editor := NewExportsEditor(b, nil, recent)
	snapshot := editor.Open(context.Background(), "c", "d", "e")

	require.True(t, snapshot.IsReady())
	assert.Equal(t, 3, snapshot.Value.Count())
	assert.Equal(t, "amount", snapshot.Value.Dialogs[0].Parameters[0].Name)
}

func TestExportsEditor_EntriesAndTree(t *testing.T) {
	b := portsmocks.NewMockBridge(t)
	b.EXPECT().Invoke(mock.Anything, domain.CommandOpenXRExports, mock.Anything).
		Return(json.RawMessage(exportsJSON), nil)

	editor := NewExportsEditor(b, nil, nil)
	assert.Empty(t, editor.Entries())

	editor.Open(context.Background(), "c", "d", "e")

	entries := editor.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "conditions/scripts/declarations/conditions/relations.lua/is_enemy", entries[0].Path())
	assert.Equal(t, ExportKindDialogs, entries[2].Kind)

	root, err := editor.Tree("")
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	assert.Equal(t, ExportKindConditions, root.Children[0].Label)
	assert.Equal(t, ExportKindDialogs, root.Children[1].Label)

	relations := tree.Find(root, "conditions/scripts/declarations/conditions/relations.lua")
	require.NotNil(t, relations)
	assert.True(t, relations.IsFolder())
	assert.Len(t, relations.Children, 2)

	filtered, err := editor.Tree("**/is_*")
	require.NoError(t, err)
	assert.Equal(t, 2, tree.CountLeaves(filtered))

	_, err = editor.Tree("[")
	assert.Error(t, err)
}

func TestExportsEditor_ResumeAndClose(t *testing.T) {
	b := portsmocks.NewMockBridge(t)
	b.EXPECT().Invoke(mock.Anything, domain.CommandGetXRExports, ports.Args(nil)).
		Return(json.RawMessage(exportsJSON), nil)
	b.EXPECT().Invoke(mock.Anything, domain.CommandCloseXRExports, ports.Args(nil)).
		Return(json.RawMessage("null"), nil)

	editor := NewExportsEditor(b, nil, nil)

	resumed := editor.Resume(context.Background())
	require.True(t, resumed.IsReady())

	require.NoError(t, editor.Shutdown(context.Background()))
	assert.True(t, editor.Declarations().Snapshot().IsIdle())
}
