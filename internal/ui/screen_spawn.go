package ui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/services"
	"github.com/xray-forge/xrf-shell/internal/theme"
)

// spawnScreen summarizes the chunks of a spawn file
type spawnScreen struct {
	operations
	editor  *services.SpawnEditor
	keys    *KeyMap
	spinner func() string
}

func newSpawnScreen(ctx context.Context, editor *services.SpawnEditor, keys *KeyMap, spinner func() string) *spawnScreen {
	return &spawnScreen{
		operations: operations{ctx: ctx},
		editor:     editor,
		keys:       keys,
		spinner:    spinner,
	}
}

func (s *spawnScreen) Kind() domain.EditorKind { return domain.EditorSpawn }

func (s *spawnScreen) Status() domain.SessionStatus {
	return s.editor.File().Snapshot().Status
}

func (s *spawnScreen) Open(paths map[string]string) tea.Cmd {
	path := paths["path"]
	return s.run(func(ctx context.Context) { s.editor.Open(ctx, path) })
}

func (s *spawnScreen) Close() tea.Cmd {
	return s.run(func(ctx context.Context) { s.editor.Close(ctx) })
}

func (s *spawnScreen) Refresh() {}

func (s *spawnScreen) Update(tea.Msg) (tea.Cmd, bool) {
	return nil, false
}

func (s *spawnScreen) View(width, _ int) string {
	snapshot := s.editor.File().Snapshot()
	return renderSnapshot(snapshot, s.keys, s.spinner(), width, func() string {
		file := snapshot.Value
		return theme.PanelStyle.Render(renderFields([][2]string{
			{"File", file.Path},
			{"Version", fmt.Sprintf("%d", file.Header.Version)},
			{"GUID", file.Header.GUID},
			{"Graph GUID", file.Header.GraphGUID},
			{"Levels", fmt.Sprintf("%d", file.Header.LevelsCount)},
			{"Objects", fmt.Sprintf("%d", file.Header.ObjectsCount)},
			{"ALife objects", fmt.Sprintf("%d", file.AlifeObjects)},
			{"Artefact spawns", fmt.Sprintf("%d", file.ArtefactSpawns)},
			{"Graph vertices", fmt.Sprintf("%d", file.GraphVertices)},
			{"Patrols", fmt.Sprintf("%d", file.Patrols)},
		}))
	})
}
