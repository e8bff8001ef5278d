package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xray-forge/xrf-shell/internal/adapters/bridge"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/ports"
	"github.com/xray-forge/xrf-shell/internal/session"
)

// SpawnEditor shows the chunks of an all.spawn file opened by the backend
type SpawnEditor struct {
	bridge ports.Bridge
	file   *session.Session[*domain.SpawnFile]
	recent *RecentService
}

// NewSpawnEditor creates a new SpawnEditor
func NewSpawnEditor(b ports.Bridge, observer ports.SessionObserver, recent *RecentService) *SpawnEditor {
	return &SpawnEditor{
		bridge: b,
		file:   session.New[*domain.SpawnFile](string(domain.EditorSpawn), observer),
		recent: recent,
	}
}

// Kind returns the editor kind
func (e *SpawnEditor) Kind() domain.EditorKind {
	return domain.EditorSpawn
}

// File returns the spawn file session
func (e *SpawnEditor) File() *session.Session[*domain.SpawnFile] {
	return e.file
}

// Open asks the backend to open the spawn file at path
func (e *SpawnEditor) Open(ctx context.Context, path string) domain.Snapshot[*domain.SpawnFile] {
	var loaded *domain.SpawnFile
	snapshot := e.file.Open(ctx, func(ctx context.Context) (*domain.SpawnFile, error) {
		file, err := bridge.Call[*domain.SpawnFile](ctx, e.bridge, domain.CommandOpenSpawnFile, ports.Args{
			"path": path,
		})
		if err != nil {
			return nil, err
		}
		if file == nil {
			return nil, fmt.Errorf("%s: %w", domain.CommandOpenSpawnFile, errEmptyResult)
		}

		loaded = file
		return file, nil
	})

	recordOpened(ctx, e.recent, snapshot, loaded, domain.EditorSpawn, filepath.Base(path), map[string]string{"path": path})
	return snapshot
}

// Resume restores a spawn file the backend still holds open
func (e *SpawnEditor) Resume(ctx context.Context) domain.Snapshot[*domain.SpawnFile] {
	return e.file.Restore(ctx, func(ctx context.Context) (*domain.SpawnFile, bool, error) {
		file, err := bridge.Call[*domain.SpawnFile](ctx, e.bridge, domain.CommandGetSpawnFile, nil)
		return file, file != nil, err
	})
}

// Close asks the backend to release the spawn file
func (e *SpawnEditor) Close(ctx context.Context) domain.Snapshot[*domain.SpawnFile] {
	return e.file.Close(ctx, func(ctx context.Context) error {
		return bridge.Exec(ctx, e.bridge, domain.CommandCloseSpawnFile, nil)
	})
}

// Shutdown closes the spawn file if one is held and reports a teardown failure
func (e *SpawnEditor) Shutdown(ctx context.Context) error {
	if e.file.Snapshot().IsIdle() {
		return nil
	}
	return teardownError(e.Close(ctx).Err)
}
