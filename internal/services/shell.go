package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/ports"
)

// Shell owns one editor per kind and the recent resources history.
// It is built once at startup and handed to the screens explicitly.
type Shell struct {
	Archives  *ArchiveEditor
	Configs   *ConfigsEditor
	Equipment *EquipmentEditor
	Exports   *ExportsEditor
	Recent    *RecentService
	Spawn     *SpawnEditor
}

// ShellParams holds the dependencies of a Shell
type ShellParams struct {
	Blobs    ports.BlobResolver
	Bridge   ports.Bridge
	Decoder  ports.ImageDecoder
	Grid     domain.GridSettings
	Observer ports.SessionObserver
	Recent   *RecentService
}

// NewShell creates every editor on top of the same bridge
func NewShell(params ShellParams) *Shell {
	return &Shell{
		Archives:  NewArchiveEditor(params.Bridge, params.Observer, params.Recent),
		Configs:   NewConfigsEditor(params.Bridge, params.Observer, params.Recent),
		Equipment: NewEquipmentEditor(params.Bridge, params.Blobs, params.Decoder, params.Observer, params.Recent, params.Grid),
		Exports:   NewExportsEditor(params.Bridge, params.Observer, params.Recent),
		Recent:    params.Recent,
		Spawn:     NewSpawnEditor(params.Bridge, params.Observer, params.Recent),
	}
}

// Resume restores every resource the backend still holds, concurrently.
// Each editor publishes its own outcome; the first failure is returned.
// Configs reports are not held by the backend and start empty.
func (s *Shell) Resume(ctx context.Context) error {
	logging.Logger.Info("Resuming editors")

	var g errgroup.Group
	g.Go(func() error { return s.Archives.Resume(ctx).Err })
	g.Go(func() error { return s.Equipment.Resume(ctx).Err })
	g.Go(func() error { return s.Exports.Resume(ctx).Err })
	g.Go(func() error { return s.Spawn.Resume(ctx).Err })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to resume editors: %w", err)
	}
	return nil
}

// Close releases every held resource, concurrently.
// All editors are torn down even when one of them fails.
func (s *Shell) Close(ctx context.Context) error {
	logging.Logger.Info("Closing editors")

	var g errgroup.Group
	g.Go(func() error { return s.Archives.Shutdown(ctx) })
	g.Go(func() error { return s.Configs.Shutdown(ctx) })
	g.Go(func() error { return s.Equipment.Shutdown(ctx) })
	g.Go(func() error { return s.Exports.Shutdown(ctx) })
	g.Go(func() error { return s.Spawn.Shutdown(ctx) })

	if err := g.Wait(); err != nil {
		logging.Logger.Warn("Editor teardown failed", "error", err)
		return fmt.Errorf("failed to close editors: %w", err)
	}
	return nil
}

// Status reports the lifecycle status of each editor's main resource
func (s *Shell) Status() map[domain.EditorKind]domain.SessionStatus {
	return map[domain.EditorKind]domain.SessionStatus{
		domain.EditorArchives:  s.Archives.Project().Snapshot().Status,
		domain.EditorConfigs:   s.Configs.Report().Snapshot().Status,
		domain.EditorEquipment: s.Equipment.Sprite().Snapshot().Status,
		domain.EditorExports:   s.Exports.Declarations().Snapshot().Status,
		domain.EditorSpawn:     s.Spawn.File().Snapshot().Status,
	}
}
