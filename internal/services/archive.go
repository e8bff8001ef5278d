package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/xray-forge/xrf-shell/internal/adapters/bridge"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/ports"
	"github.com/xray-forge/xrf-shell/internal/session"
	"github.com/xray-forge/xrf-shell/internal/tree"
)

var errEmptyResult = errors.New("backend returned no result")

// ArchiveEditor browses the files of an archives project opened by the backend
type ArchiveEditor struct {
	bridge  ports.Bridge
	project *session.Session[*domain.ArchiveProject]
	recent  *RecentService
}

// NewArchiveEditor creates a new ArchiveEditor
func NewArchiveEditor(b ports.Bridge, observer ports.SessionObserver, recent *RecentService) *ArchiveEditor {
	return &ArchiveEditor{
		bridge:  b,
		project: session.New[*domain.ArchiveProject](string(domain.EditorArchives), observer),
		recent:  recent,
	}
}

// Kind returns the editor kind
func (e *ArchiveEditor) Kind() domain.EditorKind {
	return domain.EditorArchives
}

// Project returns the project session
func (e *ArchiveEditor) Project() *session.Session[*domain.ArchiveProject] {
	return e.project
}

// Open asks the backend to open the archives project at projectPath
func (e *ArchiveEditor) Open(ctx context.Context, projectPath string) domain.Snapshot[*domain.ArchiveProject] {
	var loaded *domain.ArchiveProject
	snapshot := e.project.Open(ctx, func(ctx context.Context) (*domain.ArchiveProject, error) {
		project, err := bridge.Call[*domain.ArchiveProject](ctx, e.bridge, domain.CommandOpenArchivesProject, ports.Args{
			"path": projectPath,
		})
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, fmt.Errorf("%s: %w", domain.CommandOpenArchivesProject, errEmptyResult)
		}

		loaded = project
		return project, nil
	})

	recordOpened(ctx, e.recent, snapshot, loaded, domain.EditorArchives, filepath.Base(projectPath), map[string]string{"path": projectPath})
	return snapshot
}

// Resume restores a project the backend still holds open
func (e *ArchiveEditor) Resume(ctx context.Context) domain.Snapshot[*domain.ArchiveProject] {
	return e.project.Restore(ctx, func(ctx context.Context) (*domain.ArchiveProject, bool, error) {
		project, err := bridge.Call[*domain.ArchiveProject](ctx, e.bridge, domain.CommandGetArchivesProject, nil)
		return project, project != nil, err
	})
}

// Close asks the backend to release the project
func (e *ArchiveEditor) Close(ctx context.Context) domain.Snapshot[*domain.ArchiveProject] {
	return e.project.Close(ctx, func(ctx context.Context) error {
		return bridge.Exec(ctx, e.bridge, domain.CommandCloseArchivesProject, nil)
	})
}

// Shutdown closes the project if one is held and reports a teardown failure
func (e *ArchiveEditor) Shutdown(ctx context.Context) error {
	if e.project.Snapshot().IsIdle() {
		return nil
	}
	return teardownError(e.Close(ctx).Err)
}

// Tree builds the file tree of the current project, keeping only files whose
// path matches pattern when pattern is not empty.
func (e *ArchiveEditor) Tree(pattern string) (*tree.Node[domain.ArchiveFileDescriptor], error) {
	snapshot := e.project.Snapshot()

	var files []domain.ArchiveFileDescriptor
	if snapshot.HasValue {
		files = snapshot.Value.SortedFiles()
	}

	root := tree.Build(files, func(d domain.ArchiveFileDescriptor) string { return d.Name }, domain.ArchivePathDelimiter)
	if pattern == "" {
		return root, nil
	}
	return tree.Filter(root, pattern, domain.ArchivePathDelimiter)
}
