package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/xray-forge/xrf-shell/internal/adapters/bridge"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/ports"
	"github.com/xray-forge/xrf-shell/internal/session"
	"github.com/xray-forge/xrf-shell/internal/tree"
)

// Declaration kinds used as the first segment of export tree ids
const (
	ExportKindConditions = "conditions"
	ExportKindDialogs    = "dialogs"
	ExportKindEffects    = "effects"
)

// ExportEntry is one declaration together with the kind it was declared as
type ExportEntry struct {
	Descriptor domain.ExportDescriptor
	Kind       string
}

// Path returns the tree id of the entry: kind/filepath/name
func (e ExportEntry) Path() string {
	file := strings.ReplaceAll(e.Descriptor.Filepath, "\\", domain.ExportsPathDelimiter)
	return strings.Join([]string{e.Kind, file, e.Descriptor.Name}, domain.ExportsPathDelimiter)
}

// ExportsEditor shows the conditions, dialogs and effects exported by game scripts
type ExportsEditor struct {
	bridge       ports.Bridge
	declarations *session.Session[*domain.ExportsDeclarations]
	recent       *RecentService
}

// NewExportsEditor creates a new ExportsEditor
func NewExportsEditor(b ports.Bridge, observer ports.SessionObserver, recent *RecentService) *ExportsEditor {
	return &ExportsEditor{
		bridge:       b,
		declarations: session.New[*domain.ExportsDeclarations](string(domain.EditorExports), observer),
		recent:       recent,
	}
}

// Kind returns the editor kind
func (e *ExportsEditor) Kind() domain.EditorKind {
	return domain.EditorExports
}

// Declarations returns the declarations session
func (e *ExportsEditor) Declarations() *session.Session[*domain.ExportsDeclarations] {
	return e.declarations
}

// Open asks the backend to parse the three export declaration files
func (e *ExportsEditor) Open(ctx context.Context, conditionsPath, dialogsPath, effectsPath string) domain.Snapshot[*domain.ExportsDeclarations] {
	var loaded *domain.ExportsDeclarations
	snapshot := e.declarations.Open(ctx, func(ctx context.Context) (*domain.ExportsDeclarations, error) {
		declarations, err := bridge.Call[*domain.ExportsDeclarations](ctx, e.bridge, domain.CommandOpenXRExports, ports.Args{
			"conditionsPath": conditionsPath,
			"dialogsPath":    dialogsPath,
			"effectsPath":    effectsPath,
		})
		if err != nil {
			return nil, err
		}
		if declarations == nil {
			return nil, fmt.Errorf("%s: %w", domain.CommandOpenXRExports, errEmptyResult)
		}

		loaded = declarations
		return declarations, nil
	})

	recordOpened(ctx, e.recent, snapshot, loaded, domain.EditorExports, "xr exports", map[string]string{
		"conditions": conditionsPath,
		"dialogs":    dialogsPath,
		"effects":    effectsPath,
	})
	return snapshot
}

// Resume restores declarations the backend still holds
func (e *ExportsEditor) Resume(ctx context.Context) domain.Snapshot[*domain.ExportsDeclarations] {
	return e.declarations.Restore(ctx, func(ctx context.Context) (*domain.ExportsDeclarations, bool, error) {
		declarations, err := bridge.Call[*domain.ExportsDeclarations](ctx, e.bridge, domain.CommandGetXRExports, nil)
		return declarations, declarations != nil, err
	})
}

// Close asks the backend to release the declarations
func (e *ExportsEditor) Close(ctx context.Context) domain.Snapshot[*domain.ExportsDeclarations] {
	return e.declarations.Close(ctx, func(ctx context.Context) error {
		return bridge.Exec(ctx, e.bridge, domain.CommandCloseXRExports, nil)
	})
}

// Shutdown closes the declarations if held and reports a teardown failure
func (e *ExportsEditor) Shutdown(ctx context.Context) error {
	if e.declarations.Snapshot().IsIdle() {
		return nil
	}
	return teardownError(e.Close(ctx).Err)
}

// Entries flattens the current declarations in kind order
func (e *ExportsEditor) Entries() []ExportEntry {
	snapshot := e.declarations.Snapshot()
	if !snapshot.HasValue || snapshot.Value == nil {
		return nil
	}

	declarations := snapshot.Value
	entries := make([]ExportEntry, 0, declarations.Count())
	for _, group := range []struct {
		kind        string
		descriptors []domain.ExportDescriptor
	}{
		{ExportKindConditions, declarations.Conditions},
		{ExportKindDialogs, declarations.Dialogs},
		{ExportKindEffects, declarations.Effects},
	} {
		for _, descriptor := range group.descriptors {
			entries = append(entries, ExportEntry{Descriptor: descriptor, Kind: group.kind})
		}
	}
	return entries
}

// Tree groups the current declarations by kind and declaring file
func (e *ExportsEditor) Tree(pattern string) (*tree.Node[ExportEntry], error) {
	root := tree.Build(e.Entries(), ExportEntry.Path, domain.ExportsPathDelimiter)
	if pattern == "" {
		return root, nil
	}
	return tree.Filter(root, pattern, domain.ExportsPathDelimiter)
}
