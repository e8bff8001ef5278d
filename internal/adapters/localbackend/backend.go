// Package localbackend serves the backend commands that need nothing more
// than the local filesystem, so the shell can run without an external backend.
package localbackend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/xray-forge/xrf-shell/internal/adapters/bridge"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/ports"
)

// ErrExternalBackend is returned for commands only an external backend implements
var ErrExternalBackend = errors.New("requires an external backend")

// Backend holds the resources opened through the local command handlers
type Backend struct {
	mu      sync.RWMutex
	project *domain.ArchiveProject
	sprite  *domain.EquipmentResponse
	streams map[string]string // stream name -> file path
}

// New creates a Backend with nothing opened
func New() *Backend {
	return &Backend{streams: make(map[string]string)}
}

// Register installs the backend command handlers on router
func (b *Backend) Register(router *bridge.Router) {
	router.Handle(domain.CommandOpenArchivesProject, b.openArchivesProject)
	router.Handle(domain.CommandGetArchivesProject, b.getArchivesProject)
	router.Handle(domain.CommandCloseArchivesProject, b.closeArchivesProject)

	router.Handle(domain.CommandOpenEquipmentSprite, b.openEquipmentSprite)
	router.Handle(domain.CommandGetEquipmentSprite, b.getEquipmentSprite)
	router.Handle(domain.CommandCloseEquipmentSprite, b.closeEquipmentSprite)

	router.Handle(domain.CommandVerifyConfigsPath, b.verifyConfigsPath)

	// Exports and spawn parsing and config formatting are not available locally;
	// reads report nothing held
	for _, command := range []string{
		domain.CommandFormatConfigsPath,
		domain.CommandOpenXRExports,
		domain.CommandOpenSpawnFile,
	} {
		router.Handle(command, unsupported(command))
	}
	for _, command := range []string{
		domain.CommandGetXRExports,
		domain.CommandCloseXRExports,
		domain.CommandGetSpawnFile,
		domain.CommandCloseSpawnFile,
	} {
		router.Handle(command, nothing)
	}
}

// NewRouter returns a Router with a fresh Backend registered
func NewRouter() (*bridge.Router, *Backend) {
	router := bridge.NewRouter()
	b := New()
	b.Register(router)
	return router, b
}

// Stream returns the file path registered under a stream name
func (b *Backend) Stream(name string) (string, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	path, ok := b.streams[name]
	return path, ok
}

func (b *Backend) openArchivesProject(ctx context.Context, args ports.Args) (any, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return nil, err
	}

	project, err := readArchivesProject(ctx, path)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	b.project = project
	b.mu.Unlock()

	logging.Logger.Info("Archives project opened", "path", path, "files", len(project.Files))
	return project, nil
}

func (b *Backend) getArchivesProject(context.Context, ports.Args) (any, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.project == nil {
		return nil, nil
	}
	return b.project, nil
}

func (b *Backend) closeArchivesProject(context.Context, ports.Args) (any, error) {
	b.mu.Lock()
	b.project = nil
	b.mu.Unlock()
	return nil, nil
}

func (b *Backend) openEquipmentSprite(_ context.Context, args ports.Args) (any, error) {
	spritePath, err := stringArg(args, "equipmentDdsPath")
	if err != nil {
		return nil, err
	}
	systemLtxPath, err := stringArg(args, "systemLtxPath")
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(spritePath); err != nil {
		return nil, fmt.Errorf("failed to open equipment sprite: %w", err)
	}

	descriptors, err := readInventoryDescriptors(systemLtxPath)
	if err != nil {
		return nil, err
	}

	response := &domain.EquipmentResponse{
		Descriptors:   descriptors,
		Name:          filepath.Base(spritePath),
		Path:          spritePath,
		SystemLtxPath: systemLtxPath,
	}

	b.mu.Lock()
	if b.sprite != nil {
		delete(b.streams, b.sprite.Name)
	}
	b.sprite = response
	b.streams[response.Name] = spritePath
	b.mu.Unlock()

	logging.Logger.Info("Equipment sprite opened", "path", spritePath, "descriptors", len(descriptors))
	return response, nil
}

func (b *Backend) getEquipmentSprite(context.Context, ports.Args) (any, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.sprite == nil {
		return nil, nil
	}
	return b.sprite, nil
}

func (b *Backend) closeEquipmentSprite(context.Context, ports.Args) (any, error) {
	b.mu.Lock()
	if b.sprite != nil {
		delete(b.streams, b.sprite.Name)
		b.sprite = nil
	}
	b.mu.Unlock()
	return nil, nil
}

func (b *Backend) verifyConfigsPath(ctx context.Context, args ports.Args) (any, error) {
	path, err := stringArg(args, "path")
	if err != nil {
		return nil, err
	}

	report, err := verifyConfigs(ctx, path)
	if err != nil {
		return nil, err
	}

	logging.Logger.Info("Configs verified", "path", path, "files", report.Files, "issues", len(report.Issues))
	return report, nil
}

func unsupported(command string) bridge.HandlerFunc {
	return func(context.Context, ports.Args) (any, error) {
		return nil, fmt.Errorf("%s %w", command, ErrExternalBackend)
	}
}

func nothing(context.Context, ports.Args) (any, error) {
	return nil, nil
}

func stringArg(args ports.Args, key string) (string, error) {
	value, ok := args[key].(string)
	if !ok || value == "" {
		return "", fmt.Errorf("missing %q argument", key)
	}
	return value, nil
}
