package services

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/xray-forge/xrf-shell/internal/adapters/blob"
	"github.com/xray-forge/xrf-shell/internal/adapters/bridge"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/ports"
	"github.com/xray-forge/xrf-shell/internal/session"
)

// EquipmentEditor shows the equipment sprite with its inventory icon sections.
// The sprite and the grid overlay settings are independent sessions.
type EquipmentEditor struct {
	blobs   ports.BlobResolver
	bridge  ports.Bridge
	decoder ports.ImageDecoder
	grid    *session.Session[domain.GridSettings]
	recent  *RecentService
	sprite  *session.Session[*domain.EquipmentSprite]
}

// NewEquipmentEditor creates a new EquipmentEditor with the given initial grid settings
func NewEquipmentEditor(
	b ports.Bridge,
	blobs ports.BlobResolver,
	decoder ports.ImageDecoder,
	observer ports.SessionObserver,
	recent *RecentService,
	grid domain.GridSettings,
) *EquipmentEditor {
	e := &EquipmentEditor{
		blobs:   blobs,
		bridge:  b,
		decoder: decoder,
		grid:    session.New[domain.GridSettings]("equipment-grid", observer),
		recent:  recent,
		sprite:  session.New[*domain.EquipmentSprite](string(domain.EditorEquipment), observer),
	}

	grid.Size = domain.ClampGridSize(float64(grid.Size))
	e.grid.Set(grid)
	return e
}

// Kind returns the editor kind
func (e *EquipmentEditor) Kind() domain.EditorKind {
	return domain.EditorEquipment
}

// Sprite returns the sprite session
func (e *EquipmentEditor) Sprite() *session.Session[*domain.EquipmentSprite] {
	return e.sprite
}

// Grid returns the grid settings session
func (e *EquipmentEditor) Grid() *session.Session[domain.GridSettings] {
	return e.grid
}

// Open asks the backend to open the sprite, then fetches and decodes its image.
// A failure at any step fails the open.
func (e *EquipmentEditor) Open(ctx context.Context, spritePath, systemLtxPath string) domain.Snapshot[*domain.EquipmentSprite] {
	var loaded *domain.EquipmentSprite
	snapshot := e.sprite.Open(ctx, func(ctx context.Context) (*domain.EquipmentSprite, error) {
		response, err := bridge.CallOptional[domain.EquipmentResponse](ctx, e.bridge, domain.CommandOpenEquipmentSprite, ports.Args{
			"equipmentDdsPath": spritePath,
			"systemLtxPath":    systemLtxPath,
		})
		if err != nil {
			return nil, err
		}
		if response == nil {
			return nil, fmt.Errorf("%s: %w", domain.CommandOpenEquipmentSprite, errEmptyResult)
		}

		sprite, err := e.hydrate(ctx, *response)
		if err != nil {
			return nil, err
		}

		loaded = sprite
		return sprite, nil
	})

	recordOpened(ctx, e.recent, snapshot, loaded, domain.EditorEquipment, filepath.Base(spritePath), map[string]string{
		"sprite":    spritePath,
		"systemLtx": systemLtxPath,
	})
	return snapshot
}

// Resume restores a sprite the backend still holds open
func (e *EquipmentEditor) Resume(ctx context.Context) domain.Snapshot[*domain.EquipmentSprite] {
	return e.sprite.Restore(ctx, func(ctx context.Context) (*domain.EquipmentSprite, bool, error) {
		response, err := bridge.CallOptional[domain.EquipmentResponse](ctx, e.bridge, domain.CommandGetEquipmentSprite, nil)
		if err != nil || response == nil {
			return nil, false, err
		}

		sprite, err := e.hydrate(ctx, *response)
		return sprite, err == nil, err
	})
}

// Close asks the backend to release the sprite
func (e *EquipmentEditor) Close(ctx context.Context) domain.Snapshot[*domain.EquipmentSprite] {
	return e.sprite.Close(ctx, func(ctx context.Context) error {
		return bridge.Exec(ctx, e.bridge, domain.CommandCloseEquipmentSprite, nil)
	})
}

// Shutdown closes the sprite if one is held and reports a teardown failure
func (e *EquipmentEditor) Shutdown(ctx context.Context) error {
	if e.sprite.Snapshot().IsIdle() {
		return nil
	}
	return teardownError(e.Close(ctx).Err)
}

// SetGridVisibility shows or hides the grid overlay
func (e *EquipmentEditor) SetGridVisibility(visible bool) domain.Snapshot[domain.GridSettings] {
	return e.grid.Update(func(current domain.GridSettings) domain.GridSettings {
		current.Visible = visible
		return current
	})
}

// ToggleGrid flips the grid overlay visibility
func (e *EquipmentEditor) ToggleGrid() domain.Snapshot[domain.GridSettings] {
	return e.grid.Update(func(current domain.GridSettings) domain.GridSettings {
		current.Visible = !current.Visible
		return current
	})
}

// SetGridSize changes the grid cell size, clamped to the supported range
func (e *EquipmentEditor) SetGridSize(size int) domain.Snapshot[domain.GridSettings] {
	return e.grid.Update(func(current domain.GridSettings) domain.GridSettings {
		current.Size = domain.ClampGridSize(float64(size))
		return current
	})
}

// hydrate fetches and decodes the sprite image named by response
func (e *EquipmentEditor) hydrate(ctx context.Context, response domain.EquipmentResponse) (*domain.EquipmentSprite, error) {
	url := e.blobs.ConvertFileSrc(response.Name, blob.StreamProtocol)

	data, err := e.blobs.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sprite: %w", err)
	}

	img, mimeType, err := e.decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sprite: %w", err)
	}

	logging.Logger.Debug("Equipment sprite decoded",
		"name", response.Name,
		"mime", mimeType,
		"descriptors", len(response.Descriptors),
		"bounds", img.Bounds().String())

	return &domain.EquipmentSprite{
		Blob:          data,
		Descriptors:   response.Descriptors,
		Image:         img,
		MimeType:      mimeType,
		Name:          response.Name,
		Path:          response.Path,
		SystemLtxPath: response.SystemLtxPath,
	}, nil
}
