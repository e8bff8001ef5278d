package services

import (
	"context"
	"fmt"
	"time"

	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/logging"
	"github.com/xray-forge/xrf-shell/internal/ports"
)

// RecentService remembers resources successfully opened by the editors
type RecentService struct {
	keep   int
	reader ports.RecentReader
	writer ports.RecentWriter
}

// NewRecentService creates a new RecentService keeping at most keep records per editor
func NewRecentService(reader ports.RecentReader, writer ports.RecentWriter, keep int) *RecentService {
	return &RecentService{
		keep:   keep,
		reader: reader,
		writer: writer,
	}
}

// Record stores an opened resource. Failures are logged and never returned:
// a broken history must not fail an open that already succeeded.
func (s *RecentService) Record(ctx context.Context, editor domain.EditorKind, label string, locators map[string]string) {
	if s == nil {
		return
	}

	resource := domain.RecentResource{
		Editor:   editor,
		Label:    label,
		Locators: locators,
		OpenedAt: time.Now().UTC(),
	}

	if err := s.writer.Record(ctx, resource); err != nil {
		logging.Logger.Warn("Failed to record recent resource",
			"editor", editor,
			"label", label,
			"error", err)
		return
	}

	if s.keep > 0 {
		if err := s.writer.Prune(ctx, editor, s.keep); err != nil {
			logging.Logger.Warn("Failed to prune recent resources", "editor", editor, "error", err)
		}
	}
}

// List returns recent resources newest first. An empty editor lists all editors.
func (s *RecentService) List(ctx context.Context, editor domain.EditorKind, limit int) ([]domain.RecentResource, error) {
	resources, err := s.reader.List(ctx, editor, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent resources: %w", err)
	}
	return resources, nil
}

// Latest returns the most recently opened resource of editor, or nil
func (s *RecentService) Latest(ctx context.Context, editor domain.EditorKind) (*domain.RecentResource, error) {
	resource, err := s.reader.Latest(ctx, editor)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest %s resource: %w", editor, err)
	}
	return resource, nil
}

// Forget removes one record
func (s *RecentService) Forget(ctx context.Context, id string) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to forget recent resource: %w", err)
	}
	logging.Logger.Info("Recent resource forgotten", "id", id)
	return nil
}
