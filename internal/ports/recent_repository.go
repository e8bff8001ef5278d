package ports

import (
	"context"

	"github.com/xray-forge/xrf-shell/internal/domain"
)

// RecentReader reads recently opened resources
type RecentReader interface {
	List(ctx context.Context, editor domain.EditorKind, limit int) ([]domain.RecentResource, error)
	Latest(ctx context.Context, editor domain.EditorKind) (*domain.RecentResource, error)
}

// RecentWriter records and prunes recently opened resources
type RecentWriter interface {
	Delete(ctx context.Context, id string) error
	Prune(ctx context.Context, editor domain.EditorKind, keep int) error
	Record(ctx context.Context, resource domain.RecentResource) error
}

// RecentRepository is the composite interface
type RecentRepository interface {
	RecentReader
	RecentWriter
	Close() error
}
