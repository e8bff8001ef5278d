package services

import (
	"context"
	"errors"

	"github.com/xray-forge/xrf-shell/internal/domain"
)

// recordOpened stores an opened resource in the history once the open that
// loaded value has settled Ready with it. An open superseded by a newer
// operation is not recorded: its value never reached the session.
func recordOpened[T comparable](
	ctx context.Context,
	recent *RecentService,
	snapshot domain.Snapshot[T],
	loaded T,
	editor domain.EditorKind,
	label string,
	locators map[string]string,
) {
	var zero T
	if loaded == zero || !snapshot.IsReady() || snapshot.Value != loaded {
		return
	}
	recent.Record(ctx, editor, label, locators)
}

// teardownError keeps err only when it is a teardown failure. A superseded
// close returns the current snapshot, whose error may belong to another operation.
func teardownError(err error) error {
	if errors.Is(err, domain.ErrTeardown) {
		return err
	}
	return nil
}
