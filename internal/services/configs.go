package services

import (
	"context"
	"path/filepath"

	"github.com/xray-forge/xrf-shell/internal/adapters/bridge"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/ports"
	"github.com/xray-forge/xrf-shell/internal/session"
)

// ConfigsEditor verifies and formats folders of LTX configs through the
// backend. The backend holds nothing open between runs; the report of the
// last run is the session value.
type ConfigsEditor struct {
	bridge ports.Bridge
	report *session.Session[*domain.ConfigsReport]
	recent *RecentService
}

// NewConfigsEditor creates a new ConfigsEditor
func NewConfigsEditor(b ports.Bridge, observer ports.SessionObserver, recent *RecentService) *ConfigsEditor {
	return &ConfigsEditor{
		bridge: b,
		report: session.New[*domain.ConfigsReport](string(domain.EditorConfigs), observer),
		recent: recent,
	}
}

// Kind returns the editor kind
func (e *ConfigsEditor) Kind() domain.EditorKind {
	return domain.EditorConfigs
}

// Report returns the session holding the last run report
func (e *ConfigsEditor) Report() *session.Session[*domain.ConfigsReport] {
	return e.report
}

// Verify checks every config under path
func (e *ConfigsEditor) Verify(ctx context.Context, path string) domain.Snapshot[*domain.ConfigsReport] {
	return e.run(ctx, domain.CommandVerifyConfigsPath, domain.ConfigsOpVerify, path)
}

// Format rewrites every config under path in the canonical layout
func (e *ConfigsEditor) Format(ctx context.Context, path string) domain.Snapshot[*domain.ConfigsReport] {
	return e.run(ctx, domain.CommandFormatConfigsPath, domain.ConfigsOpFormat, path)
}

// run invokes command over path. A backend answering null did the work
// without details, which is reported as an empty report.
func (e *ConfigsEditor) run(ctx context.Context, command, operation, path string) domain.Snapshot[*domain.ConfigsReport] {
	var loaded *domain.ConfigsReport
	snapshot := e.report.Open(ctx, func(ctx context.Context) (*domain.ConfigsReport, error) {
		report, err := bridge.CallOptional[domain.ConfigsReport](ctx, e.bridge, command, ports.Args{
			"path": path,
		})
		if err != nil {
			return nil, err
		}
		if report == nil {
			report = &domain.ConfigsReport{Operation: operation, Path: path}
		}
		if report.Issues == nil {
			report.Issues = []domain.ConfigIssue{}
		}

		loaded = report
		return report, nil
	})

	recordOpened(ctx, e.recent, snapshot, loaded, domain.EditorConfigs, filepath.Base(path), map[string]string{"path": path})
	return snapshot
}

// Close drops the report. Nothing is held by the backend.
func (e *ConfigsEditor) Close(ctx context.Context) domain.Snapshot[*domain.ConfigsReport] {
	return e.report.Close(ctx, nil)
}

// Shutdown drops the report; it never fails
func (e *ConfigsEditor) Shutdown(context.Context) error {
	e.report.Reset()
	return nil
}
