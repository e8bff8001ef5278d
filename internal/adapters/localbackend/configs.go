package localbackend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"

	"github.com/xray-forge/xrf-shell/internal/domain"
)

const ltxExtension = ".ltx"

// verifyConfigs parses every LTX file under root and reports the files that
// fail to parse and the sections inheriting from a section no file declares.
func verifyConfigs(ctx context.Context, root string) (*domain.ConfigsReport, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to verify configs: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to verify configs: %s is not a directory", root)
	}

	files, err := listLtxFiles(ctx, root)
	if err != nil {
		return nil, err
	}

	report := &domain.ConfigsReport{
		Files:     len(files),
		Issues:    []domain.ConfigIssue{},
		Operation: domain.ConfigsOpVerify,
		Path:      root,
	}

	// Includes are parsed again by every including file
	declared := make(map[string]bool)
	var sections []*ltxSection
	var names []string
	seen := make(map[domain.ConfigIssue]bool)
	addIssue := func(issue domain.ConfigIssue) {
		if !seen[issue] {
			seen[issue] = true
			report.Issues = append(report.Issues, issue)
		}
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		parsed, err := readLtx(path)
		if err != nil {
			addIssue(domain.ConfigIssue{File: relativeTo(root, path), Message: err.Error()})
			continue
		}
		for name, section := range parsed.sections {
			declared[name] = true
			sections = append(sections, section)
			names = append(names, name)
		}
	}

	for i, section := range sections {
		for _, parent := range section.parents {
			if declared[parent] {
				continue
			}
			addIssue(domain.ConfigIssue{
				File:    relativeTo(root, section.file),
				Line:    section.line,
				Message: fmt.Sprintf("unresolved parent section %q", parent),
				Section: names[i],
			})
		}
	}

	report.Sections = len(declared)
	sort.Slice(report.Issues, func(i, j int) bool {
		a, b := report.Issues[i], report.Issues[j]
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Message < b.Message
	})
	return report, nil
}

// listLtxFiles returns the LTX files under root in path order
func listLtxFiles(ctx context.Context, root string) ([]string, error) {
	var (
		files []string
		mu    sync.Mutex
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ltxExtension) {
			return nil
		}

		mu.Lock()
		files = append(files, path)
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk configs: %w", err)
	}

	sort.Strings(files)
	return files, nil
}

func relativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
