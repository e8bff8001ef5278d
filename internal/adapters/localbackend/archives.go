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

// archiveExtensions are the packed archive formats listed in a project
var archiveExtensions = []string{".db", ".xdb"}

// readArchivesProject lists every file under root as an unpacked archive entry.
// Names are relative to root and use the archive path delimiter.
func readArchivesProject(ctx context.Context, root string) (*domain.ArchiveProject, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open archives project: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("failed to open archives project: %s is not a directory", root)
	}

	project := &domain.ArchiveProject{
		Archives: []string{},
		Files:    make(map[string]domain.ArchiveFileDescriptor),
		Path:     root,
	}

	// fastwalk calls the callback from several goroutines
	var mu sync.Mutex

	conf := fastwalk.Config{Follow: false}
	err = fastwalk.Walk(&conf, root, func(path string, d os.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil || d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil || !info.Mode().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}

		if isArchive(rel) {
			mu.Lock()
			project.Archives = append(project.Archives, filepath.ToSlash(rel))
			mu.Unlock()
			return nil
		}

		name := strings.ReplaceAll(filepath.ToSlash(rel), "/", domain.ArchivePathDelimiter)
		size := uint32(min(info.Size(), int64(^uint32(0))))

		mu.Lock()
		project.Files[name] = domain.ArchiveFileDescriptor{
			Destination:    path,
			Name:           name,
			SizeCompressed: size,
			SizeReal:       size,
			Source:         root,
		}
		mu.Unlock()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk archives project: %w", err)
	}

	sort.Strings(project.Archives)
	return project, nil
}

// isArchive reports whether a top-level file is a packed archive such as resources.db0
func isArchive(rel string) bool {
	if strings.ContainsRune(rel, filepath.Separator) {
		return false
	}
	ext := strings.ToLower(filepath.Ext(rel))
	for _, prefix := range archiveExtensions {
		if strings.HasPrefix(ext, prefix) {
			return true
		}
	}
	return false
}
