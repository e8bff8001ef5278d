package localbackend

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xray-forge/xrf-shell/internal/domain"
)

// maxIncludeDepth guards against include cycles
const maxIncludeDepth = 16

// Inventory grid keys of an item section
const (
	keyGridHeight = "inv_grid_height"
	keyGridWidth  = "inv_grid_width"
	keyGridX      = "inv_grid_x"
	keyGridY      = "inv_grid_y"
)

type ltxSection struct {
	fields  map[string]string
	file    string
	line    int
	parents []string
}

// ltxFile is a parsed LTX config with its includes merged in
type ltxFile struct {
	sections map[string]*ltxSection
}

// readLtx parses path and every file it includes
func readLtx(path string) (*ltxFile, error) {
	file := &ltxFile{sections: make(map[string]*ltxSection)}
	if err := file.parse(path, 0); err != nil {
		return nil, err
	}
	return file, nil
}

func (f *ltxFile) parse(path string, depth int) error {
	if depth > maxIncludeDepth {
		return fmt.Errorf("ltx includes nested deeper than %d at %s", maxIncludeDepth, path)
	}

	handle, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to read ltx: %w", err)
	}
	defer handle.Close()

	var current *ltxSection
	scanner := bufio.NewScanner(handle)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := strings.TrimSpace(stripComment(scanner.Text()))
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "#include"):
			include := strings.Trim(strings.TrimSpace(strings.TrimPrefix(line, "#include")), `"`)
			if err := f.parse(filepath.Join(filepath.Dir(path), include), depth+1); err != nil {
				return err
			}

		case strings.HasPrefix(line, "["):
			end := strings.Index(line, "]")
			if end < 0 {
				return fmt.Errorf("%s:%d: unterminated section header", path, lineNo)
			}
			name := strings.ToLower(strings.TrimSpace(line[1:end]))
			current = &ltxSection{fields: make(map[string]string), file: path, line: lineNo}
			if rest := strings.TrimSpace(line[end+1:]); strings.HasPrefix(rest, ":") {
				for _, parent := range strings.Split(rest[1:], ",") {
					if parent = strings.ToLower(strings.TrimSpace(parent)); parent != "" {
						current.parents = append(current.parents, parent)
					}
				}
			}
			f.sections[name] = current

		case current != nil:
			key, value, _ := strings.Cut(line, "=")
			current.fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read ltx %s: %w", path, err)
	}
	return nil
}

// lookup resolves key in section, falling back to its parents in order
func (f *ltxFile) lookup(section, key string, seen map[string]bool) (string, bool) {
	if seen[section] {
		return "", false
	}
	seen[section] = true

	s, ok := f.sections[section]
	if !ok {
		return "", false
	}
	if value, ok := s.fields[key]; ok {
		return value, true
	}
	for _, parent := range s.parents {
		if value, ok := f.lookup(parent, key, seen); ok {
			return value, true
		}
	}
	return "", false
}

func (f *ltxFile) intField(section, key string, fallback int) (int, bool) {
	raw, ok := f.lookup(section, key, map[string]bool{})
	if !ok {
		return fallback, false
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, false
	}
	return value, true
}

// readInventoryDescriptors returns the icon placement of every section of the
// config that declares an inventory grid position, ordered by section name.
func readInventoryDescriptors(systemLtxPath string) ([]domain.InventorySpriteDescriptor, error) {
	file, err := readLtx(systemLtxPath)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(file.sections))
	for name := range file.sections {
		names = append(names, name)
	}
	sort.Strings(names)

	descriptors := []domain.InventorySpriteDescriptor{}
	for _, name := range names {
		x, okX := file.intField(name, keyGridX, 0)
		y, okY := file.intField(name, keyGridY, 0)
		if !okX || !okY {
			continue
		}
		w, _ := file.intField(name, keyGridWidth, 1)
		h, _ := file.intField(name, keyGridHeight, 1)

		descriptors = append(descriptors, domain.InventorySpriteDescriptor{
			H:       h,
			Section: name,
			W:       w,
			X:       x,
			Y:       y,
		})
	}
	return descriptors, nil
}

// stripComment cuts line at the first ';' outside double quotes
func stripComment(line string) string {
	quoted := false
	for i, r := range line {
		switch r {
		case '"':
			quoted = !quoted
		case ';':
			if !quoted {
				return line[:i]
			}
		}
	}
	return line
}
