package domain

import "sort"

// ArchivePathDelimiter separates segments of file names inside archives
const ArchivePathDelimiter = "\\"

// ArchiveFileDescriptor describes one file replicated out of a game archive
type ArchiveFileDescriptor struct {
	CRC            uint32 `json:"crc"`
	Destination    string `json:"destination"`
	Name           string `json:"name"`
	Offset         uint32 `json:"offset"`
	SizeCompressed uint32 `json:"sizeCompressed"`
	SizeReal       uint32 `json:"sizeReal"`
	Source         string `json:"source"`
}

// IsCompressed reports whether the file is stored compressed in the archive
func (d ArchiveFileDescriptor) IsCompressed() bool {
	return d.SizeCompressed != d.SizeReal
}

// ArchiveProject is the set of archives opened together by the backend
type ArchiveProject struct {
	Archives []string                         `json:"archives"`
	Files    map[string]ArchiveFileDescriptor `json:"files"`
	Path     string                           `json:"path"`
}

// SortedFiles returns project files ordered by name.
// Files are keyed by name, so the order is stable across calls.
func (p *ArchiveProject) SortedFiles() []ArchiveFileDescriptor {
	if p == nil {
		return nil
	}

	names := make([]string, 0, len(p.Files))
	for name := range p.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	files := make([]ArchiveFileDescriptor, 0, len(names))
	for _, name := range names {
		files = append(files, p.Files[name])
	}
	return files
}

// TotalSize returns the summed real and compressed sizes of all files
func (p *ArchiveProject) TotalSize() (realSize, compressedSize uint64) {
	if p == nil {
		return 0, 0
	}
	for _, file := range p.Files {
		realSize += uint64(file.SizeReal)
		compressedSize += uint64(file.SizeCompressed)
	}
	return realSize, compressedSize
}
