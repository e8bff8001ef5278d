package domain

import (
	"sort"
	"strings"
	"time"
)

// RecentResource records a resource that was successfully opened by an editor
type RecentResource struct {
	Editor   EditorKind
	ID       string
	Label    string
	Locators map[string]string
	OpenedAt time.Time
}

// Key identifies the resource independently of when it was opened.
// Two records with the same editor and locators share a key.
func (r RecentResource) Key() string {
	keys := make([]string, 0, len(r.Locators))
	for k := range r.Locators {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys)+1)
	parts = append(parts, string(r.Editor))
	for _, k := range keys {
		parts = append(parts, k+"="+r.Locators[k])
	}
	return strings.Join(parts, "|")
}
