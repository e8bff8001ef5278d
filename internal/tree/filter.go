package tree

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter returns a copy of the tree keeping only leaves whose id matches the
// glob pattern, plus the folders leading to them. Ids are matched with the
// delimiter normalized to "/" so patterns look the same for every tree.
// An empty pattern keeps everything.
func Filter[T any](root *Node[T], pattern, delimiter string) (*Node[T], error) {
	if root == nil {
		return nil, nil
	}
	if pattern != "" && !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid filter pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	filtered := &Node[T]{Children: []*Node[T]{}, folder: true}
	filtered.Children = filterChildren(root.Children, pattern, delimiter)
	return filtered, nil
}

func filterChildren[T any](nodes []*Node[T], pattern, delimiter string) []*Node[T] {
	kept := []*Node[T]{}
	for _, node := range nodes {
		if node.IsFolder() {
			children := filterChildren(node.Children, pattern, delimiter)
			if len(children) == 0 {
				continue
			}
			kept = append(kept, &Node[T]{
				Children: children,
				ID:       node.ID,
				Label:    node.Label,
				folder:   true,
			})
			continue
		}

		if matches(node.ID, pattern, delimiter) {
			leaf := *node
			kept = append(kept, &leaf)
		}
	}
	return kept
}

func matches(id, pattern, delimiter string) bool {
	if pattern == "" {
		return true
	}
	if delimiter != "" && delimiter != "/" {
		id = strings.ReplaceAll(id, delimiter, "/")
	}
	// Pattern was validated upfront, so MatchUnvalidated cannot fail here
	return doublestar.MatchUnvalidated(pattern, id)
}
