// Package tree reconstructs folder/file hierarchies from flat path descriptors.
package tree

import "strings"

// Node is a folder or a leaf of a path tree.
// ID is the cumulative path up to the node joined by the builder delimiter.
type Node[T any] struct {
	Children []*Node[T]
	ID       string
	Label    string
	Payload  *T // set on leaves only
	folder   bool
}

// IsFolder reports whether the node was synthesized from a path prefix
func (n *Node[T]) IsFolder() bool {
	return n.folder
}

// Build converts descriptors into a tree rooted at an unnamed folder.
//
// Paths are split on delimiter with empty segments dropped. Folders are reused
// by exact cumulative path and appended to their parent in first-seen order;
// children are never re-sorted. The last segment of each path becomes a leaf
// carrying a copy of its descriptor. An empty path yields a root-level leaf
// with an empty label. Duplicate paths produce duplicate leaves.
func Build[T any](items []T, pathOf func(T) string, delimiter string) *Node[T] {
	root := &Node[T]{Children: []*Node[T]{}, folder: true}
	folders := make(map[string]*Node[T])

	for _, item := range items {
		segments := splitPath(pathOf(item), delimiter)

		parent := root
		for depth := 0; depth < len(segments)-1; depth++ {
			id := strings.Join(segments[:depth+1], delimiter)
			folder, ok := folders[id]
			if !ok {
				folder = &Node[T]{
					Children: []*Node[T]{},
					ID:       id,
					Label:    segments[depth],
					folder:   true,
				}
				folders[id] = folder
				parent.Children = append(parent.Children, folder)
			}
			parent = folder
		}

		payload := item
		leaf := &Node[T]{
			ID:      strings.Join(segments, delimiter),
			Payload: &payload,
		}
		if len(segments) > 0 {
			leaf.Label = segments[len(segments)-1]
		}
		parent.Children = append(parent.Children, leaf)
	}

	return root
}

// splitPath splits path into non-empty segments
func splitPath(path, delimiter string) []string {
	if path == "" {
		return nil
	}
	if delimiter == "" {
		return []string{path}
	}

	parts := strings.Split(path, delimiter)
	segments := parts[:0]
	for _, part := range parts {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// Find resolves a node by id (depth-first, first match wins).
func Find[T any](root *Node[T], id string) *Node[T] {
	if root == nil {
		return nil
	}
	for _, child := range root.Children {
		if child.ID == id {
			return child
		}
		if found := Find(child, id); found != nil {
			return found
		}
	}
	return nil
}

// Walk visits every node below root in depth-first pre-order.
// Returning false from fn skips the children of the visited node.
func Walk[T any](root *Node[T], fn func(node *Node[T], depth int) bool) {
	if root == nil {
		return
	}
	walk(root.Children, 0, fn)
}

func walk[T any](nodes []*Node[T], depth int, fn func(node *Node[T], depth int) bool) {
	for _, node := range nodes {
		if fn(node, depth) && len(node.Children) > 0 {
			walk(node.Children, depth+1, fn)
		}
	}
}

// CountLeaves counts leaf nodes below root
func CountLeaves[T any](root *Node[T]) int {
	count := 0
	Walk(root, func(node *Node[T], _ int) bool {
		if !node.IsFolder() {
			count++
		}
		return true
	})
	return count
}

// Row is one visible line of a flattened tree
type Row[T any] struct {
	Depth int
	Node  *Node[T]
}

// Flatten lists the visible rows of the tree. Children of a folder are listed
// only when expanded returns true for its id; a nil expanded shows everything.
func Flatten[T any](root *Node[T], expanded func(id string) bool) []Row[T] {
	var rows []Row[T]
	Walk(root, func(node *Node[T], depth int) bool {
		rows = append(rows, Row[T]{Depth: depth, Node: node})
		return node.IsFolder() && (expanded == nil || expanded(node.ID))
	})
	return rows
}
