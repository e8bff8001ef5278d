package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/xray-forge/xrf-shell/internal/theme"
	"github.com/xray-forge/xrf-shell/internal/tree"
)

// TreeView renders a path tree as a scrollable list of expandable folders.
// Folders start collapsed. Expansion state survives SetRoot by node id.
type TreeView[T any] struct {
	cursor   int
	expanded map[string]bool
	height   int
	keys     *KeyMap
	offset   int
	root     *tree.Node[T]
	rows     []tree.Row[T]
}

// NewTreeView creates an empty tree view
func NewTreeView[T any](keys *KeyMap) *TreeView[T] {
	return &TreeView[T]{
		expanded: make(map[string]bool),
		height:   10,
		keys:     keys,
	}
}

// SetRoot replaces the displayed tree, keeping the cursor within bounds
func (v *TreeView[T]) SetRoot(root *tree.Node[T]) {
	v.root = root
	v.refresh()
}

// SetHeight sets how many rows are visible at once
func (v *TreeView[T]) SetHeight(height int) {
	v.height = max(height, 1)
	v.scroll()
}

// ExpandAll expands every folder of the current tree
func (v *TreeView[T]) ExpandAll() {
	tree.Walk(v.root, func(node *tree.Node[T], _ int) bool {
		if node.IsFolder() {
			v.expanded[node.ID] = true
		}
		return true
	})
	v.refresh()
}

// Rows returns the visible rows
func (v *TreeView[T]) Rows() []tree.Row[T] {
	return v.rows
}

// Selected returns the node under the cursor, or nil for an empty tree
func (v *TreeView[T]) Selected() *tree.Node[T] {
	if v.cursor < 0 || v.cursor >= len(v.rows) {
		return nil
	}
	return v.rows[v.cursor].Node
}

// Update handles navigation keys and reports whether msg was consumed
func (v *TreeView[T]) Update(msg tea.Msg) bool {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false
	}

	switch {
	case key.Matches(keyMsg, v.keys.Navigation.Up.Binding):
		v.move(-1)
	case key.Matches(keyMsg, v.keys.Navigation.Down.Binding):
		v.move(1)
	case key.Matches(keyMsg, v.keys.Navigation.Expand.Binding):
		v.setExpanded(true)
	case key.Matches(keyMsg, v.keys.Navigation.Collapse.Binding):
		v.setExpanded(false)
	case key.Matches(keyMsg, v.keys.Navigation.Select.Binding):
		if node := v.Selected(); node != nil && node.IsFolder() {
			v.expanded[node.ID] = !v.expanded[node.ID]
			v.refresh()
		}
	default:
		return false
	}
	return true
}

// View renders the visible window of rows
func (v *TreeView[T]) View(width int) string {
	if len(v.rows) == 0 {
		return theme.MutedStyle.Render("(empty)")
	}

	var b strings.Builder
	end := min(v.offset+v.height, len(v.rows))
	for i := v.offset; i < end; i++ {
		row := v.rows[i]
		line := strings.Repeat("  ", row.Depth) + v.icon(row.Node) + row.Node.Label
		if width > 0 && len([]rune(line)) > width {
			line = string([]rune(line)[:width])
		}

		style := theme.TreeLeafStyle
		if row.Node.IsFolder() {
			style = theme.TreeFolderStyle
		}
		if i == v.cursor {
			style = theme.TreeSelectedStyle
		}
		b.WriteString(style.Render(line))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (v *TreeView[T]) icon(node *tree.Node[T]) string {
	if !node.IsFolder() {
		return "  "
	}
	if v.expanded[node.ID] {
		return "▾ "
	}
	return "▸ "
}

func (v *TreeView[T]) move(delta int) {
	if len(v.rows) == 0 {
		return
	}
	v.cursor = min(max(v.cursor+delta, 0), len(v.rows)-1)
	v.scroll()
}

func (v *TreeView[T]) setExpanded(expanded bool) {
	node := v.Selected()
	if node == nil {
		return
	}
	if node.IsFolder() && v.expanded[node.ID] != expanded {
		v.expanded[node.ID] = expanded
		v.refresh()
		return
	}
	// Collapsing a leaf or a collapsed folder jumps to its parent folder
	if !expanded {
		depth := v.rows[v.cursor].Depth
		for i := v.cursor - 1; i >= 0; i-- {
			if v.rows[i].Depth < depth {
				v.cursor = i
				v.scroll()
				return
			}
		}
	}
}

func (v *TreeView[T]) refresh() {
	v.rows = tree.Flatten(v.root, func(id string) bool { return v.expanded[id] })
	if v.cursor >= len(v.rows) {
		v.cursor = max(len(v.rows)-1, 0)
	}
	v.scroll()
}

func (v *TreeView[T]) scroll() {
	if v.cursor < v.offset {
		v.offset = v.cursor
	}
	if v.cursor >= v.offset+v.height {
		v.offset = v.cursor - v.height + 1
	}
	v.offset = max(min(v.offset, len(v.rows)-v.height), 0)
}
