package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/tree"
)

// TreeCmd prints the file tree of an archives project without the TUI
type TreeCmd struct {
	Path   string `arg:"" help:"Archives project directory"`
	Filter string `help:"Glob the file paths must match, e.g. 'gamedata/configs/**/*.ltx'" short:"f"`
}

// Run executes the tree command
func (t *TreeCmd) Run(cli *CLI, ctx context.Context) error {
	container, err := cli.Container(ctx)
	if err != nil {
		return err
	}

	snapshot := container.Shell.Archives.Open(ctx, config.ExpandPath(t.Path))
	if snapshot.Err != nil {
		return snapshot.Err
	}

	root, err := container.Shell.Archives.Tree(t.Filter)
	if err != nil {
		return err
	}

	printArchiveTree(os.Stdout, root)

	realSize, compressedSize := snapshot.Value.TotalSize()
	fmt.Printf("\n%d archives, %d of %d files shown, %s (%s packed)\n",
		len(snapshot.Value.Archives),
		tree.CountLeaves(root),
		len(snapshot.Value.Files),
		humanize.IBytes(realSize),
		humanize.IBytes(compressedSize))
	return nil
}

// printArchiveTree writes one line per node, indented by depth, with leaf sizes
func printArchiveTree(w io.Writer, root *tree.Node[domain.ArchiveFileDescriptor]) {
	tree.Walk(root, func(node *tree.Node[domain.ArchiveFileDescriptor], depth int) bool {
		indent := strings.Repeat("  ", depth)
		if node.IsFolder() {
			fmt.Fprintf(w, "%s%s/\n", indent, node.Label)
			return true
		}
		fmt.Fprintf(w, "%s%s  %s\n", indent, node.Label, humanize.IBytes(uint64(node.Payload.SizeReal)))
		return true
	})
}
