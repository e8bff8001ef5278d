package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/services"
	"github.com/xray-forge/xrf-shell/internal/tree"
)

// ExportsCmd lists the declarations of the script exports files
type ExportsCmd struct {
	Conditions string `arg:"" help:"Conditions declarations file"`
	Dialogs    string `arg:"" help:"Dialogs declarations file"`
	Effects    string `arg:"" help:"Effects declarations file"`
	Filter     string `help:"Glob the declaration paths must match, e.g. 'effects/**'" short:"f"`
}

// Run executes the exports command
func (e *ExportsCmd) Run(cli *CLI, ctx context.Context) error {
	container, err := cli.Container(ctx)
	if err != nil {
		return err
	}

	editor := container.Shell.Exports
	snapshot := editor.Open(ctx,
		config.ExpandPath(e.Conditions),
		config.ExpandPath(e.Dialogs),
		config.ExpandPath(e.Effects))
	if snapshot.Err != nil {
		return snapshot.Err
	}

	root, err := editor.Tree(e.Filter)
	if err != nil {
		return err
	}

	var entries []services.ExportEntry
	tree.Walk(root, func(node *tree.Node[services.ExportEntry], _ int) bool {
		if node.Payload != nil {
			entries = append(entries, *node.Payload)
		}
		return true
	})

	printExports(os.Stdout, entries)
	fmt.Printf("\n%d of %d declarations shown\n", len(entries), snapshot.Value.Count())
	return nil
}

func printExports(w io.Writer, entries []services.ExportEntry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Kind\tName\tParameters\tLocation")
	for _, entry := range entries {
		d := entry.Descriptor
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s:%d:%d\n", entry.Kind, d.Name, len(d.Parameters), d.Filepath, d.Line, d.Col)
	}
	tw.Flush()
}
