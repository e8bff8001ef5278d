package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/domain"
)

// ConfigsCmd verifies or formats a folder of LTX configs
type ConfigsCmd struct {
	Verify ConfigsVerifyCmd `cmd:"verify" help:"Report configs that fail to parse or inherit from unknown sections"`
	Format ConfigsFormatCmd `cmd:"format" help:"Rewrite configs in the canonical layout (external backend only)"`
}

// ConfigsVerifyCmd verifies every config under a folder
type ConfigsVerifyCmd struct {
	Path string `arg:"" help:"Configs directory" type:"path"`
}

// ConfigsFormatCmd formats every config under a folder
type ConfigsFormatCmd struct {
	Path string `arg:"" help:"Configs directory" type:"path"`
}

// Run executes the verify command
func (v *ConfigsVerifyCmd) Run(cli *CLI, ctx context.Context) error {
	container, err := cli.Container(ctx)
	if err != nil {
		return err
	}

	snapshot := container.Shell.Configs.Verify(ctx, config.ExpandPath(v.Path))
	if snapshot.Err != nil {
		return snapshot.Err
	}
	return reportConfigs(os.Stdout, snapshot.Value)
}

// Run executes the format command
func (f *ConfigsFormatCmd) Run(cli *CLI, ctx context.Context) error {
	container, err := cli.Container(ctx)
	if err != nil {
		return err
	}

	snapshot := container.Shell.Configs.Format(ctx, config.ExpandPath(f.Path))
	if snapshot.Err != nil {
		return snapshot.Err
	}
	return reportConfigs(os.Stdout, snapshot.Value)
}

// reportConfigs prints the issues of report and fails when there are any
func reportConfigs(w io.Writer, report *domain.ConfigsReport) error {
	if !report.Valid() {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "Location\tSection\tIssue")
		for _, issue := range report.Issues {
			location := issue.File
			if issue.Line > 0 {
				location = fmt.Sprintf("%s:%d", issue.File, issue.Line)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", location, issue.Section, issue.Message)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s %s: %d files, %d sections, %d issues\n",
		report.Operation, report.Path, report.Files, report.Sections, len(report.Issues))
	if !report.Valid() {
		return fmt.Errorf("%d config issues found", len(report.Issues))
	}
	return nil
}
