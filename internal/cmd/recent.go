package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/xray-forge/xrf-shell/internal/adapters/storage"
	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/services"
)

// RecentCmd manages the history of opened resources
type RecentCmd struct {
	List   RecentListCmd   `cmd:"list" help:"List recently opened resources" default:"1"`
	Forget RecentForgetCmd `cmd:"forget" help:"Remove a resource from the history"`
}

// RecentListCmd lists recently opened resources
type RecentListCmd struct {
	Editor string `help:"Only list resources of this editor (archives, configs, equipment, exports or spawn)"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Limit  int    `help:"Maximum number of resources to list (0 for all)" default:"0"`
}

// RecentForgetCmd removes one history record
type RecentForgetCmd struct {
	ID string `arg:"" help:"Record id as printed by 'xrf recent list'"`
}

// withRecent runs fn with a RecentService over the history database. The
// history does not need a backend, so the full container is not built.
func withRecent(cli *CLI, fn func(*services.RecentService) error) error {
	repo, err := storage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer repo.Close()

	return fn(services.NewRecentService(repo, repo, cli.recentLimit()))
}

// Run executes the list command
func (r *RecentListCmd) Run(cli *CLI, ctx context.Context) error {
	if r.Editor != "" && domain.GetEditorByKind(domain.EditorKind(r.Editor)) == nil {
		return fmt.Errorf("unknown editor '%s'", r.Editor)
	}

	return withRecent(cli, func(recent *services.RecentService) error {
		resources, err := recent.List(ctx, domain.EditorKind(r.Editor), r.Limit)
		if err != nil {
			return err
		}

		if r.Format == "json" {
			data, err := json.MarshalIndent(resources, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if len(resources) == 0 {
			fmt.Println("No recent resources.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tEditor\tLabel\tOpened\tLocators")
		for _, resource := range resources {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				resource.ID,
				resource.Editor,
				resource.Label,
				humanize.Time(resource.OpenedAt),
				formatLocators(resource.Locators))
		}
		return w.Flush()
	})
}

// Run executes the forget command
func (r *RecentForgetCmd) Run(cli *CLI, ctx context.Context) error {
	return withRecent(cli, func(recent *services.RecentService) error {
		if err := recent.Forget(ctx, r.ID); err != nil {
			return err
		}
		fmt.Printf("Forgot '%s'\n", r.ID)
		return nil
	})
}

// formatLocators renders locators as sorted key=value pairs
func formatLocators(locators map[string]string) string {
	keys := make([]string, 0, len(locators))
	for k := range locators {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+locators[k])
	}
	return strings.Join(parts, " ")
}
