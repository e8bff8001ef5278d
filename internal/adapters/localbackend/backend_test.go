package localbackend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xray-forge/xrf-shell/internal/adapters/bridge"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/ports"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestOpenArchivesProject(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "resources.db0"), "packed")
	writeFile(t, filepath.Join(root, "config", "system.ltx"), "[a]")
	writeFile(t, filepath.Join(root, "config", "weapons", "w_ak74.ltx"), "[wpn_ak74]\n")
	writeFile(t, filepath.Join(root, "readme.txt"), "hi")

	router, _ := NewRouter()
	ctx := context.Background()

	project, err := bridge.Call[*domain.ArchiveProject](ctx, router, domain.CommandOpenArchivesProject, ports.Args{"path": root})
	require.NoError(t, err)
	require.NotNil(t, project)

	assert.Equal(t, root, project.Path)
	assert.Equal(t, []string{"resources.db0"}, project.Archives)
	require.Len(t, project.Files, 3)

	file, ok := project.Files["config\\weapons\\w_ak74.ltx"]
	require.True(t, ok)
	assert.Equal(t, uint32(len("[wpn_ak74]\n")), file.SizeReal)
	assert.False(t, file.IsCompressed())

	held, err := bridge.Call[*domain.ArchiveProject](ctx, router, domain.CommandGetArchivesProject, nil)
	require.NoError(t, err)
	assert.Equal(t, project, held)

	require.NoError(t, bridge.Exec(ctx, router, domain.CommandCloseArchivesProject, nil))

	data, err := router.Invoke(ctx, domain.CommandGetArchivesProject, nil)
	require.NoError(t, err)
	assert.True(t, bridge.IsNull(data))
}

func TestOpenArchivesProject_Errors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file.txt")
	writeFile(t, file, "x")

	tests := []struct {
		name string
		args ports.Args
	}{
		{name: "missing argument", args: ports.Args{}},
		{name: "missing directory", args: ports.Args{"path": filepath.Join(t.TempDir(), "nope")}},
		{name: "not a directory", args: ports.Args{"path": file}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := NewRouter()
			_, err := router.Invoke(context.Background(), domain.CommandOpenArchivesProject, tt.args)
			assert.Error(t, err)
		})
	}
}

func TestOpenEquipmentSprite(t *testing.T) {
	dir := t.TempDir()
	sprite := filepath.Join(dir, "textures", "ui", "ui_icon_equipment.png")
	writeFile(t, sprite, "not really a png")
	writeFile(t, filepath.Join(dir, "config", "system.ltx"), `
#include "weapons.ltx"
[medkit]
inv_grid_x = 6 ; first aid
inv_grid_y = 0
[no_icon]
cost = 10
`)
	writeFile(t, filepath.Join(dir, "config", "weapons.ltx"), `
[wpn_base]
inv_grid_width = 5
inv_grid_height = 2
[wpn_ak74]:wpn_base
inv_grid_x = 0
inv_grid_y = 2
`)

	router, backend := NewRouter()
	ctx := context.Background()

	response, err := bridge.CallOptional[domain.EquipmentResponse](ctx, router, domain.CommandOpenEquipmentSprite, ports.Args{
		"equipmentDdsPath": sprite,
		"systemLtxPath":    filepath.Join(dir, "config", "system.ltx"),
	})
	require.NoError(t, err)
	require.NotNil(t, response)

	assert.Equal(t, "ui_icon_equipment.png", response.Name)
	assert.Equal(t, []domain.InventorySpriteDescriptor{
		{Section: "medkit", X: 6, Y: 0, W: 1, H: 1},
		{Section: "wpn_ak74", X: 0, Y: 2, W: 5, H: 2},
	}, response.Descriptors)

	path, ok := backend.Stream("ui_icon_equipment.png")
	require.True(t, ok)
	assert.Equal(t, sprite, path)

	require.NoError(t, bridge.Exec(ctx, router, domain.CommandCloseEquipmentSprite, nil))
	_, ok = backend.Stream("ui_icon_equipment.png")
	assert.False(t, ok)
}

func TestOpenEquipmentSprite_IncludeCycle(t *testing.T) {
	dir := t.TempDir()
	sprite := filepath.Join(dir, "sprite.png")
	writeFile(t, sprite, "x")
	writeFile(t, filepath.Join(dir, "system.ltx"), "#include \"system.ltx\"\n")

	router, _ := NewRouter()
	_, err := router.Invoke(context.Background(), domain.CommandOpenEquipmentSprite, ports.Args{
		"equipmentDdsPath": sprite,
		"systemLtxPath":    filepath.Join(dir, "system.ltx"),
	})

	assert.ErrorContains(t, err, "nested deeper")
}

func TestVerifyConfigsPath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "base.ltx"), "[wpn_base]\ncost = 10\n")
	writeFile(t, filepath.Join(root, "weapons", "w_ak74.ltx"), "; rifle\n[wpn_ak74]:wpn_base,wpn_missing\n")
	writeFile(t, filepath.Join(root, "broken.ltx"), "[broken\n")
	writeFile(t, filepath.Join(root, "readme.txt"), "[not_a_config\n")

	router, _ := NewRouter()
	report, err := bridge.CallOptional[domain.ConfigsReport](context.Background(), router, domain.CommandVerifyConfigsPath, ports.Args{
		"path": root,
	})
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, domain.ConfigsOpVerify, report.Operation)
	assert.Equal(t, root, report.Path)
	assert.Equal(t, 3, report.Files)
	assert.Equal(t, 2, report.Sections)
	require.Len(t, report.Issues, 2)

	assert.Equal(t, "broken.ltx", report.Issues[0].File)
	assert.Contains(t, report.Issues[0].Message, "unterminated section header")

	assert.Equal(t, domain.ConfigIssue{
		File:    "weapons/w_ak74.ltx",
		Line:    2,
		Message: `unresolved parent section "wpn_missing"`,
		Section: "wpn_ak74",
	}, report.Issues[1])
}

func TestVerifyConfigsPath_ParentFromIncludeCountedOnce(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "system.ltx"), "#include \"items.ltx\"\n[actor]\n")
	writeFile(t, filepath.Join(root, "items.ltx"), "[medkit]:item_base\n")

	router, _ := NewRouter()
	report, err := bridge.CallOptional[domain.ConfigsReport](context.Background(), router, domain.CommandVerifyConfigsPath, ports.Args{
		"path": root,
	})
	require.NoError(t, err)

	require.Len(t, report.Issues, 1, "items.ltx is parsed directly and through the include")
	assert.Equal(t, "items.ltx", report.Issues[0].File)
	assert.Equal(t, 2, report.Sections)
}

func TestVerifyConfigsPath_Errors(t *testing.T) {
	file := filepath.Join(t.TempDir(), "system.ltx")
	writeFile(t, file, "[actor]\n")

	router, _ := NewRouter()
	ctx := context.Background()

	_, err := router.Invoke(ctx, domain.CommandVerifyConfigsPath, ports.Args{"path": file})
	assert.ErrorContains(t, err, "not a directory")

	_, err = router.Invoke(ctx, domain.CommandVerifyConfigsPath, nil)
	assert.ErrorContains(t, err, `missing "path" argument`)
}

func TestExternalOnlyCommands(t *testing.T) {
	router, _ := NewRouter()
	ctx := context.Background()

	_, err := router.Invoke(ctx, domain.CommandOpenSpawnFile, ports.Args{"path": "all.spawn"})
	assert.ErrorIs(t, err, ErrExternalBackend)

	_, err = router.Invoke(ctx, domain.CommandOpenXRExports, nil)
	assert.ErrorIs(t, err, ErrExternalBackend)

	_, err = router.Invoke(ctx, domain.CommandFormatConfigsPath, ports.Args{"path": "configs"})
	assert.ErrorIs(t, err, ErrExternalBackend)

	data, err := router.Invoke(ctx, domain.CommandGetSpawnFile, nil)
	require.NoError(t, err)
	assert.Equal(t, json.RawMessage("null"), data)
}

type staticStreams map[string]string

func (s staticStreams) Stream(name string) (string, bool) {
	path, ok := s[name]
	return path, ok
}

func TestStreamHandler(t *testing.T) {
	file := filepath.Join(t.TempDir(), "icon sprite.png")
	writeFile(t, file, "sprite-bytes")

	server := httptest.NewServer(StreamHandler(staticStreams{"icon sprite.png": file}))
	defer server.Close()

	resp, err := http.Get(server.URL + "/stream/icon%20sprite.png")
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "sprite-bytes", string(body))

	missing, err := http.Get(server.URL + "/stream/other.png")
	require.NoError(t, err)
	missing.Body.Close()
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestListenStreams(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	server, err := ListenStreams(ctx, "127.0.0.1:0", staticStreams{})
	require.NoError(t, err)
	assert.Contains(t, server.BaseURL(), "http://127.0.0.1:")

	require.NoError(t, server.Close())
}
