package services

import (
	"context"
	"encoding/json"
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xray-forge/xrf-shell/internal/adapters/blob"
	"github.com/xray-forge/xrf-shell/internal/domain"
	"github.com/xray-forge/xrf-shell/internal/ports"
	portsmocks "github.com/xray-forge/xrf-shell/internal/ports/mocks"
)

const equipmentJSON = `{
	"name": "ui_icon_equipment.dds",
	"path": "/games/stalker/textures/ui/ui_icon_equipment.dds",
	"systemLtxPath": "/games/stalker/config/system.ltx",
	"equipmentDescriptors": [
		{"section": "wpn_ak74", "x": 0, "y": 2, "w": 5, "h": 2},
		{"section": "medkit", "x": 6, "y": 0, "w": 1, "h": 1}
	]
}`

type equipmentFixture struct {
	blobs   *portsmocks.MockBlobResolver
	bridge  *portsmocks.MockBridge
	decoder *portsmocks.MockImageDecoder
	editor  *EquipmentEditor
}

func newEquipmentFixture(t *testing.T, grid domain.GridSettings) *equipmentFixture {
	f := &equipmentFixture{
		blobs:   portsmocks.NewMockBlobResolver(t),
		bridge:  portsmocks.NewMockBridge(t),
		decoder: portsmocks.NewMockImageDecoder(t),
	}
	f.editor = NewEquipmentEditor(f.bridge, f.blobs, f.decoder, nil, nil, grid)
	return f
}

func (f *equipmentFixture) expectHydrate(img image.Image) {
	f.blobs.EXPECT().ConvertFileSrc("ui_icon_equipment.dds", blob.StreamProtocol).
		Return("http://localhost:7070/stream/ui_icon_equipment.dds")
	f.blobs.EXPECT().Fetch(mock.Anything, "http://localhost:7070/stream/ui_icon_equipment.dds").
		Return([]byte("sprite-bytes"), nil)
	f.decoder.EXPECT().Decode([]byte("sprite-bytes")).Return(img, "image/png", nil)
}

func TestEquipmentEditor_OpenHydratesSprite(t *testing.T) {
	f := newEquipmentFixture(t, domain.DefaultGridSettings())
	img := image.NewRGBA(image.Rect(0, 0, 350, 200))

	f.bridge.EXPECT().Invoke(mock.Anything, domain.CommandOpenEquipmentSprite, ports.Args{
		"equipmentDdsPath": "/games/stalker/textures/ui/ui_icon_equipment.dds",
		"systemLtxPath":    "/games/stalker/config/system.ltx",
	}).Return(json.RawMessage(equipmentJSON), nil)
	f.expectHydrate(img)

	snapshot := f.editor.Open(context.Background(),
		"/games/stalker/textures/ui/ui_icon_equipment.dds",
		"/games/stalker/config/system.ltx")

	require.True(t, snapshot.IsReady())
	sprite := snapshot.Value
	assert.Equal(t, "ui_icon_equipment.dds", sprite.Name)
	assert.Equal(t, "image/png", sprite.MimeType)
	assert.Equal(t, []byte("sprite-bytes"), sprite.Blob)
	assert.Same(t, img, sprite.Image.(*image.RGBA))
	require.Len(t, sprite.Descriptors, 2)
	assert.Equal(t, "wpn_ak74", sprite.Descriptors[0].Section)
}

func TestEquipmentEditor_OpenFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *equipmentFixture)
	}{
		{
			name: "bridge error",
			setup: func(f *equipmentFixture) {
				f.bridge.EXPECT().Invoke(mock.Anything, domain.CommandOpenEquipmentSprite, mock.Anything).
					Return(nil, errors.New("no such file"))
			},
		},
		{
			name: "null response",
			setup: func(f *equipmentFixture) {
				f.bridge.EXPECT().Invoke(mock.Anything, domain.CommandOpenEquipmentSprite, mock.Anything).
					Return(json.RawMessage("null"), nil)
			},
		},
		{
			name: "fetch error",
			setup: func(f *equipmentFixture) {
				f.bridge.EXPECT().Invoke(mock.Anything, domain.CommandOpenEquipmentSprite, mock.Anything).
					Return(json.RawMessage(equipmentJSON), nil)
				f.blobs.EXPECT().ConvertFileSrc(mock.Anything, blob.StreamProtocol).Return("http://localhost/stream/x")
				f.blobs.EXPECT().Fetch(mock.Anything, mock.Anything).Return(nil, errors.New("404 Not Found"))
			},
		},
		{
			name: "decode error",
			setup: func(f *equipmentFixture) {
				f.bridge.EXPECT().Invoke(mock.Anything, domain.CommandOpenEquipmentSprite, mock.Anything).
					Return(json.RawMessage(equipmentJSON), nil)
				f.blobs.EXPECT().ConvertFileSrc(mock.Anything, blob.StreamProtocol).Return("http://localhost/stream/x")
				f.blobs.EXPECT().Fetch(mock.Anything, mock.Anything).Return([]byte("garbage"), nil)
				f.decoder.EXPECT().Decode([]byte("garbage")).Return(nil, "", blob.ErrUnsupportedImage)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newEquipmentFixture(t, domain.DefaultGridSettings())
			tt.setup(f)

			snapshot := f.editor.Open(context.Background(), "sprite.dds", "system.ltx")

			require.True(t, snapshot.IsFailed())
			assert.ErrorIs(t, snapshot.Err, domain.ErrBridgeInvocation)
			assert.False(t, snapshot.HasValue)
		})
	}
}

func TestEquipmentEditor_ResumeNothingHeld(t *testing.T) {
	f := newEquipmentFixture(t, domain.DefaultGridSettings())
	f.bridge.EXPECT().Invoke(mock.Anything, domain.CommandGetEquipmentSprite, ports.Args(nil)).
		Return(json.RawMessage("null"), nil)

	snapshot := f.editor.Resume(context.Background())

	assert.True(t, snapshot.IsIdle())
}

func TestEquipmentEditor_ResumeHeldSprite(t *testing.T) {
	f := newEquipmentFixture(t, domain.DefaultGridSettings())
	f.bridge.EXPECT().Invoke(mock.Anything, domain.CommandGetEquipmentSprite, ports.Args(nil)).
		Return(json.RawMessage(equipmentJSON), nil)
	f.expectHydrate(image.NewRGBA(image.Rect(0, 0, 1, 1)))

	snapshot := f.editor.Resume(context.Background())

	require.True(t, snapshot.IsReady())
	assert.Equal(t, "/games/stalker/config/system.ltx", snapshot.Value.SystemLtxPath)
}

func TestEquipmentEditor_Close(t *testing.T) {
	f := newEquipmentFixture(t, domain.DefaultGridSettings())
	f.bridge.EXPECT().Invoke(mock.Anything, domain.CommandCloseEquipmentSprite, ports.Args(nil)).
		Return(json.RawMessage("null"), nil)

	// Closing from Idle still asks the backend, then settles Idle
	snapshot := f.editor.Close(context.Background())

	assert.True(t, snapshot.IsIdle())
}

func TestEquipmentEditor_Grid(t *testing.T) {
	f := newEquipmentFixture(t, domain.GridSettings{Size: 500, Visible: true})

	initial := f.editor.Grid().Snapshot()
	require.True(t, initial.IsReady())
	assert.Equal(t, domain.MaxGridSize, initial.Value.Size)

	hidden := f.editor.SetGridVisibility(false)
	assert.False(t, hidden.Value.Visible)
	assert.Equal(t, domain.MaxGridSize, hidden.Value.Size)

	toggled := f.editor.ToggleGrid()
	assert.True(t, toggled.Value.Visible)

	tests := []struct {
		size int
		want int
	}{
		{size: 5, want: domain.MinGridSize},
		{size: 42, want: 42},
		{size: 101, want: domain.MaxGridSize},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.editor.SetGridSize(tt.size).Value.Size)
	}
}

func TestEquipmentEditor_GridIsIndependentOfSprite(t *testing.T) {
	f := newEquipmentFixture(t, domain.DefaultGridSettings())
	f.bridge.EXPECT().Invoke(mock.Anything, domain.CommandOpenEquipmentSprite, mock.Anything).
		Return(nil, errors.New("boom"))

	f.editor.Open(context.Background(), "sprite.dds", "system.ltx")

	assert.True(t, f.editor.Sprite().Snapshot().IsFailed())
	assert.True(t, f.editor.Grid().Snapshot().IsReady())
}
