package domain

import (
	"image"
	"math"
)

// Grid size bounds of the icons editor overlay
const (
	DefaultGridSize = 50
	MaxGridSize     = 100
	MinGridSize     = 10
)

// InventorySpriteDescriptor locates one inventory icon inside the equipment sprite
type InventorySpriteDescriptor struct {
	H       int    `json:"h"`
	Section string `json:"section"`
	W       int    `json:"w"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
}

// Bounds returns the icon rectangle in sprite pixels
func (d InventorySpriteDescriptor) Bounds(gridSize int) image.Rectangle {
	return image.Rect(d.X*gridSize, d.Y*gridSize, (d.X+d.W)*gridSize, (d.Y+d.H)*gridSize)
}

// EquipmentResponse is returned by the backend when a sprite is opened
type EquipmentResponse struct {
	Descriptors   []InventorySpriteDescriptor `json:"equipmentDescriptors"`
	Name          string                      `json:"name"`
	Path          string                      `json:"path"`
	SystemLtxPath string                      `json:"systemLtxPath"`
}

// EquipmentSprite is a decoded equipment sprite ready for display
type EquipmentSprite struct {
	Blob          []byte
	Descriptors   []InventorySpriteDescriptor
	Image         image.Image
	MimeType      string
	Name          string
	Path          string
	SystemLtxPath string
}

// GridSettings controls the grid overlay drawn over the sprite
type GridSettings struct {
	Size    int
	Visible bool
}

// DefaultGridSettings returns the overlay settings of a fresh icons editor
func DefaultGridSettings() GridSettings {
	return GridSettings{Size: DefaultGridSize, Visible: true}
}

// ClampGridSize rounds size and keeps it within [MinGridSize, MaxGridSize]
func ClampGridSize(size float64) int {
	return int(math.Round(math.Max(MinGridSize, math.Min(MaxGridSize, size))))
}
