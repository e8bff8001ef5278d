package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults  []string
	Help      string
	Name      string
	TipFormat string
}

// AllKeyDefinitions contains all configurable key bindings.
// Names are what settings.json "keys" overrides refer to.
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "back", Defaults: []string{"esc"}, Help: "back to menu"},
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "show keyboard shortcuts", TipFormat: "press %s to see all shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "exit application"},

	// Navigation keys
	{Name: "collapse", Defaults: []string{"left", "h"}, Help: "collapse folder"},
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next item"},
	{Name: "expand", Defaults: []string{"right", "l"}, Help: "expand folder"},
	{Name: "filter", Defaults: []string{"/"}, Help: "filter tree by glob", TipFormat: "press %s to filter the tree with a glob such as **/*.ltx"},
	{Name: "select", Defaults: []string{"enter"}, Help: "choose item"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous item"},

	// Editor keys
	{Name: "close", Defaults: []string{"x"}, Help: "close resource", TipFormat: "press %s to release the opened resource"},
	{Name: "format", Defaults: []string{"f"}, Help: "format configs", TipFormat: "press %s in the configs editor to format the verified folder"},
	{Name: "grid_larger", Defaults: []string{"+", "="}, Help: "increase grid size"},
	{Name: "grid_smaller", Defaults: []string{"-"}, Help: "decrease grid size"},
	{Name: "open", Defaults: []string{"o"}, Help: "open resource", TipFormat: "press %s to open a resource"},
	{Name: "retry", Defaults: []string{"r"}, Help: "retry last operation", TipFormat: "press %s to retry after a failure"},
	{Name: "toggle_grid", Defaults: []string{"g"}, Help: "toggle grid overlay", TipFormat: "press %s to toggle the inventory grid"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// IsValidKeyName checks if a name is a valid key binding name.
func IsValidKeyName(name string) bool {
	return GetKeyDefinition(name) != nil
}
