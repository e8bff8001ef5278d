package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/xray-forge/xrf-shell/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	Back      KeyWithTip
	ForceQuit KeyWithTip
	Help      KeyWithTip
	Quit      KeyWithTip
}

// NavigationKeys defines key bindings for moving through menus and trees
type NavigationKeys struct {
	Collapse KeyWithTip
	Down     KeyWithTip
	Expand   KeyWithTip
	Filter   KeyWithTip
	Select   KeyWithTip
	Up       KeyWithTip
}

// EditorKeys defines key bindings acting on the resource of an editor
type EditorKeys struct {
	Close       KeyWithTip
	Format      KeyWithTip
	GridLarger  KeyWithTip
	GridSmaller KeyWithTip
	Open        KeyWithTip
	Retry       KeyWithTip
	ToggleGrid  KeyWithTip
}

// KeyMap contains all keyboard shortcuts organized by context
type KeyMap struct {
	Application ApplicationKeys
	Editor      EditorKeys
	Navigation  NavigationKeys
}

// NewKeyMap creates a KeyMap, applying customKeys over the defaults.
// Pass nil to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: ApplicationKeys{
			Back:      buildBinding("back", defaults, customKeys),
			ForceQuit: buildBinding("force_quit", defaults, customKeys),
			Help:      buildBinding("help", defaults, customKeys),
			Quit:      buildBinding("quit", defaults, customKeys),
		},
		Editor: EditorKeys{
			Close:       buildBinding("close", defaults, customKeys),
			Format:      buildBinding("format", defaults, customKeys),
			GridLarger:  buildBinding("grid_larger", defaults, customKeys),
			GridSmaller: buildBinding("grid_smaller", defaults, customKeys),
			Open:        buildBinding("open", defaults, customKeys),
			Retry:       buildBinding("retry", defaults, customKeys),
			ToggleGrid:  buildBinding("toggle_grid", defaults, customKeys),
		},
		Navigation: NavigationKeys{
			Collapse: buildBinding("collapse", defaults, customKeys),
			Down:     buildBinding("down", defaults, customKeys),
			Expand:   buildBinding("expand", defaults, customKeys),
			Filter:   buildBinding("filter", defaults, customKeys),
			Select:   buildBinding("select", defaults, customKeys),
			Up:       buildBinding("up", defaults, customKeys),
		},
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Editor.Open.Binding,
		k.Editor.Close.Binding,
		k.Editor.Retry.Binding,
		k.Navigation.Filter.Binding,
		k.Application.Back.Binding,
		k.Application.Help.Binding,
		k.Application.Quit.Binding,
	}
}

// FullHelp returns every key binding grouped by context
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigation.Up.Binding, k.Navigation.Down.Binding, k.Navigation.Expand.Binding, k.Navigation.Collapse.Binding, k.Navigation.Select.Binding, k.Navigation.Filter.Binding},
		{k.Editor.Open.Binding, k.Editor.Close.Binding, k.Editor.Retry.Binding, k.Editor.Format.Binding, k.Editor.ToggleGrid.Binding, k.Editor.GridLarger.Binding, k.Editor.GridSmaller.Binding},
		{k.Application.Back.Binding, k.Application.Help.Binding, k.Application.Quit.Binding, k.Application.ForceQuit.Binding},
	}
}

// buildBinding creates a KeyWithTip from the key definition, using custom keys if provided.
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) KeyWithTip {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}
	helpKeys := strings.Join(keys, "/")

	result := KeyWithTip{
		Binding: key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(helpKeys, def.Help),
		),
	}

	if def.TipFormat != "" && len(keys) > 0 {
		result.Tip = newTip(def.TipFormat, keys[0])
	}

	return result
}
