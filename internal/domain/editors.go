package domain

// EditorKind identifies one editor screen of the shell
type EditorKind string

const (
	EditorArchives  EditorKind = "archives"
	EditorConfigs   EditorKind = "configs"
	EditorEquipment EditorKind = "equipment"
	EditorExports   EditorKind = "exports"
	EditorSpawn     EditorKind = "spawn"
)

// Editor describes an editor screen reachable from the main menu
type Editor struct {
	Description string
	HelpLink    string
	Kind        EditorKind
	Title       string
}

// Editors is the canonical registry of editor screens, in menu order.
var Editors = []Editor{
	{
		Kind:        EditorArchives,
		Title:       "Archive editor",
		Description: "Browse files of an unpacked archives project",
		HelpLink:    "https://xray-forge.github.io/stalker-xrf-book/tools/app/archive_editor.html",
	},
	{
		Kind:        EditorConfigs,
		Title:       "Configs editor",
		Description: "Verify or format a folder of LTX configs",
		HelpLink:    "https://xray-forge.github.io/stalker-xrf-book/tools/app/configs_editor.html",
	},
	{
		Kind:        EditorEquipment,
		Title:       "Icons editor",
		Description: "Inspect the equipment sprite and its inventory sections",
		HelpLink:    "https://xray-forge.github.io/stalker-xrf-book/tools/app/icon_editor.html",
	},
	{
		Kind:        EditorExports,
		Title:       "Exports viewer",
		Description: "View conditions, dialogs and effects declared by scripts",
		HelpLink:    "https://xray-forge.github.io/stalker-xrf-book/tools/app/exports_viewer.html",
	},
	{
		Kind:        EditorSpawn,
		Title:       "Spawn editor",
		Description: "Inspect chunks of an all.spawn file",
		HelpLink:    "https://xray-forge.github.io/stalker-xrf-book/tools/app/spawn_editor.html",
	},
}

// GetEditorByKind returns an editor by its kind, or nil if not found.
func GetEditorByKind(kind EditorKind) *Editor {
	for i := range Editors {
		if Editors[i].Kind == kind {
			return &Editors[i]
		}
	}
	return nil
}
