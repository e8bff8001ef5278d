package domain

// Backend command names, one open/close/get triple per resource kind.
// Config commands run once over a folder and hold nothing open.
const (
	CommandCloseArchivesProject = "close_archives_project"
	CommandGetArchivesProject   = "get_archives_project"
	CommandOpenArchivesProject  = "open_archives_project"

	CommandCloseEquipmentSprite = "close_equipment_sprite"
	CommandGetEquipmentSprite   = "get_equipment_sprite"
	CommandOpenEquipmentSprite  = "open_equipment_sprite"

	CommandCloseXRExports = "close_xr_exports"
	CommandGetXRExports   = "get_xr_exports"
	CommandOpenXRExports  = "open_xr_exports"

	CommandCloseSpawnFile = "close_spawn_file"
	CommandGetSpawnFile   = "get_spawn_file"
	CommandOpenSpawnFile  = "open_spawn_file"

	CommandFormatConfigsPath = "format_configs_path"
	CommandVerifyConfigsPath = "verify_configs_path"
)
