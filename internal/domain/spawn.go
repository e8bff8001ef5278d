package domain

// SpawnHeader is the header chunk of an all.spawn file
type SpawnHeader struct {
	GraphGUID    string `json:"graphGuid"`
	GUID         string `json:"guid"`
	LevelsCount  int    `json:"levelsCount"`
	ObjectsCount int    `json:"objectsCount"`
	Version      int    `json:"version"`
}

// SpawnFile summarizes the chunks of an opened spawn file
type SpawnFile struct {
	AlifeObjects   int         `json:"alifeObjectsCount"`
	ArtefactSpawns int         `json:"artefactSpawnsCount"`
	GraphVertices  int         `json:"graphVerticesCount"`
	Header         SpawnHeader `json:"header"`
	Path           string      `json:"path"`
	Patrols        int         `json:"patrolsCount"`
}
