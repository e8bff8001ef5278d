package domain

// ExportsPathDelimiter separates segments of declaration tree ids
const ExportsPathDelimiter = "/"

// ExportParameter describes one parameter of an exported script function
type ExportParameter struct {
	Comment string `json:"comment"`
	Name    string `json:"name"`
	Typing  string `json:"typing"`
}

// ExportDescriptor describes one exported condition, dialog or effect
type ExportDescriptor struct {
	Col        int               `json:"col"`
	Comment    string            `json:"comment"`
	Filepath   string            `json:"filepath"`
	Line       int               `json:"line"`
	Name       string            `json:"name"`
	Parameters []ExportParameter `json:"parameters"`
}

// ExportsDeclarations groups all declarations parsed by the backend
type ExportsDeclarations struct {
	Conditions []ExportDescriptor `json:"conditions"`
	Dialogs    []ExportDescriptor `json:"dialogs"`
	Effects    []ExportDescriptor `json:"effects"`
}

// Count returns the total number of declarations
func (d *ExportsDeclarations) Count() int {
	if d == nil {
		return 0
	}
	return len(d.Conditions) + len(d.Dialogs) + len(d.Effects)
}
