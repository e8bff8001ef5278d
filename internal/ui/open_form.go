package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/xray-forge/xrf-shell/internal/config"
	"github.com/xray-forge/xrf-shell/internal/domain"
)

// openField is one path asked for when opening a resource.
// Key matches the locator key stored with recent resources.
type openField struct {
	Key   string
	Title string
}

// openFields lists the inputs of the open form per editor
var openFields = map[domain.EditorKind][]openField{
	domain.EditorArchives: {
		{Key: "path", Title: "Archives project directory"},
	},
	domain.EditorConfigs: {
		{Key: "path", Title: "Configs directory"},
	},
	domain.EditorEquipment: {
		{Key: "sprite", Title: "Equipment sprite (ui_icon_equipment.dds)"},
		{Key: "systemLtx", Title: "system.ltx"},
	},
	domain.EditorExports: {
		{Key: "conditions", Title: "Conditions declarations file"},
		{Key: "dialogs", Title: "Dialogs declarations file"},
		{Key: "effects", Title: "Effects declarations file"},
	},
	domain.EditorSpawn: {
		{Key: "path", Title: "Spawn file (all.spawn)"},
	},
}

// OpenFormResult contains the paths entered in the open form
type OpenFormResult struct {
	Cancelled bool
	Kind      domain.EditorKind
	Paths     map[string]string
}

// OpenForm asks for the paths needed to open a resource of one editor
type OpenForm struct {
	Completed bool
	form      *huh.Form
	kind      domain.EditorKind
	result    OpenFormResult
	values    map[string]*string
}

// NewOpenForm creates the open form of kind, pre-filled with prefill
func NewOpenForm(kind domain.EditorKind, prefill map[string]string) *OpenForm {
	of := &OpenForm{
		kind:   kind,
		result: OpenFormResult{Kind: kind},
		values: make(map[string]*string),
	}

	var inputs []huh.Field
	for _, field := range openFields[kind] {
		value := prefill[field.Key]
		of.values[field.Key] = &value
		inputs = append(inputs, huh.NewInput().
			Title(field.Title).
			Value(of.values[field.Key]).
			Validate(func(s string) error {
				if s == "" {
					return errors.New("path required")
				}
				return nil
			}))
	}

	of.form = huh.NewForm(huh.NewGroup(inputs...))
	return of
}

func (of *OpenForm) Init() tea.Cmd {
	return of.form.Init()
}

func (of *OpenForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			of.result.Cancelled = true
			of.Completed = true
			return of, nil
		}
	}

	form, cmd := of.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		of.form = f
	}

	if of.form.State == huh.StateCompleted {
		of.Completed = true
		of.result.Paths = make(map[string]string, len(of.values))
		for key, value := range of.values {
			of.result.Paths[key] = config.ExpandPath(*value)
		}
		return of, nil
	}

	return of, cmd
}

func (of *OpenForm) View() string {
	return of.form.View()
}

// Result returns the form result
func (of *OpenForm) Result() OpenFormResult {
	return of.result
}
