package domain

// Configs operations reported back in a ConfigsReport
const (
	ConfigsOpFormat = "format"
	ConfigsOpVerify = "verify"
)

// ConfigIssue is one problem found in an LTX config file
type ConfigIssue struct {
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Message string `json:"message"`
	Section string `json:"section,omitempty"`
}

// ConfigsReport is the outcome of verifying or formatting a folder of LTX configs
type ConfigsReport struct {
	Files     int           `json:"files"`
	Issues    []ConfigIssue `json:"issues"`
	Operation string        `json:"operation"`
	Path      string        `json:"path"`
	Sections  int           `json:"sections"`
}

// Valid reports whether the run found no issues
func (r *ConfigsReport) Valid() bool {
	return len(r.Issues) == 0
}
