package models

type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Severities lists every severity from most to least urgent.
var Severities = []Severity{SeverityHigh, SeverityMedium, SeverityLow}

func (s Severity) Valid() bool {
	switch s {
	case SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

type Finding struct {
	ID       string   `json:"id" yaml:"id"`
	Line     int      `json:"line" yaml:"line"`
	Severity Severity `json:"severity" yaml:"severity"`
	Type     string   `json:"type" yaml:"type"`
	Message  string   `json:"message" yaml:"message"`
}

// FileWithFindings groups the findings reported against one source path.
type FileWithFindings struct {
	Path     string    `json:"path" yaml:"path"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

type SeverityCounts struct {
	High   int `json:"high" yaml:"high"`
	Medium int `json:"medium" yaml:"medium"`
	Low    int `json:"low" yaml:"low"`
}

func (c SeverityCounts) Total() int {
	return c.High + c.Medium + c.Low
}

func (c SeverityCounts) Get(s Severity) int {
	switch s {
	case SeverityHigh:
		return c.High
	case SeverityMedium:
		return c.Medium
	case SeverityLow:
		return c.Low
	}
	return 0
}

func (c SeverityCounts) Add(o SeverityCounts) SeverityCounts {
	return SeverityCounts{
		High:   c.High + o.High,
		Medium: c.Medium + o.Medium,
		Low:    c.Low + o.Low,
	}
}

type CodeSnippet struct {
	StartLine     int      `json:"start_line" yaml:"start_line"`
	Lines         []string `json:"lines" yaml:"lines"`
	HighlightLine int      `json:"highlight_line" yaml:"highlight_line"`
}

type Remediation struct {
	Description string   `json:"description" yaml:"description"`
	FixedCode   string   `json:"fixed_code" yaml:"fixed_code"`
	References  []string `json:"references" yaml:"references"`
}

// VulnerabilityDetails is the expanded record shown when a finding is opened.
// It is keyed by the finding id.
type VulnerabilityDetails struct {
	Finding     `yaml:",inline"`
	FilePath    string      `json:"file_path" yaml:"file_path"`
	CodeSnippet CodeSnippet `json:"code_snippet" yaml:"code_snippet"`
	Remediation Remediation `json:"remediation" yaml:"remediation"`
}
