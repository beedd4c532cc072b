package models

type ScanStatus string

const (
	ScanSuccess ScanStatus = "success"
	ScanFailed  ScanStatus = "failed"
	ScanRunning ScanStatus = "running"
)

func (s ScanStatus) Valid() bool {
	switch s {
	case ScanSuccess, ScanFailed, ScanRunning:
		return true
	}
	return false
}

type Scan struct {
	ID         string         `json:"id" yaml:"id"`
	CommitHash string         `json:"commit_hash" yaml:"commit_hash"`
	Branch     string         `json:"branch" yaml:"branch"`
	Timestamp  string         `json:"timestamp" yaml:"timestamp"`
	Duration   string         `json:"duration" yaml:"duration"`
	Status     ScanStatus     `json:"status" yaml:"status"`
	Findings   SeverityCounts `json:"findings" yaml:"findings"`
}

// TrendPoint holds the open finding totals for one week.
type TrendPoint struct {
	Label  string `json:"label" yaml:"label"`
	High   int    `json:"high" yaml:"high"`
	Medium int    `json:"medium" yaml:"medium"`
	Low    int    `json:"low" yaml:"low"`
}

func (p TrendPoint) Counts() SeverityCounts {
	return SeverityCounts{High: p.High, Medium: p.Medium, Low: p.Low}
}
