package models

type Plan string

const (
	PlanFree Plan = "free"
	PlanPro  Plan = "pro"
)

func (p Plan) Valid() bool {
	return p == PlanFree || p == PlanPro
}

type Repository struct {
	ID         string `json:"id" yaml:"id"`
	Owner      string `json:"owner" yaml:"owner"`
	Name       string `json:"name" yaml:"name"`
	Branch     string `json:"branch" yaml:"branch"`
	Language   string `json:"language" yaml:"language"`
	LastScan   string `json:"last_scan" yaml:"last_scan"`
	TotalScans int    `json:"total_scans" yaml:"total_scans"`
}

func (r Repository) FullName() string {
	return r.Owner + "/" + r.Name
}
