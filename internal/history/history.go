package history

import "github.com/devguard-ai/devguard/internal/models"

type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	TonePending  Tone = "pending"
)

type Indicator struct {
	Symbol string
	Label  string
	Tone   Tone
}

// StatusIndicator maps a scan status to the icon shown next to it.
func StatusIndicator(status models.ScanStatus) Indicator {
	switch status {
	case models.ScanSuccess:
		return Indicator{Symbol: "✔", Label: "Success", Tone: TonePositive}
	case models.ScanFailed:
		return Indicator{Symbol: "✖", Label: "Failed", Tone: ToneNegative}
	default:
		return Indicator{Symbol: "◷", Label: "Running", Tone: TonePending}
	}
}

func IsClean(s models.Scan) bool {
	return s.Findings.Total() == 0
}

// Row is one rendered line of the scan history.
type Row struct {
	Scan      models.Scan
	Indicator Indicator
	Clean     bool
}

func Rows(scans []models.Scan) []Row {
	rows := make([]Row, 0, len(scans))
	for _, s := range scans {
		rows = append(rows, Row{
			Scan:      s,
			Indicator: StatusIndicator(s.Status),
			Clean:     IsClean(s),
		})
	}
	return rows
}
