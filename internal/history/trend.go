package history

import (
	"math"

	"github.com/devguard-ai/devguard/internal/models"
)

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
	Flat Direction = "flat"
)

// Trend is the change in one count between two weeks. Percent is relative to
// From and is zero when From is zero.
type Trend struct {
	From      int       `json:"from"`
	To        int       `json:"to"`
	Delta     int       `json:"delta"`
	Percent   float64   `json:"percent"`
	Direction Direction `json:"direction"`
}

// Summary compares the first and last point, overall and per severity.
type Summary struct {
	Total  Trend `json:"total"`
	High   Trend `json:"high"`
	Medium Trend `json:"medium"`
	Low    Trend `json:"low"`
}

// Summarize returns false when there are fewer than two points to compare.
func Summarize(points []models.TrendPoint) (Summary, bool) {
	if len(points) < 2 {
		return Summary{}, false
	}
	first := points[0].Counts()
	last := points[len(points)-1].Counts()

	s := Summary{Total: between(first.Total(), last.Total())}
	for _, sev := range models.Severities {
		t := between(first.Get(sev), last.Get(sev))
		switch sev {
		case models.SeverityHigh:
			s.High = t
		case models.SeverityMedium:
			s.Medium = t
		case models.SeverityLow:
			s.Low = t
		}
	}
	return s, true
}

func between(from, to int) Trend {
	t := Trend{From: from, To: to, Delta: to - from, Direction: Flat}
	switch {
	case t.Delta > 0:
		t.Direction = Up
	case t.Delta < 0:
		t.Direction = Down
	}
	if from != 0 {
		t.Percent = math.Round(float64(t.Delta)*10000/float64(from)) / 100
	}
	return t
}

// Peak is the largest weekly total, used to scale bars.
func Peak(points []models.TrendPoint) int {
	peak := 0
	for _, p := range points {
		if t := p.Counts().Total(); t > peak {
			peak = t
		}
	}
	return peak
}
