package finance

import "time"

type Goal struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	Target      float64    `json:"target"`
	Saved       float64    `json:"saved"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// Ratio is saved/target, zero when there is no target.
func (g Goal) Ratio() float64 {
	if g.Target <= 0 {
		return 0
	}
	return g.Saved / g.Target
}

// Percent is the progress for display, capped at 100.
func (g Goal) Percent() float64 {
	p := g.Ratio() * 100
	if p > 100 {
		return 100
	}
	return p
}
