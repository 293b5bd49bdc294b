package models

// CountdownState is the read-only snapshot of a countdown timer, used for
// progress meters. RemainingSeconds never increases while running; Expired
// is set exactly once per arming.
type CountdownState struct {
	RemainingSeconds int  `json:"remainingSeconds"`
	TotalSeconds     int  `json:"totalSeconds"`
	Expired          bool `json:"expired"`
}

// Progress returns the remaining/total ratio in [0,1].
func (c CountdownState) Progress() float64 {
	if c.TotalSeconds <= 0 {
		return 0
	}
	return float64(c.RemainingSeconds) / float64(c.TotalSeconds)
}
