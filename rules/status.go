package rules

// Status summarizes what the board is doing. It is used for pacing, log fields
// and metric labels.
type Status string

const (
	// StatusPlaying is a snake game in progress.
	StatusPlaying Status = "playing"
	// StatusFlashing is the loss flash after a self-collision or a full board.
	StatusFlashing Status = "flashing"
	// StatusRainbow is the passive color wheel.
	StatusRainbow Status = "rainbow"
)

// StatusOf returns the status of gs.
func StatusOf(gs *GameState) Status {
	switch m := gs.Mode.(type) {
	case ModeRainbow:
		return StatusRainbow
	case ModeSnake:
		if m.Loss > 0 {
			return StatusFlashing
		}
	}
	return StatusPlaying
}
