package rules

// LossFlashTicks is the length of the loss flash in turns.
const LossFlashTicks = 10

// LossCause explains why a game ended.
type LossCause string

const (
	// LossCauseSelfCollision is when the snake runs into its own body.
	LossCauseSelfCollision LossCause = "self-collision"
	// LossCauseBoardFull is when the snake covers the whole board and no
	// cherry can be placed.
	LossCauseBoardFull LossCause = "board-full"
)

// startLoss switches the game into the loss flash.
func startLoss(gs *GameState, cause LossCause) {
	gs.Mode = ModeSnake{Loss: LossFlashTicks, Cause: cause}
	gs.Report.Loss = cause
}
