package mines

import "fmt"

var (
	ErrInvalidConfiguration = fmt.Errorf("invalid board configuration")
	ErrOutOfBounds          = fmt.Errorf("position is out of bounds")
)

// validate rejects layouts the rejection sampler could never finish placing.
func validate(boardSize, mineCount int) error {
	if boardSize < 1 {
		return fmt.Errorf(
			"%w: board size must be positive (got %d)",
			ErrInvalidConfiguration, boardSize,
		)
	}
	if mineCount < 0 {
		return fmt.Errorf(
			"%w: mine count must not be negative (got %d)",
			ErrInvalidConfiguration, mineCount,
		)
	}
	if mineCount >= boardSize*boardSize {
		return fmt.Errorf(
			"%w: %d mines do not fit on a %dx%d board",
			ErrInvalidConfiguration, mineCount, boardSize, boardSize,
		)
	}
	return nil
}
