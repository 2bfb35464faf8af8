package apperror

import "errors"

var (
	ErrNoActiveGame    = errors.New("no active game found")
	ErrInvalidPosition = errors.New("invalid position")
	ErrCellOccupied    = errors.New("position is already occupied")
	ErrKoViolation     = errors.New("move violates ko rule")
	ErrSuicide         = errors.New("move would be suicide")

	ErrPlayerIDRequired = errors.New("player id is required")
	ErrInvalidLimit     = errors.New("invalid leaderboard limit")
)

var ruleViolations = []error{
	ErrNoActiveGame,
	ErrInvalidPosition,
	ErrCellOccupied,
	ErrKoViolation,
	ErrSuicide,
	ErrPlayerIDRequired,
	ErrInvalidLimit,
}

// RuleViolation returns the sentinel err wraps when the caller broke a rule,
// or nil when err came from the infrastructure.
func RuleViolation(err error) error {
	for _, target := range ruleViolations {
		if errors.Is(err, target) {
			return target
		}
	}

	return nil
}
