// Package score holds the round scoring rules: points per correct letter,
// high-score reconciliation and the end-of-round star rating.
package score

// PointsPerHit is awarded for each correct, not previously guessed letter.
const PointsPerHit = 10

// Reconcile returns the high score to persist after a won round.
func Reconcile(roundScore, currentHigh int) int {
	return max(roundScore, currentHigh)
}

// StarsFor maps the share of attempts left at round end to 1..3 stars.
// More than 80% left gives 3 stars, more than 50% gives 2, anything else 1.
// Both thresholds are exclusive.
func StarsFor(wrongAttempts, maxAttempts int) int {
	if maxAttempts <= 0 {
		return 1
	}
	remaining := maxAttempts - wrongAttempts
	// remaining/max > 0.8 and > 0.5, kept in integers so the boundaries are exact.
	switch {
	case remaining*10 > maxAttempts*8:
		return 3
	case remaining*2 > maxAttempts:
		return 2
	default:
		return 1
	}
}
