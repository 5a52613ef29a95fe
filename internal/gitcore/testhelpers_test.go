package gitcore

import "time"

// zeroTime returns a fixed, deterministic timestamp for fixtures that don't
// care about the exact value.
func zeroTime() time.Time {
	return time.Unix(1700000000, 0).UTC()
}
