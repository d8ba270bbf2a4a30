package radix

// CycleDetector finds the first recurrence in the remainder sequence of a
// fractional expansion.
//
// The multiply-and-floor loop is a function of the current remainder alone,
// so a remainder that recurs means the digits produced since its first
// occurrence repeat forever. The detector maps each remainder (keyed by its
// reduced decimal rendering) to the digit index at which it was first seen.
//
// A detector lives for a single conversion call and holds no other state,
// which keeps it independently testable. Unlike a shared memoization layer
// it needs no locking: conversions never share a detector.
type CycleDetector struct {
	firstSeen map[string]int
}

// NewCycleDetector creates an empty detector.
func NewCycleDetector() *CycleDetector {
	return &CycleDetector{firstSeen: make(map[string]int)}
}

// Check records that remainder was observed just before producing the digit
// at index idx. If the remainder was already seen, Check returns the index
// of its first occurrence and true: the digits in [first, idx) form the
// repeating cycle and the digits in [0, first) are the non-repeating prefix.
func (c *CycleDetector) Check(remainder string, idx int) (first int, seen bool) {
	if first, ok := c.firstSeen[remainder]; ok {
		return first, true
	}
	c.firstSeen[remainder] = idx
	return 0, false
}

// Len returns the number of distinct remainders recorded so far.
// Used for testing and introspection.
func (c *CycleDetector) Len() int {
	return len(c.firstSeen)
}
