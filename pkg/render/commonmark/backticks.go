package commonmark

import "math/bits"

// maxTrackedBacktickRun is the longest backtick run recorded by
// shortestUnusedBacktickRun. Longer runs cannot collide with a fence of at
// most this length, so they are skipped.
const maxTrackedBacktickRun = 31

// longestBacktickRun returns the length of the longest run of backticks in code.
func longestBacktickRun(code []byte) int {
	longest, current := 0, 0
	for _, c := range code {
		if c == '`' {
			current++
			longest = max(longest, current)
			continue
		}
		current = 0
	}
	return longest
}

// shortestUnusedBacktickRun returns the smallest n >= 1 such that code holds
// no run of exactly n backticks. Run lengths 1..31 are tracked in a bitset;
// if all of them occur, the result is the longest run plus one.
func shortestUnusedBacktickRun(code []byte) int {
	used := uint32(1) // a zero-length fence is never valid
	longest, current := 0, 0

	record := func() {
		if current == 0 {
			return
		}
		if current <= maxTrackedBacktickRun {
			used |= 1 << current
		}
		longest = max(longest, current)
		current = 0
	}

	for _, c := range code {
		if c == '`' {
			current++
			continue
		}
		record()
	}
	record()

	if n := bits.TrailingZeros32(^used); n < 32 {
		return n
	}
	return longest + 1
}
