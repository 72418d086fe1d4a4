package render

import "strings"

// FenceChar is the delimiter character used for code fences.
const FenceChar = '`'

// MinFenceLength is the shortest fence CommonMark accepts.
const MinFenceLength = 3

// Fence returns the shortest fence of at least MinFenceLength backticks that
// is longer than every run of backticks in content, so the content can never
// close the block early.
func Fence(content string) string {
	return strings.Repeat(string(FenceChar), max(MinFenceLength, longestRun(content, FenceChar)+1))
}

// longestRun returns the length of the longest maximal run of c in s.
func longestRun(s string, c byte) int {
	longest, run := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] != c {
			run = 0
			continue
		}
		run++
		longest = max(longest, run)
	}
	return longest
}
