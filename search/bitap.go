package search

import "strings"

// bitapMaskSlots is the size of a BitapSearcher's character mask table. A
// rune's slot is its scalar value modulo this size, so two runes whose
// values differ by a multiple of it share a slot and match each other.
const bitapMaskSlots = 1024

// bitapMaxPattern is the largest pattern length a BitapSearcher can track,
// bound by the width of the uint32 bit vector it shifts through.
const bitapMaxPattern = 32

// BitapSearcher scores a text against a fixed pattern using the bit-parallel
// shift-or algorithm, tolerant of up to maxMismatches mismatches per
// window. In this recurrence a mismatch at one position also counts at
// every later position of the window, so one substitution costs
// patternLen minus its zero-based position, not one. It
// holds no state about its caller's table or n-gram indexer: given a
// pattern it can score any text, independently and repeatedly.
type BitapSearcher struct {
	pattern       string
	mask          [bitapMaskSlots]uint32
	maxMismatches int
}

// NewBitapSearcher builds a searcher for pattern. Pattern length above
// bitapMaxPattern is not rejected here: the caller (Engine) enforces the
// 32-character query bound before constructing one.
func NewBitapSearcher(pattern string, maxMismatches int) *BitapSearcher {
	pattern = strings.ToLower(pattern)
	b := &BitapSearcher{pattern: pattern, maxMismatches: maxMismatches}
	for i, r := range []rune(pattern) {
		b.mask[maskSlot(r)] |= 1 << uint(i)
	}
	return b
}

func maskSlot(r rune) int {
	return int(r) % bitapMaskSlots
}

// GetScore slides the pattern over text and returns the score of the first
// window within maxMismatches mismatches, as 1 - mismatches/patternLen.
// It reports false if text is shorter than the pattern, the pattern is
// empty, or no window matches within tolerance.
func (b *BitapSearcher) GetScore(text string) (float64, bool) {
	patternRunes := []rune(b.pattern)
	patternLen := len(patternRunes)
	if patternLen == 0 {
		return 0, false
	}

	textRunes := []rune(strings.ToLower(text))
	textLen := len(textRunes)
	if textLen < patternLen {
		return 0, false
	}

	for start := 0; start <= textLen-patternLen; start++ {
		var r uint32
		mismatches := 0
		for j := 0; j < patternLen; j++ {
			r = ((r << 1) | 1) & b.mask[maskSlot(textRunes[start+j])]
			if r&(1<<uint(j)) == 0 {
				mismatches++
			}
		}
		if mismatches <= b.maxMismatches {
			return 1 - float64(mismatches)/float64(patternLen), true
		}
	}
	return 0, false
}
