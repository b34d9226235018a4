package game

// Score classifies every position of guess against secret using the two-pass
// Wordle algorithm.
//
// Pass 1:
//   - Mark exact matches Correct and reserve those letters.
//
// Pass 2 (left to right):
//   - A letter with unreserved occurrences left in the secret is Present and
//     consumes one occurrence; otherwise it is Absent.
//
// So a repeated guess letter is credited at most as many times as it occurs in
// the secret. Guesses of a different length are rejected by callers; Score
// returns nil for them.
func Score(secret, guess string) []Mark {
	n := len(secret)
	if len(guess) != n {
		return nil
	}
	res := make([]Mark, n)

	// Letter multiset of the secret, minus exact matches.
	remaining := make(map[byte]int, n)
	for i := 0; i < n; i++ {
		remaining[secret[i]]++
	}

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			res[i] = MarkCorrect
			remaining[guess[i]]--
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		if c := guess[i]; remaining[c] > 0 {
			res[i] = MarkPresent
			remaining[c]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// Solved reports whether every mark is Correct.
func Solved(marks []Mark) bool {
	if len(marks) == 0 {
		return false
	}
	for _, m := range marks {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}
