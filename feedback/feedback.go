// Package feedback implements the Wordle feedback oracle: the pure,
// total function mapping a (guess, answer) pair to a five-position
// color pattern, honoring duplicate-letter semantics.
package feedback

import "github.com/ashgrove-labs/wordle-puzzle/models"

// Get computes the color pattern for guess against answer using the
// standard two-pass Wordle rule:
//
//  1. Greens: mark exact position matches first, and remove that
//     letter from the answer's remaining tally.
//  2. Yellows/grays: for every non-green position, mark yellow if the
//     guessed letter still has remaining tally on the answer side,
//     else gray.
//
// This ordering — greens claim their letter before yellows are
// considered — is what makes duplicate letters resolve correctly: a
// letter that appears k times in the answer can receive green-or-
// yellow at most k times across the whole guess, with any surplus
// copies falling back to gray.
func Get(guess, answer models.Word) models.ColorPattern {
	var tally [models.NumLetters]uint8
	for i := 0; i < models.NumLetters; i++ {
		tally[i] = answer.Count('a' + byte(i))
	}

	var pattern models.ColorPattern

	// Pass 1: greens claim their letter from the tally first.
	for i := 0; i < models.WordLength; i++ {
		if guess.At(i) == answer.At(i) {
			pattern[i] = models.Green
			tally[guess.At(i)-'a']--
		}
	}

	// Pass 2: yellows claim whatever tally greens left behind; the
	// rest stay gray.
	for i := 0; i < models.WordLength; i++ {
		if pattern[i] == models.Green {
			continue
		}
		letter := guess.At(i)
		if tally[letter-'a'] > 0 {
			pattern[i] = models.Yellow
			tally[letter-'a']--
		} else {
			pattern[i] = models.Gray
		}
	}

	return pattern
}
