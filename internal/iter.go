// Package internal holds helpers shared by the emulator and the command line.
package internal

import (
	"iter"
)

// MergeDefines concatenates define sequences. When a name appears in more
// than one sequence, the first definition wins and later ones are skipped.
func MergeDefines(seqs ...iter.Seq2[string, string]) iter.Seq2[string, string] {
	return func(yield func(name, value string) bool) {
		seen := map[string]bool{}
		for _, seq := range seqs {
			for name, value := range seq {
				if seen[name] {
					continue
				}
				seen[name] = true
				if !yield(name, value) {
					return
				}
			}
		}
	}
}
