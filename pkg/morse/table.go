// Package morse implements the International Morse code table, a binary
// prefix tree for decoding, text encoding, and a WPM-based transmission
// planner. Everything in this package is pure computation: no I/O, no
// sleeping, no mutable package state after init.
package morse

import "sort"

const (
	// Dot and Dash are the two marks a code is built from.
	Dot  = '.'
	Dash = '-'

	// Unresolved is substituted for a code the trie cannot resolve.
	Unresolved = '?'

	// UnknownCode is substituted for a character the table does not cover.
	UnknownCode = "###"
)

// Table maps each supported symbol to its dot/dash code. Covers A-Z, 0-9
// and the punctuation set ". , ? /". Never mutated after process start.
var Table = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".",
	'F': "..-.", 'G': "--.", 'H': "....", 'I': "..", 'J': ".---",
	'K': "-.-", 'L': ".-..", 'M': "--", 'N': "-.", 'O': "---",
	'P': ".--.", 'Q': "--.-", 'R': ".-.", 'S': "...", 'T': "-",
	'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-", 'Y': "-.--",
	'Z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..-..", '/': "-..-.",
}

// CodeFor returns the code for a symbol, if the table covers it.
func CodeFor(r rune) (string, bool) {
	code, ok := Table[r]
	return code, ok
}

// Symbols returns every symbol in the table in sorted order, for
// deterministic display and iteration.
func Symbols() []rune {
	syms := make([]rune, 0, len(Table))
	for r := range Table {
		syms = append(syms, r)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}
