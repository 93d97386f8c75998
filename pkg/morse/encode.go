package morse

import "strings"

const (
	charSep = " "
	wordGap = "   "
)

// Encode translates text to a morse message. Input is uppercased to match
// the table. Characters within a word are joined by a single space, words
// by a triple space. Characters the table does not cover become the
// UnknownCode marker so the rest of the word still encodes.
func Encode(text string) string {
	var words []string
	for _, word := range strings.Fields(strings.ToUpper(text)) {
		codes := make([]string, 0, len(word))
		for _, r := range word {
			if code, ok := Table[r]; ok {
				codes = append(codes, code)
			} else {
				codes = append(codes, UnknownCode)
			}
		}
		words = append(words, strings.Join(codes, charSep))
	}
	return strings.Join(words, wordGap)
}
