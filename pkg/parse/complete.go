package parse

import "strings"

// Characters that end a word when scanning backwards for completion.
const wordBoundaries = " \t\r\n;[]{}\"$\\"

// CommandWordAt finds the word that ends at pos in code, for completing
// command names. It returns the index where the word starts, and whether the
// word is at command position, i.e. it is the first word of a command or of
// a command substitution.
//
// The scan only looks at the text immediately before pos, so it can be used
// on incomplete code.
func CommandWordAt(code string, pos int) (int, bool) {
	if pos > len(code) {
		pos = len(code)
	}
	from := pos
	for from > 0 && !strings.ContainsRune(wordBoundaries, rune(code[from-1])) {
		from--
	}
	i := from
	for i > 0 && isInlineSpace(code[i-1]) {
		i--
	}
	if i == 0 {
		return from, true
	}
	switch code[i-1] {
	case ';', '\n', '[':
		return from, true
	}
	return from, false
}
