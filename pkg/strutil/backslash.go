package strutil

import (
	"strings"
	"unicode/utf8"
)

var singleCharEscapes = map[byte]string{
	'a': "\a", 'b': "\b", 'f': "\f", 'n': "\n", 'r': "\r", 't': "\t", 'v': "\v",
}

// Backslash performs backslash substitution on the escape sequence starting
// at s[i], which must be a backslash. It returns the substituted text and the
// index just after the sequence.
//
// Recognized sequences are the single-character escapes \a \b \f \n \r \t
// \v, a backslash-newline together with any spaces and tabs following it
// (replaced by one space), up to three octal digits, \x followed by up to two
// hex digits and \u followed by up to four hex digits. Any other escaped
// character stands for itself; a backslash at the end of s is left alone.
func Backslash(s string, i int) (string, int) {
	if i+1 >= len(s) {
		return `\`, i + 1
	}
	c := s[i+1]
	if rep, ok := singleCharEscapes[c]; ok {
		return rep, i + 2
	}
	switch {
	case c == '\n':
		j := i + 2
		for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
			j++
		}
		return " ", j
	case isOctal(c):
		v, j := 0, i+1
		for j < len(s) && j < i+4 && isOctal(s[j]) {
			v = v*8 + int(s[j]-'0')
			j++
		}
		return string(rune(v & 0xff)), j
	case c == 'x':
		return hexEscape(s, i+2, 2, "x")
	case c == 'u':
		return hexEscape(s, i+2, 4, "u")
	}
	r, size := utf8.DecodeRuneInString(s[i+1:])
	if r == utf8.RuneError {
		return s[i+1 : i+2], i + 2
	}
	return string(r), i + 1 + size
}

func hexEscape(s string, start, max int, bare string) (string, int) {
	v, j := 0, start
	for j < len(s) && j < start+max && hexValue(s[j]) >= 0 {
		v = v*16 + hexValue(s[j])
		j++
	}
	if j == start {
		return bare, j
	}
	return string(rune(v)), j
}

// Unbackslash performs backslash substitution on every escape sequence in s.
func Unbackslash(s string) string {
	if strings.IndexByte(s, '\\') == -1 {
		return s
	}
	var sb strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '\\' {
			rep, next := Backslash(s, i)
			sb.WriteString(rep)
			i = next
		} else {
			sb.WriteByte(s[i])
			i++
		}
	}
	return sb.String()
}

func isOctal(c byte) bool { return '0' <= c && c <= '7' }

func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}
