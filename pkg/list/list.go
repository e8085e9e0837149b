// Package list implements the codec between list values and their string
// representation.
//
// A list is an ordinary string, interpreted as a sequence of elements
// separated by whitespace. An element may be grouped with braces, in which
// case its content is taken literally, or with double quotes, in which case
// backslash sequences in it are substituted; otherwise it runs up to the next
// whitespace, with backslash sequences substituted.
package list

import (
	"fmt"
	"strings"

	"github.com/Twisol/molt/pkg/strutil"
)

// Error is returned by Decode when a string is not a well-formed list.
type Error struct {
	Message string
	// Byte offset of the problem within the decoded string.
	Pos int
}

func (e *Error) Error() string { return e.Message }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Decode splits s into its list elements.
func Decode(s string) ([]string, error) {
	var elems []string
	i := 0
	for {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i == len(s) {
			return elems, nil
		}
		elem, next, err := decodeElem(s, i)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
		i = next
	}
}

// Len returns the number of elements in s.
func Len(s string) (int, error) {
	elems, err := Decode(s)
	return len(elems), err
}

func decodeElem(s string, i int) (string, int, error) {
	switch s[i] {
	case '{':
		end, ok := matchBrace(s, i)
		if !ok {
			return "", 0, &Error{"unmatched open brace in list", i}
		}
		if err := checkFollowing(s, end+1, "braces"); err != nil {
			return "", 0, err
		}
		return s[i+1 : end], end + 1, nil
	case '"':
		j := i + 1
		for j < len(s) && s[j] != '"' {
			if s[j] == '\\' {
				_, j = strutil.Backslash(s, j)
			} else {
				j++
			}
		}
		if j >= len(s) {
			return "", 0, &Error{"unmatched open quote in list", i}
		}
		if err := checkFollowing(s, j+1, "quotes"); err != nil {
			return "", 0, err
		}
		return strutil.Unbackslash(s[i+1 : j]), j + 1, nil
	}
	j := i
	for j < len(s) && !isSpace(s[j]) {
		if s[j] == '\\' {
			_, j = strutil.Backslash(s, j)
		} else {
			j++
		}
	}
	return strutil.Unbackslash(s[i:j]), j, nil
}

// Returns the index of the brace matching the one at s[i]. Backslashes hide
// the character after them from brace counting.
func matchBrace(s string, i int) (int, bool) {
	depth := 0
	for j := i; j < len(s); j++ {
		switch s[j] {
		case '\\':
			j++
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return 0, false
}

func checkFollowing(s string, i int, what string) error {
	if i >= len(s) || isSpace(s[i]) {
		return nil
	}
	j := i
	for j < len(s) && !isSpace(s[j]) {
		j++
	}
	return &Error{
		fmt.Sprintf("list element in %s followed by %q instead of space", what, s[i:j]),
		i}
}

// Encode joins elems into a canonical list string. For every sequence of
// strings e, Decode(Encode(e)) returns e.
func Encode(elems []string) string {
	var sb strings.Builder
	for i, elem := range elems {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(quote(elem, i == 0))
	}
	return sb.String()
}

// Quote returns s in a form that is decoded as exactly one list element.
func Quote(s string) string {
	return quote(s, false)
}

func quote(s string, first bool) string {
	if s == "" {
		return "{}"
	}
	// A leading # would start a comment when the list is evaluated as a
	// command.
	leadingHash := first && s[0] == '#'
	if !leadingHash && !strings.ContainsAny(s, " \t\n\r\v\f{}[]$;\\\"") {
		return s
	}
	if canBrace(s) {
		return "{" + s + "}"
	}
	return escape(s, leadingHash)
}

// Reports whether s survives being wrapped in braces: its braces must be
// balanced, and it must not end in a backslash or contain a backslash-newline.
func canBrace(s string) bool {
	depth := 0
	for j := 0; j < len(s); j++ {
		switch s[j] {
		case '\\':
			if j+1 == len(s) || s[j+1] == '\n' {
				return false
			}
			j++
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return false
			}
		}
	}
	return depth == 0
}

func escape(s string, leadingHash bool) string {
	var sb strings.Builder
	if leadingHash {
		sb.WriteByte('\\')
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '\v':
			sb.WriteString(`\v`)
		case '\f':
			sb.WriteString(`\f`)
		case ' ', '{', '}', '[', ']', '$', ';', '\\', '"':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		default:
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
