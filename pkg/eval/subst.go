package eval

import (
	"strings"

	"github.com/Twisol/molt/pkg/parse"
	"github.com/Twisol/molt/pkg/strutil"
)

// Returns the value of a word. Braced words are taken literally; other words
// undergo substitution.
func (in *Interp) substWord(src parse.Source, w parse.Word) (string, Result) {
	if w.Kind == parse.Braced {
		return w.Text, Okay("")
	}
	return in.subst(src, w.TextFrom, w.TextFrom+len(w.Text))
}

// Subst performs backslash, variable and command substitution on s, in a
// single left-to-right pass.
func (in *Interp) Subst(s string) (string, Result) {
	return in.subst(parse.Source{Name: "[subst]", Code: s}, 0, len(s))
}

func (in *Interp) subst(src parse.Source, from, to int) (string, Result) {
	code := src.Code[:to]
	if strings.IndexAny(code[from:], `\$[`) == -1 {
		return code[from:], Okay("")
	}
	var sb strings.Builder
	for i := from; i < to; {
		switch code[i] {
		case '\\':
			rep, next := strutil.Backslash(code, i)
			sb.WriteString(rep)
			i = next
		case '$':
			name, next, r := scanVarName(code, i)
			if r.Code != OK {
				return "", r
			}
			if next == i+1 {
				sb.WriteByte('$')
			} else {
				value, ok := in.Scope.Get(name)
				if !ok {
					return "", Errorf("can't read \"%s\": no such variable", name)
				}
				sb.WriteString(value)
			}
			i = next
		case '[':
			r, close := in.evalBracket(src, i, to)
			if r.Code != OK {
				return "", r
			}
			sb.WriteString(r.Value)
			i = close + 1
		default:
			sb.WriteByte(code[i])
			i++
		}
	}
	return sb.String(), Okay("")
}

// Scans a variable reference starting with the "$" at code[i]. It returns the
// name and the index after the reference; if no name follows the "$", the
// index returned is i+1.
func scanVarName(code string, i int) (string, int, Result) {
	if i+1 < len(code) && code[i+1] == '{' {
		close := strings.IndexByte(code[i+2:], '}')
		if close == -1 {
			return "", 0, ErrorResult("missing close-brace for variable name")
		}
		return code[i+2 : i+2+close], i + 2 + close + 1, Okay("")
	}
	j := i + 1
	for j < len(code) {
		if isVarChar(code[j]) {
			j++
		} else if code[j] == ':' && j+1 < len(code) && code[j+1] == ':' {
			j += 2
		} else {
			break
		}
	}
	return code[i+1 : j], j, Okay("")
}

func isVarChar(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
