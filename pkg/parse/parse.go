// Package parse implements the word splitter of the command language.
//
// A script is a sequence of commands separated by newlines or semicolons. A
// command is a sequence of words separated by inline whitespace. The parser
// only groups text into words; substitution of variables, backslash sequences
// and nested commands happens during evaluation, and is driven by the
// [WordKind] of each word.
//
// Text inside a command substitution "[...]" is parsed as a nested script when
// the enclosing word is scanned, so that quoting inside it is respected, but
// its commands are not returned as part of the enclosing command.
package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Twisol/molt/pkg/diag"
)

// Source describes a piece of source code.
type Source struct {
	Name string
	Code string
}

// WordKind determines how a word is grouped, and which substitutions apply to
// it during evaluation.
type WordKind int

// Possible values for WordKind.
const (
	// A word that runs up to the next whitespace or command terminator. It
	// undergoes all substitutions.
	Bare WordKind = iota
	// A word delimited by double quotes. It undergoes all substitutions.
	Quoted
	// A word delimited by braces. Its content is taken literally.
	Braced
)

func (k WordKind) String() string {
	switch k {
	case Bare:
		return "Bare"
	case Quoted:
		return "Quoted"
	case Braced:
		return "Braced"
	}
	return fmt.Sprintf("WordKind(%d)", int(k))
}

// Word is one word of a command, before substitution.
type Word struct {
	// Range of the whole word, including the delimiters.
	diag.Ranging
	Kind WordKind
	// Text is the content of the word. For a Braced word, it is the text between
	// the braces, with every backslash-newline and the whitespace following it
	// collapsed into a single space. For a Quoted word, it is the text between
	// the quotes; for a Bare word, the word itself. In both of these cases it
	// is a verbatim slice of the source starting at TextFrom.
	Text     string
	TextFrom int
}

// Command is a command, split into words.
type Command struct {
	diag.Ranging
	Words []Word
}

// Script is a fully parsed script.
type Script struct {
	Source   Source
	Commands []Command
}

// Error is a parse error.
type Error = diag.Error[ErrorTag]

// ErrorTag parameterizes [diag.Error] to define [Error].
type ErrorTag struct{}

// ErrorTag returns "parse error".
func (ErrorTag) ErrorTag() string { return "parse error" }

// GetError returns the parse error in the chain of err, or nil if there is
// none.
func GetError(err error) *Error {
	return diag.GetError[ErrorTag](err)
}

// Errors.
var (
	errUnmatchedBrace  = errors.New("unmatched open brace")
	errUnmatchedQuote  = errors.New("unmatched open quote")
	errMissingBracket  = errors.New("missing close-bracket")
	errMissingVarBrace = errors.New("missing close-brace for variable name")
	errExtraAfterBrace = errors.New("extra characters after close-brace")
	errExtraAfterQuote = errors.New("extra characters after close-quote")
)

// Parse splits the whole script into commands. Command substitutions are
// checked for well-formedness but not split into commands.
func Parse(src Source) (Script, error) {
	script := Script{Source: src}
	p := NewParser(src)
	for {
		cmd, ok, err := p.Next()
		if err != nil {
			return script, err
		}
		if !ok {
			return script, nil
		}
		script.Commands = append(script.Commands, cmd)
	}
}

// Complete reports whether code is a complete script, i.e. it either parses or
// has a parse error that more input cannot fix.
func Complete(code string) bool {
	_, err := Parse(Source{Name: "[complete]", Code: code})
	if e := GetError(err); e != nil {
		return !e.Partial
	}
	return true
}

// Parser splits a script into commands, one at a time.
type Parser struct {
	src    Source
	pos    int
	end    int
	nested bool
	// Index of the "[" of a command substitution, when nested.
	open   int
}

// NewParser returns a Parser for the whole of src.
func NewParser(src Source) *Parser {
	return &Parser{src: src, end: len(src.Code)}
}

// NewRangeParser returns a Parser for src.Code[from:to]. Positions in the
// returned commands and errors are still relative to the whole of src.Code.
func NewRangeParser(src Source, from, to int) *Parser {
	return &Parser{src: src, pos: from, end: to}
}

// NewBracketParser returns a Parser for the command substitution opened by
// the "[" at src.Code[open]. It stops at the matching "]" or at to; after Next
// returns false, CloseBracket reports where the substitution ends.
func NewBracketParser(src Source, open, to int) *Parser {
	return &Parser{src: src, pos: open + 1, end: to, nested: true, open: open}
}

// CloseBracket returns the index of the "]" that closes the command
// substitution, or a "missing close-bracket" error if the commands ran to the
// end of the text instead. It is only meaningful for a Parser returned by
// NewBracketParser that has no more commands.
func (p *Parser) CloseBracket() (int, error) {
	if p.pos < p.end && p.src.Code[p.pos] == ']' {
		return p.pos, nil
	}
	return 0, p.errorAt(p.open, p.end, errMissingBracket, true)
}

// Next parses the next command. It returns false when there are no more
// commands. Empty commands and comments are skipped.
func (p *Parser) Next() (Command, bool, error) {
	if err := p.skipSeparators(); err != nil {
		return Command{}, false, err
	}
	if p.stopped() {
		return Command{}, false, nil
	}
	cmd := Command{Ranging: diag.PointRanging(p.pos)}
	for {
		p.skipInlineSpaces()
		if p.stopped() || isTerminator(p.src.Code[p.pos]) {
			break
		}
		w, err := p.word()
		if err != nil {
			return Command{}, false, err
		}
		cmd.Words = append(cmd.Words, w)
		cmd.Ranging = diag.MixedRanging(cmd.Words[0], w)
	}
	return cmd, true, nil
}

// ScanBracket finds the "]" that closes a command substitution. The "[" is at
// src.Code[pos-1]; the returned index is that of the matching "]".
func ScanBracket(src Source, pos int) (int, error) {
	return scanBracket(NewBracketParser(src, pos-1, len(src.Code)))
}

func scanBracket(p *Parser) (int, error) {
	for {
		_, ok, err := p.Next()
		if err != nil {
			return 0, err
		}
		if !ok {
			return p.CloseBracket()
		}
	}
}

func (p *Parser) stopped() bool {
	return p.pos >= p.end || (p.nested && p.src.Code[p.pos] == ']')
}

func (p *Parser) peek() byte {
	if p.pos >= p.end {
		return 0
	}
	return p.src.Code[p.pos]
}

func isInlineSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\v', '\f':
		return true
	}
	return false
}

func isTerminator(c byte) bool { return c == '\n' || c == ';' }

func (p *Parser) isBackslashNewline() bool {
	return p.peek() == '\\' && p.pos+1 < p.end && p.src.Code[p.pos+1] == '\n'
}

// Skips inline whitespace, including backslash-newlines.
func (p *Parser) skipInlineSpaces() {
	for !p.stopped() {
		if isInlineSpace(p.peek()) {
			p.pos++
		} else if p.isBackslashNewline() {
			p.pos += 2
		} else {
			return
		}
	}
}

// Skips whitespace, command terminators and comments between commands.
func (p *Parser) skipSeparators() error {
	for !p.stopped() {
		c := p.peek()
		switch {
		case isInlineSpace(c) || isTerminator(c):
			p.pos++
		case p.isBackslashNewline():
			p.pos += 2
		case c == '#':
			p.skipComment()
		default:
			return nil
		}
	}
	return nil
}

// Skips a comment up to and including the next newline that is not escaped
// by a backslash.
func (p *Parser) skipComment() {
	for p.pos < p.end {
		switch p.src.Code[p.pos] {
		case '\\':
			p.pos += 2
		case '\n':
			p.pos++
			return
		default:
			p.pos++
		}
	}
	p.pos = p.end
}

func (p *Parser) word() (Word, error) {
	switch p.peek() {
	case '{':
		return p.bracedWord()
	case '"':
		return p.quotedWord()
	}
	return p.bareWord()
}

func (p *Parser) bracedWord() (Word, error) {
	begin := p.pos
	code := p.src.Code
	var sb strings.Builder
	depth := 0
	for i := begin; i < p.end; i++ {
		switch code[i] {
		case '\\':
			if i+1 < p.end && code[i+1] == '\n' {
				j := i + 2
				for j < p.end && (code[j] == ' ' || code[j] == '\t') {
					j++
				}
				sb.WriteByte(' ')
				i = j - 1
				continue
			}
			sb.WriteByte('\\')
			if i+1 < p.end {
				i++
				sb.WriteByte(code[i])
			}
			continue
		case '{':
			depth++
			if depth == 1 {
				continue
			}
		case '}':
			depth--
			if depth == 0 {
				p.pos = i + 1
				if err := p.checkWordEnd(errExtraAfterBrace); err != nil {
					return Word{}, err
				}
				return Word{
					Ranging: diag.Ranging{From: begin, To: p.pos}, Kind: Braced,
					Text: sb.String(), TextFrom: begin + 1}, nil
			}
		}
		sb.WriteByte(code[i])
	}
	return Word{}, p.errorAt(begin, p.end, errUnmatchedBrace, true)
}

func (p *Parser) quotedWord() (Word, error) {
	begin := p.pos
	code := p.src.Code
	i := begin + 1
	for i < p.end && code[i] != '"' {
		next, err := p.skipSpecial(i)
		if err != nil {
			return Word{}, err
		}
		i = next
	}
	if i >= p.end {
		return Word{}, p.errorAt(begin, p.end, errUnmatchedQuote, true)
	}
	p.pos = i + 1
	if err := p.checkWordEnd(errExtraAfterQuote); err != nil {
		return Word{}, err
	}
	return Word{
		Ranging: diag.Ranging{From: begin, To: p.pos}, Kind: Quoted,
		Text: code[begin+1 : i], TextFrom: begin + 1}, nil
}

func (p *Parser) bareWord() (Word, error) {
	begin := p.pos
	code := p.src.Code
	i := begin
	for i < p.end {
		c := code[i]
		if isInlineSpace(c) || isTerminator(c) || (p.nested && c == ']') {
			break
		}
		if c == '\\' && i+1 < p.end && code[i+1] == '\n' {
			// A backslash-newline separates words.
			break
		}
		next, err := p.skipSpecial(i)
		if err != nil {
			return Word{}, err
		}
		i = next
	}
	p.pos = i
	return Word{
		Ranging: diag.Ranging{From: begin, To: i}, Kind: Bare,
		Text: code[begin:i], TextFrom: begin}, nil
}

// Skips over the character at i, or the whole construct starting at i if it
// is a backslash sequence, a command substitution or a braced variable name.
// Returns the index after it.
func (p *Parser) skipSpecial(i int) (int, error) {
	code := p.src.Code
	switch code[i] {
	case '\\':
		if i+1 < p.end {
			return i + 2, nil
		}
	case '[':
		close, err := scanBracket(NewBracketParser(p.src, i, p.end))
		if err != nil {
			return 0, err
		}
		return close + 1, nil
	case '$':
		if i+1 < p.end && code[i+1] == '{' {
			close := strings.IndexByte(code[i+2:p.end], '}')
			if close == -1 {
				return 0, p.errorAt(i, p.end, errMissingVarBrace, true)
			}
			return i + 2 + close + 1, nil
		}
	}
	return i + 1, nil
}

// Checks that a braced or quoted word that has just been consumed is followed
// by whitespace, a command terminator or the end of the script.
func (p *Parser) checkWordEnd(e error) error {
	if p.stopped() || isInlineSpace(p.peek()) || isTerminator(p.peek()) ||
		p.isBackslashNewline() {
		return nil
	}
	return p.errorAt(p.pos, p.pos+1, e, false)
}

// Builds an error for the range [from, to). An error caused by running out of
// text is only partial if it ran out at the end of the whole source.
func (p *Parser) errorAt(from, to int, e error, eof bool) error {
	return &Error{
		Message: e.Error(),
		Context: *diag.NewContext(p.src.Name, p.src.Code, diag.Ranging{From: from, To: to}),
		Partial: eof && to == len(p.src.Code),
	}
}
