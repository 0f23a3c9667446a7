package sxml

import "strings"

// scanner walks the raw input byte by byte, tracking line and column for
// error reporting. Every consuming primitive either advances the cursor or
// fails, so a scan is always bounded by the input length.
//
// Scanning is byte-oriented: every structural delimiter of the grammar is
// ASCII, so multi-byte UTF-8 sequences pass through text and attribute
// values untouched.
type scanner struct {
	input string
	cur   int // Current byte offset into input
	line  int // Current line number (1-based)
	col   int // Current column number (1-based)
}

func newScanner(input string) *scanner {
	return &scanner{input: input, line: 1, col: 1}
}

// pos returns the current source location.
func (s *scanner) pos() Position {
	return Position{Line: s.line, Column: s.col, Offset: s.cur}
}

func (s *scanner) eof() bool {
	return s.cur >= len(s.input)
}

// advance moves the cursor past the current byte. The cursor must not be at
// the end of input.
func (s *scanner) advance() {
	if s.input[s.cur] == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	s.cur++
}

// next consumes and returns one byte.
func (s *scanner) next() (byte, error) {
	if s.eof() {
		return 0, parseErrorf(ErrUnexpectedEOF, s.pos(), "unexpected end of input")
	}
	b := s.input[s.cur]
	s.advance()
	return b, nil
}

// peek returns up to size bytes starting offset bytes ahead of the cursor
// without consuming them. At the input boundary the result is shorter than
// requested, possibly empty; peek never fails.
func (s *scanner) peek(offset, size int) string {
	start := s.cur + offset
	if start >= len(s.input) {
		return ""
	}
	end := start + size
	if end > len(s.input) {
		end = len(s.input)
	}
	return s.input[start:end]
}

// skip consumes n bytes. The caller has already peeked them.
func (s *scanner) skip(n int) {
	for i := 0; i < n && !s.eof(); i++ {
		s.advance()
	}
}

// skipSpace consumes any run of space, tab, newline, and carriage return.
func (s *scanner) skipSpace() {
	for !s.eof() && isSpace(s.input[s.cur]) {
		s.advance()
	}
}

// untilAny consumes and returns everything up to the first byte contained in
// stop, which is left unconsumed. Exhausting the input first is an error.
func (s *scanner) untilAny(stop string) (string, error) {
	start := s.cur
	for !s.eof() {
		if strings.IndexByte(stop, s.input[s.cur]) >= 0 {
			return s.input[start:s.cur], nil
		}
		s.advance()
	}
	return "", parseErrorf(ErrUnexpectedEOF, s.pos(), "unexpected end of input: expected one of %q", stop)
}

// untilLiteral consumes and returns everything up to the first occurrence of
// lit, consuming lit itself. An input without lit is an error.
func (s *scanner) untilLiteral(lit string) (string, error) {
	idx := strings.Index(s.input[s.cur:], lit)
	if idx < 0 {
		return "", parseErrorf(ErrUnexpectedEOF, s.pos(), "unexpected end of input: expected %q", lit)
	}
	content := s.input[s.cur : s.cur+idx]
	s.skip(idx + len(lit))
	return content, nil
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
