package pdfcpu

import (
	"bytes"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// kerningSpace is the TJ displacement (in thousandths of a text space unit)
// beyond which a gap is treated as a word break.
const kerningSpace = 200

// decodeContent scans a page content stream and returns the text shown by
// the Tj, TJ, ' and " operators. Text positioning operators start new lines.
// Strings shown in a font named in composite are not decoded; skipped counts
// the operators dropped that way.
func decodeContent(data []byte, composite map[string]bool) (text string, skipped int) {
	s := &scanner{data: data}
	b := &textWriter{}
	var operands []any
	var font string

	for {
		tok, ok := s.next()
		if !ok {
			break
		}

		op, isOp := tok.(operator)
		if !isOp {
			operands = append(operands, tok)
			continue
		}

		if composite[font] && isShowText(op) {
			skipped++
			if op != "Tj" && op != "TJ" {
				b.newline()
			}
			operands = operands[:0]
			continue
		}

		switch op {
		case "Tf":
			if len(operands) > 0 {
				if n, ok := operands[0].(name); ok {
					font = string(n)
				}
			}
		case "Tj":
			writeStrings(b, operands)
		case "'", "\"":
			b.newline()
			writeStrings(b, operands)
		case "TJ":
			for _, o := range operands {
				if arr, ok := o.(array); ok {
					writeArray(b, arr)
				}
			}
		case "T*", "Td", "TD", "Tm", "ET":
			b.newline()
		case "BI":
			s.skipInlineImage()
		}
		operands = operands[:0]
	}

	return b.String(), skipped
}

func isShowText(op operator) bool {
	switch op {
	case "Tj", "TJ", "'", "\"":
		return true
	}
	return false
}

// textWriter accumulates decoded text, collapsing consecutive line breaks.
type textWriter struct {
	b    strings.Builder
	last byte
}

func (w *textWriter) text(s string) {
	if s == "" {
		return
	}
	w.b.WriteString(s)
	w.last = s[len(s)-1]
}

func (w *textWriter) space() {
	w.b.WriteByte(' ')
	w.last = ' '
}

func (w *textWriter) newline() {
	if w.b.Len() > 0 && w.last != '\n' {
		w.b.WriteByte('\n')
		w.last = '\n'
	}
}

func (w *textWriter) String() string {
	return w.b.String()
}

func writeStrings(b *textWriter, operands []any) {
	for _, o := range operands {
		if str, ok := o.(pdfString); ok {
			b.text(decodeText(str))
		}
	}
}

func writeArray(b *textWriter, arr array) {
	for _, el := range arr {
		switch v := el.(type) {
		case pdfString:
			b.text(decodeText(v))
		case number:
			if v < -kerningSpace {
				b.space()
			}
		}
	}
}

// decodeText maps string bytes through WinAnsi and drops control characters.
func decodeText(s pdfString) string {
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(s)
	if err != nil {
		decoded = s
	}
	return strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return ' '
		}
		if !unicode.IsPrint(r) && !unicode.IsSpace(r) {
			return -1
		}
		return r
	}, string(decoded))
}

type (
	operator  string
	pdfString []byte
	number    float64
	name      string
	array     []any
)

// scanner tokenizes PDF content stream syntax.
type scanner struct {
	data []byte
	pos  int
}

func (s *scanner) next() (any, bool) {
	s.skipSpaceAndComments()
	if s.pos >= len(s.data) {
		return nil, false
	}

	c := s.data[s.pos]
	switch {
	case c == '(':
		return s.literalString(), true
	case c == '<' && s.peek(1) == '<':
		s.pos += 2
		return operator("<<"), true
	case c == '>' && s.peek(1) == '>':
		s.pos += 2
		return operator(">>"), true
	case c == '<':
		return s.hexString(), true
	case c == '[':
		s.pos++
		return s.array(), true
	case c == ']':
		s.pos++
		return operator("]"), true
	case c == '/':
		s.pos++
		return name(s.word()), true
	case c == '{' || c == '}' || c == ')' || c == '>':
		s.pos++
		return operator(string(c)), true
	}

	w := s.word()
	if n, ok := parseNumber(w); ok {
		return n, true
	}
	return operator(w), true
}

func (s *scanner) peek(offset int) byte {
	if s.pos+offset < len(s.data) {
		return s.data[s.pos+offset]
	}
	return 0
}

func (s *scanner) skipSpaceAndComments() {
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		if c == '%' {
			for s.pos < len(s.data) && s.data[s.pos] != '\n' && s.data[s.pos] != '\r' {
				s.pos++
			}
			continue
		}
		if !isWhite(c) {
			return
		}
		s.pos++
	}
}

func (s *scanner) word() string {
	start := s.pos
	for s.pos < len(s.data) && !isWhite(s.data[s.pos]) && !isDelim(s.data[s.pos]) {
		s.pos++
	}
	if s.pos == start && s.pos < len(s.data) {
		s.pos++
	}
	return string(s.data[start:s.pos])
}

func (s *scanner) array() array {
	var arr array
	for {
		tok, ok := s.next()
		if !ok || tok == operator("]") {
			return arr
		}
		arr = append(arr, tok)
	}
}

func (s *scanner) literalString() pdfString {
	s.pos++ // (
	var out []byte
	depth := 1
	for s.pos < len(s.data) {
		c := s.data[s.pos]
		s.pos++
		switch c {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return out
			}
		case '\\':
			out = s.escape(out)
			continue
		}
		out = append(out, c)
	}
	return out
}

func (s *scanner) escape(out []byte) []byte {
	if s.pos >= len(s.data) {
		return out
	}
	c := s.data[s.pos]
	s.pos++
	switch c {
	case 'n':
		return append(out, '\n')
	case 'r':
		return append(out, '\r')
	case 't':
		return append(out, '\t')
	case 'b':
		return append(out, '\b')
	case 'f':
		return append(out, '\f')
	case '\r':
		if s.peek(0) == '\n' {
			s.pos++
		}
		return out
	case '\n':
		return out
	}
	if c >= '0' && c <= '7' {
		val := int(c - '0')
		for i := 0; i < 2 && s.pos < len(s.data) && s.data[s.pos] >= '0' && s.data[s.pos] <= '7'; i++ {
			val = val*8 + int(s.data[s.pos]-'0')
			s.pos++
		}
		return append(out, byte(val))
	}
	return append(out, c)
}

func (s *scanner) hexString() pdfString {
	s.pos++ // <
	var digits []byte
	for s.pos < len(s.data) && s.data[s.pos] != '>' {
		if c := s.data[s.pos]; isHex(c) {
			digits = append(digits, c)
		}
		s.pos++
	}
	s.pos++ // >
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}
	out := make([]byte, len(digits)/2)
	for i := range out {
		out[i] = unhex(digits[2*i])<<4 | unhex(digits[2*i+1])
	}
	return out
}

// skipInlineImage advances past the binary data of an inline image,
// ending after the EI operator.
func (s *scanner) skipInlineImage() {
	idx := bytes.Index(s.data[s.pos:], []byte("ID"))
	if idx < 0 {
		s.pos = len(s.data)
		return
	}
	s.pos += idx + 2
	for s.pos < len(s.data) {
		idx := bytes.Index(s.data[s.pos:], []byte("EI"))
		if idx < 0 {
			s.pos = len(s.data)
			return
		}
		end := s.pos + idx
		s.pos = end + 2
		if end > 0 && isWhite(s.data[end-1]) && (s.pos >= len(s.data) || isWhite(s.data[s.pos])) {
			return
		}
	}
}

func parseNumber(w string) (number, bool) {
	if w == "" || !strings.ContainsAny(w[:1], "+-.0123456789") {
		return 0, false
	}
	f, err := strconv.ParseFloat(w, 64)
	if err != nil {
		return 0, false
	}
	return number(f), true
}

func isWhite(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f', 0:
		return true
	}
	return false
}

func isDelim(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return true
	}
	return false
}

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
